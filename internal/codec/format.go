package codec

import (
	"bytes"

	"gopkg.in/h2non/filetype.v1/matchers"
)

// Format identifies the container format of an encoded image.
//
// The zero value, Invalid, means "not recognized" and is also the state of
// an image that has never been loaded.
type Format int

const (
	Invalid Format = iota
	JPEG
	PNG
)

// String returns the upper-case name used in status output ("JPEG", "PNG",
// or "INVALID").
func (f Format) String() string {
	switch f {
	case JPEG:
		return "JPEG"
	case PNG:
		return "PNG"
	default:
		return "INVALID"
	}
}

// MimeType returns the MIME type of the format, or "" for Invalid.
func (f Format) MimeType() string {
	switch f {
	case JPEG:
		return matchers.TypeJpeg.MIME.Value
	case PNG:
		return matchers.TypePng.MIME.Value
	default:
		return ""
	}
}

// pngSignature is the full eight-byte PNG file signature. matchers.Png
// only checks the first four.
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func isPNG(buf []byte) bool {
	return matchers.Png(buf) && bytes.HasPrefix(buf, pngSignature)
}

// sniffers is the ordered list of signature tests. PNG is tested before
// JPEG; new formats are appended, never inserted, so results stay stable.
var sniffers = []struct {
	format Format
	match  func([]byte) bool
}{
	{PNG, isPNG},
	{JPEG, matchers.Jpeg},
}

// Sniff classifies buf by its leading signature bytes without decoding it.
//
// It returns Invalid when no signature matches, including for empty or
// short buffers. Sniff never panics and has no side effects.
func Sniff(buf []byte) Format {
	for _, s := range sniffers {
		if s.match(buf) {
			return s.format
		}
	}
	return Invalid
}
