package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// DefaultJPEGQuality is the JPEG encode quality on a 1-100 scale.
const DefaultJPEGQuality = 90

// Errors returned by the default codec.
var (
	ErrEmptyInput        = errors.New("codec: empty input")
	ErrInvalidPixels     = errors.New("codec: invalid pixel buffer")
	ErrInvalidDimensions = errors.New("codec: invalid target dimensions")
	ErrUnsupportedFormat = errors.New("codec: unsupported output format")
)

// Codec is the decode/resample/encode capability an image container
// delegates to. Implementations must not retain the buffers passed in.
type Codec interface {
	// Decode decodes a complete encoded file into a pixel buffer.
	Decode(data []byte) (*Pixels, error)

	// Resample scales src to width x height, keeping its channel count.
	Resample(src *Pixels, width, height int) (*Pixels, error)

	// Encode encodes px into the given container format.
	Encode(px *Pixels, format Format) ([]byte, error)
}

// Options configures the default codec.
type Options struct {
	// JPEGQuality is the JPEG encode quality (1-100). Zero selects
	// DefaultJPEGQuality.
	JPEGQuality int

	// Resampler scales pixel data. Nil selects imaging with Lanczos.
	Resampler Resampler
}

// Default implements Codec on top of github.com/disintegration/imaging.
type Default struct {
	quality   int
	resampler Resampler
}

// New returns a codec configured by opts.
func New(opts Options) *Default {
	c := &Default{
		quality:   opts.JPEGQuality,
		resampler: opts.Resampler,
	}
	if c.quality <= 0 || c.quality > 100 {
		c.quality = DefaultJPEGQuality
	}
	if c.resampler == nil {
		c.resampler = ResamplerFunc(func(src image.Image, w, h int) image.Image {
			return imaging.Resize(src, w, h, imaging.Lanczos)
		})
	}
	return c
}

// JPEGQuality returns the quality used for JPEG output.
func (c *Default) JPEGQuality() int {
	return c.quality
}

// Decode decodes a PNG or JPEG file. EXIF orientation is not applied:
// dimensions are those stored in the file.
func (c *Default) Decode(data []byte) (*Pixels, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	px, err := pack(img, channelsOf(img))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return px, nil
}

// Resample scales src into a new buffer of exactly
// width*height*src.Channels bytes.
func (c *Default) Resample(src *Pixels, width, height int) (*Pixels, error) {
	if !src.Valid() {
		return nil, ErrInvalidPixels
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	scaled := c.resampler.Resample(unpack(src), width, height)
	if b := scaled.Bounds(); b.Dx() != width || b.Dy() != height {
		return nil, fmt.Errorf("resampler produced %dx%d, want %dx%d", b.Dx(), b.Dy(), width, height)
	}
	return pack(scaled, src.Channels)
}

// Encode encodes px as JPEG (at the configured quality) or PNG (default
// compression).
func (c *Default) Encode(px *Pixels, format Format) ([]byte, error) {
	if !px.Valid() {
		return nil, ErrInvalidPixels
	}

	var (
		buf bytes.Buffer
		err error
	)
	switch format {
	case JPEG:
		err = imaging.Encode(&buf, unpack(px), imaging.JPEG, imaging.JPEGQuality(c.quality))
	case PNG:
		err = imaging.Encode(&buf, unpack(px), imaging.PNG, imaging.PNGCompressionLevel(png.DefaultCompression))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}
