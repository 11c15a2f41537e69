package imaging

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/ironsheep/image-container/internal/codec"
)

// noCopy marks Image as move-only. go vet's copylocks check reports any
// value copy of a struct that contains it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

var defaultCodec = codec.New(codec.Options{})

// Image owns one encoded PNG or JPEG file and, once decoded, its pixel
// buffer.
//
// The encoded bytes and the pixel buffer always change together: after a
// successful Load or Resize the pixels are exactly what Data() decodes to.
// An Image must not be copied; use Move or MoveFrom to hand it to a new
// owner. It has no internal locking.
type Image struct {
	noCopy noCopy

	codec codec.Codec
	log   zerolog.Logger

	data   []byte
	pixels *codec.Pixels
	crc    uint32
	format codec.Format
	err    error
}

// Option configures an Image at construction.
type Option func(*Image)

// WithCodec replaces the default imaging-based codec.
func WithCodec(c codec.Codec) Option {
	return func(i *Image) {
		if c != nil {
			i.codec = c
		}
	}
}

// WithLogger sets the logger that receives per-stage debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(i *Image) {
		i.log = l
	}
}

// New returns an empty Image in the Invalid state.
func New(opts ...Option) *Image {
	i := &Image{
		codec: defaultCodec,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// NewFromBytes returns a new Image loaded from buf. The Image is returned
// even when loading fails so the caller can inspect Data() and Err().
func NewFromBytes(buf []byte, opts ...Option) (*Image, error) {
	i := New(opts...)
	return i, i.Load(buf)
}

// NewFromFile returns a new Image loaded from the file at path. As with
// NewFromBytes, the Image is non-nil even when the error is not.
func NewFromFile(path string, opts ...Option) (*Image, error) {
	i := New(opts...)
	return i, i.LoadFile(path)
}

// Data returns the encoded bytes currently held. Callers must not modify
// the returned slice.
func (i *Image) Data() []byte { return i.data }

// Size returns len(Data()).
func (i *Image) Size() int { return len(i.data) }

// Pixels returns the decoded buffer, or nil when nothing is decoded.
// Callers must not modify it.
func (i *Image) Pixels() *codec.Pixels { return i.pixels }

// Width returns the decoded width in pixels, or 0.
func (i *Image) Width() int {
	if i.pixels == nil {
		return 0
	}
	return i.pixels.Width
}

// Height returns the decoded height in pixels, or 0.
func (i *Image) Height() int {
	if i.pixels == nil {
		return 0
	}
	return i.pixels.Height
}

// Channels returns the channel count of the decoded buffer, or 0.
func (i *Image) Channels() int {
	if i.pixels == nil {
		return 0
	}
	return i.pixels.Channels
}

// Format returns the best-known format classification. After a decode
// failure it still reports the sniffed format; use Decoded to tell
// whether pixels are held.
func (i *Image) Format() codec.Format { return i.format }

// Decoded reports whether the Image holds a pixel buffer.
func (i *Image) Decoded() bool { return i.pixels != nil }

// Checksum returns the CRC-32 of Data() from the last successful load, or
// 0.
func (i *Image) Checksum() uint32 { return i.crc }

// Err returns the error from the most recent load attempt. It is nil both
// for a never-loaded Image and after a successful load.
func (i *Image) Err() error { return i.err }

// Released reports whether the Image holds neither encoded bytes nor
// pixels, as after Release or Move, or before the first load.
func (i *Image) Released() bool {
	return i.data == nil && i.pixels == nil
}

// Load replaces the Image's contents with a private copy of buf and
// decodes it.
//
// The bytes are kept even when loading fails. If buf carries no known
// signature the format becomes Invalid and any pixels are dropped. If the
// signature is known but decoding fails, Format keeps the sniffed value
// while pixels and dimensions are cleared.
func (i *Image) Load(buf []byte) error {
	data := make([]byte, len(buf))
	copy(data, buf)
	return i.load(data)
}

// LoadFile reads the whole file at path and loads it. A read failure
// leaves the Image unchanged.
func (i *Image) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		i.err = fmt.Errorf("%w: %w", ErrUnreadableInput, err)
		i.log.Debug().Err(err).Str("path", path).Msg("read failed")
		return i.err
	}
	return i.load(data)
}

// load takes ownership of data.
func (i *Image) load(data []byte) error {
	i.data = data
	i.crc = 0

	format := codec.Sniff(data)
	if format == codec.Invalid {
		i.format = codec.Invalid
		i.pixels = nil
		i.err = fmt.Errorf("%w (%d bytes)", ErrUnrecognizedFormat, len(data))
		i.log.Debug().Int("bytes", len(data)).Msg("format not recognized")
		return i.err
	}
	i.format = format

	px, err := i.codec.Decode(data)
	if err != nil {
		i.pixels = nil
		i.err = fmt.Errorf("%w: %w", ErrDecode, err)
		i.log.Debug().Err(err).Stringer("format", format).Msg("decode failed")
		return i.err
	}

	i.pixels = px
	i.crc = checksum(data)
	i.err = nil
	i.log.Debug().
		Stringer("format", format).
		Int("width", px.Width).
		Int("height", px.Height).
		Int("channels", px.Channels).
		Uint32("crc", i.crc).
		Msg("image loaded")
	return nil
}

// Resize resamples the pixels to width x height, re-encodes them in the
// current format and reloads the result.
//
// A resample or encode failure leaves the Image untouched. If the
// re-encoded bytes then fail to load, the Image is in the state of a
// failed Load of those bytes.
func (i *Image) Resize(width, height int) error {
	scaled, err := i.codec.Resample(i.pixels, width, height)
	if err != nil {
		i.log.Debug().Err(err).Int("width", width).Int("height", height).Msg("resample failed")
		return fmt.Errorf("%w: %w", ErrResample, err)
	}

	encoded, err := i.codec.Encode(scaled, i.format)
	if err != nil {
		i.log.Debug().Err(err).Stringer("format", i.format).Msg("encode failed")
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	// Reload re-sniffs rather than trusting the encoder's output format.
	return i.load(encoded)
}

// Save writes Data() verbatim to path, creating or truncating it. It does
// not re-encode from pixels.
func (i *Image) Save(path string) error {
	if err := os.WriteFile(path, i.data, 0644); err != nil {
		i.log.Debug().Err(err).Str("path", path).Msg("write failed")
		return fmt.Errorf("%w: %w", ErrUnwritableOutput, err)
	}
	return nil
}

// Equal reports whether both Images carry the same checksum. Two never
// loaded Images are equal. CRC-32 collisions make this an identity
// shortcut, not a guarantee.
func (i *Image) Equal(other *Image) bool {
	if other == nil {
		return false
	}
	return i.crc == other.crc
}

// Move transfers everything i holds to a new Image and leaves i empty and
// Invalid. The new Image keeps i's codec and logger.
func (i *Image) Move() *Image {
	dst := &Image{codec: i.codec, log: i.log}
	dst.take(i)
	return dst
}

// MoveFrom replaces i's contents with src's and leaves src empty and
// Invalid. Whatever i held before is released.
func (i *Image) MoveFrom(src *Image) {
	if src == nil || src == i {
		return
	}
	i.take(src)
}

func (i *Image) take(src *Image) {
	i.data, src.data = src.data, nil
	i.pixels, src.pixels = src.pixels, nil
	i.crc, src.crc = src.crc, 0
	i.format, src.format = src.format, codec.Invalid
	i.err, src.err = src.err, nil
}

// Release drops the pixel buffer and encoded bytes, returning the Image to
// its empty, Invalid state. The Image may be loaded again afterwards.
func (i *Image) Release() {
	i.data = nil
	i.pixels = nil
	i.crc = 0
	i.format = codec.Invalid
	i.err = nil
}

// Info summarizes the Image's current state.
type Info struct {
	Format    string `json:"format"`
	MimeType  string `json:"mime_type,omitempty"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Channels  int    `json:"channels"`
	Decoded   bool   `json:"decoded"`
	SizeBytes int    `json:"size_bytes"`
	Checksum  string `json:"checksum"`
}

// Info returns a snapshot of the Image's metadata.
func (i *Image) Info() *Info {
	return &Info{
		Format:    i.format.String(),
		MimeType:  i.format.MimeType(),
		Width:     i.Width(),
		Height:    i.Height(),
		Channels:  i.Channels(),
		Decoded:   i.Decoded(),
		SizeBytes: len(i.data),
		Checksum:  fmt.Sprintf("%08x", i.crc),
	}
}
