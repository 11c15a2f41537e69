package codec

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Pixels is a decoded raster laid out as rows of interleaved channel
// values. Rows are tightly packed: the stride is always Width*Channels.
//
// Channels is 1 (gray), 3 (RGB) or 4 (RGBA, non-premultiplied).
type Pixels struct {
	Pix      []uint8
	Width    int
	Height   int
	Channels int
}

// Len returns the number of bytes a buffer of these dimensions holds.
func (p *Pixels) Len() int {
	return p.Width * p.Height * p.Channels
}

// Valid reports whether p describes a non-empty buffer whose length
// matches its dimensions and channel count.
func (p *Pixels) Valid() bool {
	if p == nil || p.Width <= 0 || p.Height <= 0 {
		return false
	}
	switch p.Channels {
	case 1, 3, 4:
	default:
		return false
	}
	return len(p.Pix) == p.Len()
}

// channelsOf returns the channel count a decode of img yields.
func channelsOf(img image.Image) int {
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return 1
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}

// pack converts img into a tightly packed buffer with the given channel
// count.
func pack(img image.Image, channels int) (*Pixels, error) {
	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("empty raster %dx%d", w, h)
	}

	px := &Pixels{
		Pix:      make([]uint8, w*h*channels),
		Width:    w,
		Height:   h,
		Channels: channels,
	}

	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		out := px.Pix[y*w*channels : (y+1)*w*channels]
		for x := 0; x < w; x++ {
			s := row[x*4 : x*4+4]
			switch channels {
			case 1:
				out[x] = s[0]
			case 3:
				copy(out[x*3:x*3+3], s[:3])
			default:
				copy(out[x*4:x*4+4], s)
			}
		}
	}
	return px, nil
}

// unpack wraps p in an image.Image without altering its values. Gray
// buffers become *image.Gray, everything else *image.NRGBA.
func unpack(p *Pixels) image.Image {
	rect := image.Rect(0, 0, p.Width, p.Height)
	switch p.Channels {
	case 1:
		g := image.NewGray(rect)
		copy(g.Pix, p.Pix)
		return g
	case 4:
		n := image.NewNRGBA(rect)
		copy(n.Pix, p.Pix)
		return n
	}

	n := image.NewNRGBA(rect)
	for i, j := 0, 0; i < len(p.Pix); i, j = i+3, j+4 {
		n.Pix[j] = p.Pix[i]
		n.Pix[j+1] = p.Pix[i+1]
		n.Pix[j+2] = p.Pix[i+2]
		n.Pix[j+3] = 0xff
	}
	return n
}
