package codec

import (
	"fmt"
	"image"
	"sort"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Resampler scales an image to exactly width x height pixels.
type Resampler interface {
	Resample(src image.Image, width, height int) image.Image
}

// ResamplerFunc adapts a plain function to the Resampler interface.
type ResamplerFunc func(src image.Image, width, height int) image.Image

// Resample calls f(src, width, height).
func (f ResamplerFunc) Resample(src image.Image, width, height int) image.Image {
	return f(src, width, height)
}

// Resampler backend names accepted by NewResampler.
const (
	BackendImaging = "imaging"
	BackendBild    = "bild"
	BackendXDraw   = "xdraw"
)

// Filter names accepted by NewResampler.
const (
	FilterNearest    = "nearest"
	FilterBox        = "box"
	FilterLinear     = "linear"
	FilterCatmullRom = "catmullrom"
	FilterLanczos    = "lanczos"
)

var imagingFilters = map[string]imaging.ResampleFilter{
	FilterNearest:    imaging.NearestNeighbor,
	FilterBox:        imaging.Box,
	FilterLinear:     imaging.Linear,
	FilterCatmullRom: imaging.CatmullRom,
	FilterLanczos:    imaging.Lanczos,
}

var bildFilters = map[string]transform.ResampleFilter{
	FilterNearest:    transform.NearestNeighbor,
	FilterBox:        transform.Box,
	FilterLinear:     transform.Linear,
	FilterCatmullRom: transform.CatmullRom,
	FilterLanczos:    transform.Lanczos,
}

// x/image/draw has no Lanczos kernel; CatmullRom is its closest match.
var xdrawScalers = map[string]draw.Scaler{
	FilterNearest:    draw.NearestNeighbor,
	FilterBox:        draw.ApproxBiLinear,
	FilterLinear:     draw.BiLinear,
	FilterCatmullRom: draw.CatmullRom,
	FilterLanczos:    draw.CatmullRom,
}

// Backends returns the supported resampler backend names, sorted.
func Backends() []string {
	return []string{BackendBild, BackendImaging, BackendXDraw}
}

// Filters returns the supported filter names, sorted.
func Filters() []string {
	names := make([]string, 0, len(imagingFilters))
	for name := range imagingFilters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewResampler returns the resampler for the named backend and filter.
// Names are case-insensitive; empty names select imaging/lanczos.
func NewResampler(backend, filter string) (Resampler, error) {
	backend = strings.ToLower(strings.TrimSpace(backend))
	filter = strings.ToLower(strings.TrimSpace(filter))
	if backend == "" {
		backend = BackendImaging
	}
	if filter == "" {
		filter = FilterLanczos
	}

	switch backend {
	case BackendImaging:
		f, ok := imagingFilters[filter]
		if !ok {
			return nil, fmt.Errorf("unknown resample filter: %s", filter)
		}
		return ResamplerFunc(func(src image.Image, w, h int) image.Image {
			return imaging.Resize(src, w, h, f)
		}), nil

	case BackendBild:
		f, ok := bildFilters[filter]
		if !ok {
			return nil, fmt.Errorf("unknown resample filter: %s", filter)
		}
		return ResamplerFunc(func(src image.Image, w, h int) image.Image {
			return transform.Resize(src, w, h, f)
		}), nil

	case BackendXDraw:
		s, ok := xdrawScalers[filter]
		if !ok {
			return nil, fmt.Errorf("unknown resample filter: %s", filter)
		}
		return ResamplerFunc(func(src image.Image, w, h int) image.Image {
			dst := image.NewNRGBA(image.Rect(0, 0, w, h))
			s.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
			return dst
		}), nil

	default:
		return nil, fmt.Errorf("unknown resampler backend: %s", backend)
	}
}
