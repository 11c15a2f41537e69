// Package codec sniffs, decodes, resamples and encodes PNG and JPEG images.
//
// It is the narrow capability the imaging container delegates pixel work
// to:
//
//   - Sniff: classify a buffer from its signature bytes alone
//   - Codec.Decode: encoded file -> tightly packed Pixels
//   - Codec.Resample: Pixels -> Pixels at new dimensions
//   - Codec.Encode: Pixels -> encoded JPEG or PNG
//
// The Default codec is built on github.com/disintegration/imaging. Its
// resampling step is pluggable: imaging, github.com/anthonynsimon/bild and
// golang.org/x/image/draw backends are available through NewResampler.
//
// # Channel Layout
//
// Decoded buffers carry 1 (gray), 3 (opaque colour) or 4 (colour with
// alpha) channels. Resample and Encode preserve the channel count of their
// input. Gray+alpha sources decode to 4 channels.
package codec
