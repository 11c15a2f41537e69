// Package imaging provides Image, an in-memory container for a single PNG
// or JPEG file.
//
// An Image owns the exact encoded bytes it was loaded from and, when they
// decode, the matching pixel buffer. Pixel work is delegated to a
// codec.Codec; the container only sequences it:
//
//	load:   bytes -> sniff -> decode -> checksum
//	resize: pixels -> resample -> encode (same format) -> load
//	save:   bytes -> file (verbatim, no re-encode)
//
// # Failure States
//
// Every operation returns an error wrapping one of ErrUnreadableInput,
// ErrUnrecognizedFormat, ErrDecode, ErrResample, ErrEncode or
// ErrUnwritableOutput. Nothing panics.
//
// A failed load keeps the rejected bytes (see Data) so callers can inspect
// them. If the signature was not recognized the format is Invalid; if the
// signature was recognized but decoding failed, Format still reports the
// sniffed format while Decoded reports false. A failed resize leaves the
// Image untouched unless the failure happened while reloading the freshly
// encoded bytes.
//
// # Equality
//
// Equal compares CRC-32 checksums of the encoded bytes. It is a content
// identity shortcut: different files can collide.
//
// # Ownership and Thread Safety
//
// Images are move-only. Copying the struct is reported by go vet; use
// Move or MoveFrom instead, which leave the source empty and Invalid.
// There is no internal locking: an Image must not be used from several
// goroutines without external synchronization.
package imaging
