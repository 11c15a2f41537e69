package imaging

import "errors"

// Failure classes returned (wrapped) by Image operations. Match them with
// errors.Is; the wrapped cause carries the detail.
var (
	ErrUnreadableInput    = errors.New("unreadable input")
	ErrUnrecognizedFormat = errors.New("unrecognized image format")
	ErrDecode             = errors.New("decode failed")
	ErrResample           = errors.New("resample failed")
	ErrEncode             = errors.New("encode failed")
	ErrUnwritableOutput   = errors.New("unwritable output")
)
