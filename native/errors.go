package native

import "errors"

var (
	ErrBadLength   = errors.New("bad native length")
	ErrBadText     = errors.New("bad native text")
	ErrBadChecksum = errors.New("bad native checksum")
)
