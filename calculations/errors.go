package calculations

import "errors"

var (
	ErrOutOfRange      = errors.New("out of range")
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNoSolution means no value satisfies every requested constraint.
	ErrNoSolution = errors.New("no value satisfies the constraints")
)
