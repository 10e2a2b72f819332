package pokemon

import (
	"errors"
	"fmt"

	"porygon/calculations"
	"porygon/database"
	"porygon/native"
)

// Every error returned by this package wraps exactly one of these.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrOutOfRange       = errors.New("out of range")
	ErrFeatureNotInGame = errors.New("feature not in game")
	ErrRuntime          = errors.New("runtime error")
)

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func checkRange(field string, value, lo, hi int) error {
	if value < lo || value > hi {
		return fmt.Errorf("%w: %s %d not in [%d, %d]", ErrOutOfRange, field, value, lo, hi)
	}
	return nil
}

func notInGame(feature, game string) error {
	return fmt.Errorf("%w: %s is not available in %s", ErrFeatureNotInGame, feature, game)
}

// translate folds errors from the metadata, calculation and codec layers
// into this package's taxonomy.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrInvalidArgument), errors.Is(err, ErrOutOfRange),
		errors.Is(err, ErrFeatureNotInGame), errors.Is(err, ErrRuntime):
		return err
	case errors.Is(err, calculations.ErrOutOfRange):
		return fmt.Errorf("%w: %w", ErrOutOfRange, err)
	case errors.Is(err, database.ErrNotFound), errors.Is(err, database.ErrInvalidGame),
		errors.Is(err, database.ErrInvalidForm), errors.Is(err, calculations.ErrInvalidArgument),
		errors.Is(err, calculations.ErrNoSolution), errors.Is(err, native.ErrBadText):
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return fmt.Errorf("%w: %w", ErrRuntime, err)
}
