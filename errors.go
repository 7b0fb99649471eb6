package scrollreel

import (
	"errors"
	"fmt"
)

var (
	// ErrLoadTimeout is logged when the fallback deadline forces rendering
	// before every frame has settled.
	ErrLoadTimeout = errors.New("scrollreel: load timeout exceeded")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("scrollreel: invalid configuration")
)

// LoadError reports a single frame that could not be fetched or decoded.
// It is recovered locally: counted, logged, and replaced by a placeholder.
type LoadError struct {
	Index int
	Path  string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load frame %d (%s): %v", e.Index, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
