package life

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned by New when the map size is not positive.
	ErrInvalidSize = errors.New("life: map size must be positive")
	// ErrUnreadable reports that a pattern source could not be read.
	ErrUnreadable = errors.New("life: pattern unreadable")
)

// LoadError describes a failed pattern load. The engine is left unchanged
// whenever a LoadError is returned.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("life: read pattern: %v", e.Err)
	}
	return fmt.Sprintf("life: read pattern %q: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrUnreadable) match any LoadError.
func (e *LoadError) Is(target error) bool { return target == ErrUnreadable }
