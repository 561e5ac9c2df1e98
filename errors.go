package ahocorasick

import (
	"errors"
	"fmt"

	"github.com/coregx/ahocorasick/build"
	"github.com/coregx/ahocorasick/pattern"
)

// Sentinel errors surfaced by the public API. Lower-level packages define
// their own, more specific errors; these wrap or re-export them so callers
// depending only on the root package never need to import build/ or
// pattern/ to check an error kind.
var (
	ErrEmptyPattern   = pattern.ErrEmptyPattern
	ErrNoPatterns     = build.ErrNoPatterns
	ErrNotInitialized = errors.New("ahocorasick: automaton not built")
	ErrBadArgument    = errors.New("ahocorasick: bad argument")
)

// CapacityError is returned by AddPattern once the configured pattern
// capacity is reached.
type CapacityError struct {
	Max int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("ahocorasick: pattern capacity exceeded (max %d)", e.Max)
}

func (e *CapacityError) Unwrap() error { return errCapacity }

var errCapacity = errors.New("ahocorasick: capacity exceeded")

// CapacityExceededError is returned by Build when the pattern set requires
// more automaton states than the builder's configured maximum allows.
type CapacityExceededError struct {
	Max int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("ahocorasick: state capacity exceeded (max %d)", e.Max)
}

func (e *CapacityExceededError) Unwrap() error { return errCapacityExceeded }

var errCapacityExceeded = errors.New("ahocorasick: state capacity exceeded")
