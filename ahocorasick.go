// Package ahocorasick implements a multi-pattern Aho-Corasick string
// matching engine: compile a dictionary of byte patterns into a
// deterministic automaton, then scan buffers reporting every occurrence as
// an (offset, length, pattern id) triple. Matching is byte-level and
// case-insensitive over ASCII.
package ahocorasick

import (
	"io"
	"time"

	"github.com/coregx/ahocorasick/automaton"
	"github.com/coregx/ahocorasick/build"
	"github.com/coregx/ahocorasick/cpufeature"
	"github.com/coregx/ahocorasick/loader"
	"github.com/coregx/ahocorasick/pattern"
	"github.com/coregx/ahocorasick/scanner"
)

// Match is one reported pattern occurrence. See automaton.Match for field
// documentation; aliased here so callers never need to import the
// automaton package directly.
type Match = automaton.Match

// DefaultConfidence is the constant value Confidence carries in every
// Match (§6: reserved, consumers must not depend on it).
const DefaultConfidence = automaton.DefaultConfidence

// Builder accumulates patterns and compiles them into an Automaton.
// Not safe for concurrent use; a single goroutine should own a Builder
// through AddPattern*/Build.
type Builder struct {
	cfg      BuilderConfig
	patterns *pattern.Set
}

// NewBuilder creates a Builder sized by DefaultBuilderConfig. Use
// NewBuilderWithConfig for the extended engine or other capacity limits.
func NewBuilder() *Builder {
	return NewBuilderWithConfig(DefaultBuilderConfig())
}

// NewBuilderWithConfig creates a Builder with the given capacity
// configuration.
func NewBuilderWithConfig(cfg BuilderConfig) *Builder {
	return &Builder{cfg: cfg, patterns: pattern.NewSet(cfg.MaxPatterns)}
}

// AddPattern stores pattern (case-folded) and returns its assigned id,
// dense starting at 0 in insertion order. Duplicate patterns are allowed
// and get distinct ids.
func (b *Builder) AddPattern(p []byte) (uint32, error) {
	id, err := b.patterns.Add(p)
	if err != nil {
		var capErr *pattern.CapacityError
		if asCapacityError(err, &capErr) {
			return 0, &CapacityError{Max: capErr.Max}
		}
		return 0, err
	}
	return id, nil
}

func asCapacityError(err error, target **pattern.CapacityError) bool {
	ce, ok := err.(*pattern.CapacityError)
	if ok {
		*target = ce
	}
	return ok
}

// AddPatternFromLines reads newline-delimited patterns from r via the
// loader package (§4.9) and adds each to the builder. Returns the count
// accepted before any error; patterns already added are retained.
func (b *Builder) AddPatternFromLines(r io.Reader) (int, error) {
	return loader.FromLines(r, b.AddPattern)
}

// Build runs the three-phase construction (§4.5) over every pattern added
// so far and returns a ready-to-search Automaton.
func (b *Builder) Build() (*Automaton, error) {
	result, err := build.Compile(b.patterns, b.cfg.MaxStates)
	if err != nil {
		if err == build.ErrNoPatterns {
			return nil, ErrNoPatterns
		}
		var stateErr *automaton.StateCapacityError
		if asStateCapacityError(err, &stateErr) {
			return nil, &CapacityExceededError{Max: stateErr.Max}
		}
		return nil, err
	}

	edges := automaton.NewRootEdgeBitmap(result.RootEdges)
	return &Automaton{
		storage:     result.Storage,
		rootEdges:   edges,
		lengths:     b.patterns.Lengths(),
		initialized: true,
		searchCfg:   DefaultSearchConfig(),
	}, nil
}

func asStateCapacityError(err error, target **automaton.StateCapacityError) bool {
	se, ok := err.(*automaton.StateCapacityError)
	if ok {
		*target = se
	}
	return ok
}

// Automaton is a compiled, immutable matcher. A built Automaton is safe
// for concurrent use by any number of goroutines calling
// Search/SearchSafe/FindAll/Find/IsMatch (§5); only its statistics are
// mutated, and only via sync/atomic.
type Automaton struct {
	storage     *automaton.Storage
	rootEdges   automaton.RootEdgeBitmap
	lengths     []uint32
	initialized bool
	stats       statCounters
	searchCfg   SearchConfig
}

// minSIMDLen is the shortest buffer length SearchSIMD is worth choosing
// over the scalar loop at all (below any tier's own block width the
// dispatcher never gets one full block in), letting Search skip the
// cpufeature lookup entirely for tiny inputs.
const minSIMDLen = 16

// SetSearchConfig overrides the dispatcher behavior for subsequent
// Search/FindAll/Find/IsMatch calls on this Automaton.
func (a *Automaton) SetSearchConfig(cfg SearchConfig) {
	a.searchCfg = cfg
}

// SearchSafe runs Search after checking the automaton is built, returning
// ErrNotInitialized instead of operating on a zero-value Automaton.
func (a *Automaton) SearchSafe(text []byte, out []Match) (int, error) {
	if a == nil || !a.initialized {
		return 0, ErrNotInitialized
	}
	return a.Search(text, out), nil
}

// Search scans text and writes up to len(out) matches, in nondecreasing
// end-position order, returning how many were written. Precondition: the
// Automaton must be built (via Builder.Build); Search panics on the zero
// value the way any nil-pointer-dereferencing bug would. Use SearchSafe to
// check first instead of relying on a panic.
func (a *Automaton) Search(text []byte, out []Match) int {
	start := time.Now()

	threshold := minSIMDLen
	if a.searchCfg.MinSIMDLen > 0 {
		threshold = a.searchCfg.MinSIMDLen
	}
	simd := false
	if !a.searchCfg.ForceScalar && len(text) >= threshold {
		width := cpufeature.Detect().BlockWidth()
		simd = width > 0 && len(text) >= width
	}
	var n int
	if simd {
		n = scanner.SearchSIMD(a.storage, &a.rootEdges, a.lengths, text, out)
	} else {
		n = scanner.Search(a.storage, a.lengths, text, out)
	}

	a.stats.recordSearch(n, len(text), simd, time.Since(start).Nanoseconds())
	return n
}

// FindAll returns up to max matches (or all of them, if max <= 0) as a
// freshly allocated slice. With no cap, the number of matches in a buffer
// is not bounded by its length (overlapping patterns at a shared end
// position each report separately), so this grows its scratch buffer and
// retries rather than guessing a single fixed size.
func (a *Automaton) FindAll(text []byte, max int) []Match {
	if max > 0 {
		out := make([]Match, max)
		return out[:a.Search(text, out)]
	}

	size := len(text) + 16
	for {
		out := make([]Match, size)
		n := a.Search(text, out)
		if n < size {
			return out[:n]
		}
		size *= 2
	}
}

// Find returns the first match starting at or after byte offset at, or nil
// if none. Scans from the start of text; the automaton does not support
// resuming mid-buffer (§5, no splicing of state across calls), so this is
// O(len(text)) regardless of at.
func (a *Automaton) Find(text []byte, at int) *Match {
	// A single-slot buffer would stop Search at the first match in the
	// whole text, which may start before at; FindAll and filter instead.
	matches := a.FindAll(text, 0)
	for i := range matches {
		if matches[i].Offset >= uint64(at) {
			m := matches[i]
			return &m
		}
	}
	return nil
}

// IsMatch reports whether text contains any pattern.
func (a *Automaton) IsMatch(text []byte) bool {
	var out [1]Match
	return a.Search(text, out[:]) > 0
}

// Stats returns a snapshot of this Automaton's usage counters.
func (a *Automaton) Stats() Stats {
	return a.stats.snapshot()
}

// ResetStats zeroes this Automaton's usage counters.
func (a *Automaton) ResetStats() {
	a.stats.reset()
}

