// Package pattern stores the dictionary of patterns an automaton is built
// from: owned, lowercased byte copies indexed by a dense 32-bit id.
package pattern

import (
	"errors"
	"fmt"

	"github.com/coregx/ahocorasick/internal/conv"
)

// ErrEmptyPattern is returned by Add when given a zero-length pattern.
var ErrEmptyPattern = errors.New("ahocorasick: pattern must not be empty")

// CapacityError is returned by Add once the set already holds MaxPatterns
// entries. The set is left unchanged.
type CapacityError struct {
	Max int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("ahocorasick: pattern set capacity exceeded (max %d)", e.Max)
}

// Set owns a dictionary of lowercase-folded pattern bytes, indexed by the
// id assigned at Add time (dense, starting at 0, in insertion order). No
// deduplication is performed: adding the same bytes twice yields two ids.
type Set struct {
	bytes [][]byte
	max   int
}

// NewSet creates an empty pattern set that accepts at most max patterns.
func NewSet(max int) *Set {
	return &Set{max: max}
}

// Add lowercase-folds pattern and stores a private copy, returning its
// assigned id. Returns ErrEmptyPattern for a zero-length pattern, or a
// *CapacityError once the set is full; in both cases the set is unchanged.
func (s *Set) Add(p []byte) (uint32, error) {
	if len(p) == 0 {
		return 0, ErrEmptyPattern
	}
	if len(s.bytes) >= s.max {
		return 0, &CapacityError{Max: s.max}
	}
	folded := make([]byte, len(p))
	foldASCII(folded, p)
	s.bytes = append(s.bytes, folded)
	return conv.IntToUint32(len(s.bytes) - 1), nil
}

// Get returns the stored (already folded) bytes for id, and whether id is
// valid.
func (s *Set) Get(id uint32) ([]byte, bool) {
	i := int(id)
	if i < 0 || i >= len(s.bytes) {
		return nil, false
	}
	return s.bytes[i], true
}

// Len returns the number of patterns currently stored.
func (s *Set) Len() int {
	return len(s.bytes)
}

// TotalBytes returns the sum of all stored pattern lengths, used by the
// builder to size the state array's initial capacity estimate.
func (s *Set) TotalBytes() int {
	total := 0
	for _, p := range s.bytes {
		total += len(p)
	}
	return total
}

// Lengths returns a dense table indexed by pattern id giving each pattern's
// byte length, the form the scanner needs to turn an end-position hit into
// an (offset, length) match.
func (s *Set) Lengths() []uint32 {
	lengths := make([]uint32, len(s.bytes))
	for i, p := range s.bytes {
		lengths[i] = conv.IntToUint32(len(p))
	}
	return lengths
}

// foldASCII writes the ASCII-lowercase fold of src into dst. Bytes 'A'..'Z'
// become 'a'..'z'; every other byte (including all non-ASCII bytes, which
// are matched as opaque octets) passes through unchanged. dst and src must
// have equal length.
func foldASCII(dst, src []byte) {
	for i, b := range src {
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		dst[i] = b
	}
}

// FoldByte returns the ASCII-lowercase fold of a single byte, the same
// fold Set.Add applies to every stored byte.
func FoldByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
