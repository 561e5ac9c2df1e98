// Package automaton owns the compiled Aho-Corasick state array and output
// table: the data layout the builder fills in and the scanners walk.
//
// The state array is a single contiguous []State rather than a tree of
// pointer-linked nodes (contrast itgcl/ahocorasick's map[rune]*node trie)
// so that a search's working set stays in a handful of cache lines instead
// of chasing pointers, and so the array can later be placed in a
// cache-line-aligned allocation (see internal/memalign) for the SIMD
// scanner.
package automaton

// InlineOutputCap is how many pattern ids a state stores directly before
// overflowing into the shared output table. The original C source capped
// this at 8 and silently dropped anything beyond it; this implementation
// keeps 8 as the common-case fast path (it costs nothing extra for states
// with few outputs) but never drops an id - see Storage.overflow.
const InlineOutputCap = 8

// Root is the id of the root state: both the start state of every search
// and the sentinel used for "no edge" in State.Next.
const Root uint32 = 0

// Alphabet is the number of distinct byte values a state can transition on.
const Alphabet = 256

// State is one node of the automaton, keyed by its dense index in
// Storage.States.
type State struct {
	// Next maps a byte value to the successor state id reached by the
	// trie's goto edges. 0 means "no edge"; effective transitions that
	// fall through to the failure link are computed by the scanner, not
	// stored here.
	Next [Alphabet]uint32

	// Failure is the id of the longest proper suffix of this state's path
	// that is also a prefix of some pattern. Always 0 (root) for states at
	// trie depth 0 or 1.
	Failure uint32

	// outputCount is the number of valid entries in output (if <=
	// InlineOutputCap) or in the overflow table slice (if more).
	outputCount uint32

	// output holds up to InlineOutputCap pattern ids inline: the state's
	// own terminal ids first, followed by ids propagated from the failure
	// chain, per §4.5's tie-break rule. Once outputCount exceeds
	// InlineOutputCap the authoritative list lives in Storage's overflow
	// table instead and output is ignored.
	output [InlineOutputCap]uint32

	// overflowOffset indexes Storage.outputTable when outputCount >
	// InlineOutputCap.
	overflowOffset uint32
}

// OutputCount returns how many pattern ids this state reports on entry.
func (s *State) OutputCount() int {
	return int(s.outputCount)
}
