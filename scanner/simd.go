package scanner

import (
	"github.com/coregx/ahocorasick/automaton"
	"github.com/coregx/ahocorasick/cpufeature"
	"github.com/coregx/ahocorasick/internal/memalign"
)

// blockAlignment is the alignment the fold scratch buffer is allocated to
// - a cache line, and the AVX-512 vector width, so a future real-SIMD fold
// could load it with an aligned vector instruction instead of an unaligned
// one.
const blockAlignment = 64

// SearchSIMD is the block-wise scanner: it folds and inspects text in
// cpufeature-sized blocks (64/32/16 bytes for AVX-512F/AVX2/NEON, falling
// back to Search's byte-at-a-time walk when no tier is detected or the
// tail is shorter than one block), skipping whole blocks that cannot
// possibly begin a match while the cursor sits at the root state.
//
// rootEdges is the set of first-pattern-bytes built by the trie phase
// (build.Result.RootEdges); a block containing none of them, reached while
// state is Root, cannot transition anywhere (the only edges out of Root
// are on those bytes), so the scanner advances past it without running
// the transition loop at all. This is the SIMD tier's only behavioral
// difference from Search - the per-byte transition step is identical,
// which is what makes their outputs byte-identical (verified in
// simd_test.go).
func SearchSIMD(storage *automaton.Storage, rootEdges *automaton.RootEdgeBitmap, lengths []uint32, text []byte, out []automaton.Match) int {
	width := cpufeature.Detect().BlockWidth()
	if width == 0 {
		return Search(storage, lengths, text, out)
	}

	n := 0
	state := automaton.Root
	scratch, err := memalign.Alloc(blockAlignment, width)
	if err != nil {
		// Alloc only fails for an invalid alignment or a negative size,
		// neither of which a constant 64 and a tier width produce; fall back
		// to an unaligned buffer rather than failing the search outright.
		scratch = make([]byte, width)
	}

	i := 0
	for i+width <= len(text) {
		copy(scratch, text[i:i+width])
		foldBlock(scratch)
		// rootEdges holds only lowercase byte values (built from already
		// case-folded pattern bytes, build/builder.go), so the skip test
		// must run against the folded block, not the raw one - otherwise
		// an uppercase lead byte like 'H' never matches the bitmap's 'h'
		// entry and a real match gets skipped along with the block.
		if state == automaton.Root && !rootEdges.Intersects(scratch) {
			i += width
			continue
		}
		state = scanFoldedBlock(storage, lengths, scratch, i, state, out, &n)
		i += width
		if n >= len(out) {
			return n
		}
	}

	// Tail shorter than one block: hand off to the shared scalar loop so
	// behavior matches Search exactly (including output-buffer-full
	// semantics already stopping earlier).
	if n < len(out) {
		ScanRange(storage, lengths, text, i, state, out, &n)
	}
	return n
}

// scanFoldedBlock runs the shared per-byte transition+emit step over an
// already-folded block, without re-folding (the caller already did it via
// foldBlock), since ScanRange would otherwise fold again.
func scanFoldedBlock(storage *automaton.Storage, lengths []uint32, folded []byte, base int, state uint32, out []automaton.Match, n *int) uint32 {
	for j, b := range folded {
		state = byteStep(storage, state, b)
		if !emit(storage, lengths, state, base+j, out, n) {
			return state
		}
	}
	return state
}
