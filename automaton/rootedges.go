package automaton

import "github.com/coregx/ahocorasick/internal/sparse"

// RootEdgeBitmap is a packed 256-bit membership test over byte values that
// have a goto edge directly out of the root state, i.e. bytes that start
// some pattern. The SIMD scanner uses it to decide whether a whole block
// can be skipped while the cursor sits at Root.
type RootEdgeBitmap [32]byte

// NewRootEdgeBitmap packs a root-edge set (built during trie construction,
// see build.Result.RootEdges) into a RootEdgeBitmap.
func NewRootEdgeBitmap(edges *sparse.Set) RootEdgeBitmap {
	return RootEdgeBitmap(edges.Bitmap256())
}

func (bm RootEdgeBitmap) has(b byte) bool {
	return bm[b>>3]&(1<<(b&7)) != 0
}

// Intersects reports whether any byte in block is a root edge. A false
// result proves the block contains no possible match start.
func (bm RootEdgeBitmap) Intersects(block []byte) bool {
	for _, b := range block {
		if bm.has(b) {
			return true
		}
	}
	return false
}
