// Package scanner implements the automaton search loop: folding input
// bytes to lowercase, walking goto/failure transitions, and emitting
// matches in end-position order.
//
// Search (the scalar reference loop, §4.6) and the SIMD block scanner
// (§4.7) share the same per-byte transition step, byteStep, so that their
// match sequences are byte-identical by construction rather than by
// coincidence - the SIMD loop only changes how bytes are folded ahead of
// that shared step (and which root-state blocks it skips), never how a
// state reacts to a folded byte.
package scanner

import "github.com/coregx/ahocorasick/automaton"

// Search walks text over storage from the root state, scalarly, emitting
// up to len(out) matches in nondecreasing end-position order and returning
// how many were written. lengths is indexed by pattern id and gives each
// pattern's byte length, used to convert an end-position hit into a
// (Offset, Length) pair. This is the reference implementation every SIMD
// tier's output must match exactly (§4.7's "byte-identical" guarantee).
func Search(storage *automaton.Storage, lengths []uint32, text []byte, out []automaton.Match) int {
	n := 0
	ScanRange(storage, lengths, text, 0, automaton.Root, out, &n)
	return n
}

// ScanRange runs the shared transition loop over text[start:], beginning
// at the automaton state `state`, appending matches to out (stopping once
// it is full) and returns the state the cursor ends in. It is the
// building block both Search and the SIMD tail use, so a SIMD block loop
// can hand off its cursor state and have the remainder scanned identically
// to a pure scalar run.
func ScanRange(storage *automaton.Storage, lengths []uint32, text []byte, start int, state uint32, out []automaton.Match, n *int) uint32 {
	for i := start; i < len(text); i++ {
		b := foldByte(text[i])
		state = byteStep(storage, state, b)
		if !emit(storage, lengths, state, i, out, n) {
			return state
		}
	}
	return state
}

// byteStep performs one automaton transition: follow failure links while
// there is no goto edge on b and the cursor is not already at the root,
// then take the edge (which may itself be the root, if none exists).
func byteStep(storage *automaton.Storage, state uint32, b byte) uint32 {
	for state != automaton.Root && storage.States[state].Next[b] == automaton.Root {
		state = storage.States[state].Failure
	}
	return storage.States[state].Next[b]
}

// emit appends state's reported matches, each ending at text position i
// (inclusive), to out as fully resolved (Offset, Length) pairs, stopping
// and returning false the moment out is full.
func emit(storage *automaton.Storage, lengths []uint32, state uint32, i int, out []automaton.Match, n *int) bool {
	for _, id := range storage.Outputs(state) {
		if *n >= len(out) {
			return false
		}
		length := lengths[id]
		out[*n] = automaton.NewMatch(uint64(i+1)-uint64(length), uint64(length), id)
		*n++
	}
	return true
}

// foldByte is the ASCII-lowercase fold applied to every byte before it is
// used as a transition index (§3's "Case fold" - 'A'..'Z' become 'a'..'z',
// everything else passes through).
func foldByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
