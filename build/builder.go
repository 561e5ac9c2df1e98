// Package build implements the three-phase Aho-Corasick construction: trie
// goto edges, breadth-first failure links, and output propagation.
//
// The phase ordering follows itgcl/ahocorasick's buildTrie (insert patterns,
// then BFS the fail pointers using container/list as the queue, then derive
// an output/suffix chain) but operates on automaton.Storage's dense byte-
// keyed state array instead of per-node rune maps, and propagates outputs
// into each state's own list at build time rather than walking the suffix
// chain again at match time (§9's "output propagation vs follow-on-match"
// tradeoff).
package build

import (
	"errors"

	"github.com/coregx/ahocorasick/automaton"
	"github.com/coregx/ahocorasick/internal/sparse"
	"github.com/coregx/ahocorasick/pattern"
)

// ErrNoPatterns is returned by Compile when the pattern set is empty.
var ErrNoPatterns = errors.New("ahocorasick: cannot build an automaton with zero patterns")

// Result is everything the scanner needs from a successful build, beyond
// the Storage itself.
type Result struct {
	Storage *automaton.Storage

	// RootEdges is the set of byte values with a direct goto edge out of
	// the root, i.e. the first byte of some pattern. The SIMD scanner uses
	// it to skip blocks that cannot possibly start a match. Built as a
	// side effect of phase A, at negligible extra cost.
	RootEdges *sparse.Set
}

// Compile runs all three build phases over patterns and returns a fully
// built Result, or an error if patterns is empty or exceeds maxStates.
// patterns must not be mutated concurrently with this call.
func Compile(patterns *pattern.Set, maxStates int) (*Result, error) {
	if patterns.Len() == 0 {
		return nil, ErrNoPatterns
	}

	storage := automaton.NewStorage(maxStates)
	rootEdges := sparse.New(automaton.Alphabet)

	if err := buildTrie(storage, patterns, rootEdges); err != nil {
		return nil, err
	}

	order, err := buildFailureLinks(storage)
	if err != nil {
		return nil, err
	}

	propagateOutputs(storage, order)

	storage.Built = true
	return &Result{Storage: storage, RootEdges: rootEdges}, nil
}

// buildTrie is phase A: insert every pattern's bytes as trie goto edges,
// recording each pattern's id as a terminal output of the state it ends
// on.
func buildTrie(storage *automaton.Storage, patterns *pattern.Set, rootEdges *sparse.Set) error {
	for id := uint32(0); id < uint32(patterns.Len()); id++ {
		p, ok := patterns.Get(id)
		if !ok {
			continue
		}
		state := automaton.Root
		for i, b := range p {
			next := storage.States[state].Next[b]
			if next == automaton.Root {
				// The trie's goto edges are acyclic, so a 0 here always
				// means "missing edge", never "points back at root" -
				// allocate the new state.
				newState, err := storage.NewState()
				if err != nil {
					return err
				}
				storage.States[state].Next[b] = newState
				next = newState
				if state == automaton.Root {
					rootEdges.Insert(uint32(b))
				}
			}
			state = next
			if i == len(p)-1 {
				storage.AppendOutput(state, id)
			}
		}
	}
	return nil
}

// buildFailureLinks is phase B: a breadth-first pass that computes each
// state's failure link from its parent's already-finalized failure link.
// Returns the states in BFS order (root excluded) for phase C to reuse,
// since output propagation must also proceed in BFS order.
func buildFailureLinks(storage *automaton.Storage) ([]uint32, error) {
	order := make([]uint32, 0, storage.Len())
	queue := make([]uint32, 0, storage.Len())

	for b := 0; b < automaton.Alphabet; b++ {
		child := storage.States[automaton.Root].Next[b]
		if child != automaton.Root {
			storage.States[child].Failure = automaton.Root
			queue = append(queue, child)
		}
	}

	for len(queue) > 0 {
		r := queue[0]
		queue = queue[1:]
		order = append(order, r)

		for b := 0; b < automaton.Alphabet; b++ {
			u := storage.States[r].Next[b]
			if u == automaton.Root {
				continue
			}
			storage.States[u].Failure = failureFor(storage, r, byte(b))
			queue = append(queue, u)
		}
	}
	return order, nil
}

// failureFor computes the failure link for the child of r reached on byte
// b, by walking failure links starting at failure(r) until an edge on b is
// found or the root is reached. r's own failure link must already be
// finalized, which BFS order guarantees.
func failureFor(storage *automaton.Storage, r uint32, b byte) uint32 {
	f := storage.States[r].Failure
	for f != automaton.Root && storage.States[f].Next[b] == automaton.Root {
		f = storage.States[f].Failure
	}
	if edge := storage.States[f].Next[b]; edge != automaton.Root {
		return edge
	}
	return automaton.Root
}

// propagateOutputs is phase C: for each state in BFS order, append its
// failure link's outputs after its own, so a match-time lookup at any
// state needs only that state's local list (§4.5's "own ids, then
// propagated ids" ordering falls out of appending in this order).
func propagateOutputs(storage *automaton.Storage, order []uint32) {
	for _, s := range order {
		f := storage.States[s].Failure
		for _, id := range storage.Outputs(f) {
			storage.AppendOutput(s, id)
		}
	}
}
