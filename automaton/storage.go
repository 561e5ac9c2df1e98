package automaton

import "fmt"

// StateCapacityError is returned when the builder would need to allocate
// more states than Storage was sized for.
type StateCapacityError struct {
	Max int
}

func (e *StateCapacityError) Error() string {
	return fmt.Sprintf("ahocorasick: state capacity exceeded (max %d states)", e.Max)
}

// Storage owns the compiled automaton's state array and the overflow
// output table it spills into once a state accumulates more than
// InlineOutputCap pattern ids. It is filled in by the builder and is
// read-only once Built is true (§5's "read-only after build" rule).
type Storage struct {
	States []State

	// outputTable holds the overflow output lists for states whose output
	// set exceeds InlineOutputCap entries, referenced by
	// State.overflowOffset/outputCount.
	outputTable []uint32

	max   int
	Built bool
}

// NewStorage allocates an unbuilt Storage with room for up to maxStates
// states. The root state (id 0) is pre-allocated.
func NewStorage(maxStates int) *Storage {
	s := &Storage{
		States: make([]State, 1, maxStates),
		max:    maxStates,
	}
	return s
}

// NewState allocates a fresh zero-initialized state and returns its id, or
// a *StateCapacityError if the configured maximum would be exceeded.
func (s *Storage) NewState() (uint32, error) {
	if len(s.States) >= s.max {
		return 0, &StateCapacityError{Max: s.max}
	}
	s.States = append(s.States, State{})
	return uint32(len(s.States) - 1), nil
}

// Len returns the number of allocated states, including the root.
func (s *Storage) Len() int {
	return len(s.States)
}

// AppendOutput records that pattern id matches when state is entered. Ids
// appended earlier for the same state are reported first by Outputs,
// giving the deterministic own-ids-before-propagated-ids order §4.5
// requires when the builder appends a state's own terminal ids before its
// propagated ones.
func (s *Storage) AppendOutput(state uint32, id uint32) {
	st := &s.States[state]
	if st.outputCount < InlineOutputCap {
		st.output[st.outputCount] = id
		st.outputCount++
		return
	}
	if st.outputCount == InlineOutputCap {
		// First overflow: migrate the inline ids to the table so Outputs
		// has one contiguous list to read from.
		st.overflowOffset = uint32(len(s.outputTable))
		s.outputTable = append(s.outputTable, st.output[:]...)
		s.outputTable = append(s.outputTable, id)
		st.outputCount++
		return
	}
	// Already overflowed. Another state may have appended to the table
	// after this one's region, so it is only safe to extend in place when
	// this state's region is still the table's tail; otherwise relocate it
	// to the new tail first to keep it contiguous.
	tailStart := uint32(len(s.outputTable)) - st.outputCount
	if tailStart != st.overflowOffset {
		existing := append([]uint32(nil), s.outputTable[st.overflowOffset:st.overflowOffset+st.outputCount]...)
		st.overflowOffset = uint32(len(s.outputTable))
		s.outputTable = append(s.outputTable, existing...)
	}
	s.outputTable = append(s.outputTable, id)
	st.outputCount++
}

// Outputs returns the pattern ids reported when state is entered, in the
// order they were appended (own ids before failure-propagated ids).
func (s *Storage) Outputs(state uint32) []uint32 {
	st := &s.States[state]
	if st.outputCount <= InlineOutputCap {
		return st.output[:st.outputCount]
	}
	return s.outputTable[st.overflowOffset : st.overflowOffset+st.outputCount]
}

// Reset discards all states but the root and clears Built, used when the
// pattern set changes and the automaton must be rebuilt from scratch.
func (s *Storage) Reset() {
	s.States = s.States[:1]
	s.States[0] = State{}
	s.outputTable = s.outputTable[:0]
	s.Built = false
}
