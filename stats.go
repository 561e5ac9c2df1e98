package ahocorasick

import "sync/atomic"

// Stats is a point-in-time snapshot of an Automaton's usage counters (§3,
// "Statistics"). Values are monotonically increasing aside from AvgSearchNanos,
// which tracks a running mean, and are observable but never influence
// match results.
type Stats struct {
	Searches     uint64
	Matches      uint64
	BytesScanned uint64
	SIMDOps      uint64
	ScalarOps    uint64
	// AvgSearchNanos is a running mean of per-Search wall-clock duration,
	// in nanoseconds.
	AvgSearchNanos uint64
}

// statCounters holds the live atomic counters backing an Automaton's
// Stats(). Zero value is ready to use.
type statCounters struct {
	searches     atomic.Uint64
	matches      atomic.Uint64
	bytesScanned atomic.Uint64
	simdOps      atomic.Uint64
	scalarOps    atomic.Uint64
	avgNanos     atomic.Uint64
}

func (c *statCounters) recordSearch(matches int, bytesIn int, simd bool, elapsedNanos int64) {
	n := c.searches.Add(1)
	c.matches.Add(uint64(matches))
	c.bytesScanned.Add(uint64(bytesIn))
	if simd {
		c.simdOps.Add(1)
	} else {
		c.scalarOps.Add(1)
	}
	// Incremental mean: avg += (x - avg) / n, computed in signed arithmetic
	// so a sample below the current average doesn't underflow. Loaded and
	// stored without a lock, so under concurrent searches this converges
	// to the true mean rather than guaranteeing it exactly at every instant
	// - acceptable since §5 only requires atomic, not linearizable, counter
	// updates.
	prev := c.avgNanos.Load()
	delta := (elapsedNanos - int64(prev)) / int64(n)
	c.avgNanos.Store(uint64(int64(prev) + delta))
}

func (c *statCounters) snapshot() Stats {
	return Stats{
		Searches:       c.searches.Load(),
		Matches:        c.matches.Load(),
		BytesScanned:   c.bytesScanned.Load(),
		SIMDOps:        c.simdOps.Load(),
		ScalarOps:      c.scalarOps.Load(),
		AvgSearchNanos: c.avgNanos.Load(),
	}
}

func (c *statCounters) reset() {
	c.searches.Store(0)
	c.matches.Store(0)
	c.bytesScanned.Store(0)
	c.simdOps.Store(0)
	c.scalarOps.Store(0)
	c.avgNanos.Store(0)
}
