package ahocorasick

// Capacity constants (§6). DefaultMaxPatterns/DefaultMaxStates size the
// simple engine; the Extended variants size the engine for dictionaries in
// the hundreds of thousands to low millions of patterns.
const (
	DefaultMaxPatterns  = 100_000
	ExtendedMaxPatterns = 2_000_000
	DefaultMaxStates    = 200_000
	ExtendedMaxStates   = 10_000_000
	Alphabet            = 256
)

// BuilderConfig controls the capacity an automaton is built for. Mirrors
// the functional-config-struct pattern used throughout the host engine
// (prefilter.TeddyConfig, dfa/lazy.Config): a plain struct with a
// Default*/Extended* constructor rather than variadic option functions.
type BuilderConfig struct {
	// MaxPatterns bounds how many patterns AddPattern will accept.
	MaxPatterns int
	// MaxStates bounds the automaton's state array; Build fails with
	// CapacityExceededError if the compiled trie would need more.
	MaxStates int
}

// DefaultBuilderConfig returns the capacity limits sized for the simple
// engine (up to 1e5 patterns, 2e5 states).
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{MaxPatterns: DefaultMaxPatterns, MaxStates: DefaultMaxStates}
}

// ExtendedBuilderConfig returns the capacity limits sized for the extended
// engine (up to 2e6 patterns, 1e7 states), for dictionaries too large for
// DefaultBuilderConfig.
func ExtendedBuilderConfig() BuilderConfig {
	return BuilderConfig{MaxPatterns: ExtendedMaxPatterns, MaxStates: ExtendedMaxStates}
}

// SearchConfig controls how an Automaton's Search dispatches between the
// scalar and SIMD matchers (§4.8). Most callers never need one; it exists
// for benchmarking one tier against the other and for targets where the
// SIMD block-skip optimization is not worth its folding overhead.
type SearchConfig struct {
	// ForceScalar disables CPU-feature detection and always runs the
	// scalar matcher, regardless of buffer length.
	ForceScalar bool
	// MinSIMDLen overrides minSIMDLen, the shortest buffer length the
	// SIMD matcher is attempted on. Zero means use the package default.
	MinSIMDLen int
}

// DefaultSearchConfig returns the dispatcher's default behavior: detect
// CPU features and use the SIMD matcher whenever the buffer is at least
// minSIMDLen bytes and at least one block of the detected tier's width.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{}
}
