// Package cpufeature detects, once per process, which SIMD instruction
// sets the host CPU offers the scanner, mirroring how coregx/coregex's own
// simd and prefilter packages gate their assembly kernels on
// golang.org/x/sys/cpu flags (hasAVX2, hasSSSE3 in teddy_ssse3_amd64.go).
//
// Unlike the C original, which exposed ac_detect_avx512/ac_detect_avx2/
// ac_detect_neon as three separate calls each re-reading CPUID, this
// package probes once behind a sync.Once and hands back an immutable
// snapshot.
package cpufeature

import "sync"

// Features is a point-in-time snapshot of which vector instruction sets
// the scanner may use. Zero value means "nothing detected" (the safe
// default on an unrecognized architecture).
type Features struct {
	AVX512F bool
	AVX2    bool
	NEON    bool
}

// BlockWidth returns the widest SIMD block size these features support,
// per §4.7's tier table (64 for AVX-512, 32 for AVX2, 16 for NEON, 0 for
// scalar-only).
func (f Features) BlockWidth() int {
	switch {
	case f.AVX512F:
		return 64
	case f.AVX2:
		return 32
	case f.NEON:
		return 16
	default:
		return 0
	}
}

var (
	once     sync.Once
	detected Features
)

// Detect returns the cached CPU feature snapshot, probing the hardware on
// first call only. Safe for concurrent use.
func Detect() Features {
	once.Do(func() {
		detected = probe()
	})
	return detected
}

// reset is a test-only hook that forces the next Detect call to re-probe.
// Production code never calls this; real hardware features cannot change
// mid-process.
func reset() {
	once = sync.Once{}
}
