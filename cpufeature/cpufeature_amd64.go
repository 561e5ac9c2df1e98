//go:build amd64

package cpufeature

import "golang.org/x/sys/cpu"

func probe() Features {
	return Features{
		AVX512F: cpu.X86.HasAVX512F,
		AVX2:    cpu.X86.HasAVX2,
	}
}
