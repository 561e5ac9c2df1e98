//go:build arm64

package cpufeature

import "golang.org/x/sys/cpu"

func probe() Features {
	return Features{
		NEON: cpu.ARM64.HasASIMD,
	}
}
