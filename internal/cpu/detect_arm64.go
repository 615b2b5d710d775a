//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl on arm64. ASIMD (NEON) is mandatory on ARMv8 but is
// still read from the feature registers.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
		HasNEON:      cpu.ARM64.HasASIMD,
	}
}
