// Package cpu reports the host features that matter when reading benchmark
// numbers: architecture, logical CPU count and the available vector
// extensions.
//
// Detection runs once and is cached. Tests may override the result with
// SetForcedFeatures.
package cpu

import (
	"runtime"
	"strings"
	"sync"
)

// Features describes the host a benchmark ran on.
type Features struct {
	Architecture string `json:"architecture"`
	NumCPU       int    `json:"numCPU"`

	HasSSE2   bool `json:"sse2"`
	HasAVX    bool `json:"avx"`
	HasAVX2   bool `json:"avx2"`
	HasAVX512 bool `json:"avx512"`
	HasNEON   bool `json:"neon"`
}

var (
	detectOnce     sync.Once
	detected       Features
	forcedMu       sync.RWMutex
	forcedFeatures *Features
)

// Detect returns the cached host features.
func Detect() Features {
	forcedMu.RLock()
	forced := forcedFeatures
	forcedMu.RUnlock()
	if forced != nil {
		return *forced
	}

	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
		detected.NumCPU = runtime.NumCPU()
	})
	return detected
}

// SetForcedFeatures overrides detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMu.Lock()
	defer forcedMu.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetForcedFeatures restores real detection.
func ResetForcedFeatures() {
	forcedMu.Lock()
	forcedFeatures = nil
	forcedMu.Unlock()
}

// VectorExtensions lists the detected vector extensions, widest last.
func (f Features) VectorExtensions() []string {
	var ext []string
	if f.HasSSE2 {
		ext = append(ext, "SSE2")
	}
	if f.HasAVX {
		ext = append(ext, "AVX")
	}
	if f.HasAVX2 {
		ext = append(ext, "AVX2")
	}
	if f.HasAVX512 {
		ext = append(ext, "AVX-512")
	}
	if f.HasNEON {
		ext = append(ext, "NEON")
	}
	return ext
}

// Has256BitLanes reports whether the host has a native register wide enough
// for eight 32-bit lanes.
func (f Features) Has256BitLanes() bool {
	return f.HasAVX2 || f.HasAVX512
}

func (f Features) String() string {
	ext := f.VectorExtensions()
	if len(ext) == 0 {
		ext = []string{"none"}
	}
	return f.Architecture + " (" + strings.Join(ext, ", ") + ")"
}
