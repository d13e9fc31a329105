// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import "unsafe"

// DispatchLevel represents the SIMD instruction set the package was built for.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD: every type has exactly one lane.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// CurrentLevel returns the SIMD instruction set the package was built for.
// The level is fixed at build time; see the package documentation for the
// build tags that select it.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return registerBytes
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// HardwareSupported reports whether the running CPU implements the
// instruction set the package was built for. Running vector code built for
// a missing extension is the caller's responsibility to avoid.
func HardwareSupported() bool {
	return hardwareSupported()
}

// MaxLanes returns the number of lanes of type T for the active backend.
//
// For example, with SSE2 (128 bits / 16 bytes):
//   - float32: 16/4 = 4 lanes
//   - float64: 16/8 = 2 lanes
//   - int16: 16/2 = 8 lanes
//
// NEON keeps float64 at a single lane, and the scalar backend has one lane
// for every type.
func MaxLanes[T Lanes]() int {
	var dummy T
	return laneCount(unsafe.Sizeof(dummy), isFloat[T]())
}
