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

import (
	"math/rand/v2"
	"unsafe"
)

// RandomVec returns a vector of pseudo-random lanes drawn from r.
// Float lanes are uniform in [0, 1); integer lanes use every bit pattern.
// It is meant for tests and benchmarks.
func RandomVec[T Lanes](r *rand.Rand) Vec[T] {
	var v Vec[T]
	lanes := v.lanes()
	var zero T
	size := unsafe.Sizeof(zero)
	for i := range lanes {
		switch {
		case !isFloat[T]():
			// The conversion keeps the low bits of the 64-bit draw.
			lanes[i] = T(r.Uint64())
		case size == 4:
			lanes[i] = T(r.Float32())
		default:
			lanes[i] = T(r.Float64())
		}
	}
	return v
}

// RandomMask returns a mask with each lane independently true with
// probability one half.
func RandomMask[T Lanes](r *rand.Rand) Mask[T] {
	return MaskFromBits[T](r.Uint64())
}
