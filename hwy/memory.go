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

// This file provides additional memory operations built on masked stores
// and on the strided form of gather and scatter.

// BlendedStore stores elements from v to dst only where mask is true.
// Existing values in dst where mask is false are preserved.
//
// This is useful when you want conditional updates without affecting
// the non-selected lanes in the destination.
func BlendedStore[T Lanes](v Vec[T], mask Mask[T], dst []T) {
	MaskStore(mask, v, dst)
}

// stride returns the offsets start, start+step, start+2*step, ...
func stride(start, step int) IndexFunc {
	return func(lane int) int { return start + lane*step }
}

// LoadInterleaved2 loads interleaved pairs and deinterleaves into two vectors.
// This converts Array-of-Structures (AoS) format to Structure-of-Arrays (SoA).
//
// Input memory layout (interleaved pairs):
//
//	[a0, b0, a1, b1, a2, b2, a3, b3, ...]
//
// Output vectors:
//
//	vec_a = [a0, a1, a2, a3, ...]
//	vec_b = [b0, b1, b2, b3, ...]
//
// src must hold 2*MaxLanes[T]() elements.
func LoadInterleaved2[T Lanes](src []T) (Vec[T], Vec[T]) {
	return Gather[T](src, stride(0, 2)), Gather[T](src, stride(1, 2))
}

// LoadInterleaved3 loads interleaved triples and deinterleaves into three
// vectors, e.g. RGB pixels or XYZ coordinates.
// src must hold 3*MaxLanes[T]() elements.
func LoadInterleaved3[T Lanes](src []T) (Vec[T], Vec[T], Vec[T]) {
	return Gather[T](src, stride(0, 3)), Gather[T](src, stride(1, 3)), Gather[T](src, stride(2, 3))
}

// StoreInterleaved2 stores two vectors interleaved to dst.
// This is the inverse of LoadInterleaved2.
// dst must hold 2*MaxLanes[T]() elements.
func StoreInterleaved2[T Lanes](a, b Vec[T], dst []T) {
	Scatter(a, dst, stride(0, 2))
	Scatter(b, dst, stride(1, 2))
}

// StoreInterleaved3 stores three vectors interleaved to dst.
// This is the inverse of LoadInterleaved3.
// dst must hold 3*MaxLanes[T]() elements.
func StoreInterleaved3[T Lanes](a, b, c Vec[T], dst []T) {
	Scatter(a, dst, stride(0, 3))
	Scatter(b, dst, stride(1, 3))
	Scatter(c, dst, stride(2, 3))
}
