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

// Package hwy provides portable fixed-width SIMD values: vectors, the masks
// that select their lanes, masked assignment and indexed memory access.
//
// The lane count of every element type is fixed when the package is built.
// Build tags pick the backend (SSE2 is the amd64 default, NEON on arm64,
// hwy_avx2 / hwy_avx512 for wider x86 registers, hwy_scalar for one lane).
//
// Basic usage:
//
//	import "github.com/ajroetker/go-lanes/hwy"
//
//	v := hwy.Load(data)
//	m := hwy.LessThan(v, hwy.Set[float32](0))
//
//	// Negate only the negative lanes.
//	hwy.Where(m, &v).MulScalar(-1)
//
//	// Write every selected lane to out[idx[i]].
//	hwy.ScatterMasked(v, out, hwy.Indexes[int32](idx), m)
package hwy

import (
	"fmt"
	"unsafe"
)

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// register is the backing store of one vector. It is sized for the widest
// register of the active backend and 8-byte aligned, so any lane type can
// be laid over it.
type register [registerBytes / 8]uint64

// Vec is a fixed-width vector of MaxLanes[T]() lanes.
//
// Vec is a value: assignment copies the lanes, and a Vec never shares
// storage with a slice or with another Vec. The lanes are laid out exactly
// like a []T of the same length; bytes past the last lane are always zero,
// so two vectors compare equal with == iff they are byte-identical.
type Vec[T Lanes] struct {
	raw register
}

// lanes returns the vector's lanes as a slice aliasing v.
func (v *Vec[T]) lanes() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.raw[0])), MaxLanes[T]())
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return MaxLanes[T]()
}

// Data returns a copy of the lanes.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	out := make([]T, MaxLanes[T]())
	copy(out, v.lanes())
	return out
}

// Store writes the vector's lanes to dst.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	copy(dst, v.lanes())
}

// Get returns lane i.
func (v Vec[T]) Get(i int) T {
	return v.lanes()[i]
}

// With returns a copy of v with lane i replaced by value.
func (v Vec[T]) With(i int, value T) Vec[T] {
	v.lanes()[i] = value
	return v
}

// String formats the lanes like a slice: "[1 2 3 4]".
func (v Vec[T]) String() string {
	return fmt.Sprint(v.lanes())
}

// Mask is a fixed-width boolean vector with one lane per lane of Vec[T].
//
// The lanes are kept as a bit pattern: bit i is lane i, and bits at or
// above MaxLanes[T]() are always clear. Two masks of the same type
// compare equal with == iff their lane patterns match.
//
// The zero Mask has every lane false.
type Mask[T Lanes] struct {
	bits uint64
}

// laneBits returns the bit pattern with all N lanes of T set.
func laneBits[T Lanes]() uint64 {
	n := MaxLanes[T]()
	if n >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(n) - 1
}

// isFloat reports whether T is a floating-point type.
// Integer division truncates one half to zero; float division does not.
func isFloat[T Lanes]() bool {
	one := T(1)
	return one/2 != 0
}
