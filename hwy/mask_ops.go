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

import "math/bits"

// This file holds the mask reductions and the logical operators between
// masks of different element types. Masks of different element types may
// be combined whenever their lane counts agree (int32 and float32 always
// do); the result takes the element type of the left operand.

// requireSameLanes panics with ErrLaneCountMismatch unless T and U have
// the same number of lanes on the active backend.
func requireSameLanes[T, U Lanes](op string) {
	if a, b := MaxLanes[T](), MaxLanes[U](); a != b {
		violate(op, ErrLaneCountMismatch, "%d vs %d lanes", a, b)
	}
}

// MaskAnd performs lane-wise AND on two masks of equal lane count.
func MaskAnd[T, U Lanes](a Mask[T], b Mask[U]) Mask[T] {
	requireSameLanes[T, U]("MaskAnd")
	return Mask[T]{bits: a.bits & b.bits}
}

// MaskOr performs lane-wise OR on two masks of equal lane count.
func MaskOr[T, U Lanes](a Mask[T], b Mask[U]) Mask[T] {
	requireSameLanes[T, U]("MaskOr")
	return Mask[T]{bits: a.bits | b.bits}
}

// MaskXor performs lane-wise XOR on two masks of equal lane count.
func MaskXor[T, U Lanes](a Mask[T], b Mask[U]) Mask[T] {
	requireSameLanes[T, U]("MaskXor")
	return Mask[T]{bits: a.bits ^ b.bits}
}

// MaskAndNot performs (~a) & b on masks of equal lane count, like a.AndNot(b).
func MaskAndNot[T, U Lanes](a Mask[T], b Mask[U]) Mask[T] {
	requireSameLanes[T, U]("MaskAndNot")
	return Mask[T]{bits: ^a.bits & b.bits & laneBits[T]()}
}

// MaskNot inverts all lanes in a mask.
func MaskNot[T Lanes](mask Mask[T]) Mask[T] {
	return mask.Not()
}

// MaskEqual reports whether two masks of equal lane count hold the same
// lane pattern.
func MaskEqual[T, U Lanes](a Mask[T], b Mask[U]) bool {
	requireSameLanes[T, U]("MaskEqual")
	return a.bits == b.bits
}

// MaskNotEqual reports whether two masks of equal lane count differ in
// any lane.
func MaskNotEqual[T, U Lanes](a Mask[T], b Mask[U]) bool {
	requireSameLanes[T, U]("MaskNotEqual")
	return a.bits != b.bits
}

// AllOf reports whether every lane is true.
func AllOf[T Lanes](mask Mask[T]) bool {
	return mask.IsFull()
}

// AnyOf reports whether at least one lane is true.
func AnyOf[T Lanes](mask Mask[T]) bool {
	return mask.bits != 0
}

// NoneOf reports whether every lane is false.
func NoneOf[T Lanes](mask Mask[T]) bool {
	return mask.bits == 0
}

// SomeOf reports whether some but not all lanes are true.
func SomeOf[T Lanes](mask Mask[T]) bool {
	return mask.bits != 0 && !mask.IsFull()
}

// CountTrue counts true lanes in mask.
// This is a function wrapper around Mask.Count() for consistency.
func CountTrue[T Lanes](mask Mask[T]) int {
	return mask.Count()
}

// AllTrue returns true if all lanes are true.
func AllTrue[T Lanes](mask Mask[T]) bool {
	return mask.IsFull()
}

// AllFalse returns true if all lanes are false.
func AllFalse[T Lanes](mask Mask[T]) bool {
	return mask.bits == 0
}

// FindFirstTrue returns index of first true lane, or -1 if none.
func FindFirstTrue[T Lanes](mask Mask[T]) int {
	if mask.bits == 0 {
		return -1
	}
	return bits.TrailingZeros64(mask.bits)
}

// FindLastTrue returns index of last true lane, or -1 if none.
func FindLastTrue[T Lanes](mask Mask[T]) int {
	return 63 - bits.LeadingZeros64(mask.bits)
}

// BitsFromMask converts mask to bitmask integer.
// Lane i corresponds to bit i of the result.
func BitsFromMask[T Lanes](mask Mask[T]) uint64 {
	return mask.bits
}
