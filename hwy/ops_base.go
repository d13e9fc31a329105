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

// This file provides the portable lane-wise implementations of the vector
// operations. Every operation acts on each lane independently, in lane
// order, and produces a new value.

// Load creates a vector from the first MaxLanes[T]() elements of src.
// If src is shorter, the remaining lanes are zero.
func Load[T Lanes](src []T) Vec[T] {
	var v Vec[T]
	copy(v.lanes(), src)
	return v
}

// LoadAt creates a vector from src[offset:], like Load.
func LoadAt[T Lanes](src []T, offset int) Vec[T] {
	return Load(src[offset:])
}

// FromLanes creates a vector from explicit lane values, lane 0 first.
// Missing lanes are zero, extra values are ignored.
func FromLanes[T Lanes](values ...T) Vec[T] {
	return Load(values)
}

// Store writes a vector's lanes to dst, up to len(dst) of them.
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst, v.lanes())
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	var v Vec[T]
	lanes := v.lanes()
	for i := range lanes {
		lanes[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{}
}

// Iota creates a vector with lane i set to i: [0, 1, 2, ...].
func Iota[T Lanes]() Vec[T] {
	var v Vec[T]
	lanes := v.lanes()
	for i := range lanes {
		lanes[i] = T(i)
	}
	return v
}

func mapLanes[T Lanes](a Vec[T], op func(x T) T) Vec[T] {
	var r Vec[T]
	out, x := r.lanes(), a.lanes()
	for i := range out {
		out[i] = op(x[i])
	}
	return r
}

func zipLanes[T Lanes](a, b Vec[T], op func(x, y T) T) Vec[T] {
	var r Vec[T]
	out, x, y := r.lanes(), a.lanes(), b.lanes()
	for i := range out {
		out[i] = op(x[i], y[i])
	}
	return r
}

func compareLanes[T Lanes](a, b Vec[T], pred func(x, y T) bool) Mask[T] {
	x, y := a.lanes(), b.lanes()
	var m uint64
	for i := range x {
		if pred(x[i], y[i]) {
			m |= 1 << uint(i)
		}
	}
	return Mask[T]{bits: m}
}

func add[T Lanes](x, y T) T { return x + y }
func sub[T Lanes](x, y T) T { return x - y }
func mul[T Lanes](x, y T) T { return x * y }
func div[T Lanes](x, y T) T { return x / y }

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	return zipLanes(a, b, add[T])
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	return zipLanes(a, b, sub[T])
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	return zipLanes(a, b, mul[T])
}

// Div performs element-wise division.
// For integer types a zero lane in b panics like any Go integer division;
// use Where(...).Div to divide only the lanes where b is known non-zero.
func Div[T Lanes](a, b Vec[T]) Vec[T] {
	return zipLanes(a, b, div[T])
}

// Neg negates each lane. Unsigned lanes wrap around.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	return mapLanes(v, func(x T) T { return -x })
}

// Abs returns the absolute value of each lane.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	return mapLanes(v, func(x T) T {
		if x < 0 {
			return -x
		}
		return x
	})
}

// Min returns the element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	return zipLanes(a, b, func(x, y T) T { return min(x, y) })
}

// Max returns the element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	return zipLanes(a, b, func(x, y T) T { return max(x, y) })
}

// ReduceSum returns the sum of all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for _, x := range v.lanes() {
		sum += x
	}
	return sum
}

// ReduceMin returns the smallest lane.
func ReduceMin[T Lanes](v Vec[T]) T {
	lanes := v.lanes()
	m := lanes[0]
	for _, x := range lanes[1:] {
		m = min(m, x)
	}
	return m
}

// ReduceMax returns the largest lane.
func ReduceMax[T Lanes](v Vec[T]) T {
	lanes := v.lanes()
	m := lanes[0]
	for _, x := range lanes[1:] {
		m = max(m, x)
	}
	return m
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	return compareLanes(a, b, func(x, y T) bool { return x == y })
}

// NotEqual performs element-wise inequality comparison.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compareLanes(a, b, func(x, y T) bool { return x != y })
}

// LessThan performs element-wise less-than comparison.
// Compare against a scalar by broadcasting it: LessThan(v, Set(x)).
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compareLanes(a, b, func(x, y T) bool { return x < y })
}

// LessEqual performs element-wise less-than-or-equal comparison.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compareLanes(a, b, func(x, y T) bool { return x <= y })
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compareLanes(a, b, func(x, y T) bool { return x > y })
}

// GreaterEqual performs element-wise greater-than-or-equal comparison.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compareLanes(a, b, func(x, y T) bool { return x >= y })
}

// IfThenElse selects a where mask is true and b elsewhere.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	r := b
	blend(&r, mask, a)
	return r
}

// IfThenElseZero returns a where mask is true, zero otherwise.
func IfThenElseZero[T Lanes](mask Mask[T], a Vec[T]) Vec[T] {
	a.SetZero(mask.Not())
	return a
}

// IfThenZeroElse returns zero where mask is true, b otherwise.
func IfThenZeroElse[T Lanes](mask Mask[T], b Vec[T]) Vec[T] {
	b.SetZero(mask)
	return b
}

// MaskLoad loads src[i] for the lanes where the mask is true; other
// lanes are zero and their elements of src are never read.
func MaskLoad[T Lanes](mask Mask[T], src []T) Vec[T] {
	var v Vec[T]
	lanes := v.lanes()
	for m := mask.bits; m != 0; m &= m - 1 {
		i := trailingLane(m)
		lanes[i] = src[i]
	}
	return v
}

// MaskStore stores the lanes where the mask is true to dst; other
// elements of dst are neither read nor written.
func MaskStore[T Lanes](mask Mask[T], v Vec[T], dst []T) {
	lanes := v.lanes()
	for m := mask.bits; m != 0; m &= m - 1 {
		i := trailingLane(m)
		dst[i] = lanes[i]
	}
}
