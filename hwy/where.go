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

// WhereExpr scopes one assignment or arithmetic update to the lanes
// selected by a mask. It is created by Where and consumed by exactly one
// of its methods:
//
//	hwy.Where(m, &v).AddScalar(2)   // v[i] += 2 where m[i]
//	old := hwy.Where(m, &v).PostInc()
//
// A WhereExpr borrows the target vector. Use it within the statement that
// created it; do not store it or let it outlive the target.
//
// Only the selected lanes are computed and written. The other lanes of the
// target are left byte-for-byte unchanged, and no operand lane outside the
// mask is ever used in arithmetic, so an integer division by a zero in a
// masked-off lane cannot fault.
type WhereExpr[T Lanes] struct {
	mask   Mask[T]
	target *Vec[T]
}

// Where binds mask to target, producing the masked view that the next
// operation applies through.
func Where[T Lanes](mask Mask[T], target *Vec[T]) WhereExpr[T] {
	return WhereExpr[T]{mask: mask, target: target}
}

// trailingLane returns the lowest set lane of a non-zero bit pattern.
func trailingLane(m uint64) int {
	return bits.TrailingZeros64(m)
}

// blend copies the lanes of src selected by mask into dst.
func blend[T Lanes](dst *Vec[T], mask Mask[T], src Vec[T]) {
	d, s := dst.lanes(), src.lanes()
	for m := mask.bits; m != 0; m &= m - 1 {
		i := trailingLane(m)
		d[i] = s[i]
	}
}

func (w WhereExpr[T]) update(x Vec[T], op func(a, b T) T) Vec[T] {
	d, s := w.target.lanes(), x.lanes()
	for m := w.mask.bits; m != 0; m &= m - 1 {
		i := trailingLane(m)
		d[i] = op(d[i], s[i])
	}
	return *w.target
}

func (w WhereExpr[T]) updateScalar(x T, op func(a, b T) T) Vec[T] {
	d := w.target.lanes()
	for m := w.mask.bits; m != 0; m &= m - 1 {
		i := trailingLane(m)
		d[i] = op(d[i], x)
	}
	return *w.target
}

// Mask returns the lanes the expression applies to.
func (w WhereExpr[T]) Mask() Mask[T] {
	return w.mask
}

// Assign copies the selected lanes of src into the target and returns
// the updated target.
func (w WhereExpr[T]) Assign(src Vec[T]) Vec[T] {
	blend(w.target, w.mask, src)
	return *w.target
}

// AssignScalar sets the selected lanes to x and returns the updated target.
func (w WhereExpr[T]) AssignScalar(x T) Vec[T] {
	return w.updateScalar(x, func(_, b T) T { return b })
}

// Add adds x to the selected lanes and returns the updated target.
func (w WhereExpr[T]) Add(x Vec[T]) Vec[T] {
	return w.update(x, add[T])
}

// AddScalar adds x to the selected lanes and returns the updated target.
func (w WhereExpr[T]) AddScalar(x T) Vec[T] {
	return w.updateScalar(x, add[T])
}

// Sub subtracts x from the selected lanes and returns the updated target.
func (w WhereExpr[T]) Sub(x Vec[T]) Vec[T] {
	return w.update(x, sub[T])
}

// SubScalar subtracts x from the selected lanes and returns the updated target.
func (w WhereExpr[T]) SubScalar(x T) Vec[T] {
	return w.updateScalar(x, sub[T])
}

// Mul multiplies the selected lanes by x and returns the updated target.
func (w WhereExpr[T]) Mul(x Vec[T]) Vec[T] {
	return w.update(x, mul[T])
}

// MulScalar multiplies the selected lanes by x and returns the updated target.
func (w WhereExpr[T]) MulScalar(x T) Vec[T] {
	return w.updateScalar(x, mul[T])
}

// Div divides the selected lanes by x and returns the updated target.
// Only the selected lanes of x are used as divisors.
func (w WhereExpr[T]) Div(x Vec[T]) Vec[T] {
	return w.update(x, div[T])
}

// DivScalar divides the selected lanes by x and returns the updated target.
// An empty mask never divides, so x may then be zero.
func (w WhereExpr[T]) DivScalar(x T) Vec[T] {
	return w.updateScalar(x, div[T])
}

// Apply replaces each selected lane with fn of its current value and
// returns the updated target.
func (w WhereExpr[T]) Apply(fn func(T) T) Vec[T] {
	d := w.target.lanes()
	for m := w.mask.bits; m != 0; m &= m - 1 {
		i := trailingLane(m)
		d[i] = fn(d[i])
	}
	return *w.target
}

// Inc increments the selected lanes by one and returns the updated target
// (prefix increment).
func (w WhereExpr[T]) Inc() Vec[T] {
	return w.updateScalar(1, add[T])
}

// Dec decrements the selected lanes by one and returns the updated target
// (prefix decrement).
func (w WhereExpr[T]) Dec() Vec[T] {
	return w.updateScalar(1, sub[T])
}

// PostInc increments the selected lanes by one and returns the whole
// target as it was before the increment (postfix increment).
func (w WhereExpr[T]) PostInc() Vec[T] {
	old := *w.target
	w.updateScalar(1, add[T])
	return old
}

// PostDec decrements the selected lanes by one and returns the whole
// target as it was before the decrement (postfix decrement).
func (w WhereExpr[T]) PostDec() Vec[T] {
	old := *w.target
	w.updateScalar(1, sub[T])
	return old
}

// SetZero sets the lanes selected by mask to zero. It writes the zero
// pattern directly instead of going through Where(mask, v).Assign(Zero()).
func (v *Vec[T]) SetZero(mask Mask[T]) {
	lanes := v.lanes()
	for m := mask.bits; m != 0; m &= m - 1 {
		lanes[trailingLane(m)] = 0
	}
}

// SetZeroInverted sets the lanes not selected by mask to zero.
func (v *Vec[T]) SetZeroInverted(mask Mask[T]) {
	v.SetZero(mask.Not())
}
