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
	"fmt"
	"math/bits"
)

// FullMask returns a mask with every lane true.
func FullMask[T Lanes]() Mask[T] {
	return Mask[T]{bits: laneBits[T]()}
}

// EmptyMask returns a mask with every lane false.
func EmptyMask[T Lanes]() Mask[T] {
	return Mask[T]{}
}

// MaskOf broadcasts b to every lane.
func MaskOf[T Lanes](b bool) Mask[T] {
	if b {
		return FullMask[T]()
	}
	return Mask[T]{}
}

// LoadMask builds a mask from the first MaxLanes[T]() booleans of src.
// It is the inverse of Mask.Store and accepts src at any offset into a
// larger buffer.
func LoadMask[T Lanes](src []bool) Mask[T] {
	n := MaxLanes[T]()
	_ = src[n-1]
	src = src[:n]
	var m uint64
	for i, b := range src {
		if b {
			m |= 1 << uint(i)
		}
	}
	return Mask[T]{bits: m}
}

// MaskFromBits creates a mask from a bitmask integer.
// Bit i of bits corresponds to lane i; bits past the last lane are ignored.
func MaskFromBits[T Lanes](bits uint64) Mask[T] {
	return Mask[T]{bits: bits & laneBits[T]()}
}

// MaskFromLaneFunc sets lane i to f(i).
func MaskFromLaneFunc[T Lanes](f func(lane int) bool) Mask[T] {
	var m uint64
	for i := range MaxLanes[T]() {
		if f(i) {
			m |= 1 << uint(i)
		}
	}
	return Mask[T]{bits: m}
}

// FirstN creates a mask with the first n lanes set to true.
// It equals LessThan(Iota[T](), Set(n)) for every n, without the
// conversion of n to T.
func FirstN[T Lanes](n int) Mask[T] {
	n = max(0, min(n, MaxLanes[T]()))
	if n >= 64 {
		return FullMask[T]()
	}
	return Mask[T]{bits: 1<<uint(n) - 1}
}

// LastN creates a mask with the last n lanes set to true.
func LastN[T Lanes](n int) Mask[T] {
	lanes := MaxLanes[T]()
	n = max(0, min(n, lanes))
	return FirstN[T](lanes - n).Not()
}

// ConvertMask converts a mask between element types of possibly different
// lane counts. Lane i of the result is lane i of m for every lane both
// types have; lanes the source does not have are false.
func ConvertMask[To, From Lanes](m Mask[From]) Mask[To] {
	return Mask[To]{bits: m.bits & laneBits[To]()}
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return MaxLanes[T]()
}

// Bits returns the lane pattern as an integer, lane i in bit i.
func (m Mask[T]) Bits() uint64 {
	return m.bits
}

// Get returns whether lane i is active.
// Lanes outside [0, NumLanes()) read as false.
func (m Mask[T]) Get(i int) bool {
	if i < 0 || i >= MaxLanes[T]() {
		return false
	}
	return m.bits&(1<<uint(i)) != 0
}

// Set sets lane i to v. It panics with ErrLaneOutOfRange for lanes
// outside [0, NumLanes()).
func (m *Mask[T]) Set(i int, v bool) {
	if i < 0 || i >= MaxLanes[T]() {
		violate("Mask.Set", ErrLaneOutOfRange, "lane %d of %d", i, MaxLanes[T]())
	}
	if v {
		m.bits |= 1 << uint(i)
	} else {
		m.bits &^= 1 << uint(i)
	}
}

// Count returns the number of true lanes.
func (m Mask[T]) Count() int {
	return bits.OnesCount64(m.bits)
}

// IsFull reports whether every lane is true.
func (m Mask[T]) IsFull() bool {
	return m.bits == laneBits[T]()
}

// IsEmpty reports whether every lane is false.
func (m Mask[T]) IsEmpty() bool {
	return m.bits == 0
}

// FirstOne returns the index of the lowest true lane.
//
// The mask must not be empty; check IsEmpty first. In hwydebug builds an
// empty mask panics with ErrEmptyMask, otherwise the result is
// unspecified. FindFirstTrue is the variant that reports -1 instead.
func (m Mask[T]) FirstOne() int {
	if debugChecks && m.bits == 0 {
		violate("Mask.FirstOne", ErrEmptyMask, "%d lanes", MaxLanes[T]())
	}
	return bits.TrailingZeros64(m.bits)
}

// Shifted returns a mask whose lane i holds lane i+k of m, or false when
// i+k falls outside the mask. k may be negative. This is a shift, not a
// rotate: for |k| >= NumLanes() the result is empty.
func (m Mask[T]) Shifted(k int) Mask[T] {
	n := MaxLanes[T]()
	switch {
	case k >= n || -k >= n:
		return Mask[T]{}
	case k >= 0:
		return Mask[T]{bits: m.bits >> uint(k)}
	default:
		return Mask[T]{bits: (m.bits << uint(-k)) & laneBits[T]()}
	}
}

// Not inverts every lane.
func (m Mask[T]) Not() Mask[T] {
	return Mask[T]{bits: ^m.bits & laneBits[T]()}
}

// And returns the lane-wise conjunction of m and o.
func (m Mask[T]) And(o Mask[T]) Mask[T] {
	return Mask[T]{bits: m.bits & o.bits}
}

// Or returns the lane-wise disjunction of m and o.
func (m Mask[T]) Or(o Mask[T]) Mask[T] {
	return Mask[T]{bits: m.bits | o.bits}
}

// Xor returns the lane-wise exclusive or of m and o.
func (m Mask[T]) Xor(o Mask[T]) Mask[T] {
	return Mask[T]{bits: m.bits ^ o.bits}
}

// AndNot returns !m & o, the same operand order as MaskAndNot: the
// receiver is the mask that gets inverted.
func (m Mask[T]) AndNot(o Mask[T]) Mask[T] {
	return Mask[T]{bits: o.bits &^ m.bits}
}

// Equal reports whether m and o have the same lane pattern.
func (m Mask[T]) Equal(o Mask[T]) bool {
	return m.bits == o.bits
}

// NotEqual reports whether m and o differ in any lane.
func (m Mask[T]) NotEqual(o Mask[T]) bool {
	return m.bits != o.bits
}

// Store writes the lanes to dst[0:NumLanes()] as canonical booleans.
// dst may start at any offset of a larger buffer.
func (m Mask[T]) Store(dst []bool) {
	n := MaxLanes[T]()
	_ = dst[n-1]
	dst = dst[:n]
	for i := range dst {
		dst[i] = m.bits&(1<<uint(i)) != 0
	}
}

// String formats the mask as one digit per lane, lane 0 first: "1010".
func (m Mask[T]) String() string {
	text, _ := m.MarshalText()
	return string(text)
}

// MarshalText implements encoding.TextMarshaler with the String format.
func (m Mask[T]) MarshalText() ([]byte, error) {
	n := MaxLanes[T]()
	out := make([]byte, n)
	for i := range out {
		out[i] = '0' + byte(m.bits>>uint(i)&1)
	}
	return out, nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text must hold
// exactly NumLanes() digits, each '0' or '1'.
func (m *Mask[T]) UnmarshalText(text []byte) error {
	n := MaxLanes[T]()
	if len(text) != n {
		return fmt.Errorf("%w: %d digits for %d lanes", ErrMaskText, len(text), n)
	}
	var b uint64
	for i, c := range text {
		switch c {
		case '0':
		case '1':
			b |= 1 << uint(i)
		default:
			return fmt.Errorf("%w: lane %d is %q", ErrMaskText, i, c)
		}
	}
	m.bits = b
	return nil
}
