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

// This file provides indexed memory access. A scatter takes:
//  1. A slice of any lane type the vector's element type converts to.
//  2. An index source holding one element offset per lane. Each offset
//     must address an element of the slice.
//  3. Optionally a mask. Disabled lanes are not accessed at all, which
//     also lifts requirement 2 for them.
//
// Gathers take the same arguments and read instead of write.
//
// The element types are checked by the compiler through the Lanes
// constraint. The width preconditions of the index source are checked on
// entry by checkIndexSource and panic with a *ContractError.
//
// The lanes are accessed in no particular order; when two enabled lanes
// address the same element of a scatter, which one lands is unspecified.
// All accesses have completed when the call returns.

// IndexSource is anything that can supply one offset per lane.
//
// IndexLen reports how many offsets the source holds, or 0 when the source
// is unbounded. IndexAt returns the offset for a lane in [0, IndexLen()).
type IndexSource interface {
	IndexLen() int
	IndexAt(lane int) int
}

// vectorIndexes is implemented by Vec, whose index capacity is its lane count.
type vectorIndexes interface {
	indexVector() (lanes int, integral bool)
}

// sliceIndexes is implemented by Indexes, whose length is always known.
type sliceIndexes interface {
	indexCount() int
}

// Indexes adapts a slice or array of integer offsets to IndexSource.
// Use it with arrays by slicing them: hwy.Indexes[int32](arr[:]).
//
// A slice knows its length, so Indexes is never treated as unbounded: an
// empty Indexes is too short like any other slice of fewer than N offsets.
type Indexes[I Integers] []I

// IndexLen returns the number of offsets.
func (x Indexes[I]) IndexLen() int { return len(x) }

func (x Indexes[I]) indexCount() int { return len(x) }

// IndexAt returns the offset for lane.
func (x Indexes[I]) IndexAt(lane int) int { return int(x[lane]) }

// IndexFunc computes the offset of each lane. It is unbounded: its
// IndexLen is 0, so it passes the length check for any lane count.
type IndexFunc func(lane int) int

// IndexLen returns 0: an IndexFunc has no fixed length.
func (f IndexFunc) IndexLen() int { return 0 }

// IndexAt returns f(lane).
func (f IndexFunc) IndexAt(lane int) int { return f(lane) }

// IndexLen returns the lane count, so a vector of indexes must be at
// least as wide as the vector it addresses memory for.
func (v Vec[T]) IndexLen() int { return MaxLanes[T]() }

// IndexAt returns lane as an offset.
func (v Vec[T]) IndexAt(lane int) int { return int(v.lanes()[lane]) }

func (v Vec[T]) indexVector() (int, bool) { return MaxLanes[T](), !isFloat[T]() }

// ScatterArgs bundles the memory and index arguments of a scatter or a
// gather, so both can be passed around together.
type ScatterArgs[M Lanes, S IndexSource] struct {
	Mem     []M
	Indexes S
}

// ScatterArgsOf bundles mem and indexes.
func ScatterArgsOf[M Lanes, S IndexSource](mem []M, indexes S) ScatterArgs[M, S] {
	return ScatterArgs[M, S]{Mem: mem, Indexes: indexes}
}

// checkIndexSource verifies that indexes can address every lane of Vec[T].
// It is the single check behind every scatter and gather entry point.
func checkIndexSource[T Lanes](op string, indexes IndexSource) {
	n := MaxLanes[T]()
	if v, ok := indexes.(vectorIndexes); ok {
		lanes, integral := v.indexVector()
		if !integral {
			violate(op, ErrIndexNotIntegral, "floating-point vector of %d lanes", lanes)
		}
		if lanes < n {
			violate(op, ErrIndexVectorTooNarrow, "%d index lanes for %d data lanes", lanes, n)
		}
		return
	}
	if x, ok := indexes.(sliceIndexes); ok {
		if l := x.indexCount(); l < n {
			violate(op, ErrIndexArrayTooShort, "%d offsets for %d data lanes", l, n)
		}
		return
	}
	if l := indexes.IndexLen(); l != 0 && l < n {
		violate(op, ErrIndexArrayTooShort, "%d offsets for %d data lanes", l, n)
	}
}

func checkOffset(op string, lane, offset, size int) {
	if offset < 0 || offset >= size {
		violate(op, ErrIndexOutOfRange, "lane %d offset %d, memory holds %d elements", lane, offset, size)
	}
}

func scatterLanes[T, M Lanes, S IndexSource](op string, v Vec[T], mem []M, indexes S, enabled uint64) {
	checkIndexSource[T](op, indexes)
	lanes := v.lanes()
	for m := enabled; m != 0; m &= m - 1 {
		i := trailingLane(m)
		off := indexes.IndexAt(i)
		if debugChecks {
			checkOffset(op, i, off, len(mem))
		}
		mem[off] = M(lanes[i])
	}
}

func gatherLanes[T, M Lanes, S IndexSource](op string, dst *Vec[T], mem []M, indexes S, enabled uint64) {
	checkIndexSource[T](op, indexes)
	lanes := dst.lanes()
	for m := enabled; m != 0; m &= m - 1 {
		i := trailingLane(m)
		off := indexes.IndexAt(i)
		if debugChecks {
			checkOffset(op, i, off, len(mem))
		}
		lanes[i] = T(mem[off])
	}
}

// Scatter stores lane i of v to mem[indexes.IndexAt(i)] for every lane.
func Scatter[T, M Lanes, S IndexSource](v Vec[T], mem []M, indexes S) {
	scatterLanes("Scatter", v, mem, indexes, laneBits[T]())
}

// ScatterMasked stores lane i of v to mem[indexes.IndexAt(i)] for the
// lanes where mask is true. Disabled lanes read no offset and write nothing.
func ScatterMasked[T, M Lanes, S IndexSource](v Vec[T], mem []M, indexes S, mask Mask[T]) {
	scatterLanes("ScatterMasked", v, mem, indexes, mask.bits)
}

// ScatterWith is Scatter with bundled arguments.
func ScatterWith[T, M Lanes, S IndexSource](v Vec[T], args ScatterArgs[M, S]) {
	scatterLanes("ScatterWith", v, args.Mem, args.Indexes, laneBits[T]())
}

// ScatterWithMasked is ScatterMasked with bundled arguments.
func ScatterWithMasked[T, M Lanes, S IndexSource](v Vec[T], args ScatterArgs[M, S], mask Mask[T]) {
	scatterLanes("ScatterWithMasked", v, args.Mem, args.Indexes, mask.bits)
}

// Gather loads lane i from mem[indexes.IndexAt(i)] for every lane.
// The element type is usually given explicitly: hwy.Gather[float32](mem, idx).
func Gather[T, M Lanes, S IndexSource](mem []M, indexes S) Vec[T] {
	var v Vec[T]
	gatherLanes("Gather", &v, mem, indexes, laneBits[T]())
	return v
}

// GatherInto loads every lane of dst from mem[indexes.IndexAt(i)].
func GatherInto[T, M Lanes, S IndexSource](dst *Vec[T], mem []M, indexes S) {
	gatherLanes("GatherInto", dst, mem, indexes, laneBits[T]())
}

// GatherMasked loads the lanes of dst where mask is true from
// mem[indexes.IndexAt(i)]. Disabled lanes keep their value and their
// offsets are never read.
func GatherMasked[T, M Lanes, S IndexSource](dst *Vec[T], mem []M, indexes S, mask Mask[T]) {
	gatherLanes("GatherMasked", dst, mem, indexes, mask.bits)
}

// GatherWith is GatherInto with bundled arguments.
func GatherWith[T, M Lanes, S IndexSource](dst *Vec[T], args ScatterArgs[M, S]) {
	gatherLanes("GatherWith", dst, args.Mem, args.Indexes, laneBits[T]())
}

// GatherWithMasked is GatherMasked with bundled arguments.
func GatherWithMasked[T, M Lanes, S IndexSource](dst *Vec[T], args ScatterArgs[M, S], mask Mask[T]) {
	gatherLanes("GatherWithMasked", dst, args.Mem, args.Indexes, mask.bits)
}

// IndicesFromFunc creates an index vector by calling a function for each lane.
// This is useful for creating custom gather patterns.
func IndicesFromFunc[I Integers](f func(lane int) I) Vec[I] {
	var v Vec[I]
	lanes := v.lanes()
	for i := range lanes {
		lanes[i] = f(i)
	}
	return v
}

// IndicesIota creates an index vector with values [0, 1, 2, 3, ...].
func IndicesIota[I Integers]() Vec[I] {
	return Iota[I]()
}

// IndicesStride creates an index vector with values [start, start+stride, start+2*stride, ...].
func IndicesStride[I Integers](start, stride I) Vec[I] {
	return IndicesFromFunc(func(lane int) I { return start + I(lane)*stride })
}
