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

// TailMask returns the mask of the first count lanes, the lanes of a
// final partial vector that still lie inside the data.
func TailMask[T Lanes](count int) Mask[T] {
	return FirstN[T](count)
}

// ProcessWithTail walks [0, size) one vector at a time. fn receives the
// offset of each vector and the mask of its lanes that fall inside the
// range: FullMask for whole vectors, TailMask(size-offset) for the last,
// partial one. Masked loads and stores make one body serve both:
//
//	hwy.ProcessWithTail[float32](len(data), func(offset int, m hwy.Mask[float32]) {
//	    v := hwy.MaskLoad(m, data[offset:])
//	    hwy.Where(hwy.LessThan(v, hwy.Zero[float32]()), &v).AssignScalar(0)
//	    hwy.MaskStore(m, v, output[offset:])
//	})
func ProcessWithTail[T Lanes](size int, fn func(offset int, mask Mask[T])) {
	step, full := MaxLanes[T](), FullMask[T]()
	offset := 0
	for ; size-offset >= step; offset += step {
		fn(offset, full)
	}
	if offset < size {
		fn(offset, TailMask[T](size-offset))
	}
}

// AlignedSize rounds size up to a whole number of vectors, for buffers
// that are loaded and stored without masks.
func AlignedSize[T Lanes](size int) int {
	step := MaxLanes[T]()
	return (size + step - 1) / step * step
}

// IsAligned reports whether size is a whole number of vectors, so that
// ProcessWithTail never passes a partial mask.
func IsAligned[T Lanes](size int) bool {
	return size%MaxLanes[T]() == 0
}
