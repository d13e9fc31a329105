package hwy

// This file provides compress and expand operations for vectors.
// Compress packs the lanes where the mask is true to the front.
// Expand unpacks lanes into the positions where the mask is true.
// Together with Count they turn a mask into stream compaction.

// Compress packs the lanes of v where mask is true to the front and
// returns the packed vector and the number of valid lanes. The remaining
// lanes are zero.
// For example: v=[1,2,3,4], mask=[T,F,T,F] -> result=[1,3,0,0], count=2
func Compress[T Lanes](v Vec[T], mask Mask[T]) (Vec[T], int) {
	var r Vec[T]
	out, in := r.lanes(), v.lanes()
	count := 0
	for m := mask.bits; m != 0; m &= m - 1 {
		out[count] = in[trailingLane(m)]
		count++
	}
	return r, count
}

// Expand places the leading lanes of v, in order, into the lanes where
// mask is true. Lanes where mask is false are zero.
// For example: v=[1,2,0,0], mask=[T,F,T,F] -> result=[1,0,2,0]
func Expand[T Lanes](v Vec[T], mask Mask[T]) Vec[T] {
	var r Vec[T]
	out, in := r.lanes(), v.lanes()
	src := 0
	for m := mask.bits; m != 0; m &= m - 1 {
		out[trailingLane(m)] = in[src]
		src++
	}
	return r
}

// CompressStore writes the lanes of v where mask is true, in lane order,
// to the front of dst and returns how many were written. dst must hold at
// least mask.Count() elements; nothing past them is touched.
func CompressStore[T Lanes](v Vec[T], mask Mask[T], dst []T) int {
	in := v.lanes()
	count := 0
	for m := mask.bits; m != 0; m &= m - 1 {
		dst[count] = in[trailingLane(m)]
		count++
	}
	return count
}

// CompressAppend appends the lanes of v where mask is true to dst.
func CompressAppend[T Lanes](dst []T, v Vec[T], mask Mask[T]) []T {
	in := v.lanes()
	for m := mask.bits; m != 0; m &= m - 1 {
		dst = append(dst, in[trailingLane(m)])
	}
	return dst
}
