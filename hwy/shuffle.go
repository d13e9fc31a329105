package hwy

// Shifted returns a vector whose lane i holds lane i+k of v, or zero when
// i+k falls outside the vector. k may be negative. It is the vector
// counterpart of Mask.Shifted.
// [1,2,3,4] with k=1 -> [2,3,4,0]; with k=-1 -> [0,1,2,3]
func Shifted[T Lanes](v Vec[T], k int) Vec[T] {
	var r Vec[T]
	out, in := r.lanes(), v.lanes()
	n := len(in)
	if k >= n || -k >= n {
		return r
	}
	if k >= 0 {
		copy(out, in[k:])
	} else {
		copy(out[-k:], in)
	}
	return r
}

// SlideUpLanes shifts all lanes up (toward higher indices) by the given offset.
// Lower lanes are filled with zeros, upper lanes that slide out are discarded.
// [1,2,3,4,5,6,7,8] with offset=2 -> [0,0,1,2,3,4,5,6]
func SlideUpLanes[T Lanes](v Vec[T], offset int) Vec[T] {
	return Shifted(v, -max(offset, 0))
}

// SlideDownLanes shifts all lanes down (toward lower indices) by the given offset.
// Upper lanes are filled with zeros, lower lanes that slide out are discarded.
// [1,2,3,4,5,6,7,8] with offset=2 -> [3,4,5,6,7,8,0,0]
func SlideDownLanes[T Lanes](v Vec[T], offset int) Vec[T] {
	return Shifted(v, max(offset, 0))
}

// Reverse reverses the order of lanes.
func Reverse[T Lanes](v Vec[T]) Vec[T] {
	var r Vec[T]
	out, in := r.lanes(), v.lanes()
	for i, x := range in {
		out[len(in)-1-i] = x
	}
	return r
}

// Broadcast copies the given lane to all lanes.
func Broadcast[T Lanes](v Vec[T], lane int) Vec[T] {
	return Set(v.Get(lane))
}
