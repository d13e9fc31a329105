package hwy

// This file provides lane-type conversions between vectors.

// ConvertVec converts each lane of v to To. The lane counts of the two
// types may differ: lane i of the result is To(v[i]) for every lane both
// types have, and the lanes v does not have are zero. This is the same
// prefix rule ConvertMask uses, so
//
//	ConvertMask[To](LessThan(v, w))
//
// selects exactly the lanes where LessThan(ConvertVec[To](v), ConvertVec[To](w))
// is true whenever the conversion preserves order.
//
// Float to integer conversion truncates toward zero; for values outside
// the target range the result is implementation-defined, as for Go's own
// conversions.
func ConvertVec[To, From Lanes](v Vec[From]) Vec[To] {
	var r Vec[To]
	out, in := r.lanes(), v.lanes()
	for i := range min(len(out), len(in)) {
		out[i] = To(in[i])
	}
	return r
}

// ConvertToInt32 converts float32 or float64 lanes to int32 (truncate toward zero).
func ConvertToInt32[T ~float32 | ~float64](v Vec[T]) Vec[int32] {
	return ConvertVec[int32](v)
}

// ConvertToFloat32 converts int32 or int64 lanes to float32.
// Large int64 values may lose precision.
func ConvertToFloat32[T ~int32 | ~int64](v Vec[T]) Vec[float32] {
	return ConvertVec[float32](v)
}
