package hwy

import (
	"errors"
	"math/rand/v2"
	"testing"
)

// forAllMasks calls fn with every lane pattern when there are at most 12
// lanes, otherwise with the empty mask, the full mask and 512 random ones.
func forAllMasks[T Lanes](fn func(m Mask[T])) {
	n := MaxLanes[T]()
	if n <= 12 {
		for b := uint64(0); b < 1<<uint(n); b++ {
			fn(MaskFromBits[T](b))
		}
		return
	}
	fn(EmptyMask[T]())
	fn(FullMask[T]())
	r := rand.New(rand.NewPCG(1, uint64(n)))
	for range 512 {
		fn(RandomMask[T](r))
	}
}

// expectContractPanic runs fn and checks that it panics with a
// *ContractError wrapping want.
func expectContractPanic(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v, got none", want)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v (%T) is not an error", r, r)
		}
		var ce *ContractError
		if !errors.As(err, &ce) {
			t.Fatalf("panic value %v is not a *ContractError", err)
		}
		if !errors.Is(err, want) {
			t.Fatalf("panic %v does not wrap %v", err, want)
		}
	}()
	fn()
}

// newTestRand returns a generator with a fixed seed.
func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(0x5eed, 0xcafe))
}

// laneValues returns lane i = f(i) as a vector.
func laneValues[T Lanes](f func(i int) T) Vec[T] {
	var v Vec[T]
	lanes := v.lanes()
	for i := range lanes {
		lanes[i] = f(i)
	}
	return v
}
