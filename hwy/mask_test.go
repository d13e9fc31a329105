package hwy

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testMaskCount[T Lanes](t *testing.T) {
	forAllMasks(func(m Mask[T]) {
		count := 0
		for i := range m.NumLanes() {
			if m.Get(i) {
				count++
			}
		}
		if got := m.Count(); got != count {
			t.Errorf("Count() of %v = %d, want %d", m, got, count)
		}
	})
}

func TestMaskCount(t *testing.T) {
	t.Run("float32", testMaskCount[float32])
	t.Run("float64", testMaskCount[float64])
	t.Run("int8", testMaskCount[int8])
	t.Run("int16", testMaskCount[int16])
	t.Run("int32", testMaskCount[int32])
	t.Run("uint16", testMaskCount[uint16])
	t.Run("uint64", testMaskCount[uint64])
}

func testMaskReductions[T Lanes](t *testing.T) {
	n := MaxLanes[T]()
	forAllMasks(func(m Mask[T]) {
		c := m.Count()
		if got, want := AllOf(m), c == n; got != want {
			t.Errorf("AllOf(%v) = %v, want %v", m, got, want)
		}
		if got, want := AnyOf(m), c > 0; got != want {
			t.Errorf("AnyOf(%v) = %v, want %v", m, got, want)
		}
		if got, want := NoneOf(m), c == 0; got != want {
			t.Errorf("NoneOf(%v) = %v, want %v", m, got, want)
		}
		if got, want := SomeOf(m), c > 0 && c < n; got != want {
			t.Errorf("SomeOf(%v) = %v, want %v", m, got, want)
		}
		if m.IsFull() != AllOf(m) || m.IsEmpty() != NoneOf(m) {
			t.Errorf("IsFull/IsEmpty of %v disagree with AllOf/NoneOf", m)
		}
		held := 0
		for _, b := range []bool{AllOf(m), NoneOf(m), SomeOf(m)} {
			if b {
				held++
			}
		}
		if held != 1 {
			t.Errorf("%v: %d of AllOf/NoneOf/SomeOf hold, want exactly 1", m, held)
		}
	})
}

func TestMaskReductions(t *testing.T) {
	t.Run("float32", testMaskReductions[float32])
	t.Run("float64", testMaskReductions[float64])
	t.Run("int8", testMaskReductions[int8])
	t.Run("int16", testMaskReductions[int16])
	t.Run("uint32", testMaskReductions[uint32])
	t.Run("int64", testMaskReductions[int64])
}

func TestMaskReductionBoundaries(t *testing.T) {
	n := MaxLanes[int16]()
	full := FullMask[int16]()
	if !AllOf(full) || SomeOf(full) || NoneOf(full) || full.Count() != n {
		t.Errorf("full mask %v: AllOf=%v SomeOf=%v NoneOf=%v Count=%d", full, AllOf(full), SomeOf(full), NoneOf(full), full.Count())
	}
	empty := EmptyMask[int16]()
	if AllOf(empty) || SomeOf(empty) || !NoneOf(empty) || AnyOf(empty) || empty.Count() != 0 {
		t.Errorf("empty mask %v: AllOf=%v SomeOf=%v NoneOf=%v AnyOf=%v", empty, AllOf(empty), SomeOf(empty), NoneOf(empty), AnyOf(empty))
	}
}

func TestMaskInit(t *testing.T) {
	if MaskOf[float32](true) != FullMask[float32]() {
		t.Errorf("MaskOf(true) = %v, want full", MaskOf[float32](true))
	}
	if MaskOf[float32](false) != EmptyMask[float32]() {
		t.Errorf("MaskOf(false) = %v, want empty", MaskOf[float32](false))
	}
	var zero Mask[int8]
	if !zero.IsEmpty() {
		t.Errorf("zero Mask = %v, want empty", zero)
	}
	if got := FullMask[int8]().Count(); got != MaxLanes[int8]() {
		t.Errorf("FullMask[int8]().Count() = %d, want %d", got, MaxLanes[int8]())
	}
}

func testMaskFirstOne[T Lanes](t *testing.T) {
	idx := Iota[T]()
	for i := range MaxLanes[T]() {
		m := Equal(idx, Set(T(i)))
		if got := m.FirstOne(); got != i {
			t.Errorf("FirstOne() of %v = %d, want %d", m, got, i)
		}
		// Higher lanes do not affect the result.
		m = m.Or(LastN[T](MaxLanes[T]() - i))
		if got := m.FirstOne(); got != i {
			t.Errorf("FirstOne() of %v = %d, want %d", m, got, i)
		}
	}
}

func TestMaskFirstOne(t *testing.T) {
	t.Run("float32", testMaskFirstOne[float32])
	t.Run("int16", testMaskFirstOne[int16])
	t.Run("uint8", testMaskFirstOne[uint8])
	t.Run("float64", testMaskFirstOne[float64])
}

func TestFindFirstLastTrue(t *testing.T) {
	if got := FindFirstTrue(EmptyMask[int32]()); got != -1 {
		t.Errorf("FindFirstTrue(empty) = %d, want -1", got)
	}
	if got := FindLastTrue(EmptyMask[int32]()); got != -1 {
		t.Errorf("FindLastTrue(empty) = %d, want -1", got)
	}
	n := MaxLanes[int32]()
	if got := FindLastTrue(FullMask[int32]()); got != n-1 {
		t.Errorf("FindLastTrue(full) = %d, want %d", got, n-1)
	}
	if got := FindFirstTrue(LastN[int32](1)); got != n-1 {
		t.Errorf("FindFirstTrue(LastN(1)) = %d, want %d", got, n-1)
	}
}

func testMaskShifted[T Lanes](t *testing.T) {
	n := MaxLanes[T]()
	forAllMasks(func(ref Mask[T]) {
		if got := ref.Shifted(0); got != ref {
			t.Errorf("%v.Shifted(0) = %v", ref, got)
		}
		for shift := -2 * n; shift <= 2*n; shift++ {
			got := ref.Shifted(shift)
			for i := range n {
				want := false
				if i+shift >= 0 && i+shift < n {
					want = ref.Get(i + shift)
				}
				if got.Get(i) != want {
					t.Fatalf("%v.Shifted(%d) lane %d = %v, want %v", ref, shift, i, got.Get(i), want)
				}
			}
			if (shift >= n || -shift >= n) && !got.IsEmpty() {
				t.Fatalf("%v.Shifted(%d) = %v, want empty", ref, shift, got)
			}
		}
	})
}

func TestMaskShifted(t *testing.T) {
	t.Run("float32", testMaskShifted[float32])
	t.Run("float64", testMaskShifted[float64])
	t.Run("int8", testMaskShifted[int8])
	t.Run("int16", testMaskShifted[int16])
	t.Run("uint32", testMaskShifted[uint32])
}

func testMaskScalarAccess[T Lanes](t *testing.T) {
	forAllMasks(func(m Mask[T]) {
		inv := m.Not()
		flipped := m
		for i := range m.NumLanes() {
			flipped.Set(i, !flipped.Get(i))
		}
		if flipped != inv {
			t.Errorf("flipping every lane of %v gave %v, want %v", m, flipped, inv)
		}
		for i := range m.NumLanes() {
			flipped.Set(i, true)
		}
		if flipped != FullMask[T]() {
			t.Errorf("setting every lane gave %v, want full", flipped)
		}
	})
}

func TestMaskScalarAccess(t *testing.T) {
	t.Run("float32", testMaskScalarAccess[float32])
	t.Run("int16", testMaskScalarAccess[int16])
	t.Run("uint8", testMaskScalarAccess[uint8])
	t.Run("float64", testMaskScalarAccess[float64])
}

func TestMaskGetOutOfRange(t *testing.T) {
	m := FullMask[int32]()
	if m.Get(-1) || m.Get(m.NumLanes()) {
		t.Error("Get outside the lanes should read false")
	}
}

func TestMaskSetOutOfRange(t *testing.T) {
	var m Mask[int32]
	expectContractPanic(t, ErrLaneOutOfRange, func() { m.Set(m.NumLanes(), true) })
	expectContractPanic(t, ErrLaneOutOfRange, func() { m.Set(-1, true) })
}

func testMaskConversion[To, From Lanes](t *testing.T) {
	forAllMasks(func(m Mask[From]) {
		got := ConvertMask[To](m)
		shared := min(MaxLanes[To](), MaxLanes[From]())
		i := 0
		for ; i < shared; i++ {
			if got.Get(i) != m.Get(i) {
				t.Fatalf("ConvertMask(%v) = %v: lane %d differs", m, got, i)
			}
		}
		for ; i < MaxLanes[To](); i++ {
			if got.Get(i) {
				t.Fatalf("ConvertMask(%v) = %v: lane %d past the source should be false", m, got, i)
			}
		}
	})
}

func TestMaskConversions(t *testing.T) {
	t.Run("int32 to int16", testMaskConversion[int16, int32])
	t.Run("int16 to int32", testMaskConversion[int32, int16])
	t.Run("float32 to float64", testMaskConversion[float64, float32])
	t.Run("float64 to float32", testMaskConversion[float32, float64])
	t.Run("uint16 to uint8", testMaskConversion[uint8, uint16])
	t.Run("int8 to uint16", testMaskConversion[uint16, int8])
	t.Run("float32 to int32", testMaskConversion[int32, float32])
}

func TestMaskConversionExample(t *testing.T) {
	if MaxLanes[int32]() != 4 || MaxLanes[int16]() != 8 {
		t.Skipf("needs 4 int32 and 8 int16 lanes, backend %s", CurrentName())
	}
	four := LoadMask[int32]([]bool{true, false, true, false})
	eight := ConvertMask[int16](four)
	want := []bool{true, false, true, false, false, false, false, false}
	got := make([]bool, 8)
	eight.Store(got)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("widening conversion mismatch (-want +got):\n%s", diff)
	}

	wide := LoadMask[int16]([]bool{false, true, true, false, true, true, true, true})
	narrow := ConvertMask[int32](wide)
	if got, want := narrow.String(), "0110"; got != want {
		t.Errorf("narrowing conversion = %s, want %s", got, want)
	}
}

func testLogicalOperators[T, U Lanes](t *testing.T) {
	tt, tf := FullMask[T](), EmptyMask[T]()
	ut, uf := FullMask[U](), EmptyMask[U]()
	checks := []struct {
		name string
		got  Mask[T]
		full bool
	}{
		{"true & true", MaskAnd(tt, ut), true},
		{"true & false", MaskAnd(tt, uf), false},
		{"true | true", MaskOr(tt, ut), true},
		{"true | false", MaskOr(tt, uf), true},
		{"false | false", MaskOr(tf, uf), false},
		{"true ^ true", MaskXor(tt, ut), false},
		{"true ^ false", MaskXor(tt, uf), true},
		{"!false & true", MaskAndNot(tf, ut), true},
	}
	for _, c := range checks {
		if c.full && !c.got.IsFull() {
			t.Errorf("%s = %v, want full", c.name, c.got)
		}
		if !c.full && !c.got.IsEmpty() {
			t.Errorf("%s = %v, want empty", c.name, c.got)
		}
	}
	if !MaskEqual(tt, ut) || MaskEqual(tt, uf) {
		t.Error("MaskEqual on full/empty masks disagrees")
	}
	if MaskNotEqual(tt, ut) || !MaskNotEqual(tt, uf) || !MaskNotEqual(tf, ut) {
		t.Error("MaskNotEqual on full/empty masks disagrees")
	}
}

func TestMaskBinaryOperators(t *testing.T) {
	t.Run("int16/int16", testLogicalOperators[int16, int16])
	t.Run("int16/uint16", testLogicalOperators[int16, uint16])
	t.Run("uint16/int16", testLogicalOperators[uint16, int16])
	t.Run("int32/uint32", testLogicalOperators[int32, uint32])
	t.Run("int32/float32", testLogicalOperators[int32, float32])
	t.Run("uint32/float32", testLogicalOperators[uint32, float32])
	t.Run("float32/int32", testLogicalOperators[float32, int32])
	t.Run("float32/float32", testLogicalOperators[float32, float32])
	t.Run("float64/float64", testLogicalOperators[float64, float64])
}

func TestMaskLaneCountMismatch(t *testing.T) {
	if MaxLanes[int8]() == MaxLanes[int64]() {
		t.Skipf("int8 and int64 have the same lane count on %s", CurrentName())
	}
	expectContractPanic(t, ErrLaneCountMismatch, func() {
		MaskAnd(FullMask[int8](), FullMask[int64]())
	})
	expectContractPanic(t, ErrLaneCountMismatch, func() {
		MaskEqual(FullMask[int64](), FullMask[int8]())
	})
	expectContractPanic(t, ErrLaneCountMismatch, func() {
		MaskNotEqual(FullMask[int8](), FullMask[int64]())
	})
}

func testMaskMethods[T Lanes](t *testing.T) {
	forAllMasks(func(a Mask[T]) {
		b := a.Shifted(1).Xor(FirstN[T](2))
		for i := range a.NumLanes() {
			x, y := a.Get(i), b.Get(i)
			if a.And(b).Get(i) != (x && y) || a.Or(b).Get(i) != (x || y) ||
				a.Xor(b).Get(i) != (x != y) || a.AndNot(b).Get(i) != (!x && y) ||
				a.Not().Get(i) != !x {
				t.Fatalf("lane %d of %v op %v is wrong", i, a, b)
			}
		}
	})
}

func TestMaskMethods(t *testing.T) {
	t.Run("float32", testMaskMethods[float32])
	t.Run("int8", testMaskMethods[int8])
	t.Run("float64", testMaskMethods[float64])
}

func testMaskCompare[T Lanes](t *testing.T) {
	a, b := FullMask[T](), EmptyMask[T]()
	if a.Equal(b) || b.Equal(a) || a == b {
		t.Errorf("full %v equals empty %v", a, b)
	}
	forAllMasks(func(k Mask[T]) {
		k2 := k.Xor(FirstN[T](1))
		if !k.Equal(k) || k.Equal(k2) || k2.Equal(k) || !k2.Equal(k2) {
			t.Fatalf("Equal misbehaves for %v and %v", k, k2)
		}
		if k == k2 || !k.NotEqual(k2) || k.NotEqual(k) {
			t.Fatalf("== misbehaves for %v and %v", k, k2)
		}
	})
}

func TestMaskCompareOperators(t *testing.T) {
	t.Run("float32", testMaskCompare[float32])
	t.Run("uint16", testMaskCompare[uint16])
	t.Run("float64", testMaskCompare[float64])
}

func testMaskBits[T Lanes](t *testing.T) {
	forAllMasks(func(m Mask[T]) {
		bits := m.Bits()
		for i := range m.NumLanes() {
			if (bits>>uint(i))&1 == 1 != m.Get(i) {
				t.Fatalf("Bits() of %v = %b: lane %d differs", m, bits, i)
			}
		}
		if bits>>uint(m.NumLanes()-1)>>1 != 0 {
			t.Fatalf("Bits() of %v = %b has bits past the last lane", m, bits)
		}
		if MaskFromBits[T](bits) != m || BitsFromMask(m) != bits {
			t.Fatalf("MaskFromBits/BitsFromMask do not round-trip %v", m)
		}
	})
}

func TestMaskIntegerConversion(t *testing.T) {
	t.Run("float32", testMaskBits[float32])
	t.Run("int8", testMaskBits[int8])
	t.Run("uint64", testMaskBits[uint64])
}

func TestMaskFromBitsIgnoresHighBits(t *testing.T) {
	m := MaskFromBits[float32](^uint64(0))
	if m != FullMask[float32]() {
		t.Errorf("MaskFromBits(all ones) = %v, want full", m)
	}
}

func testMaskBoolConversion[T Lanes](t *testing.T) {
	n := MaxLanes[T]()
	mem := make([]bool, 64+n)
	forAllMasks(func(m Mask[T]) {
		for off := range 64 {
			ptr := mem[off:]
			m.Store(ptr)
			for i := range n {
				if ptr[i] != m.Get(i) {
					t.Fatalf("offset %d: Store(%v) lane %d = %v", off, m, i, ptr[i])
				}
			}
			if got := LoadMask[T](ptr); got != m {
				t.Fatalf("offset %d: LoadMask = %v, want %v", off, got, m)
			}
		}
	})
}

func TestMaskBoolConversion(t *testing.T) {
	t.Run("float32", testMaskBoolConversion[float32])
	t.Run("int16", testMaskBoolConversion[int16])
	t.Run("uint8", testMaskBoolConversion[uint8])
	t.Run("float64", testMaskBoolConversion[float64])
}

func TestMaskStoreLeavesNeighbours(t *testing.T) {
	n := MaxLanes[int32]()
	mem := make([]bool, n+2)
	mem[0], mem[n+1] = true, true
	EmptyMask[int32]().Store(mem[1:])
	if !mem[0] || !mem[n+1] {
		t.Errorf("Store wrote outside its %d lanes: %v", n, mem)
	}
}

func TestMaskFirstNLastN(t *testing.T) {
	n := MaxLanes[int16]()
	for k := -1; k <= n+1; k++ {
		first, last := FirstN[int16](k), LastN[int16](k)
		want := max(0, min(k, n))
		if first.Count() != want || last.Count() != want {
			t.Errorf("k=%d: FirstN=%v LastN=%v, want %d lanes each", k, first, last, want)
		}
		if want > 0 && (!first.Get(0) || !last.Get(n-1)) {
			t.Errorf("k=%d: FirstN=%v LastN=%v start at the wrong end", k, first, last)
		}
		if first != LessThan(Iota[int16](), Set(int16(max(k, 0)))) && k <= n {
			t.Errorf("FirstN(%d) = %v differs from Iota < %d", k, first, k)
		}
	}
}

func TestMaskFromLaneFunc(t *testing.T) {
	m := MaskFromLaneFunc[uint8](func(lane int) bool { return lane%3 == 0 })
	for i := range m.NumLanes() {
		if m.Get(i) != (i%3 == 0) {
			t.Errorf("lane %d = %v", i, m.Get(i))
		}
	}
}

func TestMaskText(t *testing.T) {
	forAllMasks(func(m Mask[int32]) {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", m, err)
		}
		var got Mask[int32]
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if got != m {
			t.Fatalf("text round trip of %v gave %v", m, got)
		}
	})

	var m Mask[int32]
	for _, bad := range []string{"", "2", "1111111111111111111111111111111111111111111111111111111111111111111"} {
		if err := m.UnmarshalText([]byte(bad)); !errors.Is(err, ErrMaskText) {
			t.Errorf("UnmarshalText(%q) = %v, want ErrMaskText", bad, err)
		}
	}
}

// The AndNot method and MaskAndNot invert the same operand.
func TestMaskAndNotOperandOrder(t *testing.T) {
	forAllMasks(func(m Mask[int32]) {
		o := FirstN[int32](1)
		if got, want := m.AndNot(o), MaskAndNot(m, o); got != want {
			t.Fatalf("%v.AndNot(%v) = %v, MaskAndNot = %v", m, o, got, want)
		}
		if got, want := m.AndNot(o), m.Not().And(o); got != want {
			t.Fatalf("%v.AndNot(%v) = %v, want !m & o = %v", m, o, got, want)
		}
	})
	if MaxLanes[int32]() == 4 {
		m := LoadMask[int32]([]bool{true, false, true, false})
		if got := m.AndNot(FirstN[int32](1)); !got.IsEmpty() {
			t.Errorf("1010 AndNot 1000 = %v, want 0000", got)
		}
	}
}
