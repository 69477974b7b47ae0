package random

import (
	"math"
	"testing"
)

func TestFromList_Empty(t *testing.T) {
	if got := FromList(nil); got != 0 {
		t.Errorf("FromList(nil) = %d, want 0", got)
	}
	if got := New(1).FromList([]int32{}); got != 0 {
		t.Errorf("FromList([]) = %d, want 0", got)
	}
}

func TestFromList_Members(t *testing.T) {
	arrows := []int32{1037, 1038, 1039, 1040}
	s := New(7)
	seen := make(map[int32]bool)
	for i := 0; i < 500; i++ {
		v := s.FromList(arrows)
		if v < 1037 || v > 1040 {
			t.Fatalf("FromList returned %d, not in list", v)
		}
		seen[v] = true
	}
	if len(seen) != len(arrows) {
		t.Errorf("FromList only produced %v over 500 draws", seen)
	}
}

func TestIntBetween_Range(t *testing.T) {
	s := New(42)
	for i := 0; i < 1000; i++ {
		v := s.IntBetween(1048, 1090)
		if v < 1048 || v >= 1090 {
			t.Fatalf("IntBetween(1048, 1090) = %d", v)
		}
	}
}

func TestIntBetween_Extremes(t *testing.T) {
	s := New(3)
	for i := 0; i < 100; i++ {
		v := s.IntBetween(math.MinInt32, math.MaxInt32)
		if v == math.MaxInt32 {
			t.Fatal("IntBetween must exclude max")
		}
	}
}

func TestIntBetween_EmptyRange(t *testing.T) {
	s := New(1)
	if got := s.IntBetween(5, 5); got != 5 {
		t.Errorf("IntBetween(5, 5) = %d, want 5", got)
	}
	if got := s.IntBetween(9, 2); got != 9 {
		t.Errorf("IntBetween(9, 2) = %d, want 9", got)
	}
}

func TestFloat_Range(t *testing.T) {
	s := New(99)
	for i := 0; i < 1000; i++ {
		v := s.Float()
		if v < -1 || v >= 1 {
			t.Fatalf("Float() = %f outside [-1, 1)", v)
		}
	}
}

func TestNew_Deterministic(t *testing.T) {
	a, b := New(2024), New(2024)
	for i := 0; i < 20; i++ {
		if x, y := a.Int(), b.Int(); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestInt_SeededSequence(t *testing.T) {
	a := New(11)
	first := make([]int32, 10)
	for i := range first {
		first[i] = a.Int()
	}

	b := New(11)
	for i, want := range first {
		if got := b.Int(); got != want {
			t.Fatalf("draw %d = %d, want %d", i, got, want)
		}
	}

	c := New(12)
	same := true
	for _, want := range first {
		if c.Int() != want {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced the same sequence")
	}
}

func TestPackageHelpers(t *testing.T) {
	for i := 0; i < 100; i++ {
		if v := Float(); v < -1 || v >= 1 {
			t.Fatalf("Float() = %f outside [-1, 1)", v)
		}
		if v := IntBetween(1037, 1041); v < 1037 || v >= 1041 {
			t.Fatalf("IntBetween(1037, 1041) = %d", v)
		}
		if v := FromList([]int32{1300}); v != 1300 {
			t.Fatalf("FromList([1300]) = %d", v)
		}
	}

	distinct := make(map[int32]bool)
	for i := 0; i < 20; i++ {
		distinct[Int()] = true
	}
	if len(distinct) < 2 {
		t.Errorf("Int() returned %d distinct values over 20 draws", len(distinct))
	}
}
