package utils

import (
	"math"
	"testing"
)

func TestRange_Bounds(t *testing.T) {
	src := &SequenceSource{Values: []float64{0, 0.5, 0.999999}}
	cases := []struct {
		lo, hi, want float64
	}{
		{500000, 900000, 500000},
		{-500000, 500000, 0},
		{-1e7, 1e7, 1e7 - 20},
	}
	for _, c := range cases {
		got := Range(src, c.lo, c.hi)
		if math.Abs(got-c.want) > 1 {
			t.Fatalf("Range(%v, %v) = %v, want about %v", c.lo, c.hi, got, c.want)
		}
		if got < c.lo || got >= c.hi {
			t.Fatalf("Range(%v, %v) = %v out of bounds", c.lo, c.hi, got)
		}
	}
}

func TestRange_SwappedBounds(t *testing.T) {
	got := Range(&SequenceSource{Values: []float64{0.25}}, 10, 0)
	if got != 2.5 {
		t.Fatalf("expected 2.5, got %v", got)
	}
}

func TestSequenceSource_Cycles(t *testing.T) {
	src := &SequenceSource{Values: []float64{0.1, 0.2}}
	got := []float64{src.Float64(), src.Float64(), src.Float64()}
	want := []float64{0.1, 0.2, 0.1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("value %d = %v, want %v", i, got[i], want[i])
		}
	}
	if (&SequenceSource{}).Float64() != 0 {
		t.Fatal("empty sequence should yield 0")
	}
}

func TestPRNGService_Seeded(t *testing.T) {
	a, b := NewPRNGService(7), NewPRNGService(7)
	for i := 0; i < 5; i++ {
		x, y := a.Float64(), b.Float64()
		if x != y {
			t.Fatalf("same seed diverged at %d: %v vs %v", i, x, y)
		}
		if x < 0 || x >= 1 {
			t.Fatalf("value out of [0,1): %v", x)
		}
	}
}

func TestWorldScreenRoundTrip(t *testing.T) {
	sx, sy := WorldToScreen(0, 0)
	if sx != 640 || sy != 360 {
		t.Fatalf("origin maps to (%v, %v), want screen centre", sx, sy)
	}
	wx, wy := ScreenToWorld(WorldToScreen(-120, 300))
	if wx != -120 || wy != 300 {
		t.Fatalf("round trip gave (%v, %v)", wx, wy)
	}
}
