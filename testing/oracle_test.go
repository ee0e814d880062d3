package testing

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestMul(t *testing.T) {
	tests := map[string]struct {
		y, z int64
		frac uint
		x    int64
		ok   bool
	}{
		"scenario":     {229376, 131072, 16, 458752, true},
		"truncNeg":     {-1, 1, 16, 0, true},
		"minTimesOne":  {math.MinInt64, 1 << 16, 16, math.MinInt64, true},
		"overflowWrap": {math.MaxInt64, 2 << 16, 16, -2, false},
		"negOverflow":  {math.MinInt64, -1 << 16, 16, math.MinInt64, false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			x, ok := Mul(tc.y, tc.z, tc.frac)
			if x != tc.x || ok != tc.ok {
				t.Fatalf("expected (%v, %v), got (%v, %v)", tc.x, tc.ok, x, ok)
			}
		})
	}
}

func TestDiv(t *testing.T) {
	tests := map[string]struct {
		y, z int64
		frac uint
		x    int64
		ok   bool
	}{
		"scenario":   {229376, 131072, 16, 114688, true},
		"truncPos":   {1 << 16, 3 << 16, 16, 21845, true},
		"truncNeg":   {-1 << 16, 3 << 16, 16, -21845, true},
		"overflow":   {math.MaxInt64, 1, 16, -1 << 16, false},
		"minOverOne": {math.MinInt64, 1 << 16, 16, math.MinInt64, true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			x, ok := Div(tc.y, tc.z, tc.frac)
			if x != tc.x || ok != tc.ok {
				t.Fatalf("expected (%v, %v), got (%v, %v)", tc.x, tc.ok, x, ok)
			}
		})
	}
}

func TestPairs(t *testing.T) {
	const n = 100
	r := rand.New(rand.NewPCG(1, 2))
	count := 0
	for range Pairs(r, n) {
		count++
	}
	if expected := len(Edges)*len(Edges) + n; count != expected {
		t.Fatalf("expected %d pairs, got %d", expected, count)
	}

	// Stopping early must not panic.
	for range Pairs(r, n) {
		break
	}
}
