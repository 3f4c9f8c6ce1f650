package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 100; i++ {
		x, y := a.IntN(10), b.IntN(10)
		if x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
		if x < 0 || x >= 10 {
			t.Fatalf("draw %d out of range: %d", i, x)
		}
	}
}

func TestRNGIntNNonPositive(t *testing.T) {
	r := NewRNG(1)
	if r.IntN(0) != 0 || r.IntN(-3) != 0 {
		t.Fatal("IntN with non-positive bound should return 0")
	}
}

func TestRandSatisfiesIntSource(t *testing.T) {
	var _ IntSource = NewRNG(1)
	var _ IntSource = NewRNG(1).Source()
}
