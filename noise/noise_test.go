package noise

import (
	"math"
	"testing"
)

func TestEval2StaysInRange(t *testing.T) {
	n := NewNoise(8, 0.7, 0.01, 1234)
	for x := -100.0; x <= 100; x += 13 {
		for y := -100.0; y <= 100; y += 17 {
			v := n.Eval2(x, y)
			if v < -1 || v > 1 {
				t.Fatalf("octave sum %f out of range at (%f, %f)", v, x, y)
			}
		}
	}
}

func TestEval2RangeRemaps(t *testing.T) {
	n := NewNoise(4, 0.5, 0.1, 99)
	for x := 0.0; x < 10; x++ {
		v := n.Eval2Range(x, -x, -0.6, 1.0)
		if v < -0.6 || v > 1.0 {
			t.Fatalf("remapped value %f out of range", v)
		}
		// Swapping low and high inverts the channel around the center.
		inv := n.Eval2Range(x, -x, 1.0, -0.6)
		center := (1.0 + -0.6) / 2
		if math.Abs((v-center)+(inv-center)) > 1e-9 {
			t.Fatalf("inverted channel should mirror around the center: %f vs %f", v, inv)
		}
	}
}

func TestNoiseDeterministic(t *testing.T) {
	a := NewNoise(6, 0.7, 0.05, 42)
	b := NewNoise(6, 0.7, 0.05, 42)
	for i := 0.0; i < 20; i++ {
		if a.Eval2(i, i*2) != b.Eval2(i, i*2) {
			t.Fatal("same seed should produce identical noise")
		}
	}
}

func TestPlusOneOctave(t *testing.T) {
	n := NewNoise(4, 0.5, 0.1, 7)
	m := n.PlusOneOctave()
	if m.Octaves != 5 {
		t.Errorf("expected 5 octaves, got %d", m.Octaves)
	}
	if m.Seed != n.Seed || m.Persistence != n.Persistence || m.Scale != n.Scale {
		t.Error("remaining parameters should carry over")
	}
}
