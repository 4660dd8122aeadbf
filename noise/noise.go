// Package noise wraps opensimplex with octave summation tuned for
// terrain data channels.
package noise

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Noise sums successively smaller, higher-frequency octaves of
// opensimplex noise, starting at the given base frequency (scale).
type Noise struct {
	Octaves     int
	Persistence float64
	Scale       float64
	Amplitudes  []float64
	Seed        int64
	OS          opensimplex.Noise
}

// NewNoise returns a new Noise with the given octave count, persistence,
// base frequency and seed.
func NewNoise(octaves int, persistence, scale float64, seed int64) *Noise {
	n := &Noise{
		Octaves:     octaves,
		Persistence: persistence,
		Scale:       scale,
		Amplitudes:  make([]float64, octaves),
		Seed:        seed,
		OS:          opensimplex.New(seed),
	}

	// Initialize the amplitudes.
	for i := range n.Amplitudes {
		n.Amplitudes[i] = math.Pow(persistence, float64(i))
	}
	return n
}

// Eval2 returns the averaged octave sum at the given point, in [-1, 1].
func (n *Noise) Eval2(x, y float64) float64 {
	var sum, sumOfAmplitudes float64
	freq := n.Scale
	for octave := 0; octave < n.Octaves; octave++ {
		sum += n.Amplitudes[octave] * n.OS.Eval2(x*freq, y*freq)
		sumOfAmplitudes += n.Amplitudes[octave]
		freq *= 2
	}
	return sum / sumOfAmplitudes
}

// Eval2Range returns the octave sum at the given point remapped from
// [-1, 1] to the range spanned by low and high. Passing low > high
// inverts the noise.
func (n *Noise) Eval2Range(x, y, low, high float64) float64 {
	return n.Eval2(x, y)*((high-low)/2.0) + ((high + low) / 2.0)
}

// PlusOneOctave returns a new Noise with one more octave.
func (n *Noise) PlusOneOctave() *Noise {
	return NewNoise(n.Octaves+1, n.Persistence, n.Scale, n.Seed)
}
