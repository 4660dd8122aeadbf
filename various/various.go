package various

import "math"

// Lerp linearly interpolates between start and end.
func Lerp(start, end, t float64) float64 {
	return start + t*(end-start)
}

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Clamp constrains v to the range [low, high].
func Clamp(v, low, high float64) float64 {
	return math.Min(math.Max(v, low), high)
}

// RoundToDecimals rounds the given float to the given number of decimals.
func RoundToDecimals(v, d float64) float64 {
	m := math.Pow(10, d)
	return math.Round(v*m) / m
}
