package genfluvial

import "github.com/Flokey82/genfluvial/various"

// GeologyConfig holds the global geological constants for the simulation.
type GeologyConfig struct {
	DeltaT          float64 // Time step of the simulation in years.
	MaxU            float64 // Maximum uplift rate (m/y).
	MinU            float64 // Minimum uplift rate (m/y).
	K               float64 // Erosion coefficient.
	M               float64 // Stream power drainage exponent (n is assumed to be 1).
	MaxSlopeRadians float64 // Largest slope generated at slope factor 1.
	MinSlopeRadians float64 // Smallest slope generated at slope factor 0.
}

// NewGeologyConfig returns geological settings based on the original
// paper. The slope bounds assume slope factors derived from noise, which
// keeps mountains from getting unrealistically jagged.
func NewGeologyConfig() *GeologyConfig {
	return &GeologyConfig{
		DeltaT:          250000.0, // 250,000 years per step for fast convergence.
		MaxU:            5.01e-4,  // Average uplift for earth mountains per year.
		MinU:            0.0,
		K:               5.61e-7, // Gives a max mountain height of around 2km.
		M:               0.5,     // M = 0.5 is common in geomorphology.
		MaxSlopeRadians: various.DegToRad(58),
		MinSlopeRadians: various.DegToRad(6),
	}
}

// EstimatedMaxHeight returns the estimated maximum mountain height for
// these settings, following H = 2.244 * (U / K).
func (c *GeologyConfig) EstimatedMaxHeight() float64 {
	return 2.244 * (c.MaxU / c.K)
}
