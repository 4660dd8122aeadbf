package genfluvial

import (
	"math"
	"math/rand"

	"github.com/Flokey82/genfluvial/noise"
	"github.com/Flokey82/genfluvial/topology"
	"github.com/Flokey82/genfluvial/various"
)

// Default channel options for the noise settings. Broader or steeper
// terrain can be had by configuring values outside these, the returned
// factors are constrained to their ranges either way.
const (
	DefaultSeaPersistence    = 0.7
	DefaultSeaLow            = -0.6
	DefaultSeaHigh           = 1.0
	DefaultUpliftFromSea     = false
	DefaultUpliftPersistence = 0.7
	DefaultUpliftLow         = -0.8
	DefaultUpliftHigh        = 1.0
	DefaultSlopeFromSea      = false
	DefaultSlopeFromUplift   = true
	DefaultSlopePersistence  = 0.1
	DefaultSlopeLow          = 0.0
	DefaultSlopeHigh         = 1.0
)

// NoiseSettingsConfig holds all options of the noise based terrain
// settings. The sea, uplift and slope channels are independent octave
// sums, each with its own persistence, scale, output range and shift.
type NoiseSettingsConfig struct {
	Size          int
	LOD           int
	LandMaxRadius int
	Octaves       int

	SeaShiftX, SeaShiftY       int
	UpliftShiftX, UpliftShiftY int
	SlopeShiftX, SlopeShiftY   int

	SeaPersistence float64
	SeaScale       float64
	SeaLow         float64
	SeaHigh        float64

	UpliftFromSea     bool
	UpliftPersistence float64
	UpliftScale       float64
	UpliftLow         float64
	UpliftHigh        float64

	SlopeFromSea     bool
	SlopeFromUplift  bool
	SlopePersistence float64
	SlopeScale       float64
	SlopeLow         float64
	SlopeHigh        float64
}

// NewNoiseSettingsConfig returns the default configuration for the
// given map size. The shifts are drawn from the random number generator
// so separate channels sample different parts of the noise.
func NewNoiseSettingsConfig(size, lod, landMaxRadius int, rnd *rand.Rand) *NoiseSettingsConfig {
	return &NoiseSettingsConfig{
		Size:              size,
		LOD:               lod,
		LandMaxRadius:     landMaxRadius,
		Octaves:           int(math.Round(math.Log(float64(size)) / math.Log(2))),
		SeaShiftX:         rnd.Intn(2*size) - size,
		SeaShiftY:         rnd.Intn(2*size) - size,
		UpliftShiftX:      rnd.Intn(2*size) - size,
		UpliftShiftY:      rnd.Intn(2*size) - size,
		SlopeShiftX:       rnd.Intn(2*size) - size,
		SlopeShiftY:       rnd.Intn(2*size) - size,
		SeaPersistence:    DefaultSeaPersistence,
		SeaScale:          1.0 / float64(size),
		SeaLow:            DefaultSeaLow,
		SeaHigh:           DefaultSeaHigh,
		UpliftFromSea:     DefaultUpliftFromSea,
		UpliftPersistence: DefaultUpliftPersistence,
		UpliftScale:       2.0 / float64(size),
		UpliftLow:         DefaultUpliftLow,
		UpliftHigh:        DefaultUpliftHigh,
		SlopeFromSea:      DefaultSlopeFromSea,
		SlopeFromUplift:   DefaultSlopeFromUplift,
		SlopePersistence:  DefaultSlopePersistence,
		SlopeScale:        3.0 / float64(size),
		SlopeLow:          DefaultSlopeLow,
		SlopeHigh:         DefaultSlopeHigh,
	}
}

// NoiseSettings generates terrain data using OpenSimplex noise. This is
// fairly simple and naive, but it will generate some mildly interesting
// terrain without too much effort. A radial continental gradient pushes
// points beyond the land radius into the sea.
type NoiseSettings struct {
	cfg  *NoiseSettingsConfig
	rnd  *rand.Rand
	seed int64

	sea    *noise.Noise
	uplift *noise.Noise
	slope  *noise.Noise
}

// NewNoiseSettings returns noise settings with the default
// configuration for the given size, level of detail and land radius.
func NewNoiseSettings(size, lod, landMaxRadius int, rnd *rand.Rand, seed int64) *NoiseSettings {
	return NewNoiseSettingsFromConfig(NewNoiseSettingsConfig(size, lod, landMaxRadius, rnd), rnd, seed)
}

// NewNoiseSettingsFromConfig returns noise settings with the given
// configuration.
func NewNoiseSettingsFromConfig(cfg *NoiseSettingsConfig, rnd *rand.Rand, seed int64) *NoiseSettings {
	return &NoiseSettings{
		cfg:    cfg,
		rnd:    rnd,
		seed:   seed,
		sea:    noise.NewNoise(cfg.Octaves, cfg.SeaPersistence, cfg.SeaScale, seed),
		uplift: noise.NewNoise(cfg.Octaves, cfg.UpliftPersistence, cfg.UpliftScale, seed),
		slope:  noise.NewNoise(cfg.Octaves, cfg.SlopePersistence, cfg.SlopeScale, seed),
	}
}

// GetData returns the factor data for a point. Uplift and slope are only
// evaluated on land.
func (s *NoiseSettings) GetData(x, y float64, maxSize int) topology.Coordinate {
	seaVal := s.SeaData(x, y)
	var upliftVal, slopeVal float64
	if seaVal > 0 {
		upliftVal = s.UpliftData(x, y, seaVal)
		slopeVal = s.SlopeData(x, y, seaVal, upliftVal)
	}
	return topology.NewClampedCoordinate(x, y, maxSize, seaVal, upliftVal, slopeVal)
}

func (s *NoiseSettings) Size() int {
	return s.cfg.Size
}

func (s *NoiseSettings) LOD() int {
	return s.cfg.LOD
}

func (s *NoiseSettings) Random() *rand.Rand {
	return s.rnd
}

func (s *NoiseSettings) Seed() int64 {
	return s.seed
}

// SeaData generates the sea factor for a point, shaped by the
// continental gradient so the map edge falls into the ocean.
func (s *NoiseSettings) SeaData(x, y float64) float64 {
	return various.Clamp(
		s.sea.Eval2Range(x+float64(s.cfg.SeaShiftX), y+float64(s.cfg.SeaShiftY), s.cfg.SeaLow, s.cfg.SeaHigh)-
			s.continentalGradient(x, y),
		-1.0, 1.0)
}

// UpliftData generates the uplift factor for a point, optionally seeded
// with the sea value. The lower bound stays above zero so land is never
// entirely static.
func (s *NoiseSettings) UpliftData(x, y, seaVal float64) float64 {
	var start float64
	if s.cfg.UpliftFromSea {
		start = seaVal
	}
	return various.Clamp(
		start+s.uplift.Eval2Range(x+float64(s.cfg.UpliftShiftX), y+float64(s.cfg.UpliftShiftY), s.cfg.UpliftLow, s.cfg.UpliftHigh),
		0.0005, 1.0)
}

// SlopeData generates the slope factor for a point. It should produce
// fairly dramatic mountain ranges without them being fat. Note that the
// slope channel samples with high and low swapped, which inverts the
// noise.
func (s *NoiseSettings) SlopeData(x, y, seaVal, upliftVal float64) float64 {
	var start float64
	if s.cfg.SlopeFromSea {
		start = seaVal
	} else if s.cfg.SlopeFromUplift {
		start = upliftVal
	}
	return various.Clamp(
		start+s.slope.Eval2Range(x+float64(s.cfg.SlopeShiftX), y+float64(s.cfg.SlopeShiftY), s.cfg.SlopeHigh, s.cfg.SlopeLow),
		0.0, 1.0)
}

// continentalGradient is 0 up to three quarters of the land radius and
// rises linearly to 1 at one and a quarter times the land radius and
// beyond, based on the distance from the origin.
func (s *NoiseSettings) continentalGradient(x, y float64) float64 {
	radial := math.Sqrt(x*x + y*y)
	lmr := float64(s.cfg.LandMaxRadius)
	return various.Clamp((math.Max(0, radial-lmr/4)/lmr)*2.0-1.0, 0.0, 1.0)
}
