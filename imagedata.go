package genfluvial

import (
	"image"
	"math"
	"math/rand"

	"github.com/Flokey82/genfluvial/topology"
	"github.com/Flokey82/genfluvial/various"
)

// ImageSettings generates terrain data by sampling an image. Pixels are
// sampled relative to the terrain size, so a non-square image gets
// stretched or squashed as needed.
//
// The basic rules are:
//   - If the blue value is greater than or equal to the maximum of red
//     and green, the point is sea, with a sea factor mapped from the
//     blue channel.
//   - On land, the green value determines the uplift factor and the red
//     value determines the slope factor.
//
// Applying red channel noise over an image increases the complexity of
// the terrain, combining high red and green produces very high
// mountainous terrain, and even just running the generator on a
// standard photo can produce interesting results.
type ImageSettings struct {
	size     int
	halfSize int
	lod      int
	seed     int64
	rnd      *rand.Rand
	img      image.Image
}

// NewImageSettings returns image based settings for the given terrain
// size and level of detail. The seed only drives the sample point
// distribution, not the data itself.
func NewImageSettings(size, lod int, seed int64, img image.Image) *ImageSettings {
	return &ImageSettings{
		size:     size,
		halfSize: size / 2,
		lod:      lod,
		seed:     seed,
		rnd:      rand.New(rand.NewSource(seed)),
		img:      img,
	}
}

// GetData samples the image pixel corresponding to the point and maps
// its channels to the terrain factors.
func (s *ImageSettings) GetData(x, y float64, maxSize int) topology.Coordinate {
	bounds := s.img.Bounds()
	px := bounds.Min.X + s.shiftAndScaleX(math.Round(x))
	py := bounds.Min.Y + s.shiftAndScaleY(math.Round(y))
	r16, g16, b16, _ := s.img.At(px, py).RGBA()
	red := float64(r16 >> 8)
	green := float64(g16 >> 8)
	blue := float64(b16 >> 8)

	seaFactor := various.Lerp(-1.0, 1.0, (255.0-blue)/255.0)
	if blue >= math.Max(red, green) {
		return topology.NewClampedCoordinate(x, y, maxSize, seaFactor, 0, 0)
	}
	return topology.NewClampedCoordinate(x, y, maxSize,
		seaFactor,
		various.Lerp(0.0, 1.0, green/255.0),
		various.Lerp(0.0, 1.0, red/255.0))
}

func (s *ImageSettings) Size() int {
	return s.size
}

func (s *ImageSettings) LOD() int {
	return s.lod
}

func (s *ImageSettings) Random() *rand.Rand {
	return s.rnd
}

func (s *ImageSettings) Seed() int64 {
	return s.seed
}

// shiftAndScaleX maps an x in [-halfSize, halfSize] to an image column.
func (s *ImageSettings) shiftAndScaleX(x float64) int {
	mapX := various.Clamp((x+float64(s.halfSize))/float64(s.size), 0.0, 1.0)
	w := s.img.Bounds().Dx()
	return int(various.Clamp(math.Round(various.Lerp(0, float64(w-1), mapX)), 0, float64(w-1)))
}

// shiftAndScaleY maps a y in [-halfSize, halfSize] to an image row. The
// image origin is at the top, so the axis flips.
func (s *ImageSettings) shiftAndScaleY(y float64) int {
	mapY := various.Clamp((y+float64(s.halfSize))/float64(s.size), 0.0, 1.0)
	h := s.img.Bounds().Dy()
	return int(various.Clamp(math.Round(various.Lerp(float64(h-1), 0, mapY)), 0, float64(h-1)))
}
