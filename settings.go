package genfluvial

import (
	"math/rand"

	"github.com/Flokey82/genfluvial/topology"
)

// Settings provides the per-point terrain data for the generator from
// some scalable data source, like noise or an image. The core only
// depends on this interface.
type Settings interface {
	// GetData returns the factor data for a point. If maxSize is greater
	// than 0, the absolute values of x and y are clamped to it.
	GetData(x, y float64, maxSize int) topology.Coordinate

	// Size of the terrain map in meters. The map is a square centered at
	// the origin with this side length.
	Size() int

	// LOD is the target number of sample points for the terrain map. The
	// actual number of generated nodes will usually be lower, since sea
	// areas are skipped.
	LOD() int

	// Random returns the random number generator associated with these
	// settings. It drives the random variation of the sample points.
	Random() *rand.Rand

	// Seed used to initialize the random number generator, so that the
	// same terrain can be generated multiple times.
	Seed() int64
}
