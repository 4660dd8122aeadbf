package genfluvial

import (
	"math/rand"

	"github.com/Flokey82/genfluvial/topology"
)

const testSeed int64 = 0x7e57

// testSettings is a scriptable settings implementation for tests.
type testSettings struct {
	size int
	lod  int
	seed int64
	rnd  *rand.Rand
	data func(x, y float64, maxSize int) topology.Coordinate
}

func (s *testSettings) GetData(x, y float64, maxSize int) topology.Coordinate {
	return s.data(x, y, maxSize)
}

func (s *testSettings) Size() int          { return s.size }
func (s *testSettings) LOD() int           { return s.lod }
func (s *testSettings) Random() *rand.Rand { return s.rnd }
func (s *testSettings) Seed() int64        { return s.seed }

// newZoneSettings returns settings with two sea zones, a strip between
// x 10 and 15 splitting off an island, and a strip between y -5 and 0.
// Points at or beyond 20 on either axis count as sea as well, so border
// vertices do not join the land graph.
func newZoneSettings() *testSettings {
	return &testSettings{
		size: 40,
		lod:  20,
		seed: testSeed,
		rnd:  rand.New(rand.NewSource(testSeed)),
		data: func(x, y float64, maxSize int) topology.Coordinate {
			if (x > 10 && x < 15) || (y > -5 && y < 0) {
				return topology.NewClampedCoordinate(x, y, maxSize, 0, 0, 0)
			}
			if x >= 20 || x <= -20 || y >= 20 || y <= -20 {
				return topology.NewClampedCoordinate(x, y, maxSize, 0, 0, 0)
			}
			return topology.NewClampedCoordinate(x, y, maxSize, 0.5, 0.5, 0.3)
		},
	}
}
