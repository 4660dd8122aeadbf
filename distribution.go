package genfluvial

import (
	"math"
	"math/rand"

	"github.com/Flokey82/genfluvial/topology"
	"github.com/fogleman/delaunay"
)

// generatePointDistribution produces the sample points for the terrain
// as a jittered grid: the map is divided into m x m cells (m derived
// from the level of detail), and each cell emits one point offset by a
// Poisson draw around the cell origin. Duplicate positions collapse by
// coordinate equality.
func (g *Generator) generatePointDistribution() []delaunay.Point {
	m := int(math.Round(math.Sqrt(float64(g.settings.LOD()))))
	jumpMean := g.settings.Size() / m
	halfSize := g.settings.Size() / 2
	rnd := g.settings.Random()

	low := float64(-halfSize + 1)
	high := float64(halfSize - 1)
	seen := make(map[topology.Key]bool)
	points := make([]delaunay.Point, 0, m*m)
	for i := 0; i < m; i++ {
		for k := 0; k < m; k++ {
			x := min(max(low, low+float64(i*jumpMean)+poisson(rnd, float64(2*jumpMean))-float64(jumpMean)), high)
			y := min(max(low, low+float64(k*jumpMean)+poisson(rnd, float64(2*jumpMean))-float64(jumpMean)), high)
			key := topology.NewCoordinate(x, y, 0, 0, 0).Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			points = append(points, delaunay.Point{X: x, Y: y})
		}
	}
	return points
}

// poisson draws from a Poisson distribution with the given mean using
// Knuth's multiplication method.
func poisson(rnd *rand.Rand, mean float64) float64 {
	l := math.Exp(-mean)
	var k float64
	p := 1.0
	for {
		p *= rnd.Float64()
		if p <= l {
			return k
		}
		k++
	}
}
