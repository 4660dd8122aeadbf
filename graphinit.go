package genfluvial

import (
	"log"
	"math"

	"github.com/Flokey82/genfluvial/topology"
	"github.com/Flokey82/genfluvial/various"
	"github.com/Flokey82/go_gens/utils"
	"github.com/fogleman/delaunay"
)

// generateGraph builds the initial random planar graph for the terrain
// from a Delaunay triangulation of the sample points. The triangulation
// is constrained to the bounding quad by including its corners, the
// bounded Voronoi diagram provides the catchment area per node, and
// edges that cross the ocean are culled.
func (g *Generator) generateGraph(points []delaunay.Point) error {
	halfSize := g.settings.Size() / 2
	h := float64(halfSize)
	points = append(points,
		delaunay.Point{X: -h, Y: -h},
		delaunay.Point{X: h, Y: -h},
		delaunay.Point{X: h, Y: h},
		delaunay.Point{X: -h, Y: h},
	)

	log.Printf("init step 2.1: generate delaunay triangulation from %d points", len(points))
	tm, err := newTriMesh(points)
	if err != nil {
		return err
	}

	log.Println("init step 2.2: generate corresponding voronoi diagram")
	areas := tm.cellAreas(h)
	catchment := make(map[topology.Key]float64, len(areas))
	for r, area := range areas {
		catchment[topology.NewCoordinate(tm.points[r].X, tm.points[r].Y, 0, 0, 0).Key()] = area
	}

	log.Println("init step 2.3: generate base graph with catchment areas")
	graph := g.newBaseGraph(catchment)

	log.Println("init step 2.4: save pre-culled triangles for later use")
	g.mesh = tm

	log.Println("init step 2.5: generate terrain data for each node")
	for s := 0; s < len(tm.triangles); s++ {
		// Visit each undirected edge of the triangulation once.
		if twin := tm.halfedges[s]; twin >= 0 && twin < s {
			continue
		}
		pa := tm.points[tm.triangles[s]]
		pb := tm.points[tm.triangles[s_next_s(s)]]
		dataA := g.settings.GetData(pa.X, pa.Y, halfSize)
		dataB := g.settings.GetData(pb.X, pb.Y, halfSize)

		// Case 1: one endpoint is in the ocean, but not both.
		if dataA.IsSea() != dataB.IsSea() {
			graph.AddBiDirectional(
				g.settings.GetData(pa.X, pa.Y, halfSize),
				g.settings.GetData(pb.X, pb.Y, halfSize))
			continue
		}
		// Case 2: both endpoints are in the ocean, discard the edge.
		// Case 3: both endpoints are on land, but the edge may still
		// cross the ocean, so sample along the segment.
		numSamples := utils.Max(2, utils.Min(50, int(math.Floor(dataA.DistanceFrom(dataB)))))
		if !dataA.IsSea() && !sampleForSea(dataA, dataB, numSamples, func(x, y float64) topology.Coordinate {
			return g.settings.GetData(x, y, 0)
		}) {
			graph.AddBiDirectional(
				g.settings.GetData(pa.X, pa.Y, halfSize),
				g.settings.GetData(pb.X, pb.Y, halfSize))
		}
	}
	g.rpGraph = graph
	return nil
}

// newBaseGraph returns a planar graph whose node factory slots the
// uplift, catchment area and slope factor into each node as it is
// created. Sea nodes carry no uplift, catchment or slope.
func (g *Generator) newBaseGraph(catchment map[topology.Key]float64) *topology.Graph {
	return topology.New(topology.NewDirectedEdge, func(c topology.Coordinate) *topology.Node {
		if c.IsSea() {
			return topology.NewNodeFull(c, 0, 0, 0, -1, 0)
		}
		uplift := various.Lerp(g.geology.MinU, g.geology.MaxU, c.UpliftFactor)
		return topology.NewNodeFull(c, uplift, 0, catchment[c.Key()], -1, c.SlopeFactor)
	})
}

// sampleForSea checks whether any interpolated point between the two
// coordinates is in the sea. Fewer than three samples cannot cover any
// interior point, so the segment passes.
func sampleForSea(a, b topology.Coordinate, numSamples int, data func(x, y float64) topology.Coordinate) bool {
	if numSamples < 3 {
		return false
	}
	step := 1.0 / float64(numSamples-1)
	for i := 1; i < numSamples; i++ {
		t := float64(i) * step
		if data(various.Lerp(a.X, b.X, t), various.Lerp(a.Y, b.Y, t)).IsSea() {
			return true
		}
	}
	return false
}
