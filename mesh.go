package genfluvial

import (
	"fmt"
	"math"

	"github.com/fogleman/delaunay"
)

// triMesh is the planar triangle mesh built from the sample
// distribution. It keeps the raw triangle and halfedge arrays of the
// triangulation plus an index for circulating the sides connected to a
// region, which is what the Voronoi cell construction walks.
type triMesh struct {
	points     []delaunay.Point
	triangles  []int
	halfedges  []int
	regInSide  []int
	numRegions int
}

// newTriMesh triangulates the given points and builds the side index.
func newTriMesh(points []delaunay.Point) (*triMesh, error) {
	tri, err := delaunay.Triangulate(points)
	if err != nil {
		return nil, fmt.Errorf("triangulation failed: %w", err)
	}
	tm := &triMesh{
		points:     points,
		triangles:  tri.Triangles,
		halfedges:  tri.Halfedges,
		numRegions: len(points),
	}

	// Construct an index for finding sides connected to a region. The
	// boundary override makes sure circulation around hull regions
	// starts at the open end of the fan.
	tm.regInSide = make([]int, tm.numRegions)
	for s := 0; s < len(tm.triangles); s++ {
		endpoint := tm.triangles[s_next_s(s)]
		if tm.regInSide[endpoint] == 0 || tm.halfedges[s] == -1 {
			tm.regInSide[endpoint] = s
		}
	}
	return tm, nil
}

func s_to_t(s int) int {
	return s / 3
}

func s_next_s(s int) int {
	if s%3 == 2 {
		return s - 2
	}
	return s + 1
}

func (tm *triMesh) numTriangles() int {
	return len(tm.triangles) / 3
}

// circumcenter returns the circumcenter of triangle t, which is the
// Voronoi vertex shared by the cells of its three corners.
func (tm *triMesh) circumcenter(t int) [2]float64 {
	a := tm.points[tm.triangles[3*t]]
	b := tm.points[tm.triangles[3*t+1]]
	c := tm.points[tm.triangles[3*t+2]]

	ad := a.X*a.X + a.Y*a.Y
	bd := b.X*b.X + b.Y*b.Y
	cd := c.X*c.X + c.Y*c.Y
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	return [2]float64{
		(ad*(b.Y-c.Y) + bd*(c.Y-a.Y) + cd*(a.Y-b.Y)) / d,
		(ad*(c.X-b.X) + bd*(a.X-c.X) + cd*(b.X-a.X)) / d,
	}
}

// farRayLength pushes the open ends of hull cells far enough out that
// the clip square fully bounds them. Kept small enough that clipping
// against it does not lose precision.
const farRayLength = 1e6

// cellPolygon returns the Voronoi cell polygon of region r as the ring
// of circumcenters of the triangles around it. Cells of hull regions are
// open: their two boundary rays follow the perpendicular bisectors of
// the hull edges, pushed out far beyond any clip square.
func (tm *triMesh) cellPolygon(r int) [][2]float64 {
	s0 := tm.regInSide[r]
	incoming := s0
	var poly [][2]float64
	if tm.halfedges[s0] == -1 {
		poly = append(poly, tm.hullFarPoint(s0))
	}
	for {
		poly = append(poly, tm.circumcenter(s_to_t(incoming)))
		outgoing := s_next_s(incoming)
		next := tm.halfedges[outgoing]
		if next == -1 {
			poly = append(poly, tm.hullFarPoint(outgoing))
			break
		}
		if next == s0 {
			break
		}
		incoming = next
	}
	return poly
}

// hullFarPoint returns a point far along the outward perpendicular
// bisector of the given hull side. The third vertex of the side's
// triangle tells which way is outward.
func (tm *triMesh) hullFarPoint(s int) [2]float64 {
	ui := tm.triangles[s]
	vi := tm.triangles[s_next_s(s)]
	u := tm.points[ui]
	v := tm.points[vi]
	t := s_to_t(s)
	var w delaunay.Point
	for i := 0; i < 3; i++ {
		if idx := tm.triangles[3*t+i]; idx != ui && idx != vi {
			w = tm.points[idx]
		}
	}
	mpx := (u.X + v.X) / 2
	mpy := (u.Y + v.Y) / 2
	nx := -(v.Y - u.Y)
	ny := v.X - u.X
	if nx*(w.X-mpx)+ny*(w.Y-mpy) > 0 {
		nx, ny = -nx, -ny
	}
	norm := math.Hypot(nx, ny)
	return [2]float64{mpx + nx/norm*farRayLength, mpy + ny/norm*farRayLength}
}

// cellAreas returns the bounded Voronoi cell area per region, with each
// cell clipped to the square spanned by the given half size.
func (tm *triMesh) cellAreas(halfSize float64) []float64 {
	areas := make([]float64, tm.numRegions)
	for r := 0; r < tm.numRegions; r++ {
		areas[r] = polygonArea(clipToSquare(tm.cellPolygon(r), halfSize))
	}
	return areas
}

// clipToSquare clips a polygon against the axis-aligned square
// [-halfSize, halfSize]^2 using Sutherland-Hodgman.
func clipToSquare(poly [][2]float64, halfSize float64) [][2]float64 {
	clips := []struct {
		inside func(p [2]float64) bool
		cross  func(a, b [2]float64) [2]float64
	}{
		{
			inside: func(p [2]float64) bool { return p[0] >= -halfSize },
			cross:  func(a, b [2]float64) [2]float64 { return crossX(a, b, -halfSize) },
		},
		{
			inside: func(p [2]float64) bool { return p[0] <= halfSize },
			cross:  func(a, b [2]float64) [2]float64 { return crossX(a, b, halfSize) },
		},
		{
			inside: func(p [2]float64) bool { return p[1] >= -halfSize },
			cross:  func(a, b [2]float64) [2]float64 { return crossY(a, b, -halfSize) },
		},
		{
			inside: func(p [2]float64) bool { return p[1] <= halfSize },
			cross:  func(a, b [2]float64) [2]float64 { return crossY(a, b, halfSize) },
		},
	}
	for _, clip := range clips {
		if len(poly) == 0 {
			break
		}
		var clipped [][2]float64
		for i, cur := range poly {
			prev := poly[(i+len(poly)-1)%len(poly)]
			curIn := clip.inside(cur)
			prevIn := clip.inside(prev)
			if curIn {
				if !prevIn {
					clipped = append(clipped, clip.cross(prev, cur))
				}
				clipped = append(clipped, cur)
			} else if prevIn {
				clipped = append(clipped, clip.cross(prev, cur))
			}
		}
		poly = clipped
	}
	return poly
}

// crossX intersects segment a-b with the vertical line x.
func crossX(a, b [2]float64, x float64) [2]float64 {
	t := (x - a[0]) / (b[0] - a[0])
	return [2]float64{x, a[1] + t*(b[1]-a[1])}
}

// crossY intersects segment a-b with the horizontal line y.
func crossY(a, b [2]float64, y float64) [2]float64 {
	t := (y - a[1]) / (b[1] - a[1])
	return [2]float64{a[0] + t*(b[0]-a[0]), y}
}

// polygonArea returns the unsigned area of the polygon via the shoelace
// formula.
func polygonArea(poly [][2]float64) float64 {
	if len(poly) < 3 {
		return 0
	}
	var sum float64
	for i, cur := range poly {
		next := poly[(i+1)%len(poly)]
		sum += cur[0]*next[1] - next[0]*cur[1]
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}
