package topology

import (
	"math"
	"sort"

	"github.com/Flokey82/go_gens/vectors"
)

// DirectedEdge connects two nodes in one direction. An edge may have a
// symmetric twin running the opposite way between the same nodes. Edges
// on a lake graph additionally carry the pass height and the saddle node
// pair the lake connection corresponds to.
type DirectedEdge struct {
	From, To *Node
	P0, P1   Coordinate

	// Sym is the symmetric edge in the opposite direction, or nil.
	// Maintained by the owning graph.
	Sym *DirectedEdge

	// PassHeight is the height at which water can flow from one lake to
	// another over this edge's saddle.
	PassHeight float64

	// SaddleFrom and SaddleTo are the original-graph nodes forming the
	// saddle pair on each side of a lake connection. Only set on lake
	// graph edges.
	SaddleFrom *Node
	SaddleTo   *Node

	// InsertOrder records when this edge entered a priority structure.
	// Used as the final tiebreaker of the lake comparator.
	InsertOrder int64

	dx, dy float64
	angle  float64
}

// NewDirectedEdge creates a new edge from one node to the other and
// registers it with both: it is appended to the from node's outbound
// list and the from node is appended to the to node's inbound list.
func NewDirectedEdge(from, to *Node) *DirectedEdge {
	p0 := from.Pt()
	p1 := to.Pt()
	de := &DirectedEdge{
		From: from,
		To:   to,
		P0:   p0,
		P1:   p1,
		dx:   p1.X - p0.X,
		dy:   p1.Y - p0.Y,
	}
	de.angle = math.Atan2(de.dy, de.dx)
	from.addOutEdge(de)
	to.addInboundNode(from)
	return de
}

// Angle returns the direction of this edge relative to the x-axis in
// radians, between -Pi and Pi.
func (de *DirectedEdge) Angle() float64 {
	return de.angle
}

// Length3DSquared returns the squared length of this edge in three
// dimensions, using the current heights of its nodes.
func (de *DirectedEdge) Length3DSquared() float64 {
	dh := de.From.Height() - de.To.Height()
	return dh*dh + de.dx*de.dx + de.dy*de.dy
}

// NormalizedVec2 returns the edge direction as a normalized 2D vector
// (height is ignored).
func (de *DirectedEdge) NormalizedVec2() vectors.Vec2 {
	return vectors.Normalize(vectors.Vec2{X: de.dx, Y: de.dy})
}

// NormalizedVec3 returns the edge direction as a normalized 3D vector
// including the height difference of its nodes.
func (de *DirectedEdge) NormalizedVec3() vectors.Vec3 {
	return vectors.Vec3{X: de.dx, Y: de.dy, Z: de.From.Height() - de.To.Height()}.Normalize()
}

// unbind detaches this edge from its twin and from the adjacency lists
// of its endpoints.
func (de *DirectedEdge) unbind() {
	if de.Sym != nil {
		de.Sym.Sym = nil
	}
	de.Sym = nil
	de.From.removeOutEdge(de)
	de.To.removeInboundNode(de.From)
}

// LakeLess is the ordering of lake graph edges used for the lake
// spanning tree: ascending pass height, then ascending uplift of the to
// node, then ascending uplift of the from node, then insert order.
func LakeLess(a, b *DirectedEdge) bool {
	if a.PassHeight != b.PassHeight {
		return a.PassHeight < b.PassHeight
	}
	if a.To.Uplift != b.To.Uplift {
		return a.To.Uplift < b.To.Uplift
	}
	if a.From.Uplift != b.From.Uplift {
		return a.From.Uplift < b.From.Uplift
	}
	return a.InsertOrder < b.InsertOrder
}

// sortEdgesByAngle keeps an adjacency list in deterministic order. The
// sort is stable so that equal angles keep their insertion order.
func sortEdgesByAngle(edges []*DirectedEdge) {
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].angle < edges[j].angle
	})
}
