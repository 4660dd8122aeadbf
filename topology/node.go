package topology

// Node is a single node in a terrain graph. It wraps a Coordinate with the
// static per-point data and tracks values calculated during generation,
// like height, catchment areas and the lake id. The node keeps its
// outbound edges sorted by angle with the positive x-axis and mirrors
// inbound connections so the graph can be navigated in reverse.
type Node struct {
	// Uplift of the node in meters per year, 0 for sea nodes.
	Uplift float64

	// MaxSlope holds the relative slope factor of the node (0 for sea
	// nodes). The translation to an actual angle happens in the thermal
	// shock step, where it is interpolated between the configured
	// minimum and maximum slope.
	MaxSlope float64

	// CatchmentArea of this node alone in square meters, from the
	// Voronoi cell of the point.
	CatchmentArea float64

	// UpstreamCatchmentArea is the summed catchment of all upstream
	// nodes. Recomputed every simulation step.
	UpstreamCatchmentArea float64

	// LakeID tags the lake this node drains into, -1 if unset.
	LakeID int64

	pt     Coordinate
	height float64
	out    []*DirectedEdge
	in     []*Node
}

// NewNode returns a node with the given location, uplift and slope
// factor. Uplift and slope are ignored for sea nodes.
func NewNode(pt Coordinate, uplift, maxSlope float64) *Node {
	if pt.IsSea() {
		uplift = 0
		maxSlope = 0
	}
	return &Node{
		Uplift:   uplift,
		MaxSlope: maxSlope,
		LakeID:   -1,
		pt:       pt,
	}
}

// NewNodeFull returns a node with all generation values set. Everything
// except the lake id is zeroed for sea nodes.
func NewNodeFull(pt Coordinate, uplift, height, catchmentArea float64, lakeID int64, maxSlope float64) *Node {
	if pt.IsSea() {
		uplift = 0
		height = 0
		catchmentArea = 0
		maxSlope = 0
	}
	return &Node{
		Uplift:        uplift,
		MaxSlope:      maxSlope,
		CatchmentArea: catchmentArea,
		LakeID:        lakeID,
		pt:            pt,
		height:        height,
	}
}

// Pt returns the location of this node.
func (n *Node) Pt() Coordinate {
	return n.pt
}

// Height returns the height of this node in meters.
func (n *Node) Height() float64 {
	return n.height
}

// SetHeight sets the height of this node. Sea nodes are pinned to 0.
func (n *Node) SetHeight(height float64) {
	if n.pt.IsSea() {
		height = 0
	}
	n.height = height
}

// TotalCatchmentArea is the combined local and upstream catchment area of
// this node in square meters. This is the drainage term of the stream
// power equation.
func (n *Node) TotalCatchmentArea() float64 {
	return n.UpstreamCatchmentArea + n.CatchmentArea
}

// SwitchToSea overrides the node's point data to be a sea node and resets
// its height. Used when a graph needs a sea node but has none.
func (n *Node) SwitchToSea() {
	n.height = 0
	n.pt = NewCoordinate(n.pt.X, n.pt.Y, 0, 0, 0)
}

// Out returns the outbound edges of this node, sorted by angle with the
// positive x-axis. The returned slice is the node's internal list.
func (n *Node) Out() []*DirectedEdge {
	return n.out
}

// In returns the nodes with an inbound connection to this node, as
// maintained by the owning graph's edges.
func (n *Node) In() []*Node {
	return n.in
}

// addOutEdge appends an edge to the outbound list and restores the angle
// ordering. Ties keep insertion order.
func (n *Node) addOutEdge(de *DirectedEdge) {
	n.out = append(n.out, de)
	sortEdgesByAngle(n.out)
}

func (n *Node) addInboundNode(other *Node) {
	n.in = append(n.in, other)
}

func (n *Node) removeInboundNode(other *Node) {
	for i, cand := range n.in {
		if cand == other {
			n.in = append(n.in[:i], n.in[i+1:]...)
			return
		}
	}
}

// removeOutEdge drops an outbound edge from this node. The "to" node's
// inbound list is not touched, that is the graph's responsibility.
func (n *Node) removeOutEdge(de *DirectedEdge) {
	for i, cand := range n.out {
		if cand == de {
			n.out = append(n.out[:i], n.out[i+1:]...)
			return
		}
	}
}

// unbind clears all connection tracking on this node.
func (n *Node) unbind() {
	n.out = nil
	n.in = nil
}

// Clone returns a disconnected copy of this node, carrying the point
// data, uplift, height, catchment area, lake id and slope factor. The
// upstream catchment area is reset.
func (n *Node) Clone() *Node {
	return NewNodeFull(n.pt, n.Uplift, n.height, n.CatchmentArea, n.LakeID, n.MaxSlope)
}
