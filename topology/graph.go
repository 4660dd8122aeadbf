package topology

import "sort"

// EdgeFactory creates an edge between two existing nodes.
type EdgeFactory func(from, to *Node) *DirectedEdge

// NodeFactory creates a node for a coordinate.
type NodeFactory func(c Coordinate) *Node

// Graph is a set of nodes keyed by coordinate and directed edges between
// them. Nodes without outbound edges are tracked as sinks. The factories
// given at construction are used to create nodes and edges on demand,
// but can be overridden per call.
type Graph struct {
	edgeFactory EdgeFactory
	nodeFactory NodeFactory
	nodes       map[Key]*Node
	edges       []*DirectedEdge
	sinks       map[*Node]struct{}
}

// New constructs an empty graph with the given default factories.
func New(edgeFactory EdgeFactory, nodeFactory NodeFactory) *Graph {
	return &Graph{
		edgeFactory: edgeFactory,
		nodeFactory: nodeFactory,
		nodes:       make(map[Key]*Node),
		sinks:       make(map[*Node]struct{}),
	}
}

// FindNode returns the node at the given 2D location, if any. Only the
// position of the coordinate participates in the lookup.
func (g *Graph) FindNode(pt Coordinate) (*Node, bool) {
	n, ok := g.nodes[pt.Key()]
	return n, ok
}

// FindEdge returns the edge between the two coordinates, if it exists.
func (g *Graph) FindEdge(a, b Coordinate) (*DirectedEdge, bool) {
	n, ok := g.FindNode(a)
	if !ok {
		return nil, false
	}
	for _, e := range n.Out() {
		if e.To.Pt().Equals(b) {
			return e, true
		}
	}
	return nil, false
}

// AddNode adds a node at the given location using the default factory.
// If a node already exists there, it is returned instead.
func (g *Graph) AddNode(pt Coordinate) *Node {
	return g.AddNodeWith(pt, g.nodeFactory)
}

// AddNodeWith adds a node at the given location using the provided
// factory. New nodes start out as sinks.
func (g *Graph) AddNodeWith(pt Coordinate, nodeFactory NodeFactory) *Node {
	if n, ok := g.nodes[pt.Key()]; ok {
		return n
	}
	n := nodeFactory(pt)
	g.nodes[n.Pt().Key()] = n
	g.sinks[n] = struct{}{}
	return n
}

// AddEdge adds an edge between the two coordinates using the default
// factories, creating the nodes as needed. If the edge already exists it
// is returned unchanged.
func (g *Graph) AddEdge(from, to Coordinate) *DirectedEdge {
	return g.AddEdgeWith(from, to, g.nodeFactory, g.edgeFactory)
}

// AddEdgeWith is AddEdge with explicit factories.
func (g *Graph) AddEdgeWith(from, to Coordinate, nodeFactory NodeFactory, edgeFactory EdgeFactory) *DirectedEdge {
	fromNode := g.AddNodeWith(from, nodeFactory)
	toNode := g.AddNodeWith(to, nodeFactory)
	return g.addEdge(fromNode, toNode, edgeFactory)
}

// addEdge links two existing nodes, wiring up the sym references if the
// reverse edge is present and removing the from node from the sinks.
func (g *Graph) addEdge(from, to *Node, edgeFactory EdgeFactory) *DirectedEdge {
	if e, ok := g.FindEdge(from.Pt(), to.Pt()); ok {
		return e
	}
	e := edgeFactory(from, to)
	g.edges = append(g.edges, e)
	if sym, ok := g.FindEdge(to.Pt(), from.Pt()); ok {
		e.Sym = sym
		sym.Sym = e
	}
	delete(g.sinks, from)
	return e
}

// AddBiDirectional adds the two directed edges between the coordinates
// using the default factories.
func (g *Graph) AddBiDirectional(from, to Coordinate) {
	fromNode := g.AddNode(from)
	toNode := g.AddNode(to)
	g.addEdge(fromNode, toNode, g.edgeFactory)
	g.addEdge(toNode, fromNode, g.edgeFactory)
}

// AddBiDirectionalWithSaddles adds the two directed edges between two
// lake sink coordinates and attaches clones of the saddle node pair to
// both, with from and to swapped on the reverse direction. If the edges
// already exist, only the saddle nodes are replaced.
func (g *Graph) AddBiDirectionalWithSaddles(sinkA, sinkB Coordinate, saddleA, saddleB *Node, nodeFactory NodeFactory, edgeFactory EdgeFactory) {
	nodeA := g.AddNodeWith(sinkA, nodeFactory)
	nodeB := g.AddNodeWith(sinkB, nodeFactory)
	edgeAB := g.addEdge(nodeA, nodeB, edgeFactory)
	edgeBA := g.addEdge(nodeB, nodeA, edgeFactory)

	edgeAB.SaddleFrom = saddleA.Clone()
	edgeAB.SaddleTo = saddleB.Clone()
	edgeBA.SaddleFrom = saddleB.Clone()
	edgeBA.SaddleTo = saddleA.Clone()
}

// Nodes returns the nodes of this graph sorted by coordinate, so that
// iteration order is stable across runs.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].Pt().Less(nodes[j].Pt())
	})
	return nodes
}

// NumNodes returns the number of nodes in this graph.
func (g *Graph) NumNodes() int {
	return len(g.nodes)
}

// Edges returns the edges of this graph in insertion order.
func (g *Graph) Edges() []*DirectedEdge {
	return g.edges
}

// Sinks returns the nodes without outbound edges, sorted by coordinate.
func (g *Graph) Sinks() []*Node {
	sinks := make([]*Node, 0, len(g.sinks))
	for n := range g.sinks {
		sinks = append(sinks, n)
	}
	sort.Slice(sinks, func(i, j int) bool {
		return sinks[i].Pt().Less(sinks[j].Pt())
	})
	return sinks
}

// RemoveEdge detaches an edge from its nodes and twin and drops it from
// the graph. The nodes stay, and the from node becomes a sink again if
// this was its last outbound edge.
func (g *Graph) RemoveEdge(de *DirectedEdge) {
	de.unbind()
	for i, e := range g.edges {
		if e == de {
			g.edges = append(g.edges[:i], g.edges[i+1:]...)
			break
		}
	}
	if len(de.From.Out()) == 0 {
		g.sinks[de.From] = struct{}{}
	}
}

// RemoveNode removes a node along with all edges touching it.
func (g *Graph) RemoveNode(n *Node) {
	for _, de := range append([]*DirectedEdge{}, n.Out()...) {
		sym := de.Sym
		g.RemoveEdge(de)
		if sym != nil {
			g.RemoveEdge(sym)
		}
	}
	for _, in := range append([]*Node{}, n.In()...) {
		for _, de := range append([]*DirectedEdge{}, in.Out()...) {
			if de.To == n {
				g.RemoveEdge(de)
			}
		}
	}
	delete(g.sinks, n)
	delete(g.nodes, n.Pt().Key())
}

// Clear removes all nodes and edges, resetting the graph.
func (g *Graph) Clear() {
	for _, e := range g.edges {
		e.unbind()
	}
	for _, n := range g.nodes {
		n.unbind()
	}
	g.edges = nil
	g.nodes = make(map[Key]*Node)
	g.sinks = make(map[*Node]struct{})
}
