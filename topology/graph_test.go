package topology

import "testing"

// lstc returns a land coordinate with the default test factors.
func lstc(x, y float64) Coordinate {
	return NewCoordinate(x, y, 0.5, 0.5, 0.3)
}

// lstsea returns a sea coordinate.
func lstsea(x, y float64) Coordinate {
	return NewCoordinate(x, y, 0, 0, 0)
}

func testNodeFactory(c Coordinate) *Node {
	if c.IsSea() {
		return NewNodeFull(c, 0, 0, 0, -1, 0)
	}
	return NewNodeFull(c, 2.5e-4, 0, 1, -1, c.SlopeFactor)
}

func newTestGraph() *Graph {
	return New(NewDirectedEdge, testNodeFactory)
}

func TestAddNodeToGraph(t *testing.T) {
	graph := newTestGraph()
	coord := lstc(0, 0)
	node := graph.AddNode(coord)

	if found, ok := graph.FindNode(coord); !ok || found != node {
		t.Fatal("added node not found in graph")
	}
	if !node.Pt().Equals(coord) {
		t.Errorf("node coordinate %+v does not match %+v", node.Pt(), coord)
	}
	if got := graph.AddNode(coord); got != node {
		t.Error("adding the same coordinate twice should return the existing node")
	}
}

func TestAddEdgeToGraph(t *testing.T) {
	graph := newTestGraph()
	from := lstc(0, 0)
	to := lstc(1, 1)
	edge := graph.AddEdge(from, to)

	if found, ok := graph.FindEdge(from, to); !ok || found != edge {
		t.Fatal("added edge not found in graph")
	}
	if !edge.From.Pt().Equals(from) || !edge.To.Pt().Equals(to) {
		t.Error("edge endpoints do not match the given coordinates")
	}
}

func TestSinksTracking(t *testing.T) {
	graph := newTestGraph()
	from := lstc(0, 0)
	to := lstc(1, 1)
	graph.AddNode(from)
	graph.AddNode(to)
	if len(graph.Sinks()) != 2 {
		t.Fatalf("expected 2 sinks, got %d", len(graph.Sinks()))
	}
	graph.AddEdge(from, to)
	sinks := graph.Sinks()
	if len(sinks) != 1 {
		t.Fatalf("expected 1 sink after adding edge, got %d", len(sinks))
	}
	if !sinks[0].Pt().Equals(to) {
		t.Errorf("expected sink at %+v, got %+v", to, sinks[0].Pt())
	}
}

func TestRemoveEdgeFromGraph(t *testing.T) {
	graph := newTestGraph()
	from := lstc(0, 0)
	to := lstc(1, 1)
	edge := graph.AddEdge(from, to)

	graph.RemoveEdge(edge)
	if _, ok := graph.FindEdge(from, to); ok {
		t.Error("removed edge still found in graph")
	}
	if len(graph.Sinks()) != 2 {
		t.Errorf("expected from node to become a sink again, got %d sinks", len(graph.Sinks()))
	}
}

func TestRemoveNodeFromGraph(t *testing.T) {
	graph := newTestGraph()
	coord := lstc(0, 0)
	other := lstc(1, 1)
	node := graph.AddNode(coord)
	graph.AddBiDirectional(coord, other)

	graph.RemoveNode(node)
	if _, ok := graph.FindNode(coord); ok {
		t.Error("removed node still found in graph")
	}
	if _, ok := graph.FindEdge(coord, other); ok {
		t.Error("outbound edge of removed node still found")
	}
	if _, ok := graph.FindEdge(other, coord); ok {
		t.Error("inbound edge of removed node still found")
	}
}

func TestAddBiDirectionalLinksSyms(t *testing.T) {
	graph := newTestGraph()
	from := lstc(0, 0)
	to := lstc(1, 1)
	graph.AddBiDirectional(from, to)

	edge1, ok1 := graph.FindEdge(from, to)
	edge2, ok2 := graph.FindEdge(to, from)
	if !ok1 || !ok2 {
		t.Fatal("expected both directions present")
	}
	if edge1.Sym != edge2 || edge2.Sym != edge1 {
		t.Error("sym references not linked")
	}
	if edge1.Sym.Sym != edge1 {
		t.Error("sym of sym should be the edge itself")
	}
}

func TestAddBiDirectionalWithSaddles(t *testing.T) {
	graph := newTestGraph()
	sinkA := lstsea(0, 0)
	sinkB := lstc(5, 5)
	saddleA := testNodeFactory(lstc(2, 2))
	saddleB := testNodeFactory(lstc(3, 3))
	saddleA.SetHeight(10)
	saddleB.SetHeight(12)

	graph.AddBiDirectionalWithSaddles(sinkA, sinkB, saddleA, saddleB,
		testNodeFactory,
		func(from, to *Node) *DirectedEdge {
			e := NewDirectedEdge(from, to)
			e.PassHeight = 12
			return e
		})

	edgeAB, okAB := graph.FindEdge(sinkA, sinkB)
	edgeBA, okBA := graph.FindEdge(sinkB, sinkA)
	if !okAB || !okBA {
		t.Fatal("expected both directions present")
	}
	if edgeAB.PassHeight != 12 || edgeBA.PassHeight != 12 {
		t.Error("pass height not carried by the edge factory")
	}
	if !edgeAB.SaddleFrom.Pt().Equals(saddleA.Pt()) || !edgeAB.SaddleTo.Pt().Equals(saddleB.Pt()) {
		t.Error("forward edge carries wrong saddle pair")
	}
	if !edgeBA.SaddleFrom.Pt().Equals(saddleB.Pt()) || !edgeBA.SaddleTo.Pt().Equals(saddleA.Pt()) {
		t.Error("reverse edge should carry the swapped saddle pair")
	}
	if edgeAB.SaddleFrom == saddleA {
		t.Error("saddle nodes should be cloned onto the edge")
	}
}

func TestClearGraph(t *testing.T) {
	graph := newTestGraph()
	graph.AddNode(lstc(0, 0))
	graph.AddNode(lstc(1, 1))
	graph.AddEdge(lstc(0, 0), lstc(1, 1))

	graph.Clear()
	if graph.NumNodes() != 0 {
		t.Error("expected no nodes after clear")
	}
	if len(graph.Edges()) != 0 {
		t.Error("expected no edges after clear")
	}
	if len(graph.Sinks()) != 0 {
		t.Error("expected no sinks after clear")
	}
}

func TestNodesSortedByCoordinate(t *testing.T) {
	graph := newTestGraph()
	graph.AddNode(lstc(2, 0))
	graph.AddNode(lstc(0, 1))
	graph.AddNode(lstc(0, 0))

	nodes := graph.Nodes()
	for i := 1; i < len(nodes); i++ {
		if nodes[i].Pt().Less(nodes[i-1].Pt()) {
			t.Fatalf("nodes not sorted at index %d", i)
		}
	}
}
