package topology

import (
	"math"
	"sort"
	"testing"
)

func TestCreateEdgeRegistersAdjacency(t *testing.T) {
	from := testNodeFactory(lstc(0, 0))
	to := testNodeFactory(lstc(1, 1))
	edge := NewDirectedEdge(from, to)

	if edge.From != from || edge.To != to {
		t.Fatal("edge endpoints not set")
	}
	if len(from.Out()) != 1 || from.Out()[0] != edge {
		t.Error("edge not added to the from node's outbound list")
	}
	if len(to.In()) != 1 || to.In()[0] != from {
		t.Error("from node not added to the to node's inbound list")
	}
}

func TestEdgeAngle(t *testing.T) {
	from := testNodeFactory(lstc(0, 0))
	diag := NewDirectedEdge(from, testNodeFactory(lstc(1, 1)))
	flat := NewDirectedEdge(from, testNodeFactory(lstc(1, 0)))

	if diag.Angle() <= flat.Angle() {
		t.Error("diagonal edge should have a larger angle than the horizontal edge")
	}
	if math.Abs(flat.Angle()) > 1e-12 {
		t.Errorf("horizontal edge angle should be 0, got %f", flat.Angle())
	}
	back := NewDirectedEdge(testNodeFactory(lstc(1, 1)), testNodeFactory(lstc(0, 0)))
	if back.Angle() == diag.Angle() {
		t.Error("opposite directions should have different angles")
	}
}

func TestOutEdgesSortedByAngle(t *testing.T) {
	from := testNodeFactory(lstc(0, 0))
	NewDirectedEdge(from, testNodeFactory(lstc(1, 1)))
	NewDirectedEdge(from, testNodeFactory(lstc(-1, -1)))
	NewDirectedEdge(from, testNodeFactory(lstc(1, 0)))
	NewDirectedEdge(from, testNodeFactory(lstc(0, 1)))

	out := from.Out()
	if !sort.SliceIsSorted(out, func(i, j int) bool {
		return out[i].Angle() < out[j].Angle()
	}) {
		t.Error("outbound edges not sorted by angle")
	}
}

func TestUnbindEdge(t *testing.T) {
	graph := newTestGraph()
	from := lstc(0, 0)
	to := lstc(1, 1)
	graph.AddBiDirectional(from, to)
	edge, _ := graph.FindEdge(from, to)
	sym := edge.Sym

	graph.RemoveEdge(edge)
	if edge.Sym != nil {
		t.Error("sym not cleared on removed edge")
	}
	if sym.Sym != nil {
		t.Error("sym back-reference not cleared")
	}
	fromNode, _ := graph.FindNode(from)
	for _, e := range fromNode.Out() {
		if e == edge {
			t.Error("removed edge still in outbound list")
		}
	}
	toNode, _ := graph.FindNode(to)
	for _, n := range toNode.In() {
		if n == fromNode {
			t.Error("inbound reference not removed")
		}
	}
}

func TestLakeLessOrdering(t *testing.T) {
	mk := func(passHeight, fromUplift, toUplift float64, insertOrder int64) *DirectedEdge {
		from := NewNodeFull(lstc(0, 0), fromUplift, 0, 1, -1, 0.3)
		to := NewNodeFull(lstc(1, 1), toUplift, 0, 1, -1, 0.3)
		e := &DirectedEdge{From: from, To: to, PassHeight: passHeight, InsertOrder: insertOrder}
		return e
	}

	// The expected order: pass height first, then uplift of the to
	// node, then uplift of the from node, then insert order.
	ordered := []*DirectedEdge{
		mk(1, 9, 9, 9),
		mk(2, 9, 1, 9),
		mk(2, 1, 2, 9),
		mk(2, 2, 2, 9),
		mk(2, 2, 2, 10),
		mk(3, 0, 0, 0),
	}
	for i := 0; i < len(ordered)-1; i++ {
		if !LakeLess(ordered[i], ordered[i+1]) {
			t.Errorf("expected edge %d to order before edge %d", i, i+1)
		}
		if LakeLess(ordered[i+1], ordered[i]) {
			t.Errorf("expected edge %d to not order before edge %d", i+1, i)
		}
	}
}

func TestSwitchToSea(t *testing.T) {
	node := testNodeFactory(lstc(2, 3))
	node.SetHeight(25)
	node.SwitchToSea()
	if !node.Pt().IsSea() {
		t.Error("node should be sea after switch")
	}
	if node.Height() != 0 {
		t.Error("height should reset to 0 after switch")
	}
	if node.Pt().X != 2 || node.Pt().Y != 3 {
		t.Error("position should not change on switch")
	}
	node.SetHeight(10)
	if node.Height() != 0 {
		t.Error("sea node height should stay pinned to 0")
	}
}

func TestCloneResetsConnections(t *testing.T) {
	node := testNodeFactory(lstc(0, 0))
	other := testNodeFactory(lstc(1, 0))
	NewDirectedEdge(node, other)
	node.SetHeight(42)
	node.UpstreamCatchmentArea = 99

	clone := node.Clone()
	if clone.Height() != 42 {
		t.Error("clone should carry the height")
	}
	if clone.UpstreamCatchmentArea != 0 {
		t.Error("clone should reset the upstream catchment area")
	}
	if len(clone.Out()) != 0 || len(clone.In()) != 0 {
		t.Error("clone should not be connected to anything")
	}
}
