package genfluvial

import (
	"container/heap"
	"fmt"
	"log"
	"sort"

	"github.com/Flokey82/genfluvial/topology"
)

// lakeEdgeQueue implements heap.Interface over lake graph edges, ordered
// by the composite lake comparator (pass height, uplift of the to node,
// uplift of the from node, insert order). Since the insert order is
// unique per pushed edge, the order is total and pops are deterministic.
type lakeEdgeQueue []*topology.DirectedEdge

func (q lakeEdgeQueue) Len() int { return len(q) }

func (q lakeEdgeQueue) Less(i, j int) bool {
	return topology.LakeLess(q[i], q[j])
}

func (q lakeEdgeQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *lakeEdgeQueue) Push(x interface{}) {
	*q = append(*q, x.(*topology.DirectedEdge))
}

func (q *lakeEdgeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	*q = old[0 : n-1]
	return item
}

// computeLakeTree selects one outgoing saddle per non-sea lake, forming
// a spanning tree of the lake graph rooted at the sea lakes. The queue
// is seeded with the inbound edges of every sea root, and the cheapest
// edge under the lake comparator wins a lake's outlet. Edges of a lake
// that already has an outlet are skipped when popped.
func (g *Generator) computeLakeTree() {
	if g.lakeGraph.NumNodes() == 0 {
		return
	}
	var insertNo int64
	var candidates []*topology.Node
	nodes := g.lakeGraph.Nodes()
	for _, n := range nodes {
		if n.Pt().IsSea() {
			candidates = append(candidates, n)
		}
	}

	if len(candidates) == 0 {
		// Degenerate topology: no lake drains into the sea. Promote one
		// lake at random so the tree has a root.
		log.Println("no sea nodes found in lake graph, converting one at random...")
		skip := g.settings.Random().Intn(len(nodes) - 1)
		randomNode := nodes[skip]
		randomNode.SwitchToSea()
		candidates = []*topology.Node{randomNode}
	}

	queue := &lakeEdgeQueue{}
	heap.Init(queue)
	for _, candidate := range candidates {
		for _, upstream := range candidate.Out() {
			if downstream := upstream.Sym; downstream != nil {
				downstream.InsertOrder = insertNo
				insertNo++
				heap.Push(queue, downstream)
			}
		}
	}
	for queue.Len() > 0 {
		current := heap.Pop(queue).(*topology.DirectedEdge)
		fromKey := current.From.Pt().Key()
		if _, ok := g.lakeTree[fromKey]; ok {
			// This lake already has its outlet.
			continue
		}
		g.lakeTree[fromKey] = current

		// The lake just drained becomes a candidate root for its other
		// neighbors, unless they are sea lakes.
		for _, upstream := range current.From.Out() {
			if upstream == current {
				continue
			}
			if downstream := upstream.Sym; downstream != nil && !downstream.From.Pt().IsSea() {
				downstream.InsertOrder = insertNo
				insertNo++
				heap.Push(queue, downstream)
			}
		}
	}
}

// addSaddlesToStreamTree joins the disconnected stream trees by adding,
// for each chosen lake outlet, an edge from the lake's sink to the
// saddle node on the far side. This removes every terrestrial sink from
// the forest, leaving only sea roots. The lake graph and tree are
// cleared afterwards.
func (g *Generator) addSaddlesToStreamTree() error {
	keys := make([]topology.Key, 0, len(g.lakeTree))
	for k := range g.lakeTree {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
	for _, k := range keys {
		saddle := g.lakeTree[k]
		toNode := saddle.SaddleTo
		if toNode == nil {
			return fmt.Errorf("saddle node not found in saddle edge from %+v to %+v",
				saddle.From.Pt(), saddle.To.Pt())
		}
		g.streamTree.AddEdge(saddle.From.Pt(), toNode.Pt())
	}
	g.lakeTree = make(map[topology.Key]*topology.DirectedEdge)
	g.lakeGraph.Clear()
	return nil
}
