package genfluvial

import (
	"fmt"
	"math"
	"sort"

	"github.com/Flokey82/genfluvial/topology"
)

// lakeBasin is one lake of the stream tree forest: its sink node and all
// nodes draining into it.
type lakeBasin struct {
	sink  *topology.Node
	nodes []*topology.Node
}

// buildLakeGraph finds the lakes in the current stream tree forest and
// connects adjacent lakes in the lake graph. Every sink gets a fresh
// lake id which is spread over its inbound closure, then each lake scans
// the planar graph for edges reaching a different lake and keeps the
// lowest saddle per neighboring lake. The surviving saddle pairs become
// bidirectional lake graph edges between the lakes' sink coordinates,
// annotated with the pass height and the saddle nodes.
func (g *Generator) buildLakeGraph() error {
	sinks := g.streamTree.Sinks()
	if len(sinks) == 0 {
		return fmt.Errorf("no sinks/lakes found in stream tree graph")
	}

	// First assign each sink a unique lake id and tag the inbound
	// closure of each sink with it, mirroring the ids onto the planar
	// graph nodes as well.
	lakeID := int64(-1)
	var processing []*topology.Node
	basins := make(map[int64]*lakeBasin)
	for _, s := range sinks {
		lakeID++
		s.LakeID = lakeID
		processing = append(processing, s)
		basins[lakeID] = &lakeBasin{sink: s}
	}
	for len(processing) > 0 {
		node := processing[len(processing)-1]
		processing = processing[:len(processing)-1]
		basin := basins[node.LakeID]
		rpNode, ok := g.rpGraph.FindNode(node.Pt())
		if !ok {
			return fmt.Errorf("stream tree node %+v not found in rpg", node.Pt())
		}
		rpNode.LakeID = node.LakeID
		basin.nodes = append(basin.nodes, node)
		for _, upstream := range node.In() {
			upstream.LakeID = node.LakeID
			processing = append(processing, upstream)
		}
	}

	// Now we can build the lake graph. Iterate the lakes in id order so
	// edge insertion stays deterministic.
	lakeIDs := make([]int64, 0, len(basins))
	for id := range basins {
		lakeIDs = append(lakeIDs, id)
	}
	sort.Slice(lakeIDs, func(i, j int) bool { return lakeIDs[i] < lakeIDs[j] })

	for _, id := range lakeIDs {
		basin := basins[id]
		sinkNodeA := basin.sink

		// Find any nodes connected directly to a node in this stream
		// tree that are in a different lake. These are saddles. Look for
		// connections in the planar graph, not the disconnected stream
		// trees. Per neighboring lake, the saddle with the lowest pass
		// height wins.
		type saddlePair struct {
			from, to     *topology.Node
			sinkA, sinkB *topology.Node
		}
		saddles := make(map[int64]*saddlePair)
		for _, treeNode := range basin.nodes {
			rpNode, ok := g.rpGraph.FindNode(treeNode.Pt())
			if !ok {
				return fmt.Errorf("stream tree node %+v not found in rpg", treeNode.Pt())
			}
			for _, e := range rpNode.Out() {
				toNode := e.To
				toLakeID := toNode.LakeID
				if toLakeID == rpNode.LakeID {
					continue
				}
				sinkNodeB := basins[toLakeID].sink
				if sinkNodeA.Pt().IsSea() && sinkNodeB.Pt().IsSea() {
					// No flow needs routing between two ocean basins.
					continue
				}
				if existing, ok := saddles[toLakeID]; ok {
					if math.Max(rpNode.Height(), toNode.Height()) <
						math.Max(existing.from.Height(), existing.to.Height()) {
						saddles[toLakeID] = &saddlePair{from: rpNode, to: toNode, sinkA: sinkNodeA, sinkB: sinkNodeB}
					}
				} else {
					saddles[toLakeID] = &saddlePair{from: rpNode, to: toNode, sinkA: sinkNodeA, sinkB: sinkNodeB}
				}
			}
		}

		// Add the surviving saddle pairs to the lake graph as
		// bidirectional edges between the sink coordinates. The next
		// step determines the flow direction.
		neighborIDs := make([]int64, 0, len(saddles))
		for nid := range saddles {
			neighborIDs = append(neighborIDs, nid)
		}
		sort.Slice(neighborIDs, func(i, j int) bool { return neighborIDs[i] < neighborIDs[j] })
		for _, nid := range neighborIDs {
			saddle := saddles[nid]
			passHeight := math.Max(saddle.from.Height(), saddle.to.Height())
			g.lakeGraph.AddBiDirectionalWithSaddles(
				saddle.sinkA.Pt(),
				saddle.sinkB.Pt(),
				saddle.from,
				saddle.to,
				func(c topology.Coordinate) *topology.Node {
					return topology.NewNode(c, 0, 0)
				},
				func(from, to *topology.Node) *topology.DirectedEdge {
					e := topology.NewDirectedEdge(from, to)
					e.PassHeight = passHeight
					return e
				})
		}
	}
	return nil
}
