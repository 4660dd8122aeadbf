package genfluvial

import (
	"fmt"

	"github.com/Flokey82/genfluvial/topology"
)

// computeStreamTree rebuilds the stream tree forest for the current
// state of the terrain. Every node of the random planar graph is cloned
// into the stream tree, and every non-sea node gets a single edge to its
// lowest neighbor, as long as that neighbor is actually lower. Nodes
// without a lower neighbor are local minima and stay sinks, as do all
// sea nodes.
func (g *Generator) computeStreamTree() error {
	for _, node := range g.rpGraph.Nodes() {
		node := node
		g.streamTree.AddNodeWith(node.Pt(), func(c topology.Coordinate) *topology.Node {
			return node.Clone()
		})
		if node.Pt().IsSea() {
			// Sea level node, no need to add edges.
			continue
		}

		// From this node, find the edge to the lowest neighbor. Ties
		// keep the first edge seen.
		edgeStar := node.Out()
		if len(edgeStar) == 0 {
			return fmt.Errorf("isolated node in rpg: no edges found for coordinate %+v", node.Pt())
		}
		lowest := edgeStar[0]
		for _, current := range edgeStar[1:] {
			if lowest.To.Height() > current.To.Height() {
				lowest = current
			}
		}

		// Only add the edge if the neighbor is lower. Otherwise this is
		// a local minimum and the end of the stream, same as a sink.
		if lowest.To.Height() < node.Height() {
			g.streamTree.AddEdge(node.Pt(), lowest.To.Pt())
		}
	}
	return nil
}
