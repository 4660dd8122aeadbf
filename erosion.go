package genfluvial

import (
	"fmt"
	"math"

	"github.com/Flokey82/genfluvial/topology"
	"github.com/Flokey82/genfluvial/various"
)

// applyUpliftStreamPowerThermalShock updates the node heights for one
// time step. For each stream tree, the drainage (total catchment area)
// is accumulated bottom-up, then the new height of each node is solved
// with the implicit stream power update from the root downwards, so a
// node's downstream neighbor is always updated before the node itself.
// A thermal shock heuristic caps the slope towards the lowest inbound
// neighbor to prevent unrealistically sharp peaks.
func (g *Generator) applyUpliftStreamPowerThermalShock() error {
	var newMaxHeight float64

	for _, sink := range g.streamTree.Sinks() {
		// Build an ordered node list by traversing the tree
		// breadth-first from the sink.
		orderedNodes := []*topology.Node{sink}
		inbound := append([]*topology.Node{}, sink.In()...)
		for len(inbound) > 0 {
			nextNode := inbound[0]
			inbound = inbound[1:]
			inbound = append(inbound, nextNode.In()...)
			orderedNodes = append(orderedNodes, nextNode)
		}

		// Children come after their parents in BFS order, so walking the
		// list backwards accumulates the upstream catchment areas.
		for i := len(orderedNodes) - 1; i >= 0; i-- {
			node := orderedNodes[i]
			var drainage float64
			for _, upstream := range node.In() {
				drainage += upstream.TotalCatchmentArea()
			}
			node.UpstreamCatchmentArea = drainage
		}

		// Now solve the stream power equation for each node, walking
		// from the root so the downstream height is already updated.
		calculated := map[topology.Key]bool{sink.Pt().Key(): true}
		stack := append([]*topology.Node{}, sink.In()...)
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			rpNode, ok := g.rpGraph.FindNode(node.Pt())
			if !ok {
				return fmt.Errorf("stream tree node %+v not found in rpg during stream power update", node.Pt())
			}
			if !rpNode.Pt().IsSea() {
				downstreamList := node.Out()
				if len(downstreamList) != 1 {
					return fmt.Errorf("node %+v has %d downstream edges, should have 1", node.Pt(), len(downstreamList))
				}
				downstream := downstreamList[0]
				if !calculated[downstream.To.Pt().Key()] {
					return fmt.Errorf("downstream of node %+v not calculated before stream power update", node.Pt())
				}
				downstreamNode, ok := g.rpGraph.FindNode(downstream.To.Pt())
				if !ok {
					return fmt.Errorf("downstream node %+v not found in rpg during stream power update", downstream.To.Pt())
				}

				newHeight := g.calculateNewHeight(node, rpNode, downstreamNode)

				// The thermal shock reference is the lowest inbound
				// neighbor in the planar graph. A sea neighbor pins the
				// reference length to 1.
				neighbors := rpNode.In()
				if len(neighbors) == 0 {
					return fmt.Errorf("node %+v has no inbound neighbors in rpg", node.Pt())
				}
				lowest := neighbors[0]
				for _, nb := range neighbors[1:] {
					if nb.Height() < lowest.Height() {
						lowest = nb
					}
				}
				lnLength := rpNode.Pt().DistanceFrom(lowest.Pt())
				if lowest.Pt().IsSea() {
					lnLength = 1.0
				}
				angle := math.Atan2(newHeight-lowest.Height(), lnLength)
				newHeight = g.ApplyThermalShockHeuristicPredetermined(
					angle, newHeight, lowest.Height(), lnLength, rpNode.MaxSlope)
				rpNode.SetHeight(newHeight)
				newMaxHeight = math.Max(newMaxHeight, newHeight)
			}
			calculated[node.Pt().Key()] = true
			stack = append(stack, node.In()...)
		}
	}
	g.maxHeight = newMaxHeight
	return nil
}

// calculateNewHeight solves the implicit stream power update for a node,
// using the drainage accumulated on the stream tree node and the current
// heights of the planar graph.
func (g *Generator) calculateNewHeight(streamTreeNode, rpNode, downstreamNode *topology.Node) float64 {
	drainage := streamTreeNode.TotalCatchmentArea()
	dsl := rpNode.Pt().DistanceFrom(downstreamNode.Pt())
	uplift := rpNode.Uplift
	kDrainageOverDsl := (g.geology.K * math.Pow(drainage, g.geology.M)) / dsl
	return (rpNode.Height() + (g.geology.DeltaT * (uplift + (kDrainageOverDsl * downstreamNode.Height())))) /
		(1 + (g.geology.DeltaT * kDrainageOverDsl))
}

// ApplyThermalShockHeuristicPredetermined caps the height of a node so
// that the slope towards its reference neighbor does not exceed the
// maximum slope for the given slope factor. Nodes at or below the
// reference height are left alone.
func (g *Generator) ApplyThermalShockHeuristicPredetermined(angleRadians, height, downstreamHeight, length, slopeNoise float64) float64 {
	if height <= downstreamHeight {
		return height
	}
	maxSlope := various.Lerp(g.geology.MinSlopeRadians, g.geology.MaxSlopeRadians, slopeNoise)
	if angleRadians > maxSlope {
		return downstreamHeight + (length * math.Tan(maxSlope))
	}
	return height
}
