// Package genfluvial generates large scale terrain from tectonic uplift
// and fluvial erosion on a random planar graph.
//
// See: Guillaume Cordonnier, Jean Braun, Marie-Paule Cani, Bedrich Benes,
// Eric Galin, et al.. Large Scale Terrain Generation from Tectonic Uplift
// and Fluvial Erosion. Computer Graphics Forum, 2016, Proc. EUROGRAPHICS
// 2016, 35 (2), pp.165-175.
package genfluvial

import (
	"log"

	"github.com/Flokey82/genfluvial/topology"
)

// Generator maintains the terrain state and runs the simulation. The
// random planar graph holds the authoritative heights, while the stream
// tree and lake graph are rebuilt every step.
type Generator struct {
	settings Settings
	geology  *GeologyConfig

	rpGraph    *topology.Graph
	streamTree *topology.Graph
	lakeGraph  *topology.Graph

	// lakeTree holds the chosen outlet edge per lake, keyed by the
	// draining lake's sink coordinate.
	lakeTree map[topology.Key]*topology.DirectedEdge

	// mesh is the triangulation the graph was built from. The triangle
	// list is kept verbatim for mesh extraction.
	mesh *triMesh

	numSteps  int
	maxHeight float64
}

// NewGenerator creates a generator with default geological settings.
// Note that the construction process is computationally expensive and
// may take some time, especially for high levels of detail.
func NewGenerator(settings Settings) (*Generator, error) {
	return NewGeneratorWithGeology(NewGeologyConfig(), settings)
}

// NewGeneratorWithGeology creates a generator with the given geological
// and terrain settings, builds the sample distribution, triangulation
// and random planar graph, and prepares the per-step graphs.
func NewGeneratorWithGeology(geology *GeologyConfig, settings Settings) (*Generator, error) {
	g := &Generator{
		settings:  settings,
		geology:   geology,
		lakeGraph: topology.New(topology.NewDirectedEdge, func(c topology.Coordinate) *topology.Node {
			return topology.NewNode(c, 0, 0)
		}),
		lakeTree: make(map[topology.Key]*topology.DirectedEdge),
	}

	log.Println("init step 1: generate point distribution")
	points := g.generatePointDistribution()

	log.Println("init step 2: generate data structures")
	if err := g.generateGraph(points); err != nil {
		return nil, err
	}

	log.Println("init step 3: create empty stream tree graph")
	g.streamTree = topology.New(topology.NewDirectedEdge, func(c topology.Coordinate) *topology.Node {
		n, _ := g.rpGraph.FindNode(c)
		return n.Clone()
	})
	return g, nil
}

// Rpg returns the random planar graph of the generator. Its node heights
// are the current elevation state.
func (g *Generator) Rpg() *topology.Graph {
	return g.rpGraph
}

// CurrentStreamTrees returns the stream tree forest of the latest step.
func (g *Generator) CurrentStreamTrees() *topology.Graph {
	return g.streamTree
}

// GeologySettings returns the geological settings of the generator.
func (g *Generator) GeologySettings() *GeologyConfig {
	return g.geology
}

// TerrainSettings returns the terrain settings of the generator.
func (g *Generator) TerrainSettings() Settings {
	return g.settings
}

// NumberOfSteps returns the number of simulation steps taken so far.
func (g *Generator) NumberOfSteps() int {
	return g.numSteps
}

// MaxHeight returns the maximum node height after the latest step.
func (g *Generator) MaxHeight() float64 {
	return g.maxHeight
}

// Generate runs simulation steps until the stop condition reports true.
// The condition is evaluated before each step, so a condition that is
// already met results in no work.
func (g *Generator) Generate(stopCondition func(*Generator) bool) error {
	for !stopCondition(g) {
		if err := g.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step runs a single simulation step: compute the stream tree, build the
// lake graph, compute the lake tree, add the chosen saddles to the
// stream tree, and apply uplift, stream power and thermal shock.
func (g *Generator) Step() error {
	g.streamTree.Clear()
	g.numSteps++
	if err := g.computeStreamTree(); err != nil {
		return err
	}
	if err := g.buildLakeGraph(); err != nil {
		return err
	}
	g.computeLakeTree()
	if err := g.addSaddlesToStreamTree(); err != nil {
		return err
	}
	return g.applyUpliftStreamPowerThermalShock()
}

// PostGenerationStep recomputes the stream tree, lake graph and lake
// tree without applying erosion. Useful to extract the final hydrology
// once generation has finished.
func (g *Generator) PostGenerationStep() error {
	log.Println("partial generation step")
	g.streamTree.Clear()
	if err := g.computeStreamTree(); err != nil {
		return err
	}
	if err := g.buildLakeGraph(); err != nil {
		return err
	}
	g.computeLakeTree()
	return nil
}
