package genfluvial

import (
	"math"
	"testing"

	"github.com/Flokey82/genfluvial/topology"
)

func TestGenerateTriangularMesh(t *testing.T) {
	gen, err := NewGenerator(newZoneSettings())
	if err != nil {
		t.Fatal(err)
	}
	if err := gen.Generate(func(g *Generator) bool {
		return g.NumberOfSteps() > 0
	}); err != nil {
		t.Fatal(err)
	}

	mesh := gen.GenerateTriangularMesh()
	if len(mesh.Faces) == 0 {
		t.Fatal("expected a non-empty mesh")
	}
	if len(mesh.Faces) != gen.mesh.numTriangles() {
		t.Errorf("expected %d faces, got %d", gen.mesh.numTriangles(), len(mesh.Faces))
	}

	// Vertices that survived culling carry the simulated height, all
	// others lie at or below sea level.
	for _, v := range mesh.Vertices {
		node, ok := gen.Rpg().FindNode(topology.NewCoordinate(v.X, v.Y, 0, 0, 0))
		if ok {
			if v.Z != node.Height() {
				t.Errorf("vertex at (%f, %f) has height %f, node has %f", v.X, v.Y, v.Z, node.Height())
			}
		} else {
			if v.Z > 0 || v.Z < seaFloorDepth {
				t.Errorf("culled vertex at (%f, %f) has height %f outside [%f, 0]", v.X, v.Y, v.Z, seaFloorDepth)
			}
		}
	}

	// Faces index valid, deduplicated vertices.
	for _, face := range mesh.Faces {
		for _, idx := range face {
			if idx < 0 || idx >= len(mesh.Vertices) {
				t.Fatalf("face index %d out of range", idx)
			}
		}
	}
}

func TestGenerateStreamTreeCollection(t *testing.T) {
	gen, err := NewGenerator(newZoneSettings())
	if err != nil {
		t.Fatal(err)
	}
	if err := gen.Generate(func(g *Generator) bool {
		return g.NumberOfSteps() > 0
	}); err != nil {
		t.Fatal(err)
	}

	segments := gen.GenerateStreamTreeCollection()
	edges := gen.CurrentStreamTrees().Edges()
	if len(segments) == 0 {
		t.Fatal("expected stream segments after a step")
	}
	if len(segments) != len(edges) {
		t.Fatalf("expected %d segments, got %d", len(edges), len(segments))
	}
	for i, seg := range segments {
		e := edges[i]
		if math.Abs(seg.From.X-e.P0.X) > topology.Epsilon ||
			math.Abs(seg.From.Y-e.P0.Y) > topology.Epsilon ||
			math.Abs(seg.To.X-e.P1.X) > topology.Epsilon ||
			math.Abs(seg.To.Y-e.P1.Y) > topology.Epsilon {
			t.Errorf("segment %d does not match its stream tree edge", i)
		}
		if seg.From.Z != e.From.Height() || seg.To.Z != e.To.Height() {
			t.Errorf("segment %d does not carry the node heights", i)
		}
	}
}
