package genfluvial

import (
	"math"

	"github.com/Flokey82/genfluvial/topology"
	"github.com/Flokey82/genfluvial/various"
	"github.com/Flokey82/go_gens/vectors"
)

// seaFloorDepth is the depth assigned to fully culled sea vertices at
// the most negative sea factor.
const seaFloorDepth = -1500.0

// TriangleMesh3D is the extracted terrain geometry: the pre-culled
// triangles of the initial triangulation with the current node heights
// applied to the vertices.
type TriangleMesh3D struct {
	Vertices []vectors.Vec3
	Faces    [][3]int
}

// Segment is a 3D line segment of the stream tree geometry.
type Segment struct {
	From, To vectors.Vec3
}

// GenerateTriangularMesh applies the current height values to the
// pre-culled triangles and returns the resulting 3D mesh. Vertices are
// deduplicated by their source vertex in the triangulation. Vertices
// that were culled from the planar graph get their height from the
// terrain settings instead, mapped from sea level down to the sea floor
// depth by the absolute sea factor.
func (g *Generator) GenerateTriangularMesh() *TriangleMesh3D {
	mesh := &TriangleMesh3D{}
	vertexIndex := make(map[int]int)
	addVertex := func(region int) int {
		if idx, ok := vertexIndex[region]; ok {
			return idx
		}
		idx := len(mesh.Vertices)
		mesh.Vertices = append(mesh.Vertices, g.vectorByData(region))
		vertexIndex[region] = idx
		return idx
	}
	for t := 0; t < g.mesh.numTriangles(); t++ {
		v0 := addVertex(g.mesh.triangles[3*t+2])
		v1 := addVertex(g.mesh.triangles[3*t+1])
		v2 := addVertex(g.mesh.triangles[3*t])
		mesh.Faces = append(mesh.Faces, [3]int{v0, v1, v2})
	}
	return mesh
}

// vectorByData resolves a triangulation vertex to its 3D position, using
// the planar graph height if the vertex survived culling.
func (g *Generator) vectorByData(region int) vectors.Vec3 {
	p := g.mesh.points[region]
	if node, ok := g.rpGraph.FindNode(topology.NewCoordinate(p.X, p.Y, 0, 0, 0)); ok {
		return vectors.Vec3{X: node.Pt().X, Y: node.Pt().Y, Z: node.Height()}
	}
	seaFactor := g.settings.GetData(p.X, p.Y, 0).SeaFactor
	return vectors.Vec3{X: p.X, Y: p.Y, Z: various.Lerp(0, seaFloorDepth, math.Abs(seaFactor))}
}

// GenerateStreamTreeCollection returns the current stream tree edges as
// 3D segments, with the heights of the stream tree nodes applied.
func (g *Generator) GenerateStreamTreeCollection() []Segment {
	edges := g.streamTree.Edges()
	segments := make([]Segment, 0, len(edges))
	for _, e := range edges {
		segments = append(segments, Segment{
			From: vectors.Vec3{X: e.P0.X, Y: e.P0.Y, Z: e.From.Height()},
			To:   vectors.Vec3{X: e.P1.X, Y: e.P1.Y, Z: e.To.Height()},
		})
	}
	return segments
}
