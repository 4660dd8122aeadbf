package genfluvial

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/Flokey82/genfluvial/various"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/mazznoer/colorgrad"
	geojson "github.com/paulmach/go.geojson"
)

// ExportOBJ exports the terrain mesh as a wavefront object file.
func (g *Generator) ExportOBJ(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	mesh := g.GenerateTriangularMesh()
	for _, v := range mesh.Vertices {
		if _, err := fmt.Fprintf(w, "v %f %f %f\n", v.X, v.Z, v.Y); err != nil {
			return err
		}
	}
	for _, face := range mesh.Faces {
		if _, err := fmt.Fprintf(w, "f %d %d %d\n", face[0]+1, face[1]+1, face[2]+1); err != nil {
			return err
		}
	}
	return w.Flush()
}

// ExportStreamsOBJ exports the current stream trees as a wavefront
// object file consisting of line elements.
func (g *Generator) ExportStreamsOBJ(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i, seg := range g.GenerateStreamTreeCollection() {
		if _, err := fmt.Fprintf(w, "v %f %f %f\n", seg.From.X, seg.From.Z, seg.From.Y); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "v %f %f %f\n", seg.To.X, seg.To.Z, seg.To.Y); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "l %d %d\n", 2*i+1, 2*i+2); err != nil {
			return err
		}
	}
	return w.Flush()
}

// ExportPng renders the terrain as a top-down image of the given width
// with a hypsometric gradient and the stream trees drawn on top.
func (g *Generator) ExportPng(path string, width int) error {
	mesh := g.GenerateTriangularMesh()

	// Build the elevation gradient from deep sea to peak.
	colorGrad := colorgrad.NewGradient()
	colorGrad.Colors(
		color.RGBA{0, 0, 96, 255},
		color.RGBA{0, 64, 255, 255},
		color.RGBA{240, 240, 64, 255},
		color.RGBA{0, 128, 0, 255},
		color.RGBA{128, 96, 32, 255},
		color.RGBA{255, 255, 255, 255},
	)
	grad, err := colorGrad.Build()
	if err != nil {
		return err
	}

	minHeight := seaFloorDepth
	maxHeight := g.maxHeight
	if maxHeight <= 0 {
		maxHeight = g.geology.EstimatedMaxHeight()
	}

	// Color the faces by mean vertex height in parallel, then draw
	// serially since the graphic context is not safe for concurrent use.
	cols := make([]color.Color, len(mesh.Faces))
	various.KickOffChunkWorkers(len(mesh.Faces), func(start, end int) {
		for i := start; i < end; i++ {
			face := mesh.Faces[i]
			mean := (mesh.Vertices[face[0]].Z + mesh.Vertices[face[1]].Z + mesh.Vertices[face[2]].Z) / 3
			cols[i] = grad.At(various.Clamp((mean-minHeight)/(maxHeight-minHeight), 0, 1))
		}
	})

	size := float64(g.settings.Size())
	half := size / 2
	scale := float64(width) / size
	toImg := func(x, y float64) (float64, float64) {
		return (x + half) * scale, (half - y) * scale
	}

	img := image.NewRGBA(image.Rect(0, 0, width, width))
	gc := draw2dimg.NewGraphicContext(img)
	for i, face := range mesh.Faces {
		gc.SetFillColor(cols[i])
		x, y := toImg(mesh.Vertices[face[0]].X, mesh.Vertices[face[0]].Y)
		gc.MoveTo(x, y)
		x, y = toImg(mesh.Vertices[face[1]].X, mesh.Vertices[face[1]].Y)
		gc.LineTo(x, y)
		x, y = toImg(mesh.Vertices[face[2]].X, mesh.Vertices[face[2]].Y)
		gc.LineTo(x, y)
		gc.Close()
		gc.Fill()
	}

	gc.SetStrokeColor(color.RGBA{32, 64, 255, 255})
	gc.SetLineWidth(1)
	for _, seg := range g.GenerateStreamTreeCollection() {
		x, y := toImg(seg.From.X, seg.From.Y)
		gc.MoveTo(x, y)
		x, y = toImg(seg.To.X, seg.To.Y)
		gc.LineTo(x, y)
		gc.Stroke()
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// ExportStreamsGeoJSON exports the current stream trees as a GeoJSON
// feature collection of line strings with height as the third ordinate.
func (g *Generator) ExportStreamsGeoJSON(path string) error {
	fc := geojson.NewFeatureCollection()
	for _, seg := range g.GenerateStreamTreeCollection() {
		fc.AddFeature(geojson.NewLineStringFeature([][]float64{
			{seg.From.X, seg.From.Y, seg.From.Z},
			{seg.To.X, seg.To.Y, seg.To.Z},
		}))
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
