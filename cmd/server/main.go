package main

import (
	"flag"
	"log"
	"math/rand"
	"net/http"
	"os"

	"github.com/Flokey82/genfluvial"
	"github.com/gorilla/mux"
)

var terrain *genfluvial.Generator

var (
	seed          int64 = 1234
	size                = 20000
	lod                 = 100000
	landMaxRadius       = 8000
	steps               = 150
	addr                = ":3333"
)

func init() {
	flag.Int64Var(&seed, "seed", seed, "the terrain seed")
	flag.IntVar(&size, "size", size, "terrain side length in meters")
	flag.IntVar(&lod, "lod", lod, "target number of sample points")
	flag.IntVar(&landMaxRadius, "land_max_radius", landMaxRadius, "max radius of the landmass")
	flag.IntVar(&steps, "steps", steps, "number of simulation steps")
	flag.StringVar(&addr, "addr", addr, "listen address")
}

func main() {
	flag.Parse()

	rnd := rand.New(rand.NewSource(seed))
	settings := genfluvial.NewNoiseSettings(size, lod, landMaxRadius, rnd, seed)
	gen, err := genfluvial.NewGenerator(settings)
	if err != nil {
		log.Fatal(err)
	}
	if err := gen.Generate(func(g *genfluvial.Generator) bool {
		return g.NumberOfSteps() >= steps
	}); err != nil {
		log.Fatal(err)
	}
	terrain = gen

	router := mux.NewRouter()
	router.HandleFunc("/heightmap.png", heightmapHandler)
	router.HandleFunc("/streams.geojson", streamsHandler)
	router.HandleFunc("/terrain.obj", objHandler)
	log.Println("serving terrain on", addr)
	log.Fatal(http.ListenAndServe(addr, router))
}

func heightmapHandler(res http.ResponseWriter, req *http.Request) {
	serveExport(res, "heightmap*.png", "image/png", func(path string) error {
		return terrain.ExportPng(path, 1024)
	})
}

func streamsHandler(res http.ResponseWriter, req *http.Request) {
	serveExport(res, "streams*.geojson", "application/geo+json", terrain.ExportStreamsGeoJSON)
}

func objHandler(res http.ResponseWriter, req *http.Request) {
	serveExport(res, "terrain*.obj", "model/obj", terrain.ExportOBJ)
}

// serveExport runs a file based exporter against a temp file and streams
// the result back.
func serveExport(res http.ResponseWriter, pattern, contentType string, export func(path string) error) {
	tmp, err := os.CreateTemp("", pattern)
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	defer os.Remove(tmp.Name())
	tmp.Close()
	if err := export(tmp.Name()); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	data, err := os.ReadFile(tmp.Name())
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}
	res.Header().Set("Content-Type", contentType)
	res.Write(data)
}
