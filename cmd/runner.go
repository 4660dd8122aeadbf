package main

import (
	"flag"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"math/rand"
	"os"
	"runtime/pprof"

	"github.com/Flokey82/genfluvial"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
var memprofile = flag.String("memprofile", "", "write memory profile to this file")

var (
	seed          int64 = 1234
	size                = 20000
	lod                 = 100000
	landMaxRadius       = 8000
	steps               = 150
	imagePath           = ""
	outPrefix           = "terrain"
)

func init() {
	flag.Int64Var(&seed, "seed", seed, "the terrain seed")
	flag.IntVar(&size, "size", size, "terrain side length in meters")
	flag.IntVar(&lod, "lod", lod, "target number of sample points")
	flag.IntVar(&landMaxRadius, "land_max_radius", landMaxRadius, "max radius of the landmass (noise settings)")
	flag.IntVar(&steps, "steps", steps, "number of simulation steps")
	flag.StringVar(&imagePath, "image", imagePath, "use the given image as data source instead of noise")
	flag.StringVar(&outPrefix, "out", outPrefix, "output file prefix")
}

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	var settings genfluvial.Settings
	if imagePath != "" {
		f, err := os.Open(imagePath)
		if err != nil {
			log.Fatal(err)
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
		settings = genfluvial.NewImageSettings(size, lod, seed, img)
	} else {
		rnd := rand.New(rand.NewSource(seed))
		settings = genfluvial.NewNoiseSettings(size, lod, landMaxRadius, rnd, seed)
	}

	gen, err := genfluvial.NewGenerator(settings)
	if err != nil {
		log.Fatal(err)
	}
	if err := gen.Generate(func(g *genfluvial.Generator) bool {
		if g.NumberOfSteps()%10 == 0 {
			log.Printf("step %d, max height %.1fm", g.NumberOfSteps(), g.MaxHeight())
		}
		return g.NumberOfSteps() >= steps
	}); err != nil {
		log.Fatal(err)
	}

	if err := gen.ExportOBJ(outPrefix + ".obj"); err != nil {
		log.Fatal(err)
	}
	if err := gen.ExportStreamsOBJ(outPrefix + "_streams.obj"); err != nil {
		log.Fatal(err)
	}
	if err := gen.ExportPng(outPrefix+".png", 1024); err != nil {
		log.Fatal(err)
	}
	if err := gen.ExportStreamsGeoJSON(outPrefix + "_streams.geojson"); err != nil {
		log.Fatal(err)
	}

	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
	}
}
