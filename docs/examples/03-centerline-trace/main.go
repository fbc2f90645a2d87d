package main

import (
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"

	"github.com/cartovec/rastervec/pkg/rastervec"
)

func main() {
	// Decode a scanned map with dark line work on a light background
	f, err := os.Open("rivers.png")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	// Dark pixels form the mask: invert the luminance threshold
	grid, err := rastervec.GridFromImage(img)
	if err != nil {
		log.Fatal(err)
	}
	w, h := grid.Dims()
	mask, err := rastervec.NewMask(w, h)
	if err != nil {
		log.Fatal(err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			mask.Set(x, y, grid.Z(x, y) < 128)
		}
	}

	// Thin to a skeleton and trace every arc
	opts := rastervec.DefaultTraceOptions()
	opts.MinPoints = 10
	opts.MergeTolerance = 2

	layer, err := rastervec.TraceCenterlines(mask, opts)
	if err != nil {
		if x, y, ok := rastervec.IsBranchError(err); ok {
			log.Fatalf("skeleton branches at pixel (%d, %d); trace arcs individually", x, y)
		}
		log.Fatal(err)
	}
	fmt.Printf("Centerlines: %d\n", layer.FeatureCount())

	data, err := layer.MarshalGeoJSON()
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("centerlines.geojson", data, 0644); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Wrote centerlines.geojson")
}
