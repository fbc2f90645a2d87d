package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cartovec/rastervec/pkg/rastervec"
)

func main() {
	// Read an ESRI ASCII elevation grid
	f, err := os.Open("elevation.asc")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	grid, err := rastervec.ReadEsriASCII(f)
	if err != nil {
		log.Fatal(err)
	}

	w, h := grid.Dims()
	min, max, _ := grid.MinMax()
	fmt.Printf("Grid: %dx%d, values %.1f to %.1f\n", w, h, min, max)

	// Extract contour lines every 100 units
	var levels []float64
	for z := 100.0; z < max; z += 100 {
		levels = append(levels, z)
	}

	layer, err := rastervec.ContourLines(grid, levels)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Contours: %d\n", layer.FeatureCount())

	// Write GeoJSON
	data, err := layer.Simplify(0.0001).MarshalGeoJSON()
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("contours.geojson", data, 0644); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Wrote contours.geojson")
}
