package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"log"
	"os"

	"github.com/cartovec/rastervec/pkg/rastervec"
)

func main() {
	// Decode a land-cover image
	f, err := os.Open("landcover.png")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	// Map colors to land-cover classes
	palette := rastervec.Palette{
		{Name: "water", Color: color.RGBA{B: 255, A: 255}},
		{Name: "forest", Color: color.RGBA{G: 120, A: 255}},
		{Name: "urban", Color: color.RGBA{R: 128, G: 128, B: 128, A: 255}},
	}

	opts := rastervec.DefaultClassifyOptions()
	opts.MinPixels = 16

	layer, err := rastervec.ClassifyRegions(img, palette, opts)
	if err != nil {
		log.Fatal(err)
	}

	// Count regions per class
	counts := map[string]int{}
	for _, feature := range layer.Features() {
		name, _ := feature.Attribute("name")
		counts[name.(string)]++
	}
	for name, n := range counts {
		fmt.Printf("%s: %d regions\n", name, n)
	}

	// Render to SVG, filled with the palette colors
	out, err := os.Create("regions.svg")
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	if err := layer.WriteSVG(out, 800, 600); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Wrote regions.svg")
}
