package main

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cartovec/rastervec/pkg/rastervec"
)

// jobConfig is the YAML job file. Every field is optional; flags and
// subcommand arguments fill in the rest.
type jobConfig struct {
	// Levels for `contour`; Breaks switches to filled bands.
	Levels []float64 `yaml:"levels"`
	Breaks []float64 `yaml:"breaks"`

	// Palette for `classify`.
	Palette []paletteEntry `yaml:"palette"`
	// MinPixels drops classified components below this size.
	MinPixels int `yaml:"min_pixels"`
	// Connectivity is "4" or "8".
	Connectivity string `yaml:"connectivity"`

	// Threshold for `trace` mask building (luminance 0-255).
	Threshold float64 `yaml:"threshold"`
	// MergeTolerance joins traced arcs whose ends fall within this distance.
	MergeTolerance float64 `yaml:"merge_tolerance"`
}

type paletteEntry struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"` // #rrggbb
}

func loadConfig(path string) (*jobConfig, error) {
	cfg := &jobConfig{}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *jobConfig) palette() (rastervec.Palette, error) {
	pal := make(rastervec.Palette, 0, len(c.Palette))
	for _, e := range c.Palette {
		var r, g, b uint8
		if _, err := fmt.Sscanf(e.Color, "#%02x%02x%02x", &r, &g, &b); err != nil {
			return nil, fmt.Errorf("palette entry %q: bad color %q", e.Name, e.Color)
		}
		pal = append(pal, rastervec.PaletteClass{
			Name:  e.Name,
			Color: color.RGBA{R: r, G: g, B: b, A: 255},
		})
	}
	return pal, nil
}

func (c *jobConfig) connectivity() rastervec.Connectivity {
	if c.Connectivity == "8" {
		return rastervec.Conn8
	}
	return rastervec.Conn4
}
