package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/cartovec/rastervec/pkg/rastervec"
)

// writeLayer applies the shared post-processing flags and writes the layer
// as GeoJSON, plus an SVG rendering when requested.
func writeLayer(layer *rastervec.Layer) error {
	if mercator {
		layer = layer.ToMercator()
	}
	if simplify > 0 {
		layer = layer.Simplify(simplify)
	}
	logger.Debug("writing layer",
		zap.Int("features", layer.FeatureCount()),
		zap.Bool("mercator", mercator),
		zap.Float64("simplify", simplify))

	data, err := layer.MarshalGeoJSON()
	if err != nil {
		return err
	}
	if output == "" {
		_, err = os.Stdout.Write(append(data, '\n'))
	} else {
		err = os.WriteFile(output, data, 0o644)
	}
	if err != nil {
		return fmt.Errorf("writing geojson: %w", err)
	}

	if svgOutput != "" {
		f, err := os.Create(svgOutput)
		if err != nil {
			return fmt.Errorf("creating svg: %w", err)
		}
		defer f.Close()
		if err := layer.WriteSVG(f, 1024, 1024); err != nil {
			return err
		}
		logger.Info("rendered svg", zap.String("path", svgOutput))
	}
	return nil
}
