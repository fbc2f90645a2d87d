package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cartovec/rastervec/pkg/rastervec"
)

var contourLevels []float64
var contourBreaks []float64

var contourCmd = &cobra.Command{
	Use:   "contour <grid.asc>",
	Short: "Extract iso-lines or filled bands from an ESRI ASCII grid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		levels := contourLevels
		if len(levels) == 0 {
			levels = cfg.Levels
		}
		breaks := contourBreaks
		if len(breaks) == 0 {
			breaks = cfg.Breaks
		}
		if len(levels) == 0 && len(breaks) == 0 {
			return fmt.Errorf("no contour levels: pass --level or --break, or set them in the job file")
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		grid, err := rastervec.ReadEsriASCII(f)
		if err != nil {
			return err
		}
		w, h := grid.Dims()
		logger.Debug("grid loaded", zap.Int("cols", w), zap.Int("rows", h))

		var layer *rastervec.Layer
		if len(breaks) > 0 {
			layer, err = rastervec.ContourBands(grid, breaks)
		} else {
			layer, err = rastervec.ContourLines(grid, levels)
		}
		if err != nil {
			return err
		}
		return writeLayer(layer)
	},
}

func init() {
	contourCmd.Flags().Float64SliceVar(&contourLevels, "level", nil, "contour level (repeatable)")
	contourCmd.Flags().Float64SliceVar(&contourBreaks, "break", nil, "band break (repeatable; at least two switch to filled bands)")
	rootCmd.AddCommand(contourCmd)
}
