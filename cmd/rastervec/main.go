// Command rastervec converts raster data to vector geometries from the
// command line: contour lines and bands from ASCII grids, region polygons
// from classified images, and centerlines from binary masks.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string
	output     string
	svgOutput  string
	simplify   float64
	mercator   bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "rastervec",
	Short: "Convert raster geospatial data to vector geometries",
	Long: `rastervec converts gridded (raster) data into vector geometries.

Subcommands cover the classic conversions:

  contour   iso-lines or filled bands from an ESRI ASCII grid
  classify  region polygons from a color-classified image
  trace     centerline paths from a binary mask image

Output is GeoJSON on stdout or --out; --svg additionally renders the result.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML job file")
	rootCmd.PersistentFlags().StringVarP(&output, "out", "o", "", "GeoJSON output file (default stdout)")
	rootCmd.PersistentFlags().StringVar(&svgOutput, "svg", "", "also render the layer to this SVG file")
	rootCmd.PersistentFlags().Float64Var(&simplify, "simplify", 0, "Douglas-Peucker tolerance in output units")
	rootCmd.PersistentFlags().BoolVar(&mercator, "mercator", false, "project geographic coordinates to Web Mercator")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
