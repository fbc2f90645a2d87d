package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cartovec/rastervec/pkg/rastervec"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <image>",
	Short: "Extract region polygons from a color-classified image",
	Long: `classify snaps every pixel of the image to the nearest class color from
the job file's palette, labels connected regions, and emits one polygon per
region.

The job file must define the palette:

    palette:
      - name: water
        color: "#2b6cb0"
      - name: land
        color: "#68a063"
    min_pixels: 16`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		if len(cfg.Palette) == 0 {
			return fmt.Errorf("classify needs a palette in the job file (--config)")
		}
		palette, err := cfg.palette()
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		img, format, err := image.Decode(f)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", args[0], err)
		}
		logger.Debug("image loaded", zap.String("format", format))

		opts := rastervec.DefaultClassifyOptions()
		opts.Connectivity = cfg.connectivity()
		if cfg.MinPixels > 0 {
			opts.MinPixels = cfg.MinPixels
		}
		layer, err := rastervec.ClassifyRegions(img, palette, opts)
		if err != nil {
			return err
		}
		return writeLayer(layer)
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
