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

var traceNoThin bool

var traceCmd = &cobra.Command{
	Use:   "trace <mask-image>",
	Short: "Extract centerline paths from a binary mask image",
	Long: `trace thresholds the image into a binary mask, skeletonizes it to a
one-pixel-wide centerline, and walks each branch-free arc into a path.

A skeleton with junctions is reported as an error naming the junction pixel;
clean the input or split it before tracing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		threshold := cfg.Threshold
		if threshold == 0 {
			threshold = 128
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", args[0], err)
		}

		mask, err := rastervec.MaskFromImage(img, threshold)
		if err != nil {
			return err
		}
		opts := rastervec.DefaultTraceOptions()
		opts.Thin = !traceNoThin
		opts.MergeTolerance = cfg.MergeTolerance

		layer, err := rastervec.TraceCenterlines(mask, opts)
		if err != nil {
			if x, y, ok := rastervec.IsBranchError(err); ok {
				logger.Error("skeleton has a junction", zap.Int("x", x), zap.Int("y", y))
			}
			return err
		}
		return writeLayer(layer)
	},
}

func init() {
	traceCmd.Flags().BoolVar(&traceNoThin, "no-thin", false, "skip skeletonization (input is already one pixel wide)")
	rootCmd.AddCommand(traceCmd)
}
