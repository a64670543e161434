package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/nvr-ai/go-pixelkit/geometry"
	"github.com/nvr-ai/go-pixelkit/scale"
	"github.com/nvr-ai/go-pixelkit/scaling"
)

var (
	scaleTolerance   float64
	scaleDeviceScale float64
	scaleLength      float64
	scaleSize        string
)

var scaleCmd = &cobra.Command{
	Use:   "scale [factor]",
	Short: "Classify a display scaling factor",
	Long: `Classify a display scaling factor as device, 1x, 2x, 3x or custom and
show how points convert to pixels at that factor.

The factor is a number with an optional "x" suffix, or "device".

Examples:
  pixelkit scale 2.005
  pixelkit scale 1.5 --length 10
  pixelkit scale device --device-scale 2 --size 320x240`,
	Args: cobra.ExactArgs(1),
	RunE: runScale,
}

func init() {
	rootCmd.AddCommand(scaleCmd)

	scaleCmd.Flags().Float64Var(&scaleTolerance, "tolerance", scaling.DefaultTolerance, "Classification tolerance (default from config)")
	scaleCmd.Flags().Float64Var(&scaleDeviceScale, "device-scale", 1, "Pixel ratio the device factor resolves to (default from config)")
	scaleCmd.Flags().Float64Var(&scaleLength, "length", 0, "Length in points to convert to pixels")
	scaleCmd.Flags().StringVar(&scaleSize, "size", "", "Size in points to convert to pixels, as WIDTHxHEIGHT")
}

func runScale(cmd *cobra.Command, args []string) error {
	tolerance := cfg.Scaling.Tolerance
	if cmd.Flags().Changed("tolerance") {
		tolerance = scaleTolerance
	}

	factor, err := scaling.ParseFactor(args[0], tolerance)
	if err != nil {
		return err
	}

	metric := cfg.Metric(factor)
	if cmd.Flags().Changed("device-scale") {
		metric.DeviceScale = scaleDeviceScale
	}
	pxPerPt := metric.PxPerPt()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "factor:     %s\n", factor)
	fmt.Fprintf(out, "kind:       %s\n", factor.Kind())
	fmt.Fprintf(out, "px per pt:  %s\n", humanize.Ftoa(pxPerPt))
	fmt.Fprintf(out, "integral:   %t\n", scale.Proportional1D(pxPerPt).IsInteger(cfg.Scale.Tolerance))

	if cmd.Flags().Changed("length") {
		fmt.Fprintf(out, "length:     %spt = %dpx\n", humanize.Ftoa(scaleLength), metric.Px(scaling.Length(scaleLength)))
	}

	if scaleSize != "" {
		size, err := geometry.ParseSize(scaleSize)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "size:       %s = %s\n", size, metric.SizeInPixels(size))
	}

	return nil
}
