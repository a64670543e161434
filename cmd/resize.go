package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvr-ai/go-pixelkit/geometry"
	"github.com/nvr-ai/go-pixelkit/logger"
)

var (
	resizeMargin float64
	resizeEdges  string
	resizeCenter bool
	resizeMode   string
)

var fitCmd = &cobra.Command{
	Use:   "fit [source] [bound]",
	Short: "Fit a size inside a bound, preserving its aspect ratio",
	Long: `Fit a size inside a bound, preserving its aspect ratio.

Sizes are WIDTHxHEIGHT or a resolution name (see "pixelkit resolutions").
The result is floored to whole pixels and never exceeds the bound.

Examples:
  pixelkit fit 1920x1080 1280x1280
  pixelkit fit 4k 720p --margin 16 --center
  pixelkit fit 800x600 1024x768 --margin 10 --edges top,bottom`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResize(cmd, args, geometry.ModeFit)
	},
}

var fillCmd = &cobra.Command{
	Use:   "fill [source] [bound]",
	Short: "Scale a size to cover a bound, preserving its aspect ratio",
	Long: `Scale a size to cover a bound, preserving its aspect ratio.

The result is floored to whole pixels, so on one axis it may fall a pixel
short of the bound when the ratios do not divide evenly.

Examples:
  pixelkit fill 1920x1080 1280x1280
  pixelkit fill vga 1080p --center`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResize(cmd, args, geometry.ModeFill)
	},
}

var resizeCmd = &cobra.Command{
	Use:   "resize [source] [bound]",
	Short: "Resize using the configured aspect mode",
	Long: `Resize a size into a bound using the aspect mode from --mode, or the
geometry.mode configuration value when the flag is not given.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := cfg.AspectMode()
		if cmd.Flags().Changed("mode") {
			mode, err = geometry.ParseAspectMode(resizeMode)
		}
		if err != nil {
			return err
		}
		return runResize(cmd, args, mode)
	},
}

func init() {
	for _, c := range []*cobra.Command{fitCmd, fillCmd, resizeCmd} {
		rootCmd.AddCommand(c)

		c.Flags().Float64Var(&resizeMargin, "margin", 0, "Margin removed from the bound (default from config)")
		c.Flags().StringVar(&resizeEdges, "edges", "all", "Edges the margin applies to, e.g. top,bottom or horizontal")
		c.Flags().BoolVar(&resizeCenter, "center", false, "Also print the result centred within the bound")
	}
	resizeCmd.Flags().StringVar(&resizeMode, "mode", "", "Aspect mode: fit or fill")
}

func runResize(cmd *cobra.Command, args []string, mode geometry.AspectMode) error {
	source, err := geometry.ParseSize(args[0])
	if err != nil {
		return err
	}
	bound, err := geometry.ParseSize(args[1])
	if err != nil {
		return err
	}

	margin := cfg.Geometry.Margin
	if cmd.Flags().Changed("margin") {
		margin = resizeMargin
	}
	edges, err := geometry.ParseEdges(resizeEdges)
	if err != nil {
		return err
	}
	insets := geometry.InsetsOn(edges, margin)

	size, err := geometry.ResizeWithMargin(source, bound, insets, mode)
	if err != nil {
		return err
	}
	logger.Get().Debug("resized",
		"mode", mode,
		"source", source,
		"bound", bound,
		"edges", geometry.FormatEdges(edges),
		"margin", margin,
		"result", size)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", size)

	if resizeCenter {
		content := geometry.Rect{
			Origin: geometry.Point{X: insets.Leading, Y: insets.Top},
			Size:   bound.Sub(insets),
		}
		fmt.Fprintf(out, "%s\n", geometry.Center(size, content))
	}

	return nil
}
