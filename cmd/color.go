package cmd

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nvr-ai/go-pixelkit/colorspace"
)

var colorCmd = &cobra.Command{
	Use:   "color [space] [components...]",
	Short: "Classify a colour space and convert components",
	Long: `Classify a colour space and convert its components into sRGB,
linear sRGB or Display P3.

Alpha is the optional last component and defaults to 1.

Known spaces:
  displayP3 displayP3HLG displayP3PQ dciP3 extendedLinearDisplayP3
  sRGB extendedSRGB linearSRGB extendedLinearSRGB
  extendedGray genericGrayGamma2_2 linearGray extendedLinearGray
  adobeRGB1998 genericCMYK genericRGBLinear rommRGB genericLab

Examples:
  pixelkit color displayP3 0.5 0.2 0.8
  pixelkit color linearGray 0.25 0.5`,
	Args: cobra.MinimumNArgs(2),
	RunE: runColor,
}

func init() {
	rootCmd.AddCommand(colorCmd)
}

func runColor(cmd *cobra.Command, args []string) error {
	id, err := colorspace.ParseIdentifier(args[0])
	if err != nil {
		return err
	}

	values := make([]float64, 0, len(args)-1)
	for _, arg := range args[1:] {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return errors.Wrapf(err, "component %q", arg)
		}
		values = append(values, v)
	}

	kind, _ := colorspace.Classify(id)
	converted, err := colorspace.ConvertIdentified(id, values)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "kind:    %s\n", kind)
	fmt.Fprintf(out, "target:  %s\n", converted.Space)
	fmt.Fprintf(out, "rgba:    %s %s %s %s\n",
		humanize.Ftoa(converted.R), humanize.Ftoa(converted.G), humanize.Ftoa(converted.B), humanize.Ftoa(converted.A))

	c := color.NRGBAModel.Convert(converted.Color()).(color.NRGBA)
	fmt.Fprintf(out, "hex:     #%02x%02x%02x%02x\n", c.R, c.G, c.B, c.A)

	return nil
}
