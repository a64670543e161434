package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nvr-ai/go-pixelkit/geometry"
)

var (
	resolutionsWithin       string
	resolutionsExperimental bool
)

var resolutionsCmd = &cobra.Command{
	Use:   "resolutions",
	Short: "List standard display resolutions",
	Long: `List the standard display resolutions that other commands accept by name.

Examples:
  pixelkit resolutions
  pixelkit resolutions --within 2000x2000`,
	Args: cobra.NoArgs,
	RunE: runResolutions,
}

func init() {
	rootCmd.AddCommand(resolutionsCmd)

	resolutionsCmd.Flags().StringVar(&resolutionsWithin, "within", "", "Only print the highest resolution that fits this size")
	resolutionsCmd.Flags().BoolVar(&resolutionsExperimental, "experimental", false, "Include experimental resolutions")
}

func runResolutions(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if resolutionsWithin != "" {
		bound, err := geometry.ParseSize(resolutionsWithin)
		if err != nil {
			return err
		}
		r, ok := geometry.HighestResolutionWithin(bound)
		if !ok {
			return errors.Errorf("no resolution fits within %s", bound)
		}
		fmt.Fprintln(out, r)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tSIZE\tASPECT\tPIXELS")
	for _, r := range geometry.Resolutions() {
		if r.Experimental && !resolutionsExperimental {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.Name, r.Title, r.Size, r.AspectRatio, humanize.Comma(int64(r.Size.Area())))
	}
	return w.Flush()
}
