package cmd

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nvr-ai/go-pixelkit/geometry"
	"github.com/nvr-ai/go-pixelkit/granular"
)

var edgesCmd = &cobra.Command{
	Use:   "edges",
	Short: "Encode and decode edge sets",
	Long: `Encode edge names as a bit mask, or decode a bit mask into edge names.

Edges are top (bit 0), leading (bit 1), bottom (bit 2) and trailing (bit 3).`,
}

var edgesEncodeCmd = &cobra.Command{
	Use:   "encode [edges]",
	Short: "Encode a comma separated edge list, e.g. top,bottom",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, err := geometry.ParseEdges(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", set, humanize.Comma(int64(set.Raw())))
		return nil
	},
}

var edgesDecodeCmd = &cobra.Command{
	Use:   "decode [mask]",
	Short: "Decode a bit mask such as 5, 0b101 or 0x5",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := strconv.ParseUint(args[0], 0, 64)
		if err != nil {
			return errors.Wrapf(err, "mask %q", args[0])
		}
		set := granular.Set(raw)
		if extra := set.Subtracting(geometry.EdgesAll); !extra.IsEmpty() {
			return errors.Wrapf(geometry.ErrUnknownEdge, "bits %s", extra)
		}
		fmt.Fprintln(cmd.OutOrStdout(), geometry.FormatEdges(set))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(edgesCmd)
	edgesCmd.AddCommand(edgesEncodeCmd, edgesDecodeCmd)
}
