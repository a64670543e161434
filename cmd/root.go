package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nvr-ai/go-pixelkit/config"
	"github.com/nvr-ai/go-pixelkit/logger"
)

var (
	configPath string
	verbose    bool

	// cfg is loaded before every command runs.
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "pixelkit",
	Short: "Pixel-exact sizing, scaling and colour utilities",
	Long: `Pixelkit calculates whole-pixel geometry for display and image tooling.

Currently supports:
- Fitting and filling sizes into bounds, with margins and centring
- Classifying display scaling factors and converting points to pixels
- Classifying colour spaces and converting colour components
- Encoding edge sets as bit masks
- Listing standard display resolutions`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML or JSON configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg = config.Default()
	if configPath != "" {
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	l, err := newLogger(cmd.ErrOrStderr(), cfg.Log, verbose)
	if err != nil {
		return err
	}
	logger.Set(l)
	logger.Get().Debug("configuration loaded", "path", configPath, "mode", cfg.Geometry.Mode)
	return nil
}

// newLogger builds the command logger. Verbose output records everything down
// to debug; otherwise the configured level applies.
func newLogger(w io.Writer, lc config.LogConfig, verbose bool) (*slog.Logger, error) {
	level, err := lc.SlogLevel()
	if err != nil {
		return nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(lc.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
