package cmd

import (
	"fmt"
	"log/slog"

	"github.com/jsphweid/jsb/config"
	"github.com/spf13/cobra"
)

var validFormats = []string{"text", "json", "yaml"}

var (
	verbose    bool
	configPath string
	format     string

	// set by the root command before any subcommand runs
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "jsb",
	Short: "Scale and degree encodings",
	Long: `jsb decodes the packed scale patterns and degree codes of the jsb library,
spells chords from them and renders the results as midi.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
		slog.SetDefault(slog.New(handler))

		if !isValidFormat(format) {
			return fmt.Errorf("invalid format %q: must be one of %v", format, validFormats)
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		slog.Debug("config loaded", "root", cfg.Root, "out_dir", cfg.OutDir, "addr", cfg.Addr)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file (default $JSB_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "text", "output format (text|json|yaml)")
}

func isValidFormat(f string) bool {
	for _, v := range validFormats {
		if v == f {
			return true
		}
	}
	return false
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
