package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Global flags shared across commands.
var (
	flagPath       string
	flagConfig     string
	flagUpdateOnly bool
	flagOutput     string
	flagShowConfig bool
	flagDebug      bool
)

// rootCmd is the top-level command for autoheader.
var rootCmd = &cobra.Command{
	Use:   "autoheader",
	Short: "Insert and update standardized file headers",
	Long: "autoheader inserts, detects, and selectively updates a standardized comment\n" +
		"header (copyright, authorship, dates, file path) at the top of source files,\n" +
		"driven by per-language and per-project templates.",
	// Default action is apply.
	RunE: applyRunE,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPath, "path", "p", "", "path of the file to process")
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to config file (default: $XDG_CONFIG_HOME/autoheader/configuration.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagUpdateOnly, "update-only", "u", false, "never create a header, only update existing ones")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "output format: json, or empty for plain text")
	rootCmd.PersistentFlags().BoolVar(&flagShowConfig, "show-config", false, "display the loaded configuration and exit")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures the global zerolog logger from flags.
func setupLogging() {
	level := zerolog.InfoLevel
	if flagDebug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
}

// defaultConfigPath returns the configuration file path used when --config is
// not given: $XDG_CONFIG_HOME/autoheader/configuration.yaml, with the usual
// ~/.config fallback.
func defaultConfigPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "autoheader", "configuration.yaml")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
