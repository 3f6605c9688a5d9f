package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"go-autoheader/internal/config"
	"go-autoheader/internal/output"
	"go-autoheader/pkg/autoheader"
)

// applyRunE processes one file. Failures are reported to the operator and
// the command still exits zero, so editor hooks and scripts invoking us
// never break on a missing file or a bad configuration.
func applyRunE(cmd *cobra.Command, _ []string) error {
	setupLogging()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	stdout := cmd.OutOrStdout()

	if flagPath == "" {
		return fmt.Errorf("--path is required")
	}

	if _, err := os.Stat(flagPath); err != nil {
		fmt.Fprintf(stdout, "File %s does not exist.\n", flagPath)
		return nil
	}

	configPath := flagConfig
	if configPath == "" {
		configPath = defaultConfigPath()
	}
	if _, err := os.Stat(configPath); err != nil {
		fmt.Fprintf(stdout, "Configuration file %s does not exist.\n", configPath)
		return nil
	}

	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		fmt.Fprintf(stdout, "Error reading configuration file: %s\n", err)
		return nil
	}

	if flagShowConfig {
		return showConfig(stdout, cfg)
	}

	res, err := autoheader.Process(ctx, autoheader.Options{
		Path:       flagPath,
		Config:     cfg,
		UpdateOnly: flagUpdateOnly,
	})
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("path", flagPath).Msg("processing failed")
		fmt.Fprintf(stdout, "Failed to process %s: %s\n", flagPath, err)
		return nil
	}

	return writeResult(stdout, res)
}

// writeResult writes the outcome in the requested format.
func writeResult(w io.Writer, res autoheader.Result) error {
	switch flagOutput {
	case "json":
		return output.WriteJSON(w, flagPath, res)
	case "":
		return output.WriteReport(w, flagPath, res)
	default:
		return fmt.Errorf("unknown output format %q", flagOutput)
	}
}

// showConfig prints the loaded configuration as JSON.
func showConfig(w io.Writer, cfg *config.Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
