package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/trainledger/trains/internal/cli/styles"
)

// SelectCmd returns the select subcommand
func SelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select the train",
		Long: `Print the departures whose train number equals the filter.

Examples:
  # Departures of train 42
  trains select -s 42

  # JSON output for agents
  trains select -s 42 --json
`,
		RunE: runSelect,
	}

	cmd.Flags().String("db", "", "The database file name (default ./trains.db)")
	cmd.Flags().IntP("select", "s", 0, "The train number to select (required)")
	if err := cmd.MarkFlagRequired("select"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (one departure per line)")

	return cmd
}

func runSelect(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	number, _ := cmd.Flags().GetInt("select")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cfg := loadConfig()
	styles.Init(cfg.ColorScheme)

	cliInstance, err := NewCLI(ctx, resolveDBPath(cmd, cfg))
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	departures, err := cliInstance.App.TrainService.ListByNumber(ctx, number)
	if err != nil {
		if isValidationErr(err) {
			if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(ExitValidation)
		}
		if fmtErr := formatter.Error("DATA_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	return writeDepartures(formatter, departures)
}
