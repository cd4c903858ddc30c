package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/trainledger/trains/internal/cli/styles"
	trainservice "github.com/trainledger/trains/internal/services/train"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new train departure",
		Long: `Record a new train departure in the ledger.

Examples:
  # Record a departure (human-readable output)
  trains add -p "Moscow" -n 42 -t 800

  # JSON output for agents
  trains add -p "Moscow" -n 42 -t 800 --json

  # Quiet mode for bash capture
  TRAIN_ID=$(trains add -p "Moscow" -n 42 -t 800 --quiet)
`,
		RunE: runAdd,
	}

	cmd.Flags().String("db", "", "The database file name (default ./trains.db)")
	cmd.Flags().StringP("punkt", "p", "", "Destination (required)")
	if err := cmd.MarkFlagRequired("punkt"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}
	cmd.Flags().IntP("nomer", "n", 0, "The train number")
	cmd.Flags().IntP("time", "t", 0, "Departure time (required)")
	if err := cmd.MarkFlagRequired("time"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	destination, _ := cmd.Flags().GetString("punkt")
	number, _ := cmd.Flags().GetInt("nomer")
	departureTime, _ := cmd.Flags().GetInt("time")
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

	created, err := cliInstance.App.TrainService.Add(ctx, trainservice.AddRequest{
		Destination: destination,
		Number:      number,
		Time:        departureTime,
	})
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

	if quietMode || jsonOutput {
		return formatter.Success(created)
	}

	fmt.Printf("Added departure %d: %s (train %d, departs %d)\n",
		created.ID, created.Destination, number, created.DepartureTime)
	return nil
}
