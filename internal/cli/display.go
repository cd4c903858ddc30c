package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/trainledger/trains/internal/cli/styles"
	"github.com/trainledger/trains/internal/models"
	"github.com/trainledger/trains/internal/tui"
)

// DisplayCmd returns the display subcommand
func DisplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "display",
		Short: "Display all trains",
		Long: `Print every recorded departure as a table.

Examples:
  # Fixed-width table on stdout
  trains display

  # Interactive departure board
  trains display --interactive

  # JSON output for agents
  trains display --json
`,
		RunE: runDisplay,
	}

	cmd.Flags().String("db", "", "The database file name (default ./trains.db)")
	cmd.Flags().BoolP("interactive", "i", false, "Open the interactive departure board")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (one departure per line)")

	return cmd
}

func runDisplay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	interactive, _ := cmd.Flags().GetBool("interactive")

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

	departures, err := cliInstance.App.TrainService.ListAll(ctx)
	if err != nil {
		if fmtErr := formatter.Error("DATA_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	if interactive && !jsonOutput && !quietMode {
		// An empty ledger prints nothing, interactive or not
		if len(departures) == 0 {
			return nil
		}
		return tui.Run(departures, cfg)
	}

	return writeDepartures(formatter, departures)
}

// writeDepartures renders a departure list in the formatter's output mode:
// quiet is one tab-separated departure per line, json is a success envelope,
// human is the bordered table (nothing at all when empty). Shared by
// display and select.
func writeDepartures(formatter *OutputFormatter, departures []*models.Departure) error {
	if formatter.Quiet {
		for _, dep := range departures {
			fmt.Printf("%s\t%d\t%d\n", dep.Destination, dep.Number, dep.Time)
		}
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":    true,
			"departures": departures,
		})
	}

	RenderDepartures(os.Stdout, departures)
	return nil
}
