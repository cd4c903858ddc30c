package cmd

import (
	"github.com/spf13/cobra"
	"github.com/trainledger/trains/internal/cli"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "trains",
	Short:   "Trains - a train departure ledger",
	Long:    `Trains records train departures in a local SQLite file and prints them as a table.`,
	Version: version,
	// An unknown or absent subcommand is a silent no-op, exit 0.
	Args:         cobra.ArbitraryArgs,
	Run:          func(cmd *cobra.Command, args []string) {},
	SilenceUsage: true,
}

func init() {
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	rootCmd.AddCommand(cli.AddCmd())
	rootCmd.AddCommand(cli.DisplayCmd())
	rootCmd.AddCommand(cli.SelectCmd())
}

func Execute() error {
	return rootCmd.Execute()
}
