package main

import (
	"log/slog"
	"os"

	"github.com/trainledger/trains/cmd"
	"github.com/trainledger/trains/internal/logging"
)

func main() {
	// Logging failures must not break the CLI; fall back to the default handler.
	if err := logging.Init(); err != nil {
		slog.Warn("failed to initialize file logging", "error", err)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
