// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/idvalues/cmd/app/commands"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cmd := &cli.Command{
		Name:     "idvalues",
		Usage:    "Sanitize, validate and format identity values (CPF, email, username, password)",
		Version:  version,
		Flags:    getGlobalFlags(),
		Commands: getCommands(version),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, commands.ErrValidationFailed) {
			os.Exit(1)
		}
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
