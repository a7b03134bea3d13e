package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/idvalues/cmd/app/commands"
	"github.com/allisson/idvalues/internal/app"
	"github.com/allisson/idvalues/internal/config"
)

func getCommands(version string) []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getSystemCommands(version)...)
	cmds = append(cmds, getFieldCommands()...)
	cmds = append(cmds, getIdentityCommands()...)
	return cmds
}

func getGlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "print-metrics",
			Value: false,
			Usage: "Write collected metrics in Prometheus text format to stderr on exit",
		},
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

// withContainer loads configuration, builds the container, runs fn and shuts
// the container down, dumping metrics first when requested.
func withContainer(ctx context.Context, cmd *cli.Command, fn func(*app.Container) error) error {
	cfg := config.Load()
	container := app.NewContainer(cfg)
	defer func() { _ = container.Shutdown(ctx) }()

	runErr := fn(container)

	if cmd.Bool("print-metrics") {
		provider, err := container.MetricsProvider()
		if err != nil {
			return err
		}
		if err := commands.RunDumpMetrics(provider, os.Stderr); err != nil {
			return err
		}
	}

	return runErr
}
