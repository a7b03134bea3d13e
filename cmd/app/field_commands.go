package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/allisson/idvalues/cmd/app/commands"
	"github.com/allisson/idvalues/internal/app"
	"github.com/allisson/idvalues/internal/identity/domain"
)

func getFieldCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "cpf",
			Usage: "Validate, format, mask and generate CPFs",
			Commands: []*cli.Command{
				validateCommand(domain.FieldCPF),
				{
					Name:      "format",
					Usage:     "Print a valid CPF as XXX.XXX.XXX-YY",
					ArgsUsage: "<cpf>",
					Flags:     []cli.Flag{formatFlag()},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						raw, err := requiredArg(cmd, "cpf")
						if err != nil {
							return err
						}
						return commands.RunFormatCPF(commands.DefaultIO().Writer, raw, cmd.String("format"))
					},
				},
				maskCommand(domain.FieldCPF),
				{
					Name:  "generate",
					Usage: "Generate random valid CPFs",
					Flags: []cli.Flag{
						&cli.IntFlag{
							Name:    "count",
							Aliases: []string{"n"},
							Value:   1,
							Usage:   "Number of CPFs to generate",
						},
						formatFlag(),
					},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						return withContainer(ctx, cmd, func(container *app.Container) error {
							return commands.RunGenerateCPF(
								container.CPFGenerator(),
								container.Logger(),
								commands.DefaultIO().Writer,
								int(cmd.Int("count")),
								cmd.String("format"),
							)
						})
					},
				},
			},
		},
		{
			Name:  "email",
			Usage: "Validate and mask email addresses",
			Commands: []*cli.Command{
				validateCommand(domain.FieldEmail),
				maskCommand(domain.FieldEmail),
			},
		},
		{
			Name:  "username",
			Usage: "Validate and mask usernames",
			Commands: []*cli.Command{
				validateCommand(domain.FieldUsername),
				maskCommand(domain.FieldUsername),
			},
		},
		{
			Name:  "password",
			Usage: "Validate, hash and verify passwords",
			Commands: []*cli.Command{
				{
					Name:      "validate",
					Usage:     "Check a password against the complexity rules",
					ArgsUsage: "[password]",
					Flags:     []cli.Flag{formatFlag()},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						return withContainer(ctx, cmd, func(container *app.Container) error {
							useCase, err := container.IdentityUseCase()
							if err != nil {
								return err
							}
							plain, err := secretArg(cmd)
							if err != nil {
								return err
							}
							return commands.RunCheck(
								ctx,
								useCase,
								container.Logger(),
								commands.DefaultIO().Writer,
								domain.FieldPassword,
								plain,
								cmd.String("format"),
							)
						})
					},
				},
				{
					Name:      "hash",
					Usage:     "Validate a password and print its encoded form (reads stdin when omitted)",
					ArgsUsage: "[password]",
					Flags:     []cli.Flag{formatFlag()},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						return withContainer(ctx, cmd, func(container *app.Container) error {
							useCase, err := container.IdentityUseCase()
							if err != nil {
								return err
							}
							return commands.RunHashPassword(
								ctx,
								useCase,
								container.Logger(),
								commands.DefaultIO(),
								cmd.Args().First(),
								cmd.String("format"),
							)
						})
					},
				},
				{
					Name:      "verify",
					Usage:     "Verify a password against an encoded form (reads stdin when omitted)",
					ArgsUsage: "[password]",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:     "encoded",
							Aliases:  []string{"e"},
							Required: true,
							Usage:    "Stored encoded form",
						},
						formatFlag(),
					},
					Action: func(ctx context.Context, cmd *cli.Command) error {
						return withContainer(ctx, cmd, func(container *app.Container) error {
							useCase, err := container.IdentityUseCase()
							if err != nil {
								return err
							}
							return commands.RunVerifyPassword(
								ctx,
								useCase,
								container.Logger(),
								commands.DefaultIO(),
								cmd.Args().First(),
								cmd.String("encoded"),
								cmd.String("format"),
							)
						})
					},
				},
				maskCommand(domain.FieldPassword),
			},
		},
	}
}

// validateCommand builds the "validate" subcommand for kind.
func validateCommand(kind domain.FieldKind) *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     fmt.Sprintf("Sanitize and validate a %s", kind),
		ArgsUsage: fmt.Sprintf("<%s>", kind),
		Flags:     []cli.Flag{formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			raw, err := requiredArg(cmd, string(kind))
			if err != nil {
				return err
			}
			return withContainer(ctx, cmd, func(container *app.Container) error {
				useCase, err := container.IdentityUseCase()
				if err != nil {
					return err
				}
				return commands.RunCheck(
					ctx,
					useCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					kind,
					raw,
					cmd.String("format"),
				)
			})
		},
	}
}

// maskCommand builds the "mask" subcommand for kind.
func maskCommand(kind domain.FieldKind) *cli.Command {
	return &cli.Command{
		Name:      "mask",
		Usage:     fmt.Sprintf("Print the display form of a possibly incomplete %s", kind),
		ArgsUsage: fmt.Sprintf("<%s>", kind),
		Flags:     []cli.Flag{formatFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return commands.RunMask(commands.DefaultIO().Writer, kind, cmd.Args().First(), cmd.String("format"))
		},
	}
}

// requiredArg returns the first positional argument or an error naming it.
func requiredArg(cmd *cli.Command, name string) (string, error) {
	if cmd.Args().Len() < 1 {
		return "", fmt.Errorf("missing %s argument", name)
	}
	return cmd.Args().First(), nil
}

// secretArg returns the first positional argument, prompting on stdin when absent.
func secretArg(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() > 0 {
		return cmd.Args().First(), nil
	}
	return commands.ReadSecret(commands.DefaultIO(), "Password")
}
