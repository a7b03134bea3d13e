package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/idvalues/cmd/app/commands"
	"github.com/allisson/idvalues/internal/app"
	"github.com/allisson/idvalues/internal/identity/domain"
)

func getIdentityCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "check",
			Usage: "Check one value per line of a file concurrently",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "kind",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "Value kind: cpf, email, username or password",
				},
				&cli.StringFlag{
					Name:    "file",
					Aliases: []string{"i"},
					Value:   "-",
					Usage:   "Input file with one value per line ('-' for stdin)",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				kind := domain.FieldKind(cmd.String("kind"))
				if err := kind.Validate(); err != nil {
					return err
				}

				input, err := commands.OpenInput(cmd.String("file"))
				if err != nil {
					return err
				}
				defer func() { _ = input.Close() }()

				return withContainer(ctx, cmd, func(container *app.Container) error {
					useCase, err := container.IdentityUseCase()
					if err != nil {
						return err
					}
					return commands.RunCheckBatch(
						ctx,
						useCase,
						container.Logger(),
						commands.IOTuple{Reader: input, Writer: commands.DefaultIO().Writer},
						kind,
						cmd.String("format"),
					)
				})
			},
		},
		{
			Name:  "register",
			Usage: "Build an identity from raw fields (prompts for the password when omitted)",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "cpf", Required: true, Usage: "CPF, with or without punctuation"},
				&cli.StringFlag{Name: "email", Required: true, Usage: "Email address"},
				&cli.StringFlag{Name: "username", Required: true, Usage: "Username"},
				&cli.StringFlag{Name: "password", Usage: "Password (omit to read from stdin)"},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return withContainer(ctx, cmd, func(container *app.Container) error {
					useCase, err := container.IdentityUseCase()
					if err != nil {
						return err
					}
					return commands.RunRegister(
						ctx,
						useCase,
						container.Logger(),
						commands.DefaultIO(),
						&domain.RegisterIdentityInput{
							CPF:      cmd.String("cpf"),
							Email:    cmd.String("email"),
							Username: cmd.String("username"),
							Password: cmd.String("password"),
						},
						cmd.String("format"),
					)
				})
			},
		},
	}
}
