// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	awsx "github.com/awsctl/awsctl/internal/aws"
	"github.com/awsctl/awsctl/internal/log"
	"github.com/awsctl/awsctl/internal/meta"
)

func ssmGetAction(ctx context.Context, cmd *cli.Command) error {
	name := cmd.String("name")
	if name == "" {
		log.Fatalf("--name is mandatory")
		return errMissingArgs
	}

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	value, err := awsx.GetParameter(ctx, awsx.NewSSM(cfg), name)
	if err != nil {
		return err
	}
	fmt.Println(value)
	return nil
}

func ssmPutAction(ctx context.Context, cmd *cli.Command) error {
	name := cmd.String("name")
	value := cmd.String("value")
	if name == "" || value == "" {
		log.Fatalf("--name and --value are mandatory")
		return errMissingArgs
	}

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}
	return awsx.PutParameter(ctx, awsx.NewSSM(cfg), name, value, cmd.Bool("secure"))
}

// ssmCommandBuilder constructs the cli.Command for "ssm".
func ssmCommandBuilder(m meta.Meta) *cli.Command {
	nameFlag := &cli.StringFlag{
		Name:    "name",
		Aliases: []string{"n"},
		Usage:   "parameter name",
	}

	return &cli.Command{
		Name:     "ssm",
		Usage:    "parameter store access",
		Metadata: withMeta(m),
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "print a parameter value, decrypting secure strings",
				UsageText: "awsctl ssm get --name N",
				Flags:     append(NewGlobalFlags("ssm"), nameFlag),
				Action:    ssmGetAction,
			},
			{
				Name:      "put",
				Usage:     "store a parameter value, overwriting any prior value",
				UsageText: "awsctl ssm put --name N --value V [--secure]",
				Flags: append(NewGlobalFlags("ssm"),
					nameFlag,
					&cli.StringFlag{Name: "value", Usage: "parameter value"},
					&cli.BoolFlag{Name: "secure", Usage: "store as SecureString", HideDefault: true},
				),
				Action: ssmPutAction,
			},
		},
	}
}
