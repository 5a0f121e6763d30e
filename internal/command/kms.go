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

func kmsEnsureAliasAction(ctx context.Context, cmd *cli.Command) error {
	alias := cmd.String("alias")
	if alias == "" {
		log.Fatalf("--alias is mandatory")
		return errMissingArgs
	}

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	arn, err := awsx.EnsureAlias(ctx, awsx.NewKMS(cfg), alias, cmd.String("description"))
	if err != nil {
		return err
	}
	fmt.Println(arn)
	return nil
}

func kmsKeyARNAction(ctx context.Context, cmd *cli.Command) error {
	alias := cmd.String("alias")
	if alias == "" {
		log.Fatalf("--alias is mandatory")
		return errMissingArgs
	}

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	arn, err := awsx.KeyARNForAlias(ctx, awsx.NewKMS(cfg), alias)
	if err != nil {
		return err
	}
	fmt.Println(arn)
	return nil
}

// kmsCommandBuilder constructs the cli.Command for "kms".
func kmsCommandBuilder(m meta.Meta) *cli.Command {
	aliasFlag := &cli.StringFlag{
		Name:    "alias",
		Aliases: []string{"a"},
		Usage:   "key alias, with or without the alias/ prefix",
	}

	return &cli.Command{
		Name:     "kms",
		Usage:    "customer master key management",
		Metadata: withMeta(m),
		Commands: []*cli.Command{
			{
				Name:      "ensure-alias",
				Usage:     "create a key for the alias when absent, print the key ARN",
				UsageText: "awsctl kms ensure-alias --alias A [--description D]",
				Flags: append(NewGlobalFlags("kms"),
					aliasFlag,
					&cli.StringFlag{Name: "description", Usage: "key description"},
				),
				Action: kmsEnsureAliasAction,
			},
			{
				Name:      "key-arn",
				Usage:     "print the key ARN behind an alias",
				UsageText: "awsctl kms key-arn --alias A",
				Flags:     append(NewGlobalFlags("kms"), aliasFlag),
				Action:    kmsKeyARNAction,
			},
		},
	}
}
