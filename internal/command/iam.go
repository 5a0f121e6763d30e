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

func iamEnsureUserAction(ctx context.Context, cmd *cli.Command) error {
	user := cmd.String("user")
	if user == "" {
		log.Fatalf("--user is mandatory")
		return errMissingArgs
	}

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}
	client := awsx.NewIAM(cfg)

	created, err := awsx.EnsureUser(ctx, client, user)
	if err != nil {
		return err
	}
	if created {
		log.Infof("created user %s", user)
	}

	if policy := cmd.String("policy-arn"); policy != "" {
		if err := awsx.AttachUserPolicy(ctx, client, user, policy); err != nil {
			return err
		}
	}

	if cmd.Bool("access-key") {
		id, secret, err := awsx.CreateAccessKey(ctx, client, user)
		if err != nil {
			return err
		}
		// The secret is only available at creation time.
		fmt.Printf("%s %s\n", id, secret)
	}
	return nil
}

func iamDeleteUserAction(ctx context.Context, cmd *cli.Command) error {
	user := cmd.String("user")
	if user == "" {
		log.Fatalf("--user is mandatory")
		return errMissingArgs
	}

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}
	return awsx.DeleteUser(ctx, awsx.NewIAM(cfg), user)
}

// iamCommandBuilder constructs the cli.Command for "iam".
func iamCommandBuilder(m meta.Meta) *cli.Command {
	userFlag := &cli.StringFlag{
		Name:    "user",
		Aliases: []string{"u"},
		Usage:   "IAM user name",
	}

	return &cli.Command{
		Name:     "iam",
		Usage:    "user lifecycle management",
		Metadata: withMeta(m),
		Commands: []*cli.Command{
			{
				Name:      "ensure-user",
				Usage:     "create the user when absent, optionally with policy and key",
				UsageText: "awsctl iam ensure-user --user U [--policy-arn ARN] [--access-key]",
				Flags: append(NewGlobalFlags("iam"),
					userFlag,
					&cli.StringFlag{Name: "policy-arn", Usage: "managed policy to attach"},
					&cli.BoolFlag{Name: "access-key", Usage: "create an access key", HideDefault: true},
				),
				Action: iamEnsureUserAction,
			},
			{
				Name:      "delete-user",
				Usage:     "delete the user and its keys and attached policies",
				UsageText: "awsctl iam delete-user --user U",
				Flags:     append(NewGlobalFlags("iam"), userFlag),
				Action:    iamDeleteUserAction,
			},
		},
	}
}
