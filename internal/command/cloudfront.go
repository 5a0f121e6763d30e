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

func cloudfrontEnsureOAIAction(ctx context.Context, cmd *cli.Command) error {
	comment := cmd.String("comment")
	if comment == "" {
		log.Fatalf("--comment is mandatory")
		return errMissingArgs
	}

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	id, err := awsx.EnsureOriginAccessIdentity(ctx, awsx.NewCloudFront(cfg), comment)
	if err != nil {
		return err
	}
	fmt.Println(id)
	return nil
}

func cloudfrontDeleteOAIAction(ctx context.Context, cmd *cli.Command) error {
	id := cmd.String("id")
	if id == "" {
		log.Fatalf("--id is mandatory")
		return errMissingArgs
	}

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	return awsx.DeleteOriginAccessIdentity(ctx, awsx.NewCloudFront(cfg), id)
}

// cloudfrontCommandBuilder constructs the cli.Command for "cloudfront".
func cloudfrontCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:     "cloudfront",
		Usage:    "origin access identity management",
		Metadata: withMeta(m),
		Commands: []*cli.Command{
			{
				Name:      "ensure-oai",
				Usage:     "find an origin access identity by comment, creating it when absent, print the id",
				UsageText: "awsctl cloudfront ensure-oai --comment C",
				Flags: append(NewGlobalFlags("cloudfront"),
					&cli.StringFlag{
						Name:    "comment",
						Aliases: []string{"c"},
						Usage:   "comment naming the identity",
					},
				),
				Action: cloudfrontEnsureOAIAction,
			},
			{
				Name:      "delete-oai",
				Usage:     "delete an origin access identity by id",
				UsageText: "awsctl cloudfront delete-oai --id E123",
				Flags: append(NewGlobalFlags("cloudfront"),
					&cli.StringFlag{Name: "id", Usage: "origin access identity id"},
				),
				Action: cloudfrontDeleteOAIAction,
			},
		},
	}
}
