// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	awsx "github.com/awsctl/awsctl/internal/aws"
	"github.com/awsctl/awsctl/internal/log"
	"github.com/awsctl/awsctl/internal/meta"
)

// eniReleaseAction detaches and deletes every interface created by the
// given requester, printing the released ids.
func eniReleaseAction(ctx context.Context, cmd *cli.Command) error {
	requester := cmd.String("requester")
	if requester == "" {
		log.Fatalf("--requester is mandatory")
		return errMissingArgs
	}

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	released, err := awsx.ReleaseInterfaces(ctx, awsx.NewEC2(cfg), requester, pollFromFlags(cmd))
	for _, id := range released {
		fmt.Fprintln(os.Stdout, id)
	}
	return err
}

// eniCommandBuilder constructs the cli.Command for "eni".
func eniCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:     "eni",
		Usage:    "network interface cleanup",
		Metadata: withMeta(m),
		Commands: []*cli.Command{
			{
				Name:      "release",
				Usage:     "detach and delete all interfaces owned by a requester",
				UsageText: "awsctl eni release --requester R",
				Flags: append(append(NewGlobalFlags("eni"),
					&cli.StringFlag{
						Name:  "requester",
						Usage: "requester id that created the interfaces",
					},
				), pollFlags()...),
				Action: eniReleaseAction,
			},
		},
	}
}
