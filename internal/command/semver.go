// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/awsctl/awsctl/internal/meta"
	"github.com/awsctl/awsctl/internal/semver"
)

// semverCmpAction prints -1, 0 or 1 for the ordering of the two versions.
func semverCmpAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) != 2 {
		return fmt.Errorf("usage: awsctl semver cmp VERSION VERSION")
	}

	c, err := semver.Compare(args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, c)
	return nil
}

// semverCommandBuilder constructs the cli.Command for "semver".
func semverCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:     "semver",
		Usage:    "compare version strings",
		Metadata: withMeta(m),
		Commands: []*cli.Command{
			{
				Name:      "cmp",
				Usage:     "print -1, 0 or 1",
				UsageText: "awsctl semver cmp VERSION VERSION",
				Action:    semverCmpAction,
			},
		},
	}
}
