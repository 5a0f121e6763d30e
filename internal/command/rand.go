// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/awsctl/awsctl/internal/meta"
	"github.com/awsctl/awsctl/internal/strutil"
)

func randAction(ctx context.Context, cmd *cli.Command) error {
	charset := strutil.Alphanumeric
	if cmd.Bool("punctuation") {
		charset = strutil.AlphanumericPunct
	}

	s, err := strutil.RandomString(cmd.Int("length"), charset)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, s)
	return nil
}

// randCommandBuilder constructs the cli.Command for "rand".
func randCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "rand",
		Usage:     "generate a random string from a secure source",
		UsageText: "awsctl rand [options]",
		Metadata:  withMeta(m),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "length",
				Aliases: []string{"l"},
				Usage:   "number of characters to generate",
				Value:   32, //nolint:mnd
			},
			&cli.BoolFlag{
				Name:        "punctuation",
				Usage:       "include shell-safe punctuation",
				HideDefault: true,
			},
		},
		Action: randAction,
	}
}
