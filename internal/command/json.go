// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/awsctl/awsctl/internal/jsonq"
	"github.com/awsctl/awsctl/internal/log"
	"github.com/awsctl/awsctl/internal/meta"
	"github.com/awsctl/awsctl/internal/output"
)

// jsonGetAction resolves the first non-null path expression against the
// document. Exits non-zero when every path is null, so scripts can branch on
// presence.
func jsonGetAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) < 2 {
		return fmt.Errorf("usage: awsctl json get FILE PATH [PATH...]")
	}

	result, err := jsonq.GetValueFromFile(args[0], args[1:]...)
	if err != nil {
		log.Errorf("get failed: %v", err)
		return err
	}

	output.Spit(os.Stdout, cmd.String("output"), []byte(result.String()))
	return nil
}

func jsonMergeAction(ctx context.Context, cmd *cli.Command) error {
	merged, err := jsonq.MergeFiles(cmd.Args().Slice()...)
	if err != nil {
		log.Errorf("merge failed: %v", err)
		return err
	}

	output.Spit(os.Stdout, cmd.String("output"), merged)
	return nil
}

func jsonWrapAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) < 2 {
		return fmt.Errorf("usage: awsctl json wrap FILE KEY [KEY...]")
	}

	doc, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	wrapped, err := jsonq.WrapInAncestors(doc, args[1:]...)
	if err != nil {
		log.Errorf("wrap failed: %v", err)
		return err
	}

	output.Spit(os.Stdout, cmd.String("output"), wrapped)
	return nil
}

func jsonDiffAction(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) != 2 {
		return fmt.Errorf("usage: awsctl json diff FILE FILE")
	}

	a, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	b, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[1], err)
	}

	diff, modified, err := jsonq.Diff(a, b, cmd.Bool("color"))
	if err != nil {
		return err
	}
	if !modified {
		fmt.Fprintln(os.Stdout, "The documents are identical.")
		return nil
	}

	fmt.Fprintln(os.Stdout, diff)
	return nil
}

// jsonCommandBuilder constructs the cli.Command for "json", wiring metadata,
// flags, and action handlers.
func jsonCommandBuilder(m meta.Meta) *cli.Command {
	outputFlag := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format",
		Value:   "raw",
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}

	return &cli.Command{
		Name:     "json",
		Usage:    "query, merge, wrap and diff JSON documents",
		Metadata: withMeta(m),
		Commands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "first non-null value among paths",
				UsageText: "awsctl json get FILE PATH [PATH...]",
				Flags:     []cli.Flag{outputFlag},
				Action:    jsonGetAction,
			},
			{
				Name:      "merge",
				Usage:     "left-fold object merge, later keys win",
				UsageText: "awsctl json merge [FILE...]",
				Flags:     []cli.Flag{outputFlag},
				Action:    jsonMergeAction,
			},
			{
				Name:      "wrap",
				Usage:     "wrap a document in nested single-key objects",
				UsageText: "awsctl json wrap FILE KEY [KEY...]",
				Flags:     []cli.Flag{outputFlag},
				Action:    jsonWrapAction,
			},
			{
				Name:      "diff",
				Usage:     "structural diff of two documents",
				UsageText: "awsctl json diff FILE FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "color",
						Aliases: []string{"c"},
						Usage:   "enable colored diff output",
						Value:   false,
					},
				},
				Action: jsonDiffAction,
			},
		},
	}
}
