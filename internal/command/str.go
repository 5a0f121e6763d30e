// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/awsctl/awsctl/internal/collection"
	"github.com/awsctl/awsctl/internal/log"
	"github.com/awsctl/awsctl/internal/meta"
	"github.com/awsctl/awsctl/internal/strutil"
)

// strList gathers the working list from positional arguments, falling back to
// whitespace-separated stdin so command output can be piped straight in.
func strList(cmd *cli.Command) (*collection.List, error) {
	if args := cmd.Args().Slice(); len(args) > 0 {
		return collection.New(args...), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return collection.FromLines(string(data)), nil
}

// strInput gathers a single subject string, first positional argument or all
// of stdin.
func strInput(cmd *cli.Command) (string, error) {
	if args := cmd.Args().Slice(); len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func strJoinAction(ctx context.Context, cmd *cli.Command) error {
	l, err := strList(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, strutil.Join(cmd.String("sep"), l.Items()...))
	return nil
}

func strSplitAction(ctx context.Context, cmd *cli.Command) error {
	s, err := strInput(cmd)
	if err != nil {
		return err
	}
	for _, f := range strutil.SplitList(s, cmd.String("sep")) {
		fmt.Fprintln(os.Stdout, f)
	}
	return nil
}

func strMatchAction(ctx context.Context, cmd *cli.Command) error {
	pattern := cmd.String("pattern")
	if pattern == "" {
		log.Fatalf("--pattern is mandatory")
		return errMissingArgs
	}

	s, err := strInput(cmd)
	if err != nil {
		return err
	}

	ok, err := strutil.Contains(s, pattern)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, ok)
	return nil
}

func strReverseAction(ctx context.Context, cmd *cli.Command) error {
	l, err := strList(cmd)
	if err != nil {
		return err
	}
	l.Reverse()
	for _, it := range l.Items() {
		fmt.Fprintln(os.Stdout, it)
	}
	return nil
}

func strPopAction(ctx context.Context, cmd *cli.Command) error {
	l, err := strList(cmd)
	if err != nil {
		return err
	}

	n := cmd.Int("count")
	if cmd.Bool("front") {
		l.PopFront(n)
	} else {
		l.Pop(n)
	}
	for _, it := range l.Items() {
		fmt.Fprintln(os.Stdout, it)
	}
	return nil
}

// strCommandBuilder constructs the cli.Command for "str".
func strCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:     "str",
		Usage:    "string and list helpers for shell pipelines",
		Metadata: withMeta(m),
		Commands: []*cli.Command{
			{
				Name:      "join",
				Usage:     "join items with a separator",
				UsageText: "awsctl str join [--sep S] item [item ...]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "sep", Aliases: []string{"s"}, Usage: "separator", Value: " "},
				},
				Action: strJoinAction,
			},
			{
				Name:      "split",
				Usage:     "split a string on any separator character, one field per line",
				UsageText: "awsctl str split [--sep S] string",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "sep", Aliases: []string{"s"}, Usage: "separator characters", Value: " ,"},
				},
				Action: strSplitAction,
			},
			{
				Name:      "match",
				Usage:     "print true when the pattern matches the subject",
				UsageText: "awsctl str match --pattern P string",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "pattern", Aliases: []string{"p"}, Usage: "regular expression"},
				},
				Action: strMatchAction,
			},
			{
				Name:      "reverse",
				Usage:     "print the items in reverse order",
				UsageText: "awsctl str reverse item [item ...]",
				Action:    strReverseAction,
			},
			{
				Name:      "pop",
				Usage:     "drop items from one end of the list, print the remainder",
				UsageText: "awsctl str pop [--count N] [--front] item [item ...]",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "count", Aliases: []string{"n"}, Usage: "items to drop", Value: 1},
					&cli.BoolFlag{Name: "front", Usage: "drop from the front instead of the end", HideDefault: true},
				},
				Action: strPopAction,
			},
		},
	}
}
