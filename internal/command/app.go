// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	awsx "github.com/awsctl/awsctl/internal/aws"
	"github.com/awsctl/awsctl/internal/config"
	"github.com/awsctl/awsctl/internal/meta"
)

// Exit codes forwarded to callers. These are conventions the automation
// scripts key off, not a formal protocol.
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitOwnership     = 128
	ExitUnrecoverable = 255
)

// errMissingArgs marks an invocation the operator has to correct before a
// retry can succeed. Actions return it after logging which flags are missing.
var errMissingArgs = errors.New("missing mandatory arguments")

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// The arg[1] immediately following the binary (arg[0]) is the awsctl
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	cfg, _ := config.Load() //nolint
	cfg.Namespace = ns
	m := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:  "awsctl",
		Usage: "AWS ops toolkit",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "awsctl version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		cloudfrontCommandBuilder(m),
		cognitoCommandBuilder(m),
		eniCommandBuilder(m),
		gitCommandBuilder(m),
		iamCommandBuilder(m),
		jsonCommandBuilder(m),
		keypairCommandBuilder(m),
		kmsCommandBuilder(m),
		pipelineCommandBuilder(m),
		randCommandBuilder(m),
		rdsCommandBuilder(m),
		s3CommandBuilder(m),
		semverCommandBuilder(m),
		snsCommandBuilder(m),
		ssmCommandBuilder(m),
		strCommandBuilder(m),
		tgCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}

// ExitCode maps an error to the sentinel exit code callers expect.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, awsx.ErrDomainOwnedByOtherPool):
		return ExitOwnership
	case errors.Is(err, errMissingArgs):
		return ExitUnrecoverable
	default:
		return ExitFailure
	}
}
