// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/awsctl/awsctl/internal/config"
	"github.com/awsctl/awsctl/internal/gitutil"
	"github.com/awsctl/awsctl/internal/log"
	"github.com/awsctl/awsctl/internal/meta"
	"github.com/awsctl/awsctl/internal/scratch"
)

func gitCloneAction(ctx context.Context, cmd *cli.Command) error {
	url := cmd.String("url")
	dir := cmd.String("dir")
	if url == "" || dir == "" {
		log.Fatalf("--url and --dir are mandatory")
		return errMissingArgs
	}
	return gitutil.Clone(ctx, url, dir)
}

func gitPushAction(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.String("dir")
	if dir == "" {
		log.Fatalf("--dir is mandatory")
		return errMissingArgs
	}
	return gitutil.Push(ctx, cmd.String("dir"), gitRemote(cmd), cmd.String("branch"))
}

// gitRemote resolves the remote to push to: the --remote flag, then the
// git.remote config key, then origin.
func gitRemote(cmd *cli.Command) string {
	if r := cmd.String("remote"); r != "" {
		return r
	}
	r, _ := config.GetString("git.remote", "origin")
	return r
}

// gitMirrorAction clones a repository into a scoped scratch directory and
// pushes it to another remote. The working tree is removed when the push
// finishes, whatever the outcome.
func gitMirrorAction(ctx context.Context, cmd *cli.Command) error {
	url := cmd.String("url")
	dest := cmd.String("dest")
	if url == "" || dest == "" {
		log.Fatalf("--url and --dest are mandatory")
		return errMissingArgs
	}

	return scratch.WithDir("mirror", func(dir string) error {
		work := filepath.Join(dir, "repo")
		if err := gitutil.Clone(ctx, url, work); err != nil {
			return err
		}
		return gitutil.Push(ctx, work, dest, cmd.String("branch"))
	})
}

// gitCommandBuilder constructs the cli.Command for "git".
func gitCommandBuilder(m meta.Meta) *cli.Command {
	dirFlag := &cli.StringFlag{
		Name:    "dir",
		Aliases: []string{"d"},
		Usage:   "working tree directory",
	}

	return &cli.Command{
		Name:     "git",
		Usage:    "repository helpers with token auth",
		Metadata: withMeta(m),
		Commands: []*cli.Command{
			{
				Name:      "clone",
				Usage:     "clone a repository, no-op when already present",
				UsageText: "awsctl git clone --url U --dir D",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "url", Aliases: []string{"u"}, Usage: "remote repository url"},
					dirFlag,
				},
				Action: gitCloneAction,
			},
			{
				Name:      "push",
				Usage:     "push the current branch",
				UsageText: "awsctl git push --dir D [--remote R] [--branch B]",
				Flags: []cli.Flag{
					dirFlag,
					&cli.StringFlag{Name: "remote", Usage: "remote name, defaults from the git.remote config key"},
					&cli.StringFlag{Name: "branch", Usage: "branch to push", Value: "HEAD"},
				},
				Action: gitPushAction,
			},
			{
				Name:      "mirror",
				Usage:     "clone a repository and push it to another remote",
				UsageText: "awsctl git mirror --url U --dest D [--branch B]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "url", Aliases: []string{"u"}, Usage: "source repository url"},
					&cli.StringFlag{Name: "dest", Usage: "destination repository url"},
					&cli.StringFlag{Name: "branch", Usage: "branch to push", Value: "HEAD"},
				},
				Action: gitMirrorAction,
			},
		},
	}
}
