// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	awsx "github.com/awsctl/awsctl/internal/aws"
	"github.com/awsctl/awsctl/internal/config"
	"github.com/awsctl/awsctl/internal/log"
	"github.com/awsctl/awsctl/internal/meta"
)

// pollFromFlags builds the availability poll bounds. Flags win over the
// poll.interval and poll.attempts config keys, which win over the defaults.
func pollFromFlags(cmd *cli.Command) awsx.Poll {
	poll := awsx.DefaultPoll
	if v, err := config.GetInt("poll.interval"); err == nil && v > 0 {
		poll.Interval = time.Duration(v) * time.Second
	}
	if v, err := config.GetInt("poll.attempts"); err == nil && v > 0 {
		poll.MaxAttempts = v
	}
	if v := cmd.Int("poll-interval"); v > 0 {
		poll.Interval = time.Duration(v) * time.Second
	}
	if v := cmd.Int("poll-attempts"); v > 0 {
		poll.MaxAttempts = v
	}
	return poll
}

func rdsSnapshotAction(ctx context.Context, cmd *cli.Command) error {
	instance := cmd.String("instance")
	snapshot := cmd.String("snapshot")
	if instance == "" || snapshot == "" {
		log.Fatalf("--instance and --snapshot are mandatory")
		return errMissingArgs
	}

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	return awsx.CreateSnapshot(ctx, awsx.NewRDS(cfg), instance, snapshot, pollFromFlags(cmd))
}

func rdsEncryptSnapshotAction(ctx context.Context, cmd *cli.Command) error {
	snapshot := cmd.String("snapshot")
	key := cmd.String("kms-key")
	if snapshot == "" || key == "" {
		log.Fatalf("--snapshot and --kms-key are mandatory")
		return errMissingArgs
	}

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	return awsx.EncryptSnapshot(ctx, awsx.NewRDS(cfg), snapshot, key, pollFromFlags(cmd))
}

// pollFlags builds the flag pair every polling command carries.
func pollFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "poll-interval",
			Usage: "seconds between availability checks",
		},
		&cli.IntFlag{
			Name:  "poll-attempts",
			Usage: "maximum availability checks before giving up",
		},
	}
}

// rdsCommandBuilder constructs the cli.Command for "rds".
func rdsCommandBuilder(m meta.Meta) *cli.Command {
	return &cli.Command{
		Name:     "rds",
		Usage:    "database snapshot management",
		Metadata: withMeta(m),
		Commands: []*cli.Command{
			{
				Name:      "snapshot",
				Usage:     "snapshot an instance and wait until available",
				UsageText: "awsctl rds snapshot --instance I --snapshot S",
				Flags: append(append(NewGlobalFlags("rds"),
					&cli.StringFlag{Name: "instance", Usage: "db instance identifier"},
					&cli.StringFlag{Name: "snapshot", Usage: "snapshot identifier"},
				), pollFlags()...),
				Action: rdsSnapshotAction,
			},
			{
				Name:      "encrypt-snapshot",
				Usage:     "replace a plaintext snapshot with an encrypted one",
				UsageText: "awsctl rds encrypt-snapshot --snapshot S --kms-key K",
				Flags: append(append(NewGlobalFlags("rds"),
					&cli.StringFlag{Name: "snapshot", Usage: "snapshot identifier"},
					&cli.StringFlag{Name: "kms-key", Usage: "kms key id or arn"},
				), pollFlags()...),
				Action: rdsEncryptSnapshotAction,
			},
		},
	}
}
