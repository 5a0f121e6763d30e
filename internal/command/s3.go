// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	awsx "github.com/awsctl/awsctl/internal/aws"
	"github.com/awsctl/awsctl/internal/log"
	"github.com/awsctl/awsctl/internal/meta"
	"github.com/awsctl/awsctl/internal/output"
)

// s3LsAction lists objects under a prefix. Text output is a table with
// humanized sizes; json/yaml carry the raw listing.
func s3LsAction(ctx context.Context, cmd *cli.Command) error {
	bucket := cmd.String("bucket")
	if bucket == "" {
		log.Fatalf("--bucket is mandatory")
		return errMissingArgs
	}

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	objects, err := awsx.List(ctx, awsx.NewS3(cfg), bucket, cmd.String("prefix"))
	if err != nil {
		return err
	}

	if cmd.String("output") != "text" {
		doc, err := json.Marshal(objects)
		if err != nil {
			return err
		}
		output.Spit(os.Stdout, cmd.String("output"), doc)
		return nil
	}

	rows := make([][]string, 0, len(objects))
	for _, o := range objects {
		rows = append(rows, []string{
			o.LastModified.Format(time.RFC3339),
			humanize.Bytes(uint64(o.Size)), //nolint:gosec
			o.Key,
		})
	}
	output.TableWriter(os.Stdout, []string{"modified", "size", "key"}, rows)
	return nil
}

func s3CpAction(ctx context.Context, cmd *cli.Command) error {
	bucket := cmd.String("bucket")
	key := cmd.String("key")
	file := cmd.String("file")
	if bucket == "" || key == "" || file == "" {
		log.Fatalf("--bucket, --key and --file are mandatory")
		return errMissingArgs
	}

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}
	client := awsx.NewS3(cfg)

	if cmd.Bool("down") {
		return awsx.Download(ctx, client, bucket, key, file)
	}
	return awsx.Upload(ctx, client, bucket, key, file)
}

func s3EnsureBucketAction(ctx context.Context, cmd *cli.Command) error {
	bucket := cmd.String("bucket")
	if bucket == "" {
		log.Fatalf("--bucket is mandatory")
		return errMissingArgs
	}

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	created, err := awsx.EnsureBucket(ctx, awsx.NewS3(cfg), bucket, cmd.String("region"))
	if err != nil {
		return err
	}
	if created {
		log.Infof("created bucket %s", bucket)
	}
	return nil
}

// s3CommandBuilder constructs the cli.Command for "s3".
func s3CommandBuilder(m meta.Meta) *cli.Command {
	bucketFlag := &cli.StringFlag{
		Name:    "bucket",
		Aliases: []string{"b"},
		Usage:   "bucket name",
	}

	return &cli.Command{
		Name:     "s3",
		Usage:    "bucket and object management",
		Metadata: withMeta(m),
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "list objects under a prefix",
				UsageText: "awsctl s3 ls --bucket B [--prefix P]",
				Flags: append(NewGlobalFlags("s3"),
					bucketFlag,
					&cli.StringFlag{Name: "prefix", Usage: "key prefix"},
				),
				Action: s3LsAction,
			},
			{
				Name:      "cp",
				Usage:     "copy a file to or from a bucket",
				UsageText: "awsctl s3 cp --bucket B --key K --file F [--down]",
				Flags: append(NewGlobalFlags("s3"),
					bucketFlag,
					&cli.StringFlag{Name: "key", Usage: "object key"},
					&cli.StringFlag{Name: "file", Usage: "local file path"},
					&cli.BoolFlag{Name: "down", Usage: "download instead of upload", HideDefault: true},
				),
				Action: s3CpAction,
			},
			{
				Name:      "ensure-bucket",
				Usage:     "create the bucket when absent",
				UsageText: "awsctl s3 ensure-bucket --bucket B",
				Flags:     append(NewGlobalFlags("s3"), bucketFlag),
				Action:    s3EnsureBucketAction,
			},
		},
	}
}
