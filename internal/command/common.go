// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/urfave/cli/v3"

	awsx "github.com/awsctl/awsctl/internal/aws"
	"github.com/awsctl/awsctl/internal/meta"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// loadConfig builds the AWS config honoring the common --profile and
// --region flags.
func loadConfig(ctx context.Context, cmd *cli.Command) (awsv2.Config, error) {
	var opts []awsx.Option
	if p := cmd.String("profile"); p != "" {
		opts = append(opts, awsx.WithProfile(p))
	}
	if r := cmd.String("region"); r != "" {
		opts = append(opts, awsx.WithRegion(r))
	}
	return awsx.LoadAWSConfig(ctx, opts...)
}

// withMeta wraps the shared metadata for a command builder.
func withMeta(m meta.Meta) map[string]any {
	return map[string]any{"meta": m}
}
