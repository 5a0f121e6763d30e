// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	awsx "github.com/awsctl/awsctl/internal/aws"
	"github.com/awsctl/awsctl/internal/log"
	"github.com/awsctl/awsctl/internal/meta"
)

// tgResolve maps --name to a target group ARN, preferring an explicit --arn.
func tgResolve(ctx context.Context, cmd *cli.Command) (string, error) {
	if arn := cmd.String("arn"); arn != "" {
		return arn, nil
	}
	name := cmd.String("name")
	if name == "" {
		log.Fatalf("--arn or --name is mandatory")
		return "", errMissingArgs
	}

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return "", err
	}
	return awsx.TargetGroupARN(ctx, awsx.NewELBV2(cfg), name)
}

func tgRegisterAction(ctx context.Context, cmd *cli.Command) error {
	targets := cmd.StringSlice("target")
	if len(targets) == 0 {
		log.Fatalf("at least one --target is mandatory")
		return errMissingArgs
	}

	arn, err := tgResolve(ctx, cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	if cmd.Bool("deregister") {
		return awsx.DeregisterTargets(ctx, awsx.NewELBV2(cfg), arn, targets...)
	}
	return awsx.RegisterTargets(ctx, awsx.NewELBV2(cfg), arn, targets...)
}

func tgARNAction(ctx context.Context, cmd *cli.Command) error {
	arn, err := tgResolve(ctx, cmd)
	if err != nil {
		return err
	}
	fmt.Println(arn)
	return nil
}

// tgCommandBuilder constructs the cli.Command for "tg".
func tgCommandBuilder(m meta.Meta) *cli.Command {
	nameFlags := []cli.Flag{
		&cli.StringFlag{Name: "arn", Usage: "target group ARN"},
		&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "target group name"},
	}

	return &cli.Command{
		Name:     "tg",
		Usage:    "load balancer target group membership",
		Metadata: withMeta(m),
		Commands: []*cli.Command{
			{
				Name:      "arn",
				Usage:     "print the target group ARN for a name",
				UsageText: "awsctl tg arn --name N",
				Flags:     append(NewGlobalFlags("tg"), nameFlags...),
				Action:    tgARNAction,
			},
			{
				Name:      "register",
				Usage:     "register or deregister instance targets",
				UsageText: "awsctl tg register --name N --target i-123 [--target i-456] [--deregister]",
				Flags: append(append(NewGlobalFlags("tg"), nameFlags...),
					&cli.StringSliceFlag{Name: "target", Aliases: []string{"t"}, Usage: "instance id, repeatable"},
					&cli.BoolFlag{Name: "deregister", Usage: "remove targets instead of adding", HideDefault: true},
				),
				Action: tgRegisterAction,
			},
		},
	}
}
