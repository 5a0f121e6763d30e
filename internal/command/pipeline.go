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

// pipelineResolve maps --name to a pipeline id, preferring an explicit --id.
func pipelineResolve(ctx context.Context, cmd *cli.Command) (string, error) {
	if id := cmd.String("id"); id != "" {
		return id, nil
	}
	name := cmd.String("name")
	if name == "" {
		log.Fatalf("--id or --name is mandatory")
		return "", errMissingArgs
	}

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return "", err
	}
	return awsx.PipelineIDForName(ctx, awsx.NewDataPipeline(cfg), name)
}

func pipelineActivateAction(ctx context.Context, cmd *cli.Command) error {
	id, err := pipelineResolve(ctx, cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}
	if err := awsx.ActivatePipeline(ctx, awsx.NewDataPipeline(cfg), id); err != nil {
		return err
	}
	log.Infof("activated pipeline %s", id)
	return nil
}

func pipelineDeactivateAction(ctx context.Context, cmd *cli.Command) error {
	id, err := pipelineResolve(ctx, cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(ctx, cmd)
	if err != nil {
		return err
	}
	if err := awsx.DeactivatePipeline(ctx, awsx.NewDataPipeline(cfg), id); err != nil {
		return err
	}
	log.Infof("deactivated pipeline %s", id)
	return nil
}

func pipelineIDAction(ctx context.Context, cmd *cli.Command) error {
	id, err := pipelineResolve(ctx, cmd)
	if err != nil {
		return err
	}
	fmt.Println(id)
	return nil
}

// pipelineCommandBuilder constructs the cli.Command for "pipeline".
func pipelineCommandBuilder(m meta.Meta) *cli.Command {
	flags := append(NewGlobalFlags("pipeline"),
		&cli.StringFlag{Name: "id", Usage: "pipeline id"},
		&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "pipeline name"},
	)

	return &cli.Command{
		Name:     "pipeline",
		Usage:    "data pipeline activation control",
		Metadata: withMeta(m),
		Commands: []*cli.Command{
			{
				Name:      "id",
				Usage:     "print the pipeline id for a name",
				UsageText: "awsctl pipeline id --name N",
				Flags:     flags,
				Action:    pipelineIDAction,
			},
			{
				Name:      "activate",
				Usage:     "activate a pipeline",
				UsageText: "awsctl pipeline activate --name N",
				Flags:     flags,
				Action:    pipelineActivateAction,
			},
			{
				Name:      "deactivate",
				Usage:     "deactivate a pipeline, cancelling active runs",
				UsageText: "awsctl pipeline deactivate --name N",
				Flags:     flags,
				Action:    pipelineDeactivateAction,
			},
		},
	}
}
