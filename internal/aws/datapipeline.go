// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	dpv2 "github.com/aws/aws-sdk-go-v2/service/datapipeline"
)

// DataPipelineAPI is the subset of the Data Pipeline client used by the
// pipeline helpers.
type DataPipelineAPI interface {
	ListPipelines(ctx context.Context, params *dpv2.ListPipelinesInput, optFns ...func(*dpv2.Options)) (*dpv2.ListPipelinesOutput, error)
	ActivatePipeline(ctx context.Context, params *dpv2.ActivatePipelineInput, optFns ...func(*dpv2.Options)) (*dpv2.ActivatePipelineOutput, error)
	DeactivatePipeline(ctx context.Context, params *dpv2.DeactivatePipelineInput, optFns ...func(*dpv2.Options)) (*dpv2.DeactivatePipelineOutput, error)
}

// PipelineIDForName resolves a pipeline name to its id, paging through the
// full pipeline list.
func PipelineIDForName(ctx context.Context, api DataPipelineAPI, name string) (string, error) {
	var marker *string
	for {
		out, err := api.ListPipelines(ctx, &dpv2.ListPipelinesInput{Marker: marker})
		if err != nil {
			return "", fmt.Errorf("failed to list pipelines: %w", err)
		}

		for _, p := range out.PipelineIdList {
			if awsv2.ToString(p.Name) == name {
				return awsv2.ToString(p.Id), nil
			}
		}

		if !out.HasMoreResults {
			return "", fmt.Errorf("pipeline %s not found", name)
		}
		marker = out.Marker
	}
}

// ActivatePipeline starts the pipeline.
func ActivatePipeline(ctx context.Context, api DataPipelineAPI, id string) error {
	_, err := api.ActivatePipeline(ctx, &dpv2.ActivatePipelineInput{PipelineId: awsv2.String(id)})
	if err != nil {
		return fmt.Errorf("failed to activate pipeline %s: %w", id, err)
	}
	return nil
}

// DeactivatePipeline stops the pipeline, cancelling running objects.
func DeactivatePipeline(ctx context.Context, api DataPipelineAPI, id string) error {
	_, err := api.DeactivatePipeline(ctx, &dpv2.DeactivatePipelineInput{
		PipelineId:   awsv2.String(id),
		CancelActive: awsv2.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("failed to deactivate pipeline %s: %w", id, err)
	}
	return nil
}
