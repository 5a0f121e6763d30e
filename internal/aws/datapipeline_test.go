// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"context"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	dpv2 "github.com/aws/aws-sdk-go-v2/service/datapipeline"
	dptypes "github.com/aws/aws-sdk-go-v2/service/datapipeline/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDataPipeline satisfies DataPipelineAPI with a paged pipeline list.
type fakeDataPipeline struct {
	pages       [][]dptypes.PipelineIdName
	activated   []string
	deactivated []string
	cancelled   []bool
}

func (f *fakeDataPipeline) ListPipelines(ctx context.Context, params *dpv2.ListPipelinesInput, optFns ...func(*dpv2.Options)) (*dpv2.ListPipelinesOutput, error) {
	page := 0
	if m := awsv2.ToString(params.Marker); m != "" {
		page = int(m[0] - '0')
	}
	out := &dpv2.ListPipelinesOutput{PipelineIdList: f.pages[page]}
	if page+1 < len(f.pages) {
		out.HasMoreResults = true
		out.Marker = awsv2.String(string(rune('0' + page + 1)))
	}
	return out, nil
}

func (f *fakeDataPipeline) ActivatePipeline(ctx context.Context, params *dpv2.ActivatePipelineInput, optFns ...func(*dpv2.Options)) (*dpv2.ActivatePipelineOutput, error) {
	f.activated = append(f.activated, awsv2.ToString(params.PipelineId))
	return &dpv2.ActivatePipelineOutput{}, nil
}

func (f *fakeDataPipeline) DeactivatePipeline(ctx context.Context, params *dpv2.DeactivatePipelineInput, optFns ...func(*dpv2.Options)) (*dpv2.DeactivatePipelineOutput, error) {
	f.deactivated = append(f.deactivated, awsv2.ToString(params.PipelineId))
	f.cancelled = append(f.cancelled, awsv2.ToBool(params.CancelActive))
	return &dpv2.DeactivatePipelineOutput{}, nil
}

func TestPipelineIDForName(t *testing.T) {
	f := &fakeDataPipeline{pages: [][]dptypes.PipelineIdName{
		{{Id: awsv2.String("df-1"), Name: awsv2.String("nightly-etl")}},
	}}

	id, err := PipelineIDForName(context.Background(), f, "nightly-etl")
	require.NoError(t, err)
	assert.Equal(t, "df-1", id)
}

func TestPipelineIDForName_SecondPage(t *testing.T) {
	f := &fakeDataPipeline{pages: [][]dptypes.PipelineIdName{
		{{Id: awsv2.String("df-1"), Name: awsv2.String("other")}},
		{{Id: awsv2.String("df-2"), Name: awsv2.String("nightly-etl")}},
	}}

	id, err := PipelineIDForName(context.Background(), f, "nightly-etl")
	require.NoError(t, err)
	assert.Equal(t, "df-2", id)
}

func TestPipelineIDForName_NotFound(t *testing.T) {
	f := &fakeDataPipeline{pages: [][]dptypes.PipelineIdName{{}}}

	_, err := PipelineIDForName(context.Background(), f, "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestActivateDeactivatePipeline(t *testing.T) {
	f := &fakeDataPipeline{pages: [][]dptypes.PipelineIdName{{}}}

	require.NoError(t, ActivatePipeline(context.Background(), f, "df-1"))
	assert.Equal(t, []string{"df-1"}, f.activated)

	require.NoError(t, DeactivatePipeline(context.Background(), f, "df-1"))
	assert.Equal(t, []string{"df-1"}, f.deactivated)
	// Running objects are cancelled rather than drained.
	assert.Equal(t, []bool{true}, f.cancelled)
}
