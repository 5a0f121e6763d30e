// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	elb "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	elbtypes "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
)

// ELBV2API is the subset of the ELBv2 client used by the target group
// helpers.
type ELBV2API interface {
	DescribeTargetGroups(ctx context.Context, params *elb.DescribeTargetGroupsInput, optFns ...func(*elb.Options)) (*elb.DescribeTargetGroupsOutput, error)
	RegisterTargets(ctx context.Context, params *elb.RegisterTargetsInput, optFns ...func(*elb.Options)) (*elb.RegisterTargetsOutput, error)
	DeregisterTargets(ctx context.Context, params *elb.DeregisterTargetsInput, optFns ...func(*elb.Options)) (*elb.DeregisterTargetsOutput, error)
}

// TargetGroupARN resolves a target group name to its ARN.
func TargetGroupARN(ctx context.Context, api ELBV2API, name string) (string, error) {
	out, err := api.DescribeTargetGroups(ctx, &elb.DescribeTargetGroupsInput{
		Names: []string{name},
	})
	if err != nil {
		return "", fmt.Errorf("failed to describe target group %s: %w", name, err)
	}
	if len(out.TargetGroups) == 0 {
		return "", fmt.Errorf("target group %s not found", name)
	}
	return awsv2.ToString(out.TargetGroups[0].TargetGroupArn), nil
}

// RegisterTargets adds the instance ids to the target group.
func RegisterTargets(ctx context.Context, api ELBV2API, tgARN string, ids ...string) error {
	_, err := api.RegisterTargets(ctx, &elb.RegisterTargetsInput{
		TargetGroupArn: awsv2.String(tgARN),
		Targets:        targetDescriptions(ids),
	})
	if err != nil {
		return fmt.Errorf("failed to register targets with %s: %w", tgARN, err)
	}
	return nil
}

// DeregisterTargets removes the instance ids from the target group.
func DeregisterTargets(ctx context.Context, api ELBV2API, tgARN string, ids ...string) error {
	_, err := api.DeregisterTargets(ctx, &elb.DeregisterTargetsInput{
		TargetGroupArn: awsv2.String(tgARN),
		Targets:        targetDescriptions(ids),
	})
	if err != nil {
		return fmt.Errorf("failed to deregister targets from %s: %w", tgARN, err)
	}
	return nil
}

func targetDescriptions(ids []string) []elbtypes.TargetDescription {
	targets := make([]elbtypes.TargetDescription, 0, len(ids))
	for _, id := range ids {
		targets = append(targets, elbtypes.TargetDescription{Id: awsv2.String(id)})
	}
	return targets
}
