// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	snsv2 "github.com/aws/aws-sdk-go-v2/service/sns"
)

// SNSAPI is the subset of the SNS client used by the topic helpers.
type SNSAPI interface {
	CreateTopic(ctx context.Context, params *snsv2.CreateTopicInput, optFns ...func(*snsv2.Options)) (*snsv2.CreateTopicOutput, error)
	Subscribe(ctx context.Context, params *snsv2.SubscribeInput, optFns ...func(*snsv2.Options)) (*snsv2.SubscribeOutput, error)
	Publish(ctx context.Context, params *snsv2.PublishInput, optFns ...func(*snsv2.Options)) (*snsv2.PublishOutput, error)
}

// EnsureTopic creates the topic when absent (CreateTopic is idempotent on
// the AWS side) and returns its ARN.
func EnsureTopic(ctx context.Context, api SNSAPI, name string) (string, error) {
	out, err := api.CreateTopic(ctx, &snsv2.CreateTopicInput{Name: awsv2.String(name)})
	if err != nil {
		return "", fmt.Errorf("failed to ensure topic %s: %w", name, err)
	}
	return awsv2.ToString(out.TopicArn), nil
}

// Subscribe adds an endpoint subscription to the topic and returns the
// subscription ARN.
func Subscribe(ctx context.Context, api SNSAPI, topicARN, protocol, endpoint string) (string, error) {
	out, err := api.Subscribe(ctx, &snsv2.SubscribeInput{
		TopicArn: awsv2.String(topicARN),
		Protocol: awsv2.String(protocol),
		Endpoint: awsv2.String(endpoint),
	})
	if err != nil {
		return "", fmt.Errorf("failed to subscribe %s to %s: %w", endpoint, topicARN, err)
	}
	return awsv2.ToString(out.SubscriptionArn), nil
}

// Publish sends a message to the topic. Subject may be empty.
func Publish(ctx context.Context, api SNSAPI, topicARN, subject, message string) (string, error) {
	input := &snsv2.PublishInput{
		TopicArn: awsv2.String(topicARN),
		Message:  awsv2.String(message),
	}
	if subject != "" {
		input.Subject = awsv2.String(subject)
	}

	out, err := api.Publish(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to publish to %s: %w", topicARN, err)
	}
	return awsv2.ToString(out.MessageId), nil
}
