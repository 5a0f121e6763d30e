// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"errors"
	"fmt"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	kmsv2 "github.com/aws/aws-sdk-go-v2/service/kms"
	kmstypes "github.com/aws/aws-sdk-go-v2/service/kms/types"

	"github.com/awsctl/awsctl/internal/log"
)

// KMSAPI is the subset of the KMS client used by the key helpers.
type KMSAPI interface {
	DescribeKey(ctx context.Context, params *kmsv2.DescribeKeyInput, optFns ...func(*kmsv2.Options)) (*kmsv2.DescribeKeyOutput, error)
	CreateKey(ctx context.Context, params *kmsv2.CreateKeyInput, optFns ...func(*kmsv2.Options)) (*kmsv2.CreateKeyOutput, error)
	CreateAlias(ctx context.Context, params *kmsv2.CreateAliasInput, optFns ...func(*kmsv2.Options)) (*kmsv2.CreateAliasOutput, error)
}

// EnsureAlias makes sure a customer key exists behind the alias, creating
// key and alias when absent. The alias may be passed with or without the
// "alias/" prefix. Returns the key ARN.
func EnsureAlias(ctx context.Context, api KMSAPI, alias, description string) (string, error) {
	if !strings.HasPrefix(alias, "alias/") {
		alias = "alias/" + alias
	}

	out, err := api.DescribeKey(ctx, &kmsv2.DescribeKeyInput{KeyId: awsv2.String(alias)})
	if err == nil {
		log.Debugf("alias exists: alias=%s", alias)
		return awsv2.ToString(out.KeyMetadata.Arn), nil
	}

	var nf *kmstypes.NotFoundException
	if !errors.As(err, &nf) {
		return "", fmt.Errorf("failed to describe key %s: %w", alias, err)
	}

	created, err := api.CreateKey(ctx, &kmsv2.CreateKeyInput{
		Description: awsv2.String(description),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create key for %s: %w", alias, err)
	}

	_, err = api.CreateAlias(ctx, &kmsv2.CreateAliasInput{
		AliasName:   awsv2.String(alias),
		TargetKeyId: created.KeyMetadata.KeyId,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create alias %s: %w", alias, err)
	}

	return awsv2.ToString(created.KeyMetadata.Arn), nil
}

// KeyARNForAlias resolves the key ARN behind an alias without creating
// anything.
func KeyARNForAlias(ctx context.Context, api KMSAPI, alias string) (string, error) {
	if !strings.HasPrefix(alias, "alias/") {
		alias = "alias/" + alias
	}
	out, err := api.DescribeKey(ctx, &kmsv2.DescribeKeyInput{KeyId: awsv2.String(alias)})
	if err != nil {
		return "", fmt.Errorf("failed to describe key %s: %w", alias, err)
	}
	return awsv2.ToString(out.KeyMetadata.Arn), nil
}
