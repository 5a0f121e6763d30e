// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	ssmv2 "github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
)

// SSMAPI is the subset of the SSM client used by the parameter helpers.
type SSMAPI interface {
	GetParameter(ctx context.Context, params *ssmv2.GetParameterInput, optFns ...func(*ssmv2.Options)) (*ssmv2.GetParameterOutput, error)
	PutParameter(ctx context.Context, params *ssmv2.PutParameterInput, optFns ...func(*ssmv2.Options)) (*ssmv2.PutParameterOutput, error)
}

// GetParameter reads a parameter value, decrypting SecureString values.
func GetParameter(ctx context.Context, api SSMAPI, name string) (string, error) {
	out, err := api.GetParameter(ctx, &ssmv2.GetParameterInput{
		Name:           awsv2.String(name),
		WithDecryption: awsv2.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get parameter %s: %w", name, err)
	}
	return awsv2.ToString(out.Parameter.Value), nil
}

// PutParameter writes a parameter, overwriting any existing value. When
// secure is set the value is stored as a SecureString.
func PutParameter(ctx context.Context, api SSMAPI, name, value string, secure bool) error {
	ptype := ssmtypes.ParameterTypeString
	if secure {
		ptype = ssmtypes.ParameterTypeSecureString
	}

	_, err := api.PutParameter(ctx, &ssmv2.PutParameterInput{
		Name:      awsv2.String(name),
		Value:     awsv2.String(value),
		Type:      ptype,
		Overwrite: awsv2.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("failed to put parameter %s: %w", name, err)
	}
	return nil
}
