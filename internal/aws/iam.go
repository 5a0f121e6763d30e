// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"errors"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	iamv2 "github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"

	"github.com/awsctl/awsctl/internal/log"
)

// IAMAPI is the subset of the IAM client used by the user helpers.
type IAMAPI interface {
	GetUser(ctx context.Context, params *iamv2.GetUserInput, optFns ...func(*iamv2.Options)) (*iamv2.GetUserOutput, error)
	CreateUser(ctx context.Context, params *iamv2.CreateUserInput, optFns ...func(*iamv2.Options)) (*iamv2.CreateUserOutput, error)
	DeleteUser(ctx context.Context, params *iamv2.DeleteUserInput, optFns ...func(*iamv2.Options)) (*iamv2.DeleteUserOutput, error)
	CreateAccessKey(ctx context.Context, params *iamv2.CreateAccessKeyInput, optFns ...func(*iamv2.Options)) (*iamv2.CreateAccessKeyOutput, error)
	ListAccessKeys(ctx context.Context, params *iamv2.ListAccessKeysInput, optFns ...func(*iamv2.Options)) (*iamv2.ListAccessKeysOutput, error)
	DeleteAccessKey(ctx context.Context, params *iamv2.DeleteAccessKeyInput, optFns ...func(*iamv2.Options)) (*iamv2.DeleteAccessKeyOutput, error)
	AttachUserPolicy(ctx context.Context, params *iamv2.AttachUserPolicyInput, optFns ...func(*iamv2.Options)) (*iamv2.AttachUserPolicyOutput, error)
	ListAttachedUserPolicies(ctx context.Context, params *iamv2.ListAttachedUserPoliciesInput, optFns ...func(*iamv2.Options)) (*iamv2.ListAttachedUserPoliciesOutput, error)
	DetachUserPolicy(ctx context.Context, params *iamv2.DetachUserPolicyInput, optFns ...func(*iamv2.Options)) (*iamv2.DetachUserPolicyOutput, error)
}

// EnsureUser creates the IAM user when absent. Returns true when the user
// was created, false when it already existed.
func EnsureUser(ctx context.Context, api IAMAPI, userName string) (bool, error) {
	_, err := api.GetUser(ctx, &iamv2.GetUserInput{UserName: awsv2.String(userName)})
	if err == nil {
		log.Debugf("user exists: name=%s", userName)
		return false, nil
	}

	var nse *iamtypes.NoSuchEntityException
	if !errors.As(err, &nse) {
		return false, fmt.Errorf("failed to get user %s: %w", userName, err)
	}

	if _, err := api.CreateUser(ctx, &iamv2.CreateUserInput{UserName: awsv2.String(userName)}); err != nil {
		return false, fmt.Errorf("failed to create user %s: %w", userName, err)
	}
	return true, nil
}

// CreateAccessKey creates a new access key for the user and returns the id
// and secret. The secret is only available at creation time.
func CreateAccessKey(ctx context.Context, api IAMAPI, userName string) (id, secret string, err error) {
	out, err := api.CreateAccessKey(ctx, &iamv2.CreateAccessKeyInput{UserName: awsv2.String(userName)})
	if err != nil {
		return "", "", fmt.Errorf("failed to create access key for %s: %w", userName, err)
	}
	return awsv2.ToString(out.AccessKey.AccessKeyId), awsv2.ToString(out.AccessKey.SecretAccessKey), nil
}

// AttachUserPolicy attaches the managed policy to the user.
func AttachUserPolicy(ctx context.Context, api IAMAPI, userName, policyARN string) error {
	_, err := api.AttachUserPolicy(ctx, &iamv2.AttachUserPolicyInput{
		UserName:  awsv2.String(userName),
		PolicyArn: awsv2.String(policyARN),
	})
	if err != nil {
		return fmt.Errorf("failed to attach policy %s to %s: %w", policyARN, userName, err)
	}
	return nil
}

// DeleteUser removes the user after first deleting its access keys and
// detaching its managed policies, which AWS requires.
func DeleteUser(ctx context.Context, api IAMAPI, userName string) error {
	keys, err := api.ListAccessKeys(ctx, &iamv2.ListAccessKeysInput{UserName: awsv2.String(userName)})
	if err != nil {
		return fmt.Errorf("failed to list access keys for %s: %w", userName, err)
	}
	for _, k := range keys.AccessKeyMetadata {
		if _, err := api.DeleteAccessKey(ctx, &iamv2.DeleteAccessKeyInput{
			UserName:    awsv2.String(userName),
			AccessKeyId: k.AccessKeyId,
		}); err != nil {
			return fmt.Errorf("failed to delete access key for %s: %w", userName, err)
		}
	}

	policies, err := api.ListAttachedUserPolicies(ctx, &iamv2.ListAttachedUserPoliciesInput{
		UserName: awsv2.String(userName),
	})
	if err != nil {
		return fmt.Errorf("failed to list policies for %s: %w", userName, err)
	}
	for _, p := range policies.AttachedPolicies {
		if _, err := api.DetachUserPolicy(ctx, &iamv2.DetachUserPolicyInput{
			UserName:  awsv2.String(userName),
			PolicyArn: p.PolicyArn,
		}); err != nil {
			return fmt.Errorf("failed to detach policy from %s: %w", userName, err)
		}
	}

	if _, err := api.DeleteUser(ctx, &iamv2.DeleteUserInput{UserName: awsv2.String(userName)}); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userName, err)
	}
	return nil
}
