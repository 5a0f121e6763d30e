// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"errors"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	cognitov2 "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"

	"github.com/awsctl/awsctl/internal/log"
)

// ErrDomainOwnedByOtherPool is returned when a user pool domain exists but
// belongs to a different pool. Callers map this to its own exit code so
// scripts can tell ownership conflicts from generic failures.
var ErrDomainOwnedByOtherPool = errors.New("domain owned by another user pool")

// CognitoAPI is the subset of the Cognito client used by the domain helpers.
type CognitoAPI interface {
	DescribeUserPoolDomain(ctx context.Context, params *cognitov2.DescribeUserPoolDomainInput, optFns ...func(*cognitov2.Options)) (*cognitov2.DescribeUserPoolDomainOutput, error)
	CreateUserPoolDomain(ctx context.Context, params *cognitov2.CreateUserPoolDomainInput, optFns ...func(*cognitov2.Options)) (*cognitov2.CreateUserPoolDomainOutput, error)
	DeleteUserPoolDomain(ctx context.Context, params *cognitov2.DeleteUserPoolDomainInput, optFns ...func(*cognitov2.Options)) (*cognitov2.DeleteUserPoolDomainOutput, error)
}

// EnsureUserPoolDomain attaches domain to the given user pool. It creates
// the domain when absent and is a no-op when the domain is already attached
// to the same pool. A domain owned by a different pool yields
// ErrDomainOwnedByOtherPool.
func EnsureUserPoolDomain(ctx context.Context, api CognitoAPI, domain, userPoolID string) error {
	desc, err := api.DescribeUserPoolDomain(ctx, &cognitov2.DescribeUserPoolDomainInput{
		Domain: awsv2.String(domain),
	})
	if err != nil {
		return fmt.Errorf("failed to describe user pool domain %s: %w", domain, err)
	}

	// An unclaimed domain comes back with an empty description rather than
	// an error.
	if desc.DomainDescription == nil || desc.DomainDescription.Domain == nil {
		log.Debugf("domain absent, creating: domain=%s pool=%s", domain, userPoolID)
		_, err = api.CreateUserPoolDomain(ctx, &cognitov2.CreateUserPoolDomainInput{
			Domain:     awsv2.String(domain),
			UserPoolId: awsv2.String(userPoolID),
		})
		if err != nil {
			return fmt.Errorf("failed to create user pool domain %s: %w", domain, err)
		}
		return nil
	}

	owner := awsv2.ToString(desc.DomainDescription.UserPoolId)
	if owner == userPoolID {
		log.Debugf("domain already attached: domain=%s pool=%s", domain, userPoolID)
		return nil
	}

	return fmt.Errorf("domain %s is attached to pool %s: %w", domain, owner, ErrDomainOwnedByOtherPool)
}

// DeleteUserPoolDomain detaches domain from the given user pool.
func DeleteUserPoolDomain(ctx context.Context, api CognitoAPI, domain, userPoolID string) error {
	_, err := api.DeleteUserPoolDomain(ctx, &cognitov2.DeleteUserPoolDomainInput{
		Domain:     awsv2.String(domain),
		UserPoolId: awsv2.String(userPoolID),
	})
	if err != nil {
		return fmt.Errorf("failed to delete user pool domain %s: %w", domain, err)
	}
	return nil
}
