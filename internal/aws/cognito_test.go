// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"context"
	"errors"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	cognitov2 "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	cognitotypes "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCognito satisfies CognitoAPI with canned domain ownership.
type fakeCognito struct {
	owner       string // pool that owns the domain, "" for unclaimed
	describeErr error
	created     []string
	deleted     []string
}

func (f *fakeCognito) DescribeUserPoolDomain(ctx context.Context, params *cognitov2.DescribeUserPoolDomainInput, optFns ...func(*cognitov2.Options)) (*cognitov2.DescribeUserPoolDomainOutput, error) {
	if f.describeErr != nil {
		return nil, f.describeErr
	}
	if f.owner == "" {
		return &cognitov2.DescribeUserPoolDomainOutput{
			DomainDescription: &cognitotypes.DomainDescriptionType{},
		}, nil
	}
	return &cognitov2.DescribeUserPoolDomainOutput{
		DomainDescription: &cognitotypes.DomainDescriptionType{
			Domain:     params.Domain,
			UserPoolId: awsv2.String(f.owner),
		},
	}, nil
}

func (f *fakeCognito) CreateUserPoolDomain(ctx context.Context, params *cognitov2.CreateUserPoolDomainInput, optFns ...func(*cognitov2.Options)) (*cognitov2.CreateUserPoolDomainOutput, error) {
	f.created = append(f.created, awsv2.ToString(params.Domain))
	return &cognitov2.CreateUserPoolDomainOutput{}, nil
}

func (f *fakeCognito) DeleteUserPoolDomain(ctx context.Context, params *cognitov2.DeleteUserPoolDomainInput, optFns ...func(*cognitov2.Options)) (*cognitov2.DeleteUserPoolDomainOutput, error) {
	f.deleted = append(f.deleted, awsv2.ToString(params.Domain))
	return &cognitov2.DeleteUserPoolDomainOutput{}, nil
}

func TestEnsureUserPoolDomain_CreatesWhenAbsent(t *testing.T) {
	f := &fakeCognito{}
	err := EnsureUserPoolDomain(context.Background(), f, "auth.example.com", "pool-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"auth.example.com"}, f.created)
}

func TestEnsureUserPoolDomain_NoopWhenOwned(t *testing.T) {
	f := &fakeCognito{owner: "pool-1"}
	err := EnsureUserPoolDomain(context.Background(), f, "auth.example.com", "pool-1")
	require.NoError(t, err)
	assert.Empty(t, f.created)
}

func TestEnsureUserPoolDomain_OwnershipConflict(t *testing.T) {
	f := &fakeCognito{owner: "pool-other"}
	err := EnsureUserPoolDomain(context.Background(), f, "auth.example.com", "pool-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDomainOwnedByOtherPool)
	assert.Contains(t, err.Error(), "pool-other")
	assert.Empty(t, f.created)
}

func TestEnsureUserPoolDomain_DescribeError(t *testing.T) {
	boom := errors.New("throttled")
	f := &fakeCognito{describeErr: boom}
	err := EnsureUserPoolDomain(context.Background(), f, "auth.example.com", "pool-1")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrDomainOwnedByOtherPool)
}

func TestDeleteUserPoolDomain(t *testing.T) {
	f := &fakeCognito{owner: "pool-1"}
	err := DeleteUserPoolDomain(context.Background(), f, "auth.example.com", "pool-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"auth.example.com"}, f.deleted)
}
