// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"context"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	iamv2 "github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeIAM satisfies IAMAPI over an in-memory user record.
type fakeIAM struct {
	users    map[string]bool
	keys     map[string][]string
	policies map[string][]string
	calls    []string
}

func newFakeIAM() *fakeIAM {
	return &fakeIAM{
		users:    map[string]bool{},
		keys:     map[string][]string{},
		policies: map[string][]string{},
	}
}

func (f *fakeIAM) GetUser(ctx context.Context, params *iamv2.GetUserInput, optFns ...func(*iamv2.Options)) (*iamv2.GetUserOutput, error) {
	name := awsv2.ToString(params.UserName)
	if !f.users[name] {
		return nil, &iamtypes.NoSuchEntityException{}
	}
	return &iamv2.GetUserOutput{User: &iamtypes.User{UserName: params.UserName}}, nil
}

func (f *fakeIAM) CreateUser(ctx context.Context, params *iamv2.CreateUserInput, optFns ...func(*iamv2.Options)) (*iamv2.CreateUserOutput, error) {
	name := awsv2.ToString(params.UserName)
	f.users[name] = true
	f.calls = append(f.calls, "create-user "+name)
	return &iamv2.CreateUserOutput{}, nil
}

func (f *fakeIAM) DeleteUser(ctx context.Context, params *iamv2.DeleteUserInput, optFns ...func(*iamv2.Options)) (*iamv2.DeleteUserOutput, error) {
	name := awsv2.ToString(params.UserName)
	delete(f.users, name)
	f.calls = append(f.calls, "delete-user "+name)
	return &iamv2.DeleteUserOutput{}, nil
}

func (f *fakeIAM) CreateAccessKey(ctx context.Context, params *iamv2.CreateAccessKeyInput, optFns ...func(*iamv2.Options)) (*iamv2.CreateAccessKeyOutput, error) {
	name := awsv2.ToString(params.UserName)
	f.keys[name] = append(f.keys[name], "AKIA123")
	return &iamv2.CreateAccessKeyOutput{
		AccessKey: &iamtypes.AccessKey{
			AccessKeyId:     awsv2.String("AKIA123"),
			SecretAccessKey: awsv2.String("secret456"),
		},
	}, nil
}

func (f *fakeIAM) ListAccessKeys(ctx context.Context, params *iamv2.ListAccessKeysInput, optFns ...func(*iamv2.Options)) (*iamv2.ListAccessKeysOutput, error) {
	name := awsv2.ToString(params.UserName)
	var md []iamtypes.AccessKeyMetadata
	for _, id := range f.keys[name] {
		md = append(md, iamtypes.AccessKeyMetadata{AccessKeyId: awsv2.String(id)})
	}
	return &iamv2.ListAccessKeysOutput{AccessKeyMetadata: md}, nil
}

func (f *fakeIAM) DeleteAccessKey(ctx context.Context, params *iamv2.DeleteAccessKeyInput, optFns ...func(*iamv2.Options)) (*iamv2.DeleteAccessKeyOutput, error) {
	name := awsv2.ToString(params.UserName)
	f.keys[name] = nil
	f.calls = append(f.calls, "delete-key "+name)
	return &iamv2.DeleteAccessKeyOutput{}, nil
}

func (f *fakeIAM) AttachUserPolicy(ctx context.Context, params *iamv2.AttachUserPolicyInput, optFns ...func(*iamv2.Options)) (*iamv2.AttachUserPolicyOutput, error) {
	name := awsv2.ToString(params.UserName)
	f.policies[name] = append(f.policies[name], awsv2.ToString(params.PolicyArn))
	return &iamv2.AttachUserPolicyOutput{}, nil
}

func (f *fakeIAM) ListAttachedUserPolicies(ctx context.Context, params *iamv2.ListAttachedUserPoliciesInput, optFns ...func(*iamv2.Options)) (*iamv2.ListAttachedUserPoliciesOutput, error) {
	name := awsv2.ToString(params.UserName)
	var pols []iamtypes.AttachedPolicy
	for _, arn := range f.policies[name] {
		pols = append(pols, iamtypes.AttachedPolicy{PolicyArn: awsv2.String(arn)})
	}
	return &iamv2.ListAttachedUserPoliciesOutput{AttachedPolicies: pols}, nil
}

func (f *fakeIAM) DetachUserPolicy(ctx context.Context, params *iamv2.DetachUserPolicyInput, optFns ...func(*iamv2.Options)) (*iamv2.DetachUserPolicyOutput, error) {
	name := awsv2.ToString(params.UserName)
	f.policies[name] = nil
	f.calls = append(f.calls, "detach-policy "+name)
	return &iamv2.DetachUserPolicyOutput{}, nil
}

func TestEnsureUser_Creates(t *testing.T) {
	f := newFakeIAM()

	created, err := EnsureUser(context.Background(), f, "ops-bot")
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, f.users["ops-bot"])
}

func TestEnsureUser_Exists(t *testing.T) {
	f := newFakeIAM()
	f.users["ops-bot"] = true

	created, err := EnsureUser(context.Background(), f, "ops-bot")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Empty(t, f.calls)
}

func TestCreateAccessKey(t *testing.T) {
	f := newFakeIAM()
	f.users["ops-bot"] = true

	id, secret, err := CreateAccessKey(context.Background(), f, "ops-bot")
	require.NoError(t, err)
	assert.Equal(t, "AKIA123", id)
	assert.Equal(t, "secret456", secret)
}

func TestDeleteUser_CleansUpFirst(t *testing.T) {
	f := newFakeIAM()
	f.users["ops-bot"] = true
	f.keys["ops-bot"] = []string{"AKIA123"}
	f.policies["ops-bot"] = []string{"arn:aws:iam::aws:policy/ReadOnlyAccess"}

	require.NoError(t, DeleteUser(context.Background(), f, "ops-bot"))

	// Keys and policies go before the user itself.
	assert.Equal(t, []string{
		"delete-key ops-bot",
		"detach-policy ops-bot",
		"delete-user ops-bot",
	}, f.calls)
	assert.False(t, f.users["ops-bot"])
}
