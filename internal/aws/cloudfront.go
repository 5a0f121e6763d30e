// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	cfv2 "github.com/aws/aws-sdk-go-v2/service/cloudfront"
	cftypes "github.com/aws/aws-sdk-go-v2/service/cloudfront/types"

	"github.com/awsctl/awsctl/internal/log"
)

// CloudFrontAPI is the subset of the CloudFront client used by the origin
// access identity helpers.
type CloudFrontAPI interface {
	ListCloudFrontOriginAccessIdentities(ctx context.Context, params *cfv2.ListCloudFrontOriginAccessIdentitiesInput, optFns ...func(*cfv2.Options)) (*cfv2.ListCloudFrontOriginAccessIdentitiesOutput, error)
	CreateCloudFrontOriginAccessIdentity(ctx context.Context, params *cfv2.CreateCloudFrontOriginAccessIdentityInput, optFns ...func(*cfv2.Options)) (*cfv2.CreateCloudFrontOriginAccessIdentityOutput, error)
	GetCloudFrontOriginAccessIdentity(ctx context.Context, params *cfv2.GetCloudFrontOriginAccessIdentityInput, optFns ...func(*cfv2.Options)) (*cfv2.GetCloudFrontOriginAccessIdentityOutput, error)
	DeleteCloudFrontOriginAccessIdentity(ctx context.Context, params *cfv2.DeleteCloudFrontOriginAccessIdentityInput, optFns ...func(*cfv2.Options)) (*cfv2.DeleteCloudFrontOriginAccessIdentityOutput, error)
}

// EnsureOriginAccessIdentity finds an OAI by its comment, creating it when
// absent. The comment acts as the identity's name. Returns the OAI id.
func EnsureOriginAccessIdentity(ctx context.Context, api CloudFrontAPI, comment string) (string, error) {
	var marker *string
	for {
		out, err := api.ListCloudFrontOriginAccessIdentities(ctx, &cfv2.ListCloudFrontOriginAccessIdentitiesInput{
			Marker: marker,
		})
		if err != nil {
			return "", fmt.Errorf("failed to list origin access identities: %w", err)
		}

		if out.CloudFrontOriginAccessIdentityList != nil {
			for _, item := range out.CloudFrontOriginAccessIdentityList.Items {
				if awsv2.ToString(item.Comment) == comment {
					log.Debugf("oai exists: id=%s", awsv2.ToString(item.Id))
					return awsv2.ToString(item.Id), nil
				}
			}
			if awsv2.ToBool(out.CloudFrontOriginAccessIdentityList.IsTruncated) {
				marker = out.CloudFrontOriginAccessIdentityList.NextMarker
				continue
			}
		}
		break
	}

	created, err := api.CreateCloudFrontOriginAccessIdentity(ctx, &cfv2.CreateCloudFrontOriginAccessIdentityInput{
		CloudFrontOriginAccessIdentityConfig: &cftypes.CloudFrontOriginAccessIdentityConfig{
			CallerReference: awsv2.String(comment),
			Comment:         awsv2.String(comment),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create origin access identity %q: %w", comment, err)
	}
	return awsv2.ToString(created.CloudFrontOriginAccessIdentity.Id), nil
}

// DeleteOriginAccessIdentity removes the OAI by id. CloudFront requires the
// current ETag as a precondition.
func DeleteOriginAccessIdentity(ctx context.Context, api CloudFrontAPI, id string) error {
	got, err := api.GetCloudFrontOriginAccessIdentity(ctx, &cfv2.GetCloudFrontOriginAccessIdentityInput{
		Id: awsv2.String(id),
	})
	if err != nil {
		return fmt.Errorf("failed to get origin access identity %s: %w", id, err)
	}

	_, err = api.DeleteCloudFrontOriginAccessIdentity(ctx, &cfv2.DeleteCloudFrontOriginAccessIdentityInput{
		Id:      awsv2.String(id),
		IfMatch: got.ETag,
	})
	if err != nil {
		return fmt.Errorf("failed to delete origin access identity %s: %w", id, err)
	}
	return nil
}
