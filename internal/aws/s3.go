// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/awsctl/awsctl/internal/log"
)

// ObjectInfo describes one listed S3 object.
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// EnsureBucket creates the bucket when absent. Returns true when it was
// created. Regions other than us-east-1 need an explicit location
// constraint.
func EnsureBucket(ctx context.Context, client *s3v2.Client, bucket, region string) (bool, error) {
	_, err := client.HeadBucket(ctx, &s3v2.HeadBucketInput{Bucket: awsv2.String(bucket)})
	if err == nil {
		log.Debugf("bucket exists: bucket=%s", bucket)
		return false, nil
	}

	input := &s3v2.CreateBucketInput{Bucket: awsv2.String(bucket)}
	if region != "" && region != "us-east-1" {
		input.CreateBucketConfiguration = &s3types.CreateBucketConfiguration{
			LocationConstraint: s3types.BucketLocationConstraint(region),
		}
	}

	if _, err := client.CreateBucket(ctx, input); err != nil {
		return false, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
	}
	return true, nil
}

// Upload puts a local file at the given key.
func Upload(ctx context.Context, client *s3v2.Client, bucket, key, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer f.Close()

	_, err = client.PutObject(ctx, &s3v2.PutObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
		Body:   f,
	})
	if err != nil {
		return fmt.Errorf("failed to put s3://%s/%s: %w", bucket, key, err)
	}
	return nil
}

// Download writes the object at the given key to a local file.
func Download(ctx context.Context, client *s3v2.Client, bucket, key, file string) error {
	obj, err := client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to get s3://%s/%s: %w", bucket, key, err)
	}
	defer obj.Body.Close()

	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, obj.Body); err != nil {
		return fmt.Errorf("failed to write %s: %w", file, err)
	}
	return nil
}

// List returns the objects under prefix, paginating through the full result.
func List(ctx context.Context, client *s3v2.Client, bucket, prefix string) ([]ObjectInfo, error) {
	paginator := s3v2.NewListObjectsV2Paginator(client, &s3v2.ListObjectsV2Input{
		Bucket: awsv2.String(bucket),
		Prefix: awsv2.String(prefix),
	})

	var objects []ObjectInfo
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list s3://%s/%s: %w", bucket, prefix, err)
		}
		for _, o := range page.Contents {
			// Guard against nil pointers
			if o.Key == nil {
				continue
			}
			info := ObjectInfo{Key: *o.Key}
			if o.Size != nil {
				info.Size = *o.Size
			}
			if o.LastModified != nil {
				info.LastModified = *o.LastModified
			}
			objects = append(objects, info)
		}
	}

	return objects, nil
}
