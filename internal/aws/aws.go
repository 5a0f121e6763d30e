// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	cloudfrontv2 "github.com/aws/aws-sdk-go-v2/service/cloudfront"
	cognitov2 "github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	datapipelinev2 "github.com/aws/aws-sdk-go-v2/service/datapipeline"
	ec2v2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	iamv2 "github.com/aws/aws-sdk-go-v2/service/iam"
	kmsv2 "github.com/aws/aws-sdk-go-v2/service/kms"
	rdsv2 "github.com/aws/aws-sdk-go-v2/service/rds"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	snsv2 "github.com/aws/aws-sdk-go-v2/service/sns"
	ssmv2 "github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/awsctl/awsctl/internal/log"
)

// options holds optional overrides for AWS config loading.
type options struct {
	profile string
	region  string
	retryer func() awsv2.Retryer
}

// Option customizes how AWS config is loaded.
// Default behavior (no options) inherits the shell environment and shared
// config chain (AWS_PROFILE, ~/.aws/config, ~/.aws/credentials, IMDS, etc.).
type Option func(*options)

// LoadAWSConfig loads AWS SDK v2 config. By default it inherits the shell's
// AWS setup (AWS_PROFILE, shared config, env, IMDS). Options can override
// profile, region, and retryer without changing callers.
func LoadAWSConfig(ctx context.Context, opts ...Option) (awsv2.Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	log.Debugf("opts applied: profile=%s, region=%s", o.profile, o.region)

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if o.retryer != nil {
		loadOpts = append(loadOpts, config.WithRetryer(o.retryer))
	}
	log.Debugf("loadOpts built: len=%d", len(loadOpts))

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		log.Debugf("config load err: err=%v", err)
		return awsv2.Config{}, err
	}
	log.Debugf("config loaded")
	return cfg, nil
}

// WithProfile sets the shared config profile. Defaults to AWS_PROFILE/env chain.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override. Defaults to env/profile/metadata chain.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithRetryer injects a custom retryer; if not set, SDK defaults are used.
func WithRetryer(newRetryer func() awsv2.Retryer) Option {
	return func(o *options) { o.retryer = newRetryer }
}

// NewS3 constructs a v2 S3 client from the provided config. Additional
// service options can be supplied via optFns.
func NewS3(cfg awsv2.Config, optFns ...func(*s3v2.Options)) *s3v2.Client {
	return s3v2.NewFromConfig(cfg, optFns...)
}

// NewIAM constructs an IAM client.
func NewIAM(cfg awsv2.Config) *iamv2.Client {
	return iamv2.NewFromConfig(cfg)
}

// NewKMS constructs a KMS client.
func NewKMS(cfg awsv2.Config) *kmsv2.Client {
	return kmsv2.NewFromConfig(cfg)
}

// NewCognito constructs a Cognito user pool client.
func NewCognito(cfg awsv2.Config) *cognitov2.Client {
	return cognitov2.NewFromConfig(cfg)
}

// NewSNS constructs an SNS client.
func NewSNS(cfg awsv2.Config) *snsv2.Client {
	return snsv2.NewFromConfig(cfg)
}

// NewRDS constructs an RDS client.
func NewRDS(cfg awsv2.Config) *rdsv2.Client {
	return rdsv2.NewFromConfig(cfg)
}

// NewCloudFront constructs a CloudFront client.
func NewCloudFront(cfg awsv2.Config) *cloudfrontv2.Client {
	return cloudfrontv2.NewFromConfig(cfg)
}

// NewEC2 constructs an EC2 client.
func NewEC2(cfg awsv2.Config) *ec2v2.Client {
	return ec2v2.NewFromConfig(cfg)
}

// NewSSM constructs an SSM client.
func NewSSM(cfg awsv2.Config) *ssmv2.Client {
	return ssmv2.NewFromConfig(cfg)
}

// NewELBV2 constructs an ELBv2 client.
func NewELBV2(cfg awsv2.Config) *elbv2.Client {
	return elbv2.NewFromConfig(cfg)
}

// NewDataPipeline constructs a Data Pipeline client.
func NewDataPipeline(cfg awsv2.Config) *datapipelinev2.Client {
	return datapipelinev2.NewFromConfig(cfg)
}

// WithS3EndpointResolver allows callers to set the S3 EndpointResolverV2
// in a type-safe way when constructing the client.
func WithS3EndpointResolver(r s3v2.EndpointResolverV2) func(*s3v2.Options) {
	return func(o *s3v2.Options) {
		o.EndpointResolverV2 = r
	}
}
