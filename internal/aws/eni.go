// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	ec2v2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/awsctl/awsctl/internal/log"
)

// EC2API is the subset of the EC2 client used by the ENI and key pair
// helpers.
type EC2API interface {
	DescribeNetworkInterfaces(ctx context.Context, params *ec2v2.DescribeNetworkInterfacesInput, optFns ...func(*ec2v2.Options)) (*ec2v2.DescribeNetworkInterfacesOutput, error)
	DetachNetworkInterface(ctx context.Context, params *ec2v2.DetachNetworkInterfaceInput, optFns ...func(*ec2v2.Options)) (*ec2v2.DetachNetworkInterfaceOutput, error)
	DeleteNetworkInterface(ctx context.Context, params *ec2v2.DeleteNetworkInterfaceInput, optFns ...func(*ec2v2.Options)) (*ec2v2.DeleteNetworkInterfaceOutput, error)
	ImportKeyPair(ctx context.Context, params *ec2v2.ImportKeyPairInput, optFns ...func(*ec2v2.Options)) (*ec2v2.ImportKeyPairOutput, error)
}

// ReleaseInterfaces detaches and deletes every network interface created by
// the given requester. Attached interfaces are detached first and polled
// until they report available. Returns the ids of the deleted interfaces.
func ReleaseInterfaces(ctx context.Context, api EC2API, requesterID string, poll Poll) ([]string, error) {
	out, err := api.DescribeNetworkInterfaces(ctx, &ec2v2.DescribeNetworkInterfacesInput{
		Filters: []ec2types.Filter{
			{Name: awsv2.String("requester-id"), Values: []string{requesterID}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list network interfaces for %s: %w", requesterID, err)
	}

	var released []string
	for _, eni := range out.NetworkInterfaces {
		id := awsv2.ToString(eni.NetworkInterfaceId)

		if eni.Attachment != nil && eni.Attachment.AttachmentId != nil &&
			eni.Status != ec2types.NetworkInterfaceStatusAvailable {
			log.Infof("detaching %s", id)
			_, err := api.DetachNetworkInterface(ctx, &ec2v2.DetachNetworkInterfaceInput{
				AttachmentId: eni.Attachment.AttachmentId,
				Force:        awsv2.Bool(true),
			})
			if err != nil {
				return released, fmt.Errorf("failed to detach %s: %w", id, err)
			}
			if err := waitInterfaceAvailable(ctx, api, id, poll); err != nil {
				return released, err
			}
		}

		log.Infof("deleting %s", id)
		if _, err := api.DeleteNetworkInterface(ctx, &ec2v2.DeleteNetworkInterfaceInput{
			NetworkInterfaceId: awsv2.String(id),
		}); err != nil {
			return released, fmt.Errorf("failed to delete %s: %w", id, err)
		}
		released = append(released, id)
	}

	return released, nil
}

// waitInterfaceAvailable polls until the interface reports available.
func waitInterfaceAvailable(ctx context.Context, api EC2API, id string, poll Poll) error {
	for attempt := 1; ; attempt++ {
		out, err := api.DescribeNetworkInterfaces(ctx, &ec2v2.DescribeNetworkInterfacesInput{
			NetworkInterfaceIds: []string{id},
		})
		if err != nil {
			return fmt.Errorf("failed to describe %s: %w", id, err)
		}
		if len(out.NetworkInterfaces) == 0 {
			return fmt.Errorf("network interface %s not found", id)
		}

		status := out.NetworkInterfaces[0].Status
		log.Debugf("eni status: id=%s status=%s attempt=%d", id, status, attempt)
		if status == ec2types.NetworkInterfaceStatusAvailable {
			return nil
		}

		if attempt >= poll.MaxAttempts {
			return fmt.Errorf("network interface %s not available after %d attempts", id, attempt)
		}
		if err := sleep(ctx, poll.Interval); err != nil {
			return err
		}
	}
}
