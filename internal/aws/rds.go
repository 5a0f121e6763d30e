// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"errors"
	"fmt"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	rdsv2 "github.com/aws/aws-sdk-go-v2/service/rds"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"

	"github.com/awsctl/awsctl/internal/log"
)

// RDSAPI is the subset of the RDS client used by the snapshot helpers.
type RDSAPI interface {
	CreateDBSnapshot(ctx context.Context, params *rdsv2.CreateDBSnapshotInput, optFns ...func(*rdsv2.Options)) (*rdsv2.CreateDBSnapshotOutput, error)
	CopyDBSnapshot(ctx context.Context, params *rdsv2.CopyDBSnapshotInput, optFns ...func(*rdsv2.Options)) (*rdsv2.CopyDBSnapshotOutput, error)
	DeleteDBSnapshot(ctx context.Context, params *rdsv2.DeleteDBSnapshotInput, optFns ...func(*rdsv2.Options)) (*rdsv2.DeleteDBSnapshotOutput, error)
	DescribeDBSnapshots(ctx context.Context, params *rdsv2.DescribeDBSnapshotsInput, optFns ...func(*rdsv2.Options)) (*rdsv2.DescribeDBSnapshotsOutput, error)
}

// Poll bounds a fixed-interval availability wait.
type Poll struct {
	Interval    time.Duration
	MaxAttempts int
}

// DefaultPoll matches the fixed-interval waits the automation scripts used.
var DefaultPoll = Poll{Interval: 15 * time.Second, MaxAttempts: 120}

// CreateSnapshot takes a snapshot of the instance and blocks until it is
// available or the poll budget runs out.
func CreateSnapshot(ctx context.Context, api RDSAPI, instanceID, snapshotID string, poll Poll) error {
	_, err := api.CreateDBSnapshot(ctx, &rdsv2.CreateDBSnapshotInput{
		DBInstanceIdentifier: awsv2.String(instanceID),
		DBSnapshotIdentifier: awsv2.String(snapshotID),
	})
	if err != nil {
		return fmt.Errorf("failed to create snapshot %s: %w", snapshotID, err)
	}

	return waitSnapshotAvailable(ctx, api, snapshotID, poll)
}

// EncryptSnapshot replaces a plaintext snapshot with an encrypted one under
// the same identifier: copy to an encrypted temp, delete the plaintext
// original, copy back to the original identifier, delete the temp. Each step
// waits for the snapshot state to settle. A snapshot that is already
// encrypted is a no-op.
func EncryptSnapshot(ctx context.Context, api RDSAPI, snapshotID, kmsKeyID string, poll Poll) error {
	snap, err := describeSnapshot(ctx, api, snapshotID)
	if err != nil {
		return err
	}
	if awsv2.ToBool(snap.Encrypted) {
		log.Infof("snapshot %s is already encrypted", snapshotID)
		return nil
	}

	tempID := snapshotID + "-encrypted"

	log.Infof("copying %s to encrypted %s", snapshotID, tempID)
	_, err = api.CopyDBSnapshot(ctx, &rdsv2.CopyDBSnapshotInput{
		SourceDBSnapshotIdentifier: awsv2.String(snapshotID),
		TargetDBSnapshotIdentifier: awsv2.String(tempID),
		KmsKeyId:                   awsv2.String(kmsKeyID),
	})
	if err != nil {
		return fmt.Errorf("failed to copy snapshot %s: %w", snapshotID, err)
	}
	if err := waitSnapshotAvailable(ctx, api, tempID, poll); err != nil {
		return err
	}

	log.Infof("deleting plaintext snapshot %s", snapshotID)
	if _, err := api.DeleteDBSnapshot(ctx, &rdsv2.DeleteDBSnapshotInput{
		DBSnapshotIdentifier: awsv2.String(snapshotID),
	}); err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", snapshotID, err)
	}
	if err := waitSnapshotGone(ctx, api, snapshotID, poll); err != nil {
		return err
	}

	log.Infof("copying %s back to %s", tempID, snapshotID)
	_, err = api.CopyDBSnapshot(ctx, &rdsv2.CopyDBSnapshotInput{
		SourceDBSnapshotIdentifier: awsv2.String(tempID),
		TargetDBSnapshotIdentifier: awsv2.String(snapshotID),
	})
	if err != nil {
		return fmt.Errorf("failed to copy snapshot %s: %w", tempID, err)
	}
	if err := waitSnapshotAvailable(ctx, api, snapshotID, poll); err != nil {
		return err
	}

	log.Infof("deleting temp snapshot %s", tempID)
	if _, err := api.DeleteDBSnapshot(ctx, &rdsv2.DeleteDBSnapshotInput{
		DBSnapshotIdentifier: awsv2.String(tempID),
	}); err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", tempID, err)
	}

	return nil
}

func describeSnapshot(ctx context.Context, api RDSAPI, snapshotID string) (*rdstypes.DBSnapshot, error) {
	out, err := api.DescribeDBSnapshots(ctx, &rdsv2.DescribeDBSnapshotsInput{
		DBSnapshotIdentifier: awsv2.String(snapshotID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe snapshot %s: %w", snapshotID, err)
	}
	if len(out.DBSnapshots) == 0 {
		return nil, fmt.Errorf("snapshot %s not found", snapshotID)
	}
	return &out.DBSnapshots[0], nil
}

// waitSnapshotAvailable polls at a fixed interval until the snapshot reaches
// "available". The first describe happens before any state comparison, so
// the loop never acts on uninitialized state. A "failed" or "error" status
// is terminal.
func waitSnapshotAvailable(ctx context.Context, api RDSAPI, snapshotID string, poll Poll) error {
	for attempt := 1; ; attempt++ {
		snap, err := describeSnapshot(ctx, api, snapshotID)
		if err != nil {
			return err
		}

		status := awsv2.ToString(snap.Status)
		log.Debugf("snapshot status: id=%s status=%s attempt=%d", snapshotID, status, attempt)

		switch status {
		case "available":
			return nil
		case "failed", "error":
			return fmt.Errorf("snapshot %s entered terminal status %q", snapshotID, status)
		}

		if attempt >= poll.MaxAttempts {
			return fmt.Errorf("snapshot %s not available after %d attempts", snapshotID, attempt)
		}
		if err := sleep(ctx, poll.Interval); err != nil {
			return err
		}
	}
}

// waitSnapshotGone polls until the snapshot no longer exists.
func waitSnapshotGone(ctx context.Context, api RDSAPI, snapshotID string, poll Poll) error {
	for attempt := 1; ; attempt++ {
		out, err := api.DescribeDBSnapshots(ctx, &rdsv2.DescribeDBSnapshotsInput{
			DBSnapshotIdentifier: awsv2.String(snapshotID),
		})
		if err != nil {
			var nf *rdstypes.DBSnapshotNotFoundFault
			if errors.As(err, &nf) {
				return nil
			}
			return fmt.Errorf("failed to describe snapshot %s: %w", snapshotID, err)
		}
		if len(out.DBSnapshots) == 0 {
			return nil
		}

		log.Debugf("snapshot still present: id=%s attempt=%d", snapshotID, attempt)
		if attempt >= poll.MaxAttempts {
			return fmt.Errorf("snapshot %s still present after %d attempts", snapshotID, attempt)
		}
		if err := sleep(ctx, poll.Interval); err != nil {
			return err
		}
	}
}

// sleep blocks for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
