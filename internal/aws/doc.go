// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws is the typed client layer over the AWS SDK. Each service file
// holds thin call-and-check wrappers around one or two API operations; the
// only retry behavior anywhere is the explicit bounded availability polling
// in the snapshot and ENI workflows.
package aws
