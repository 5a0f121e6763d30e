// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the CLI command set for awsctl. It wires flags,
// validators, actions, and per-command config namespaces.
package command
