// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"reflect"
	"strings"
	"testing"
)

func TestHandleNakedCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "no command gets help",
			args:     []string{"awsctl"},
			expected: []string{"awsctl", "--help"},
		},
		{
			name:     "command present unchanged",
			args:     []string{"awsctl", "s3"},
			expected: []string{"awsctl", "s3"},
		},
		{
			name:     "command with flags unchanged",
			args:     []string{"awsctl", "rand", "--length", "16"},
			expected: []string{"awsctl", "rand", "--length", "16"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := handleNakedCommand(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("handleNakedCommand(%v) = %v, want %v", tt.args, result, tt.expected)
			}
		})
	}
}

func TestHandleVersion(t *testing.T) {
	if handleVersion([]string{"awsctl", "s3", "ls"}) {
		t.Error("handleVersion() = true without --version")
	}
	if !handleVersion([]string{"awsctl", "--version"}) {
		t.Error("handleVersion() = false with --version")
	}
	if !handleVersion([]string{"awsctl", "-v"}) {
		t.Error("handleVersion() = false with -v")
	}
}

func TestInjectConfigSet(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		insertIdx int
		configVal []string
		expected  []string
	}{
		{
			name:      "empty config returns args unchanged",
			args:      []string{"awsctl", "eni", "release"},
			insertIdx: 2,
			configVal: nil,
			expected:  []string{"awsctl", "eni", "release"},
		},
		{
			name:      "single entry injected",
			args:      []string{"awsctl", "eni", "release"},
			insertIdx: 2,
			configVal: []string{"--region us-east-1"},
			expected:  []string{"awsctl", "eni", "--region", "us-east-1", "release"},
		},
		{
			name:      "multiple entries",
			args:      []string{"awsctl", "s3"},
			insertIdx: 2,
			configVal: []string{"--output json", "--profile ops"},
			expected:  []string{"awsctl", "s3", "--output", "json", "--profile", "ops"},
		},
		{
			name:      "insert at index 3",
			args:      []string{"awsctl", "s3", "ls", "--bucket", "b"},
			insertIdx: 3,
			configVal: []string{"--prefix logs/"},
			expected:  []string{"awsctl", "s3", "ls", "--prefix", "logs/", "--bucket", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := injectConfigSetTestable(tt.args, tt.configVal, tt.insertIdx)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("injectConfigSet() = %v, want %v", result, tt.expected)
			}
		})
	}
}

// injectConfigSetTestable mirrors the @set expansion in processSetOnly but
// accepts config values directly instead of reading from global config.
func injectConfigSetTestable(args []string, entries []string, insertIdx int) []string {
	if len(entries) == 0 {
		return args
	}

	var expanded []string
	for _, entry := range entries {
		expanded = append(expanded, strings.Fields(entry)...)
	}

	return append(args[:insertIdx], append(expanded, args[insertIdx:]...)...)
}
