// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package log

import (
	"errors"
	"io"
	"os"
	"testing"

	apex "github.com/apex/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture wires the handler to pipes and returns what each stream received
// after fn runs.
func capture(t *testing.T, level Level, fn func()) (stdout, stderr string) {
	t.Helper()

	outR, outW, err := os.Pipe()
	require.NoError(t, err)
	errR, errW, err := os.Pipe()
	require.NoError(t, err)

	prev := threshold
	SetThreshold(level)
	apex.SetHandler(&CustomHandler{Stdout: outW, Stderr: errW})
	apex.SetLevel(apex.DebugLevel)
	defer SetThreshold(prev)

	fn()

	require.NoError(t, outW.Close())
	require.NoError(t, errW.Close())
	outBytes, err := io.ReadAll(outR)
	require.NoError(t, err)
	errBytes, err := io.ReadAll(errR)
	require.NoError(t, err)
	return string(outBytes), string(errBytes)
}

func TestSeverityFormat(t *testing.T) {
	stdout, stderr := capture(t, DebugLevel, func() {
		Infof("bucket %s ready", "my-bucket")
	})
	assert.Equal(t, "(Info) bucket my-bucket ready\n", stdout)
	assert.Empty(t, stderr)
}

func TestStreamRouting(t *testing.T) {
	stdout, stderr := capture(t, DebugLevel, func() {
		Debugf("below warning")
		Tracef("also below")
		Infof("still below")
		Warnf("at warning")
		Errorf("above warning")
		Fatalf("top severity")
	})

	assert.Contains(t, stdout, "(Debug) below warning\n")
	assert.Contains(t, stdout, "(Trace) also below\n")
	assert.Contains(t, stdout, "(Info) still below\n")
	assert.NotContains(t, stdout, "warning\n(")

	assert.Contains(t, stderr, "(Warning) at warning\n")
	assert.Contains(t, stderr, "(Error) above warning\n")
	assert.Contains(t, stderr, "(Fatal) top severity\n")
}

func TestThresholdFiltering(t *testing.T) {
	stdout, stderr := capture(t, WarningLevel, func() {
		Debugf("suppressed")
		Tracef("suppressed")
		Infof("suppressed")
		Errorf("emitted")
	})

	assert.Empty(t, stdout)
	assert.Equal(t, "(Error) emitted\n", stderr)
}

func TestTraceBetweenDebugAndInfo(t *testing.T) {
	// At trace threshold, debug is dropped but trace and info pass.
	stdout, _ := capture(t, TraceLevel, func() {
		Debugf("dropped")
		Tracef("kept")
		Infof("kept too")
	})

	assert.NotContains(t, stdout, "dropped")
	assert.Contains(t, stdout, "(Trace) kept\n")
	assert.Contains(t, stdout, "(Info) kept too\n")
}

func TestFatalDoesNotExit(t *testing.T) {
	// Reaching the assertion at all proves Fatalf returned.
	_, stderr := capture(t, DebugLevel, func() {
		Fatalf("unrecoverable: %s", "missing dependency")
	})
	assert.Equal(t, "(Fatal) unrecoverable: missing dependency\n", stderr)
}

func TestWithError(t *testing.T) {
	_, stderr := capture(t, DebugLevel, func() {
		WithError(errors.New("connection refused")).Error("publish failed")
	})
	assert.Contains(t, stderr, "(Error) publish failed: connection refused\n")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", DebugLevel},
		{"DEBUG", DebugLevel},
		{"trace", TraceLevel},
		{"info", InfoLevel},
		{"warn", WarningLevel},
		{"warning", WarningLevel},
		{"error", ErrorLevel},
		{"fatal", FatalLevel},
		{"", InfoLevel},
		{"bogus", InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "input %q", tt.in)
	}
}

func TestLevelOrdering(t *testing.T) {
	assert.Less(t, DebugLevel, TraceLevel)
	assert.Less(t, TraceLevel, InfoLevel)
	assert.Less(t, InfoLevel, WarningLevel)
	assert.Less(t, WarningLevel, ErrorLevel)
	assert.Less(t, ErrorLevel, FatalLevel)
}
