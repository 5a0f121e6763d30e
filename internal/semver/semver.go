// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package semver compares version strings. Parsing is delegated to
// hashicorp/go-version, which accepts plain x.y.z with optional prerelease.
package semver

import (
	"fmt"

	goversion "github.com/hashicorp/go-version"
)

// Compare returns -1 when a < b, 0 when equal, 1 when a > b. Errors on
// either input failing to parse as a version.
func Compare(a, b string) (int, error) {
	va, err := goversion.NewVersion(a)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", a, err)
	}
	vb, err := goversion.NewVersion(b)
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", b, err)
	}
	return va.Compare(vb), nil
}

// AtLeast reports whether v is min or newer.
func AtLeast(v, min string) (bool, error) {
	c, err := Compare(v, min)
	if err != nil {
		return false, err
	}
	return c >= 0, nil
}
