// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package strutil

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

const (
	// Alphanumeric selects [A-Za-z0-9].
	Alphanumeric = "alphanumeric"
	// AlphanumericPunct adds punctuation, minus the characters that are
	// awkward in shell and URL contexts (@ " / +).
	AlphanumericPunct = "alphanumeric+punctuation"
)

const alnumChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const punctChars = "!#$%&'()*,-.:;<=>?[\\]^_`{|}~"

// Join concatenates items with sep between each. Zero items yields "".
func Join(sep string, items ...string) string {
	return strings.Join(items, sep)
}

// Contains reports whether pattern, treated as a regular expression, matches
// anywhere in haystack.
func Contains(haystack, pattern string) (bool, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return re.MatchString(haystack), nil
}

// RandomString produces exactly n characters drawn from the named charset,
// read from the crypto/rand source.
func RandomString(n int, charset string) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("length must be non-negative, got %d", n)
	}

	var chars string
	switch charset {
	case Alphanumeric:
		chars = alnumChars
	case AlphanumericPunct:
		chars = alnumChars + punctChars
	default:
		return "", fmt.Errorf("unknown charset %q", charset)
	}

	max := big.NewInt(int64(len(chars)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random source: %w", err)
		}
		out[i] = chars[idx.Int64()]
	}

	return string(out), nil
}

// SplitList splits s into fields, treating each character in separators as a
// delimiter. Newlines from multi-line input are folded into the separator set
// first. Empty fields are dropped.
func SplitList(s, separators string) []string {
	if !strings.ContainsAny(separators, "\n") {
		separators += "\n"
	}

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})

	// FieldsFunc never yields empties, but keep the result non-nil for
	// callers that range and compare.
	if fields == nil {
		fields = []string{}
	}
	return fields
}
