// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package strutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoin(t *testing.T) {
	tests := []struct {
		name  string
		sep   string
		items []string
		want  string
	}{
		{"zero items", ",", nil, ""},
		{"one item", ",", []string{"a"}, "a"},
		{"comma", ",", []string{"a", "b", "c"}, "a,b,c"},
		{"multi-char sep", ", ", []string{"x", "y"}, "x, y"},
		{"empty sep", "", []string{"a", "b"}, "ab"},
		{"empty items kept", ",", []string{"a", "", "b"}, "a,,b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Join(tt.sep, tt.items...))
		})
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		pattern  string
		want     bool
		wantErr  bool
	}{
		{"literal match", "hello world", "world", true, false},
		{"literal miss", "hello world", "mars", false, false},
		{"regex match", "ami-0abc123", `^ami-[0-9a-f]+`, true, false},
		{"regex anchored miss", "xami-0abc123", `^ami-`, false, false},
		{"empty pattern matches", "anything", "", true, false},
		{"empty haystack", "", "x", false, false},
		{"invalid pattern", "abc", "[", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Contains(tt.haystack, tt.pattern)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRandomString(t *testing.T) {
	for _, n := range []int{0, 1, 16, 64} {
		s, err := RandomString(n, Alphanumeric)
		require.NoError(t, err)
		assert.Len(t, s, n)
	}
}

func TestRandomString_CharsetMembership(t *testing.T) {
	s, err := RandomString(256, Alphanumeric)
	require.NoError(t, err)
	for _, r := range s {
		assert.Contains(t, alnumChars, string(r))
	}

	s, err = RandomString(256, AlphanumericPunct)
	require.NoError(t, err)
	for _, r := range s {
		assert.Contains(t, alnumChars+punctChars, string(r))
	}
}

func TestRandomString_ExcludedPunctuation(t *testing.T) {
	// These characters are troublesome in shell and URL contexts and must
	// never appear even in the punctuation charset.
	for _, c := range []string{"@", `"`, "/", "+"} {
		assert.NotContains(t, punctChars, c)
	}
}

func TestRandomString_Errors(t *testing.T) {
	_, err := RandomString(-1, Alphanumeric)
	assert.Error(t, err)

	_, err = RandomString(8, "hex")
	assert.Error(t, err)
}

func TestRandomString_Varies(t *testing.T) {
	a, err := RandomString(32, Alphanumeric)
	require.NoError(t, err)
	b, err := RandomString(32, Alphanumeric)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		seps string
		want []string
	}{
		{"spaces", "a b c", " ", []string{"a", "b", "c"}},
		{"commas", "a,b,c", ",", []string{"a", "b", "c"}},
		{"mixed separators", "a,b c", ", ", []string{"a", "b", "c"}},
		{"newlines folded in", "a\nb\nc", ",", []string{"a", "b", "c"}},
		{"consecutive separators collapse", "a,,b", ",", []string{"a", "b"}},
		{"leading and trailing", ",a,b,", ",", []string{"a", "b"}},
		{"empty input", "", ",", []string{}},
		{"only separators", ",,,", ",", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.in, tt.seps))
		})
	}
}

func TestSplitList_CommandOutput(t *testing.T) {
	out := "i-0aaa\ni-0bbb\ni-0ccc\n"
	got := SplitList(out, "\n")
	assert.Equal(t, []string{"i-0aaa", "i-0bbb", "i-0ccc"}, got)
	assert.True(t, strings.HasPrefix(got[0], "i-"))
}
