// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpit_Raw(t *testing.T) {
	var buf bytes.Buffer
	Spit(&buf, "raw", []byte(`{"a":1}`))
	assert.Equal(t, "{\"a\":1}\n", buf.String())
}

func TestSpit_RawKeepsTrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	Spit(&buf, "raw", []byte("line\n"))
	assert.Equal(t, "line\n", buf.String())
}

func TestSpit_JSON(t *testing.T) {
	var buf bytes.Buffer
	Spit(&buf, "json", []byte(`{"a":1,"b":{"c":2}}`))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Contains(t, out, "  \"a\": 1")
	assert.Contains(t, out, "    \"c\": 2")
}

func TestSpit_YAML(t *testing.T) {
	var buf bytes.Buffer
	Spit(&buf, "yaml", []byte(`{"region": "us-east-1", "count": 3}`))

	out := buf.String()
	assert.Contains(t, out, "region: us-east-1")
	assert.Contains(t, out, "count: 3")
}

func TestSpit_UnknownFormatFallsBackToRaw(t *testing.T) {
	var buf bytes.Buffer
	Spit(&buf, "xml", []byte(`{"a":1}`))
	assert.Equal(t, "{\"a\":1}\n", buf.String())
}

func TestTableWriter(t *testing.T) {
	var buf bytes.Buffer
	TableWriter(&buf, []string{"id", "status"}, [][]string{
		{"eni-1", "available"},
		{"eni-2", "in-use"},
	})

	out := buf.String()
	assert.Contains(t, out, "id")
	assert.Contains(t, out, "eni-1")
	assert.Contains(t, out, "in-use")
}

func TestTableWriter_NoRowsNoOutput(t *testing.T) {
	var buf bytes.Buffer
	TableWriter(&buf, []string{"id"}, nil)
	assert.Empty(t, buf.String())
}

func TestTableWriter_NoHeaders(t *testing.T) {
	var buf bytes.Buffer
	TableWriter(&buf, nil, [][]string{{"only", "row"}})
	assert.Contains(t, buf.String(), "only")
}
