// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package output renders command results as raw, json, yaml or tabular
// text per the --output flag.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"gopkg.in/yaml.v2"

	"github.com/awsctl/awsctl/internal/log"
)

// Spit writes a JSON document to w in the requested format. "raw" dumps the
// bytes untouched, "json" pretty-prints, "yaml" re-renders the document as
// YAML. Unknown formats fall back to raw.
func Spit(w io.Writer, format string, doc []byte) {
	// Default to stdout.
	if w == nil {
		w = os.Stdout
	}

	switch format {
	case "json":
		var buf bytes.Buffer
		if err := json.Indent(&buf, doc, "", "  "); err != nil {
			log.Errorf("json indent: %v", err)
			w.Write(doc)
			return
		}
		buf.WriteByte('\n')
		w.Write(buf.Bytes())
	case "yaml":
		var v interface{}
		if err := yaml.Unmarshal(doc, &v); err != nil {
			log.Errorf("yaml convert: %v", err)
			w.Write(doc)
			return
		}
		out, err := yaml.Marshal(v)
		if err != nil {
			log.Errorf("yaml marshal: %v", err)
			w.Write(doc)
			return
		}
		w.Write(out)
	default:
		w.Write(doc)
		if len(doc) > 0 && doc[len(doc)-1] != '\n' {
			fmt.Fprintln(w)
		}
	}
}

// TableWriter renders rows in tabular form. Headers may be empty, in which
// case only the rows are printed.
func TableWriter(w io.Writer, headers []string, rows [][]string) {
	if w == nil {
		w = os.Stdout
	}
	if len(rows) == 0 {
		return
	}

	var (
		headerStyle = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle   = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
	)

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle
			if row == table.HeaderRow {
				style = headerStyle
			}
			if col > 0 {
				style = style.PaddingLeft(2) //nolint:mnd
			}
			return style
		}).
		Rows(rows...)

	if len(headers) > 0 {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}
