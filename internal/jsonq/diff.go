// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package jsonq

import (
	"encoding/json"
	"fmt"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// Diff structurally compares two JSON documents. Returns the rendered diff
// and whether the documents differ. An empty diff with modified=false means
// the documents are identical.
func Diff(a, b []byte, coloring bool) (string, bool, error) {
	differ := gojsondiff.New()

	delta, err := differ.Compare(a, b)
	if err != nil {
		return "", false, fmt.Errorf("failed to compare documents: %w", err)
	}

	if !delta.Modified() {
		return "", false, nil
	}

	var jdoc map[string]interface{}
	if err := json.Unmarshal(a, &jdoc); err != nil {
		return "", false, fmt.Errorf("failed to unmarshal left document: %w", err)
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       coloring,
	}

	f := formatter.NewAsciiFormatter(jdoc, config)
	diffString, err := f.Format(delta)
	if err != nil {
		return "", false, err
	}

	return diffString, true, nil
}
