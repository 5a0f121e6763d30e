// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// no-cloc
package jsonq

import (
	"embed"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// drillTestCase represents a single test case for TestDrill.
type drillTestCase struct {
	Name        string                 `yaml:"name"`
	JSON        map[string]interface{} `yaml:"json"`
	Path        string                 `yaml:"path"`
	ExpectedStr string                 `yaml:"expectedStr"`
	IsNil       bool                   `yaml:"isNil"`
	IsArray     bool                   `yaml:"isArray"`
}

// loadTestData loads test data from embedded YAML files.
func loadTestData(filename string, v interface{}) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func TestDrill(t *testing.T) {
	var tests []drillTestCase
	err := loadTestData("drill_cases.yaml", &tests)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			jsonBytes, err := json.Marshal(tt.JSON)
			require.NoError(t, err)
			result := Drill(string(jsonBytes), tt.Path)

			if tt.IsNil {
				if result.Exists() && result.Type.String() != "Null" {
					t.Errorf("Expected nil/empty result but got: %v", result.Value())
				}
				return
			}

			if !result.Exists() {
				t.Errorf("Expected result but got nil/empty")
				return
			}

			if tt.IsArray {
				assert.True(t, result.IsArray(), "expected array, got %v", result.Value())
				return
			}

			assert.Equal(t, tt.ExpectedStr, result.String())
		})
	}
}

func TestGetValue(t *testing.T) {
	doc := `{"a": null, "b": {"c": "found"}, "d": 7}`

	r, err := GetValue(doc, "b.c")
	require.NoError(t, err)
	assert.Equal(t, "found", r.String())

	// First non-null path wins.
	r, err = GetValue(doc, "a", "missing", "d")
	require.NoError(t, err)
	assert.Equal(t, int64(7), r.Int())

	_, err = GetValue(doc, "a", "missing")
	assert.Error(t, err)
}

func TestGetValueFromFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "doc.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"KeyMetadata": {"Arn": "arn:aws:kms:us-east-1:123:key/abc"}}`), 0o600))

	r, err := GetValueFromFile(file, "KeyMetadata.Arn")
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:kms:us-east-1:123:key/abc", r.String())

	_, err = GetValueFromFile(filepath.Join(dir, "absent.json"), "x")
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		docs []string
		want string
	}{
		{
			name: "later document wins on conflict",
			docs: []string{`{"a": 1}`, `{"a": 2, "b": 3}`},
			want: `{"a": 2, "b": 3}`,
		},
		{
			name: "nested objects merge deeply",
			docs: []string{`{"tags": {"env": "dev", "team": "ops"}}`, `{"tags": {"env": "prod"}}`},
			want: `{"tags": {"env": "prod", "team": "ops"}}`,
		},
		{
			name: "zero documents yields empty object",
			docs: nil,
			want: `{}`,
		},
		{
			name: "single document passes through",
			docs: []string{`{"x": true}`},
			want: `{"x": true}`,
		},
		{
			name: "three documents left fold",
			docs: []string{`{"a": 1}`, `{"b": 2}`, `{"a": 9, "c": 3}`},
			want: `{"a": 9, "b": 2, "c": 3}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs := make([][]byte, 0, len(tt.docs))
			for _, d := range tt.docs {
				docs = append(docs, []byte(d))
			}
			got, err := Merge(docs...)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestMerge_RejectsNonObject(t *testing.T) {
	_, err := Merge([]byte(`[1, 2]`))
	assert.Error(t, err)

	_, err = Merge([]byte(`{"a": 1}`), []byte(`not json`))
	assert.Error(t, err)
}

func TestMergeFiles(t *testing.T) {
	dir := t.TempDir()
	f1 := filepath.Join(dir, "base.json")
	f2 := filepath.Join(dir, "override.json")
	require.NoError(t, os.WriteFile(f1, []byte(`{"region": "us-east-1", "size": "small"}`), 0o600))
	require.NoError(t, os.WriteFile(f2, []byte(`{"size": "large"}`), 0o600))

	got, err := MergeFiles(f1, f2)
	require.NoError(t, err)
	assert.JSONEq(t, `{"region": "us-east-1", "size": "large"}`, string(got))

	_, err = MergeFiles(f1, filepath.Join(dir, "absent.json"))
	assert.Error(t, err)
}

func TestWrapInAncestors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		keys []string
		want string
	}{
		{
			name: "single key",
			doc:  `{"a": 1}`,
			keys: []string{"outer"},
			want: `{"outer": {"a": 1}}`,
		},
		{
			name: "last key outermost",
			doc:  `{"a": 1}`,
			keys: []string{"inner", "outer"},
			want: `{"outer": {"inner": {"a": 1}}}`,
		},
		{
			name: "no keys passes through",
			doc:  `{"a": 1}`,
			keys: nil,
			want: `{"a": 1}`,
		},
		{
			name: "scalar document",
			doc:  `42`,
			keys: []string{"count"},
			want: `{"count": 42}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WrapInAncestors([]byte(tt.doc), tt.keys...)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestWrapInAncestors_InvalidJSON(t *testing.T) {
	_, err := WrapInAncestors([]byte(`{`), "k")
	assert.Error(t, err)
}
