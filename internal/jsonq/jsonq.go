// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package jsonq provides the JSON querying, merging and wrapping operations
// the automation scripts used to shell out to an external tool for. Queries
// run in-process over gjson, so no file staging is required.
package jsonq

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"dario.cat/mergo"
	"github.com/tidwall/gjson"
)

// Drill navigates JSON using a flexible dot path supporting arrays. A path
// segment may carry an index ([2]) or a wildcard ([*]); a bare segment over a
// single-element array collapses into that element.
func Drill(jsonData string, path string) gjson.Result {
	parts := strings.Split(path, ".")
	current := gjson.Parse(jsonData)

	re := regexp.MustCompile(`^([a-zA-Z0-9_-]+)(\[(\d+|\*)?\])?$`)

	for _, p := range parts {
		matches := re.FindStringSubmatch(p)
		if len(matches) == 0 {
			return gjson.Result{} // Invalid path segment
		}

		key := matches[1]

		index := -1
		if matches[3] != "" && matches[3] != "*" {
			i, err := strconv.Atoi(matches[3])
			if err != nil {
				return gjson.Result{}
			}
			index = i
		}

		val := current.Get(key)
		if val.IsArray() {
			arr := val.Array()
			switch {
			case index == -1:
				if len(arr) == 1 {
					val = arr[0]
				}
				// Otherwise keep the whole list.
			case index >= 0 && index < len(arr):
				val = arr[index]
			default:
				return gjson.Result{}
			}
		}

		current = val
	}

	return current
}

// GetValue tries each path in order against the document and returns the
// first result that exists and is not null. Errors when every path comes up
// null or missing.
func GetValue(jsonData string, paths ...string) (gjson.Result, error) {
	for _, p := range paths {
		r := Drill(jsonData, p)
		if r.Exists() && r.Type != gjson.Null {
			return r, nil
		}
	}
	return gjson.Result{}, fmt.Errorf("no path yielded a value: %v", paths)
}

// GetValueFromFile reads the file and applies GetValue.
func GetValueFromFile(file string, paths ...string) (gjson.Result, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to read %s: %w", file, err)
	}
	return GetValue(string(data), paths...)
}

// Merge left-folds the documents in argument order with object-merge
// semantics: later documents win on key conflicts, and nested objects merge
// deeply. Zero documents yields an empty object.
func Merge(docs ...[]byte) ([]byte, error) {
	acc := map[string]interface{}{}

	for i, doc := range docs {
		var m map[string]interface{}
		if err := json.Unmarshal(doc, &m); err != nil {
			return nil, fmt.Errorf("document %d is not a JSON object: %w", i, err)
		}
		if err := mergo.Merge(&acc, m, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge document %d: %w", i, err)
		}
	}

	return json.Marshal(acc)
}

// MergeFiles reads each file and applies Merge in argument order.
func MergeFiles(files ...string) ([]byte, error) {
	docs := make([][]byte, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f, err)
		}
		docs = append(docs, data)
	}
	return Merge(docs...)
}

// WrapInAncestors nests the document in single-key objects named by keys,
// innermost key first: the last key becomes the outermost wrapper.
func WrapInAncestors(doc []byte, keys ...string) ([]byte, error) {
	var val interface{}
	if err := json.Unmarshal(doc, &val); err != nil {
		return nil, fmt.Errorf("invalid JSON document: %w", err)
	}

	for _, k := range keys {
		val = map[string]interface{}{k: val}
	}

	return json.Marshal(val)
}
