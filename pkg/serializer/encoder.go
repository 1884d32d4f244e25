// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/extensible/pkg/extensible"
	"github.com/NVIDIA/extensible/pkg/option"
)

const defaultValueKey = "value"

type jsonEncoder struct {
	Indent int `option:"indent"`
}

func (e *jsonEncoder) Encode(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	if e.Indent > 0 {
		encoder.SetIndent("", strings.Repeat(" ", e.Indent))
	}
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize to JSON: %w", err)
	}
	return nil
}

func (e *jsonEncoder) FileExtension() string { return "json" }

type yamlEncoder struct {
	Indent int `option:"indent"`
}

func (e *yamlEncoder) Encode(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(e.Indent)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to serialize to YAML: %w", err)
	}
	return encoder.Close()
}

func (e *yamlEncoder) FileExtension() string { return "yaml" }

type tableEncoder struct {
	Header  bool `option:"header"`
	Padding int  `option:"padding"`
}

func (e *tableEncoder) Encode(w io.Writer, v any) error {
	flat := make(map[string]any)
	flattenValue(flat, reflect.ValueOf(v), "")
	if len(flat) == 0 {
		_, err := fmt.Fprintln(w, "<empty>")
		return err
	}

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(w, 0, 0, e.Padding, ' ', 0)
	if e.Header {
		fmt.Fprintln(tw, "FIELD\tVALUE")
		fmt.Fprintln(tw, "-----\t-----")
	}
	for _, key := range keys {
		fmt.Fprintf(tw, "%s\t%v\n", key, flat[key])
	}
	return tw.Flush()
}

func (e *tableEncoder) FileExtension() string { return "txt" }

const (
	yamlMinIndent = 2
	yamlMaxIndent = 9
)

// indentOption declares "indent" with the widths an encoder honors.
func indentOption(desc string, lo, hi int64) option.Option {
	return option.New("indent",
		option.WithType(option.TypeInt),
		option.WithDefault(option.Int(2)),
		option.WithDescription(desc),
		option.WithCheck(option.IntRange(lo, hi)),
	)
}

var jsonExtension = &extensible.Extension[Encoder]{
	Name:    string(FormatJSON),
	Label:   "JSON",
	Desc:    "Machine-readable JSON output",
	Options: []option.Option{indentOption("spaces per nesting level, 0 for compact output", 0, math.MaxInt32)},
	New: func(v option.Values) (Encoder, error) {
		var e jsonEncoder
		if err := v.Decode(&e); err != nil {
			return nil, err
		}
		return &e, nil
	},
}

var yamlExtension = &extensible.Extension[Encoder]{
	Name:    string(FormatYAML),
	Label:   "YAML",
	Desc:    "Human-readable YAML output",
	Options: []option.Option{indentOption("spaces per nesting level, 2 to 9", yamlMinIndent, yamlMaxIndent)},
	New: func(v option.Values) (Encoder, error) {
		var e yamlEncoder
		if err := v.Decode(&e); err != nil {
			return nil, err
		}
		return &e, nil
	},
}

var tableExtension = &extensible.Extension[Encoder]{
	Name:  string(FormatTable),
	Label: "Table",
	Desc:  "Flattened FIELD/VALUE table output",
	Options: []option.Option{
		option.New("header",
			option.WithType(option.TypeBool),
			option.WithDefault(option.Bool(true)),
			option.WithDescription("print the column header"),
		),
		option.New("padding",
			option.WithType(option.TypeInt),
			option.WithDefault(option.Int(2)),
			option.WithDescription("spaces between columns"),
			option.WithCheck(option.IntRange(0, math.MaxInt32)),
		),
	},
	New: func(v option.Values) (Encoder, error) {
		var e tableEncoder
		if err := v.Decode(&e); err != nil {
			return nil, err
		}
		return &e, nil
	},
}

func flattenValue(out map[string]any, val reflect.Value, prefix string) {
	if !val.IsValid() {
		return
	}

	for val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		if val.IsNil() {
			if prefix != "" {
				out[prefix] = nil
			}
			return
		}
		val = val.Elem()
	}

	if opt, ok := val.Interface().(option.Option); ok {
		flattenValue(out, reflect.ValueOf(opt.Spec()), prefix)
		return
	}

	if ov, ok := val.Interface().(option.Value); ok {
		if prefix == "" {
			prefix = defaultValueKey
		}
		out[prefix] = ov.Interface()
		return
	}

	//nolint:exhaustive // common kinds are handled explicitly; the rest are leaves
	switch val.Kind() {
	case reflect.Struct:
		typ := val.Type()
		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			flattenValue(out, val.Field(i), joinKey(prefix, field.Name))
		}
	case reflect.Map:
		for _, mapKey := range val.MapKeys() {
			key := joinKey(prefix, fmt.Sprintf("%v", mapKey.Interface()))
			flattenValue(out, val.MapIndex(mapKey), key)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < val.Len(); i++ {
			flattenValue(out, val.Index(i), joinKey(prefix, fmt.Sprintf("[%d]", i)))
		}
	default:
		if prefix == "" {
			prefix = defaultValueKey
		}
		out[prefix] = val.Interface()
	}
}

func joinKey(prefix, suffix string) string {
	if prefix == "" {
		return suffix
	}
	if suffix == "" {
		return prefix
	}
	return prefix + "." + suffix
}
