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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// FormatFromPath determines the serialization format based on file extension.
// Supported extensions:
//   - .json → FormatJSON
//   - .yaml, .yml → FormatYAML
//   - .hcl → FormatHCL
//   - .table, .txt → FormatTable
//
// Returns FormatJSON as default for unknown extensions.
// Extension matching is case-insensitive.
func FormatFromPath(filePath string) Format {
	switch strings.ToLower(path.Ext(stripQuery(filePath))) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".hcl":
		return FormatHCL
	case ".table", ".txt":
		return FormatTable
	default:
		slog.Warn("unknown file extension, defaulting to JSON", "filePath", filePath)
		return FormatJSON
	}
}

func stripQuery(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		return p[:i]
	}
	return p
}

// Reader handles deserialization of structured data from JSON, YAML and HCL.
// Close must be called to release resources when using NewFileReader.
type Reader struct {
	format Format
	name   string
	input  io.Reader
	closer io.Closer
}

// NewReader creates a new Reader for deserializing data from an io.Reader source.
// If input implements io.Closer it is closed by Reader.Close.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if !format.IsReadable() {
		return nil, fmt.Errorf("format %q does not support deserialization", format)
	}

	r := &Reader{
		format: format,
		name:   "input." + string(format),
		input:  input,
	}
	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}
	return r, nil
}

// NewFileReader creates a new Reader that reads from a file path or an
// http(s) URL. Remote documents are fetched with the default HttpReader.
func NewFileReader(ctx context.Context, format Format, filePath string) (*Reader, error) {
	if !format.IsReadable() {
		return nil, fmt.Errorf("format %q does not support deserialization", format)
	}

	if isURL(filePath) {
		data, err := NewHttpReader().ReadWithContext(ctx, filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to download remote file: %w", err)
		}
		return &Reader{
			format: format,
			name:   path.Base(stripQuery(filePath)),
			input:  bytes.NewReader(data),
		}, nil
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return &Reader{
		format: format,
		name:   filePath,
		input:  file,
		closer: file,
	}, nil
}

func isURL(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}

// Deserialize reads data from the input source and unmarshals it into v,
// which must be a pointer. HCL documents are decoded to a flat mapping and
// then assigned to v through its JSON representation.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return fmt.Errorf("reader is nil")
	}
	if r.input == nil {
		return fmt.Errorf("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		decoder := json.NewDecoder(r.input)
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil

	case FormatYAML:
		decoder := yaml.NewDecoder(r.input)
		// an empty document leaves v unchanged
		if err := decoder.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil

	case FormatHCL:
		data, err := io.ReadAll(r.input)
		if err != nil {
			return fmt.Errorf("failed to read HCL: %w", err)
		}
		doc, err := decodeHCL(data, r.name)
		if err != nil {
			return err
		}
		b, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to convert HCL document: %w", err)
		}
		if err := json.Unmarshal(b, v); err != nil {
			return fmt.Errorf("failed to decode HCL: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// Close releases any resources held by the Reader. Safe to call multiple
// times and on a nil Reader.
func (r *Reader) Close() error {
	if r == nil {
		return nil
	}
	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil
		return err
	}
	return nil
}

// FromFile reads and deserializes data from a file path or URL into type T.
// The format is determined by the file extension.
//
// Example:
//
//	opts, err := FromFile[option.Values](ctx, "printer.yaml")
func FromFile[T any](ctx context.Context, filePath string) (*T, error) {
	fileFormat := FormatFromPath(filePath)
	slog.Debug("determined file format",
		slog.String("path", filePath),
		slog.String("format", string(fileFormat)),
	)

	ser, err := NewFileReader(ctx, fileFormat, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for %q: %w", filePath, err)
	}
	defer func() {
		if closeErr := ser.Close(); closeErr != nil {
			slog.Warn("failed to close reader", "error", closeErr)
		}
	}()

	var r T
	if err := ser.Deserialize(&r); err != nil {
		return nil, fmt.Errorf("failed to deserialize object from %q: %w", filePath, err)
	}
	return &r, nil
}
