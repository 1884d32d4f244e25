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
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/NVIDIA/extensible/pkg/option"
)

// NewEncoder instantiates the encoder registered for format with raw options.
func NewEncoder(format Format, raw option.Values) (Encoder, error) {
	return Encoders.Create(string(format), raw)
}

// Writer handles serialization of data through an encoder extension.
// Close must be called to release file handles when using NewFileWriterOrStdout.
type Writer struct {
	format  Format
	encoder Encoder
	output  io.Writer
	closer  io.Closer
}

// NewWriter creates a new Writer with the specified format and default
// encoder options. If output is nil, os.Stdout will be used.
// If format is unknown, defaults to JSON format.
func NewWriter(format Format, output io.Writer) *Writer {
	w, err := NewWriterWithOptions(format, nil, output)
	if err != nil {
		slog.Warn("unknown format, defaulting to JSON", "format", format, "error", err)
		w, _ = NewWriterWithOptions(FormatJSON, nil, output)
	}
	return w
}

// NewWriterWithOptions creates a Writer whose encoder is configured from raw.
// Unlike NewWriter it reports unknown formats and invalid options.
func NewWriterWithOptions(format Format, raw option.Values, output io.Writer) (*Writer, error) {
	enc, err := NewEncoder(format, raw)
	if err != nil {
		return nil, err
	}
	if output == nil {
		output = os.Stdout
	}
	return &Writer{
		format:  format,
		encoder: enc,
		output:  output,
	}, nil
}

// NewFileWriterOrStdout creates a Serializer for path in the given format.
// An empty path writes to stdout.
//
// Supports ConfigMap URIs in the format cm://namespace/name for Kubernetes ConfigMap output.
func NewFileWriterOrStdout(format Format, path string, raw option.Values) (Serializer, error) {
	enc, err := NewEncoder(format, raw)
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return &Writer{format: format, encoder: enc, output: os.Stdout}, nil
	}

	if strings.HasPrefix(trimmed, ConfigMapURIScheme) {
		namespace, name, err := ParseConfigMapURI(trimmed)
		if err != nil {
			return nil, err
		}
		return NewConfigMapWriter(namespace, name, format).WithEncoder(enc), nil
	}

	file, err := os.Create(trimmed)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %q: %w", trimmed, err)
	}

	return &Writer{
		format:  format,
		encoder: enc,
		output:  file,
		closer:  file,
	}, nil
}

// Format returns the format the writer encodes.
func (w *Writer) Format() Format {
	return w.format
}

// Close releases any resources associated with the Writer.
// It's safe to call Close multiple times or on stdout-based writers.
func (w *Writer) Close() error {
	if w.closer != nil {
		err := w.closer.Close()
		w.closer = nil
		return err
	}
	return nil
}

// Serialize writes v in the configured format.
// Context is provided for consistency with the Serializer interface,
// but is not actively used for file/stdout writes (which are fast and blocking).
func (w *Writer) Serialize(_ context.Context, v any) error {
	return w.encoder.Encode(w.output, v)
}
