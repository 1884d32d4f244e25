package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/extensible/pkg/errors"
	"github.com/NVIDIA/extensible/pkg/option"
)

type testConfig struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

const test1Name = "test1"

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testConfig{
		{Name: test1Name, Value: 123},
		{Name: "test2", Value: 456},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testConfig
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}
	if result[0].Name != test1Name || result[0].Value != 123 {
		t.Errorf("Unexpected data: %+v", result[0])
	}
	// default indent is two spaces
	assert.Contains(t, buf.String(), "\n    \"name\": \"test1\"")
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := []testConfig{{Name: test1Name, Value: 123}}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testConfig
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	require.Len(t, result, 1)
	assert.Equal(t, testConfig{Name: test1Name, Value: 123}, result[0])
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)
	assert.Equal(t, FormatTable, writer.Format())

	data := testConfig{Name: test1Name, Value: 7}
	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "VALUE")
	assert.Contains(t, out, "Name   test1")
	assert.Contains(t, out, "Value  7")
}

func TestWriter_UnknownFormatFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("xml"), &buf)
	assert.Equal(t, FormatJSON, writer.Format())

	require.NoError(t, writer.Serialize(context.Background(), map[string]int{"a": 1}))
	assert.JSONEq(t, `{"a":1}`, buf.String())
}

func TestNewWriterWithOptions(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		raw     option.Values
		data    any
		want    string
		wantErr errors.ErrorCode
	}{
		{
			name:   "compact json",
			format: FormatJSON,
			raw:    option.Values{"indent": option.String("0")},
			data:   map[string]int{"a": 1},
			want:   "{\"a\":1}\n",
		},
		{
			name:   "json indent is case insensitive",
			format: FormatJSON,
			raw:    option.Values{"INDENT": option.Int(1)},
			data:   map[string]int{"a": 1},
			want:   "{\n \"a\": 1\n}\n",
		},
		{
			name:   "table without header",
			format: FormatTable,
			raw:    option.Values{"header": option.String("off"), "padding": option.Int(1)},
			data:   map[string]string{"k": "v"},
			want:   "k v\n",
		},
		{
			name:    "negative indent",
			format:  FormatYAML,
			raw:     option.Values{"indent": option.Int(-1)},
			wantErr: errors.ErrCodeInvalidValue,
		},
		{
			name:   "yaml indent",
			format: FormatYAML,
			raw:    option.Values{"indent": option.String("4")},
			data:   map[string]map[string]int{"a": {"b": 1}},
			want:   "a:\n    b: 1\n",
		},
		{
			name:    "yaml indent zero",
			format:  FormatYAML,
			raw:     option.Values{"indent": option.Int(0)},
			wantErr: errors.ErrCodeInvalidValue,
		},
		{
			name:    "yaml indent one",
			format:  FormatYAML,
			raw:     option.Values{"indent": option.Int(1)},
			wantErr: errors.ErrCodeInvalidValue,
		},
		{
			name:    "yaml indent too wide",
			format:  FormatYAML,
			raw:     option.Values{"indent": option.Int(12)},
			wantErr: errors.ErrCodeInvalidValue,
		},
		{
			name:    "unknown option",
			format:  FormatJSON,
			raw:     option.Values{"color": option.Bool(true)},
			wantErr: errors.ErrCodeUnknownOptions,
		},
		{
			name:    "invalid option value",
			format:  FormatTable,
			raw:     option.Values{"header": option.String("maybe")},
			wantErr: errors.ErrCodeInvalidValue,
		},
		{
			name:    "unknown format",
			format:  Format("xml"),
			wantErr: errors.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w, err := NewWriterWithOptions(tt.format, tt.raw, &buf)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			require.NoError(t, w.Serialize(context.Background(), tt.data))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.yaml")
		s, err := NewFileWriterOrStdout(FormatYAML, path, nil)
		require.NoError(t, err)

		require.NoError(t, s.Serialize(context.Background(), testConfig{Name: "x", Value: 1}))
		closer, ok := s.(Closer)
		require.True(t, ok)
		require.NoError(t, closer.Close())
		require.NoError(t, closer.Close())

		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "name: x\nvalue: 1\n", string(b))
	})

	t.Run("stdout", func(t *testing.T) {
		s, err := NewFileWriterOrStdout(FormatJSON, "  ", nil)
		require.NoError(t, err)
		w, ok := s.(*Writer)
		require.True(t, ok)
		assert.Equal(t, os.Stdout, w.output)
	})

	t.Run("configmap", func(t *testing.T) {
		s, err := NewFileWriterOrStdout(FormatJSON, "cm://default/printer", option.Values{"indent": option.Int(0)})
		require.NoError(t, err)
		cw, ok := s.(*ConfigMapWriter)
		require.True(t, ok)
		assert.Equal(t, "default", cw.namespace)
		assert.Equal(t, "printer", cw.name)
	})

	t.Run("invalid configmap uri", func(t *testing.T) {
		_, err := NewFileWriterOrStdout(FormatJSON, "cm://only-namespace", nil)
		assert.Error(t, err)
	})

	t.Run("invalid options", func(t *testing.T) {
		_, err := NewFileWriterOrStdout(FormatJSON, "", option.Values{"indent": option.String("wide")})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidValue))
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := NewFileWriterOrStdout(FormatJSON, filepath.Join(t.TempDir(), "nope", "out.json"), nil)
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "failed to create output file"))
	})
}
