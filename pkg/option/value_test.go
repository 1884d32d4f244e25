package option

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	exterrors "github.com/NVIDIA/extensible/pkg/errors"
)

func TestValueZeroIsNull(t *testing.T) {
	var v Value
	assert.True(t, v.IsNull())
	assert.Equal(t, KindNull, v.Kind())
	assert.Nil(t, v.Interface())
	assert.Equal(t, "<null>", v.String())
}

func TestValueOf(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    Value
		wantErr bool
	}{
		{"nil", nil, Null(), false},
		{"string", "x", String("x"), false},
		{"bool", true, Bool(true), false},
		{"int", 3, Int(3), false},
		{"int32", int32(-3), Int(-3), false},
		{"uint8", uint8(7), Int(7), false},
		{"uint64 in range", uint64(9), Int(9), false},
		{"uint64 overflow", uint64(math.MaxUint64), Null(), true},
		{"float32", float32(0.5), Float(0.5), false},
		{"float64", 1.25, Float(1.25), false},
		{"json integer", json.Number("12"), Int(12), false},
		{"json float", json.Number("1.5"), Float(1.5), false},
		{"value passthrough", Int(5), Int(5), false},
		{"slice", []string{"a"}, Null(), true},
		{"map", map[string]any{}, Null(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValueOf(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, exterrors.ErrCodeInvalidValue, exterrors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestValueJSON(t *testing.T) {
	var doc map[string]Value
	require.NoError(t, json.Unmarshal([]byte(`{"a":"10","b":10,"c":1.5,"d":true,"e":null}`), &doc))

	assert.True(t, String("10").Equal(doc["a"]))
	assert.True(t, Int(10).Equal(doc["b"]))
	assert.True(t, Float(1.5).Equal(doc["c"]))
	assert.True(t, Bool(true).Equal(doc["d"]))
	assert.True(t, doc["e"].IsNull())

	out, err := json.Marshal(Values{"n": Int(4), "inf": Float(math.Inf(1))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":4,"inf":"inf"}`, string(out))
}

func TestValueYAML(t *testing.T) {
	var doc map[string]Value
	require.NoError(t, yaml.Unmarshal([]byte("a: \"10\"\nb: 10\nc: 1.5\nd: yes\n"), &doc))

	assert.True(t, String("10").Equal(doc["a"]))
	assert.True(t, Int(10).Equal(doc["b"]))
	assert.True(t, Float(1.5).Equal(doc["c"]))
	// yaml.v3 follows YAML 1.2: "yes" stays a string
	assert.True(t, String("yes").Equal(doc["d"]))

	out, err := yaml.Marshal(map[string]Value{"indent": Int(2)})
	require.NoError(t, err)
	assert.Equal(t, "indent: 2\n", string(out))
}
