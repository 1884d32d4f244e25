package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	exterrors "github.com/NVIDIA/extensible/pkg/errors"
)

func testOptions() []Option {
	return []Option{
		New("name", Required()),
		New("indent", WithType(TypeInt), WithDefault(Int(4))),
		New("Verbose", WithType(TypeBool)),
		New("ratio", WithType(TypeFloat), WithDefault(String("0.5"))),
	}
}

func TestOptionDefaults(t *testing.T) {
	o := New("color")
	assert.Equal(t, "color", o.Name())
	assert.Equal(t, TypeString, o.Type())
	assert.Equal(t, "color", o.Label())
	assert.True(t, o.Default().IsNull())
	assert.False(t, o.IsRequired())
	assert.Empty(t, o.Description())

	o = New("color", WithLabel("Color"), WithDescription("output color"), WithType(""))
	assert.Equal(t, "Color", o.Label())
	assert.Equal(t, "output color", o.Description())
	assert.Equal(t, TypeString, o.Type())
}

func TestNewDict(t *testing.T) {
	tests := []struct {
		name     string
		raw      Values
		wantCode exterrors.ErrorCode
		wantMsg  string
		wantKeys []string
	}{
		{
			name:     "required and defaults",
			raw:      Values{"name": String("x")},
			wantKeys: []string{"indent", "name", "ratio"},
		},
		{
			name:     "all supplied",
			raw:      Values{"name": String("x"), "indent": Int(2), "verbose": Bool(true), "ratio": Float(1)},
			wantKeys: []string{"indent", "name", "ratio", "verbose"},
		},
		{
			name:     "missing required",
			raw:      Values{"indent": Int(2)},
			wantCode: exterrors.ErrCodeOptionRequired,
			wantMsg:  "option 'name' is required",
		},
		{
			name:     "unknown keys sorted",
			raw:      Values{"name": String("x"), "zeta": Int(1), "alpha": Int(2)},
			wantCode: exterrors.ErrCodeUnknownOptions,
			wantMsg:  "unknown options: alpha, zeta",
		},
		{
			name:     "unknown key compared case-insensitively",
			raw:      Values{"NAME": String("x"), "VERBOSE": Bool(true)},
			wantKeys: []string{"indent", "name", "ratio", "verbose"},
		},
		{
			name:     "ambiguous case",
			raw:      Values{"name": String("x"), "Name": String("y")},
			wantCode: exterrors.ErrCodeConfiguration,
			wantMsg:  "ambiguous options: Name, name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDict(tt.raw, testOptions())
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Nil(t, d)
				assert.Equal(t, tt.wantCode, exterrors.CodeOf(err))
				assert.Contains(t, err.Error(), tt.wantMsg)
				assert.True(t, exterrors.IsConfiguration(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKeys, d.Keys())
			assert.Equal(t, len(tt.wantKeys), d.Len())
		})
	}
}

func TestNewDictDuplicateOption(t *testing.T) {
	_, err := NewDict(Values{}, []Option{New("a"), New("A")})
	require.Error(t, err)
	assert.Equal(t, exterrors.ErrCodeInternal, exterrors.CodeOf(err))
}

func TestRequiredIgnoresDefault(t *testing.T) {
	opts := []Option{New("a", Required(), WithDefault(String("fallback")))}
	_, err := NewDict(Values{}, opts)
	require.Error(t, err)
	assert.Equal(t, exterrors.ErrCodeOptionRequired, exterrors.CodeOf(err))
}

func TestDictRoundTrip(t *testing.T) {
	raw := Values{"name": String("x"), "indent": String("8"), "verbose": String("yes"), "ratio": Int(2)}
	d, err := NewDict(raw, testOptions())
	require.NoError(t, err)

	for k, v := range raw {
		got, ok := d.Get(k)
		require.True(t, ok, k)
		assert.True(t, v.Equal(got), "key %s: got %v, want %v", k, got, v)
	}
}

func TestDictCaseInsensitiveLookup(t *testing.T) {
	d, err := NewDict(Values{"Name": String("x"), "InDeNt": Int(8)}, testOptions())
	require.NoError(t, err)

	for _, key := range []string{"name", "NAME", "Name"} {
		v, ok := d.Get(key)
		assert.True(t, ok)
		assert.True(t, String("x").Equal(v))
	}

	n, ok, err := d.GetInt("INDENT", Null())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(8), n)

	opt, ok := d.Option("VERBOSE")
	assert.True(t, ok)
	assert.Equal(t, "Verbose", opt.Name())
}

func TestDictTypedGetters(t *testing.T) {
	d, err := NewDict(Values{"name": Int(12), "verbose": String("off")}, testOptions())
	require.NoError(t, err)

	s, ok, err := d.GetString("name", Null())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "12", s)

	b, ok, err := d.GetBool("verbose", Null())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, b)

	f, ok, err := d.GetFloat("ratio", Null())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0.5, f)

	// absent key falls back to the supplied default
	f, ok, err = d.GetFloat("missing", Int(3))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)

	// absent key with null default reports not ok
	_, ok, err = d.GetString("missing", Null())
	require.NoError(t, err)
	assert.False(t, ok)

	n, _, err := d.GetInt("name", Null())
	require.NoError(t, err)
	assert.Equal(t, int64(12), n)

	_, _, err = d.GetInt("verbose", Null())
	require.Error(t, err)
	assert.Equal(t, exterrors.ErrCodeInvalidValue, exterrors.CodeOf(err))
}

func TestDictCasted(t *testing.T) {
	d, err := NewDict(Values{"name": Int(7), "indent": String("10"), "verbose": String("1")}, testOptions())
	require.NoError(t, err)

	casted, err := d.Casted()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"name":    "7",
		"indent":  int64(10),
		"verbose": true,
		"ratio":   0.5,
	}, casted.Map())

	d, err = NewDict(Values{"name": String("x"), "indent": String("ten")}, testOptions())
	require.NoError(t, err)
	_, err = d.Casted()
	require.Error(t, err)
	assert.Equal(t, exterrors.ErrCodeInvalidValue, exterrors.CodeOf(err))
	assert.Contains(t, err.Error(), "indent")
}

func TestDictImmutable(t *testing.T) {
	d, err := NewDict(Values{"name": String("x")}, testOptions())
	require.NoError(t, err)

	err = d.Set("name", String("y"))
	require.Error(t, err)
	assert.Equal(t, exterrors.ErrCodeInternal, exterrors.CodeOf(err))

	v, _ := d.Get("name")
	assert.True(t, String("x").Equal(v))
}

func TestDictOptionsOrder(t *testing.T) {
	d, err := NewDict(Values{"name": String("x")}, testOptions())
	require.NoError(t, err)

	var names []string
	for _, o := range d.Options() {
		names = append(names, o.Name())
	}
	assert.Equal(t, []string{"name", "indent", "Verbose", "ratio"}, names)
}

func TestValuesOf(t *testing.T) {
	vs, err := ValuesOf(map[string]any{"a": "x", "b": 2, "c": nil})
	require.NoError(t, err)
	assert.True(t, String("x").Equal(vs["a"]))
	assert.True(t, Int(2).Equal(vs["b"]))
	assert.True(t, vs["c"].IsNull())
	assert.Equal(t, []string{"a", "b", "c"}, vs.Keys())

	_, err = ValuesOf(map[string]any{"nested": map[string]any{}})
	require.Error(t, err)
	assert.Equal(t, exterrors.ErrCodeInvalidValue, exterrors.CodeOf(err))
}

func TestOptionSpecJSON(t *testing.T) {
	o := New("indent", WithType(TypeInt), WithDefault(Int(2)), WithDescription("spaces"))
	b, err := o.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"indent","type":"int","default":2,"label":"indent","description":"spaces","required":false}`, string(b))
}
