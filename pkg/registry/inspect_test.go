package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	exterrors "github.com/NVIDIA/extensible/pkg/errors"
	"github.com/NVIDIA/extensible/pkg/option"
)

func TestResolveAndValidate(t *testing.T) {
	const point = "inspect-test-printer"

	c := Get(point)
	c.MustRegister("pretty", &mockExtension{
		point: point,
		name:  "pretty",
		opts: []option.Option{
			option.New("indent", option.WithType(option.TypeInt), option.WithDefault(option.Int(4))),
			option.New("style", option.Required()),
		},
	})
	c.RegisterLazy("broken", "inspect-test/missing-unit")

	t.Run("summaries include the point", func(t *testing.T) {
		var found *Summary
		for _, s := range Summaries() {
			if s.Type == point {
				found = &s
				break
			}
		}
		require.NotNil(t, found)
		assert.Equal(t, []string{"broken", "pretty"}, found.Extensions)
	})

	t.Run("resolve", func(t *testing.T) {
		cat, ext, err := Resolve(point, "pretty")
		require.NoError(t, err)
		assert.Same(t, c, cat)
		assert.Equal(t, "pretty", ext.ExtensionName())
	})

	tests := []struct {
		name  string
		point string
		ext   string
		code  exterrors.ErrorCode
	}{
		{"unknown point", "inspect-test-nothing", "pretty", exterrors.ErrCodeNotFound},
		{"unknown name", point, "ugly", exterrors.ErrCodeNotFound},
		{"failing lazy load", point, "broken", exterrors.ErrCodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Resolve(tt.point, tt.ext)
			require.Error(t, err)
			assert.True(t, exterrors.Is(err, tt.code), "got %v", err)
		})
	}

	t.Run("validate coerces", func(t *testing.T) {
		got, err := Validate(point, "pretty", option.Values{"INDENT": option.String("8"), "style": option.String("x")})
		require.NoError(t, err)
		assert.Equal(t, option.Values{"indent": option.Int(8), "style": option.String("x")}, got)
	})

	t.Run("validate reports configuration errors", func(t *testing.T) {
		_, err := Validate(point, "pretty", option.Values{})
		require.Error(t, err)
		assert.True(t, exterrors.IsConfiguration(err))

		var se *exterrors.StructuredError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, exterrors.ErrCodeOptionRequired, se.Code)
	})
}
