package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInternal, "unknown extension")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if err.Message != "unknown extension" {
		t.Errorf("expected message 'unknown extension', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("strconv.ParseInt: parsing \"ten\": invalid syntax")
	ctx := map[string]any{
		ContextKeyValue: "ten",
		ContextKeyType:  "int",
	}

	err := WrapWithContext(ErrCodeInvalidValue, "cannot convert to int", cause, ctx)

	if err.Code != ErrCodeInvalidValue {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidValue, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
	if err.Context[ContextKeyValue] != "ten" {
		t.Errorf("expected value context to be ten")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeUnknownOptions, "unknown options: y"),
			expected: "[UNKNOWN_OPTIONS] unknown options: y",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"plain", errors.New("x"), ""},
		{"direct", New(ErrCodeOptionRequired, "x"), ErrCodeOptionRequired},
		{"fmt wrapped", fmt.Errorf("outer: %w", New(ErrCodeNotFound, "x")), ErrCodeNotFound},
		{"outermost wins", Wrap(ErrCodeInternal, "outer", New(ErrCodeInvalidValue, "inner")), ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := Wrap(ErrCodeInternal, "loading extension", New(ErrCodeInvalidValue, "bad"))

	if !Is(err, ErrCodeInternal) {
		t.Error("expected outer code to match")
	}
	if !Is(err, ErrCodeInvalidValue) {
		t.Error("expected inner code to match")
	}
	if Is(err, ErrCodeNotFound) {
		t.Error("unexpected match for NOT_FOUND")
	}
	if Is(nil, ErrCodeInternal) {
		t.Error("nil must not match")
	}
}

func TestIsConfiguration(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want bool
	}{
		{ErrCodeConfiguration, true},
		{ErrCodeOptionRequired, true},
		{ErrCodeUnknownOptions, true},
		{ErrCodeInvalidValue, false},
		{ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := IsConfiguration(New(tt.code, "x")); got != tt.want {
				t.Errorf("IsConfiguration(%s) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeInternal,
		ErrCodeConfiguration,
		ErrCodeOptionRequired,
		ErrCodeUnknownOptions,
		ErrCodeInvalidValue,
		ErrCodeNotFound,
		ErrCodeTimeout,
		ErrCodeInvalidRequest,
		ErrCodeUnavailable,
	}

	seen := make(map[ErrorCode]bool)
	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
		if seen[code] {
			t.Errorf("duplicate error code: %v", code)
		}
		seen[code] = true
	}
}
