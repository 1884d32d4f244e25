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

package option

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	exterrors "github.com/NVIDIA/extensible/pkg/errors"
)

var (
	trueValues  = []string{"1", "true", "yes", "on"}
	falseValues = []string{"0", "false", "no", "off"}
)

// Type is the declared data type of an option.
type Type string

const (
	TypeString Type = "string"
	TypeInt    Type = "int"
	TypeBool   Type = "bool"
	TypeFloat  Type = "float"
)

// Types lists the supported option types.
func Types() []Type {
	return []Type{TypeString, TypeInt, TypeBool, TypeFloat}
}

// ParseType converts a type name ("str" is accepted for string).
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "string", "str", "":
		return TypeString, nil
	case "int", "integer":
		return TypeInt, nil
	case "bool", "boolean":
		return TypeBool, nil
	case "float", "number":
		return TypeFloat, nil
	default:
		return "", unknownType(s)
	}
}

func unknownType(t string) error {
	supported := Types()
	names := make([]string, len(supported))
	for i, st := range supported {
		names[i] = string(st)
	}
	return exterrors.NewWithContext(exterrors.ErrCodeInternal,
		fmt.Sprintf("unknown option value type %q, expected one of %s", t, strings.Join(names, ", ")),
		map[string]any{
			exterrors.ContextKeyType: t,
			"supported":              names,
		})
}

// IntRange returns a check accepting integers between lo and hi inclusive.
func IntRange(lo, hi int64) func(Value) error {
	return func(v Value) error {
		if v.kind == KindInt && v.i >= lo && v.i <= hi {
			return nil
		}
		return exterrors.NewWithContext(exterrors.ErrCodeInvalidValue,
			fmt.Sprintf("%s is not between %d and %d", v, lo, hi),
			map[string]any{
				exterrors.ContextKeyValue: v.String(),
				exterrors.ContextKeyType:  string(TypeInt),
			})
	}
}

// Cast converts v to the given option type.
func Cast(v Value, t Type) (Value, error) {
	switch t {
	case TypeString:
		return ToString(v)
	case TypeInt:
		return ToInt(v)
	case TypeFloat:
		return ToFloat(v)
	case TypeBool:
		return ToBool(v)
	default:
		return Null(), unknownType(string(t))
	}
}

// ToBool converts v to KindBool.
func ToBool(v Value) (Value, error) {
	switch v.kind {
	case KindNull:
		return Null(), nil
	case KindBool:
		return v, nil
	case KindInt:
		return Bool(v.i != 0), nil
	case KindFloat:
		return Bool(v.f != 0), nil
	case KindString:
		for _, s := range trueValues {
			if v.s == s {
				return Bool(true), nil
			}
		}
		for _, s := range falseValues {
			if v.s == s {
				return Bool(false), nil
			}
		}
		return Null(), invalidValue(v.s, TypeBool, nil)
	}
	return Null(), invalidValue(v.Interface(), TypeBool, nil)
}

// ToInt converts v to KindInt. Floats truncate toward zero.
func ToInt(v Value) (Value, error) {
	switch v.kind {
	case KindNull:
		return Null(), nil
	case KindBool:
		if v.b {
			return Int(1), nil
		}
		return Int(0), nil
	case KindInt:
		return v, nil
	case KindFloat:
		return floatToInt(v.f)
	case KindString:
		i, err := strconv.ParseInt(strings.TrimSpace(v.s), 10, 64)
		if err != nil {
			return Null(), invalidValue(v.s, TypeInt, err)
		}
		return Int(i), nil
	}
	return Null(), invalidValue(v.Interface(), TypeInt, nil)
}

func floatToInt(f float64) (Value, error) {
	t := math.Trunc(f)
	if math.IsNaN(t) || t < math.MinInt64 || t >= math.MaxInt64 {
		return Null(), invalidValue(f, TypeInt, nil)
	}
	return Int(int64(t)), nil
}

// ToFloat converts v to KindFloat.
func ToFloat(v Value) (Value, error) {
	switch v.kind {
	case KindNull:
		return Null(), nil
	case KindBool:
		if v.b {
			return Float(1), nil
		}
		return Float(0), nil
	case KindInt:
		return Float(float64(v.i)), nil
	case KindFloat:
		return v, nil
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil {
			return Null(), invalidValue(v.s, TypeFloat, err)
		}
		return Float(f), nil
	}
	return Null(), invalidValue(v.Interface(), TypeFloat, nil)
}

// ToString converts v to KindString.
func ToString(v Value) (Value, error) {
	switch v.kind {
	case KindNull:
		return Null(), nil
	case KindBool:
		if v.b {
			return String("true"), nil
		}
		return String("false"), nil
	case KindInt:
		return String(strconv.FormatInt(v.i, 10)), nil
	case KindFloat:
		return String(formatFloat(v.f)), nil
	case KindString:
		return v, nil
	}
	return Null(), invalidValue(v.Interface(), TypeString, nil)
}

// formatFloat renders the shortest round-trip form. Magnitudes outside
// [1e-4, 1e16) use exponent notation and integral values keep a ".0" suffix.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	abs := math.Abs(f)
	if abs >= 1e16 || (abs != 0 && abs < 1e-4) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func invalidValue(value any, t Type, cause error) error {
	ctx := map[string]any{
		exterrors.ContextKeyValue: fmt.Sprintf("%v", value),
		exterrors.ContextKeyType:  string(t),
	}
	msg := fmt.Sprintf("cannot convert %q to %s", fmt.Sprintf("%v", value), t)
	if cause != nil {
		return exterrors.WrapWithContext(exterrors.ErrCodeInvalidValue, msg, cause, ctx)
	}
	return exterrors.NewWithContext(exterrors.ErrCodeInvalidValue, msg, ctx)
}
