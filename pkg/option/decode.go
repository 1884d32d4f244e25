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
	"reflect"

	exterrors "github.com/NVIDIA/extensible/pkg/errors"
)

// TagName is the struct tag read by Decode.
const TagName = "option"

var valueType = reflect.TypeOf(Value{})

// Decode assigns values to the fields of the struct pointed to by target.
// Fields are selected by the option tag and matched case-insensitively;
// untagged fields and fields tagged "-" are left alone. Each value is coerced
// to the field's kind. Null values leave the field unchanged.
//
//	type printerConfig struct {
//	    Indent int `option:"indent"`
//	}
func (vs Values) Decode(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return exterrors.New(exterrors.ErrCodeInternal,
			fmt.Sprintf("decode target must be a non-nil struct pointer, got %T", target))
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		tag, ok := field.Tag.Lookup(TagName)
		if !ok || tag == "-" || !field.IsExported() {
			continue
		}
		v, found := vs.Get(tag)
		if !found || v.IsNull() {
			continue
		}
		if err := assign(rv.Field(i), v); err != nil {
			return exterrors.WrapWithContext(exterrors.CodeOf(err),
				fmt.Sprintf("cannot decode option '%s' into field %s", tag, field.Name), err,
				map[string]any{exterrors.ContextKeyOption: tag})
		}
	}
	return nil
}

func assign(dst reflect.Value, v Value) error {
	if dst.Type() == valueType {
		dst.Set(reflect.ValueOf(v))
		return nil
	}

	switch dst.Kind() {
	case reflect.Pointer:
		elem := reflect.New(dst.Type().Elem())
		if err := assign(elem.Elem(), v); err != nil {
			return err
		}
		dst.Set(elem)
	case reflect.String:
		s, err := ToString(v)
		if err != nil {
			return err
		}
		dst.SetString(s.s)
	case reflect.Bool:
		b, err := ToBool(v)
		if err != nil {
			return err
		}
		dst.SetBool(b.b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := ToInt(v)
		if err != nil {
			return err
		}
		if dst.OverflowInt(n.i) {
			return invalidValue(n.i, TypeInt, nil)
		}
		dst.SetInt(n.i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := ToInt(v)
		if err != nil {
			return err
		}
		if n.i < 0 || dst.OverflowUint(uint64(n.i)) {
			return invalidValue(n.i, TypeInt, nil)
		}
		dst.SetUint(uint64(n.i))
	case reflect.Float32, reflect.Float64:
		f, err := ToFloat(v)
		if err != nil {
			return err
		}
		if dst.Kind() == reflect.Float32 && !math.IsInf(f.f, 0) && dst.OverflowFloat(f.f) {
			return invalidValue(f.f, TypeFloat, nil)
		}
		dst.SetFloat(f.f)
	default:
		return exterrors.NewWithContext(exterrors.ErrCodeInternal,
			fmt.Sprintf("unsupported field type %s", dst.Type()),
			map[string]any{exterrors.ContextKeyType: dst.Type().String()})
	}
	return nil
}
