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
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	exterrors "github.com/NVIDIA/extensible/pkg/errors"
)

// Values is a string keyed mapping of option values.
type Values map[string]Value

// ValuesOf converts a decoded mapping into Values.
func ValuesOf(raw map[string]any) (Values, error) {
	out := make(Values, len(raw))
	for k, x := range raw {
		v, err := ValueOf(x)
		if err != nil {
			return nil, exterrors.WrapWithContext(exterrors.ErrCodeInvalidValue,
				fmt.Sprintf("invalid value for option %q", k), err,
				map[string]any{exterrors.ContextKeyOption: k})
		}
		out[k] = v
	}
	return out, nil
}

// Map returns the values as plain Go values.
func (vs Values) Map() map[string]any {
	out := make(map[string]any, len(vs))
	for k, v := range vs {
		out[k] = v.Interface()
	}
	return out
}

// Keys returns the keys in sorted order.
func (vs Values) Keys() []string {
	keys := make([]string, 0, len(vs))
	for k := range vs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get looks up a key case-insensitively.
func (vs Values) Get(name string) (Value, bool) {
	if v, ok := vs[name]; ok {
		return v, true
	}
	folded := NormalizeKey(name)
	for k, v := range vs {
		if NormalizeKey(k) == folded {
			return v, true
		}
	}
	return Null(), false
}

// NormalizeKey folds an option key for case-insensitive matching.
// A Caser is stateful, so one is built per call.
func NormalizeKey(key string) string {
	return cases.Lower(language.Und).String(key)
}

// Dict is a read-only, case-insensitive view of validated option values.
type Dict struct {
	values  map[string]Value
	options map[string]Option
	order   []string
}

// NewDict validates raw against options and returns the dictionary.
// Keys are matched case-insensitively. A required option that is absent
// fails with OPTION_REQUIRED, keys matching no option fail with
// UNKNOWN_OPTIONS, and two raw keys that differ only in case fail with
// CONFIGURATION.
func NewDict(raw Values, options []Option) (*Dict, error) {
	keymap := make(map[string]string, len(raw))
	for key := range raw {
		folded := NormalizeKey(key)
		if prev, ok := keymap[folded]; ok {
			pair := []string{prev, key}
			sort.Strings(pair)
			return nil, exterrors.NewWithContext(exterrors.ErrCodeConfiguration,
				fmt.Sprintf("ambiguous options: %s", strings.Join(pair, ", ")),
				map[string]any{exterrors.ContextKeyOptions: pair})
		}
		keymap[folded] = key
	}

	d := &Dict{
		values:  make(map[string]Value, len(options)),
		options: make(map[string]Option, len(options)),
		order:   make([]string, 0, len(options)),
	}

	for _, opt := range options {
		name := NormalizeKey(opt.Name())
		if _, dup := d.options[name]; dup {
			return nil, exterrors.NewWithContext(exterrors.ErrCodeInternal,
				fmt.Sprintf("option %q declared more than once", opt.Name()),
				map[string]any{exterrors.ContextKeyOption: opt.Name()})
		}
		d.options[name] = opt
		d.order = append(d.order, name)

		key, found := keymap[name]
		switch {
		case found:
			d.values[name] = raw[key]
			delete(keymap, name)
		case opt.IsRequired():
			return nil, exterrors.NewWithContext(exterrors.ErrCodeOptionRequired,
				fmt.Sprintf("option '%s' is required", opt.Name()),
				map[string]any{exterrors.ContextKeyOption: opt.Name()})
		case !opt.Default().IsNull():
			d.values[name] = opt.Default()
		}
	}

	if len(keymap) > 0 {
		extra := make([]string, 0, len(keymap))
		for _, key := range keymap {
			extra = append(extra, key)
		}
		sort.Strings(extra)
		return nil, exterrors.NewWithContext(exterrors.ErrCodeUnknownOptions,
			fmt.Sprintf("unknown options: %s", strings.Join(extra, ", ")),
			map[string]any{exterrors.ContextKeyOptions: extra})
	}

	return d, nil
}

// Len returns the number of resolved values.
func (d *Dict) Len() int {
	return len(d.values)
}

// Keys returns the resolved, lowercased keys in sorted order.
func (d *Dict) Keys() []string {
	keys := make([]string, 0, len(d.values))
	for k := range d.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Options returns the declared options in declaration order.
func (d *Dict) Options() []Option {
	out := make([]Option, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.options[name])
	}
	return out
}

// Option returns the declared option matching name.
func (d *Dict) Option(name string) (Option, bool) {
	o, ok := d.options[NormalizeKey(name)]
	return o, ok
}

// Get returns the stored, uncoerced value.
func (d *Dict) Get(name string) (Value, bool) {
	v, ok := d.values[NormalizeKey(name)]
	return v, ok
}

// GetOr returns the stored value, or def when the key is absent.
func (d *Dict) GetOr(name string, def Value) Value {
	if v, ok := d.Get(name); ok {
		return v
	}
	return def
}

// Set always fails: the dictionary is immutable.
func (d *Dict) Set(name string, _ Value) error {
	return exterrors.NewWithContext(exterrors.ErrCodeInternal,
		"option dictionary is immutable",
		map[string]any{exterrors.ContextKeyOption: name})
}

// GetString returns the value coerced to a string. ok is false when both the
// stored value and def are null.
func (d *Dict) GetString(name string, def Value) (string, bool, error) {
	v, err := ToString(d.GetOr(name, def))
	if err != nil || v.IsNull() {
		return "", false, err
	}
	return v.s, true, nil
}

// GetInt returns the value coerced to an integer.
func (d *Dict) GetInt(name string, def Value) (int64, bool, error) {
	v, err := ToInt(d.GetOr(name, def))
	if err != nil || v.IsNull() {
		return 0, false, err
	}
	return v.i, true, nil
}

// GetFloat returns the value coerced to a float.
func (d *Dict) GetFloat(name string, def Value) (float64, bool, error) {
	v, err := ToFloat(d.GetOr(name, def))
	if err != nil || v.IsNull() {
		return 0, false, err
	}
	return v.f, true, nil
}

// GetBool returns the value coerced to a boolean.
func (d *Dict) GetBool(name string, def Value) (bool, bool, error) {
	v, err := ToBool(d.GetOr(name, def))
	if err != nil || v.IsNull() {
		return false, false, err
	}
	return v.b, true, nil
}

// Casted returns every resolved value converted to its declared type, keyed
// by lowercased option name.
func (d *Dict) Casted() (Values, error) {
	out := make(Values, len(d.values))
	for key, v := range d.values {
		opt := d.options[key]
		cv, err := opt.Cast(v)
		if err != nil {
			return nil, exterrors.WrapWithContext(exterrors.CodeOf(err),
				fmt.Sprintf("invalid value for option '%s'", opt.Name()), err,
				map[string]any{exterrors.ContextKeyOption: opt.Name()})
		}
		out[key] = cv
	}
	return out, nil
}
