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

import "encoding/json"

// Option describes a single configuration key of an extension.
// Options are immutable once built.
type Option struct {
	// name is the key the option is matched by, case-insensitively.
	name string

	// typ is the declared value type. Defaults to TypeString.
	typ Type

	// def is used when the option is optional and not supplied.
	def Value

	// label is a human readable name. Defaults to name.
	label string

	// desc is a human readable description.
	desc string

	// required options never fall back to def.
	required bool

	// check runs on non-null values after conversion.
	check func(Value) error
}

// Attr configures an Option.
type Attr func(*Option)

// WithType sets the declared value type.
func WithType(t Type) Attr {
	return func(o *Option) {
		o.typ = t
	}
}

// WithDefault sets the value used when the option is not supplied.
func WithDefault(v Value) Attr {
	return func(o *Option) {
		o.def = v
	}
}

// WithLabel sets the human readable label.
func WithLabel(label string) Attr {
	return func(o *Option) {
		o.label = label
	}
}

// WithDescription sets the human readable description.
func WithDescription(desc string) Attr {
	return func(o *Option) {
		o.desc = desc
	}
}

// Required marks the option as mandatory.
func Required() Attr {
	return func(o *Option) {
		o.required = true
	}
}

// WithCheck adds a constraint applied to converted, non-null values.
func WithCheck(check func(Value) error) Attr {
	return func(o *Option) {
		o.check = check
	}
}

// New returns an option with the given name.
func New(name string, attrs ...Attr) Option {
	o := Option{
		name: name,
		typ:  TypeString,
	}
	for _, attr := range attrs {
		attr(&o)
	}
	if o.typ == "" {
		o.typ = TypeString
	}
	return o
}

// Name returns the option name as declared.
func (o Option) Name() string {
	return o.name
}

// Type returns the declared value type.
func (o Option) Type() Type {
	return o.typ
}

// Default returns the default value, possibly null.
func (o Option) Default() Value {
	return o.def
}

// Label returns the label, or the name when no label was set.
func (o Option) Label() string {
	if o.label == "" {
		return o.name
	}
	return o.label
}

// Description returns the description, possibly empty.
func (o Option) Description() string {
	return o.desc
}

// IsRequired reports whether the option must be supplied.
func (o Option) IsRequired() bool {
	return o.required
}

// Cast converts v to the option's declared type and applies its check.
func (o Option) Cast(v Value) (Value, error) {
	cv, err := Cast(v, o.typ)
	if err != nil {
		return Null(), err
	}
	if o.check != nil && !cv.IsNull() {
		if err := o.check(cv); err != nil {
			return Null(), err
		}
	}
	return cv, nil
}

// Spec is the serializable view of an Option.
type Spec struct {
	Name        string `json:"name" yaml:"name"`
	Type        Type   `json:"type" yaml:"type"`
	Default     Value  `json:"default" yaml:"default"`
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool   `json:"required" yaml:"required"`
}

// Spec returns the serializable view of the option.
func (o Option) Spec() Spec {
	return Spec{
		Name:        o.name,
		Type:        o.typ,
		Default:     o.def,
		Label:       o.Label(),
		Description: o.desc,
		Required:    o.required,
	}
}

// MarshalJSON implements json.Marshaler.
func (o Option) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Spec())
}

// MarshalYAML implements yaml.Marshaler.
func (o Option) MarshalYAML() (any, error) {
	return o.Spec(), nil
}
