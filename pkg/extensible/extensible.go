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

package extensible

import (
	"fmt"
	"log/slog"

	exterrors "github.com/NVIDIA/extensible/pkg/errors"
	"github.com/NVIDIA/extensible/pkg/option"
	"github.com/NVIDIA/extensible/pkg/registry"
)

// Factory builds an instance from coerced option values.
type Factory[T any] func(values option.Values) (T, error)

// Extension describes one implementation of a point with base contract T.
// It satisfies registry.Extensible once bound to a point by Register.
type Extension[T any] struct {
	// Name is the implementation name within the point.
	Name string
	// Label is a human readable name. Defaults to Name.
	Label string
	// Desc documents the implementation.
	Desc string
	// Options are the declared configuration keys.
	Options []option.Option
	// New builds the instance.
	New Factory[T]

	point string
}

// ExtensionType returns the point the extension is registered under.
func (e *Extension[T]) ExtensionType() string { return e.point }

// ExtensionName returns the implementation name.
func (e *Extension[T]) ExtensionName() string { return e.Name }

// ExtensionOptions returns the declared options.
func (e *Extension[T]) ExtensionOptions() []option.Option { return e.Options }

// ExtensionLabel returns the label.
func (e *Extension[T]) ExtensionLabel() string { return e.Label }

// ExtensionDesc returns the description.
func (e *Extension[T]) ExtensionDesc() string { return e.Desc }

// CreateWithDict validates raw against the declared options and builds an
// instance.
func (e *Extension[T]) CreateWithDict(raw option.Values) (T, error) {
	dict, err := option.NewDict(raw, e.Options)
	if err != nil {
		var zero T
		return zero, err
	}
	return e.CreateWithOptions(dict)
}

// CreateWithOptions builds an instance from a validated dictionary. Factory
// errors are returned unchanged.
func (e *Extension[T]) CreateWithOptions(dict *option.Dict) (T, error) {
	var zero T
	if e.New == nil {
		return zero, exterrors.NewWithContext(exterrors.ErrCodeInternal,
			fmt.Sprintf("extension '%s' of type '%s' has no factory", e.Name, e.point),
			map[string]any{
				exterrors.ContextKeyExtension: e.Name,
				exterrors.ContextKeyPoint:     e.point,
			})
	}

	values, err := dict.Casted()
	if err != nil {
		return zero, err
	}

	inst, err := e.New(values)
	if err != nil {
		return zero, err
	}
	instantiations.WithLabelValues(e.point, e.Name).Inc()
	return inst, nil
}

// Point is an extension point whose implementations satisfy T.
type Point[T any] struct {
	name    string
	catalog *registry.Catalog
}

// NewPoint declares the extension point name, backed by the global catalog.
func NewPoint[T any](name string) *Point[T] {
	return &Point[T]{
		name:    name,
		catalog: registry.Get(name),
	}
}

// NewDetachedPoint declares a point backed by a catalog outside the global
// table.
func NewDetachedPoint[T any](name string) *Point[T] {
	return &Point[T]{
		name:    name,
		catalog: registry.New(name),
	}
}

// Name returns the point identifier.
func (p *Point[T]) Name() string { return p.name }

// Catalog returns the backing catalog.
func (p *Point[T]) Catalog() *registry.Catalog { return p.catalog }

// Register binds ext to the point and registers it under ext.Name.
func (p *Point[T]) Register(ext *Extension[T]) error {
	if ext == nil {
		return exterrors.NewWithContext(exterrors.ErrCodeInternal,
			fmt.Sprintf("cannot register nil extension of type '%s'", p.name),
			map[string]any{exterrors.ContextKeyPoint: p.name})
	}
	if ext.Name == "" {
		return exterrors.NewWithContext(exterrors.ErrCodeInternal,
			fmt.Sprintf("extension of type '%s' has no name", p.name),
			map[string]any{exterrors.ContextKeyPoint: p.name})
	}
	ext.point = p.name
	return p.catalog.Register(ext.Name, ext)
}

// MustRegister is like Register but panics on error. Use from init().
func (p *Point[T]) MustRegister(ext *Extension[T]) {
	if err := p.Register(ext); err != nil {
		panic(err)
	}
}

// RegisterLazy records that name is provided by the unit at locator.
func (p *Point[T]) RegisterLazy(name, locator string) {
	p.catalog.RegisterLazy(name, locator)
}

// Concrete resolves name to its Extension, loading it lazily if needed.
func (p *Point[T]) Concrete(name string) (*Extension[T], error) {
	ext, err := p.catalog.Extension(name)
	if err != nil {
		return nil, err
	}
	typed, ok := ext.(*Extension[T])
	if !ok {
		return nil, exterrors.NewWithContext(exterrors.ErrCodeInternal,
			fmt.Sprintf("extension '%s' of type '%s' has unexpected implementation %T", name, p.name, ext),
			map[string]any{
				exterrors.ContextKeyExtension: name,
				exterrors.ContextKeyPoint:     p.name,
			})
	}
	return typed, nil
}

// Create resolves name and builds an instance from raw.
func (p *Point[T]) Create(name string, raw option.Values) (T, error) {
	ext, err := p.Concrete(name)
	if err != nil {
		var zero T
		return zero, err
	}
	slog.Debug("creating extension", "point", p.name, "name", name, "options", len(raw))
	return ext.CreateWithDict(raw)
}

// Names returns the registered implementation names, sorted.
func (p *Point[T]) Names() []string {
	return p.catalog.RegisteredNames()
}

// Describe returns the description of name.
func (p *Point[T]) Describe(name string) (registry.Description, error) {
	return p.catalog.Describe(name)
}
