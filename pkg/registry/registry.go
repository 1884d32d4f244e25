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

package registry

import (
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"sync"

	exterrors "github.com/NVIDIA/extensible/pkg/errors"
	"github.com/NVIDIA/extensible/pkg/option"
)

// Extensible is implemented by everything that can be registered under an
// extension point.
type Extensible interface {
	// ExtensionType returns the extension point identifier.
	ExtensionType() string
	// ExtensionName returns the implementation name.
	ExtensionName() string
	// ExtensionOptions returns the declared options.
	ExtensionOptions() []option.Option
}

// Labeler is implemented by extensions with a human readable label.
type Labeler interface {
	ExtensionLabel() string
}

// Documenter is implemented by extensions with a description.
type Documenter interface {
	ExtensionDesc() string
}

// Global catalogs, one per extension point.
var (
	globalCatalogs = make(map[string]*Catalog)
	globalMu       sync.RWMutex
)

// Get returns the catalog for point, creating it on first reference.
func Get(point string) *Catalog {
	globalMu.RLock()
	c, ok := globalCatalogs[point]
	globalMu.RUnlock()
	if ok {
		return c
	}

	globalMu.Lock()
	defer globalMu.Unlock()

	if c, ok = globalCatalogs[point]; ok {
		return c
	}
	c = New(point)
	globalCatalogs[point] = c
	return c
}

// Lookup returns the catalog for point without creating it.
func Lookup(point string) (*Catalog, bool) {
	globalMu.RLock()
	defer globalMu.RUnlock()
	c, ok := globalCatalogs[point]
	return c, ok
}

// Points returns the identifiers of all known extension points, sorted.
func Points() []string {
	globalMu.RLock()
	defer globalMu.RUnlock()

	points := make([]string, 0, len(globalCatalogs))
	for p := range globalCatalogs {
		points = append(points, p)
	}
	sort.Strings(points)
	return points
}

// Catalog holds the implementations registered for one extension point.
type Catalog struct {
	point      string
	extensions map[string]Extensible
	lazy       map[string]string
	loader     Loader
	mu         sync.RWMutex
}

// New creates a catalog that is not part of the global table.
func New(point string) *Catalog {
	return &Catalog{
		point:      point,
		extensions: make(map[string]Extensible),
		lazy:       make(map[string]string),
		loader:     LoadUnit,
	}
}

// Point returns the extension point identifier.
func (c *Catalog) Point() string {
	return c.point
}

// SetLoader replaces the loader used to resolve lazy locators.
// A nil loader restores LoadUnit.
func (c *Catalog) SetLoader(l Loader) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if l == nil {
		l = LoadUnit
	}
	c.loader = l
}

// Register installs ext under name, replacing any previous registration.
// An empty name uses ext.ExtensionName().
func (c *Catalog) Register(name string, ext Extensible) error {
	if isNil(ext) {
		return exterrors.NewWithContext(exterrors.ErrCodeInternal,
			fmt.Sprintf("cannot register nil extension '%s' of type '%s'", name, c.point),
			map[string]any{
				exterrors.ContextKeyExtension: name,
				exterrors.ContextKeyPoint:     c.point,
			})
	}
	if name == "" {
		name = ext.ExtensionName()
	}
	if t := ext.ExtensionType(); t != c.point {
		return exterrors.NewWithContext(exterrors.ErrCodeInternal,
			fmt.Sprintf("extension '%s' of type '%s' cannot be registered as '%s'", name, t, c.point),
			map[string]any{
				exterrors.ContextKeyExtension: name,
				exterrors.ContextKeyPoint:     c.point,
				exterrors.ContextKeyType:      t,
			})
	}

	c.mu.Lock()
	c.extensions[name] = ext
	c.mu.Unlock()

	registrations.WithLabelValues(c.point).Inc()
	slog.Debug("extension registered", "point", c.point, "name", name)
	return nil
}

// isNil also catches a nil pointer held in a non-nil interface.
func isNil(ext Extensible) bool {
	if ext == nil {
		return true
	}
	v := reflect.ValueOf(ext)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Slice, reflect.Interface, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// MustRegister is a convenience function that panics on registration error.
// Use this in init() functions where registration must succeed.
func (c *Catalog) MustRegister(name string, ext Extensible) {
	if err := c.Register(name, ext); err != nil {
		panic(err)
	}
}

// RegisterLazy records that name is provided by the unit at locator.
func (c *Catalog) RegisterLazy(name, locator string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lazy[name] = locator
}

// Extension returns the implementation registered under name, loading its
// unit first when only a lazy locator is known.
func (c *Catalog) Extension(name string) (Extensible, error) {
	c.mu.RLock()
	ext, ok := c.extensions[name]
	locator, lazy := c.lazy[name]
	loader := c.loader
	c.mu.RUnlock()

	if ok {
		return ext, nil
	}

	if lazy {
		lazyLoads.WithLabelValues(c.point).Inc()
		slog.Debug("loading extension unit", "point", c.point, "name", name, "locator", locator)

		// the loader runs unlocked, the unit registers into this catalog
		if err := loader(locator); err != nil {
			lookupFailures.WithLabelValues(c.point).Inc()
			return nil, exterrors.WrapWithContext(exterrors.ErrCodeInternal,
				fmt.Sprintf("unable to load extension '%s' of type '%s'", name, c.point), err,
				map[string]any{
					exterrors.ContextKeyExtension: name,
					exterrors.ContextKeyPoint:     c.point,
					"locator":                     locator,
				})
		}

		c.mu.RLock()
		ext, ok = c.extensions[name]
		c.mu.RUnlock()
		if ok {
			return ext, nil
		}
	}

	lookupFailures.WithLabelValues(c.point).Inc()
	return nil, exterrors.NewWithContext(exterrors.ErrCodeInternal,
		fmt.Sprintf("unknown extension '%s' of type '%s'", name, c.point),
		map[string]any{
			exterrors.ContextKeyExtension: name,
			exterrors.ContextKeyPoint:     c.point,
		})
}

// RegisteredNames returns the union of eager and lazy names, sorted.
func (c *Catalog) RegisteredNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]struct{}, len(c.extensions)+len(c.lazy))
	for name := range c.extensions {
		seen[name] = struct{}{}
	}
	for name := range c.lazy {
		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether name is known eagerly or lazily.
func (c *Catalog) IsRegistered(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.extensions[name]
	_, lazy := c.lazy[name]
	return ok || lazy
}
