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

	exterrors "github.com/NVIDIA/extensible/pkg/errors"
	"github.com/NVIDIA/extensible/pkg/option"
)

// Summary lists the implementation names of one extension point.
type Summary struct {
	Type       string   `json:"type" yaml:"type"`
	Extensions []string `json:"extensions" yaml:"extensions"`
}

// Summaries returns one Summary per global extension point, sorted by point.
func Summaries() []Summary {
	points := Points()
	out := make([]Summary, 0, len(points))
	for _, p := range points {
		out = append(out, Summary{Type: p, Extensions: Get(p).RegisteredNames()})
	}
	return out
}

// Resolve finds the global catalog of point and the extension registered
// under name. Unknown points and names fail with NOT_FOUND; a failing lazy
// load keeps its INTERNAL code.
func Resolve(point, name string) (*Catalog, Extensible, error) {
	c, ok := Lookup(point)
	if !ok {
		return nil, nil, exterrors.NewWithContext(exterrors.ErrCodeNotFound,
			fmt.Sprintf("unknown extension type '%s'", point),
			map[string]any{exterrors.ContextKeyPoint: point})
	}
	if !c.IsRegistered(name) {
		return nil, nil, exterrors.NewWithContext(exterrors.ErrCodeNotFound,
			fmt.Sprintf("unknown extension '%s' of type '%s'", name, point),
			map[string]any{
				exterrors.ContextKeyExtension: name,
				exterrors.ContextKeyPoint:     point,
			})
	}
	ext, err := c.Extension(name)
	if err != nil {
		return nil, nil, err
	}
	return c, ext, nil
}

// Validate builds the option dictionary of point/name from raw and returns
// the coerced values, without instantiating the extension.
func Validate(point, name string, raw option.Values) (option.Values, error) {
	_, ext, err := Resolve(point, name)
	if err != nil {
		return nil, err
	}
	dict, err := option.NewDict(raw, ext.ExtensionOptions())
	if err != nil {
		return nil, err
	}
	return dict.Casted()
}
