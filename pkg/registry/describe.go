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

import "github.com/NVIDIA/extensible/pkg/option"

// NoDocumentation is the doc text of extensions without a description.
const NoDocumentation = "(No documentation)"

// Description is the read-only projection of an extension used by tooling.
type Description struct {
	Type    string          `json:"type" yaml:"type"`
	Name    string          `json:"name" yaml:"name"`
	Label   string          `json:"label" yaml:"label"`
	Doc     string          `json:"doc" yaml:"doc"`
	Options []option.Option `json:"options" yaml:"options"`
}

// Describe resolves name and returns its description. The label defaults to
// the name and the doc to NoDocumentation.
func (c *Catalog) Describe(name string) (Description, error) {
	ext, err := c.Extension(name)
	if err != nil {
		return Description{}, err
	}
	return Describe(c.point, name, ext), nil
}

// Describe builds the description of ext registered under point and name.
func Describe(point, name string, ext Extensible) Description {
	d := Description{
		Type:    point,
		Name:    name,
		Label:   name,
		Doc:     NoDocumentation,
		Options: ext.ExtensionOptions(),
	}
	if l, ok := ext.(Labeler); ok && l.ExtensionLabel() != "" {
		d.Label = l.ExtensionLabel()
	}
	if doc, ok := ext.(Documenter); ok && doc.ExtensionDesc() != "" {
		d.Doc = doc.ExtensionDesc()
	}
	if d.Options == nil {
		d.Options = []option.Option{}
	}
	return d
}
