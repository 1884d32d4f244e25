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

// Package config loads raw extension options from files, URLs, Kubernetes
// ConfigMaps and command line assignments.
//
// Sources are addressed by URI:
//
//   - a local path ending in .json, .yaml, .yml or .hcl
//   - an http:// or https:// URL, format taken from the URL path
//   - cm://namespace/name for a ConfigMap
//
// A ConfigMap either holds a serialized document under extensible.yaml,
// extensible.yml, extensible.json or extensible.hcl, or is read as flat
// string entries, one per option.
//
// Usage:
//
//	raw, err := config.Load(ctx, "printer.yaml")
//	if err != nil {
//	    return err
//	}
//	set, err := config.ParseAssignments([]string{"indent=8"})
//	if err != nil {
//	    return err
//	}
//	printer, err := Printers.Create("pretty", config.Merge(raw, set))
//
// Values are returned raw: validation and coercion happen when the option
// dictionary of an extension is built.
package config
