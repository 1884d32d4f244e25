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

package serializer

import (
	"context"
	"io"

	"github.com/NVIDIA/extensible/pkg/extensible"
)

// PointName identifies the encoder extension point.
const PointName = "serializer"

// Serializer is an interface for serializing data to a destination.
//
// The context parameter is used for cancellation and timeouts, particularly
// important for implementations that perform I/O operations (e.g., ConfigMap writes).
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is an optional interface that Serializers can implement
// if they need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}

// Encoder is the contract implemented by output encoder extensions.
type Encoder interface {
	// Encode writes v to w.
	Encode(w io.Writer, v any) error
	// FileExtension is used to name documents stored in ConfigMaps.
	FileExtension() string
}

// Encoders is the encoder extension point.
var Encoders = extensible.NewPoint[Encoder](PointName)

// Format represents a serialization format name.
type Format string

const (
	// FormatJSON outputs data in JSON format
	FormatJSON Format = "json"
	// FormatYAML outputs data in YAML format
	FormatYAML Format = "yaml"
	// FormatTable outputs data in table format
	FormatTable Format = "table"
	// FormatHCL reads flat HCL attribute files. It cannot be written.
	FormatHCL Format = "hcl"
)

// IsUnknown reports whether no encoder is registered for the format.
func (f Format) IsUnknown() bool {
	return !Encoders.Catalog().IsRegistered(string(f))
}

// IsReadable reports whether documents in the format can be decoded.
func (f Format) IsReadable() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatHCL:
		return true
	default:
		return false
	}
}

// SupportedFormats returns the names of all registered output encoders.
func SupportedFormats() []string {
	return Encoders.Names()
}
