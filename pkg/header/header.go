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

package header

import (
	"time"
)

// APIVersion is the version of documents written by extctl.
const APIVersion = "extensible.nvidia.com/v1alpha1"

// Kind identifies the type of a document.
type Kind string

const (
	KindOptionValidation Kind = "OptionValidation"
)

func (k Kind) String() string {
	return string(k)
}

// IsValid reports whether k is a known document kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindOptionValidation:
		return true
	default:
		return false
	}
}

// Header carries the type and provenance of a document. Embed it inline.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

type Option func(*Header)

func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithVersion records the version of the tool that produced the document.
func WithVersion(version string) Option {
	return func(h *Header) {
		if version != "" {
			WithMetadata("version", version)(h)
		}
	}
}

// withClock is used by tests to fix the timestamp.
func withClock(now func() time.Time) Option {
	return func(h *Header) {
		WithMetadata("timestamp", now().UTC().Format(time.RFC3339))(h)
	}
}

// New returns a header of the given kind at APIVersion stamped with the
// current time. Options are applied after the defaults.
func New(kind Kind, opts ...Option) Header {
	h := Header{Kind: kind, APIVersion: APIVersion}
	withClock(time.Now)(&h)
	for _, opt := range opts {
		opt(&h)
	}
	return h
}
