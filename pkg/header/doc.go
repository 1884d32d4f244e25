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

// Package header provides the common header embedded in documents written by
// extctl.
//
// A Header identifies the document kind and API version and carries string
// metadata such as the producing tool version and a UTC timestamp:
//
//	type ValidationResult struct {
//	    header.Header `json:",inline" yaml:",inline"`
//	    Values option.Values `json:"values" yaml:"values"`
//	}
//
//	res := ValidationResult{
//	    Header: header.New(header.KindOptionValidation, header.WithVersion("v1.0.0")),
//	}
//
// Serialized as YAML:
//
//	kind: OptionValidation
//	apiVersion: extensible.nvidia.com/v1alpha1
//	metadata:
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: v1.0.0
package header
