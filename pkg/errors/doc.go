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

// Package errors provides structured error types shared by the option,
// registry and extensible packages, and by the CLI and HTTP surfaces built on
// top of them.
//
// Configuration problems form a family: ErrCodeConfiguration is the base code,
// ErrCodeOptionRequired and ErrCodeUnknownOptions refine it. Use
// IsConfiguration to match the whole family and CodeOf to branch on the exact
// code.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeOptionRequired,
//	    "required option 'indent' is missing",
//	    map[string]any{
//	        errors.ContextKeyOption: "indent",
//	    },
//	)
//	if errors.IsConfiguration(err) {
//	    // report to the user
//	}
package errors
