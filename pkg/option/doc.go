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

// Package option implements typed extension options and the case-insensitive
// option dictionary used to validate user supplied configuration.
//
// # Values
//
// Value is a closed sum over text, integer, floating point and boolean, plus
// the absent (null) state. The zero Value is null. Raw configuration decoded
// from JSON, YAML, HCL or Kubernetes ConfigMaps is converted with ValueOf and
// ValuesOf; any other Go type is rejected with an INVALID_VALUE error.
//
// # Options
//
// An Option describes one configuration key:
//
//	indent := option.New("indent",
//	    option.WithType(option.TypeInt),
//	    option.WithDefault(option.Int(4)),
//	    option.WithDescription("number of spaces per level"),
//	)
//
// The default type is TypeString and the label defaults to the name.
//
// # Dictionary
//
// NewDict validates a raw mapping against declared options:
//
//   - keys are matched case-insensitively
//   - a missing required option fails with OPTION_REQUIRED
//   - a missing optional option takes its non-null default
//   - keys matching no option fail with UNKNOWN_OPTIONS
//
// The resulting Dict is read-only. Values are stored as supplied and coerced
// on read, either per key with GetString, GetInt, GetFloat and GetBool or all
// at once with Casted.
//
//	d, err := option.NewDict(option.Values{"INDENT": option.String("10")}, opts)
//	if err != nil {
//	    return err
//	}
//	n, _, err := d.GetInt("indent", option.Null())  // 10
//
// # Coercion
//
// Strings convert to booleans only from the exact, case-sensitive sets
// "1", "true", "yes", "on" and "0", "false", "no", "off". Floats convert to
// integers by truncation toward zero. Integral floats render with a trailing
// ".0" when converted to strings. A null value stays null under every
// conversion.
package option
