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

package config

import (
	"fmt"
	"strings"

	"github.com/NVIDIA/extensible/pkg/errors"
	"github.com/NVIDIA/extensible/pkg/option"
)

// ParseAssignments converts key=value pairs into raw string values. The
// value may contain '='; a later assignment of the same key wins.
func ParseAssignments(pairs []string) (option.Values, error) {
	out := make(option.Values, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				fmt.Sprintf("invalid assignment %q, expected key=value", pair),
				map[string]any{errors.ContextKeyValue: pair})
		}
		out[key] = option.String(value)
	}
	return out, nil
}

// Merge combines layers into a new mapping. Later layers win, and a key
// replaces every key of an earlier layer equal to it ignoring case. Keys of
// one layer that differ only in case are kept so the option dictionary can
// report them as ambiguous.
func Merge(layers ...option.Values) option.Values {
	out := make(option.Values)
	for _, layer := range layers {
		folded := make(map[string]struct{}, len(layer))
		for k := range layer {
			folded[option.NormalizeKey(k)] = struct{}{}
		}
		for existing := range out {
			if _, ok := folded[option.NormalizeKey(existing)]; ok {
				delete(out, existing)
			}
		}
		for k, v := range layer {
			out[k] = v
		}
	}
	return out
}
