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
	"sort"
	"sync"

	exterrors "github.com/NVIDIA/extensible/pkg/errors"
)

// Loader resolves a lazy locator. It is expected to register the extension
// the locator provides as a side effect.
type Loader func(locator string) error

type unit struct {
	once sync.Once
	init func()
}

var (
	units   = make(map[string]*unit)
	unitsMu sync.Mutex
)

// DefineUnit declares a loadable unit. fn runs the first time LoadUnit is
// called with locator. Redefining a locator replaces the unit, so the new
// function runs on the next load.
func DefineUnit(locator string, fn func()) {
	unitsMu.Lock()
	defer unitsMu.Unlock()
	units[locator] = &unit{init: fn}
}

// LoadUnit runs the unit declared for locator, at most once per process.
func LoadUnit(locator string) error {
	unitsMu.Lock()
	u, ok := units[locator]
	unitsMu.Unlock()

	if !ok {
		return exterrors.NewWithContext(exterrors.ErrCodeNotFound,
			fmt.Sprintf("no unit defined for locator %q", locator),
			map[string]any{"locator": locator})
	}
	u.once.Do(u.init)
	return nil
}

// Units returns the defined locators, sorted.
func Units() []string {
	unitsMu.Lock()
	defer unitsMu.Unlock()

	locators := make([]string, 0, len(units))
	for l := range units {
		locators = append(locators, l)
	}
	sort.Strings(locators)
	return locators
}
