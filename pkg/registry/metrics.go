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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extensible_registrations_total",
			Help: "Total number of extension registrations by extension point",
		},
		[]string{"point"},
	)

	lazyLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extensible_lazy_loads_total",
			Help: "Total number of lazy unit loads triggered by extension lookups",
		},
		[]string{"point"},
	)

	lookupFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extensible_lookup_failures_total",
			Help: "Total number of extension lookups that could not be resolved",
		},
		[]string{"point"},
	)
)
