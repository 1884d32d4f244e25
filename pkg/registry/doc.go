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

// Package registry keeps the process-wide catalogs of extensions.
//
// An extension point is identified by a string such as "serializer". Each
// point owns one Catalog, created empty on first reference by Get and kept
// for the lifetime of the process. A Catalog maps implementation names to
// either a registered Extensible or a lazy locator.
//
// # Registration
//
// Implementations register from init() functions, the same way component
// packages self-register elsewhere in the codebase:
//
//	func init() {
//	    registry.Get("serializer").MustRegister("json", jsonExtension)
//	}
//
// Registering an existing name overwrites it. There is no unregistration.
// Registration is expected to happen during program initialization; the
// catalog is still guarded by a mutex so concurrent readers are safe.
//
// # Lazy loading
//
// Built-in implementations that are expensive to set up can be declared
// without running their setup code:
//
//	registry.DefineUnit("serializer/table", registerTable)
//	registry.Get("serializer").RegisterLazy("table", "serializer/table")
//
// The first Extension("table") lookup runs the catalog Loader with the
// locator. The default Loader, LoadUnit, runs the function passed to
// DefineUnit at most once per process. That function is expected to call
// Register for the name. Tests and embedders can inject their own Loader
// with SetLoader.
//
// # Errors
//
// A name that is unknown after lazy resolution fails with an INTERNAL
// StructuredError naming the extension and the point. Loader failures are
// wrapped in the same error.
//
// # Metrics
//
// Lazy loads, registrations and lookup failures are counted per point and
// exposed on the default Prometheus registry.
package registry
