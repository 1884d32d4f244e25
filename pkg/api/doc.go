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

// Package api serves the extension catalog over HTTP.
//
// The extd binary calls Serve, which configures structured logging and
// runs a pkg/server instance with the catalog routes:
//
//	import (
//	    "log"
//	    "github.com/NVIDIA/extensible/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - GET /v1/extensions: every extension point with its implementation names
//   - GET /v1/extensions/{type}: implementation names of one point
//   - GET /v1/extensions/{type}/{name}: label, documentation and options
//   - POST /v1/extensions/{type}/{name}/options: validate an option mapping
//
// System endpoints (no rate limiting):
//   - GET /health: health check (liveness probe)
//   - GET /ready: readiness check
//   - GET /metrics: Prometheus metrics
//
// # Validation
//
// The options endpoint accepts a flat JSON object, or YAML with
// Content-Type application/yaml, and returns the values after coercion to
// the declared option types:
//
//	curl -X POST localhost:8080/v1/extensions/serializer/json/options \
//	  -d '{"INDENT": "4"}'
//
//	{"type":"serializer","name":"json","values":{"indent":4}}
//
// Configuration errors (OPTION_REQUIRED, UNKNOWN_OPTIONS, CONFIGURATION,
// INVALID_VALUE) are reported with status 400 and the structured error body
// of pkg/server. Unknown points and names return 404.
//
// Describing or validating a lazily registered extension loads it on first
// use.
package api
