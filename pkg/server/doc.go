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

// Package server provides the HTTP server shared by extensible services.
//
// The server wires caller supplied handlers behind a middleware chain and
// adds the system endpoints every deployment needs:
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking (github.com/google/uuid)
//   - API version negotiation through the Accept header
//   - Request body size limits
//   - Panic recovery
//   - Prometheus metrics on /metrics
//   - Graceful shutdown with golang.org/x/sync/errgroup
//   - Health and readiness probes for Kubernetes
//
// # Usage
//
//	s := server.New(
//	    server.WithName("extd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "GET /v1/extensions": listExtensions,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Handler keys are net/http ServeMux patterns. A root handler listing the
// registered routes is added unless the caller provides "/".
//
// Custom configuration:
//
//	cfg := server.NewConfig()
//	cfg.Port = 9090
//	cfg.RateLimit = 200
//	cfg.RateLimitBurst = 400
//	s := server.New(server.WithConfig(cfg))
//
// The PORT and SHUTDOWN_TIMEOUT_SECONDS environment variables override the
// defaults returned by NewConfig.
//
// # System Endpoints
//
// GET /health always returns 200 with {"status": "healthy"}.
//
// GET /ready returns 200 when serving and 503 while starting or draining.
//
// GET /metrics exposes Prometheus metrics, including
// extensible_http_requests_total and extensible_http_request_duration_seconds.
//
// # Observability
//
// All API requests accept an optional X-Request-Id header (UUID format).
// If missing or malformed, the server generates one. The id is returned in
// the X-Request-Id response header and in every error response.
//
// Rate limit state is reported in X-RateLimit-Limit, X-RateLimit-Remaining
// and X-RateLimit-Reset. Rejected requests receive 429 with Retry-After.
//
// # Error Handling
//
// Errors share one JSON structure:
//
//	{
//	  "code": "UNKNOWN_OPTIONS",
//	  "message": "unknown options: colour",
//	  "details": {"options": ["colour"]},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-01-02T12:00:00Z",
//	  "retryable": false
//	}
//
// WriteErrorFromErr maps structured error codes to HTTP status: the
// configuration family and INVALID_VALUE to 400, NOT_FOUND to 404,
// TIMEOUT to 504, SERVICE_UNAVAILABLE to 503 and everything else to 500.
package server
