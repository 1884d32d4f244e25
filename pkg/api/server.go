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

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/extensible/pkg/defaults"
	"github.com/NVIDIA/extensible/pkg/logging"
	"github.com/NVIDIA/extensible/pkg/server"
)

const (
	name           = "extd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/extensible/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Routes returns the extension catalog endpoints keyed by ServeMux pattern.
func Routes() map[string]http.HandlerFunc {
	describe := func(h http.HandlerFunc) http.HandlerFunc {
		return withTimeout(h, defaults.DescribeHandlerTimeout)
	}
	return map[string]http.HandlerFunc{
		"GET /v1/extensions":                        describe(handleListPoints),
		"GET /v1/extensions/{type}":                 describe(handleListExtensions),
		"GET /v1/extensions/{type}/{name}":          describe(handleDescribe),
		"POST /v1/extensions/{type}/{name}/options": withTimeout(handleValidate, defaults.ValidateHandlerTimeout),
	}
}

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(Routes()),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
