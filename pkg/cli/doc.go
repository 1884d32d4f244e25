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

// Package cli implements the extctl command-line interface for inspecting
// extension points and validating extension options.
//
// # Commands
//
// list - List extension points:
//
//	extctl list [--type TYPE] [--format yaml|json|table]
//
// Prints every extension point with the names registered under it, including
// lazily registered implementations that have not been loaded yet.
//
// describe - Describe an extension:
//
//	extctl describe TYPE NAME
//
// Prints the label, documentation and declared options of one extension.
//
// validate - Validate options:
//
//	extctl validate TYPE NAME [--config URI]... [--set key=value]...
//
// Merges option sources in order and builds the extension's option
// dictionary. Configuration errors exit with status 2.
//
// # Output Flags
//
//	--format, -f         Output format: yaml, json, table (default: yaml, env: EXTCTL_FORMAT)
//	--format-option      Encoder option as key=value, e.g. indent=4
//	--output, -o         File path or cm://namespace/name (default: stdout)
//	--kubeconfig, -k     Kubeconfig for cm:// sources and outputs (env: EXTCTL_KUBECONFIG, KUBECONFIG)
//
// # Global Flags
//
//	--log-level          debug, info, warn or error (env: LOG_LEVEL)
//	--debug              Same as --log-level=debug
//
// # Option Sources
//
// --config accepts JSON, YAML and flat HCL attribute files, HTTP/HTTPS URLs
// and ConfigMap URIs. A ConfigMap holding a single document key such as
// extensible.yaml is decoded as that document; otherwise each data key becomes
// a string option.
//
// # Version
//
// Version information is injected at build time via ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/extensible/pkg/cli.version=1.0.0' \
//	  -X 'github.com/NVIDIA/extensible/pkg/cli.commit=abc123' \
//	  -X 'github.com/NVIDIA/extensible/pkg/cli.date=2025-01-01'"
package cli
