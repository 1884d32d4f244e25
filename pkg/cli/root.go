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

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/extensible/pkg/errors"
	"github.com/NVIDIA/extensible/pkg/logging"
)

const (
	name           = "extctl"
	versionDefault = "dev"

	// exitConfiguration is returned when user supplied options are missing,
	// unknown or cannot be converted to the declared type.
	exitConfiguration = 2
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the extctl command line and exits on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.IsConfiguration(err) || errors.Is(err, errors.ErrCodeInvalidValue) {
		return exitConfiguration
	}
	return 1
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Suggest:               true,
		Usage:                 "Inspect and validate registered extensions",
		Description: `extctl lists the extension points known to this build, describes their
implementations and validates option mappings against declared options.

# Examples

List every extension point:
  extctl list

Describe the JSON output encoder:
  extctl describe serializer json

Validate options from a file, overriding one value:
  extctl validate serializer table --config table.yaml --set padding=4

Read options from a ConfigMap:
  extctl validate serializer json --config cm://default/json-options`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging, same as --log-level=debug",
			},
		},
		Before: initLogger,
		Commands: []*cli.Command{
			listCmd(),
			describeCmd(),
			validateCmd(),
		},
	}
}

// initLogger configures slog once flags are parsed so --log-level takes
// effect before any command executes.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	level := cmd.String("log-level")
	if cmd.Bool("debug") {
		level = "debug"
	}
	logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", level)
	return ctx, nil
}
