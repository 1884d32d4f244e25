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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/extensible/pkg/config"
	"github.com/NVIDIA/extensible/pkg/errors"
	"github.com/NVIDIA/extensible/pkg/k8s/client"
	"github.com/NVIDIA/extensible/pkg/option"
	"github.com/NVIDIA/extensible/pkg/serializer"
)

// outputFlags returns new instances of the flags shared by commands that
// print a result. Flags hold parse state, so commands must not share them.
func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   string(serializer.FormatYAML),
			Usage:   fmt.Sprintf("output format (%s)", strings.Join(serializer.SupportedFormats(), ", ")),
			Sources: cli.EnvVars("EXTCTL_FORMAT"),
		},
		&cli.StringSliceFlag{
			Name:  "format-option",
			Usage: "output encoder option as key=value, may be repeated",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage: `output destination, stdout when empty.
	Supports: file paths or ConfigMap URIs (cm://namespace/name).`,
		},
		&cli.StringFlag{
			Name:    "kubeconfig",
			Aliases: []string{"k"},
			Usage:   "path to kubeconfig used for cm:// sources and outputs",
			Sources: cli.EnvVars("EXTCTL_KUBECONFIG", "KUBECONFIG"),
		},
	}
}

// parseOutputFormat returns the --format value if an encoder is registered for it.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown output format: %q", f),
			map[string]any{"supported": serializer.SupportedFormats()})
	}
	return f, nil
}

// newSerializer builds the output serializer from --format, --format-option
// and --output. Standard output goes to the root command writer.
func newSerializer(cmd *cli.Command) (serializer.Serializer, error) {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return nil, err
	}
	encOpts, err := config.ParseAssignments(cmd.StringSlice("format-option"))
	if err != nil {
		return nil, err
	}

	output := strings.TrimSpace(cmd.String("output"))
	if output == "" {
		return serializer.NewWriterWithOptions(format, encOpts, cmd.Root().Writer)
	}

	ser, err := serializer.NewFileWriterOrStdout(format, output, encOpts)
	if err != nil {
		return nil, err
	}
	if cw, ok := ser.(*serializer.ConfigMapWriter); ok {
		if kubeconfig := cmd.String("kubeconfig"); kubeconfig != "" {
			cs, err := client.ForKubeconfig(kubeconfig)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeUnavailable, "failed to get kubernetes client", err)
			}
			cw.WithClient(cs)
		}
	}
	return ser, nil
}

// writeResult serializes v with the output flags of cmd.
func writeResult(ctx context.Context, cmd *cli.Command, v any) error {
	ser, err := newSerializer(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	if err := ser.Serialize(ctx, v); err != nil {
		return fmt.Errorf("failed to serialize output: %w", err)
	}
	return nil
}

// loadOptions merges every --config source in order, then --set assignments.
func loadOptions(ctx context.Context, cmd *cli.Command) (option.Values, error) {
	var loadOpts []config.Option
	if kubeconfig := cmd.String("kubeconfig"); kubeconfig != "" {
		loadOpts = append(loadOpts, config.WithKubeconfig(kubeconfig))
	}

	var layers []option.Values
	for _, uri := range cmd.StringSlice("config") {
		slog.Debug("loading options", "uri", uri)
		raw, err := config.Load(ctx, uri, loadOpts...)
		if err != nil {
			return nil, err
		}
		layers = append(layers, raw)
	}

	set, err := config.ParseAssignments(cmd.StringSlice("set"))
	if err != nil {
		return nil, err
	}
	layers = append(layers, set)

	return config.Merge(layers...), nil
}

// typeAndName returns the TYPE and NAME positional arguments.
func typeAndName(cmd *cli.Command) (string, string, error) {
	if cmd.NArg() != 2 {
		return "", "", errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("expected TYPE and NAME arguments, got %d argument(s)", cmd.NArg()))
	}
	return cmd.Args().Get(0), cmd.Args().Get(1), nil
}
