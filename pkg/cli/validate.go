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
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/extensible/pkg/header"
	"github.com/NVIDIA/extensible/pkg/option"
	"github.com/NVIDIA/extensible/pkg/registry"
)

// ValidationResult is the output of the validate command.
type ValidationResult struct {
	header.Header `json:",inline" yaml:",inline"`

	Type   string        `json:"type" yaml:"type"`
	Name   string        `json:"name" yaml:"name"`
	Values option.Values `json:"values" yaml:"values"`
}

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Validate options for an extension",
		ArgsUsage: "TYPE NAME",
		Description: `Build the option dictionary of an extension from configuration sources and
print the values after coercion to the declared option types.

Sources are applied in order: each --config, then --set assignments. Keys
are matched case-insensitively; later sources win.

A missing required option, an unknown key or a value that cannot be
converted exits with status 2 and the error message.

# Examples

  extctl validate serializer json --set indent=4
  extctl validate serializer table --config table.hcl
  extctl validate serializer yaml --config https://example.com/yaml.json
  extctl validate serializer json --config cm://default/json-options`,
		Flags: append([]cli.Flag{
			&cli.StringSliceFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage: `option source, may be repeated.
	Supports: .json/.yaml/.yml/.hcl files, HTTP/HTTPS URLs, or ConfigMap URIs (cm://namespace/name).`,
			},
			&cli.StringSliceFlag{
				Name:    "set",
				Aliases: []string{"s"},
				Usage:   "option assignment as key=value, may be repeated",
			},
		}, outputFlags()...),
		DisableSliceFlagSeparator: true,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			point, extName, err := typeAndName(cmd)
			if err != nil {
				return err
			}

			raw, err := loadOptions(ctx, cmd)
			if err != nil {
				return err
			}

			values, err := registry.Validate(point, extName, raw)
			if err != nil {
				return err
			}

			slog.Debug("options validated", "type", point, "name", extName, "values", len(values))

			return writeResult(ctx, cmd, ValidationResult{
				Header: header.New(header.KindOptionValidation, header.WithVersion(version)),
				Type:   point,
				Name:   extName,
				Values: values,
			})
		},
	}
}
