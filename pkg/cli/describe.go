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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/extensible/pkg/registry"
)

func describeCmd() *cli.Command {
	return &cli.Command{
		Name:      "describe",
		Usage:     "Describe an extension and its options",
		ArgsUsage: "TYPE NAME",
		Description: `Print the label, documentation and declared options of one extension.
Describing a lazily registered extension loads it.

# Examples

  extctl describe serializer table
  extctl describe serializer json --format table`,
		Flags:                     outputFlags(),
		DisableSliceFlagSeparator: true,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			point, extName, err := typeAndName(cmd)
			if err != nil {
				return err
			}

			_, ext, err := registry.Resolve(point, extName)
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, registry.Describe(point, extName, ext))
		},
	}
}
