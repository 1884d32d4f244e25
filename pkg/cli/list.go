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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/extensible/pkg/errors"
	"github.com/NVIDIA/extensible/pkg/registry"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List extension points and their implementations",
		Description: `Print every extension point known to this build with the names registered
under it. Lazily registered implementations are listed without loading them.

# Examples

  extctl list
  extctl list --type serializer --format json`,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "only list implementations of this extension point",
			},
		}, outputFlags()...),
		DisableSliceFlagSeparator: true,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			point := cmd.String("type")
			if point == "" {
				return writeResult(ctx, cmd, registry.Summaries())
			}

			c, ok := registry.Lookup(point)
			if !ok {
				return errors.NewWithContext(errors.ErrCodeNotFound,
					fmt.Sprintf("unknown extension type '%s'", point),
					map[string]any{errors.ContextKeyPoint: point})
			}
			return writeResult(ctx, cmd, registry.Summary{
				Type:       point,
				Extensions: c.RegisteredNames(),
			})
		},
	}
}
