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

// Package serializer reads and writes option documents and command output.
//
// Output encoders are extensions of the "serializer" extension point. Each
// encoder declares its own options and is instantiated through the registry:
//
//   - json: indent (int, default 2)
//   - yaml: indent (int, default 2)
//   - table: header (bool, default true), padding (int, default 2)
//
// json and yaml register eagerly from init(); table is registered lazily and
// its unit is loaded the first time it is requested.
//
// Usage:
//
//	w, err := serializer.NewWriterWithOptions(serializer.FormatJSON,
//	    option.Values{"indent": option.String("4")}, os.Stdout)
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	if err := w.Serialize(ctx, data); err != nil {
//	    return err
//	}
//
// Readers decode JSON, YAML and flat HCL attribute files from local paths,
// HTTP URLs and Kubernetes ConfigMaps (cm://namespace/name).
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
package serializer
