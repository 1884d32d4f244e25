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
	"errors"
	"fmt"
	"mime"
	"net/http"
	"time"

	exterrors "github.com/NVIDIA/extensible/pkg/errors"
	"github.com/NVIDIA/extensible/pkg/option"
	"github.com/NVIDIA/extensible/pkg/registry"
	"github.com/NVIDIA/extensible/pkg/serializer"
	"github.com/NVIDIA/extensible/pkg/server"
)

// ListResponse is returned by GET /v1/extensions.
type ListResponse struct {
	Points []registry.Summary `json:"points"`
}

// ValidateResponse is returned by POST /v1/extensions/{type}/{name}/options.
type ValidateResponse struct {
	Type   string        `json:"type"`
	Name   string        `json:"name"`
	Values option.Values `json:"values"`
}

func withTimeout(h http.HandlerFunc, d time.Duration) http.HandlerFunc {
	th := http.TimeoutHandler(h, d, `{"code":"TIMEOUT","message":"request timed out","retryable":true}`)
	return th.ServeHTTP
}

func handleListPoints(w http.ResponseWriter, _ *http.Request) {
	serializer.RespondJSON(w, http.StatusOK, ListResponse{Points: registry.Summaries()})
}

func handleListExtensions(w http.ResponseWriter, r *http.Request) {
	point := r.PathValue("type")
	c, ok := registry.Lookup(point)
	if !ok {
		server.WriteErrorFromErr(w, r, exterrors.NewWithContext(exterrors.ErrCodeNotFound,
			fmt.Sprintf("unknown extension type '%s'", point),
			map[string]any{exterrors.ContextKeyPoint: point}), "", nil)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, registry.Summary{
		Type:       point,
		Extensions: c.RegisteredNames(),
	})
}

func handleDescribe(w http.ResponseWriter, r *http.Request) {
	point, extName := r.PathValue("type"), r.PathValue("name")
	_, ext, err := registry.Resolve(point, extName)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "failed to describe extension", nil)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, registry.Describe(point, extName, ext))
}

func handleValidate(w http.ResponseWriter, r *http.Request) {
	point, extName := r.PathValue("type"), r.PathValue("name")

	raw, err := decodeOptions(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "failed to read options", nil)
		return
	}

	values, err := registry.Validate(point, extName, raw)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "failed to validate options", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ValidateResponse{
		Type:   point,
		Name:   extName,
		Values: values,
	})
}

// decodeOptions reads a raw option mapping from a JSON or YAML body. An
// empty body is an empty mapping.
func decodeOptions(r *http.Request) (option.Values, error) {
	format := serializer.FormatJSON
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, exterrors.Wrap(exterrors.ErrCodeInvalidRequest, "invalid Content-Type", err)
		}
		switch mediaType {
		case "application/json":
		case "application/yaml", "application/x-yaml", "text/yaml":
			format = serializer.FormatYAML
		default:
			return nil, exterrors.NewWithContext(exterrors.ErrCodeInvalidRequest,
				fmt.Sprintf("unsupported Content-Type %q", mediaType),
				map[string]any{"contentType": mediaType})
		}
	}

	if r.Body == nil || r.ContentLength == 0 {
		return option.Values{}, nil
	}

	reader, err := serializer.NewReader(format, r.Body)
	if err != nil {
		return nil, exterrors.Wrap(exterrors.ErrCodeInternal, "failed to create reader", err)
	}

	var raw option.Values
	if err := reader.Deserialize(&raw); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, exterrors.NewWithContext(exterrors.ErrCodeInvalidRequest,
				"request body too large", map[string]any{"limit": tooLarge.Limit})
		}
		if exterrors.CodeOf(err) == exterrors.ErrCodeInvalidValue {
			return nil, err
		}
		return nil, exterrors.Wrap(exterrors.ErrCodeInvalidRequest, "invalid options document", err)
	}
	if raw == nil {
		raw = option.Values{}
	}
	return raw, nil
}
