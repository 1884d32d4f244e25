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

package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/NVIDIA/extensible/pkg/defaults"
	"github.com/NVIDIA/extensible/pkg/errors"
	"github.com/NVIDIA/extensible/pkg/k8s/client"
	"github.com/NVIDIA/extensible/pkg/option"
	"github.com/NVIDIA/extensible/pkg/serializer"
)

// Option configures Load.
type Option func(*loader)

type loader struct {
	kubeconfig string
	kubeClient client.Interface
	http       *serializer.HttpReader
}

// WithKubeconfig selects the kubeconfig used for cm:// sources.
func WithKubeconfig(path string) Option {
	return func(l *loader) {
		l.kubeconfig = path
	}
}

// WithKubeClient sets the client used for cm:// sources.
func WithKubeClient(c client.Interface) Option {
	return func(l *loader) {
		l.kubeClient = c
	}
}

// WithHttpReader sets the reader used for http(s) sources.
func WithHttpReader(r *serializer.HttpReader) Option {
	return func(l *loader) {
		l.http = r
	}
}

// Load reads the raw option mapping at uri.
func Load(ctx context.Context, uri string, opts ...Option) (option.Values, error) {
	l := &loader{}
	for _, o := range opts {
		o(l)
	}

	uri = strings.TrimSpace(uri)
	if uri == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "configuration source is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.CLIConfigLoadTimeout)
	defer cancel()

	slog.Debug("loading options", "source", uri)

	switch {
	case strings.HasPrefix(uri, serializer.ConfigMapURIScheme):
		return l.loadConfigMap(ctx, uri)
	case strings.HasPrefix(uri, "http://"), strings.HasPrefix(uri, "https://"):
		return l.loadURL(ctx, uri)
	default:
		return loadFile(ctx, uri)
	}
}

func readableFormat(uri string) (serializer.Format, error) {
	format := serializer.FormatFromPath(uri)
	if !format.IsReadable() {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported configuration format %q", format),
			map[string]any{"source": uri})
	}
	return format, nil
}

func loadFile(ctx context.Context, path string) (option.Values, error) {
	format, err := readableFormat(path)
	if err != nil {
		return nil, err
	}

	if _, statErr := os.Stat(path); statErr != nil {
		code := errors.ErrCodeInvalidRequest
		if os.IsNotExist(statErr) {
			code = errors.ErrCodeNotFound
		}
		return nil, errors.WrapWithContext(code,
			fmt.Sprintf("unable to read configuration file %s", path), statErr,
			map[string]any{"source": path})
	}

	r, err := serializer.NewFileReader(ctx, format, path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to open configuration", err)
	}
	defer func() {
		if closeErr := r.Close(); closeErr != nil {
			slog.Warn("failed to close configuration file", "path", path, "error", closeErr)
		}
	}()

	return decode(r, path)
}

func (l *loader) loadURL(ctx context.Context, url string) (option.Values, error) {
	format, err := readableFormat(url)
	if err != nil {
		return nil, err
	}

	hr := l.http
	if hr == nil {
		hr = serializer.NewHttpReader()
	}
	data, err := hr.ReadWithContext(ctx, url)
	if err != nil {
		return nil, err
	}

	r, err := serializer.NewReader(format, strings.NewReader(string(data)))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to read configuration", err)
	}
	return decode(r, url)
}

func (l *loader) loadConfigMap(ctx context.Context, uri string) (option.Values, error) {
	namespace, name, err := serializer.ParseConfigMapURI(uri)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid configuration source", err)
	}

	cs := l.kubeClient
	if cs == nil {
		cs, err = client.ForKubeconfig(l.kubeconfig)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeUnavailable, "failed to get kubernetes client", err)
		}
	}

	data, err := serializer.ReadConfigMap(ctx, cs, namespace, name)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeNotFound,
			fmt.Sprintf("unable to read configuration from %s", uri), err,
			map[string]any{"namespace": namespace, "name": name})
	}

	if content, format, ok := serializer.ConfigMapDocument(data); ok {
		r, err := serializer.NewReader(format, strings.NewReader(content))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to read configuration", err)
		}
		return decode(r, uri)
	}

	out := make(option.Values, len(data))
	for k, v := range data {
		out[k] = option.String(v)
	}
	return out, nil
}

func decode(r *serializer.Reader, source string) (option.Values, error) {
	var out option.Values
	if err := r.Deserialize(&out); err != nil {
		// unsupported values keep their code; syntax errors are bad requests
		code := errors.ErrCodeInvalidRequest
		if errors.CodeOf(err) == errors.ErrCodeInvalidValue {
			code = errors.ErrCodeInvalidValue
		}
		return nil, errors.WrapWithContext(code,
			fmt.Sprintf("invalid configuration in %s", source), err,
			map[string]any{"source": source})
	}
	if out == nil {
		out = option.Values{}
	}
	return out, nil
}
