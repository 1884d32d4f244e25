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

package serializer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"

	"github.com/NVIDIA/extensible/pkg/defaults"
	"github.com/NVIDIA/extensible/pkg/k8s/client"
)

const (
	// ConfigMapURIScheme prefixes ConfigMap locations: cm://namespace/name.
	ConfigMapURIScheme = "cm://"

	// ConfigMapDocumentPrefix names the data entry holding a serialized
	// document, followed by the file extension (extensible.yaml).
	ConfigMapDocumentPrefix = "extensible"

	// ConfigMapFieldManager is the server-side apply field manager.
	ConfigMapFieldManager = "extctl"
)

// DocumentKey returns the ConfigMap data key for a document with extension ext.
func DocumentKey(ext string) string {
	return ConfigMapDocumentPrefix + "." + ext
}

// ConfigMapWriter writes serialized data to a Kubernetes ConfigMap.
// The ConfigMap is created if it doesn't exist, or updated if it does.
type ConfigMapWriter struct {
	namespace string
	name      string
	format    Format
	encoder   Encoder
	client    client.Interface
	now       func() time.Time
}

// NewConfigMapWriter creates a ConfigMapWriter for namespace/name using the
// default encoder options of format. Unknown formats default to JSON.
func NewConfigMapWriter(namespace, name string, format Format) *ConfigMapWriter {
	enc, err := NewEncoder(format, nil)
	if err != nil {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		format = FormatJSON
		enc, _ = NewEncoder(FormatJSON, nil)
	}
	return &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    format,
		encoder:   enc,
		now:       time.Now,
	}
}

// WithEncoder replaces the encoder, keeping the format name.
func (w *ConfigMapWriter) WithEncoder(enc Encoder) *ConfigMapWriter {
	w.encoder = enc
	return w
}

// WithClient sets the Kubernetes client instead of the shared one.
func (w *ConfigMapWriter) WithClient(c client.Interface) *ConfigMapWriter {
	w.client = c
	return w
}

// data builds the ConfigMap data entries for v.
func (w *ConfigMapWriter) data(v any) (map[string]string, error) {
	var sb strings.Builder
	if err := w.encoder.Encode(&sb, v); err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return map[string]string{
		DocumentKey(w.encoder.FileExtension()): sb.String(),
		"format":                               string(w.format),
		"timestamp":                            w.now().UTC().Format(time.RFC3339),
	}, nil
}

// Serialize writes v to the ConfigMap with server-side apply. The ConfigMap
// holds the document under extensible.{json|yaml|txt} plus format and
// timestamp entries.
func (w *ConfigMapWriter) Serialize(ctx context.Context, v any) error {
	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	cs := w.client
	if cs == nil {
		var err error
		cs, _, err = client.GetKubeClient()
		if err != nil {
			return fmt.Errorf("failed to get kubernetes client: %w", err)
		}
	}

	data, err := w.data(v)
	if err != nil {
		return err
	}

	configMap := accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(map[string]string{
			"app.kubernetes.io/name":       "extensible",
			"app.kubernetes.io/managed-by": ConfigMapFieldManager,
			"app.kubernetes.io/component":  string(w.format),
		}).
		WithData(data)

	slog.Info("applying ConfigMap",
		"namespace", w.namespace,
		"name", w.name,
		"format", w.format)

	_, err = cs.CoreV1().ConfigMaps(w.namespace).Apply(
		writeCtx,
		configMap,
		metav1.ApplyOptions{
			FieldManager: ConfigMapFieldManager,
			Force:        true,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to apply ConfigMap %s/%s: %w", w.namespace, w.name, err)
	}
	return nil
}

// Close is a no-op for ConfigMapWriter as there are no resources to release.
func (w *ConfigMapWriter) Close() error {
	return nil
}

// ReadConfigMap returns the data entries of namespace/name.
func ReadConfigMap(ctx context.Context, cs client.Interface, namespace, name string) (map[string]string, error) {
	readCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapReadTimeout)
	defer cancel()

	cm, err := cs.CoreV1().ConfigMaps(namespace).Get(readCtx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get ConfigMap %s/%s: %w", namespace, name, err)
	}
	slog.Debug("read ConfigMap", "namespace", namespace, "name", name, "entries", len(cm.Data))
	return cm.Data, nil
}

// ConfigMapDocument finds a serialized document in ConfigMap data. It
// returns the content, its format and whether one was found.
func ConfigMapDocument(data map[string]string) (string, Format, bool) {
	for _, c := range []struct {
		ext    string
		format Format
	}{
		{"yaml", FormatYAML},
		{"yml", FormatYAML},
		{"json", FormatJSON},
		{"hcl", FormatHCL},
	} {
		if content, ok := data[DocumentKey(c.ext)]; ok {
			return content, c.format, true
		}
	}
	return "", "", false
}

// ParseConfigMapURI parses a ConfigMap URI in the format cm://namespace/name
// and returns the namespace and name components.
func ParseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, ConfigMapURIScheme), "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])

	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}

	return namespace, name, nil
}
