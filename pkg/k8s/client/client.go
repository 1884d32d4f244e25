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

package client

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
)

// Interface is an alias for kubernetes.Interface to allow fake clientsets in tests.
type Interface = kubernetes.Interface

var (
	clientOnce   sync.Once
	cachedClient Interface
	cachedConfig *rest.Config
	clientErr    error
)

// GetKubeClient returns a shared Kubernetes client, creating it on first call.
func GetKubeClient() (Interface, *rest.Config, error) {
	clientOnce.Do(func() {
		cs, cfg, err := BuildKubeClient("")
		if err != nil {
			clientErr = err
			return
		}
		cachedClient, cachedConfig = cs, cfg
	})
	return cachedClient, cachedConfig, clientErr
}

// ForKubeconfig returns the shared client for an empty path and a new client
// built from kubeconfig otherwise.
func ForKubeconfig(kubeconfig string) (Interface, error) {
	if kubeconfig == "" {
		cs, _, err := GetKubeClient()
		return cs, err
	}
	cs, _, err := BuildKubeClient(kubeconfig)
	if err != nil {
		return nil, err
	}
	return cs, nil
}

// ResolveKubeconfig returns the kubeconfig path that BuildKubeClient would
// use, or an empty string for in-cluster configuration.
func ResolveKubeconfig(kubeconfig string) string {
	if kubeconfig != "" {
		return kubeconfig
	}
	if env := os.Getenv("KUBECONFIG"); env != "" {
		return env
	}
	home := filepath.Join(homedir.HomeDir(), ".kube", "config")
	if _, err := os.Stat(home); err == nil {
		return home
	}
	return ""
}

// BuildKubeClient creates a Kubernetes client from the given kubeconfig file,
// bypassing the shared client. An empty path uses automatic discovery.
func BuildKubeClient(kubeconfig string) (*kubernetes.Clientset, *rest.Config, error) {
	var config *rest.Config
	var err error

	kubeconfig = ResolveKubeconfig(kubeconfig)

	// in-cluster directly, avoids the "Neither --kubeconfig nor --master" warning
	if kubeconfig == "" {
		config, err = rest.InClusterConfig()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get in-cluster config: %w", err)
		}
	} else {
		config, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build kube config from %s: %w", kubeconfig, err)
		}
	}

	client, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	return client, config, nil
}
