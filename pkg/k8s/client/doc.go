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

// Package client provides the Kubernetes client used to read option
// ConfigMaps and write command output to ConfigMaps.
//
// A shared client is built once on first use:
//
//	clientset, config, err := client.GetKubeClient()
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//
// ForKubeconfig picks between the shared client (empty path) and a fresh
// client for an explicit kubeconfig, which is what the --kubeconfig CLI flag
// needs:
//
//	cs, err := client.ForKubeconfig(cmd.String("kubeconfig"))
//
// Configuration is discovered from the KUBECONFIG environment variable, then
// ~/.kube/config, then the in-cluster service account.
//
// Interface aliases kubernetes.Interface so tests can substitute
// k8s.io/client-go/kubernetes/fake clientsets.
package client
