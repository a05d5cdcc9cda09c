// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/openfga/go-sdk/client"
	"github.com/spf13/cobra"
	corev1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/canonical/business-access-service/internal/authorization"
	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
	"github.com/canonical/business-access-service/internal/openfga"
	"github.com/canonical/business-access-service/internal/tracing"
)

const (
	StoreName    = "business-access-service"
	modelVersion = "v0"

	configMapStoreKey = "OPENFGA_STORE_ID"
	configMapModelKey = "OPENFGA_AUTHORIZATION_MODEL_ID"
)

// fgaIDs identifies the page grant model the server checks against.
type fgaIDs struct {
	StoreID string `json:"store_id"`
	ModelID string `json:"model_id"`
}

var fgaCmd = &cobra.Command{
	Use:   "fga",
	Short: "Manage the OpenFGA page grant model",
}

var printFgaModelCmd = &cobra.Command{
	Use:   "print-model",
	Short: "Print the page grant model",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		provider := authorization.NewAuthorizationModelProvider(modelVersion)

		format, _ := cmd.Flags().GetString("format")
		if format == "json" {
			return printJSON(cmd.OutOrStdout(), provider.GetModel())
		}

		fmt.Fprint(cmd.OutOrStdout(), provider.DSL())
		return nil
	},
}

// createFgaModelCmd writes the model, creating the store first when none is given.
var createFgaModelCmd = &cobra.Command{
	Use:   "create-model",
	Short: "Creates the page grant model in an openfga store",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		apiURL, _ := cmd.Flags().GetString("fga-api-url")
		apiToken, _ := cmd.Flags().GetString("fga-api-token")
		storeID, _ := cmd.Flags().GetString("fga-store-id")
		format, _ := cmd.Flags().GetString("format")
		verbose, _ := cmd.Flags().GetBool("verbose")
		configMapResource, _ := cmd.Flags().GetString("store-k8s-configmap-resource")
		kubeconfigPath, _ := cmd.Flags().GetString("kubeconfig")

		ids, err := createModel(cmd.Context(), apiURL, apiToken, storeID, verbose)
		if err != nil {
			cmd.PrintErrln(err)
			os.Exit(1)
		}

		if configMapResource != "" {
			if err := publishIDs(cmd.Context(), kubeconfigPath, configMapResource, ids); err != nil {
				cmd.PrintErrln(fmt.Errorf("failed to update configmap: %w", err))
				os.Exit(1)
			}
			cmd.Printf("ConfigMap %s updated successfully\n", configMapResource)
		}

		if format == "json" {
			if err := json.NewEncoder(cmd.OutOrStdout()).Encode(ids); err != nil {
				cmd.PrintErrln(fmt.Errorf("failed to encode output: %v", err))
				os.Exit(1)
			}
			return
		}

		cmd.Printf("Created model: %s\n", ids.ModelID)
		if storeID == "" {
			cmd.Printf("Created store: %s\n", ids.StoreID)
		}
	},
}

func init() {
	rootCmd.AddCommand(fgaCmd)
	fgaCmd.AddCommand(createFgaModelCmd)
	fgaCmd.AddCommand(printFgaModelCmd)

	fgaCmd.PersistentFlags().String("format", "text", "Output format (text or json)")

	createFgaModelCmd.Flags().String("fga-api-url", "", "The openfga API URL")
	createFgaModelCmd.Flags().String("fga-api-token", "", "The openfga API token")
	createFgaModelCmd.Flags().String("fga-store-id", "", "The openfga store to create the model in, if empty one will be created")
	createFgaModelCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	createFgaModelCmd.Flags().String("store-k8s-configmap-resource", "", "The configmap resource to store the FGA Store ID and Model ID, format: namespace/name")
	createFgaModelCmd.Flags().String("kubeconfig", "", "Path to the kubeconfig file (optional, defaults to in-cluster config)")
	_ = createFgaModelCmd.MarkFlagRequired("fga-api-url")
	_ = createFgaModelCmd.MarkFlagRequired("fga-api-token")
}

func createModel(ctx context.Context, apiURL, apiToken, storeID string, verbose bool) (*fgaIDs, error) {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor(StoreName, logger)

	u, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url: %w", err)
	}

	fgaClient := openfga.NewClient(
		openfga.NewConfig(u.Scheme, u.Host, storeID, apiToken, "", verbose, tracer, monitor, logger),
	)

	if storeID == "" {
		if storeID, err = fgaClient.CreateStore(ctx, StoreName); err != nil {
			return nil, fmt.Errorf("failed to create store: %w", err)
		}

		if err := fgaClient.SetStoreID(ctx, storeID); err != nil {
			return nil, fmt.Errorf("failed to select store %s: %w", storeID, err)
		}
	}

	model := authorization.NewAuthorizationModelProvider(modelVersion).GetModel()

	modelID, err := fgaClient.WriteModel(
		ctx,
		&client.ClientWriteAuthorizationModelRequest{
			TypeDefinitions: model.TypeDefinitions,
			SchemaVersion:   model.SchemaVersion,
			Conditions:      model.Conditions,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to write model: %w", err)
	}

	return &fgaIDs{StoreID: storeID, ModelID: modelID}, nil
}

func kubeConfig(path string) (*rest.Config, error) {
	if path != "" {
		return clientcmd.BuildConfigFromFlags("", path)
	}

	if config, err := rest.InClusterConfig(); err == nil {
		return config, nil
	}

	// outside a cluster the default loading rules apply
	return clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		clientcmd.NewDefaultClientConfigLoadingRules(),
		&clientcmd.ConfigOverrides{},
	).ClientConfig()
}

// publishIDs stores the IDs in a ConfigMap the server deployment reads its env from.
func publishIDs(ctx context.Context, kubeconfigPath, resource string, ids *fgaIDs) error {
	namespace, name, ok := strings.Cut(resource, "/")
	if !ok || namespace == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("invalid configmap resource format: %s, expected namespace/name", resource)
	}

	config, err := kubeConfig(kubeconfigPath)
	if err != nil {
		return fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	configMaps := clientset.CoreV1().ConfigMaps(namespace)

	cm, err := configMaps.Get(ctx, name, metav1.GetOptions{})
	if k8serrors.IsNotFound(err) {
		cm = &corev1.ConfigMap{ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace}}
		cm.Data = ids.configMapData(nil)

		if _, err := configMaps.Create(ctx, cm, metav1.CreateOptions{}); err != nil {
			return fmt.Errorf("failed to create configmap %s: %w", resource, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get configmap %s: %w", resource, err)
	}

	cm.Data = ids.configMapData(cm.Data)

	if _, err := configMaps.Update(ctx, cm, metav1.UpdateOptions{}); err != nil {
		return fmt.Errorf("failed to update configmap %s: %w", resource, err)
	}

	return nil
}

func (ids *fgaIDs) configMapData(data map[string]string) map[string]string {
	if data == nil {
		data = make(map[string]string, 2)
	}

	data[configMapStoreKey] = ids.StoreID
	data[configMapModelKey] = ids.ModelID

	return data
}
