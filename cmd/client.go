// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	httptypes "github.com/canonical/business-access-service/internal/http/types"
	"github.com/canonical/business-access-service/internal/identity"
	"github.com/canonical/business-access-service/pkg/resources"
	"github.com/canonical/business-access-service/pkg/web"
)

// apiClient calls the JSON endpoints that are not record collections.
type apiClient struct {
	root string
	http *http.Client
}

// apiRoot returns the API prefix under the configured endpoint.
func apiRoot() string {
	root := endpoint
	if !strings.HasPrefix(root, "http") {
		root = "http://" + root
	}
	return strings.TrimSuffix(root, "/") + web.APIPrefix
}

func newAPIClient() *apiClient {
	c := new(apiClient)

	c.root = apiRoot()
	c.http = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

	return c
}

// sourceOptions authenticates record clients the same way as apiClient.
func sourceOptions() []resources.ClientOption {
	opts := make([]resources.ClientOption, 0, 2)
	if bearerToken != "" {
		opts = append(opts, resources.WithBearerToken(bearerToken))
	}
	if identityID != "" {
		opts = append(opts, resources.WithIdentity(identityID))
	}
	return opts
}

func (c *apiClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.root+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+bearerToken)
	}
	if identityID != "" {
		req.Header.Set(identity.HeaderName, identityID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	env := new(struct {
		Data json.RawMessage `json:"data"`
		httptypes.Response
	})

	if resp.StatusCode >= 400 {
		if err := json.Unmarshal(raw, env); err != nil || env.Message == "" {
			return fmt.Errorf("api error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(raw)))
		}
		return fmt.Errorf("api error (status %d): %w", resp.StatusCode, httptypes.ErrorFromResponse(&env.Response))
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, env); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to unmarshal response data: %w", err)
	}

	return nil
}

// printJSON writes v indented, used by the --format json outputs.
func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
