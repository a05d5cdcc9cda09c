// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/canonical/business-access-service/pkg/status"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Get the application's version",
	Long:  `Get the application's version, with --remote the version of the server at --endpoint`,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := status.CurrentBuildInfo()

		if remote, _ := cmd.Flags().GetBool("remote"); remote {
			info = new(status.BuildInfo)
			if err := newAPIClient().do(cmd.Context(), http.MethodGet, "/version", nil, info); err != nil {
				return fmt.Errorf("failed to get server version: %w", err)
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "App Version: %s\n", info.Version)
		if info.CommitHash != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Commit: %s\n", info.CommitHash)
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().Bool("remote", false, "Query the server instead of the local binary")

	rootCmd.AddCommand(versionCmd)
}
