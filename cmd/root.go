// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	identityID  string
	endpoint    string
	bearerToken string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "business-access",
	Short: "Business Access Service",
	Long:  `Business Access Service CLI for serving the dashboard API and operating on businesses, page grants and records.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "http://localhost:8080", "HTTP server endpoint")
	rootCmd.PersistentFlags().StringVar(&bearerToken, "token", "", "Bearer token sent with every request")
	rootCmd.PersistentFlags().StringVar(&identityID, "identity-id", "", "Identity ID for impersonation, requires the server to trust the identity header")
}
