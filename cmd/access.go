// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/business-access-service/pkg/access"
	"github.com/canonical/business-access-service/pkg/guard"
	"github.com/canonical/business-access-service/pkg/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Resolve and show the session of the caller",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		state := new(session.State)
		if err := newAPIClient().do(cmd.Context(), http.MethodPost, "/session", nil, state); err != nil {
			return fmt.Errorf("failed to resolve session: %w", err)
		}

		return printJSON(cmd.OutOrStdout(), state)
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Show the navigation menu computed for the caller",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		menu := new(access.Menu)
		if err := newAPIClient().do(cmd.Context(), http.MethodGet, "/navigation/menu", nil, menu); err != nil {
			return fmt.Errorf("failed to get menu: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "PAGE\tROUTE\tVISIBLE")
		for _, item := range menu.Items {
			fmt.Fprintf(w, "%s\t%s\t%v\n", item.Key, item.Route, item.Visible)
		}
		if menu.AdminPanel {
			fmt.Fprintf(w, "admin\t%s\ttrue\n", menu.AdminRoute)
		}
		w.Flush()
		return nil
	},
}

var guardCmd = &cobra.Command{
	Use:   "guard [path]",
	Short: "Evaluate the route guard for a path",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		decision := new(guard.Decision)
		path := "/navigation/guard?" + url.Values{"path": {args[0]}}.Encode()
		if err := newAPIClient().do(cmd.Context(), http.MethodGet, path, nil, decision); err != nil {
			return fmt.Errorf("failed to evaluate guard: %w", err)
		}

		if decision.Location != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", decision.Outcome, decision.Location)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), decision.Outcome)
		return nil
	},
}

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Manage explicit page grants, requires an admin caller",
}

var grantPageCmd = &cobra.Command{
	Use:   "grant [identity-id] [page]",
	Short: "Grant a page to an identity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := pageGrantRequest(args)
		if err != nil {
			return err
		}

		if err := newAPIClient().do(cmd.Context(), http.MethodPost, "/admin/page-grants", req, nil); err != nil {
			return fmt.Errorf("failed to grant page: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Page %s granted to %s\n", req.Page, req.IdentityID)
		return nil
	},
}

var revokePageCmd = &cobra.Command{
	Use:   "revoke [identity-id] [page]",
	Short: "Revoke a page grant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := pageGrantRequest(args)
		if err != nil {
			return err
		}

		if err := newAPIClient().do(cmd.Context(), http.MethodDelete, "/admin/page-grants", req, nil); err != nil {
			return fmt.Errorf("failed to revoke page: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Page %s revoked from %s\n", req.Page, req.IdentityID)
		return nil
	},
}

var resetPagesCmd = &cobra.Command{
	Use:   "reset [identity-id]",
	Short: "Remove every page grant, the identity falls back to its tier defaults",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "/admin/page-grants/" + url.PathEscape(args[0])
		if err := newAPIClient().do(cmd.Context(), http.MethodDelete, path, nil, nil); err != nil {
			return fmt.Errorf("failed to reset pages: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Page grants reset for %s\n", args[0])
		return nil
	},
}

func pageGrantRequest(args []string) (*access.PageGrantRequest, error) {
	page, ok := access.ParsePageKey(args[1])
	if !ok {
		return nil, fmt.Errorf("unknown page %q, expected one of %v", args[1], access.Pages())
	}

	return &access.PageGrantRequest{IdentityID: args[0], Page: string(page)}, nil
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(guardCmd)
	rootCmd.AddCommand(pagesCmd)
	pagesCmd.AddCommand(grantPageCmd)
	pagesCmd.AddCommand(revokePageCmd)
	pagesCmd.AddCommand(resetPagesCmd)
}
