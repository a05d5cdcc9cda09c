// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/business-access-service/internal/types"
	"github.com/canonical/business-access-service/pkg/onboarding"
	"github.com/canonical/business-access-service/pkg/tenant"
)

var (
	businessName     string
	businessType     string
	businessCurrency string
	listPage         int64
	listSize         int64
	clearNGO         bool
)

var businessCmd = &cobra.Command{
	Use:   "business",
	Short: "Manage the business of the calling identity",
}

var showBusinessCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the business owned by the caller",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var business *types.Business
		if err := newAPIClient().do(cmd.Context(), http.MethodGet, "/business", nil, &business); err != nil {
			return fmt.Errorf("failed to get business: %w", err)
		}

		if business == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No business provisioned yet")
			return nil
		}

		return printJSON(cmd.OutOrStdout(), business)
	},
}

var updateBusinessCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the business profile, only the flags that are set are changed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile := new(tenant.BusinessProfile)
		if cmd.Flags().Changed("name") {
			profile.Name = &businessName
		}
		if cmd.Flags().Changed("type") {
			profile.BusinessType = &businessType
		}
		if cmd.Flags().Changed("currency") {
			profile.Currency = &businessCurrency
		}

		business := new(types.Business)
		if err := newAPIClient().do(cmd.Context(), http.MethodPut, "/business", profile, business); err != nil {
			return fmt.Errorf("failed to update business: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Business updated: %s (ID: %s)\n", business.Name, business.ID)
		return nil
	},
}

var listBusinessesCmd = &cobra.Command{
	Use:   "list",
	Short: "List the businesses visible to an admin",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		q.Set("page", strconv.FormatInt(listPage, 10))
		q.Set("size", strconv.FormatInt(listSize, 10))

		businesses := make([]*types.BusinessOwner, 0)
		if err := newAPIClient().do(cmd.Context(), http.MethodGet, "/admin/businesses?"+q.Encode(), nil, &businesses); err != nil {
			return fmt.Errorf("failed to list businesses: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tOWNER\tEMAIL\tNGO\tCREATED_AT")
		for _, b := range businesses {
			ngo := "-"
			if b.NGOID != nil {
				ngo = *b.NGOID
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", b.ID, b.Name, b.OwnerID, b.OwnerEmail, ngo, b.CreatedAt.Format(time.RFC3339))
		}
		w.Flush()
		return nil
	},
}

var setNGOCmd = &cobra.Command{
	Use:   "set-ngo [business-id] [ngo-id]",
	Short: "Affiliate a business with an NGO, or remove the affiliation with --clear",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := new(tenant.SetNGORequest)
		switch {
		case clearNGO && len(args) == 1:
		case !clearNGO && len(args) == 2:
			req.NGOID = &args[1]
		default:
			return fmt.Errorf("pass either an NGO ID or --clear")
		}

		path := "/admin/businesses/" + url.PathEscape(args[0]) + "/ngo"
		if err := newAPIClient().do(cmd.Context(), http.MethodPut, path, req, nil); err != nil {
			return fmt.Errorf("failed to update affiliation: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Business affiliation updated: %s\n", args[0])
		return nil
	},
}

var onboardingCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Complete onboarding with the initial business profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &onboarding.CompleteRequest{
			Name:         businessName,
			BusinessType: businessType,
			Currency:     businessCurrency,
		}

		business := new(types.Business)
		if err := newAPIClient().do(cmd.Context(), http.MethodPost, "/onboarding", req, business); err != nil {
			return fmt.Errorf("failed to complete onboarding: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Onboarding completed: %s (ID: %s)\n", business.Name, business.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(businessCmd)
	businessCmd.AddCommand(showBusinessCmd)
	businessCmd.AddCommand(updateBusinessCmd)
	businessCmd.AddCommand(listBusinessesCmd)
	businessCmd.AddCommand(setNGOCmd)
	businessCmd.AddCommand(onboardingCmd)

	for _, c := range []*cobra.Command{updateBusinessCmd, onboardingCmd} {
		c.Flags().StringVar(&businessName, "name", "", "Business name")
		c.Flags().StringVar(&businessType, "type", types.DefaultBusinessType, "Business type")
		c.Flags().StringVar(&businessCurrency, "currency", types.DefaultCurrency, "ISO 4217 currency code")
	}
	_ = onboardingCmd.MarkFlagRequired("name")

	listBusinessesCmd.Flags().Int64Var(&listPage, "page", 1, "Page number")
	listBusinessesCmd.Flags().Int64Var(&listSize, "size", 100, "Page size")

	setNGOCmd.Flags().BoolVar(&clearNGO, "clear", false, "Remove the NGO affiliation")
}
