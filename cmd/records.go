// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/pkg/resources"
)

var recordData string

// recordClient runs the record commands for one entity over the HTTP API.
type recordClient interface {
	list(ctx context.Context, out io.Writer) error
	create(ctx context.Context, out io.Writer, raw []byte) error
	update(ctx context.Context, out io.Writer, id string, raw []byte) error
	remove(ctx context.Context, id string) error
	watch(ctx context.Context, out io.Writer) error
}

type entityClient[E any] struct {
	entity *resources.Entity[E]
}

func (c *entityClient[E]) store() *resources.Store[E] {
	source := resources.NewHTTPSource(c.entity, apiRoot(), sourceOptions()...)
	return resources.NewStore(c.entity, source, logging.NewLogger("error"))
}

func (c *entityClient[E]) list(ctx context.Context, out io.Writer) error {
	s := c.store()
	defer s.Close()

	if err := s.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to list %s: %w", c.entity.Name(), err)
	}

	return printJSON(out, s.Items())
}

func (c *entityClient[E]) create(ctx context.Context, out io.Writer, raw []byte) error {
	item := new(E)
	if err := json.Unmarshal(raw, item); err != nil {
		return fmt.Errorf("invalid %s data: %w", c.entity.Name(), err)
	}

	s := c.store()
	defer s.Close()

	created, err := s.Create(ctx, item)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", c.entity.Name(), err)
	}

	return printJSON(out, created)
}

func (c *entityClient[E]) update(ctx context.Context, out io.Writer, id string, raw []byte) error {
	patch := make(resources.Patch)
	if err := json.Unmarshal(raw, &patch); err != nil {
		return fmt.Errorf("invalid patch: %w", err)
	}

	s := c.store()
	defer s.Close()

	updated, err := s.Update(ctx, id, patch)
	if err != nil {
		return fmt.Errorf("failed to update %s %s: %w", c.entity.Name(), id, err)
	}

	return printJSON(out, updated)
}

func (c *entityClient[E]) remove(ctx context.Context, id string) error {
	s := c.store()
	defer s.Close()

	if err := s.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", c.entity.Name(), id, err)
	}
	return nil
}

// watch prints the whole list every time it changes until ctx is done.
func (c *entityClient[E]) watch(ctx context.Context, out io.Writer) error {
	s := c.store()
	defer s.Close()

	s.OnUpdate(func(items []*E) {
		fmt.Fprintf(out, "--- %s (%d)\n", c.entity.Name(), len(items))
		_ = printJSON(out, items)
	})

	err := s.Watch(ctx)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

var recordClients = map[string]recordClient{
	resources.Suppliers.Name():     &entityClient[resources.Supplier]{entity: resources.Suppliers},
	resources.Customers.Name():     &entityClient[resources.Customer]{entity: resources.Customers},
	resources.Inventory.Name():     &entityClient[resources.InventoryItem]{entity: resources.Inventory},
	resources.Expenses.Name():      &entityClient[resources.Expense]{entity: resources.Expenses},
	resources.Sales.Name():         &entityClient[resources.Sale]{entity: resources.Sales},
	resources.CreditEntries.Name(): &entityClient[resources.CreditEntry]{entity: resources.CreditEntries},
}

func recordNames() []string {
	names := make([]string, 0, len(recordClients))
	for name := range recordClients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupRecords(name string) (recordClient, error) {
	c, ok := recordClients[name]
	if !ok {
		return nil, fmt.Errorf("unknown record type %q, expected one of %s", name, strings.Join(recordNames(), ", "))
	}
	return c, nil
}

func readRecordData(cmd *cobra.Command) ([]byte, error) {
	if recordData == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	if recordData == "" {
		return nil, fmt.Errorf("--data is required")
	}
	return []byte(recordData), nil
}

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Operate on the records of the caller's business",
}

var listRecordsCmd = &cobra.Command{
	Use:       "list [type]",
	Short:     "List records of a type",
	Args:      cobra.ExactArgs(1),
	ValidArgs: recordNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := lookupRecords(args[0])
		if err != nil {
			return err
		}
		return c.list(cmd.Context(), cmd.OutOrStdout())
	},
}

var createRecordCmd = &cobra.Command{
	Use:   "create [type]",
	Short: "Create a record from JSON, pass --data - to read stdin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := lookupRecords(args[0])
		if err != nil {
			return err
		}

		raw, err := readRecordData(cmd)
		if err != nil {
			return err
		}
		return c.create(cmd.Context(), cmd.OutOrStdout(), raw)
	},
}

var updateRecordCmd = &cobra.Command{
	Use:   "update [type] [id]",
	Short: "Apply a JSON patch to a record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := lookupRecords(args[0])
		if err != nil {
			return err
		}

		raw, err := readRecordData(cmd)
		if err != nil {
			return err
		}
		return c.update(cmd.Context(), cmd.OutOrStdout(), args[1], raw)
	},
}

var deleteRecordCmd = &cobra.Command{
	Use:   "delete [type] [id]",
	Short: "Delete a record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := lookupRecords(args[0])
		if err != nil {
			return err
		}

		if err := c.remove(cmd.Context(), args[1]); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s %s\n", args[0], args[1])
		return nil
	},
}

var watchRecordsCmd = &cobra.Command{
	Use:   "watch [type]",
	Short: "Print the records of a type every time they change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := lookupRecords(args[0])
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return c.watch(ctx, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(recordsCmd)
	recordsCmd.AddCommand(listRecordsCmd)
	recordsCmd.AddCommand(createRecordCmd)
	recordsCmd.AddCommand(updateRecordCmd)
	recordsCmd.AddCommand(deleteRecordCmd)
	recordsCmd.AddCommand(watchRecordsCmd)

	for _, c := range []*cobra.Command{createRecordCmd, updateRecordCmd} {
		c.Flags().StringVar(&recordData, "data", "", "Record JSON, - reads from stdin")
	}
}
