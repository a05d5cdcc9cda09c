// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resources

import (
	"time"

	"github.com/shopspring/decimal"
)

type Supplier struct {
	Scoped
	Name        string `db:"name" json:"name" validate:"required,max=120"`
	ContactName string `db:"contact_name" json:"contact_name" validate:"max=120"`
	Phone       string `db:"phone" json:"phone" validate:"max=32"`
	Email       string `db:"email" json:"email" validate:"omitempty,email"`
	Address     string `db:"address" json:"address" validate:"max=255"`
	Notes       string `db:"notes" json:"notes" validate:"max=1000"`
}

type Customer struct {
	Scoped
	Name    string `db:"name" json:"name" validate:"required,max=120"`
	Phone   string `db:"phone" json:"phone" validate:"max=32"`
	Email   string `db:"email" json:"email" validate:"omitempty,email"`
	Address string `db:"address" json:"address" validate:"max=255"`
}

type InventoryItem struct {
	Scoped
	Name         string          `db:"name" json:"name" validate:"required,max=120"`
	SKU          string          `db:"sku" json:"sku" validate:"max=64"`
	Quantity     int             `db:"quantity" json:"quantity" validate:"gte=0"`
	UnitPrice    decimal.Decimal `db:"unit_price" json:"unit_price" validate:"gte=0"`
	ReorderLevel int             `db:"reorder_level" json:"reorder_level" validate:"gte=0"`
}

type Expense struct {
	Scoped
	Category    string          `db:"category" json:"category" validate:"required,max=64"`
	Description string          `db:"description" json:"description" validate:"max=255"`
	Amount      decimal.Decimal `db:"amount" json:"amount" validate:"gt=0"`
	ExpenseDate *time.Time      `db:"expense_date" json:"expense_date,omitempty"`
	SupplierID  *string         `db:"supplier_id" json:"supplier_id,omitempty" validate:"omitnil,min=1"`
}

type Sale struct {
	Scoped
	CustomerID    *string         `db:"customer_id" json:"customer_id,omitempty" validate:"omitnil,min=1"`
	ItemID        *string         `db:"item_id" json:"item_id,omitempty" validate:"omitnil,min=1"`
	Quantity      int             `db:"quantity" json:"quantity" validate:"gte=1"`
	TotalAmount   decimal.Decimal `db:"total_amount" json:"total_amount" validate:"gt=0"`
	PaymentMethod string          `db:"payment_method" json:"payment_method" validate:"required,oneof=cash mobile_money card bank_transfer credit"`
	SaleDate      *time.Time      `db:"sale_date" json:"sale_date,omitempty"`
}

// CreditEntry is money owed by a customer, Balance is computed by the database.
type CreditEntry struct {
	Scoped
	CustomerID *string         `db:"customer_id" json:"customer_id,omitempty" validate:"omitnil,min=1"`
	Amount     decimal.Decimal `db:"amount" json:"amount" validate:"gt=0"`
	AmountPaid decimal.Decimal `db:"amount_paid" json:"amount_paid" validate:"gte=0"`
	Balance    decimal.Decimal `db:"balance,readonly" json:"balance"`
	DueDate    *time.Time      `db:"due_date" json:"due_date,omitempty"`
	Status     string          `db:"status" json:"status" validate:"required,oneof=open partial settled"`
}

var (
	Suppliers     = NewEntity[Supplier]("suppliers", "suppliers")
	Customers     = NewEntity[Customer]("customers", "customers")
	Inventory     = NewEntity[InventoryItem]("inventory", "inventory_items")
	Expenses      = NewEntity[Expense]("expenses", "expenses")
	Sales         = NewEntity[Sale]("sales", "sales")
	CreditEntries = NewEntity[CreditEntry]("credit", "credit_entries")
)

// Tables lists every tenant scoped table, the server refuses to start unless
// row security is enforced on all of them.
func Tables() []string {
	return []string{
		Suppliers.Table(),
		Customers.Table(),
		Inventory.Table(),
		Expenses.Table(),
		Sales.Table(),
		CreditEntries.Table(),
	}
}
