// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

type PageKey string

const (
	Dashboard PageKey = "dashboard"
	Sales     PageKey = "sales"
	Invoices  PageKey = "invoices"
	Customers PageKey = "customers"
	Inventory PageKey = "inventory"
	Suppliers PageKey = "suppliers"
	Expenses  PageKey = "expenses"
	Credit    PageKey = "credit"
	Reports   PageKey = "reports"
	Settings  PageKey = "settings"
)

// AdminPanelRoute is the administrative surface, it is not a PageKey.
const AdminPanelRoute = "/admin"

var pages = []PageKey{
	Dashboard,
	Sales,
	Invoices,
	Customers,
	Inventory,
	Suppliers,
	Expenses,
	Credit,
	Reports,
	Settings,
}

// Pages returns every PageKey in menu order.
func Pages() []PageKey {
	out := make([]PageKey, len(pages))
	copy(out, pages)
	return out
}

func (p PageKey) Route() string {
	return "/" + string(p)
}

func (p PageKey) Valid() bool {
	for _, k := range pages {
		if k == p {
			return true
		}
	}
	return false
}

// ParsePageKey returns the PageKey named by s.
func ParsePageKey(s string) (PageKey, bool) {
	p := PageKey(s)
	return p, p.Valid()
}
