// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resources

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/canonical/business-access-service/internal/storage"
	"github.com/canonical/business-access-service/internal/types"
)

// Scoped is embedded by every tenant scoped entity, its columns are set by
// the service and the database and never by the caller.
type Scoped struct {
	ID         string    `db:"id,readonly" json:"id"`
	OwnerID    string    `db:"owner_id,readonly" json:"owner_id"`
	BusinessID string    `db:"business_id,readonly" json:"business_id"`
	CreatedAt  time.Time `db:"created_at,readonly" json:"created_at"`
}

type column struct {
	name     string
	json     string
	field    string
	index    []int
	readonly bool
}

// Entity maps a Go struct onto a scoped table through its db tags, a
// ",readonly" option keeps a column out of inserts and patches.
type Entity[E any] struct {
	name    string
	table   string
	columns []column
}

func (e *Entity[E]) Name() string {
	return e.name
}

func (e *Entity[E]) Table() string {
	return e.table
}

func (e *Entity[E]) Columns() []string {
	names := make([]string, 0, len(e.columns))
	for _, c := range e.columns {
		names = append(names, c.name)
	}
	return names
}

// Writable returns the json names a patch may carry, sorted.
func (e *Entity[E]) Writable() []string {
	names := make([]string, 0, len(e.columns))
	for _, c := range e.columns {
		if !c.readonly {
			names = append(names, c.json)
		}
	}
	sort.Strings(names)
	return names
}

func (e *Entity[E]) scan(row storage.Scanner) (*E, error) {
	item := new(E)
	v := reflect.ValueOf(item).Elem()

	targets := make([]any, 0, len(e.columns))
	for _, c := range e.columns {
		targets = append(targets, v.FieldByIndex(c.index).Addr().Interface())
	}

	if err := row.Scan(targets...); err != nil {
		return nil, err
	}

	return item, nil
}

// values returns the writable columns of item, nil pointers are left out so
// the column default applies.
func (e *Entity[E]) values(item *E) map[string]any {
	v := reflect.ValueOf(item).Elem()

	out := make(map[string]any, len(e.columns))
	for _, c := range e.columns {
		if c.readonly {
			continue
		}

		f := v.FieldByIndex(c.index)
		if f.Kind() == reflect.Pointer && f.IsNil() {
			continue
		}
		out[c.name] = f.Interface()
	}

	return out
}

// Patch carries the json encoded new value of each changed field.
type Patch map[string]json.RawMessage

// decode applies patch onto a zero E and returns it together with the Go
// field names and column values that were set.
func (e *Entity[E]) decode(patch Patch) (*E, []string, map[string]any, error) {
	if len(patch) == 0 {
		return nil, nil, nil, types.NewValidationError("patch", "empty")
	}

	byJSON := make(map[string]column, len(e.columns))
	for _, c := range e.columns {
		byJSON[c.json] = c
	}

	verr := new(types.ValidationError)
	for key := range patch {
		c, ok := byJSON[key]
		switch {
		case !ok:
			verr.Fields = append(verr.Fields, types.FieldError{Field: key, Reason: "unknown"})
		case c.readonly:
			verr.Fields = append(verr.Fields, types.FieldError{Field: key, Reason: "readonly"})
		}
	}

	if len(verr.Fields) > 0 {
		sort.Slice(verr.Fields, func(i, j int) bool { return verr.Fields[i].Field < verr.Fields[j].Field })
		return nil, nil, nil, verr
	}

	raw, err := json.Marshal(patch)
	if err != nil {
		return nil, nil, nil, types.NewValidationError("patch", "invalid json")
	}

	item := new(E)
	if err := json.Unmarshal(raw, item); err != nil {
		return nil, nil, nil, types.NewValidationError("patch", err.Error())
	}

	v := reflect.ValueOf(item).Elem()
	fields := make([]string, 0, len(patch))
	values := make(map[string]any, len(patch))

	for key := range patch {
		c := byJSON[key]
		fields = append(fields, c.field)
		values[c.name] = v.FieldByIndex(c.index).Interface()
	}

	sort.Strings(fields)

	return item, fields, values, nil
}

// NewEntity inspects E, it panics when E is not a struct or carries no
// db tagged fields since that is a programming error.
func NewEntity[E any](name, table string) *Entity[E] {
	t := reflect.TypeFor[E]()
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("resources: %s is not a struct", t))
	}

	e := new(Entity[E])
	e.name = name
	e.table = table

	for _, f := range reflect.VisibleFields(t) {
		if f.Anonymous || !f.IsExported() {
			continue
		}

		tag, ok := f.Tag.Lookup("db")
		if !ok || tag == "-" {
			continue
		}

		col, opts, _ := strings.Cut(tag, ",")
		jsonName, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if jsonName == "" {
			jsonName = col
		}

		e.columns = append(e.columns, column{
			name:     col,
			json:     jsonName,
			field:    f.Name,
			index:    f.Index,
			readonly: opts == "readonly",
		})
	}

	if len(e.columns) == 0 {
		panic(fmt.Sprintf("resources: %s has no db columns", t))
	}

	return e
}
