// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// The resource statements carry no owner or business filter, the row security
// policies bound by db.WithScope decide which rows are reachable.

func (s *Storage) ListResources(ctx context.Context, table string, columns []string, scan func(Scanner) error) error {
	ctx, span := s.tracer.Start(ctx, "storage.ListResources")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC").
		QueryContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("failed to scan %s row: %w", table, err)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating %s rows: %w", table, err)
	}

	return nil
}

func (s *Storage) InsertResource(ctx context.Context, table string, values map[string]any, columns []string, scan func(Scanner) error) error {
	ctx, span := s.tracer.Start(ctx, "storage.InsertResource")
	defer span.End()

	err := scan(
		s.db.Statement(ctx).
			Insert(table).
			SetMap(values).
			Suffix("RETURNING " + strings.Join(columns, ", ")).
			QueryRowContext(ctx),
	)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return WrapDuplicateKeyError(err, table)
		}
		if IsForeignKeyViolation(err) {
			return WrapForeignKeyError(err, table)
		}
		if IsRowSecurityViolation(err) {
			return WrapRowSecurityError(err, table)
		}
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}

	return nil
}

func (s *Storage) UpdateResource(ctx context.Context, table, id string, values map[string]any, columns []string, scan func(Scanner) error) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateResource")
	defer span.End()

	err := scan(
		s.db.Statement(ctx).
			Update(table).
			SetMap(values).
			Where(sq.Eq{"id": id}).
			Suffix("RETURNING " + strings.Join(columns, ", ")).
			QueryRowContext(ctx),
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if IsForeignKeyViolation(err) {
			return WrapForeignKeyError(err, table)
		}
		if IsRowSecurityViolation(err) {
			return WrapRowSecurityError(err, table)
		}
		return fmt.Errorf("failed to update %s: %w", table, err)
	}

	return nil
}

func (s *Storage) DeleteResource(ctx context.Context, table, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteResource")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete(table).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}
