// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/business-access-service/internal/db"
	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
	"github.com/canonical/business-access-service/internal/tracing"
	"github.com/canonical/business-access-service/internal/types"
)

const (
	SystemRoleAdmin  = "admin"
	SystemRoleSystem = "system_admin"
	NGORoleAdmin     = "admin"
)

var businessColumns = []string{"id", "owner_id", "name", "business_type", "currency", "ngo_id", "created_at", "updated_at"}

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func scanBusiness(row Scanner) (*types.Business, error) {
	var b types.Business
	err := row.Scan(&b.ID, &b.OwnerID, &b.Name, &b.BusinessType, &b.Currency, &b.NGOID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Storage) FindBusinessByOwner(ctx context.Context, ownerID string) (*types.Business, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindBusinessByOwner")
	defer span.End()

	b, err := scanBusiness(
		s.db.Statement(ctx).
			Select(businessColumns...).
			From("businesses").
			Where(sq.Eq{"owner_id": ownerID}).
			QueryRowContext(ctx),
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	return b, nil
}

func (s *Storage) GetBusinessByID(ctx context.Context, id string) (*types.Business, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetBusinessByID")
	defer span.End()

	b, err := scanBusiness(
		s.db.Statement(ctx).
			Select(businessColumns...).
			From("businesses").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	return b, nil
}

// CreateBusiness inserts b, ErrDuplicateKey is returned when the owner already has one.
func (s *Storage) CreateBusiness(ctx context.Context, b *types.Business) (*types.Business, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateBusiness")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate business ID: %w", err)
	}

	created, err := scanBusiness(
		s.db.Statement(ctx).
			Insert("businesses").
			Columns("id", "owner_id", "name", "business_type", "currency", "ngo_id").
			Values(id.String(), b.OwnerID, b.Name, b.BusinessType, b.Currency, b.NGOID).
			Suffix("RETURNING id, owner_id, name, business_type, currency, ngo_id, created_at, updated_at").
			QueryRowContext(ctx),
	)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "business owner")
		}
		if IsRowSecurityViolation(err) {
			return nil, WrapRowSecurityError(err, "businesses")
		}
		return nil, fmt.Errorf("failed to insert business: %w", err)
	}

	return created, nil
}

// UpdateBusiness follows PATCH semantics, only the columns present in fields are written.
func (s *Storage) UpdateBusiness(ctx context.Context, id string, fields map[string]any) (*types.Business, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateBusiness")
	defer span.End()

	if len(fields) == 0 {
		return s.GetBusinessByID(ctx, id)
	}

	updated, err := scanBusiness(
		s.db.Statement(ctx).
			Update("businesses").
			SetMap(fields).
			Set("updated_at", sq.Expr("NOW()")).
			Where(sq.Eq{"id": id}).
			Suffix("RETURNING id, owner_id, name, business_type, currency, ngo_id, created_at, updated_at").
			QueryRowContext(ctx),
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update business: %w", err)
	}

	return updated, nil
}

// ListBusinesses returns the businesses visible in the current scope, ngoID narrows
// the result to a single NGO when set.
func (s *Storage) ListBusinesses(ctx context.Context, ngoID string, page, size int64) ([]*types.Business, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListBusinesses")
	defer span.End()

	pageSize := db.PageSize(size)

	query := s.db.Statement(ctx).
		Select(businessColumns...).
		From("businesses").
		OrderBy("created_at DESC").
		Limit(pageSize).
		Offset(db.Offset(page, pageSize))

	if ngoID != "" {
		query = query.Where(sq.Eq{"ngo_id": ngoID})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list businesses: %w", err)
	}
	defer rows.Close()

	businesses := make([]*types.Business, 0)
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan business: %w", err)
		}
		businesses = append(businesses, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating business rows: %w", err)
	}

	return businesses, nil
}

func (s *Storage) SetBusinessNGO(ctx context.Context, id string, ngoID *string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetBusinessNGO")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("businesses").
		Set("ngo_id", ngoID).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return WrapForeignKeyError(err, "ngo")
		}
		return fmt.Errorf("failed to set business ngo: %w", err)
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

func (s *Storage) HasSystemRole(ctx context.Context, identityID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.HasSystemRole")
	defer span.End()

	var exists bool
	err := s.db.Statement(ctx).
		Select("1").
		From("user_roles").
		Where(sq.Eq{"identity_id": identityID, "role": []string{SystemRoleAdmin, SystemRoleSystem}}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		QueryRowContext(ctx).
		Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("failed to check system role: %w", err)
	}

	return exists, nil
}

// FindActiveNGOAdminMembership returns the first active admin membership of identityID,
// ErrNotFound when there is none.
func (s *Storage) FindActiveNGOAdminMembership(ctx context.Context, identityID string) (*types.NGOMembership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.FindActiveNGOAdminMembership")
	defer span.End()

	var m types.NGOMembership
	err := s.db.Statement(ctx).
		Select("identity_id", "ngo_id", "role", "active", "created_at").
		From("ngo_members").
		Where(sq.Eq{"identity_id": identityID, "role": NGORoleAdmin, "active": true}).
		OrderBy("created_at ASC").
		Limit(1).
		QueryRowContext(ctx).
		Scan(&m.IdentityID, &m.NGOID, &m.Role, &m.Active, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ngo membership: %w", err)
	}

	return &m, nil
}

func (s *Storage) GrantRole(ctx context.Context, identityID, role string) error {
	ctx, span := s.tracer.Start(ctx, "storage.GrantRole")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("user_roles").
		Columns("identity_id", "role").
		Values(identityID, role).
		Suffix("ON CONFLICT (identity_id, role) DO NOTHING").
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to grant role: %w", err)
	}
	return nil
}

func (s *Storage) RevokeRole(ctx context.Context, identityID, role string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RevokeRole")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("user_roles").
		Where(sq.Eq{"identity_id": identityID, "role": role}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to revoke role: %w", err)
	}
	return nil
}

func (s *Storage) GetProfile(ctx context.Context, identityID string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProfile")
	defer span.End()

	var p types.Profile
	err := s.db.Statement(ctx).
		Select("identity_id", "onboarding_completed", "updated_at").
		From("profiles").
		Where(sq.Eq{"identity_id": identityID}).
		QueryRowContext(ctx).
		Scan(&p.IdentityID, &p.OnboardingCompleted, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &p, nil
}

// SeedProfile creates a pending profile, an existing one is left untouched.
func (s *Storage) SeedProfile(ctx context.Context, identityID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SeedProfile")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("profiles").
		Columns("identity_id", "onboarding_completed").
		Values(identityID, false).
		Suffix("ON CONFLICT (identity_id) DO NOTHING").
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to seed profile: %w", err)
	}
	return nil
}

func (s *Storage) CompleteProfile(ctx context.Context, identityID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.CompleteProfile")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("profiles").
		Columns("identity_id", "onboarding_completed").
		Values(identityID, true).
		Suffix("ON CONFLICT (identity_id) DO UPDATE SET onboarding_completed = TRUE, updated_at = NOW()").
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to complete profile: %w", err)
	}
	return nil
}

// VerifyRowSecurity fails unless every table has row level security enabled and forced.
func (s *Storage) VerifyRowSecurity(ctx context.Context, tables ...string) error {
	ctx, span := s.tracer.Start(ctx, "storage.VerifyRowSecurity")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("relname", "relrowsecurity", "relforcerowsecurity").
		From("pg_class").
		Where(sq.Eq{"relname": tables, "relkind": "r"}).
		Where("relnamespace = to_regnamespace(current_schema())").
		QueryContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect row security: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]bool, len(tables))
	for rows.Next() {
		var (
			name           string
			enabled, force bool
		)
		if err := rows.Scan(&name, &enabled, &force); err != nil {
			return fmt.Errorf("failed to scan row security: %w", err)
		}
		if !enabled || !force {
			return fmt.Errorf("%w: %s", ErrRowSecurityDisabled, name)
		}
		seen[name] = true
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating row security rows: %w", err)
	}

	for _, t := range tables {
		if !seen[t] {
			return fmt.Errorf("%w: %s does not exist", ErrRowSecurityDisabled, t)
		}
	}

	return nil
}
