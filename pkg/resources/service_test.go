// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resources

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/business-access-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package resources -destination ./mock_interfaces.go -source=./interfaces.go

func newSupplierService(s StorageInterface, tenants TenantResolverInterface) *Service[Supplier] {
	tracer, monitor, logger := noopDeps()
	return NewService(Suppliers, s, ownerScope{}, tenants, tracer, monitor, logger)
}

func tenantOf(ctrl *gomock.Controller, businesses map[string]string) *MockTenantResolverInterface {
	tenants := NewMockTenantResolverInterface(ctrl)
	tenants.EXPECT().ResolveOrCreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, identityID string) (*types.Business, error) {
			return &types.Business{ID: businesses[identityID], OwnerID: identityID}, nil
		},
	).AnyTimes()
	return tenants
}

func TestService_CreateStampsOwnerAndBusiness(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newSupplierService(newMemStorage(), tenantOf(ctrl, map[string]string{"owner-1": "b-1"}))

	created, err := service.Create(context.Background(), "owner-1", &Supplier{Name: "Kamara Wholesale"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if created.ID == "" || created.OwnerID != "owner-1" || created.BusinessID != "b-1" || created.CreatedAt.IsZero() {
		t.Errorf("expected a stamped supplier, got %+v", created)
	}

	items, err := service.List(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if len(items) != 1 || items[0].ID != created.ID || items[0].BusinessID != "b-1" {
		t.Errorf("expected the created supplier to be listed, got %+v", items)
	}
}

func TestService_RowsOfOtherOwnersAreInvisible(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := newMemStorage()
	service := newSupplierService(store, tenantOf(ctrl, map[string]string{"owner-1": "b-1", "owner-2": "b-2"}))

	theirs, err := service.Create(context.Background(), "owner-2", &Supplier{Name: "Their Supplier"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	items, err := service.List(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no visible suppliers, got %d", len(items))
	}

	_, err = service.Update(context.Background(), "owner-1", theirs.ID, Patch{"name": json.RawMessage(`"Mine now"`)})
	if !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}

	if err := service.Remove(context.Background(), "owner-1", theirs.ID); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}

	if store.count("suppliers") != 1 {
		t.Error("expected the other owner's supplier to survive")
	}
}

func TestService_CreateValidatesBeforeAnyRequest(t *testing.T) {
	tests := []struct {
		name string
		item *Supplier
	}{
		{"missing name", &Supplier{}},
		{"invalid email", &Supplier{Name: "Kamara", Email: "not-an-email"}},
		{"no body", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storage := NewMockStorageInterface(ctrl)
			tenants := NewMockTenantResolverInterface(ctrl)
			tenants.EXPECT().ResolveOrCreateTenant(gomock.Any(), gomock.Any()).Times(0)

			_, err := newSupplierService(storage, tenants).Create(context.Background(), "owner-1", tt.item)

			if !errors.Is(err, types.ErrValidation) {
				t.Fatalf("expected a validation error, got %v", err)
			}
		})
	}
}

func TestService_CreateErrors(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*MockStorageInterface, *MockTenantResolverInterface)
		expectedError error
	}{
		{
			name: "tenant resolution failure",
			setupMocks: func(s *MockStorageInterface, r *MockTenantResolverInterface) {
				r.EXPECT().ResolveOrCreateTenant(gomock.Any(), "owner-1").Return(nil, types.ErrTransientStorage)
			},
			expectedError: types.ErrTransientStorage,
		},
		{
			name: "storage failure",
			setupMocks: func(s *MockStorageInterface, r *MockTenantResolverInterface) {
				r.EXPECT().ResolveOrCreateTenant(gomock.Any(), "owner-1").Return(&types.Business{ID: "b-1"}, nil)
				s.EXPECT().InsertResource(gomock.Any(), "suppliers", gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			expectedError: types.ErrTransientStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storage := NewMockStorageInterface(ctrl)
			tenants := NewMockTenantResolverInterface(ctrl)
			tt.setupMocks(storage, tenants)

			_, err := newSupplierService(storage, tenants).Create(context.Background(), "owner-1", &Supplier{Name: "Kamara"})

			if !errors.Is(err, tt.expectedError) {
				t.Fatalf("expected %v, got %v", tt.expectedError, err)
			}
		})
	}
}

func TestService_UpdateRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newSupplierService(newMemStorage(), tenantOf(ctrl, map[string]string{"owner-1": "b-1"}))

	created, err := service.Create(context.Background(), "owner-1", &Supplier{Name: "Kamara", Phone: "+23276000000"})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	updated, err := service.Update(context.Background(), "owner-1", created.ID, Patch{"name": json.RawMessage(`"Kamara & Sons"`)})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if updated.Name != "Kamara & Sons" || updated.Phone != "+23276000000" || updated.BusinessID != "b-1" {
		t.Errorf("unexpected update result %+v", updated)
	}

	items, err := service.List(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	if len(items) != 1 || items[0].Name != "Kamara & Sons" {
		t.Errorf("expected the update to be listed, got %+v", items)
	}
}

func TestService_UpdateRejectsInvalidPatch(t *testing.T) {
	tests := []struct {
		name  string
		patch Patch
	}{
		{"readonly column", Patch{"business_id": json.RawMessage(`"b-2"`)}},
		{"unknown column", Patch{"rating": json.RawMessage(`5`)}},
		{"invalid value", Patch{"email": json.RawMessage(`"nope"`)}},
		{"cleared required value", Patch{"name": json.RawMessage(`""`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			storage := NewMockStorageInterface(ctrl)
			storage.EXPECT().UpdateResource(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			_, err := newSupplierService(storage, NewMockTenantResolverInterface(ctrl)).Update(context.Background(), "owner-1", "s-1", tt.patch)

			if !errors.Is(err, types.ErrValidation) {
				t.Fatalf("expected a validation error, got %v", err)
			}
		})
	}
}

func TestService_RequiresIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newSupplierService(NewMockStorageInterface(ctrl), NewMockTenantResolverInterface(ctrl))

	if _, err := service.List(context.Background(), ""); !errors.Is(err, types.ErrNotAuthenticated) {
		t.Errorf("expected not authenticated, got %v", err)
	}
	if _, err := service.Create(context.Background(), "", &Supplier{Name: "x"}); !errors.Is(err, types.ErrNotAuthenticated) {
		t.Errorf("expected not authenticated, got %v", err)
	}
	if err := service.Remove(context.Background(), "", "s-1"); !errors.Is(err, types.ErrNotAuthenticated) {
		t.Errorf("expected not authenticated, got %v", err)
	}
}

func TestService_ListStorageFailureIsTransient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := NewMockStorageInterface(ctrl)
	storage.EXPECT().ListResources(gomock.Any(), "suppliers", Suppliers.Columns(), gomock.Any()).Return(errors.New("timeout"))

	_, err := newSupplierService(storage, NewMockTenantResolverInterface(ctrl)).List(context.Background(), "owner-1")

	if !errors.Is(err, types.ErrTransientStorage) {
		t.Fatalf("expected a transient storage error, got %v", err)
	}
}
