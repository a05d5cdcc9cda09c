// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tier

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
	"github.com/canonical/business-access-service/internal/storage"
	"github.com/canonical/business-access-service/internal/tracing"
	"github.com/canonical/business-access-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tier -destination ./mock_interfaces.go -source=./interfaces.go

func newTestResolver(s StorageInterface) *Resolver {
	logger := logging.NewNoopLogger()
	return NewResolver(s, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", logger), logger)
}

func TestResolver_ResolveTier(t *testing.T) {
	identity := "identity-1"

	tests := []struct {
		name          string
		identity      string
		setupMocks    func(*MockStorageInterface)
		expectedTier  Tier
		expectedError error
	}{
		{
			name:         "empty identity resolves to none without queries",
			identity:     "",
			setupMocks:   func(m *MockStorageInterface) {},
			expectedTier: NewNone(),
		},
		{
			name:     "system role wins over ngo membership",
			identity: identity,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().HasSystemRole(gomock.Any(), identity).Return(true, nil)
				m.EXPECT().FindActiveNGOAdminMembership(gomock.Any(), gomock.Any()).Times(0)
			},
			expectedTier: NewSystemAdmin(),
		},
		{
			name:     "active ngo admin carries the ngo id",
			identity: identity,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().HasSystemRole(gomock.Any(), identity).Return(false, nil)
				m.EXPECT().FindActiveNGOAdminMembership(gomock.Any(), identity).
					Return(&types.NGOMembership{IdentityID: identity, NGOID: "ngo-7", Role: "admin", Active: true}, nil)
			},
			expectedTier: NewNGOAdmin("ngo-7"),
		},
		{
			name:     "no grants resolves to tenant owner",
			identity: identity,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().HasSystemRole(gomock.Any(), identity).Return(false, nil)
				m.EXPECT().FindActiveNGOAdminMembership(gomock.Any(), identity).Return(nil, storage.ErrNotFound)
			},
			expectedTier: NewTenantOwner(),
		},
		{
			name:     "role check failure is transient",
			identity: identity,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().HasSystemRole(gomock.Any(), identity).Return(false, errors.New("connection reset"))
			},
			expectedTier:  NewNone(),
			expectedError: types.ErrTransientStorage,
		},
		{
			name:     "membership check failure is transient",
			identity: identity,
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().HasSystemRole(gomock.Any(), identity).Return(false, nil)
				m.EXPECT().FindActiveNGOAdminMembership(gomock.Any(), identity).Return(nil, errors.New("timeout"))
			},
			expectedTier:  NewNone(),
			expectedError: types.ErrTransientStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tt.setupMocks(mockStorage)

			tier, err := newTestResolver(mockStorage).ResolveTier(context.Background(), tt.identity)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Errorf("expected error %v, got %v", tt.expectedError, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if tier != tt.expectedTier {
				t.Errorf("expected tier %s, got %s", tt.expectedTier, tier)
			}
		})
	}
}

func TestTier_IsAdmin(t *testing.T) {
	tests := []struct {
		tier     Tier
		expected bool
	}{
		{NewSystemAdmin(), true},
		{NewNGOAdmin("ngo-1"), true},
		{NewTenantOwner(), false},
		{NewNone(), false},
	}

	for _, tt := range tests {
		t.Run(tt.tier.String(), func(t *testing.T) {
			if tt.tier.IsAdmin() != tt.expected {
				t.Errorf("expected IsAdmin %v for %s", tt.expected, tt.tier)
			}
		})
	}
}
