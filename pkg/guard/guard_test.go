// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package guard

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
	"github.com/canonical/business-access-service/internal/tracing"
	"github.com/canonical/business-access-service/internal/types"
	"github.com/canonical/business-access-service/pkg/session"
	"github.com/canonical/business-access-service/pkg/tier"
)

//go:generate mockgen -build_flags=--mod=mod -package guard -destination ./mock_interfaces.go -source=./interfaces.go

func newTestGuard(s SessionInterface) *Guard {
	logger := logging.NewNoopLogger()
	return NewGuard(s, 10*time.Millisecond, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", logger), logger)
}

func TestGuard_Evaluate(t *testing.T) {
	tests := []struct {
		name          string
		identity      string
		path          string
		setupMocks    func(*MockSessionInterface)
		expected      Decision
		expectedError error
	}{
		{
			name:       "no identity",
			path:       "/dashboard",
			setupMocks: func(*MockSessionInterface) {},
			expected:   Decision{Outcome: Redirect, Location: AuthRoute},
		},
		{
			name:     "resolved owner needing onboarding",
			identity: "owner-1",
			path:     "/dashboard",
			setupMocks: func(m *MockSessionInterface) {
				m.EXPECT().Ensure(gomock.Any(), "owner-1").Return(&session.State{IdentityID: "owner-1", Tier: tier.NewTenantOwner(), NeedsOnboarding: true}, nil)
			},
			expected: Decision{Outcome: Redirect, Location: OnboardingRoute},
		},
		{
			name:     "hung resolution reports loading",
			identity: "owner-1",
			path:     "/dashboard",
			setupMocks: func(m *MockSessionInterface) {
				m.EXPECT().Ensure(gomock.Any(), "owner-1").DoAndReturn(
					func(ctx context.Context, _ string) (*session.State, error) {
						<-ctx.Done()
						return nil, ctx.Err()
					},
				)
			},
			expected: Decision{Outcome: Loading},
		},
		{
			name:     "session ended during resolution",
			identity: "owner-1",
			path:     "/sales",
			setupMocks: func(m *MockSessionInterface) {
				m.EXPECT().Ensure(gomock.Any(), "owner-1").Return(nil, session.ErrSessionEnded)
			},
			expected: Decision{Outcome: Redirect, Location: AuthRoute},
		},
		{
			name:     "storage failure surfaces",
			identity: "owner-1",
			path:     "/sales",
			setupMocks: func(m *MockSessionInterface) {
				m.EXPECT().Ensure(gomock.Any(), "owner-1").Return(nil, types.ErrTransientStorage)
			},
			expectedError: types.ErrTransientStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sessions := NewMockSessionInterface(ctrl)
			tt.setupMocks(sessions)

			decision, err := newTestGuard(sessions).Evaluate(context.Background(), tt.identity, tt.path)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected %v, got %v", tt.expectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if decision != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, decision)
			}
		})
	}
}
