// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"testing"
)

func TestPolicy_Authorize(t *testing.T) {
	tests := []struct {
		name     string
		policy   Policy
		claims   tokenClaims
		expected string
		err      error
	}{
		{
			name:     "open policy accepts any subject",
			claims:   tokenClaims{Subject: "identity-1"},
			expected: "identity-1",
		},
		{
			name:   "open policy rejects a token without subject",
			claims: tokenClaims{Scope: "openid"},
			err:    ErrMissingSubject,
		},
		{
			name:     "allowed subject",
			policy:   Policy{AllowedSubjects: []string{"svc-a", "svc-b"}},
			claims:   tokenClaims{Subject: "svc-b"},
			expected: "svc-b",
		},
		{
			name:   "subject outside the allow list",
			policy: Policy{AllowedSubjects: []string{"svc-a"}},
			claims: tokenClaims{Subject: "identity-1"},
			err:    ErrNotAllowed,
		},
		{
			name:     "required scope in the space separated scope claim",
			policy:   Policy{RequiredScope: "dashboard"},
			claims:   tokenClaims{Subject: "identity-1", Scope: "openid dashboard"},
			expected: "identity-1",
		},
		{
			name:     "required scope in the scp claim",
			policy:   Policy{RequiredScope: "dashboard"},
			claims:   tokenClaims{Subject: "identity-1", Scopes: []string{"dashboard"}},
			expected: "identity-1",
		},
		{
			name:   "scope prefix does not match",
			policy: Policy{RequiredScope: "dashboard"},
			claims: tokenClaims{Subject: "identity-1", Scope: "dashboard.read"},
			err:    ErrNotAllowed,
		},
		{
			name:     "allowed subject without the scope",
			policy:   Policy{AllowedSubjects: []string{"svc-a"}, RequiredScope: "dashboard"},
			claims:   tokenClaims{Subject: "svc-a"},
			expected: "svc-a",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			claims := test.claims

			identityID, err := test.policy.authorize(&claims)

			if !errors.Is(err, test.err) {
				t.Fatalf("expected error %v, got %v", test.err, err)
			}
			if identityID != test.expected {
				t.Errorf("expected identity %q, got %q", test.expected, identityID)
			}
		})
	}
}

func TestNoopVerifier_VerifyToken(t *testing.T) {
	v := NewNoopVerifier()

	identityID, err := v.VerifyToken(context.Background(), " identity-1 ")
	if err != nil || identityID != "identity-1" {
		t.Fatalf("expected identity-1, got %q (%v)", identityID, err)
	}

	if _, err := v.VerifyToken(context.Background(), "  "); !errors.Is(err, ErrMissingSubject) {
		t.Errorf("expected ErrMissingSubject, got %v", err)
	}
}
