// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
	"github.com/canonical/business-access-service/internal/tracing"
)

var (
	ErrMissingSubject = errors.New("unauthorized: token has no subject")
	ErrNotAllowed     = errors.New("unauthorized: missing required scope or subject not allowed")
)

// Policy narrows the verified tokens that are accepted. The zero Policy
// accepts every token with a subject, which is how dashboard users sign in.
type Policy struct {
	AllowedSubjects []string
	RequiredScope   string
}

type tokenClaims struct {
	Subject string   `json:"sub"`
	Scope   string   `json:"scope"`
	Scopes  []string `json:"scp"`
}

func (c *tokenClaims) hasScope(scope string) bool {
	return slices.Contains(strings.Fields(c.Scope), scope) || slices.Contains(c.Scopes, scope)
}

func (p Policy) open() bool {
	return len(p.AllowedSubjects) == 0 && p.RequiredScope == ""
}

// authorize returns the identity the claims stand for.
func (p Policy) authorize(c *tokenClaims) (string, error) {
	if c.Subject == "" {
		return "", ErrMissingSubject
	}

	switch {
	case p.open():
	case slices.Contains(p.AllowedSubjects, c.Subject):
	case p.RequiredScope != "" && c.hasScope(p.RequiredScope):
	default:
		return "", ErrNotAllowed
	}

	return c.Subject, nil
}

type JWTVerifier struct {
	verifier *oidc.IDTokenVerifier
	policy   Policy

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", err
	}

	claims := new(tokenClaims)
	if err := token.Claims(claims); err != nil {
		v.logger.Debugf("Failed to extract claims: %v", err)
		return "", err
	}

	identityID, err := v.policy.authorize(claims)
	if errors.Is(err, ErrNotAllowed) {
		v.logger.Security().AuthzFailure(claims.Subject, "jwt_api_access")
	}

	return identityID, err
}

func NewJWTVerifier(
	verifier *oidc.IDTokenVerifier,
	policy Policy,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	v := new(JWTVerifier)

	v.verifier = verifier
	v.policy = policy

	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}
