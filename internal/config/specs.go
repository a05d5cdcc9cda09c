// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint  string  `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint  string  `envconfig:"otel_http_endpoint"`
	TracingEnabled    bool    `envconfig:"tracing_enabled" default:"true"`
	TracingSampleRate float64 `envconfig:"tracing_sample_rate" default:"1.0"`

	KratosAdminURL string `envconfig:"kratos_admin_url" required:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// RowSecurityCheck refuses to start when a tenant scoped table lacks forced row security
	RowSecurityCheck bool `envconfig:"row_security_check" default:"true"`

	AuthenticationEnabled bool     `envconfig:"authentication_enabled" default:"true"`
	OIDCIssuer            string   `envconfig:"oidc_issuer"`
	OIDCJWKSURL           string   `envconfig:"oidc_jwks_url"`
	OIDCAllowedSubjects   []string `envconfig:"oidc_allowed_subjects"`
	OIDCRequiredScope     string   `envconfig:"oidc_required_scope"`
	// IdentityHeaderEnabled trusts the identity header set by the authenticating proxy
	IdentityHeaderEnabled bool `envconfig:"identity_header_enabled" default:"false"`

	SessionResolveTimeout time.Duration `envconfig:"session_resolve_timeout" default:"10s"`
	GuardResolveWait      time.Duration `envconfig:"guard_resolve_wait" default:"250ms"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:""`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`
}
