// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

type KratosIdentity struct {
	ID     string       `json:"id"`
	Traits KratosTraits `json:"traits"`
}

type KratosTraits struct {
	Email string `json:"email"`
}

// TokenClaims are merged by Hydra into the issued tokens.
type TokenClaims struct {
	IDToken     map[string]interface{} `json:"id_token,omitempty"`
	AccessToken map[string]interface{} `json:"access_token,omitempty"`
}

type TokenHookResponse struct {
	Session TokenClaims `json:"session"`
}

const (
	ClaimTier       = "tier"
	ClaimNGOID      = "ngo_id"
	ClaimBusinessID = "business_id"
)
