// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"
	"fmt"

	openfga "github.com/openfga/go-sdk"
	"github.com/openfga/language/pkg/go/transformer"
)

// a user related to a page as viewer narrows the navigation menu to the granted pages
const v0Model = `model
  schema 1.1

type user

type page
  relations
    define viewer: [user]
`

var models = map[string]string{
	"v0": v0Model,
}

type AuthorizationModelProvider struct {
	version string
}

func (p *AuthorizationModelProvider) DSL() string {
	return models[p.version]
}

// GetModel returns the JSON form of the model, it panics if the embedded DSL is invalid.
func (p *AuthorizationModelProvider) GetModel() *openfga.AuthorizationModel {
	model, err := p.parse()
	if err != nil {
		panic(err)
	}
	return model
}

func (p *AuthorizationModelProvider) parse() (*openfga.AuthorizationModel, error) {
	dsl, ok := models[p.version]
	if !ok {
		return nil, fmt.Errorf("unknown authorization model version %q", p.version)
	}

	raw, err := transformer.TransformDSLToJSON(dsl)
	if err != nil {
		return nil, fmt.Errorf("failed to transform authorization model: %w", err)
	}

	model := new(openfga.AuthorizationModel)
	if err := json.Unmarshal([]byte(raw), model); err != nil {
		return nil, fmt.Errorf("failed to decode authorization model: %w", err)
	}

	return model, nil
}

func NewAuthorizationModelProvider(version string) *AuthorizationModelProvider {
	return &AuthorizationModelProvider{version: version}
}
