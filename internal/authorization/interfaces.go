// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"

	"github.com/canonical/business-access-service/internal/openfga"
)

type AuthorizerInterface interface {
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	ListObjects(context.Context, string, string, string) ([]string, error)
	ValidateModel(context.Context) error

	// ListPageGrants returns the pages explicitly granted to the identity, nil when none are.
	ListPageGrants(context.Context, string) ([]string, error)
	AssignPageViewer(context.Context, string, string) error
	RevokePageViewer(context.Context, string, string) error
	// ClearPageGrants removes every page grant of the identity, restoring the default menu.
	ClearPageGrants(context.Context, string) error
}

type AuthzClientInterface interface {
	ListObjects(context.Context, string, string, string) ([]string, error)
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	ReadModel(context.Context) (*fga.AuthorizationModel, error)
	CompareModel(context.Context, fga.AuthorizationModel) (bool, error)
	ReadTuples(context.Context, string, string, string, string) (*client.ClientReadResponse, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuples(context.Context, ...openfga.Tuple) error
}
