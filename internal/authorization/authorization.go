// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"

	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
	"github.com/canonical/business-access-service/internal/openfga"
	"github.com/canonical/business-access-service/internal/tracing"
)

var ErrInvalidAuthModel = fmt.Errorf("invalid authorization model schema")

var _ AuthorizerInterface = (*Authorizer)(nil)

type Authorizer struct {
	client AuthzClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) Check(ctx context.Context, user string, relation string, object string, contextualTuples ...openfga.Tuple) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Check")
	defer span.End()

	return a.client.Check(ctx, user, relation, object, contextualTuples...)
}

func (a *Authorizer) ListObjects(ctx context.Context, user string, relation string, objectType string) ([]string, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ListObjects")
	defer span.End()

	return a.client.ListObjects(ctx, user, relation, objectType)
}

func (a *Authorizer) ValidateModel(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ValidateModel")
	defer span.End()

	v0AuthzModel := NewAuthorizationModelProvider("v0")
	model := *v0AuthzModel.GetModel()

	eq, err := a.client.CompareModel(ctx, model)
	if err != nil {
		return err
	}
	if !eq {
		return ErrInvalidAuthModel
	}
	return nil
}

func (a *Authorizer) ListPageGrants(ctx context.Context, userId string) ([]string, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ListPageGrants")
	defer span.End()

	objects, err := a.ListObjects(ctx, UserTuple(userId), VIEWER_RELATION, PAGE_TYPE)
	if err != nil {
		return nil, err
	}

	if len(objects) == 0 {
		return nil, nil
	}

	pages := make([]string, 0, len(objects))
	for _, obj := range objects {
		if page, ok := PageFromObject(obj); ok {
			pages = append(pages, page)
		}
	}
	return pages, nil
}

func (a *Authorizer) AssignPageViewer(ctx context.Context, userId, page string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignPageViewer")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userId), VIEWER_RELATION, PageTuple(page))
}

func (a *Authorizer) RevokePageViewer(ctx context.Context, userId, page string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RevokePageViewer")
	defer span.End()

	return a.client.DeleteTuple(ctx, UserTuple(userId), VIEWER_RELATION, PageTuple(page))
}

func (a *Authorizer) ClearPageGrants(ctx context.Context, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ClearPageGrants")
	defer span.End()

	cToken := ""
	for {
		// reading by user requires the object type to be set
		r, err := a.client.ReadTuples(ctx, UserTuple(userId), VIEWER_RELATION, PAGE_TYPE+":", cToken)
		if err != nil {
			a.logger.Errorf("error when retrieving tuples: %s", err)
			return err
		}
		if len(r.Tuples) == 0 {
			break
		}
		ts := make([]openfga.Tuple, len(r.Tuples))
		for i, t := range r.Tuples {
			ts[i] = *openfga.NewTuple(t.Key.User, t.Key.Relation, t.Key.Object)
		}
		if err := a.client.DeleteTuples(ctx, ts...); err != nil {
			a.logger.Errorf("error when deleting tuples %v: %s", ts, err)
			return err
		}
		if r.ContinuationToken == "" {
			break
		}
		cToken = r.ContinuationToken
	}
	return nil
}

func NewAuthorizer(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.client = client
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
