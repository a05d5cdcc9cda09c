// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resources

import (
	"context"
)

var _ Source[Supplier] = (*LocalSource[Supplier])(nil)

// LocalSource binds a Service and the change notifier to one identity so a
// Store can run in the same process as the service.
type LocalSource[E any] struct {
	entity     *Entity[E]
	service    ServiceInterface[E]
	changes    ChangesInterface
	identityID string
}

func (l *LocalSource[E]) List(ctx context.Context) ([]*E, error) {
	return l.service.List(ctx, l.identityID)
}

func (l *LocalSource[E]) Create(ctx context.Context, item *E) (*E, error) {
	return l.service.Create(ctx, l.identityID, item)
}

func (l *LocalSource[E]) Update(ctx context.Context, id string, patch Patch) (*E, error) {
	return l.service.Update(ctx, l.identityID, id, patch)
}

func (l *LocalSource[E]) Remove(ctx context.Context, id string) error {
	return l.service.Remove(ctx, l.identityID, id)
}

func (l *LocalSource[E]) Changes(ctx context.Context) (<-chan struct{}, error) {
	events, cancel := l.changes.Subscribe(l.entity.Table(), l.identityID)

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer cancel()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-events:
				if !ok {
					return
				}
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()

	return out, nil
}

func NewLocalSource[E any](entity *Entity[E], service ServiceInterface[E], changes ChangesInterface, identityID string) *LocalSource[E] {
	l := new(LocalSource[E])

	l.entity = entity
	l.service = service
	l.changes = changes
	l.identityID = identityID

	return l
}
