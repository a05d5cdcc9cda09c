// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resources

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/validation"
)

// ErrStoreClosed is returned by a Store after Close.
var ErrStoreClosed = errors.New("store closed")

// Source is where a Store reads and writes the items of one entity.
type Source[E any] interface {
	List(ctx context.Context) ([]*E, error)
	Create(ctx context.Context, item *E) (*E, error)
	Update(ctx context.Context, id string, patch Patch) (*E, error)
	Remove(ctx context.Context, id string) error
	// Changes signals every write to the caller's items until ctx is done.
	Changes(ctx context.Context) (<-chan struct{}, error)
}

// Store keeps the caller's list of one entity in sync with its Source.
// Every fetch replaces the list as a whole and is numbered, a result is only
// applied when no later fetch has been applied before it, so a slow response
// can never overwrite a newer one. Results completing after Close are dropped.
type Store[E any] struct {
	entity   *Entity[E]
	source   Source[E]
	validate *validator.Validate

	mu       sync.Mutex
	items    []*E
	err      error
	loaded   bool
	seq      uint64
	applied  uint64
	closed   bool
	done     chan struct{}
	watchers []func([]*E)

	logger logging.LoggerInterface
}

// Items returns the last applied list.
func (s *Store[E]) Items() []*E {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*E(nil), s.items...)
}

// Err returns the error of the last failed operation, nil once a later fetch succeeded.
func (s *Store[E]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// Loading reports whether no list has been applied yet.
func (s *Store[E]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return !s.loaded
}

// OnUpdate registers fn to receive every applied list.
func (s *Store[E]) OnUpdate(fn func([]*E)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.watchers = append(s.watchers, fn)
}

// Refresh fetches the whole list from the source.
func (s *Store[E]) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrStoreClosed
	}
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	items, err := s.source.List(ctx)

	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		return ErrStoreClosed
	}

	if seq <= s.applied {
		s.mu.Unlock()
		s.logger.Debugf("dropping stale %s fetch %d, %d already applied", s.entity.Name(), seq, s.applied)
		return nil
	}

	if err != nil {
		s.err = err
		s.mu.Unlock()
		return err
	}

	s.applied = seq
	s.items = items
	s.err = nil
	s.loaded = true

	watchers := slices.Clone(s.watchers)
	snapshot := slices.Clone(items)
	s.mu.Unlock()

	for _, fn := range watchers {
		fn(snapshot)
	}

	return nil
}

// Create validates item before sending it, on failure the list is left as is.
func (s *Store[E]) Create(ctx context.Context, item *E) (*E, error) {
	if err := s.open(); err != nil {
		return nil, err
	}

	if err := s.validate.Struct(item); err != nil {
		return nil, s.fail(validation.ToError(err))
	}

	created, err := s.source.Create(ctx, item)
	if err != nil {
		return nil, s.fail(err)
	}

	s.refreshAfterWrite(ctx)

	return created, nil
}

func (s *Store[E]) Update(ctx context.Context, id string, patch Patch) (*E, error) {
	if err := s.open(); err != nil {
		return nil, err
	}

	item, fields, _, err := s.entity.decode(patch)
	if err != nil {
		return nil, s.fail(err)
	}

	if err := s.validate.StructPartial(item, fields...); err != nil {
		return nil, s.fail(validation.ToError(err))
	}

	updated, err := s.source.Update(ctx, id, patch)
	if err != nil {
		return nil, s.fail(err)
	}

	s.refreshAfterWrite(ctx)

	return updated, nil
}

func (s *Store[E]) Remove(ctx context.Context, id string) error {
	if err := s.open(); err != nil {
		return err
	}

	if err := s.source.Remove(ctx, id); err != nil {
		return s.fail(err)
	}

	s.refreshAfterWrite(ctx)

	return nil
}

// Watch loads the list and refetches it on every change signalled by the
// source, until ctx is done, the source stops or the store is closed.
func (s *Store[E]) Watch(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	changes, err := s.source.Changes(ctx)
	if err != nil {
		return s.fail(err)
	}

	if err := s.Refresh(ctx); err != nil && !errors.Is(err, ErrStoreClosed) {
		s.logger.Warnf("initial %s fetch failed: %v", s.entity.Name(), err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.done:
			return ErrStoreClosed
		case _, ok := <-changes:
			if !ok {
				return ctx.Err()
			}

			if err := s.Refresh(ctx); err != nil {
				if errors.Is(err, ErrStoreClosed) {
					return err
				}
				s.logger.Warnf("%s refetch failed, keeping the previous list: %v", s.entity.Name(), err)
			}
		}
	}
}

// Close stops the store, in flight fetches are discarded when they complete.
func (s *Store[E]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.closed = true
	close(s.done)
}

func (s *Store[E]) open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	return nil
}

func (s *Store[E]) fail(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.err = err
	}

	return err
}

// refreshAfterWrite refetches once a write succeeded, a failing refetch
// keeps the previous list and is reported through Err.
func (s *Store[E]) refreshAfterWrite(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil && !errors.Is(err, ErrStoreClosed) {
		s.logger.Warnf("%s refetch after write failed: %v", s.entity.Name(), err)
	}
}

func NewStore[E any](entity *Entity[E], source Source[E], logger logging.LoggerInterface) *Store[E] {
	s := new(Store[E])

	s.entity = entity
	s.source = source
	s.validate = validation.NewValidator()
	s.items = make([]*E, 0)
	s.done = make(chan struct{})

	s.logger = logger

	return s
}
