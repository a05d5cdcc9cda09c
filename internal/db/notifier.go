// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
	"github.com/canonical/business-access-service/internal/tracing"
	"github.com/canonical/business-access-service/internal/types"
)

// ChangesChannel is the channel the change triggers publish to.
const ChangesChannel = "resource_changes"

const reconnectDelay = 2 * time.Second

var _ NotifierInterface = (*Notifier)(nil)

type subscriber struct {
	ownerID string
	ch      chan []byte
}

// Notifier holds one LISTEN connection and fans notifications out per table
// and owner. Subscriber channels have a single slot: a pending notification
// already triggers a full refetch, so further ones are coalesced into it.
type Notifier struct {
	pool    *pgxpool.Pool
	channel string

	mu          sync.RWMutex
	subscribers map[string]map[uint64]subscriber
	next        uint64

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Subscribe returns the changes to table made on rows of ownerID, an empty
// ownerID receives every change. cancel releases the subscription and
// closes the channel.
func (n *Notifier) Subscribe(table, ownerID string) (<-chan []byte, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.next++
	id := n.next

	ch := make(chan []byte, 1)
	if n.subscribers[table] == nil {
		n.subscribers[table] = make(map[uint64]subscriber)
	}
	n.subscribers[table][id] = subscriber{ownerID: ownerID, ch: ch}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()

			delete(n.subscribers[table], id)
			if len(n.subscribers[table]) == 0 {
				delete(n.subscribers, table)
			}
			close(ch)
		})
	}

	return ch, cancel
}

func (n *Notifier) dispatch(payload []byte) {
	var event struct {
		Table   string `json:"table"`
		OwnerID string `json:"owner_id"`
	}

	if err := json.Unmarshal(payload, &event); err != nil || event.Table == "" {
		n.logger.Warnf("discarding malformed change notification %q", string(payload))
		return
	}

	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, sub := range n.subscribers[event.Table] {
		if sub.ownerID != "" && sub.ownerID != event.OwnerID {
			continue
		}

		select {
		case sub.ch <- payload:
		default:
		}
	}
}

// resync signals every subscriber once, notifications sent while no
// connection was listening are lost and receivers have to refetch.
func (n *Notifier) resync() {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for table, subs := range n.subscribers {
		for _, sub := range subs {
			payload, err := json.Marshal(types.ChangeEvent{Table: table, Op: types.ChangeOpResync, OwnerID: sub.ownerID})
			if err != nil {
				continue
			}

			select {
			case sub.ch <- payload:
			default:
			}
		}
	}
}

// Run keeps a LISTEN connection open until ctx is done, reconnecting on
// failure. Subscribers are resynced after every reconnect.
func (n *Notifier) Run(ctx context.Context) error {
	for reconnect := false; ; reconnect = true {
		err := n.listen(ctx, reconnect)
		if ctx.Err() != nil {
			return nil
		}

		_ = n.monitor.SetDependencyAvailability(map[string]string{"component": "postgres_listen"}, 0)
		n.logger.Errorf("change listener stopped, reconnecting: %v", err)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(reconnectDelay):
		}
	}
}

func (n *Notifier) listen(ctx context.Context, resync bool) error {
	if n.pool == nil {
		return errors.New("notifier has no connection pool")
	}

	pooled, err := n.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire listen connection: %w", err)
	}

	// taken out of the pool for good, a released connection would keep
	// listening and buffering notifications for its next user
	conn := pooled.Hijack()
	defer func() {
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = conn.Close(cctx)
	}()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{n.channel}.Sanitize()); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", n.channel, err)
	}

	_ = n.monitor.SetDependencyAvailability(map[string]string{"component": "postgres_listen"}, 1)
	n.logger.Infof("listening for changes on channel %s", n.channel)

	if resync {
		n.resync()
	}

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}

		n.dispatch([]byte(notification.Payload))
	}
}

func NewNotifier(pool *pgxpool.Pool, channel string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Notifier {
	n := new(Notifier)

	n.pool = pool
	n.channel = channel
	n.subscribers = make(map[string]map[uint64]subscriber)

	n.tracer = tracer
	n.monitor = monitor
	n.logger = logger

	return n
}
