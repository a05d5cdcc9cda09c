// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package resources

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	httptypes "github.com/canonical/business-access-service/internal/http/types"
	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/types"
	"github.com/canonical/business-access-service/pkg/session"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

type API[E any] struct {
	entity   *Entity[E]
	service  ServiceInterface[E]
	changes  ChangesInterface
	upgrader websocket.Upgrader

	logger logging.LoggerInterface
}

func (a *API[E]) RegisterEndpoints(mux chi.Router) {
	base := "/" + a.entity.Name()

	mux.Get(base, a.list)
	mux.Post(base, a.create)
	mux.Get(base+"/changes", a.watch)
	mux.Patch(base+"/{id}", a.update)
	mux.Delete(base+"/{id}", a.remove)
}

func (a *API[E]) list(w http.ResponseWriter, r *http.Request) {
	state, ok := session.FromContext(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ErrNotAuthenticated)
		return
	}

	items, err := a.service.List(r.Context(), state.IdentityID)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, items, a.entity.Name())
}

func (a *API[E]) create(w http.ResponseWriter, r *http.Request) {
	state, ok := session.FromContext(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ErrNotAuthenticated)
		return
	}

	item := new(E)
	if err := json.NewDecoder(r.Body).Decode(item); err != nil {
		httptypes.WriteError(w, types.NewValidationError("body", "invalid json"))
		return
	}

	created, err := a.service.Create(r.Context(), state.IdentityID, item)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, created, a.entity.Name()+" created")
}

func (a *API[E]) update(w http.ResponseWriter, r *http.Request) {
	state, ok := session.FromContext(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ErrNotAuthenticated)
		return
	}

	patch := make(Patch)
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httptypes.WriteError(w, types.NewValidationError("body", "invalid json"))
		return
	}

	updated, err := a.service.Update(r.Context(), state.IdentityID, chi.URLParam(r, "id"), patch)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, updated, a.entity.Name()+" updated")
}

func (a *API[E]) remove(w http.ResponseWriter, r *http.Request) {
	state, ok := session.FromContext(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ErrNotAuthenticated)
		return
	}

	if err := a.service.Remove(r.Context(), state.IdentityID, chi.URLParam(r, "id")); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, nil, a.entity.Name()+" removed")
}

// watch streams a ChangeEvent for every write to the caller's rows until
// either side closes the socket. Events only say what changed, clients
// refetch the list to learn the new state.
func (a *API[E]) watch(w http.ResponseWriter, r *http.Request) {
	state, ok := session.FromContext(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ErrNotAuthenticated)
		return
	}

	conn, err := a.upgrader.Upgrade(w, r, nil)
	if err != nil {
		a.logger.Debugf("failed to upgrade %s change stream: %v", a.entity.Name(), err)
		return
	}
	defer conn.Close()

	events, cancel := a.changes.Subscribe(a.entity.Table(), state.IdentityID)
	defer cancel()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case payload, ok := <-events:
			if !ok {
				return
			}

			event := new(types.ChangeEvent)
			if err := json.Unmarshal(payload, event); err != nil {
				a.logger.Warnf("dropping malformed change event: %v", err)
				continue
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(event); err != nil {
				a.logger.Debugf("%s change stream of %s closed: %v", a.entity.Name(), state.IdentityID, err)
				return
			}
		}
	}
}

// checkOrigin accepts same host requests, requests without an Origin header
// and the origins the CORS policy allows, where "*" matches any origin and a
// single "*" inside an entry matches any run of characters.
func checkOrigin(allowed []string) func(*http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}

		u, err := url.Parse(origin)
		if err != nil {
			return false
		}

		if strings.EqualFold(u.Host, r.Host) {
			return true
		}

		origin = strings.ToLower(origin)
		for _, a := range allowed {
			a = strings.ToLower(a)

			if a == "*" || a == origin {
				return true
			}

			prefix, suffix, ok := strings.Cut(a, "*")
			if ok && len(origin) >= len(prefix)+len(suffix) && strings.HasPrefix(origin, prefix) && strings.HasSuffix(origin, suffix) {
				return true
			}
		}

		return false
	}
}

func NewAPI[E any](entity *Entity[E], service ServiceInterface[E], changes ChangesInterface, allowedOrigins []string, logger logging.LoggerInterface) *API[E] {
	a := new(API[E])

	a.entity = entity
	a.service = service
	a.changes = changes
	a.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     checkOrigin(allowedOrigins),
	}

	a.logger = logger

	return a
}
