// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/business-access-service/internal/http/types"
	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/types"
	"github.com/canonical/business-access-service/pkg/authentication"
)

type API struct {
	manager ManagerInterface

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/session", a.signIn)
	mux.Get("/session", a.current)
	mux.Delete("/session", a.signOut)
}

func (a *API) signIn(w http.ResponseWriter, r *http.Request) {
	identityID, ok := authentication.GetIdentityID(r.Context())
	if !ok || identityID == "" {
		httptypes.WriteError(w, types.ErrNotAuthenticated)
		return
	}

	state, err := a.manager.SignIn(r.Context(), identityID)
	if err != nil {
		a.logger.Errorf("sign in of %s failed: %v", identityID, err)
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, state, "signed in")
}

func (a *API) current(w http.ResponseWriter, r *http.Request) {
	identityID, ok := authentication.GetIdentityID(r.Context())
	if !ok || identityID == "" {
		httptypes.WriteError(w, types.ErrNotAuthenticated)
		return
	}

	state, err := a.manager.Ensure(r.Context(), identityID)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, state, "current session")
}

func (a *API) signOut(w http.ResponseWriter, r *http.Request) {
	identityID, ok := authentication.GetIdentityID(r.Context())
	if !ok || identityID == "" {
		httptypes.WriteError(w, types.ErrNotAuthenticated)
		return
	}

	a.manager.SignOut(identityID)

	httptypes.WriteJSON(w, http.StatusOK, nil, "signed out")
}

func NewAPI(manager ManagerInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.manager = manager
	a.logger = logger

	return a
}
