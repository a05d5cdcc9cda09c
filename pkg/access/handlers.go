// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/business-access-service/internal/http/types"
	"github.com/canonical/business-access-service/internal/types"
	"github.com/canonical/business-access-service/pkg/session"
)

type PageGrantRequest struct {
	IdentityID string `json:"identity_id"`
	Page       string `json:"page"`
}

type API struct {
	service ServiceInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/navigation/menu", a.menu)
	mux.Post("/admin/page-grants", a.grant)
	mux.Delete("/admin/page-grants", a.revoke)
	mux.Delete("/admin/page-grants/{identity}", a.reset)
}

func (a *API) menu(w http.ResponseWriter, r *http.Request) {
	state, ok := session.FromContext(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ErrNotAuthenticated)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, a.service.Menu(r.Context(), state.IdentityID, state.Tier), "navigation menu")
}

func (a *API) grant(w http.ResponseWriter, r *http.Request) {
	state, req, ok := a.parse(w, r)
	if !ok {
		return
	}

	if err := a.service.GrantPage(r.Context(), state.Tier, state.IdentityID, req.IdentityID, PageKey(req.Page)); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, req, "page granted")
}

func (a *API) revoke(w http.ResponseWriter, r *http.Request) {
	state, req, ok := a.parse(w, r)
	if !ok {
		return
	}

	if err := a.service.RevokePage(r.Context(), state.Tier, state.IdentityID, req.IdentityID, PageKey(req.Page)); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, req, "page revoked")
}

func (a *API) reset(w http.ResponseWriter, r *http.Request) {
	state, ok := session.FromContext(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ErrNotAuthenticated)
		return
	}

	identityID := chi.URLParam(r, "identity")

	if err := a.service.ResetPages(r.Context(), state.Tier, state.IdentityID, identityID); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, nil, "page grants cleared")
}

func (a *API) parse(w http.ResponseWriter, r *http.Request) (*session.State, *PageGrantRequest, bool) {
	state, ok := session.FromContext(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ErrNotAuthenticated)
		return nil, nil, false
	}

	req := new(PageGrantRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		httptypes.WriteError(w, types.NewValidationError("body", "invalid json"))
		return nil, nil, false
	}

	return state, req, true
}

func NewAPI(service ServiceInterface) *API {
	return &API{
		service: service,
	}
}
