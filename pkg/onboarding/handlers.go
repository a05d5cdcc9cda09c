// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package onboarding

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/business-access-service/internal/http/types"
	"github.com/canonical/business-access-service/internal/types"
	"github.com/canonical/business-access-service/pkg/session"
)

type StatusResponse struct {
	NeedsOnboarding bool `json:"needs_onboarding"`
}

type API struct {
	service  ServiceInterface
	sessions SessionUpdaterInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/onboarding", a.status)
	mux.Post("/onboarding", a.complete)
}

func (a *API) status(w http.ResponseWriter, r *http.Request) {
	state, ok := session.FromContext(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ErrNotAuthenticated)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, StatusResponse{NeedsOnboarding: state.NeedsOnboarding}, "onboarding status")
}

func (a *API) complete(w http.ResponseWriter, r *http.Request) {
	state, ok := session.FromContext(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ErrNotAuthenticated)
		return
	}

	req := new(CompleteRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		httptypes.WriteError(w, types.NewValidationError("body", "invalid json"))
		return
	}

	business, err := a.service.Complete(r.Context(), state.IdentityID, req)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	a.sessions.Update(state.IdentityID, func(s *session.State) {
		s.Business = business
		s.NeedsOnboarding = false
	})

	httptypes.WriteJSON(w, http.StatusOK, business, "onboarding completed")
}

func NewAPI(service ServiceInterface, sessions SessionUpdaterInterface) *API {
	return &API{
		service:  service,
		sessions: sessions,
	}
}
