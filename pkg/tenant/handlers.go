// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/business-access-service/internal/http/types"
	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/types"
	"github.com/canonical/business-access-service/pkg/session"
)

type SetNGORequest struct {
	NGOID *string `json:"ngo_id"`
}

type API struct {
	service ServiceInterface

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/business", a.getBusiness)
	mux.Put("/business", a.updateBusiness)
	mux.Get("/admin/businesses", a.listBusinesses)
	mux.Put("/admin/businesses/{id}/ngo", a.setBusinessNGO)
}

// getBusiness answers with null data when the caller has not provisioned a business yet.
func (a *API) getBusiness(w http.ResponseWriter, r *http.Request) {
	state, ok := session.FromContext(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ErrNotAuthenticated)
		return
	}

	business, err := a.service.FindTenant(r.Context(), state.IdentityID)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, business, "business")
}

func (a *API) updateBusiness(w http.ResponseWriter, r *http.Request) {
	state, ok := session.FromContext(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ErrNotAuthenticated)
		return
	}

	profile := new(BusinessProfile)
	if err := json.NewDecoder(r.Body).Decode(profile); err != nil {
		httptypes.WriteError(w, types.NewValidationError("body", "invalid json"))
		return
	}

	business, err := a.service.UpdateBusiness(r.Context(), state.IdentityID, profile)
	if err != nil {
		a.logger.Debugf("failed to update business of %s: %v", state.IdentityID, err)
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, business, "business updated")
}

func (a *API) listBusinesses(w http.ResponseWriter, r *http.Request) {
	state, ok := session.FromContext(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ErrNotAuthenticated)
		return
	}

	page, err := queryInt(r, "page")
	if err != nil {
		httptypes.WriteError(w, types.NewValidationError("page", "numeric"))
		return
	}

	size, err := queryInt(r, "size")
	if err != nil {
		httptypes.WriteError(w, types.NewValidationError("size", "numeric"))
		return
	}

	businesses, err := a.service.ListBusinesses(r.Context(), state.Tier, state.IdentityID, page, size)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, businesses, "businesses")
}

func (a *API) setBusinessNGO(w http.ResponseWriter, r *http.Request) {
	state, ok := session.FromContext(r.Context())
	if !ok {
		httptypes.WriteError(w, types.ErrNotAuthenticated)
		return
	}

	req := new(SetNGORequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		httptypes.WriteError(w, types.NewValidationError("body", "invalid json"))
		return
	}

	if err := a.service.SetBusinessNGO(r.Context(), state.Tier, state.IdentityID, chi.URLParam(r, "id"), req.NGOID); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, req, "business affiliation updated")
}

func queryInt(r *http.Request, name string) (int64, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	return strconv.ParseInt(v, 10, 64)
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.logger = logger

	return a
}
