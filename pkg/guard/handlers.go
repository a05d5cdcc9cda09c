// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package guard

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/business-access-service/internal/http/types"
	"github.com/canonical/business-access-service/internal/types"
	"github.com/canonical/business-access-service/pkg/authentication"
)

type API struct {
	guard GuardInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/navigation/guard", a.evaluate)
}

func (a *API) evaluate(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if !strings.HasPrefix(path, "/") {
		httptypes.WriteError(w, types.NewValidationError("path", "absolute path required"))
		return
	}

	identityID, _ := authentication.GetIdentityID(r.Context())

	decision, err := a.guard.Evaluate(r.Context(), identityID, path)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, decision, string(decision.Outcome))
}

func NewAPI(guard GuardInterface) *API {
	return &API{
		guard: guard,
	}
}
