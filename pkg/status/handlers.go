// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/business-access-service/internal/http/types"
	"github.com/canonical/business-access-service/internal/logging"
	"github.com/canonical/business-access-service/internal/monitoring"
	"github.com/canonical/business-access-service/internal/tracing"
	"github.com/canonical/business-access-service/internal/version"
)

const pingTimeout = 2 * time.Second

type PingerInterface interface {
	Ping(context.Context) error
}

type BuildInfo struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	Name       string `json:"name"`
}

type Status struct {
	Status    string     `json:"status"`
	Database  string     `json:"database"`
	BuildInfo *BuildInfo `json:"build_info"`
}

type API struct {
	db PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/status", a.alive)
	mux.Get("/version", a.version)
}

// alive reports ok as long as the process serves requests, a failing
// database is only reported through the database field and the gauge.
func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	status := Status{Status: "ok", Database: "ok", BuildInfo: CurrentBuildInfo()}

	if a.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()

		if err := a.db.Ping(pingCtx); err != nil {
			a.logger.Errorf("database ping failed: %v", err)
			status.Database = "unavailable"
			_ = a.monitor.SetDependencyAvailability(map[string]string{"component": "postgres"}, 0)
		} else {
			_ = a.monitor.SetDependencyAvailability(map[string]string{"component": "postgres"}, 1)
		}
	}

	httptypes.WriteJSON(w, http.StatusOK, status, "status")
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteJSON(w, http.StatusOK, CurrentBuildInfo(), "version")
}

// CurrentBuildInfo describes the running binary.
func CurrentBuildInfo() *BuildInfo {
	info := &BuildInfo{Version: version.Version}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}

	info.Name = bi.Main.Path
	for _, setting := range bi.Settings {
		if setting.Key == "vcs.revision" {
			info.CommitHash = setting.Value
		}
	}

	return info
}

func NewAPI(db PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.db = db

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
