package main

import (
	"context"
	"net/http"
	"time"
)

type healthResponse struct {
	Status   string `json:"status"`
	Env      string `json:"env"`
	Version  string `json:"version"`
	Database string `json:"database"`
}

// healthCheckHandler godoc
//
//	@Summary	Health check
//	@Tags		ops
//	@Produce	json
//	@Success	200	{object}	healthResponse
//	@Router		/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	data := healthResponse{
		Status:   "ok",
		Env:      app.config.env,
		Version:  version,
		Database: "up",
	}
	if err := app.store.Ping(ctx); err != nil {
		app.logger.Warnw("health check database ping failed", "error", err)
		data.Database = "down"
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}
