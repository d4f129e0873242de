package handlers

import (
	"context"
	"net/http"
	"time"

	applog "merchdesk/internal/log"
	"merchdesk/internal/preview"
)

const healthPingTimeout = 2 * time.Second

// Database readiness values reported by Health.
const (
	databaseReady        = "ok"
	databaseUnconfigured = "unconfigured"
	databaseUnavailable  = "unavailable"
)

type healthResponse struct {
	Status   string        `json:"status"`
	Time     time.Time     `json:"time"`
	Database string        `json:"database"`
	Sessions bool          `json:"sessions"`
	Preview  previewLimits `json:"preview"`
}

type previewLimits struct {
	MaxBytes int64 `json:"maxBytes"`
	Size     int   `json:"size"`
}

// Health reports whether the editor can serve requests: the account database answers
// and the image preview limits in effect. An unreachable database answers 503.
func Health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:   "ok",
		Time:     time.Now().UTC(),
		Database: databaseStatus(r.Context()),
		Sessions: sessionManager != nil,
		Preview:  effectivePreviewLimits(),
	}

	status := http.StatusOK
	if resp.Database == databaseUnavailable {
		resp.Status = "degraded"
		status = http.StatusServiceUnavailable
		applog.Warn(r.Context(), "health check degraded", "database", resp.Database)
	}
	applog.Debug(r.Context(), "health check", "status", resp.Status, "database", resp.Database, "sessions", resp.Sessions)
	writeJSON(w, r, status, resp)
}

func databaseStatus(ctx context.Context) string {
	if database == nil {
		return databaseUnconfigured
	}
	sqlDB, err := database.DB()
	if err != nil {
		applog.Debug(ctx, "database handle unavailable", "error", err)
		return databaseUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		applog.Debug(ctx, "database ping failed", "error", err)
		return databaseUnavailable
	}
	return databaseReady
}

func effectivePreviewLimits() previewLimits {
	opts := currentPreviewOptions()
	limits := previewLimits{MaxBytes: opts.MaxBytes, Size: opts.Size}
	if limits.MaxBytes <= 0 {
		limits.MaxBytes = preview.DefaultMaxBytes
	}
	if limits.Size <= 0 {
		limits.Size = preview.DefaultSize
	}
	return limits
}
