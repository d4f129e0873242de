package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"merchdesk/internal/preview"
)

func decodeHealth(t *testing.T, w *httptest.ResponseRecorder) healthResponse {
	t.Helper()
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected Content-Type application/json, got %q", ct)
	}
	var resp healthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Time.IsZero() {
		t.Fatal("expected response time to be populated")
	}
	return resp
}

func TestHealthWithoutDatabase(t *testing.T) {
	original := database
	database = nil
	t.Cleanup(func() { database = original })

	w := httptest.NewRecorder()
	Health(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	resp := decodeHealth(t, w)
	if resp.Status != "ok" || resp.Database != databaseUnconfigured {
		t.Fatalf("expected ok with unconfigured database, got %+v", resp)
	}
	if resp.Preview.MaxBytes != preview.DefaultMaxBytes || resp.Preview.Size != preview.DefaultSize {
		t.Fatalf("expected default preview limits, got %+v", resp.Preview)
	}
}

func TestHealthReportsEditorReadiness(t *testing.T) {
	_, cleanup := withTestSessionManager(t)
	t.Cleanup(cleanup)
	_, dbCleanup := withTestDatabase(t)
	t.Cleanup(dbCleanup)
	ConfigurePreview(preview.Options{MaxBytes: 1 << 20, Size: 96})
	t.Cleanup(func() { ConfigurePreview(preview.Options{}) })

	w := httptest.NewRecorder()
	Health(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	resp := decodeHealth(t, w)
	if resp.Status != "ok" || resp.Database != databaseReady {
		t.Fatalf("expected ready database, got %+v", resp)
	}
	if !resp.Sessions {
		t.Fatal("expected sessions to be reported as configured")
	}
	if resp.Preview.MaxBytes != 1<<20 || resp.Preview.Size != 96 {
		t.Fatalf("expected configured preview limits, got %+v", resp.Preview)
	}
}

func TestHealthDegradedWhenDatabaseClosed(t *testing.T) {
	db, dbCleanup := withTestDatabase(t)
	t.Cleanup(dbCleanup)
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("database handle: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close database: %v", err)
	}

	w := httptest.NewRecorder()
	Health(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", w.Code)
	}
	resp := decodeHealth(t, w)
	if resp.Status != "degraded" || resp.Database != databaseUnavailable {
		t.Fatalf("expected degraded response, got %+v", resp)
	}
}
