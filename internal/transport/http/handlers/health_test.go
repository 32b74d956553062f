package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthHandler_Readiness(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewHealthHandler(
		WithReadinessCheck("database", func(context.Context) error { return nil }),
		WithReadinessCheck("redis", func(context.Context) error { return errors.New("redis down") }),
	)

	engine := gin.New()
	engine.GET("/readyz", handler.Readiness)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("readiness returned %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}

	var body ReadinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Status != "not ready" {
		t.Fatalf("status = %q, want %q", body.Status, "not ready")
	}
	if body.Checks["database"] != "ok" {
		t.Fatalf("database check = %q, want ok", body.Checks["database"])
	}
	if body.Checks["redis"] != "redis down" {
		t.Fatalf("redis check = %q, want the probe error", body.Checks["redis"])
	}
}

func TestHealthHandler_Status(t *testing.T) {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.GET("/healthz", NewHealthHandler().Status)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status returned %d, want %d", rec.Code, http.StatusOK)
	}
}
