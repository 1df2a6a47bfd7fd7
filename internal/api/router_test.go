package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mfalcao/payagent/internal/domain/dto"
	"github.com/mfalcao/payagent/internal/domain/models"
)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Provide a service that returns an affirmative report so the handler
	// answers 200 through the full middleware chain.
	svc := &mockAgentService{report: &models.ActionReport{
		Subject:  "bitcoin",
		Quantity: 2,
		Decision: models.Decision{
			Kind:      models.ConditionMet,
			UnitPrice: 30000,
			Snapshot:  &models.PriceSnapshot{Asset: "bitcoin", Current: 29500, Baseline: 31000},
		},
		Payment: models.PaymentResult{Status: models.PaymentCompleted, ReferenceID: "pay_7"},
	}}
	h := NewHandler(svc)
	r := NewRouter(h)

	body := `{"asset":"bitcoin","quantity":2,"operator":"<","threshold":30000,"recipient":"Coinbase"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/intents/trade", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", w.Code, w.Body.String())
	}

	// Ensure RequestID middleware injected header
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}

	var out dto.AgentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if out.Status != string(models.PaymentCompleted) {
		t.Fatalf("unexpected status: %q", out.Status)
	}
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := NewRouter(NewHandler(&mockAgentService{}))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", w.Code)
	}
}
