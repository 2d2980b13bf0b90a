package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dharamchandpatle/RefineryIQ/internal/api/handler"
	"github.com/Dharamchandpatle/RefineryIQ/internal/service"
	"github.com/Dharamchandpatle/RefineryIQ/internal/tabular"
)

// panicSource fails the test if any handler touches a data file.
type panicSource struct{ t *testing.T }

func (p panicSource) Load(name string) (*tabular.Table, error) {
	p.t.Fatalf("unexpected file access: %s", name)
	return nil, nil
}

// emptySource behaves like a data directory with no exports.
type emptySource struct{}

func (emptySource) Load(string) (*tabular.Table, error) {
	return tabular.NewTable(nil, nil), nil
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var response map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return response
}

func TestHealthCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	handler.HealthCheck(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	response := decodeResponse(t, rec)
	if response["success"] != true {
		t.Error("expected success to be true")
	}

	data, ok := response["data"].(map[string]any)
	if !ok {
		t.Fatal("expected data to be a map")
	}
	if data["status"] != "ok" {
		t.Errorf("expected status 'ok', got %v", data["status"])
	}
}

func TestForecast_InvalidTypeRejectedBeforeFileAccess(t *testing.T) {
	h := handler.NewForecastHandler(service.NewForecastService(panicSource{t}))

	req := httptest.NewRequest(http.MethodGet, "/forecasts?forecast_type=steam", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestForecast_DefaultsToEnergy(t *testing.T) {
	h := handler.NewForecastHandler(service.NewForecastService(emptySource{}))

	req := httptest.NewRequest(http.MethodGet, "/forecasts", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestLimitValidation(t *testing.T) {
	anomalies := handler.NewAnomalyHandler(service.NewAnomalyService(emptySource{}))

	cases := []struct {
		query string
		want  int
	}{
		{"", http.StatusOK},
		{"?limit=1", http.StatusOK},
		{"?limit=1000", http.StatusOK},
		{"?limit=0", http.StatusBadRequest},
		{"?limit=1001", http.StatusBadRequest},
		{"?limit=abc", http.StatusBadRequest},
	}

	for _, c := range cases {
		req := httptest.NewRequest(http.MethodGet, "/anomalies"+c.query, nil)
		rec := httptest.NewRecorder()

		anomalies.List(rec, req)

		if rec.Code != c.want {
			t.Errorf("GET /anomalies%s: expected status %d, got %d", c.query, c.want, rec.Code)
		}
	}
}

func TestChatbot_Validation(t *testing.T) {
	h := handler.NewChatbotHandler(service.NewChatService(nil, nil))

	// Empty message is rejected
	req := httptest.NewRequest(http.MethodPost, "/chatbot", strings.NewReader(`{"message":""}`))
	rec := httptest.NewRecorder()
	h.Chat(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}

	// Malformed JSON is rejected
	req = httptest.NewRequest(http.MethodPost, "/chatbot", strings.NewReader(`{`))
	rec = httptest.NewRecorder()
	h.Chat(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestChatbot_FallbackReply(t *testing.T) {
	h := handler.NewChatbotHandler(service.NewChatService(nil, nil))

	req := httptest.NewRequest(http.MethodPost, "/chatbot", strings.NewReader(`{"message":"status?"}`))
	rec := httptest.NewRecorder()

	h.Chat(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	response := decodeResponse(t, rec)
	data, ok := response["data"].(map[string]any)
	if !ok {
		t.Fatal("expected data to be a map")
	}
	if data["reply"] != service.FallbackReply {
		t.Errorf("expected fallback reply, got %v", data["reply"])
	}
	if _, hasModel := data["model"]; hasModel {
		t.Error("fallback reply must not carry a model identifier")
	}
}
