package handler

import (
	"net/http"

	"github.com/Dharamchandpatle/RefineryIQ/internal/api/response"
	"github.com/Dharamchandpatle/RefineryIQ/internal/service"
)

// AnomalyHandler serves anomaly rows and derived alerts.
type AnomalyHandler struct {
	anomalyService *service.AnomalyService
}

// NewAnomalyHandler creates a new anomaly handler
func NewAnomalyHandler(anomalyService *service.AnomalyService) *AnomalyHandler {
	return &AnomalyHandler{anomalyService: anomalyService}
}

// List returns anomaly rows from the plant export.
func (h *AnomalyHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r, 100, 1000)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	response.OK(w, h.anomalyService.Anomalies(limit))
}

// Alerts returns severity-bucketed alerts derived from anomalies.
func (h *AnomalyHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r, 100, 1000)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	response.OK(w, h.anomalyService.Alerts(limit))
}
