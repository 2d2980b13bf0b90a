package handler

import (
	"net/http"

	"github.com/Dharamchandpatle/RefineryIQ/internal/api/response"
	"github.com/Dharamchandpatle/RefineryIQ/internal/domain"
	"github.com/Dharamchandpatle/RefineryIQ/internal/service"
)

// ForecastHandler serves per-metric forecast rows.
type ForecastHandler struct {
	forecastService *service.ForecastService
}

// NewForecastHandler creates a new forecast handler
func NewForecastHandler(forecastService *service.ForecastService) *ForecastHandler {
	return &ForecastHandler{forecastService: forecastService}
}

// List returns forecast rows for the requested metric. The metric is
// validated before any file access.
func (h *ForecastHandler) List(w http.ResponseWriter, r *http.Request) {
	metric := r.URL.Query().Get("forecast_type")
	if metric == "" {
		metric = domain.MetricEnergy
	}
	if metric != domain.MetricEnergy && metric != domain.MetricSEC {
		response.BadRequest(w, "forecast_type must be one of: energy, sec")
		return
	}

	limit, err := limitParam(r, 100, 2000)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	records, err := h.forecastService.Forecasts(metric, limit)
	if err != nil {
		response.InternalError(w, "failed to load forecasts")
		return
	}

	response.OK(w, records)
}
