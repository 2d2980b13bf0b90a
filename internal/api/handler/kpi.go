package handler

import (
	"net/http"

	"github.com/Dharamchandpatle/RefineryIQ/internal/api/response"
	"github.com/Dharamchandpatle/RefineryIQ/internal/service"
)

// KPIHandler serves KPI summaries and snapshot history.
type KPIHandler struct {
	kpiService *service.KPIService
}

// NewKPIHandler creates a new KPI handler
func NewKPIHandler(kpiService *service.KPIService) *KPIHandler {
	return &KPIHandler{kpiService: kpiService}
}

// Summary returns the current snapshot, persisted or computed.
func (h *KPIHandler) Summary(w http.ResponseWriter, r *http.Request) {
	response.OK(w, h.kpiService.Summary(r.Context()))
}

// Snapshots returns persisted snapshots, newest first.
func (h *KPIHandler) Snapshots(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r, 50, 500)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	response.OK(w, h.kpiService.Snapshots(r.Context(), limit))
}
