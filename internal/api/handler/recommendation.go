package handler

import (
	"net/http"

	"github.com/Dharamchandpatle/RefineryIQ/internal/api/response"
	"github.com/Dharamchandpatle/RefineryIQ/internal/service"
)

// RecommendationHandler serves optimization recommendations.
type RecommendationHandler struct {
	recommendationService *service.RecommendationService
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(recommendationService *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// List returns recommendation rows from the optimization export.
func (h *RecommendationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, err := limitParam(r, 50, 500)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	response.OK(w, h.recommendationService.Recommendations(limit))
}
