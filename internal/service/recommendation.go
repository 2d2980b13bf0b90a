package service

import (
	"time"

	"github.com/Dharamchandpatle/RefineryIQ/internal/domain"
	"github.com/rs/zerolog/log"
)

// RecommendationFile is the optimization engine's CSV export.
const RecommendationFile = "optimization_recommendations.csv"

// RecommendationService projects optimization recommendations.
type RecommendationService struct {
	tables TableSource
}

// NewRecommendationService creates a new recommendation service.
func NewRecommendationService(tables TableSource) *RecommendationService {
	return &RecommendationService{tables: tables}
}

// Recommendations returns up to limit rows. Title falls back through
// the known header spellings and finally to a generic label so a row is
// never dropped for naming drift.
func (s *RecommendationService) Recommendations(limit int) []domain.Recommendation {
	table, err := s.tables.Load(RecommendationFile)
	if err != nil {
		log.Warn().Err(err).Str("file", RecommendationFile).Msg("failed to load recommendation source")
		return []domain.Recommendation{}
	}

	titleCol, hasTitle := table.Resolve("title", "recommendation")
	descCol, hasDesc := table.Resolve("description", "details")
	impactCol, hasImpact := table.Resolve("impact", "benefit")
	now := time.Now().UTC()

	records := []domain.Recommendation{}
	for _, row := range table.Rows {
		if len(records) == limit {
			break
		}

		record := domain.Recommendation{Title: "Optimization", Timestamp: now}
		if hasTitle && row[titleCol] != "" {
			record.Title = row[titleCol]
		}
		if hasDesc {
			record.Description = row[descCol]
		}
		if hasImpact {
			record.Impact = row[impactCol]
		}
		records = append(records, record)
	}

	return records
}
