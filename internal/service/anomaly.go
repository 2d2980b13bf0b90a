package service

import (
	"time"

	"github.com/Dharamchandpatle/RefineryIQ/internal/domain"
	"github.com/Dharamchandpatle/RefineryIQ/internal/tabular"
	"github.com/rs/zerolog/log"
)

var (
	scoreColumns = []string{"score", "anomaly_score", "z_score"}
	timeColumns  = []string{"timestamp", "time", "date"}
)

// AnomalyService projects anomaly rows out of the plant export and
// derives severity-bucketed alerts from them.
type AnomalyService struct {
	tables TableSource
}

// NewAnomalyService creates a new anomaly service.
func NewAnomalyService(tables TableSource) *AnomalyService {
	return &AnomalyService{tables: tables}
}

// Anomalies returns up to limit flagged rows. When the export carries an
// anomaly column only flagged rows are returned; without one every row
// passes through. A missing file yields an empty slice.
func (s *AnomalyService) Anomalies(limit int) []domain.AnomalyRecord {
	table, err := s.tables.Load(AnomalyDataFile)
	if err != nil {
		log.Warn().Err(err).Str("file", AnomalyDataFile).Msg("failed to load anomaly source")
		return []domain.AnomalyRecord{}
	}

	anomalyCol, hasFlag := table.Resolve(anomalyColumns...)
	scoreCol, hasScore := table.Resolve(scoreColumns...)
	timeCol, hasTime := table.Resolve(timeColumns...)

	records := []domain.AnomalyRecord{}
	for _, row := range table.Rows {
		if hasFlag && !tabular.Truthy(row[anomalyCol]) {
			continue
		}
		if len(records) == limit {
			break
		}

		record := domain.AnomalyRecord{Raw: row}
		if hasTime {
			record.Timestamp = row[timeCol]
		}
		if hasScore {
			if v, ok := tabular.Float(row[scoreCol]); ok {
				record.Score = &v
			}
		}
		records = append(records, record)
	}

	return records
}

// Alerts derives one severity-bucketed alert per anomaly row. Buckets
// use inclusive lower bounds; a missing score lands in "low".
func (s *AnomalyService) Alerts(limit int) []domain.Alert {
	anomalies := s.Anomalies(limit)
	now := time.Now().UTC()

	alerts := []domain.Alert{}
	for _, record := range anomalies {
		var score float64
		if record.Score != nil {
			score = *record.Score
		}

		alerts = append(alerts, domain.Alert{
			Message:   "Anomaly detected in refinery operations.",
			Severity:  Severity(score),
			Timestamp: now,
			Source:    "anomaly_detection",
		})
	}

	return alerts
}

// Severity buckets a continuous anomaly score into a discrete label.
func Severity(score float64) string {
	switch {
	case score >= 0.9:
		return domain.SeverityCritical
	case score >= 0.7:
		return domain.SeverityHigh
	case score >= 0.5:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}
