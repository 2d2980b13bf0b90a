package service

import (
	"fmt"

	"github.com/Dharamchandpatle/RefineryIQ/internal/domain"
	"github.com/Dharamchandpatle/RefineryIQ/internal/tabular"
	"github.com/rs/zerolog/log"
)

// Forecast source files, one per metric.
const (
	EnergyForecastFile = "energy_forecast.csv"
	SECForecastFile    = "sec_forecast.csv"
)

// ForecastService projects forecast rows from the per-metric CSVs.
type ForecastService struct {
	tables TableSource
}

// NewForecastService creates a new forecast service.
func NewForecastService(tables TableSource) *ForecastService {
	return &ForecastService{tables: tables}
}

// Forecasts returns up to limit rows for the metric, each tagged with
// the metric name. The metric must be validated at the boundary; an
// unknown one is a programming error here.
func (s *ForecastService) Forecasts(metric string, limit int) ([]domain.ForecastRecord, error) {
	var file string
	switch metric {
	case domain.MetricEnergy:
		file = EnergyForecastFile
	case domain.MetricSEC:
		file = SECForecastFile
	default:
		return nil, fmt.Errorf("unsupported forecast metric: %s", metric)
	}

	table, err := s.tables.Load(file)
	if err != nil {
		log.Warn().Err(err).Str("file", file).Msg("failed to load forecast source")
		return []domain.ForecastRecord{}, nil
	}

	timeCol, hasTime := table.Resolve(timeColumns...)
	valueCol, hasValue := table.Resolve("value", metric, "forecast")

	records := []domain.ForecastRecord{}
	for _, row := range table.Rows {
		if len(records) == limit {
			break
		}

		record := domain.ForecastRecord{Metric: metric, Raw: row}
		if hasTime {
			record.Timestamp = row[timeCol]
		}
		if hasValue {
			if v, ok := tabular.Float(row[valueCol]); ok {
				record.Value = &v
			}
		}
		records = append(records, record)
	}

	return records, nil
}
