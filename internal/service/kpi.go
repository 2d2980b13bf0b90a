package service

import (
	"context"
	"time"

	"github.com/Dharamchandpatle/RefineryIQ/internal/domain"
	"github.com/Dharamchandpatle/RefineryIQ/internal/tabular"
	"github.com/rs/zerolog/log"
)

// AnomalyDataFile is the plant export carrying energy, SEC and anomaly
// flag columns. Its header names vary between export jobs, hence the
// candidate lists below.
const AnomalyDataFile = "final_refinery_data_with_anomalies.csv"

var (
	energyColumns  = []string{"energy", "energy_consumption", "total_energy", "energy_kwh", "consumption"}
	secColumns     = []string{"sec", "specific_energy_consumption", "sec_value"}
	anomalyColumns = []string{"anomaly", "is_anomaly", "anomaly_flag"}
)

// TableSource loads named CSV exports. *tabular.Loader is the production
// implementation.
type TableSource interface {
	Load(name string) (*tabular.Table, error)
}

// SnapshotStore reads persisted KPI snapshots, newest first.
type SnapshotStore interface {
	Latest(ctx context.Context) (*domain.KPISnapshot, error)
	List(ctx context.Context, limit int) ([]domain.KPISnapshot, error)
}

// KPIService resolves KPI summaries: persisted snapshot if one exists,
// live aggregation over the CSV export otherwise.
type KPIService struct {
	snapshots SnapshotStore
	tables    TableSource
}

// NewKPIService creates a new KPI service.
func NewKPIService(snapshots SnapshotStore, tables TableSource) *KPIService {
	return &KPIService{snapshots: snapshots, tables: tables}
}

// Summary returns the current snapshot. The fallback chain is
// deterministic: the newest persisted snapshot when the store has one,
// else a live computation. A dead or empty store never fails the call;
// computed data is always available as a backstop.
func (s *KPIService) Summary(ctx context.Context) domain.KPISnapshot {
	if s.snapshots != nil {
		snapshot, err := s.snapshots.Latest(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("snapshot store unavailable, computing live summary")
		} else if snapshot != nil {
			return *snapshot
		}
	}
	return s.computeLive()
}

// Snapshots lists persisted snapshots, newest first. Listing is
// store-only: an empty or unreachable store yields an empty sequence,
// never a live computation.
func (s *KPIService) Snapshots(ctx context.Context, limit int) []domain.KPISnapshot {
	if s.snapshots == nil {
		return []domain.KPISnapshot{}
	}
	snapshots, err := s.snapshots.List(ctx, limit)
	if err != nil {
		log.Warn().Err(err).Msg("failed to list snapshots")
		return []domain.KPISnapshot{}
	}
	return snapshots
}

func (s *KPIService) computeLive() domain.KPISnapshot {
	table, err := s.tables.Load(AnomalyDataFile)
	if err != nil {
		log.Warn().Err(err).Str("file", AnomalyDataFile).Msg("failed to load KPI source")
		table = tabular.NewTable(nil, nil)
	}
	return ComputeSummary(table)
}

// ComputeSummary aggregates the KPI columns of a table. Each column
// resolves independently: a missing anomaly column does not block the
// energy total. Columns with nothing parseable aggregate to nil, and a
// zero row count yields a nil anomaly rate rather than a division error.
func ComputeSummary(table *tabular.Table) domain.KPISnapshot {
	now := time.Now().UTC()
	snapshot := domain.KPISnapshot{LastUpdated: &now}

	if header, ok := table.Resolve(energyColumns...); ok {
		if total, n := table.Sum(header); n > 0 {
			snapshot.TotalEnergy = &total
		}
		if mean, n := table.Mean(header); n > 0 {
			snapshot.AvgEnergy = &mean
		}
	}

	if header, ok := table.Resolve(secColumns...); ok {
		if mean, n := table.Mean(header); n > 0 {
			snapshot.AvgSEC = &mean
		}
	}

	if header, ok := table.Resolve(anomalyColumns...); ok && table.Len() > 0 {
		rate := float64(table.CountTruthy(header)) / float64(table.Len())
		snapshot.AnomalyRate = &rate
	}

	return snapshot
}
