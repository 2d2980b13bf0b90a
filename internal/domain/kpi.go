package domain

import "time"

// KPISnapshot is a point-in-time KPI summary, either computed fresh from
// the plant CSV export or read back from the kpi_snapshots collection.
// Numeric fields are pointers: a nil value means the underlying column
// was missing or held nothing parseable, never NaN.
type KPISnapshot struct {
	ID          string     `json:"id,omitempty" bson:"-"`
	TotalEnergy *float64   `json:"total_energy" bson:"total_energy,omitempty"`
	AvgEnergy   *float64   `json:"avg_energy" bson:"avg_energy,omitempty"`
	AvgSEC      *float64   `json:"avg_sec" bson:"avg_sec,omitempty"`
	AnomalyRate *float64   `json:"anomaly_rate" bson:"anomaly_rate,omitempty"`
	LastUpdated *time.Time `json:"last_updated" bson:"timestamp,omitempty"`
}
