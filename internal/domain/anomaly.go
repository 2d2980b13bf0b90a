package domain

import "time"

// AnomalyRecord is a row-shaped projection of the anomaly CSV. Raw keeps
// the original cells verbatim so the client can render columns the
// normalizer does not know about.
type AnomalyRecord struct {
	Timestamp string            `json:"timestamp,omitempty"`
	Score     *float64          `json:"score"`
	Raw       map[string]string `json:"raw"`
}

// Alert severity buckets, derived from the anomaly score with inclusive
// lower bounds.
const (
	SeverityCritical = "critical" // score >= 0.9
	SeverityHigh     = "high"     // score >= 0.7
	SeverityMedium   = "medium"   // score >= 0.5
	SeverityLow      = "low"
)

// Alert is derived from an AnomalyRecord per request; never persisted.
type Alert struct {
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
}
