package domain

// Forecast metrics supported by the forecasts endpoint. Each reads a
// distinct source file and tags its records accordingly.
const (
	MetricEnergy = "energy"
	MetricSEC    = "sec"
)

// ForecastRecord is a row-shaped projection of a forecast CSV.
type ForecastRecord struct {
	Timestamp string            `json:"timestamp,omitempty"`
	Value     *float64          `json:"value"`
	Metric    string            `json:"metric"`
	Raw       map[string]string `json:"raw"`
}
