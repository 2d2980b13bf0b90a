package domain

import "time"

// Recommendation is a row-shaped projection of the optimization
// recommendations CSV.
type Recommendation struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Impact      string    `json:"impact,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
