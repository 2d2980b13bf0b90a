package handler

import (
	"fmt"
	"net/http"
	"strconv"
)

// limitParam parses the limit query parameter against an inclusive
// 1..max window. Absent means the default; malformed or out-of-range
// values are rejected before any component runs.
func limitParam(r *http.Request, def, max int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("limit must be an integer")
	}
	if limit < 1 || limit > max {
		return 0, fmt.Errorf("limit must be between 1 and %d", max)
	}
	return limit, nil
}
