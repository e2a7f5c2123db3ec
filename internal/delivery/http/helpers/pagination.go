package helpers

import (
	"net/http"
	"strconv"

	"eventsapi/internal/domain"
)

// ParsePagination reads skip and limit from the request query string,
// clamps them to valid ranges, and returns domain.PaginationParams.
// Invalid or missing values fall back to defaults.
func ParsePagination(r *http.Request) domain.PaginationParams {
	skip := 0
	if s := r.URL.Query().Get("skip"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			skip = v
		}
	}
	limit := domain.DefaultListLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 1 {
			limit = v
			if limit > domain.MaxListLimit {
				limit = domain.MaxListLimit
			}
		}
	}
	return domain.PaginationParams{Offset: skip, Limit: limit}
}

// ParseID parses a positive integer path value such as {eventID}.
func ParseID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
