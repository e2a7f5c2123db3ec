package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"eventsapi/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query string
		want  domain.PaginationParams
	}{
		{"", domain.PaginationParams{Offset: 0, Limit: 100}},
		{"?skip=20&limit=5", domain.PaginationParams{Offset: 20, Limit: 5}},
		{"?limit=101", domain.PaginationParams{Offset: 0, Limit: 100}},
		{"?limit=0", domain.PaginationParams{Offset: 0, Limit: 100}},
		{"?skip=-1", domain.PaginationParams{Offset: 0, Limit: 100}},
		{"?skip=x&limit=y", domain.PaginationParams{Offset: 0, Limit: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/events"+tt.query, nil)
			assert.Equal(t, tt.want, ParsePagination(req))
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		value  string
		want   int64
		wantOK bool
	}{
		{"1", 1, true},
		{"9223372036854775807", 9223372036854775807, true},
		{"0", 0, false},
		{"-2", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{"99999999999999999999", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.SetPathValue("eventID", tt.value)
			got, ok := ParseID(req, "eventID")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
