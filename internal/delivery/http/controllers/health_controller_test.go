package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventsapi/internal/delivery/http/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (f fakePinger) PingContext(ctx context.Context) error { return f.err }

func TestHealthController_Health(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantCode   string
	}{
		{"database up", nil, http.StatusOK, ""},
		{"database down", errors.New("dial tcp: refused"), http.StatusServiceUnavailable, helpers.ErrCodeUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewHealthController(testLogger, fakePinger{err: tt.pingErr})
			rr := httptest.NewRecorder()

			ctrl.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			_, apiErr := decodeEnvelope(t, rr.Body)
			if tt.wantCode == "" {
				assert.Nil(t, apiErr)
				return
			}
			require.NotNil(t, apiErr)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.NotContains(t, apiErr.Message, "dial tcp")
		})
	}
}
