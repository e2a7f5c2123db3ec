package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakePurger struct {
	mu      sync.Mutex
	calls   int
	cutoffs []time.Time
	n       int64
	err     error
}

func (f *fakePurger) PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.cutoffs = append(f.cutoffs, cutoff)
	return f.n, f.err
}

func (f *fakePurger) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestHousekeeper_RunOnce(t *testing.T) {
	now := time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		retention time.Duration
		n         int64
		err       error
		wantCut   time.Time
	}{
		{"default retention", 24 * time.Hour, 3, nil, now.Add(-24 * time.Hour)},
		{"zero retention", 0, 0, nil, now},
		{"purge error", time.Hour, 0, errors.New("db down"), now.Add(-time.Hour)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakePurger{n: tt.n, err: tt.err}
			h := NewHousekeeper(testLogger, p, tt.retention)
			h.now = func() time.Time { return now }

			n, err := h.RunOnce(context.Background())

			require.Len(t, p.cutoffs, 1)
			assert.Equal(t, tt.wantCut, p.cutoffs[0])
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Zero(t, n)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.n, n)
		})
	}
}

func TestHousekeeper_Start(t *testing.T) {
	t.Run("empty schedule is a no-op", func(t *testing.T) {
		h := NewHousekeeper(testLogger, &fakePurger{}, time.Hour)
		require.NoError(t, h.Start(""))
		h.Stop(context.Background())
	})

	t.Run("invalid schedule", func(t *testing.T) {
		h := NewHousekeeper(testLogger, &fakePurger{}, time.Hour)
		err := h.Start("every tuesday")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid purge schedule")
	})

	t.Run("runs on schedule", func(t *testing.T) {
		p := &fakePurger{}
		h := NewHousekeeper(testLogger, p, time.Hour)
		require.NoError(t, h.Start("@every 1s"))
		defer h.Stop(context.Background())

		require.Eventually(t, func() bool { return p.callCount() > 0 }, 5*time.Second, 50*time.Millisecond)
	})
}
