package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Purger deletes events that ended before cutoff. domain.EventService satisfies it.
type Purger interface {
	PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

// Housekeeper removes expired events once at startup and then on an optional cron schedule.
type Housekeeper struct {
	logger    *slog.Logger
	purger    Purger
	retention time.Duration
	now       func() time.Time
	cron      *cron.Cron
}

func NewHousekeeper(logger *slog.Logger, purger Purger, retention time.Duration) *Housekeeper {
	return &Housekeeper{
		logger:    logger,
		purger:    purger,
		retention: retention,
		now:       time.Now,
	}
}

// RunOnce purges events whose end (or start, when they have no end) is older than the retention window.
func (h *Housekeeper) RunOnce(ctx context.Context) (int64, error) {
	cutoff := h.now().Add(-h.retention)
	n, err := h.purger.PurgeExpired(ctx, cutoff)
	if err != nil {
		h.logger.ErrorContext(ctx, "purge failed", "cutoff", cutoff, "err", err)
		return 0, err
	}
	h.logger.InfoContext(ctx, "purged expired events", "count", n, "cutoff", cutoff)
	return n, nil
}

// Start schedules RunOnce with a standard five-field cron spec or a descriptor like "@hourly".
// An empty schedule is a no-op.
func (h *Housekeeper) Start(schedule string) error {
	if schedule == "" {
		return nil
	}
	log := cronLogger{h.logger}
	c := cron.New(
		cron.WithLogger(log),
		cron.WithChain(cron.Recover(log), cron.SkipIfStillRunning(log)),
	)
	if _, err := c.AddFunc(schedule, func() { _, _ = h.RunOnce(context.Background()) }); err != nil {
		return fmt.Errorf("invalid purge schedule %q: %w", schedule, err)
	}
	h.cron = c
	c.Start()
	h.logger.Info("purge scheduled", "schedule", schedule)
	return nil
}

// Stop halts the schedule and waits for a running purge to finish or ctx to end.
func (h *Housekeeper) Stop(ctx context.Context) {
	if h.cron == nil {
		return
	}
	select {
	case <-h.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// cronLogger routes cron's own logging to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "err", err)...)
}
