package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is one scheduled run. Errors are logged and the schedule continues.
type Job func(ctx context.Context) error

func ParseSchedule(spec string) (cron.Schedule, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	sched, err := parser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("[Scheduler] invalid schedule %q: %w", spec, err)
	}
	return sched, nil
}

// Run calls job at every activation of sched until ctx is canceled.
func Run(ctx context.Context, sched cron.Schedule, loc *time.Location, job Job) error {
	if loc == nil {
		loc = time.Local
	}

	for {
		now := time.Now().In(loc)
		next := sched.Next(now)
		wait := next.Sub(now)
		slog.Info("[Scheduler] Next digest scheduled",
			slog.String("at", next.Format("Mon Jan 2 15:04")),
			slog.Duration("in", wait.Round(time.Second)))

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			slog.Info("[Scheduler] Stopping")
			return ctx.Err()
		case <-timer.C:
		}

		start := time.Now()
		if err := job(ctx); err != nil {
			slog.Error("[Scheduler] Digest run failed",
				slog.String("error", err.Error()),
				slog.Duration("elapsed", time.Since(start)))
			continue
		}
		slog.Info("[Scheduler] Digest run complete",
			slog.Duration("elapsed", time.Since(start)))
	}
}
