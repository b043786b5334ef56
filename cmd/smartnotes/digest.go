package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/spacesedan/smartnotes/internal/db"
	"github.com/spacesedan/smartnotes/internal/monitoring"
	"github.com/spacesedan/smartnotes/internal/notify"
	"github.com/spacesedan/smartnotes/internal/pipeline"
	"github.com/spacesedan/smartnotes/internal/report"
	"github.com/spacesedan/smartnotes/internal/scheduler"
	"github.com/spacesedan/smartnotes/internal/sentiment"
)

var ErrAnalyzerUnhealthy = errors.New("sentiment analyzer is unhealthy")

// Poster delivers a rendered digest.
type Poster interface {
	Post(ctx context.Context, text string) error
}

func digestCmd() *cobra.Command {
	var schedule string
	var once bool

	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Post the smart notes digest to Slack, once or on a cron schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			notifier, err := notify.NewSlackNotifier(cfg.SlackToken, cfg.SlackChannelID)
			if err != nil {
				return err
			}

			store, err := db.Open(ctx, cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			pipe, classifier, err := newPipeline(cfg)
			if err != nil {
				return err
			}
			defer classifier.Close()

			healthy := &atomic.Bool{}
			healthy.Store(true)
			if checker, ok := classifier.(sentiment.HealthChecker); ok {
				go monitoring.MonitorClassifierHealth(ctx, checker, healthy, monitoring.HEALTHCHECK_INTERVAL)
			}

			job := digestJob(store, pipe, notifier, healthy)
			if once {
				return job(ctx)
			}

			if schedule == "" {
				schedule = cfg.DigestSchedule
			}
			sched, err := scheduler.ParseSchedule(schedule)
			if err != nil {
				return err
			}

			err = scheduler.Run(ctx, sched, time.Local, job)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&schedule, "schedule", "", "Cron expression for the digest (defaults to DIGEST_SCHEDULE)")
	cmd.Flags().BoolVar(&once, "once", false, "Post a single digest and exit")

	return cmd
}

// digestJob analyzes the store and posts the Slack rendering. Runs are
// skipped while the classifier's remote backend reports unhealthy.
func digestJob(store db.FeedbackStore, pipe *pipeline.Pipeline, poster Poster, healthy *atomic.Bool) scheduler.Job {
	return func(ctx context.Context) error {
		if healthy != nil && !healthy.Load() {
			return ErrAnalyzerUnhealthy
		}

		r, err := buildReport(ctx, store, pipe, time.Now())
		if errors.Is(err, ErrNoFeedback) {
			slog.Info("[Digest] No feedback to report, skipping")
			return nil
		}
		if err != nil {
			return err
		}

		if err := poster.Post(ctx, report.Slack(r)); err != nil {
			return fmt.Errorf("[Digest] failed to post digest: %w", err)
		}
		return nil
	}
}
