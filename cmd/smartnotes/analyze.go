package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/spacesedan/smartnotes/internal/aggregate"
	"github.com/spacesedan/smartnotes/internal/db"
	"github.com/spacesedan/smartnotes/internal/pipeline"
	"github.com/spacesedan/smartnotes/internal/report"
)

// ErrNoFeedback is returned when there is nothing to analyze.
var ErrNoFeedback = errors.New("no feedback to analyze")

func instantCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "instant [feedback]",
		Short: "Classify a single piece of feedback without storing it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipe, classifier, err := newPipeline(cfg)
			if err != nil {
				return err
			}
			defer classifier.Close()

			return instantAnalysis(cmd.Context(), pipe, strings.Join(args, " "), cmd.OutOrStdout())
		},
	}
}

func instantAnalysis(ctx context.Context, pipe *pipeline.Pipeline, text string, w io.Writer) error {
	if strings.TrimSpace(text) == "" {
		return db.ErrEmptyFeedback
	}
	note, err := pipe.Analyze(ctx, text)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Sentiment: %s (%.2f)\n", note.Sentiment.Label, note.Sentiment.Score)
	fmt.Fprintf(w, "Issue: %s\n", note.Issue)
	return nil
}

func analyzeCmd() *cobra.Command {
	var format, out string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze all stored feedback and render the smart notes report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := db.Open(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			pipe, classifier, err := newPipeline(cfg)
			if err != nil {
				return err
			}
			defer classifier.Close()

			r, err := buildReport(cmd.Context(), store, pipe, time.Now())
			if errors.Is(err, ErrNoFeedback) {
				fmt.Fprintln(cmd.OutOrStdout(), "No feedback yet. Add some with `smartnotes add`.")
				return nil
			}
			if err != nil {
				return err
			}

			rendered, err := report.Render(r, format)
			if err != nil {
				return err
			}

			if out == "" {
				_, err = io.WriteString(cmd.OutOrStdout(), rendered)
				return err
			}
			if err := os.WriteFile(out, []byte(rendered), 0o644); err != nil {
				return fmt.Errorf("[CLI] failed to write report: %w", err)
			}
			slog.Info("[CLI] Report written",
				slog.String("path", out),
				slog.String("format", format))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", report.FormatText, "Output format (text, markdown, html)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the report to a file instead of stdout")

	return cmd
}

// buildReport runs the pipeline over every stored entry.
func buildReport(ctx context.Context, store db.FeedbackStore, pipe *pipeline.Pipeline, now time.Time) (report.Report, error) {
	items, err := store.List(ctx)
	if err != nil {
		return report.Report{}, err
	}
	if len(items) == 0 {
		return report.Report{}, ErrNoFeedback
	}

	start := time.Now()
	result, err := pipe.Run(ctx, items)
	if errors.Is(err, aggregate.ErrEmptyInput) {
		return report.Report{}, ErrNoFeedback
	}
	if err != nil {
		return report.Report{}, err
	}

	slog.Info("[CLI] Analysis complete",
		slog.Int("feedback", result.Stats.Total),
		slog.Float64("negative_percent", result.Stats.NegativePercent),
		slog.String("top_issue", result.Stats.TopIssue.String()),
		slog.Duration("elapsed", time.Since(start)))

	return report.Build(result, now), nil
}
