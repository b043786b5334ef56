package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/spacesedan/smartnotes/internal/clients/kafka_client"
	"github.com/spacesedan/smartnotes/internal/db"
)

func submitCmd() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "submit [feedback]",
		Short: "Publish feedback to Kafka for the ingest consumer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return db.ErrEmptyFeedback
			}

			producer, err := kafka_client.NewFeedbackProducer(cfg.Kafka)
			if err != nil {
				return err
			}
			defer producer.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			submission := kafka_client.NewSubmission(text, source)
			if err := producer.PublishFeedback(ctx, submission); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Feedback submitted (%s)\n", submission.SubmissionID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "cli", "Where the feedback was collected")

	return cmd
}
