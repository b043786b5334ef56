package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spacesedan/smartnotes/internal/db"
)

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [feedback]",
		Short: "Append a feedback entry to the store",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := db.Open(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			item, err := store.Append(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Feedback saved (%s)\n", item.ID)
			return nil
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every stored feedback entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := db.Open(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			return listFeedback(cmd.Context(), store, cmd.OutOrStdout())
		},
	}
}

func listFeedback(ctx context.Context, store db.FeedbackStore, w io.Writer) error {
	items, err := store.List(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(w, "No feedback yet.")
		return nil
	}
	for i, item := range items {
		submitted := "-"
		if !item.SubmittedAt.IsZero() {
			submitted = item.SubmittedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%3d  %-16s  %s\n", i+1, submitted, item.Text)
	}
	return nil
}
