package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spacesedan/smartnotes/internal/models"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("[SQLiteStore] failed to open %s: %w", path, err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS feedback (
		seq          INTEGER PRIMARY KEY AUTOINCREMENT,
		id           TEXT NOT NULL UNIQUE,
		text         TEXT NOT NULL,
		submitted_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_feedback_submitted_at ON feedback(submitted_at);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("[SQLiteStore] failed to apply schema: %w", err)
	}

	slog.Info("[SQLiteStore] Opened feedback database", slog.String("path", path))
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Append(ctx context.Context, text string) (models.FeedbackItem, error) {
	text, err := normalizeText(text)
	if err != nil {
		return models.FeedbackItem{}, err
	}

	item := models.FeedbackItem{
		ID:          uuid.NewString(),
		Text:        text,
		SubmittedAt: time.Now().UTC().Truncate(time.Second),
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO feedback (id, text, submitted_at) VALUES (?, ?, ?)`,
		item.ID, item.Text, item.SubmittedAt)
	if err != nil {
		return models.FeedbackItem{}, fmt.Errorf("[SQLiteStore] failed to insert feedback: %w", err)
	}
	return item, nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]models.FeedbackItem, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, text, submitted_at FROM feedback ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("[SQLiteStore] failed to query feedback: %w", err)
	}
	defer rows.Close()

	var items []models.FeedbackItem
	for rows.Next() {
		var item models.FeedbackItem
		if err := rows.Scan(&item.ID, &item.Text, &item.SubmittedAt); err != nil {
			return nil, fmt.Errorf("[SQLiteStore] failed to scan feedback: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
