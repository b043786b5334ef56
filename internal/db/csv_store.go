package db

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spacesedan/smartnotes/internal/models"
)

const (
	csvColumnID          = "id"
	csvColumnFeedback    = "feedback"
	csvColumnSubmittedAt = "submitted_at"
)

var csvHeader = []string{csvColumnID, csvColumnFeedback, csvColumnSubmittedAt}

// CSVStore keeps feedback in a flat CSV file. Files that only have the legacy
// single "feedback" column are read as-is and appended to in the same shape;
// rows without an id get one derived from their position and text.
type CSVStore struct {
	path string
	mu   sync.Mutex
}

func NewCSVStore(path string) (*CSVStore, error) {
	s := &CSVStore{path: path}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := s.writeHeader(); err != nil {
			return nil, err
		}
		slog.Info("[CSVStore] Created feedback file", slog.String("path", path))
	} else if err != nil {
		return nil, fmt.Errorf("[CSVStore] failed to stat %s: %w", path, err)
	}
	return s, nil
}

func (s *CSVStore) writeHeader() error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("[CSVStore] failed to create %s: %w", s.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (s *CSVStore) Append(ctx context.Context, text string) (models.FeedbackItem, error) {
	text, err := normalizeText(text)
	if err != nil {
		return models.FeedbackItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	header, _, err := s.read()
	if err != nil {
		return models.FeedbackItem{}, err
	}

	item := models.FeedbackItem{
		ID:          uuid.NewString(),
		Text:        text,
		SubmittedAt: time.Now().UTC().Truncate(time.Second),
	}

	row := make([]string, len(header))
	for i, column := range header {
		switch column {
		case csvColumnID:
			row[i] = item.ID
		case csvColumnFeedback:
			row[i] = item.Text
		case csvColumnSubmittedAt:
			row[i] = item.SubmittedAt.Format(time.RFC3339)
		}
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_RDWR, 0o644)
	if err != nil {
		return models.FeedbackItem{}, fmt.Errorf("[CSVStore] failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	if err := terminateLastLine(f); err != nil {
		return models.FeedbackItem{}, fmt.Errorf("[CSVStore] failed to prepare %s: %w", s.path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(row); err != nil {
		return models.FeedbackItem{}, fmt.Errorf("[CSVStore] failed to append row: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return models.FeedbackItem{}, fmt.Errorf("[CSVStore] failed to flush row: %w", err)
	}

	slog.Debug("[CSVStore] Appended feedback", slog.String("id", item.ID))
	return item, nil
}

// terminateLastLine writes a newline when the file does not already end with
// one, so a hand-edited file never has the next row glued onto its last row.
func terminateLastLine(f *os.File) error {
	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return nil
	}

	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return err
	}
	if last[0] == '\n' {
		return nil
	}
	_, err = f.Write([]byte("\n"))
	return err
}

func (s *CSVStore) List(ctx context.Context) ([]models.FeedbackItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, items, err := s.read()
	return items, err
}

func (s *CSVStore) Close() error { return nil }

func (s *CSVStore) read() ([]string, []models.FeedbackItem, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("[CSVStore] failed to open %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("[CSVStore] %s has no header row", s.path)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("[CSVStore] failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	feedbackCol, ok := columns[csvColumnFeedback]
	if !ok {
		return nil, nil, fmt.Errorf("[CSVStore] %s is missing the %q column", s.path, csvColumnFeedback)
	}

	var items []models.FeedbackItem
	for row := 0; ; row++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("[CSVStore] failed to read row %d: %w", row+1, err)
		}

		item := models.FeedbackItem{Text: field(record, feedbackCol)}
		if col, ok := columns[csvColumnID]; ok {
			item.ID = field(record, col)
		}
		if item.ID == "" {
			item.ID = legacyID(row, item.Text)
		}
		if col, ok := columns[csvColumnSubmittedAt]; ok {
			if ts, err := time.Parse(time.RFC3339, field(record, col)); err == nil {
				item.SubmittedAt = ts
			}
		}
		items = append(items, item)
	}
	return header, items, nil
}

func field(record []string, col int) string {
	if col < len(record) {
		return record[col]
	}
	return ""
}

// legacyID derives a stable id for rows written without one.
func legacyID(row int, text string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(strconv.Itoa(row)+":"+text)).String()
}
