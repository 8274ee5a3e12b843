package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/checkhtml"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ checkhtml.RunService = (*RunService)(nil)

// RunService implements checkhtml.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun stores a run. The report is stored as JSON in selector order.
func (s *RunService) CreateRun(ctx context.Context, run *checkhtml.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	report, err := json.Marshal(run.Report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	run.ID = uuid.New().String()
	run.CheckedAt = time.Now().UTC()
	run.ContentHash = hashContent(run.Content)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, source, content_hash, report, checked_at)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.Source, run.ContentHash, string(report), run.CheckedAt.Format(time.RFC3339Nano))

	return err
}

// FindLatestRun returns the most recently stored run for source.
func (s *RunService) FindLatestRun(ctx context.Context, source string) (*checkhtml.Run, error) {
	var run checkhtml.Run
	var report, checkedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source, content_hash, report, checked_at
		FROM runs
		WHERE source = ?
		ORDER BY rowid DESC
		LIMIT 1
	`, source).Scan(&run.ID, &run.Source, &run.ContentHash, &report, &checkedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, checkhtml.Errorf(checkhtml.ENOTFOUND, "no runs for %s", source)
	}
	if err != nil {
		return nil, err
	}

	run.Report = checkhtml.NewReport()
	if err := json.Unmarshal([]byte(report), run.Report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}

	if run.CheckedAt, err = parseRFC3339(checkedAt, "checked_at"); err != nil {
		return nil, err
	}

	return &run, nil
}
