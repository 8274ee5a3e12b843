package checkhtml

import (
	"context"
	"time"
)

// Run is a recorded check of one source against a checklist.
type Run struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	ContentHash string    `json:"contentHash"`
	Report      *Report   `json:"report"`
	CheckedAt   time.Time `json:"checkedAt"`

	// Content is the markup that was checked. It is hashed, not stored.
	Content string `json:"-"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.Source == "" {
		return Errorf(EINVALID, "run source required")
	}
	if r.Report == nil {
		return Errorf(EINVALID, "run report required")
	}
	return nil
}

// RunService records check runs.
type RunService interface {
	// CreateRun stores a run, assigning its ID, content hash and timestamp.
	CreateRun(ctx context.Context, run *Run) error

	// FindLatestRun returns the most recent run for a source.
	// Returns ENOTFOUND if the source has never been checked.
	FindLatestRun(ctx context.Context, source string) (*Run, error)
}
