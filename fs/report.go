package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/checkhtml"
)

// Ensure ReportStore implements checkhtml.ReportStore at compile time.
var _ checkhtml.ReportStore = (*ReportStore)(nil)

// ReportStore writes formatted reports to a file.
// The report is written to a temp file next to the target and renamed into
// place so readers never observe a partially written file.
type ReportStore struct {
	path string
}

// NewReportStore creates a new ReportStore writing to path.
func NewReportStore(path string) *ReportStore {
	return &ReportStore{path: path}
}

// Save writes the report followed by a newline.
func (s *ReportStore) Save(report *checkhtml.Report) error {
	out, err := report.Format()
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(out + "\n"); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
