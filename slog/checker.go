package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/checkhtml"
)

// Ensure LoggingChecker implements checkhtml.Checker.
var _ checkhtml.Checker = (*LoggingChecker)(nil)

// LoggingChecker wraps a Checker with debug logging.
type LoggingChecker struct {
	next   checkhtml.Checker
	logger *slog.Logger
}

// NewLoggingChecker creates a new LoggingChecker.
func NewLoggingChecker(next checkhtml.Checker, logger *slog.Logger) *LoggingChecker {
	return &LoggingChecker{next: next, logger: logger}
}

// Check delegates to the wrapped checker and logs how many selectors matched.
func (c *LoggingChecker) Check(html string, checklist checkhtml.Checklist) (report *checkhtml.Report, err error) {
	defer func(begin time.Time) {
		var matched, total int
		if report != nil {
			total = report.Len()
			for _, r := range report.Results() {
				if r.Present {
					matched++
				}
			}
		}
		c.logger.Info("check",
			"selectors", total,
			"matched", matched,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Check(html, checklist)
}

// Ensure LoggingChecklistLoader implements checkhtml.ChecklistLoader.
var _ checkhtml.ChecklistLoader = (*LoggingChecklistLoader)(nil)

// LoggingChecklistLoader wraps a ChecklistLoader with debug logging.
type LoggingChecklistLoader struct {
	next   checkhtml.ChecklistLoader
	logger *slog.Logger
}

// NewLoggingChecklistLoader creates a new LoggingChecklistLoader.
func NewLoggingChecklistLoader(next checkhtml.ChecklistLoader, logger *slog.Logger) *LoggingChecklistLoader {
	return &LoggingChecklistLoader{next: next, logger: logger}
}

// LoadChecklist delegates to the wrapped loader and logs the operation.
func (l *LoggingChecklistLoader) LoadChecklist(path string) (checklist checkhtml.Checklist, err error) {
	defer func() {
		l.logger.Info("load checklist",
			"path", path,
			"count", len(checklist),
			"err", err,
		)
	}()
	return l.next.LoadChecklist(path)
}
