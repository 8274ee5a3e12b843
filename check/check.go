// Package check runs a checklist against a document: it acquires the
// markup, loads the checklist, evaluates it and optionally records the run.
package check

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/checkhtml"
	"github.com/fwojciec/checkhtml/fs"
	"github.com/fwojciec/checkhtml/goquery"
)

// Runner wires the services needed to check one document.
type Runner struct {
	Reader     checkhtml.Reader
	Fetcher    checkhtml.Fetcher
	Checklists checkhtml.ChecklistLoader
	Checker    checkhtml.Checker

	// Reports, if set, receives the report before the run is recorded.
	Reports checkhtml.ReportStore

	// Runs, if set, records every successful check and is used to report
	// selectors whose presence changed since the previous run.
	Runs checkhtml.RunService

	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Run validates cfg, acquires the markup for the active mode and checks it
// against the checklist. A run is only recorded once the report has been
// delivered. Errors are application errors whose message names
// the offending path or URL.
func (r *Runner) Run(ctx context.Context, cfg *checkhtml.Config) (*checkhtml.Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	html, err := r.acquire(ctx, cfg)
	if err != nil {
		return nil, err
	}

	checklist, err := r.Checklists.LoadChecklist(cfg.ChecksPath)
	if err != nil {
		if checkhtml.ErrorCode(err) == checkhtml.EINVALID {
			return nil, err
		}
		r.logger().Debug("load checklist", "path", cfg.ChecksPath, "err", err)
		return nil, checkhtml.Errorf(checkhtml.EUNAVAILABLE, "Could not read %s", cfg.ChecksPath)
	}

	report, err := r.Checker.Check(html, checklist)
	if err != nil {
		return nil, err
	}

	if r.Reports != nil {
		if err := r.Reports.Save(report); err != nil {
			return nil, fmt.Errorf("failed to write report: %w", err)
		}
	}

	if r.Runs != nil {
		if err := r.record(ctx, cfg.Source(), html, report); err != nil {
			return nil, err
		}
	}

	return report, nil
}

func (r *Runner) acquire(ctx context.Context, cfg *checkhtml.Config) (string, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = checkhtml.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	switch cfg.Mode() {
	case checkhtml.ModeURL:
		if r.Fetcher == nil {
			return "", checkhtml.Errorf(checkhtml.EINTERNAL, "no fetcher configured for %s", cfg.URL)
		}
		html, err := r.Fetcher.Fetch(ctx, cfg.URL)
		if err != nil {
			r.logger().Debug("download", "url", cfg.URL, "err", err)
			return "", checkhtml.Errorf(checkhtml.EUNAVAILABLE, "Could not download %s", cfg.URL)
		}
		return html, nil
	default:
		html, err := r.Reader.Read(ctx, cfg.HTMLPath)
		if err != nil {
			r.logger().Debug("read", "path", cfg.HTMLPath, "err", err)
			return "", checkhtml.Errorf(checkhtml.EUNAVAILABLE, "Could not read %s", cfg.HTMLPath)
		}
		return html, nil
	}
}

// record stores the run and logs selectors that changed since the last run
// of the same source.
func (r *Runner) record(ctx context.Context, source, html string, report *checkhtml.Report) error {
	prev, err := r.Runs.FindLatestRun(ctx, source)
	switch {
	case err == nil:
		for _, c := range report.Changes(prev.Report) {
			r.logger().Warn("selector changed",
				"source", source,
				"selector", c.Selector,
				"was", c.Was,
				"now", c.Now,
			)
		}
	case checkhtml.ErrorCode(err) == checkhtml.ENOTFOUND:
		// First run for this source.
	default:
		return fmt.Errorf("loading previous run: %w", err)
	}

	run := &checkhtml.Run{Source: source, Content: html, Report: report}
	if err := r.Runs.CreateRun(ctx, run); err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	r.logger().Info("recorded run", "id", run.ID, "source", source, "hash", run.ContentHash)
	return nil
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}

// ReportWriter delivers reports to an io.Writer.
type ReportWriter struct {
	w io.Writer
}

// NewReportWriter creates a new ReportWriter writing to w.
func NewReportWriter(w io.Writer) *ReportWriter {
	return &ReportWriter{w: w}
}

// Save writes the formatted report followed by a newline.
func (rw *ReportWriter) Save(report *checkhtml.Report) error {
	return WriteReport(rw.w, report)
}

// WriteReport writes the formatted report followed by a newline.
func WriteReport(w io.Writer, report *checkhtml.Report) error {
	out, err := report.Format()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// HTMLFile checks the HTML file at htmlPath against the checklist at
// checksPath and writes the report to w.
func HTMLFile(ctx context.Context, htmlPath, checksPath string, w io.Writer) error {
	r := &Runner{
		Reader:     fs.NewReader(),
		Checklists: fs.NewChecklistLoader(),
		Checker:    goquery.NewChecker(),
		Reports:    NewReportWriter(w),
	}
	_, err := r.Run(ctx, &checkhtml.Config{
		ChecksPath: checksPath,
		HTMLPath:   htmlPath,
	})
	return err
}
