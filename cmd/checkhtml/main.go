package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/checkhtml"
	"github.com/fwojciec/checkhtml/fs"
	"github.com/fwojciec/checkhtml/goquery"
	checkhttp "github.com/fwojciec/checkhtml/http"
	"github.com/fwojciec/checkhtml/rod"
	checkslog "github.com/fwojciec/checkhtml/slog"
	"github.com/fwojciec/checkhtml/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stdout, FormatError(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// NewBrowserFetcher creates the fetcher used with --render.
	// Tests replace it to avoid launching Chrome.
	NewBrowserFetcher func(timeout time.Duration) (checkhtml.Fetcher, error)
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		NewBrowserFetcher: func(timeout time.Duration) (checkhtml.Fetcher, error) {
			return rod.NewFetcher(rod.WithFetchTimeout(timeout))
		},
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("checkhtml"),
		kong.Description("Check an HTML file or URL for the selectors listed in a checklist"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	// kong prints help for --help among other flags but exit is a no-op.
	if helpRequested(kctx) {
		return nil
	}

	cfg := cli.Config()

	// Reject bad input before launching a browser or opening a database.
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	deps := &Dependencies{
		Ctx:        ctx,
		Stdout:     stdout,
		Stderr:     stderr,
		Logger:     logger,
		Reader:     checkslog.NewLoggingReader(fs.NewReader(), logger),
		Checklists: checkslog.NewLoggingChecklistLoader(fs.NewChecklistLoader(), logger),
		Checker:    checkslog.NewLoggingChecker(goquery.NewChecker(), logger),
	}

	if cfg.Mode() == checkhtml.ModeURL {
		var fetcher checkhtml.Fetcher
		if cfg.Render {
			fetcher, err = m.NewBrowserFetcher(cfg.Timeout)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed to use --render")
				return fmt.Errorf("failed to start browser: %w", err)
			}
		} else {
			fetcher = checkhttp.NewFetcher(checkhttp.WithTimeout(cfg.Timeout))
		}
		defer fetcher.Close()
		deps.Fetcher = checkslog.NewLoggingFetcher(fetcher, logger)
	}

	if cfg.HistoryPath != "" {
		db := sqlite.NewDB(cfg.HistoryPath)
		if err := db.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set CHECKHTML_HISTORY or --history to a writable path")
			return fmt.Errorf("failed to open history at %q: %w", cfg.HistoryPath, err)
		}
		defer db.Close()
		deps.Runs = sqlite.NewRunService(db)
	}

	if cfg.Output != "" {
		deps.Reports = fs.NewReportStore(cfg.Output)
	}

	cmd := &CheckCmd{Config: cfg}
	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Checks  string        `short:"c" default:"checks.json" placeholder:"CHECK_FILE" help:"Path to checks.json"`
	File    string        `short:"f" placeholder:"HTML_FILE" help:"Path to the HTML file (default: index.html)"`
	URL     string        `short:"u" name:"url" help:"URL to examine"`
	Render  bool          `short:"r" help:"Render the URL in headless Chrome before checking"`
	Timeout time.Duration `short:"t" default:"10s" help:"Timeout for reading the file or downloading the URL"`
	Output  string        `short:"o" help:"Write the report to this file instead of stdout"`
	History string        `env:"CHECKHTML_HISTORY" help:"SQLite database to record runs in"`
	Verbose bool          `short:"v" help:"Log each step to stderr"`
}

// Config converts parsed flags into a checkhtml.Config.
func (c *CLI) Config() *checkhtml.Config {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = checkhtml.DefaultTimeout
	}
	htmlPath := c.File
	if htmlPath == "" {
		htmlPath = checkhtml.DefaultHTMLPath
	}
	return &checkhtml.Config{
		ChecksPath:  c.Checks,
		HTMLPath:    htmlPath,
		HTMLPathSet: c.File != "",
		URL:         c.URL,
		Render:      c.Render,
		Timeout:     timeout,
		Output:      c.Output,
		HistoryPath: c.History,
	}
}

// FormatError renders err as the single diagnostic line printed on failure.
func FormatError(err error) string {
	var e *checkhtml.Error
	if errors.As(err, &e) {
		return e.Message + ". Exiting."
	}
	return err.Error()
}

func helpRequested(ctx *kong.Context) bool {
	for _, p := range ctx.Path {
		if p.Flag != nil && p.Flag.Name == "help" {
			return true
		}
	}
	return false
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
