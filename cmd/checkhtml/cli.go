package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/checkhtml"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Reader     checkhtml.Reader
	Fetcher    checkhtml.Fetcher
	Checklists checkhtml.ChecklistLoader
	Checker    checkhtml.Checker

	// Optional services enabled by flags.
	Runs    checkhtml.RunService
	Reports checkhtml.ReportStore
}

// CheckCmd checks one document against a checklist.
type CheckCmd struct {
	Config *checkhtml.Config
}
