package main

import (
	"github.com/fwojciec/checkhtml/check"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	reports := deps.Reports
	if reports == nil {
		reports = check.NewReportWriter(deps.Stdout)
	}

	runner := &check.Runner{
		Reader:     deps.Reader,
		Fetcher:    deps.Fetcher,
		Checklists: deps.Checklists,
		Checker:    deps.Checker,
		Reports:    reports,
		Runs:       deps.Runs,
		Logger:     deps.Logger,
	}

	_, err := runner.Run(deps.Ctx, c.Config)
	return err
}
