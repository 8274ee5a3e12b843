package mock

import "github.com/fwojciec/checkhtml"

var _ checkhtml.Checker = (*Checker)(nil)

// Checker is a mock implementation of checkhtml.Checker.
type Checker struct {
	CheckFn func(html string, checklist checkhtml.Checklist) (*checkhtml.Report, error)
}

func (c *Checker) Check(html string, checklist checkhtml.Checklist) (*checkhtml.Report, error) {
	return c.CheckFn(html, checklist)
}

var _ checkhtml.ChecklistLoader = (*ChecklistLoader)(nil)

// ChecklistLoader is a mock implementation of checkhtml.ChecklistLoader.
type ChecklistLoader struct {
	LoadChecklistFn func(path string) (checkhtml.Checklist, error)
}

func (l *ChecklistLoader) LoadChecklist(path string) (checkhtml.Checklist, error) {
	return l.LoadChecklistFn(path)
}
