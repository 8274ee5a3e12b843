// Package goquery implements checkhtml.Checker on top of goquery and
// cascadia selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/checkhtml"
)

// Ensure Checker implements checkhtml.Checker at compile time.
var _ checkhtml.Checker = (*Checker)(nil)

// Checker checks HTML for the presence of CSS selectors.
type Checker struct{}

// NewChecker creates a new Checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Check parses html and records whether each selector of the sorted
// checklist matches at least one node.
//
// goquery treats selectors it cannot compile as matching nothing, which
// would silently report false. Selectors are compiled with cascadia first
// so that a malformed selector is reported as EINVALID instead.
func (c *Checker) Check(html string, checklist checkhtml.Checklist) (*checkhtml.Report, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, checkhtml.Errorf(checkhtml.EINVALID, "failed to parse HTML: %v", err)
	}

	report := checkhtml.NewReport()
	for _, selector := range checklist.Sorted() {
		m, err := cascadia.Compile(selector)
		if err != nil {
			return nil, checkhtml.Errorf(checkhtml.EINVALID, "invalid selector %q: %v", selector, err)
		}
		report.Set(selector, doc.FindMatcher(m).Length() > 0)
	}

	return report, nil
}
