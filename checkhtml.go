// Package checkhtml provides a CLI-based grader that checks an HTML document
// for the presence of CSS selectors listed in a checklist file and reports
// the result as JSON.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/).
package checkhtml
