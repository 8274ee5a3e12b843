package checkhtml

// Checker evaluates a checklist against HTML markup.
type Checker interface {
	// Check parses html and reports, for every selector in the checklist,
	// whether at least one node matches. Results follow the sorted order
	// of the checklist. Returns EINVALID if a selector cannot be compiled.
	Check(html string, checklist Checklist) (*Report, error)
}
