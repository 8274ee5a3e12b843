package checkhtml

import "slices"

// Checklist is the ordered set of selectors a document is checked against.
type Checklist []string

// Sorted returns a lexicographically sorted copy of the checklist.
func (c Checklist) Sorted() Checklist {
	sorted := slices.Clone(c)
	slices.Sort(sorted)
	return sorted
}

// ChecklistLoader reads a checklist from storage.
type ChecklistLoader interface {
	// LoadChecklist reads and decodes the checklist at path.
	// Returns EINVALID if the file does not decode to a list of strings.
	LoadChecklist(path string) (Checklist, error)
}
