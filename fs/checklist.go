package fs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/checkhtml"
	"gopkg.in/yaml.v3"
)

// Ensure ChecklistLoader implements checkhtml.ChecklistLoader at compile time.
var _ checkhtml.ChecklistLoader = (*ChecklistLoader)(nil)

// ChecklistLoader reads checklists from JSON files. Files with a .yaml or
// .yml extension are decoded as YAML sequences instead.
type ChecklistLoader struct{}

// NewChecklistLoader creates a new ChecklistLoader.
func NewChecklistLoader() *ChecklistLoader {
	return &ChecklistLoader{}
}

// LoadChecklist reads and decodes the checklist at path.
func (l *ChecklistLoader) LoadChecklist(path string) (checkhtml.Checklist, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided checklist path is intentional
	if err != nil {
		return nil, err
	}

	// Pointers distinguish null entries from strings.
	var entries []*string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &entries)
	default:
		err = json.Unmarshal(data, &entries)
	}
	if err != nil {
		return nil, checkhtml.Errorf(checkhtml.EINVALID, "%s is not a list of selectors: %v", path, err)
	}
	if entries == nil {
		return nil, checkhtml.Errorf(checkhtml.EINVALID, "%s is not a list of selectors: no list found", path)
	}

	checklist := make(checkhtml.Checklist, 0, len(entries))
	for i, e := range entries {
		if e == nil || strings.TrimSpace(*e) == "" {
			return nil, checkhtml.Errorf(checkhtml.EINVALID, "%s is not a list of selectors: entry %d is empty", path, i)
		}
		checklist = append(checklist, *e)
	}
	return checklist, nil
}
