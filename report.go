package checkhtml

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Result records whether a selector matched at least one node.
type Result struct {
	Selector string
	Present  bool
}

// Report maps selectors to their presence, preserving insertion order.
// It marshals to a JSON object whose keys appear in that order.
type Report struct {
	results []Result
	index   map[string]int
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{index: make(map[string]int)}
}

// Set records the presence of a selector. Setting a selector that is
// already present overwrites its value without changing its position.
func (r *Report) Set(selector string, present bool) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[selector]; ok {
		r.results[i].Present = present
		return
	}
	r.index[selector] = len(r.results)
	r.results = append(r.results, Result{Selector: selector, Present: present})
}

// Get returns the presence recorded for a selector.
func (r *Report) Get(selector string) (present bool, ok bool) {
	i, ok := r.index[selector]
	if !ok {
		return false, false
	}
	return r.results[i].Present, true
}

// Results returns the results in insertion order.
func (r *Report) Results() []Result {
	out := make([]Result, len(r.results))
	copy(out, r.results)
	return out
}

// Len returns the number of distinct selectors in the report.
func (r *Report) Len() int {
	return len(r.results)
}

// MarshalJSON encodes the report as a JSON object in insertion order.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	var out bytes.Buffer
	out.WriteByte('{')
	for i, res := range r.results {
		if i > 0 {
			out.WriteByte(',')
		}
		buf.Reset()
		if err := enc.Encode(res.Selector); err != nil {
			return nil, err
		}
		out.Write(bytes.TrimRight(buf.Bytes(), "\n"))
		out.WriteByte(':')
		if res.Present {
			out.WriteString("true")
		} else {
			out.WriteString("false")
		}
	}
	out.WriteByte('}')
	return out.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of booleans, keeping key order.
func (r *Report) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("report: expected object, got %v", tok)
	}

	*r = Report{index: make(map[string]int)}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("report: expected key, got %v", tok)
		}
		var present bool
		if err := dec.Decode(&present); err != nil {
			return fmt.Errorf("report: value for %q: %w", key, err)
		}
		r.Set(key, present)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// Format returns the report as JSON indented with four spaces.
// HTML characters in selectors (e.g. "div > p") are not escaped.
func (r *Report) Format() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// ReportStore delivers a finished report.
type ReportStore interface {
	Save(report *Report) error
}

// Change describes a selector whose presence differs between two reports.
type Change struct {
	Selector string
	Was      bool
	Now      bool
}

// Changes returns the selectors present in both reports whose values
// differ, in the order of r.
func (r *Report) Changes(prev *Report) []Change {
	if prev == nil {
		return nil
	}
	var changes []Change
	for _, res := range r.results {
		was, ok := prev.Get(res.Selector)
		if ok && was != res.Present {
			changes = append(changes, Change{Selector: res.Selector, Was: was, Now: res.Present})
		}
	}
	return changes
}
