package checkhtml

import (
	"net/url"
	"os"
	"time"
)

// Defaults applied when a flag is not supplied.
const (
	DefaultChecksPath = "checks.json"
	DefaultHTMLPath   = "index.html"
	DefaultURL        = ""

	DefaultTimeout = 10 * time.Second
)

// Mode selects where the markup under inspection comes from.
type Mode string

// Acquisition modes.
const (
	ModeFile Mode = "file"
	ModeURL  Mode = "url"
)

// Config holds the resolved settings for a single check.
type Config struct {
	ChecksPath string
	HTMLPath   string
	URL        string

	// HTMLPathSet records that HTMLPath was given explicitly. An explicit
	// path must exist even in URL mode, where it is never read.
	HTMLPathSet bool

	// Render fetches the URL through a headless browser instead of plain HTTP.
	Render bool

	// Timeout bounds the acquisition step. Zero means DefaultTimeout.
	Timeout time.Duration

	// Output, if set, receives the report instead of stdout.
	Output string

	// HistoryPath, if set, is the SQLite database runs are recorded in.
	HistoryPath string
}

// Mode returns ModeURL when a URL was supplied and ModeFile otherwise.
func (c *Config) Mode() Mode {
	if c.URL != "" {
		return ModeURL
	}
	return ModeFile
}

// Source returns the location of the markup for the active mode.
func (c *Config) Source() string {
	if c.Mode() == ModeURL {
		return c.URL
	}
	return c.HTMLPath
}

// Validate returns an error if the configuration cannot be used.
// The URL is checked first so that a malformed URL is rejected before
// any file system access. The HTML file is checked in file mode or when
// it was given explicitly.
func (c *Config) Validate() error {
	if c.URL != "" && !IsValidURL(c.URL) {
		return Errorf(EINVALID, "%s is not a valid URL", c.URL)
	}
	if err := assertFileExists(c.ChecksPath); err != nil {
		return err
	}
	if c.Mode() == ModeFile || c.HTMLPathSet {
		if err := assertFileExists(c.HTMLPath); err != nil {
			return err
		}
	}
	return nil
}

// IsValidURL reports whether raw is an absolute http or https URL with a host.
func IsValidURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Hostname() != ""
}

func assertFileExists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return Errorf(ENOTFOUND, "%s does not exist", path)
	}
	if info.IsDir() {
		return Errorf(EINVALID, "%s is a directory", path)
	}
	return nil
}
