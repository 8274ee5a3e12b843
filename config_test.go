package checkhtml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/checkhtml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Mode(t *testing.T) {
	t.Parallel()

	t.Run("file mode without URL", func(t *testing.T) {
		t.Parallel()

		cfg := &checkhtml.Config{HTMLPath: "index.html"}

		assert.Equal(t, checkhtml.ModeFile, cfg.Mode())
		assert.Equal(t, "index.html", cfg.Source())
	})

	t.Run("URL mode wins over file", func(t *testing.T) {
		t.Parallel()

		cfg := &checkhtml.Config{HTMLPath: "index.html", URL: "https://example.com"}

		assert.Equal(t, checkhtml.ModeURL, cfg.Mode())
		assert.Equal(t, "https://example.com", cfg.Source())
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts existing files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfg := &checkhtml.Config{
			ChecksPath: writeFile(t, dir, "checks.json", `["h1"]`),
			HTMLPath:   writeFile(t, dir, "index.html", "<h1>Hi</h1>"),
		}

		require.NoError(t, cfg.Validate())
	})

	t.Run("rejects missing checks file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		missing := filepath.Join(dir, "nope.json")
		cfg := &checkhtml.Config{
			ChecksPath: missing,
			HTMLPath:   writeFile(t, dir, "index.html", "<h1>Hi</h1>"),
		}

		err := cfg.Validate()

		require.Error(t, err)
		assert.Equal(t, checkhtml.ENOTFOUND, checkhtml.ErrorCode(err))
		assert.Equal(t, missing+" does not exist", checkhtml.ErrorMessage(err))
	})

	t.Run("rejects missing HTML file in file mode", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfg := &checkhtml.Config{
			ChecksPath: writeFile(t, dir, "checks.json", `["h1"]`),
			HTMLPath:   "missing.html",
		}

		err := cfg.Validate()

		require.Error(t, err)
		assert.Contains(t, checkhtml.ErrorMessage(err), "missing.html")
	})

	t.Run("ignores default HTML file in URL mode", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfg := &checkhtml.Config{
			ChecksPath: writeFile(t, dir, "checks.json", `["h1"]`),
			HTMLPath:   "missing.html",
			URL:        "https://example.com/",
		}

		require.NoError(t, cfg.Validate())
	})

	t.Run("rejects explicit missing HTML file in URL mode", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		missing := filepath.Join(dir, "missing.html")
		cfg := &checkhtml.Config{
			ChecksPath:  writeFile(t, dir, "checks.json", `["h1"]`),
			HTMLPath:    missing,
			HTMLPathSet: true,
			URL:         "https://example.com/",
		}

		err := cfg.Validate()

		require.Error(t, err)
		assert.Equal(t, checkhtml.ENOTFOUND, checkhtml.ErrorCode(err))
		assert.Equal(t, missing+" does not exist", checkhtml.ErrorMessage(err))
	})

	t.Run("rejects directories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		cfg := &checkhtml.Config{
			ChecksPath: dir,
			URL:        "https://example.com/",
		}

		err := cfg.Validate()

		require.Error(t, err)
		assert.Equal(t, checkhtml.EINVALID, checkhtml.ErrorCode(err))
	})

	t.Run("rejects malformed URL before checking files", func(t *testing.T) {
		t.Parallel()

		cfg := &checkhtml.Config{
			ChecksPath: "missing-checks.json",
			URL:        "not a url",
		}

		err := cfg.Validate()

		require.Error(t, err)
		assert.Equal(t, checkhtml.EINVALID, checkhtml.ErrorCode(err))
		assert.Equal(t, "not a url is not a valid URL", checkhtml.ErrorMessage(err))
	})
}

func TestIsValidURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want bool
	}{
		{"https://example.com", true},
		{"http://example.com/path?q=1", true},
		{"http://localhost:8080/", true},
		{"HTTPS://EXAMPLE.COM", true},
		{"example.com", false},
		{"ftp://example.com", false},
		{"https://", false},
		{"not a url", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, checkhtml.IsValidURL(tt.raw))
		})
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
