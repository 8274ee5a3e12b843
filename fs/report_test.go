package fs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/fwojciec/checkhtml"
	"github.com/fwojciec/checkhtml/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("writes formatted report with trailing newline", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.json")
		report := checkhtml.NewReport()
		report.Set("h1", true)
		report.Set("h2", false)

		err := fs.NewReportStore(path).Save(report)

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "{\n    \"h1\": true,\n    \"h2\": false\n}\n", string(data))
	})

	t.Run("creates parent directories and leaves no temp file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out", "nested", "report.json")

		err := fs.NewReportStore(path).Save(checkhtml.NewReport())

		require.NoError(t, err)
		_, err = os.Stat(path)
		require.NoError(t, err)
		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "report.json", entries[0].Name())
	})

	t.Run("leaves fixed temp name alone", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "report.json")
		other := writeFile(t, dir, "report.json.tmp", "another writer")

		err := fs.NewReportStore(path).Save(checkhtml.NewReport())

		require.NoError(t, err)
		data, err := os.ReadFile(other)
		require.NoError(t, err)
		assert.Equal(t, "another writer", string(data))
	})

	t.Run("concurrent saves to one path each land whole", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "report.json")
		want := map[string]bool{}
		var wg sync.WaitGroup
		errs := make(chan error, 8)
		for i := range 8 {
			report := checkhtml.NewReport()
			report.Set(fmt.Sprintf("h%d", i), true)
			out, err := report.Format()
			require.NoError(t, err)
			want[out+"\n"] = true

			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- fs.NewReportStore(path).Save(report)
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, want[string(data)], "report is one complete write: %q", data)
		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("replaces existing report", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "report.json", "old")
		report := checkhtml.NewReport()
		report.Set("p", true)

		err := fs.NewReportStore(path).Save(report)

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "{\n    \"p\": true\n}\n", string(data))
	})
}
