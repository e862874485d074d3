package filestore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/nepal-data-analyzer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_EnsureDirIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "outputs")
	w := NewWriter(dir)

	require.NoError(t, w.EnsureDir())
	require.NoError(t, w.EnsureDir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWriter_WriteTable(t *testing.T) {
	w := NewWriter(t.TempDir())

	path, err := w.WriteTable(domain.ExamStatsFile, domain.Table{
		Header: []string{"district", "pass_percent", "students"},
		Rows: [][]string{
			{"Chitwan", "75.0", "500"},
			{"Kaski, West", "82.35", "800"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(w.Dir(), domain.ExamStatsFile), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "district,pass_percent,students\nChitwan,75.0,500\n\"Kaski, West\",82.35,800\n", string(data))
}

func TestWriter_WriteTextOverwrites(t *testing.T) {
	w := NewWriter(t.TempDir())

	_, err := w.WriteText(domain.ReportFile, "first run, longer text")
	require.NoError(t, err)
	path, err := w.WriteText(domain.ReportFile, "second °C")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second °C", string(data))
}

func TestWriter_UnwritableDir(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "outputs")
	require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), 0o644))

	w := NewWriter(blocker)
	err := w.EnsureDir()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOutputWrite))

	_, err = w.WriteText(domain.ReportFile, "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOutputWrite))
}
