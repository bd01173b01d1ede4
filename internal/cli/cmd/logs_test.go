package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fractui/internal/cli/styles"
)

func writeLog(t *testing.T, path string, lines ...string) {
	t.Helper()
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLastLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fractui.log")
	writeLog(t, path, "a", "b", "c", "d")

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{"fewer than file", 2, []string{"c", "d"}},
		{"exactly file", 4, []string{"a", "b", "c", "d"}},
		{"more than file", 10, []string{"a", "b", "c", "d"}},
		{"zero", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lastLines(path, tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := lastLines(filepath.Join(t.TempDir(), "missing.log"), 5)
	assert.Error(t, err)
}

func TestClearLogs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fractui.log")
	writeLog(t, path, "current")
	writeLog(t, path+".1", "old")
	writeLog(t, path+".2", "older")

	touched, err := clearLogs(path, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"fractui.log.1", "fractui.log.2"}, touched)
	assert.NoFileExists(t, path+".1")
	assert.NoFileExists(t, path+".2")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "current\n", string(data))

	touched, err = clearLogs(path, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"fractui.log"}, touched)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestClearLogs_MissingFile(t *testing.T) {
	touched, err := clearLogs(filepath.Join(t.TempDir(), "fractui.log"), true)
	require.NoError(t, err)
	assert.Empty(t, touched)
}

func TestColorizeLogLine(t *testing.T) {
	theme := styles.NewTheme(nil)

	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "json with pane",
			line: `{"level":"info","time":"2026-10-16T10:11:12Z","component":"explorer","pane_id":3,"message":"split"}`,
			want: []string{"10:11:12", "INF", "explorer:", "split", "pane=3"},
		},
		{
			name: "json warn",
			line: `{"level":"warn","time":"bad","message":"reload failed"}`,
			want: []string{"bad", "WRN", "reload failed"},
		},
		{
			name: "console line",
			line: "10:11:12 DBG pane split pane_id=1",
			want: []string{"10:11:12 DBG pane split pane_id=1"},
		},
		{
			name: "not json",
			line: `{"broken"`,
			want: []string{`{"broken"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := colorizeLogLine(tt.line, theme)
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
		})
	}
}
