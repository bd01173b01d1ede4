package cmd

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverridesFromFlags(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantWorkers    *int
		wantIterations *int
		wantFractal    string
		wantPalette    string
	}{
		{name: "nothing set"},
		{
			name:        "zero workers is explicit",
			args:        []string{"--workers", "0"},
			wantWorkers: intPtr(0),
		},
		{
			name:           "short flags",
			args:           []string{"-w", "4", "-i", "300", "-f", "julia", "-p", "magma"},
			wantWorkers:    intPtr(4),
			wantIterations: intPtr(300),
			wantFractal:    "julia",
			wantPalette:    "magma",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &cobra.Command{Use: "test"}
			addExplorerFlags(c)
			require.NoError(t, c.ParseFlags(tt.args))

			o, err := overridesFromFlags(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantWorkers, o.Workers)
			assert.Equal(t, tt.wantIterations, o.Iterations)
			assert.Equal(t, tt.wantFractal, o.Fractal)
			assert.Equal(t, tt.wantPalette, o.Palette)
		})
	}
}

func TestDocsTarget(t *testing.T) {
	data := t.TempDir()
	t.Setenv("XDG_DATA_HOME", data)

	tests := []struct {
		name    string
		format  string
		dir     string
		wantDir string
		wantExt string
		wantErr bool
	}{
		{name: "man default", format: "man", wantDir: filepath.Join(data, "man", "man1"), wantExt: ".1"},
		{name: "man explicit", format: "man", dir: "./man", wantDir: "./man", wantExt: ".1"},
		{name: "markdown default", format: "markdown", wantDir: "./docs", wantExt: ".md"},
		{name: "unknown", format: "html", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, ext, err := docsTarget(tt.format, tt.dir)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDir, dir)
			assert.Equal(t, tt.wantExt, ext)
		})
	}
}

func TestRootCommandTree(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"about", "config", "logs", "gen-docs"} {
		assert.True(t, names[want], want)
	}

	sub := map[string]bool{}
	for _, c := range configCmd.Commands() {
		sub[c.Name()] = true
	}
	assert.True(t, sub["path"] && sub["show"] && sub["schema"])
}

func intPtr(v int) *int { return &v }
