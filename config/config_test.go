// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/factorgraph/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// load parses args with a config path that never exists unless the
// caller passes its own --config.
func load(t *testing.T, args ...string) (*config.Config, error) {
	t.Helper()
	f := config.Flags("fgviz")
	missing := filepath.Join(t.TempDir(), "absent.toml")
	require.NoError(t, f.Parse(append([]string{"--config", missing}, args...)))
	return config.Load(f)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Rows)
	assert.Equal(t, 3, cfg.Cols)
	assert.Equal(t, 1.0, cfg.Coupling)
	assert.Equal(t, "0,0", cfg.Root)
	assert.Equal(t, "-", cfg.GraphOut)
	assert.Empty(t, cfg.TreeOut)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Priority(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fgviz.toml")
	require.NoError(t, os.WriteFile(path, []byte("rows = 5\ncols = 6\nroot = \"1,1\"\n"), 0o600))
	t.Setenv("FGVIZ_COLS", "7")
	t.Setenv("FGVIZ_TREE_OUT", "tree.dot")

	f := config.Flags("fgviz")
	require.NoError(t, f.Parse([]string{"--config", path, "--root", "2,2"}))
	cfg, err := config.Load(f)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Rows, "file beats defaults")
	assert.Equal(t, 7, cfg.Cols, "env beats file")
	assert.Equal(t, "2,2", cfg.Root, "flags beat file")
	assert.Equal(t, "tree.dot", cfg.TreeOut)
}

func TestLoad_BrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fgviz.toml")
	require.NoError(t, os.WriteFile(path, []byte("rows = = 1"), 0o600))

	f := config.Flags("fgviz")
	require.NoError(t, f.Parse([]string{"--config", path}))
	_, err := config.Load(f)
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := load(t, "--rows", "0")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = load(t, "--tree-out", "t.dot", "--root", "")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoad_NonFiniteAndOversized(t *testing.T) {
	for _, args := range [][]string{
		{"--coupling", "NaN"},
		{"--coupling=-Inf"},
		{"--field", "Inf"},
		{"--rows", "4611686018427387904", "--cols", "4"}, // 3·rows·cols would overflow
		{"--rows", "2048", "--cols", "1024"},
	} {
		_, err := load(t, args...)
		assert.ErrorIs(t, err, config.ErrInvalid, "%v", args)
	}

	cfg, err := load(t, "--rows", "1024", "--cols", "1024")
	require.NoError(t, err)
	assert.Equal(t, config.MaxCells, cfg.Rows*cfg.Cols)
}
