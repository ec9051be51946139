package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitScaffoldsConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "hearth")

	initCmd.Run(initCmd, []string{dir})

	cfg, err := os.ReadFile(filepath.Join(dir, "hearth.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(cfg), "resources:")

	info, err := os.Stat(filepath.Join(dir, "files"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestInitKeepsExistingConfig(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "hearth.yaml")
	require.NoError(t, os.WriteFile(existing, []byte("root: custom\n"), 0644))

	initCmd.Run(initCmd, []string{dir})

	content, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "root: custom\n", string(content), "existing config is not overwritten")
}
