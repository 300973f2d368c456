package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateScriptFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "round.nok")
	require.NoError(t, os.WriteFile(good, []byte("list-patients\n"), 0o600))
	assert.NoError(t, validateScriptFile(good))

	wrongExt := filepath.Join(dir, "round.txt")
	require.NoError(t, os.WriteFile(wrongExt, []byte("list-patients\n"), 0o600))
	assert.ErrorContains(t, validateScriptFile(wrongExt), ".nok extension")

	assert.ErrorContains(t, validateScriptFile(filepath.Join(dir, "missing.nok")), "does not exist")
}

func TestCommandTree(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["shell"])
	assert.True(t, names["batch"])
	assert.True(t, names["version"])

	for _, flag := range []string{"data-file", "autosave", "log-level", "log-file", "test-mode", "export-dir", "style", "theme", "config"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), flag)
	}
}
