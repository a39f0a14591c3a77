//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpCommand(t *testing.T) {
	t.Parallel()

	// Test help command by running it directly (not through PTY since it exits quickly)
	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err, "Help command should run without error")

	output := string(out)
	require.Contains(t, output, "Usage")
	require.Contains(t, output, "--catalog")
	require.Contains(t, output, "--min-chars")
}

func TestConfigInitAndShow(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")

	out, err := exec.Command(binPath, "config", "init", "--config", configPath).CombinedOutput()
	require.NoError(t, err, string(out))
	require.FileExists(t, configPath)

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	require.Contains(t, string(content), "version = 1", "Config should contain version")
	require.Contains(t, string(content), "min_chars = 2")

	out, err = exec.Command(binPath, "config", "init", "--config", configPath).CombinedOutput()
	require.Error(t, err, "init should refuse to overwrite")
	require.Contains(t, string(out), "already exists")

	cmd := exec.Command(binPath, "config", "show", "--config", configPath)
	cmd.Env = append(os.Environ(), "SEARCHBAR_SEARCH_PLACEHOLDER=Find a thing")
	out, err = cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	require.True(t, strings.Contains(string(out), "Find a thing"), "env override should show up")
}

func TestInvalidConfigIsRejected(t *testing.T) {
	t.Parallel()
	configPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("[search]\nmin_chars = -1\n"), 0644))

	out, err := exec.Command(binPath, "config", "show", "--config", configPath).CombinedOutput()
	require.Error(t, err)
	require.Contains(t, string(out), "min_chars")
}
