package config

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "searchbar"}
	cmd.Flags().String("catalog", "", "")
	cmd.Flags().String("placeholder", DefaultPlaceholder, "")
	cmd.Flags().Int("min-chars", DefaultMinChars, "")
	cmd.Flags().Int("max-suggestions", DefaultMaxSuggestions, "")
	cmd.Flags().Duration("latency", 0, "")
	cmd.Flags().Bool("mouse", true, "")
	cmd.PersistentFlags().String("log-level", "info", "")
	return cmd
}

func TestApplyOverridesIgnoresUnchangedFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search.Placeholder = "from file"

	require.NoError(t, ApplyOverrides(cfg, newTestCommand()))
	assert.Equal(t, "from file", cfg.Search.Placeholder)
}

func TestApplyOverridesUsesFlags(t *testing.T) {
	cmd := newTestCommand()
	require.NoError(t, cmd.Flags().Parse([]string{
		"--placeholder", "Search gear",
		"--min-chars", "3",
		"--latency", "750ms",
		"--catalog", "/data/catalog.toml",
		"--mouse=false",
	}))

	cfg := DefaultConfig()
	require.NoError(t, ApplyOverrides(cfg, cmd))
	assert.Equal(t, "Search gear", cfg.Search.Placeholder)
	assert.Equal(t, 3, cfg.Search.MinChars)
	assert.Equal(t, 750*time.Millisecond, cfg.Search.Latency.Duration)
	assert.Equal(t, "/data/catalog.toml", cfg.Catalog)
	assert.False(t, cfg.UI.Mouse)
}

func TestApplyOverridesUsesEnvBelowFlags(t *testing.T) {
	t.Setenv("SEARCHBAR_SEARCH_PLACEHOLDER", "from env")
	t.Setenv("SEARCHBAR_SEARCH_MAX_SUGGESTIONS", "5")

	cmd := newTestCommand()
	require.NoError(t, cmd.Flags().Parse([]string{"--max-suggestions", "6"}))

	cfg := DefaultConfig()
	require.NoError(t, ApplyOverrides(cfg, cmd))
	assert.Equal(t, "from env", cfg.Search.Placeholder)
	assert.Equal(t, 6, cfg.Search.MaxSuggestions)
}

func TestApplyOverridesValidates(t *testing.T) {
	cmd := newTestCommand()
	require.NoError(t, cmd.Flags().Parse([]string{"--max-suggestions", "0"}))

	assert.ErrorIs(t, ApplyOverrides(DefaultConfig(), cmd), ErrInvalid)
}
