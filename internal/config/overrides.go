package config

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SEARCHBAR_SEARCH_PLACEHOLDER
const EnvPrefix = "SEARCHBAR"

// flagToKey maps CLI flag names to config keys
var flagToKey = map[string]string{
	"catalog":         "catalog",
	"history":         "history",
	"placeholder":     "search.placeholder",
	"min-chars":       "search.min_chars",
	"max-suggestions": "search.max_suggestions",
	"latency":         "search.latency",
	"timeout":         "search.timeout",
	"blur-delay":      "search.blur_delay",
	"mouse":           "ui.mouse",
	"watch":           "ui.watch_catalog",
	"log-level":       "log.level",
	"log-file":        "log.file",
}

// ApplyOverrides layers environment variables and explicitly set flags on top
// of cfg (flags > env > file > defaults) and re-validates the result.
func ApplyOverrides(cfg *Config, cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for cur := cmd; cur != nil; cur = cur.Parent() {
		bindFlagSet(v, cur.Flags())
		bindFlagSet(v, cur.PersistentFlags())
	}

	if v.IsSet("catalog") {
		cfg.Catalog = v.GetString("catalog")
	}
	if v.IsSet("history") {
		cfg.History = v.GetString("history")
	}
	if v.IsSet("search.placeholder") {
		cfg.Search.Placeholder = v.GetString("search.placeholder")
	}
	if v.IsSet("search.min_chars") {
		cfg.Search.MinChars = v.GetInt("search.min_chars")
	}
	if v.IsSet("search.max_suggestions") {
		cfg.Search.MaxSuggestions = v.GetInt("search.max_suggestions")
	}
	if v.IsSet("search.latency") {
		cfg.Search.Latency.Duration = v.GetDuration("search.latency")
	}
	if v.IsSet("search.timeout") {
		cfg.Search.Timeout.Duration = v.GetDuration("search.timeout")
	}
	if v.IsSet("search.blur_delay") {
		cfg.Search.BlurDelay.Duration = v.GetDuration("search.blur_delay")
	}
	if v.IsSet("ui.mouse") {
		cfg.UI.Mouse = v.GetBool("ui.mouse")
	}
	if v.IsSet("ui.watch_catalog") {
		cfg.UI.WatchCatalog = v.GetBool("ui.watch_catalog")
	}
	if v.IsSet("log.level") {
		cfg.Log.Level = v.GetString("log.level")
	}
	if v.IsSet("log.file") {
		cfg.Log.File = v.GetString("log.file")
	}

	return cfg.Validate()
}

// bindFlagSet binds known flags to their config keys. Viper only reports a
// bound flag as set once the user changed it, so defaults never mask the file.
func bindFlagSet(v *viper.Viper, fs *pflag.FlagSet) {
	if fs == nil {
		return
	}
	fs.VisitAll(func(f *pflag.Flag) {
		if key, ok := flagToKey[f.Name]; ok {
			_ = v.BindPFlag(key, f)
		}
	})
}
