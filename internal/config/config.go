package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is returned by Validate for out-of-range settings
var ErrInvalid = errors.New("invalid config")

// Default values
const (
	DefaultPlaceholder    = "Search products..."
	DefaultMinChars       = 2
	DefaultMaxSuggestions = 8
	DefaultCharLimit      = 100
	DefaultBlurDelay      = 200 * time.Millisecond
	DefaultSearchTimeout  = 5 * time.Second
	DefaultHistoryLimit   = 50
)

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	Catalog string         `toml:"catalog"` // empty means the built-in catalog
	History string         `toml:"history"`
	Search  SearchSettings `toml:"search"`
	UI      UISettings     `toml:"ui"`
	Log     LogSettings    `toml:"log"`
}

// SearchSettings configures the search box and the catalog query
type SearchSettings struct {
	Placeholder    string   `toml:"placeholder"`
	MinChars       int      `toml:"min_chars"` // suggestions need more than this many characters
	MaxSuggestions int      `toml:"max_suggestions"`
	CharLimit      int      `toml:"char_limit"`
	BlurDelay      Duration `toml:"blur_delay"`
	Timeout        Duration `toml:"timeout"`
	Latency        Duration `toml:"latency"` // simulated backend latency
}

// UISettings represents UI-related configuration
type UISettings struct {
	Mouse             bool `toml:"mouse"`
	WatchCatalog      bool `toml:"watch_catalog"`
	SaveHistoryOnExit bool `toml:"save_history_on_exit"`
	HistoryLimit      int  `toml:"history_limit"`
}

// LogSettings configures the log file
type LogSettings struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

// Duration wraps time.Duration so it reads and writes as "200ms" in TOML
type Duration struct {
	time.Duration
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// Dir returns the directory holding the config, history and log files
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "searchbar")
}

// NewConfigService creates a config service for the default config file
func NewConfigService() ConfigService {
	return NewConfigServiceAt(filepath.Join(Dir(), "config.toml"))
}

// NewConfigServiceAt creates a config service for a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults if it does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Marshal(config)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Marshal renders the configuration as TOML
func Marshal(config *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf).SetIndentTables(true)
	if err := enc.Encode(config); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return buf.Bytes(), nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	dir := Dir()
	return &Config{
		Version: 1,
		History: filepath.Join(dir, "history.toml"),
		Search: SearchSettings{
			Placeholder:    DefaultPlaceholder,
			MinChars:       DefaultMinChars,
			MaxSuggestions: DefaultMaxSuggestions,
			CharLimit:      DefaultCharLimit,
			BlurDelay:      Duration{DefaultBlurDelay},
			Timeout:        Duration{DefaultSearchTimeout},
		},
		UI: UISettings{
			Mouse:             true,
			WatchCatalog:      true,
			SaveHistoryOnExit: true,
			HistoryLimit:      DefaultHistoryLimit,
		},
		Log: LogSettings{
			Level:  "info",
			Format: "json",
			File:   filepath.Join(dir, "searchbar.log"),
		},
	}
}

// Validate fails fast on settings the UI cannot work with
func (c *Config) Validate() error {
	switch {
	case c.Search.MinChars < 0:
		return fmt.Errorf("%w: search.min_chars must be >= 0", ErrInvalid)
	case c.Search.MaxSuggestions < 1:
		return fmt.Errorf("%w: search.max_suggestions must be > 0", ErrInvalid)
	case c.Search.CharLimit < 1:
		return fmt.Errorf("%w: search.char_limit must be > 0", ErrInvalid)
	case c.Search.BlurDelay.Duration < 0:
		return fmt.Errorf("%w: search.blur_delay must be >= 0", ErrInvalid)
	case c.Search.Timeout.Duration <= 0:
		return fmt.Errorf("%w: search.timeout must be > 0", ErrInvalid)
	case c.Search.Latency.Duration < 0:
		return fmt.Errorf("%w: search.latency must be >= 0", ErrInvalid)
	case c.UI.HistoryLimit < 0:
		return fmt.Errorf("%w: ui.history_limit must be >= 0", ErrInvalid)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log.format must be json or console", ErrInvalid)
	}
	return nil
}
