package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"searchbar/internal/catalog"
	"searchbar/internal/config"
	"searchbar/internal/domain"
	"searchbar/internal/eventbus"
	"searchbar/internal/history"
	"searchbar/internal/logging"
	"searchbar/internal/ui"
)

// Global flags. Only flags the user changed override the config file.
var (
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "searchbar",
	Short: "Search a product catalog from the terminal",
	Long: `searchbar - a search box with suggestions over a product catalog.

Type to search, pick a suggestion with the arrow keys or the mouse, and press
tab to browse the results. Settings are read from
~/.config/searchbar/config.toml and can be overridden with SEARCHBAR_* environment
variables or flags.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return run(cfg)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/searchbar/config.toml)")

	flags := rootCmd.Flags()
	flags.String("catalog", "", "catalog TOML file (env: SEARCHBAR_CATALOG)")
	flags.String("history", "", "history file (env: SEARCHBAR_HISTORY)")
	flags.String("placeholder", config.DefaultPlaceholder, "search box placeholder (env: SEARCHBAR_SEARCH_PLACEHOLDER)")
	flags.Int("min-chars", config.DefaultMinChars, "suggestions need more than this many characters")
	flags.Int("max-suggestions", config.DefaultMaxSuggestions, "suggestions shown at once")
	flags.Duration("latency", 0, "simulated catalog latency")
	flags.Duration("timeout", config.DefaultSearchTimeout, "search timeout")
	flags.Duration("blur-delay", config.DefaultBlurDelay, "delay before suggestions hide on blur")
	flags.Bool("mouse", true, "enable mouse support")
	flags.Bool("watch", true, "reload the catalog file when it changes")
	flags.String("log-level", "info", "log level: trace, debug, info, warn, error, off")
	flags.String("log-file", "", "log file (the terminal is used by the UI)")

	rootCmd.AddCommand(configCmd)
}

func configService() config.ConfigService {
	if configPath != "" {
		return config.NewConfigServiceAt(configPath)
	}
	return config.NewConfigService()
}

// loadConfig reads the config file and applies env and flag overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	svc := configService()
	cfg, err := svc.Load()
	if err != nil {
		if configPath != "" {
			return nil, err
		}
		// A broken default config should not keep the program from starting
		fmt.Fprintf(os.Stderr, "warning: %v; using defaults\n", err)
		cfg = config.DefaultConfig()
	}
	if err := config.ApplyOverrides(cfg, cmd); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadCatalog(cfg *config.Config) ([]domain.Item, string, error) {
	if cfg.Catalog == "" {
		return catalog.LoadDefault(), catalog.DefaultSource, nil
	}
	items, err := catalog.Load(cfg.Catalog)
	if err != nil {
		return nil, "", err
	}
	return items, cfg.Catalog, nil
}

func run(cfg *config.Config) error {
	logger, closer, err := logging.Open(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	defer closer.Close()

	items, source, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	store := catalog.NewStore(items)
	store.SetLatency(cfg.Search.Latency.Duration)
	logger.Info().Str("source", source).Int("items", len(items)).Msg("catalog loaded")

	hist, err := history.LoadFromPath(cfg.History, cfg.UI.HistoryLimit)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.History).Msg("ignoring unreadable history")
		hist = history.New(cfg.UI.HistoryLimit)
	}

	// Create event bus
	bus := eventbus.New(logging.WithComponent(logger, "eventbus"))
	defer bus.Close()
	defer hist.Attach(bus)()

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, store, hist, logging.WithComponent(logger, "ui"))
	defer uiModel.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(uiModel, opts...)
	uiModel.SetProgram(p)

	stop := forwardEvents(bus, p, logger)
	defer stop()

	bus.Publish(eventbus.CatalogLoadedEvent{Source: source, Count: len(items)})

	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("program exited with error")
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info().Msg("UI exited normally")

	if cfg.UI.SaveHistoryOnExit && cfg.History != "" {
		if err := hist.SaveToPath(cfg.History); err != nil {
			logger.Warn().Err(err).Msg("failed to save history")
		}
	}
	return nil
}

// forwardEvents hands domain events to the program as ui.EventMsg.
// The returned function unsubscribes and stops forwarding.
func forwardEvents(bus eventbus.EventBus, p *tea.Program, logger zerolog.Logger) func() {
	eventChan := make(chan eventbus.DomainEvent, 100)
	done := make(chan struct{})

	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			logger.Warn().Str("event", string(e.Type())).Msg("event channel full, dropping event")
		}
	}

	var unsubscribe []func()
	for _, t := range []eventbus.EventType{
		eventbus.EventSearchStarted,
		eventbus.EventSearchCompleted,
		eventbus.EventSearchFailed,
		eventbus.EventCatalogLoaded,
		eventbus.EventHistoryRecorded,
		eventbus.EventError,
	} {
		unsubscribe = append(unsubscribe, bus.Subscribe(t, forward))
	}

	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-done:
				return
			}
		}
	}()

	return func() {
		for _, u := range unsubscribe {
			u()
		}
		close(done)
	}
}

// writeConfig is shared by the config subcommands
func writeConfig(w io.Writer, cfg *config.Config) error {
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func defaultPath(name string) string {
	return filepath.Join(config.Dir(), name)
}
