package ui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"searchbar/internal/catalog"
	"searchbar/internal/config"
	"searchbar/internal/domain"
	"searchbar/internal/eventbus"
	"searchbar/internal/history"
	"searchbar/internal/logging"
	"searchbar/internal/ui/input"
	inputtypes "searchbar/internal/ui/input/types"
	"searchbar/internal/ui/searchbar"
	"searchbar/internal/ui/services/search"
	"searchbar/internal/ui/services/sorting"
	"searchbar/internal/ui/views"
)

// E2EEnv makes the title carry a readiness marker for the pty tests
const E2EEnv = "SEARCHBAR_E2E_TEST"

const (
	readyMarker   = "__READY__"
	maxBarWidth   = 72
	statusTimeout = 5 * time.Second
)

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	catalog *catalog.Store
	history *history.Store
	search  *search.Service
	sorting *sorting.Service
	logger  zerolog.Logger

	bar          searchbar.Model
	inputHandler *input.Handler
	help         help.Model
	searchKeys   searchKeys
	browseKeys   browseKeys
	helpRenderer *HelpRenderer
	styles       *views.Styles

	// results of the last completed search; ranked keeps the catalog order
	ranked      []domain.Item
	results     []domain.Item
	resultQuery string
	resultTook  time.Duration
	cursor      int
	offset      int
	listHeight  int

	status      string
	statusError bool
	statusSeq   int

	width       int
	height      int
	e2e         bool
	inPagerMode bool

	ctx    context.Context
	cancel context.CancelFunc

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, store *catalog.Store, hist *history.Store, logger zerolog.Logger) *Model {
	ctx, cancel := context.WithCancel(context.Background())
	styles := views.NewStyles()

	m := &Model{
		bus:          bus,
		config:       cfg,
		catalog:      store,
		history:      hist,
		search:       search.NewService(store, bus, cfg.Search.Timeout.Duration, logging.WithComponent(logger, "search")),
		sorting:      sorting.NewService(logging.WithComponent(logger, "sorting")),
		logger:       logger,
		inputHandler: input.New(),
		help:         help.New(),
		browseKeys:   newBrowseKeys(),
		helpRenderer: NewHelpRenderer(cfg.Search.MinChars),
		styles:       styles,
		listHeight:   10,
		e2e:          os.Getenv(E2EEnv) == "1",
		ctx:          ctx,
		cancel:       cancel,
	}

	opts := searchbar.DefaultOptions()
	opts.Placeholder = cfg.Search.Placeholder
	opts.OnSearch = m.search.Search
	opts.MinChars = cfg.Search.MinChars
	opts.MaxSuggestions = cfg.Search.MaxSuggestions
	opts.CharLimit = cfg.Search.CharLimit
	opts.BlurDelay = cfg.Search.BlurDelay.Duration
	opts.Styles = styles
	opts.Logger = logging.WithComponent(logger, "searchbar")
	opts.Context = ctx
	m.bar = searchbar.New(opts)
	m.searchKeys = newSearchKeys(opts.Keys)

	return m
}

// SetProgram gives the model the program it runs in, for the pager
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Close tears down the search box and stops the catalog watcher
func (m *Model) Close() {
	m.bar.Close()
	m.cancel()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.bar.Init(), m.bar.Focus()}
	if cmd := m.watchCatalog(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := input.ModelContext{
		Index:   m.cursor,
		Results: len(m.results),
		Page:    m.listHeight,
		Text:    m.bar.Value(),
	}

	actions, consumed := m.inputHandler.HandleKey(msg, ctx)
	if !consumed {
		if m.inputHandler.CurrentMode() != inputtypes.ModeSearch {
			return m, nil
		}
		var cmds []tea.Cmd
		if !m.bar.Focused() {
			cmds = append(cmds, m.bar.Focus())
		}
		cmds = append(cmds, m.updateBar(msg))
		return m, tea.Batch(cmds...)
	}

	var cmds []tea.Cmd
	for _, action := range actions {
		if cmd := m.processAction(action); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	wasFocused := m.bar.Focused()
	cmd := m.updateBar(msg)

	switch {
	case m.bar.Focused() && !wasFocused:
		m.inputHandler.SetMode(inputtypes.ModeSearch)
	case !m.bar.Focused() && wasFocused && len(m.results) > 0:
		m.inputHandler.SetMode(inputtypes.ModeBrowse)
	}
	return m, cmd
}

// updateBar forwards msg to the search box and refreshes the suggestions
// when the query changed
func (m *Model) updateBar(msg tea.Msg) tea.Cmd {
	before := m.bar.Value()
	var cmd tea.Cmd
	m.bar, cmd = m.bar.Update(msg)
	if m.bar.Value() != before {
		m.refreshSuggestions()
	}
	return cmd
}

// refreshSuggestions feeds the search box with history matches followed by
// catalog names
func (m *Model) refreshSuggestions() {
	m.bar.SetSuggestions(m.suggestionsFor(m.bar.Value()))
}

func (m *Model) suggestionsFor(query string) []string {
	if !searchbar.ShouldShowSuggestions(query, m.config.Search.MinChars) {
		return nil
	}
	limit := m.config.Search.MaxSuggestions
	seen := make(map[string]bool)
	var out []string
	add := func(list []string) {
		for _, s := range list {
			key := strings.ToLower(s)
			if seen[key] || len(out) >= limit {
				continue
			}
			seen[key] = true
			out = append(out, s)
		}
	}
	if m.history != nil {
		add(m.history.Matching(query, limit))
	}
	add(m.catalog.Suggest(query, limit))
	return out
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.QuitAction:
		m.logger.Debug().Bool("force", a.Force).Msg("quit requested")
		m.Close()
		return tea.Quit

	case inputtypes.ChangeModeAction:
		if a.Mode == inputtypes.ModeSearch {
			return m.bar.Focus()
		}
		return m.bar.Blur()

	case inputtypes.MoveCursorAction:
		m.moveCursor(a.Delta)

	case inputtypes.JumpAction:
		if a.Bottom {
			m.cursor = len(m.results) - 1
		} else {
			m.cursor = 0
		}
		m.ensureSelectedVisible()

	case inputtypes.OpenResultsAction:
		return m.pagerCmd("results", m.renderResultsDocument())

	case inputtypes.ShowHelpAction:
		return m.pagerCmd("help", m.helpRenderer.renderHelpContent())

	case inputtypes.SortResultsAction:
		mode := m.sorting.NextMode()
		m.results = m.sorting.Sort(m.ranked)
		m.cursor = 0
		m.offset = 0
		return m.setStatus(fmt.Sprintf("Sorted by %s", mode), false)

	case inputtypes.RecallHistoryAction:
		return m.recallHistory()

	case inputtypes.ReloadCatalogAction:
		m.setStatus("Reloading catalog...", false)
		return m.loadCatalog()
	}
	return nil
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case searchbar.SearchErrorMsg:
		if msg.ID != m.bar.ID() {
			return m, nil
		}
		m.logger.Warn().Err(msg.Err).Str("query", msg.Query).Msg("suggestion search failed")
		return m, m.setStatus(fmt.Sprintf("Search for %q failed: %v", msg.Query, msg.Err), true)

	case catalog.FileChangedMsg:
		m.logger.Info().Str("path", msg.Path).Msg("catalog changed on disk")
		return m, tea.Batch(m.loadCatalog(), m.watchCatalog())

	case catalog.WatchErrorMsg:
		m.logger.Warn().Err(msg.Err).Str("path", msg.Path).Msg("catalog watcher stopped")
		return m, m.setStatus(fmt.Sprintf("Not watching %s: %v", msg.Path, msg.Err), true)

	case catalogLoadedMsg:
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Str("source", msg.source).Msg("catalog reload failed")
			return m, m.setStatus(fmt.Sprintf("Catalog reload failed: %v", msg.err), true)
		}
		m.catalog.Replace(msg.items)
		m.refreshSuggestions()
		if m.bus != nil {
			m.bus.Publish(eventbus.CatalogLoadedEvent{Source: msg.source, Count: len(msg.items)})
		}
		return m, m.setStatus(fmt.Sprintf("Loaded %d items from %s", len(msg.items), msg.source), false)

	case pagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			m.logger.Warn().Err(msg.err).Str("pager", msg.what).Msg("pager failed")
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusError = false
		}
		return m, nil

	default:
		// spinner ticks, blur timers, cursor blinks and search results
		return m, m.updateBar(msg)
	}
}

// handleEvent processes domain events
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.SearchStartedEvent:
		// Events may arrive after the search box already settled
		if m.bar.Searching() {
			m.setStatus(fmt.Sprintf("Searching for %q...", e.Query), false)
		}

	case eventbus.SearchCompletedEvent:
		m.ranked = e.Items
		m.results = m.sorting.Sort(e.Items)
		m.resultQuery = e.Query
		m.resultTook = e.Took
		m.cursor = 0
		m.offset = 0
		return m.setStatus(fmt.Sprintf("%s for %q in %s", plural(len(e.Items), "result"), e.Query, e.Took.Round(time.Millisecond)), false)

	case eventbus.SearchFailedEvent:
		return m.setStatus(fmt.Sprintf("Search for %q failed: %v", e.Query, e.Err), true)

	case eventbus.CatalogLoadedEvent:
		m.logger.Debug().Str("source", e.Source).Int("count", e.Count).Msg("catalog loaded")

	case eventbus.HistoryRecordedEvent:
		m.refreshSuggestions()

	case eventbus.ErrorEvent:
		return m.setStatus(fmt.Sprintf("%s: %v", e.Message, e.Err), true)
	}
	return nil
}

// setStatus shows text in the status line; errors clear themselves
func (m *Model) setStatus(text string, isError bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusError = isError
	if !isError {
		return nil
	}
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

// loadCatalog reads the configured catalog in the background
func (m *Model) loadCatalog() tea.Cmd {
	path := m.config.Catalog
	return func() tea.Msg {
		if path == "" {
			return catalogLoadedMsg{source: catalog.DefaultSource, items: catalog.LoadDefault()}
		}
		items, err := catalog.Load(path)
		return catalogLoadedMsg{source: path, items: items, err: err}
	}
}

func (m *Model) watchCatalog() tea.Cmd {
	if !m.config.UI.WatchCatalog || m.config.Catalog == "" || m.ctx.Err() != nil {
		return nil
	}
	return catalog.WatchCmd(m.ctx, m.config.Catalog)
}

func (m *Model) moveCursor(delta int) {
	if len(m.results) == 0 {
		return
	}
	m.cursor = max(0, min(m.cursor+delta, len(m.results)-1))
	m.ensureSelectedVisible()
}

// ensureSelectedVisible scrolls the result list so the cursor is on screen
func (m *Model) ensureSelectedVisible() {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if rows := m.visibleRows(); m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	m.offset = max(m.offset, 0)
}

// recallHistory puts the next older history query into the search box,
// wrapping back to the newest
func (m *Model) recallHistory() tea.Cmd {
	if m.history == nil {
		return nil
	}
	entries := m.history.Entries()
	if len(entries) == 0 {
		return m.setStatus("No search history yet", false)
	}
	next := 0
	for i, e := range entries {
		if e.Query == m.bar.Value() {
			next = (i + 1) % len(entries)
			break
		}
	}
	m.bar.SetValue(entries[next].Query)
	m.refreshSuggestions()
	return nil
}

// visibleRows is the number of result rows that fit; one line goes to the
// scroll indicator when the list overflows
func (m *Model) visibleRows() int {
	if len(m.results) > m.listHeight {
		return max(m.listHeight-1, 1)
	}
	return max(m.listHeight, 1)
}

// layout sizes the search box and tells it where it sits on screen
func (m *Model) layout() {
	main := m.styles.Main
	inner := m.width - main.GetHorizontalFrameSize()
	m.bar.SetWidth(max(min(inner, maxBarWidth), 10))
	m.bar.SetOrigin(
		main.GetMarginLeft()+main.GetBorderLeftSize()+main.GetPaddingLeft(),
		main.GetMarginTop()+main.GetBorderTopSize()+main.GetPaddingTop()+lipgloss.Height(m.renderTitle()),
	)
}

// Query returns the text in the search box
func (m *Model) Query() string {
	return m.bar.Value()
}

// Results returns the items of the last completed search
func (m *Model) Results() []domain.Item {
	return m.results
}

// Mode returns the current input mode
func (m *Model) Mode() inputtypes.Mode {
	return m.inputHandler.CurrentMode()
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
