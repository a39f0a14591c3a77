// Package searchbar implements a search box for Bubble Tea programs: a text
// input with a suggestion panel that opens once enough text is typed, a clear
// button, and a spinner shown while the search callback runs.
//
// The control owns only the query text and two flags: whether suggestions
// are visible and whether a submitted search is in progress. Suggestions and
// the search itself are supplied by the caller.
package searchbar

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"searchbar/internal/ui/views"
)

// Defaults used by DefaultOptions
const (
	DefaultPlaceholder    = "Search products..."
	DefaultMinChars       = 2
	DefaultMaxSuggestions = 8
	DefaultBlurDelay      = 200 * time.Millisecond
	DefaultCharLimit      = 100
	DefaultWidth          = 48
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// SearchFunc runs a search for query. It is called from a tea.Cmd and may block.
type SearchFunc func(ctx context.Context, query string) error

// Options configures a Model
type Options struct {
	Placeholder string
	OnSearch    SearchFunc

	MinChars       int           // suggestions need more than this many characters
	MaxSuggestions int           // rows drawn in the panel
	BlurDelay      time.Duration // grace period before a blur hides suggestions
	CharLimit      int

	// Width and Style are applied to the root container
	Width int
	Style lipgloss.Style

	Keys    KeyMap
	Styles  *views.Styles
	Logger  zerolog.Logger
	Context context.Context // cancelled by Close
}

// DefaultOptions returns the stock configuration
func DefaultOptions() Options {
	return Options{
		Placeholder:    DefaultPlaceholder,
		MinChars:       DefaultMinChars,
		MaxSuggestions: DefaultMaxSuggestions,
		BlurDelay:      DefaultBlurDelay,
		CharLimit:      DefaultCharLimit,
		Width:          DefaultWidth,
		Keys:           DefaultKeyMap(),
		Styles:         views.NewStyles(),
		Logger:         zerolog.Nop(),
	}
}

type state struct {
	showSuggestions bool
	searching       bool
}

// Model is the search box
type Model struct {
	id      int
	input   textinput.Model
	spinner spinner.Model
	keys    KeyMap
	styles  *views.Styles
	style   lipgloss.Style
	width   int

	onSearch       SearchFunc
	minChars       int
	maxSuggestions int
	blurDelay      time.Duration
	logger         zerolog.Logger

	suggestions []string
	state       state
	cursor      int // highlighted suggestion, -1 for none
	blurSeq     int
	ticking     bool

	ctx    context.Context
	cancel context.CancelFunc
	closed bool

	originX, originY int
}

// New creates a search box
func New(opts Options) Model {
	if opts.Styles == nil {
		opts.Styles = views.NewStyles()
	}
	if opts.MinChars < 0 {
		opts.MinChars = DefaultMinChars
	}
	if opts.MaxSuggestions <= 0 {
		opts.MaxSuggestions = DefaultMaxSuggestions
	}
	if opts.CharLimit <= 0 {
		opts.CharLimit = DefaultCharLimit
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Keys.Submit.Keys() == nil {
		opts.Keys = DefaultKeyMap()
	}
	base := opts.Context
	if base == nil {
		base = context.Background()
	}
	ctx, cancel := context.WithCancel(base)

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = opts.Placeholder
	ti.CharLimit = opts.CharLimit
	ti.PlaceholderStyle = opts.Styles.Placeholder
	ti.TextStyle = opts.Styles.Input

	m := Model{
		id:             nextID(),
		input:          ti,
		spinner:        spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(opts.Styles.Spinner)),
		keys:           opts.Keys,
		styles:         opts.Styles,
		style:          opts.Style,
		onSearch:       opts.OnSearch,
		minChars:       opts.MinChars,
		maxSuggestions: opts.MaxSuggestions,
		blurDelay:      opts.BlurDelay,
		logger:         opts.Logger,
		cursor:         -1,
		ctx:            ctx,
		cancel:         cancel,
	}
	m.SetWidth(opts.Width)
	return m
}

// Init returns the cursor blink command
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// ID identifies this search box in messages
func (m Model) ID() int {
	return m.id
}

// Value returns the query text
func (m Model) Value() string {
	return m.input.Value()
}

// SetValue replaces the query text without touching suggestion visibility
func (m *Model) SetValue(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
	m.cursor = -1
}

// Focused reports whether the input has focus
func (m Model) Focused() bool {
	return m.input.Focused()
}

// Searching reports whether a submitted search is in progress
func (m Model) Searching() bool {
	return m.state.searching
}

// SuggestionsVisible reports the suggestion visibility flag
func (m Model) SuggestionsVisible() bool {
	return m.state.showSuggestions
}

// PanelVisible reports whether the suggestion panel is drawn
func (m Model) PanelVisible() bool {
	return PanelVisible(m.state.showSuggestions, m.suggestions)
}

// CanClear reports whether the clear button is available
func (m Model) CanClear() bool {
	return m.input.Value() != "" && !m.state.searching
}

// Suggestions returns the suggestions that would be drawn
func (m Model) Suggestions() []string {
	return VisibleSuggestions(m.suggestions, m.maxSuggestions)
}

// Cursor returns the highlighted suggestion index, or -1
func (m Model) Cursor() int {
	return m.cursor
}

// SetSuggestions hands the box a new candidate list
func (m *Model) SetSuggestions(list []string) {
	m.suggestions = list
	if m.cursor >= len(m.Suggestions()) {
		m.cursor = -1
	}
}

// HelpText describes how to use the box
func (m Model) HelpText() string {
	return fmt.Sprintf("Type to search products. Use at least %d characters for suggestions.", m.minChars+1)
}

// SetWidth sets the total width of the box
func (m *Model) SetWidth(w int) {
	m.width = w
	m.input.Width = max(m.fieldWidth()-1, 1)
}

// SetOrigin tells the box where its top-left corner is on screen so mouse
// events can be hit-tested
func (m *Model) SetOrigin(x, y int) {
	m.originX, m.originY = x, y
}

// Closed reports whether Close was called
func (m Model) Closed() bool {
	return m.closed
}

// Close tears the box down: a pending blur timer is invalidated, the context
// passed to running searches is cancelled and later messages are ignored.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.blurSeq++
	m.input.Blur()
	if m.cancel != nil {
		m.cancel()
	}
}

// Focus gives the input focus and reopens suggestions for a long enough query.
// A pending blur hide is cancelled.
func (m *Model) Focus() tea.Cmd {
	if m.closed {
		return nil
	}
	m.blurSeq++
	cmd := m.input.Focus()
	if ShouldShowSuggestions(m.input.Value(), m.minChars) {
		m.state.showSuggestions = true
	}
	return cmd
}

// Blur removes focus. Suggestions stay on screen for the blur delay so a
// click on one can still land.
func (m *Model) Blur() tea.Cmd {
	if m.closed || !m.input.Focused() {
		return nil
	}
	m.input.Blur()
	m.blurSeq++
	if m.blurDelay <= 0 {
		m.hideSuggestions()
		return nil
	}
	id, seq := m.id, m.blurSeq
	return tea.Tick(m.blurDelay, func(time.Time) tea.Msg {
		return blurExpiredMsg{id: id, seq: seq}
	})
}

// Submit searches for the trimmed query. It does nothing for a blank query
// or while a submitted search is still running.
func (m *Model) Submit() tea.Cmd {
	query := strings.TrimSpace(m.input.Value())
	if m.closed || query == "" || m.state.searching {
		return nil
	}
	m.state.searching = true
	m.hideSuggestions()
	m.logger.Debug().Str("query", query).Msg("search submitted")

	cmds := []tea.Cmd{m.runSubmit(query)}
	if !m.ticking {
		m.ticking = true
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Clear empties the query. It is only available while CanClear holds.
func (m *Model) Clear() bool {
	if m.closed || !m.CanClear() {
		return false
	}
	m.input.Reset()
	m.hideSuggestions()
	return true
}

// SelectSuggestion puts s in the box and searches for it right away.
// A failure comes back to the parent as SearchErrorMsg.
func (m *Model) SelectSuggestion(s string) tea.Cmd {
	if m.closed {
		return nil
	}
	m.input.SetValue(s)
	m.input.CursorEnd()
	m.hideSuggestions()
	if m.onSearch == nil || s == "" {
		return nil
	}
	m.logger.Debug().Str("query", s).Msg("suggestion selected")

	id, ctx, search := m.id, m.ctx, m.onSearch
	return func() tea.Msg {
		if err := search(ctx, s); err != nil {
			return SearchErrorMsg{ID: id, Query: s, Err: err}
		}
		return nil
	}
}

// runSubmit wraps the callback so that errors and panics end up in
// searchDoneMsg instead of escaping
func (m Model) runSubmit(query string) tea.Cmd {
	id, ctx, search := m.id, m.ctx, m.onSearch
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = searchDoneMsg{id: id, query: query, err: fmt.Errorf("search panicked: %v", r)}
			}
		}()
		var err error
		if search != nil {
			err = search(ctx, query)
		}
		return searchDoneMsg{id: id, query: query, err: err}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.closed {
		return m, nil
	}

	switch msg := msg.(type) {
	case blurExpiredMsg:
		if msg.id == m.id && msg.seq == m.blurSeq {
			m.hideSuggestions()
		}
		return m, nil

	case searchDoneMsg:
		if msg.id != m.id {
			return m, nil
		}
		m.state.searching = false
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Str("query", msg.query).Msg("search failed")
		}
		return m, nil

	case spinner.TickMsg:
		if msg.ID != m.spinner.ID() {
			return m, nil
		}
		if !m.state.searching {
			m.ticking = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if !m.input.Focused() {
			return m, nil
		}
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keys.Submit):
		if visible := m.Suggestions(); m.PanelVisible() && m.cursor >= 0 && m.cursor < len(visible) {
			cmd := m.SelectSuggestion(visible[m.cursor])
			return m, cmd
		}
		cmd := m.Submit()
		return m, cmd

	case keyMatches(msg, m.keys.Clear):
		m.Clear()
		return m, nil

	case keyMatches(msg, m.keys.Next) && m.PanelVisible():
		m.moveCursor(1)
		return m, nil

	case keyMatches(msg, m.keys.Prev) && m.PanelVisible():
		m.moveCursor(-1)
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.change()
	}
	return m, cmd
}

// change recomputes suggestion visibility after the text was edited
func (m *Model) change() {
	m.cursor = -1
	m.state.showSuggestions = ShouldShowSuggestions(m.input.Value(), m.minChars)
}

func (m *Model) hideSuggestions() {
	m.state.showSuggestions = false
	m.cursor = -1
}

func (m *Model) moveCursor(delta int) {
	n := len(m.Suggestions())
	if n == 0 {
		m.cursor = -1
		return
	}
	switch {
	case m.cursor < 0 && delta > 0:
		m.cursor = 0
	case m.cursor < 0:
		m.cursor = n - 1
	default:
		m.cursor = (m.cursor + delta + n) % n
	}
}
