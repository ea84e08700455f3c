package ui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/roster/internal/directory"
	"github.com/five82/roster/internal/logging"
	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/state"
)

// Loader produces the single load result for the directory.
type Loader interface {
	Load(ctx context.Context) directory.Action
}

// focus identifies which widget receives key input.
type focus int

const (
	focusSearch focus = iota
	focusList
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Loader    Loader
	Store     *state.Store
	Logger    *slog.Logger
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	loader    Loader
	store     *state.Store
	logger    *slog.Logger
	prefsPath string

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	input    textinput.Model
	spinner  spinner.Model
	focus    focus
	width    int
	height   int
	showHelp bool

	// Data state
	snapshot state.Snapshot

	// List state
	cursor int
	offset int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	loader := opts.Loader
	if loader == nil {
		loader = directory.NewLoader(nil, logger)
	}

	store := opts.Store
	if store == nil {
		store = state.NewStore()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Prompt = searchPrompt
	input.Placeholder = "Search by name"
	input.Focus()

	m := Model{
		ctx:       ctx,
		loader:    loader,
		store:     store,
		logger:    logger,
		prefsPath: prefsPath,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		input:     input,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		focus:     focusSearch,
		width:     defaultWidth,
		height:    defaultHeight,
		snapshot:  store.Snapshot(),
	}
	m.applyTheme()
	m.resize()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		loadUsersCmd(m.ctx, m.loader),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.clampCursor()
		return m, nil

	case usersLoadedMsg:
		m.dispatch(msg.action)
		m.clampCursor()
		return m, nil

	case spinner.TickMsg:
		if m.snapshot.Phase != directory.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.snapshot.Phase {
	case directory.PhaseLoading:
		return m.renderLoading()
	case directory.PhaseFailed:
		return m.renderFailed()
	}

	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderDirectory()
}

// dispatch applies action to the store and refreshes the cached snapshot.
func (m *Model) dispatch(action directory.Action) {
	if !m.store.Dispatch(action) {
		m.logger.Debug("dispatch dropped", "action", actionName(action))
		return
	}
	m.snapshot = m.store.Snapshot()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	switch m.snapshot.Phase {
	case directory.PhaseLoading:
		return m, nil
	case directory.PhaseFailed:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.focus == focusSearch {
		return m.handleSearchKey(msg)
	}
	return m.handleListKey(msg)
}

// handleSearchKey processes keyboard input while the search input has focus.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.dispatch(directory.Confirm{})
		m.cursor = 0
		m.offset = 0
		return m, nil

	case key.Matches(msg, m.keys.FocusList):
		m.focusList()
		return m, nil

	case key.Matches(msg, m.keys.ClearQuery):
		m.input.SetValue("")
		m.setQuery("")
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		m.setQuery(after)
	}
	return m, cmd
}

// handleListKey processes keyboard input while the list has focus.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := len(m.snapshot.Filtered)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.FocusSearch):
		return m, m.focusSearch()

	case key.Matches(msg, m.keys.Deselect):
		m.dispatch(directory.ClearSelection{})
		return m, nil

	case key.Matches(msg, m.keys.Select):
		m.activateRow(m.cursor)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		} else {
			// Moving above the first row returns to the search input
			return m, m.focusSearch()
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < rows-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0

	case key.Matches(msg, m.keys.Bottom):
		m.cursor = rows - 1

	case key.Matches(msg, m.keys.PageUp):
		m.cursor -= m.listRows()

	case key.Matches(msg, m.keys.PageDown):
		m.cursor += m.listRows()
	}

	m.clampCursor()
	return m, nil
}

// handleMouse maps clicks on list rows to activation and the wheel to the cursor.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.snapshot.Phase != directory.PhaseLoaded || m.showHelp {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.cursor--
		m.clampCursor()
		return m, nil
	case tea.MouseButtonWheelDown:
		m.cursor++
		m.clampCursor()
		return m, nil
	case tea.MouseButtonLeft:
	default:
		return m, nil
	}
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}

	if msg.Y == searchLine {
		return m, m.focusSearch()
	}

	idx, ok := m.rowAt(msg.Y)
	if !ok {
		return m, nil
	}
	m.focusList()
	m.cursor = idx
	m.activateRow(idx)
	return m, nil
}

// rowAt converts a screen line into an index into the filtered view.
func (m Model) rowAt(y int) (int, bool) {
	if m.snapshot.ShowNoResults() {
		return 0, false
	}
	line := y - listTop
	if line < 0 || line >= m.listRows() {
		return 0, false
	}
	idx := m.offset + line
	if idx >= len(m.snapshot.Filtered) {
		return 0, false
	}
	return idx, true
}

func (m *Model) activateRow(idx int) {
	if idx < 0 || idx >= len(m.snapshot.Filtered) {
		return
	}
	m.dispatch(directory.Activate{ID: m.snapshot.Filtered[idx].ID})
}

func (m *Model) setQuery(query string) {
	m.dispatch(directory.SetQuery{Query: query})
	m.cursor = 0
	m.offset = 0
}

func (m *Model) focusList() {
	m.focus = focusList
	m.input.Blur()
	m.clampCursor()
}

func (m *Model) focusSearch() tea.Cmd {
	m.focus = focusSearch
	return m.input.Focus()
}

// cycleTheme switches to the next theme and persists the choice.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyTheme()
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

// applyTheme pushes theme colors into the bubbles components.
func (m *Model) applyTheme() {
	styles := m.theme.Styles()
	m.input.PromptStyle = styles.AccentText
	m.input.TextStyle = styles.Text
	m.input.PlaceholderStyle = styles.FaintText
	m.spinner.Style = styles.AccentText
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.AccentText
	m.help.Styles.FullDesc = styles.MutedText
	m.help.Styles.FullSeparator = styles.FaintText
}

func (m *Model) resize() {
	m.help.Width = m.width
	m.input.Width = maxInt(m.width-len(searchPrompt)-1, 1)
}

// clampCursor keeps the cursor inside the filtered view and scrolls the
// window so the cursor stays visible.
func (m *Model) clampCursor() {
	rows := len(m.snapshot.Filtered)
	if rows == 0 {
		m.cursor = 0
		m.offset = 0
		return
	}
	if m.cursor >= rows {
		m.cursor = rows - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	visible := m.listRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if maxOffset := maxInt(rows-visible, 0); m.offset > maxOffset {
		m.offset = maxOffset
	}
}

// listRows returns how many user rows fit on screen.
func (m Model) listRows() int {
	return maxInt(m.height-listTop-detailsHeight-footerHeight, minListRows)
}

// Messages

type usersLoadedMsg struct {
	action directory.Action
}

// Commands

func loadUsersCmd(ctx context.Context, loader Loader) tea.Cmd {
	return func() tea.Msg {
		return usersLoadedMsg{action: loader.Load(ctx)}
	}
}

func actionName(action directory.Action) string {
	switch action.(type) {
	case directory.LoadSucceeded:
		return "load_succeeded"
	case directory.LoadFailed:
		return "load_failed"
	case directory.SetQuery:
		return "set_query"
	case directory.Activate:
		return "activate"
	case directory.Confirm:
		return "confirm"
	case directory.ClearSelection:
		return "clear_selection"
	default:
		return "unknown"
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(m.ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		// Cancelled from outside, e.g. SIGTERM.
		return nil
	}
	return err
}
