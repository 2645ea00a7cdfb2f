// Package tui provides the BubbleTea-based desktop interface.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/deskfolio/internal/audio"
	"github.com/jmylchreest/deskfolio/internal/core"
	"github.com/jmylchreest/deskfolio/internal/model"
	"github.com/jmylchreest/deskfolio/internal/portfolio"
	"github.com/jmylchreest/deskfolio/internal/terminal"
	"github.com/jmylchreest/deskfolio/internal/wm"
)

// Mode represents the current UI mode.
type Mode int

const (
	ModeDesktop Mode = iota
	ModeShell
	ModeHelp
)

// sidebarWidth is the width of the window list pane.
const sidebarWidth = 38

// Options configures the TUI model.
type Options struct {
	Manager          *wm.Manager
	Shell            *terminal.Shell
	Portfolio        *model.Portfolio
	Music            *audio.Manager // nil disables the music keys
	ClipboardCommand string
	Now              func() time.Time
}

// Model is the main TUI model.
type Model struct {
	wm        *wm.Manager
	shell     *terminal.Shell
	portfolio *model.Portfolio
	music     *audio.Manager
	clipboard string
	now       func() time.Time

	// Current mode
	mode Mode

	// Components
	list     list.Model
	viewport viewport.Model
	input    textinput.Model
	help     help.Model

	// State
	scrollback []string
	width      int
	height     int
	ready      bool

	// Key bindings
	keys KeyMap

	// Status message
	statusMsg string
	statusErr bool

	// Window manager subscription
	refreshCh <-chan wm.ChangeEvent
}

// windowItem wraps a window for the list component.
type windowItem struct {
	window model.Window
	now    time.Time
}

func (i windowItem) Title() string {
	return i.window.Title()
}

func (i windowItem) Description() string {
	w := i.window
	return fmt.Sprintf("%s %s at %d,%d - %s",
		w.State(), w.Size, w.Position.X, w.Position.Y,
		humanize.RelTime(w.OpenedAt, i.now, "ago", "from now"))
}

func (i windowItem) FilterValue() string {
	return i.window.Title() + " " + i.window.ID
}

// windowDelegate is a custom list delegate that dims minimized windows.
type windowDelegate struct {
	list.DefaultDelegate
}

func newWindowDelegate() windowDelegate {
	return windowDelegate{DefaultDelegate: list.NewDefaultDelegate()}
}

// Render renders a list item, dimming minimized windows.
func (d windowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	wi, ok := item.(windowItem)
	if !ok {
		d.DefaultDelegate.Render(w, m, index, item)
		return
	}

	isSelected := index == m.Index()
	isMinimized := wi.window.Minimized

	itemWidth := m.Width() - d.DefaultDelegate.Styles.NormalTitle.GetHorizontalPadding()

	var titleStyle, descStyle lipgloss.Style
	if isSelected {
		titleStyle = d.DefaultDelegate.Styles.SelectedTitle
		descStyle = d.DefaultDelegate.Styles.SelectedDesc
	} else {
		titleStyle = d.DefaultDelegate.Styles.NormalTitle
		descStyle = d.DefaultDelegate.Styles.NormalDesc
	}
	if isMinimized {
		titleStyle = titleStyle.Foreground(lipgloss.Color("8"))
		descStyle = descStyle.Foreground(lipgloss.Color("8"))
	}

	title := wi.Title()
	switch {
	case isMinimized:
		title = "[_] " + title
	case wi.window.Maximized:
		title = "[□] " + title
	}

	title = truncate(title, itemWidth)
	desc := truncate(wi.Description(), itemWidth)

	fmt.Fprint(w, titleStyle.Render(title))
	fmt.Fprint(w, "\n")
	fmt.Fprint(w, descStyle.Render(desc))
}

// truncate shortens s to at most width cells, ending in an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// New creates a new TUI model.
func New(opts Options) Model {
	l := list.New(nil, newWindowDelegate(), 0, 0)
	l.Title = "Windows"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 256

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	m := Model{
		wm:        opts.Manager,
		shell:     opts.Shell,
		portfolio: opts.Portfolio,
		music:     opts.Music,
		clipboard: opts.ClipboardCommand,
		now:       now,
		mode:      ModeDesktop,
		list:      l,
		input:     input,
		help:      help.New(),
		keys:      DefaultKeyMap(),
	}

	if m.wm != nil {
		m.refreshCh = m.wm.Subscribe()
		m.list.SetItems(m.buildListItems())
	}

	return m
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return m.watchForChanges
}

// watchForChanges waits for the next window manager event.
func (m Model) watchForChanges() tea.Msg {
	if m.refreshCh == nil {
		return nil
	}
	if _, ok := <-m.refreshCh; !ok {
		return nil
	}
	return refreshMsg{}
}

type refreshMsg struct{}

// portfolioMsg carries a reloaded portfolio.
type portfolioMsg struct {
	portfolio *model.Portfolio
}

type statusMsg struct {
	text  string
	isErr bool
}

type clearStatusMsg struct{}

type copyResultMsg struct {
	err error
}

func setStatus(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isErr: isErr}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		bodyHeight := max(msg.Height-3, 1)
		m.list.SetSize(sidebarWidth, bodyHeight)
		m.viewport = viewport.New(max(msg.Width-sidebarWidth-1, 1), bodyHeight)
		m.input.Width = max(msg.Width-sidebarWidth-4, 1)
		m.refreshContent()
		return m, nil

	case refreshMsg:
		m.refresh()
		return m, m.watchForChanges

	case portfolioMsg:
		m.portfolio = msg.portfolio
		if m.shell != nil {
			m.shell.SetPortfolio(msg.portfolio)
		}
		m.refreshContent()
		return m, setStatus("Portfolio reloaded", false)

	case statusMsg:
		m.statusMsg = msg.text
		m.statusErr = msg.isErr
		return m, tea.Tick(3*time.Second, func(t time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		m.statusMsg = ""
		m.statusErr = false
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			return m, setStatus("Copy failed: "+msg.err.Error(), true)
		}
		return m, setStatus("Copied to clipboard", false)
	}

	var cmd tea.Cmd
	switch m.mode {
	case ModeDesktop:
		m.list, cmd = m.list.Update(msg)
	case ModeShell:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

// handleKey handles key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeShell {
		return m.handleShellKey(msg)
	}

	// Global keys
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		if m.mode == ModeHelp {
			m.mode = ModeDesktop
		} else {
			m.mode = ModeHelp
		}
		return m, nil
	}

	if m.mode == ModeHelp {
		if key.Matches(msg, m.keys.Back) {
			m.mode = ModeDesktop
		}
		return m, nil
	}
	return m.handleDesktopKey(msg)
}

// handleDesktopKey handles keys on the desktop.
func (m Model) handleDesktopKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Launch):
		idx := int(msg.Runes[0] - '1')
		kinds := model.AllKinds()
		if idx < 0 || idx >= len(kinds) {
			return m, nil
		}
		return m.open(kinds[idx])

	case key.Matches(msg, m.keys.Focus):
		w, ok := m.selectedWindow()
		if !ok {
			return m, nil
		}
		if w.Kind == model.KindTerminal {
			return m.open(model.KindTerminal)
		}
		m.wm.Focus(w.ID)
		if w.Minimized {
			m.wm.ToggleMinimize(w.ID)
		}
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Minimize):
		if w, ok := m.selectedWindow(); ok {
			m.wm.ToggleMinimize(w.ID)
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Maximize):
		if w, ok := m.selectedWindow(); ok {
			m.wm.ToggleMaximize(w.ID)
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Close):
		if w, ok := m.selectedWindow(); ok {
			m.wm.Close(w.ID)
			m.refresh()
			return m, setStatus("Closed "+w.Title(), false)
		}
		return m, nil

	case key.Matches(msg, m.keys.Cycle):
		windows := m.wm.Windows()
		if len(windows) < 2 {
			return m, nil
		}
		// Raise the backmost window so repeated presses walk the stack.
		back := windows[0]
		for _, w := range windows[1:] {
			if w.ZIndex < back.ZIndex {
				back = w
			}
		}
		m.wm.Focus(back.ID)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Shell):
		return m.open(model.KindTerminal)

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.HalfPageUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.HalfPageDown()
		return m, nil

	case key.Matches(msg, m.keys.CopyYAML):
		data, err := windowsYAML(m.wm.Windows())
		if err != nil {
			return m, setStatus("Failed to marshal YAML: "+err.Error(), true)
		}
		return m, m.copyToClipboard(data)

	case key.Matches(msg, m.keys.PlayPause):
		return m, m.playPause()

	case key.Matches(msg, m.keys.NextSong):
		return m, m.nextSong()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.refreshContent()
	return m, cmd
}

// handleShellKey handles keys while the terminal has input focus.
func (m Model) handleShellKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		m.leaveShell()
		return m, nil

	case tea.KeyEnter:
		line := m.input.Value()
		m.input.SetValue("")
		m.scrollback = append(m.scrollback, m.shell.Prompt()+line)

		res := m.shell.Exec(line)
		if res.Clear {
			m.scrollback = nil
		}
		if res.Output != "" {
			m.scrollback = append(m.scrollback, strings.Split(res.Output, "\n")...)
		}
		if res.Exit {
			m.leaveShell()
			if w, ok := m.wm.ByKind(model.KindTerminal); ok {
				m.wm.Close(w.ID)
			}
			m.scrollback = nil
		}
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refreshContent()
	return m, cmd
}

// open opens or focuses an application and enters the shell for the
// terminal.
func (m Model) open(kind model.Kind) (tea.Model, tea.Cmd) {
	w, ok := m.wm.Open(kind)
	if !ok {
		m.refresh()
		if kind.External() {
			return m, setStatus("Opening "+kind.Title()+" in the browser", false)
		}
		return m, nil
	}

	if w.Kind == model.KindTerminal && m.shell != nil {
		m.mode = ModeShell
		m.input.Focus()
		m.refresh()
		return m, textinput.Blink
	}
	m.refresh()
	return m, nil
}

func (m *Model) leaveShell() {
	m.mode = ModeDesktop
	m.input.Blur()
	m.input.SetValue("")
	m.refreshContent()
}

// selectedWindow returns the window under the list cursor.
func (m Model) selectedWindow() (model.Window, bool) {
	if m.wm == nil {
		return model.Window{}, false
	}
	item, ok := m.list.SelectedItem().(windowItem)
	if !ok {
		return model.Window{}, false
	}
	// Re-read so toggles act on the current state.
	return m.wm.Get(item.window.ID)
}

// refresh rebuilds the window list and the content pane.
func (m *Model) refresh() {
	if m.wm == nil {
		return
	}
	selected := ""
	if item, ok := m.list.SelectedItem().(windowItem); ok {
		selected = item.window.ID
	}

	items := m.buildListItems()
	m.list.SetItems(items)

	// Keep the cursor on the same window, or on the top one when it is gone.
	target := 0
	for i, it := range items {
		if it.(windowItem).window.ID == selected {
			target = i
			break
		}
	}
	m.list.Select(target)
	m.refreshContent()
}

// buildListItems returns the windows ordered front to back.
func (m Model) buildListItems() []list.Item {
	windows := m.wm.Windows()
	now := m.now()
	core.Sort(windows, core.DefaultSortOptions())

	items := make([]list.Item, len(windows))
	for i, w := range windows {
		items[i] = windowItem{window: w, now: now}
	}
	return items
}

// refreshContent renders the topmost visible window into the viewport.
func (m *Model) refreshContent() {
	if !m.ready || m.wm == nil {
		return
	}
	top, ok := m.wm.Top()
	if !ok {
		m.viewport.SetContent(labelStyle.Render("No open windows. Press 1-9 to open an application."))
		return
	}

	if top.Kind == model.KindTerminal {
		lines := append([]string(nil), m.scrollback...)
		if m.shell != nil {
			prompt := m.shell.Prompt()
			if m.mode == ModeShell {
				prompt += m.input.View()
			}
			lines = append(lines, prompt)
		}
		m.viewport.SetContent(strings.Join(lines, "\n"))
		m.viewport.GotoBottom()
		return
	}

	m.viewport.SetContent(renderContent(top.Kind, m.portfolio, m.viewport.Width))
	m.viewport.GotoTop()
}

// copyToClipboard copies text to the system clipboard.
func (m Model) copyToClipboard(text string) tea.Cmd {
	command := m.clipboard
	return func() tea.Msg {
		return copyResultMsg{err: copyText(text, command)}
	}
}

// playPause starts the playlist, or pauses and resumes a playing song.
func (m Model) playPause() tea.Cmd {
	music := m.music
	if music == nil {
		return setStatus("Music is not available", true)
	}
	return func() tea.Msg {
		if music.Playing() {
			if music.TogglePause() {
				return statusMsg{text: "Music paused"}
			}
			return statusMsg{text: "Music resumed"}
		}
		if err := music.Play(context.Background()); err != nil {
			return statusMsg{text: "Play failed: " + err.Error(), isErr: true}
		}
		song, _ := music.NowPlaying()
		return statusMsg{text: "Playing " + song.Label()}
	}
}

func (m Model) nextSong() tea.Cmd {
	music := m.music
	if music == nil {
		return setStatus("Music is not available", true)
	}
	return func() tea.Msg {
		if err := music.Next(context.Background()); err != nil {
			return statusMsg{text: "Next failed: " + err.Error(), isErr: true}
		}
		song, _ := music.NowPlaying()
		return statusMsg{text: "Playing " + song.Label()}
	}
}

// View renders the TUI.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.mode == ModeHelp {
		return m.viewHelp()
	}
	return m.viewDesktop()
}

func (m Model) viewDesktop() string {
	border := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(lipgloss.Color("8"))

	title := "Desktop"
	if top, ok := m.wm.Top(); ok {
		title = top.Title()
	}
	pane := headerStyle.Padding(0, 1).Render(title) + "\n" + m.viewport.View()

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), border.Render(pane))

	var s string
	s += m.viewDock() + "\n"
	s += body

	if m.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))
		if m.statusErr {
			statusStyle = statusStyle.Foreground(lipgloss.Color("9"))
		}
		s += "\n" + statusStyle.Render(m.statusMsg)
	} else {
		mode := "desktop"
		if m.mode == ModeShell {
			mode = "shell"
		}
		s += "\n" + m.buildKeybindBar(m.width, mode)
	}
	return s
}

// viewDock renders the application dock with running indicators.
func (m Model) viewDock() string {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	runningStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	parts := make([]string, 0, len(model.AllKinds()))
	for i, kind := range model.AllKinds() {
		label := keyStyle.Render(fmt.Sprintf("%d", i+1)) + " " + kind.Title()
		switch {
		case m.wm.IsMinimized(kind):
			label += dimStyle.Render(" ○")
		case m.wm.IsRunning(kind):
			label = runningStyle.Render(label + " ●")
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "  ")
}

func (m Model) viewHelp() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		MarginBottom(1)

	s := titleStyle.Render("Keyboard Shortcuts") + "\n\n"
	m.help.ShowAll = true
	s += m.help.View(m.keys) + "\n\n"

	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	s += sectionStyle.Render("Applications") + "\n"
	for i, kind := range model.AllKinds() {
		s += fmt.Sprintf("  %d  %s\n", i+1, kind.Title())
	}

	s += "\n" + sectionStyle.Render("Press ? or esc to return")
	return s
}

// keybind represents a single keybind with priority for the status bar.
type keybind struct {
	key      string
	desc     string
	priority int // lower = more important (shown first)
}

// buildKeybindBar builds a keybind bar that fits within the given width.
// mode is "desktop" or "shell".
func (m Model) buildKeybindBar(width int, mode string) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	var binds []keybind
	switch mode {
	case "desktop":
		binds = []keybind{
			{"q", "quit", 1},
			{"1-9", "open", 2},
			{"?", "help", 3},
			{"enter", "focus", 4},
			{":", "terminal", 5},
			{"m", "minimize", 6},
			{"x", "maximize", 7},
			{"w", "close", 8},
			{"tab", "cycle", 9},
			{"y", "copy", 10},
		}
		if m.music != nil {
			binds = append(binds, keybind{"p", "music", 11}, keybind{"n", "next", 12})
		}
	case "shell":
		binds = []keybind{
			{"enter", "run", 1},
			{"esc", "desktop", 2},
			{"exit", "close terminal", 3},
		}
	}

	const separator = "  "
	result := ""
	for _, b := range binds {
		item := keyStyle.Render(b.key) + " " + b.desc
		plainItem := b.key + " " + b.desc
		testLen := len(plainItem)
		if result != "" {
			testLen = len(stripANSI(result)) + len(separator) + len(plainItem)
		}

		if width > 0 && testLen > width {
			break
		}
		if result != "" {
			result += separator
		}
		result += item
	}

	return style.Render(result)
}

// stripANSI removes ANSI escape codes for length calculation.
func stripANSI(s string) string {
	result := make([]byte, 0, len(s))
	inEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if s[i] == 'm' {
				inEscape = false
			}
			continue
		}
		result = append(result, s[i])
	}
	return string(result)
}

// RunOptions configures the TUI.
type RunOptions struct {
	Options
	Source *portfolio.Source // Reloads are pushed into the UI when set
}

// Run starts the TUI with the given options.
func Run(opts RunOptions) error {
	if opts.Source != nil && opts.Portfolio == nil {
		opts.Portfolio = opts.Source.Current()
	}

	m := New(opts.Options)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if opts.Source != nil {
		opts.Source.OnChange(func(pf *model.Portfolio) {
			p.Send(portfolioMsg{portfolio: pf})
		})
	}

	_, err := p.Run()

	if opts.Manager != nil {
		opts.Manager.Unsubscribe(m.refreshCh)
	}
	return err
}
