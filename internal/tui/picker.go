package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"

	"github.com/dongho-jung/templet/internal/config"
	"github.com/dongho-jung/templet/internal/logging"
	"github.com/dongho-jung/templet/internal/store"
)

// PickAction represents how the selection loop resolved.
type PickAction int

// Pick actions.
const (
	PickCancel PickAction = iota
	PickCopy
	PickCopyPlain
)

const (
	pageStep        = 5
	previewHeight   = 5
	previewMaxBytes = 4096

	// listTopRow is the screen row of the first list item:
	// title(1) + dir(1) + gap(1) + input box(3) + gap(1).
	listTopRow = 7
)

// ReadFunc loads a template's content, injected so tests and previews share
// the store's reader.
type ReadFunc func(store.Entry) ([]byte, error)

// Picker is the fuzzy-searchable template selection loop.
type Picker struct {
	input    textinput.Model
	entries  []store.Entry
	filtered []int // indices into entries
	cursor   int
	action   PickAction
	selected *store.Entry

	read       ReadFunc
	preview    string
	previewIdx int

	status  string
	baseDir string

	theme  config.Theme
	isDark bool
	colors ThemeColors
	width  int
	height int

	// Style cache (reused across renders)
	styleTitle         lipgloss.Style
	styleInput         lipgloss.Style
	styleItem          lipgloss.Style
	styleSelected      lipgloss.Style
	styleHelp          lipgloss.Style
	styleDim           lipgloss.Style
	styleStatus        lipgloss.Style
	stylePreviewBorder lipgloss.Style
	stylePreviewTitle  lipgloss.Style
	stylesCached       bool
}

// NewPicker creates a picker over the store's entries. baseDir is shown in
// the header and the empty state.
func NewPicker(entries []store.Entry, baseDir string, theme config.Theme, read ReadFunc) *Picker {
	logging.Debug("picker: entries=%d dir=%s", len(entries), baseDir)

	// Detect dark mode BEFORE bubbletea starts
	isDark := DetectDarkMode(theme)

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Type to filter templates..."
	ti.Focus()
	ti.CharLimit = 100
	ti.SetWidth(60)

	filtered := make([]int, len(entries))
	for i := range entries {
		filtered[i] = i
	}

	return &Picker{
		input:      ti,
		entries:    entries,
		filtered:   filtered,
		cursor:     0,
		action:     PickCancel,
		read:       read,
		previewIdx: -1,
		baseDir:    baseDir,
		theme:      theme,
		isDark:     isDark,
		colors:     NewThemeColors(isDark),
		width:      80,
		height:     24,
	}
}

// Init initializes the picker.
func (m *Picker) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.loadPreview()}
	if m.theme == config.ThemeAuto {
		cmds = append(cmds, tea.RequestBackgroundColor)
	}
	return tea.Batch(cmds...)
}

type previewMsg struct {
	index int
	text  string
}

// loadPreview reads the highlighted template's content off the update path.
func (m *Picker) loadPreview() tea.Cmd {
	if len(m.filtered) == 0 || m.cursor >= len(m.filtered) {
		return nil
	}
	idx := m.filtered[m.cursor]
	if idx == m.previewIdx {
		return nil
	}
	entry := m.entries[idx]
	read := m.read

	return func() tea.Msg {
		data, err := read(entry)
		if err != nil {
			return previewMsg{index: idx, text: "(unreadable)"}
		}
		return previewMsg{index: idx, text: string(previewSlice(data, previewMaxBytes))}
	}
}

// previewSlice caps the preview size without splitting a multi-byte rune.
func previewSlice(data []byte, limit int) []byte {
	if len(data) <= limit {
		return data
	}
	for limit > 0 && !utf8.RuneStart(data[limit]) {
		limit--
	}
	return data[:limit]
}

// Update handles messages.
func (m *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		inputWidth := min(60, m.width-10)
		if inputWidth > 20 {
			m.input.SetWidth(inputWidth)
		}
		return m, nil

	case tea.BackgroundColorMsg:
		if m.theme == config.ThemeAuto {
			m.isDark = msg.IsDark()
			m.colors = NewThemeColors(m.isDark)
			m.stylesCached = false
			setCachedDarkMode(m.isDark)
		}
		return m, nil

	case previewMsg:
		m.previewIdx = msg.index
		m.preview = msg.text
		return m, nil

	case tea.MouseWheelMsg:
		switch msg.Button {
		case tea.MouseWheelUp:
			m.moveCursor(-1)
		case tea.MouseWheelDown:
			m.moveCursor(1)
		}
		return m, m.loadPreview()

	case tea.MouseClickMsg:
		if msg.Button == tea.MouseLeft {
			if m.clickRow(msg.Y) {
				return m, m.loadPreview()
			}
		}
		return m, nil

	case tea.KeyMsg:
		// With no templates at all, only cancellation is accepted.
		if len(m.entries) == 0 {
			switch msg.String() {
			case "q", "esc", "ctrl+c":
				m.action = PickCancel
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "esc":
			m.action = PickCancel
			return m, tea.Quit

		case "enter":
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				m.resolve(PickCopy)
				return m, tea.Quit
			}
			return m, nil

		case "up", "ctrl+k", "ctrl+p":
			m.moveCursor(-1)
			return m, m.loadPreview()

		case "down", "ctrl+j", "ctrl+n":
			m.moveCursor(1)
			return m, m.loadPreview()

		case "pgup", "ctrl+b":
			m.moveCursor(-pageStep)
			return m, m.loadPreview()

		case "pgdown", "ctrl+f":
			m.moveCursor(pageStep)
			return m, m.loadPreview()
		}

		// Bare action keys work while the filter is empty; once a query is
		// being typed they belong to the text input.
		if m.input.Value() == "" {
			if handled, cmd := m.handleBareKey(msg.String()); handled {
				return m, cmd
			}
		}
	}

	// Update the filter input
	m.input, cmd = m.input.Update(msg)
	m.updateFiltered()

	return m, tea.Batch(cmd, m.loadPreview())
}

// handleBareKey handles single-letter actions available with an empty filter.
func (m *Picker) handleBareKey(key string) (bool, tea.Cmd) {
	switch key {
	case "q":
		m.action = PickCancel
		return true, tea.Quit

	case "c":
		if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
			m.resolve(PickCopyPlain)
			return true, tea.Quit
		}
		return true, nil

	case "y":
		m.yankSelected()
		return true, nil
	}
	return false, nil
}

// resolve records the highlighted entry and the chosen action.
func (m *Picker) resolve(action PickAction) {
	idx := m.filtered[m.cursor]
	m.selected = &m.entries[idx]
	m.action = action
	logging.Debug("picker: resolved action=%d name=%s", action, m.selected.Name)
}

// yankSelected copies the highlighted template's body to the clipboard.
func (m *Picker) yankSelected() {
	if len(m.filtered) == 0 || m.cursor >= len(m.filtered) {
		return
	}
	entry := m.entries[m.filtered[m.cursor]]
	data, err := m.read(entry)
	if err != nil {
		m.status = "Could not read " + entry.Name
		return
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		m.status = "Clipboard unavailable"
		return
	}
	m.status = "Yanked " + entry.Name
}

// moveCursor moves the highlight by delta, saturating at both ends.
func (m *Picker) moveCursor(delta int) {
	if len(m.filtered) == 0 {
		m.cursor = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > len(m.filtered)-1 {
		m.cursor = len(m.filtered) - 1
	}
}

// clickRow maps a screen row to a list entry and moves the cursor there.
func (m *Picker) clickRow(y int) bool {
	if len(m.filtered) == 0 {
		return false
	}
	start, end := m.visibleRange(m.listHeight())
	row := start + (y - listTopRow)
	if y < listTopRow || row < start || row >= end {
		return false
	}
	m.cursor = row
	return true
}

// updateFiltered filters entries by the query and re-clamps the cursor.
func (m *Picker) updateFiltered() {
	query := m.input.Value()
	if query == "" {
		m.filtered = make([]int, len(m.entries))
		for i := range m.entries {
			m.filtered[i] = i
		}
		if m.cursor >= len(m.filtered) {
			m.cursor = max(0, len(m.filtered)-1)
		}
		return
	}

	names := make([]string, len(m.entries))
	for i, e := range m.entries {
		names[i] = e.Name
	}

	matches := fuzzy.Find(query, names)
	m.filtered = make([]int, len(matches))
	for i, match := range matches {
		m.filtered[i] = match.Index
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

// listHeight returns the rows available for the list itself.
func (m *Picker) listHeight() int {
	// Reserve: title(1) + dir(1) + gap(1) + input(3) + gap(1) + preview + help
	reservedLines := 9
	return max(3, m.height-reservedLines-previewHeight-2)
}

// visibleRange returns the [start, end) window of filtered indices shown for
// the given list height, keeping the cursor in view.
func (m *Picker) visibleRange(listHeight int) (int, int) {
	start := 0
	if m.cursor >= listHeight {
		start = m.cursor - listHeight + 1
	}
	end := min(start+listHeight, len(m.filtered))
	return start, end
}

// ensureStylesCached initializes styles if needed.
func (m *Picker) ensureStylesCached() {
	if m.stylesCached {
		return
	}
	c := m.colors
	m.styleTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(c.Accent)
	m.styleInput = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c.BorderFocused).
		Padding(0, 1)
	m.styleItem = lipgloss.NewStyle().
		Foreground(c.TextNormal).
		PaddingLeft(2)
	m.styleSelected = lipgloss.NewStyle().
		Foreground(c.Accent).
		Bold(true).
		PaddingLeft(0)
	m.styleHelp = lipgloss.NewStyle().
		Foreground(c.TextDim).
		MarginTop(1)
	m.styleDim = lipgloss.NewStyle().
		Foreground(c.TextDim)
	m.styleStatus = lipgloss.NewStyle().
		Foreground(c.SuccessColor)
	m.stylePreviewBorder = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c.Border).
		Padding(0, 1)
	m.stylePreviewTitle = lipgloss.NewStyle().
		Foreground(c.TextDim).
		Bold(true)
	m.stylesCached = true
}

// View renders the picker.
func (m *Picker) View() tea.View {
	m.ensureStylesCached()

	var sb strings.Builder

	sb.WriteString(m.styleTitle.Render("templet"))
	sb.WriteString("\n")
	sb.WriteString(m.styleDim.Render("Templates: " + m.baseDir))
	sb.WriteString("\n\n")

	if len(m.entries) == 0 {
		sb.WriteString(m.styleDim.Render("  No templates found!"))
		sb.WriteString("\n\n")
		sb.WriteString(m.styleDim.Render("  Add files to: " + m.baseDir))
		sb.WriteString("\n")
		sb.WriteString(m.styleDim.Render("  Supported: .txt .md .py .yml .json .sh .toml Dockerfile ..."))
		sb.WriteString("\n")
		sb.WriteString(m.styleHelp.Render("q/Esc: Quit"))

		v := tea.NewView(sb.String())
		v.AltScreen = true
		return v
	}

	sb.WriteString(m.styleInput.Render(m.input.View()))
	sb.WriteString("\n\n")

	listHeight := m.listHeight()

	if len(m.filtered) == 0 {
		sb.WriteString(m.styleDim.Render("  No matching templates"))
		sb.WriteString("\n")
	} else {
		start, end := m.visibleRange(listHeight)
		for i := start; i < end; i++ {
			entry := m.entries[m.filtered[i]]
			name := ansi.Truncate(entry.Name, max(4, m.width-10), "...")

			if i == m.cursor {
				sb.WriteString(m.styleSelected.Render("> " + name))
			} else {
				sb.WriteString(m.styleItem.Render(name))
			}
			sb.WriteString("\n")
		}
	}

	if len(m.filtered) > 0 && m.cursor < len(m.filtered) &&
		m.previewIdx == m.filtered[m.cursor] {
		sb.WriteString("\n")
		sb.WriteString(m.stylePreviewTitle.Render("Preview:"))
		sb.WriteString("\n")

		lines := strings.Split(m.preview, "\n")
		previewLines := min(previewHeight, len(lines))

		previewWidth := min(m.width-6, 70)
		truncated := make([]string, 0, previewLines+1)
		for i := 0; i < previewLines; i++ {
			truncated = append(truncated, ansi.Truncate(lines[i], previewWidth, "..."))
		}
		if len(lines) > previewHeight {
			truncated = append(truncated, "...")
		}

		sb.WriteString(m.stylePreviewBorder.Width(previewWidth).Render(strings.Join(truncated, "\n")))
	}

	sb.WriteString("\n")
	if m.status != "" {
		sb.WriteString(m.styleStatus.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(m.styleHelp.Render("↑/↓: Navigate  Enter: Copy  c: Copy w/o header  y: Yank  q/Esc: Quit"))

	v := tea.NewView(sb.String())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

// Result returns the resolved action and entry.
func (m *Picker) Result() (PickAction, *store.Entry) {
	return m.action, m.selected
}

// RunPicker runs the selection loop and returns the chosen template, if any.
// Terminal raw mode is entered and restored by the bubbletea program on every
// exit path, including interrupts and errors.
func RunPicker(entries []store.Entry, baseDir string, theme config.Theme, read ReadFunc) (PickAction, *store.Entry, error) {
	m := NewPicker(entries, baseDir, theme, read)
	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return PickCancel, nil, err
	}

	picker := finalModel.(*Picker)
	action, selected := picker.Result()
	return action, selected, nil
}
