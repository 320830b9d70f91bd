package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/gangwar/cli"
	"github.com/nathoo/gangwar/session"
)

const (
	prompt     = "> "
	scrollback = 2000 // lines kept for the viewport
)

// rawLine is an unstyled output line, kept so the viewport can re-wrap
// and re-style on resize.
type rawLine struct {
	text string
	kind lineKind
}

// Model is the Bubble Tea model for the game TUI.
type Model struct {
	session *session.Session

	viewport viewport.Model
	input    textinput.Model
	history  *History
	lines    []rawLine

	width    int
	height   int
	ready    bool
	trace    bool
	quitting bool
}

// outputMsg is one turn of output for the scrollback.
type outputMsg struct {
	echo  string // player input, empty for the intro
	lines []string
	meta  bool // slash command output, shown bracketed
}

// New creates a TUI model wired to the given session, with the intro and
// opening status already in the scrollback. The session is only touched
// from here and Update.
func New(s *session.Session) Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.PromptStyle = styleInputPrompt
	ti.CharLimit = 256
	ti.Focus()

	m := Model{session: s, input: ti, history: NewHistory(100)}
	lines := append(s.Intro(), "")
	m.push(outputMsg{lines: append(lines, s.Step("status").Output...)})
	return m
}

// Run starts the Bubble Tea program.
func Run(s *session.Session) error {
	p := tea.NewProgram(New(s), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	vpHeight := max(1, height-2) // status bar and input line

	if m.ready {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	} else {
		m.viewport = viewport.New(width, vpHeight)
		m.viewport.KeyMap = viewportKeyMap()
		m.ready = true
	}
	m.render()
}

// handleKey reports false for keys the text input should see.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit, true
	case "enter":
		next, cmd := m.submit()
		return next, cmd, true
	case "up":
		m.recall(m.history.Prev)
		return m, nil, true
	case "down":
		if !m.recall(m.history.Next) {
			m.input.SetValue("")
		}
		return m, nil, true
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd, true
	}
	return m, nil, false
}

// recall puts a history entry into the input line.
func (m *Model) recall(step func() (string, bool)) bool {
	cmd, ok := step()
	if ok {
		m.input.SetValue(cmd)
		m.input.CursorEnd()
	}
	return ok
}

// submit runs the input line as a slash command or a game command.
func (m Model) submit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")
	if input == "" {
		return m, nil
	}
	m.history.Push(input)
	m.history.ResetCursor()

	if strings.HasPrefix(input, "/") {
		lines, quit := m.handleMeta(input)
		m.push(outputMsg{echo: input, lines: lines, meta: true})
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	cmd, ok := m.session.Expand(input)
	if !ok {
		m.push(outputMsg{echo: input, lines: []string{"Nothing to repeat."}, meta: true})
		return m, nil
	}
	result := m.session.Step(cmd)
	lines := result.Output
	if m.trace {
		lines = append(lines, cli.TraceLines(result)...)
	}
	m.push(outputMsg{echo: input, lines: lines})
	return m, nil
}

// handleMeta toggles tracing locally and hands other slash commands to the
// session. /help gains the TUI's key bindings.
func (m *Model) handleMeta(input string) ([]string, bool) {
	switch strings.Fields(input)[0] {
	case "/trace":
		m.trace = !m.trace
		if m.trace {
			return []string{"Trace output enabled."}, false
		}
		return []string{"Trace output disabled."}, false
	case "/help":
		lines, _ := m.session.Meta(input)
		return append(lines, "", "Navigation: PgUp/PgDn to scroll, Up/Down for command history"), false
	}
	return m.session.Meta(input)
}

// push appends a turn to the scrollback, classifying game lines for styling.
func (m *Model) push(msg outputMsg) {
	if msg.echo != "" {
		m.lines = append(m.lines, rawLine{text: prompt + msg.echo, kind: kindInput})
	}
	for _, line := range msg.lines {
		kind := kindMeta
		if !msg.meta {
			kind = classifyLine(line)
		}
		m.lines = append(m.lines, rawLine{text: line, kind: kind})
	}
	m.lines = append(m.lines, rawLine{}) // blank line between turns

	if over := len(m.lines) - scrollback; over > 0 {
		m.lines = append([]rawLine(nil), m.lines[over:]...)
	}
	m.render()
}

// render re-wraps and re-styles the scrollback at the current width.
func (m *Model) render() {
	if !m.ready {
		return
	}
	width := max(10, m.width)

	styled := make([]string, 0, len(m.lines))
	for _, rl := range m.lines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}
		styled = append(styled, renderLineKind(wordWrap(rl.text, width), rl.kind))
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// wordWrap breaks text at word boundaries to fit width. Existing newlines
// are kept.
func wordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	paragraphs := strings.Split(text, "\n")
	for i, p := range paragraphs {
		paragraphs[i] = wrapParagraph(p, width)
	}
	return strings.Join(paragraphs, "\n")
}

func wrapParagraph(text string, width int) string {
	if utf8.RuneCountInString(text) <= width {
		return text
	}

	var b strings.Builder
	col := 0
	for _, word := range strings.Fields(text) {
		n := utf8.RuneCountInString(word)
		switch {
		case col == 0:
		case col+1+n > width:
			b.WriteByte('\n')
			col = 0
		default:
			b.WriteByte(' ')
			col++
		}
		b.WriteString(word)
		col += n
	}
	return b.String()
}

// View renders the viewport, the status bar and the input line.
func (m Model) View() string {
	switch {
	case m.quitting:
		return ""
	case !m.ready:
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// viewportKeyMap leaves Up/Down to the command history.
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
