package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mgomes/kindred/kin"
)

var (
	accentColor    = lipgloss.Color("#3B82F6")
	successColor   = lipgloss.Color("#10B981")
	errorColor     = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
	highlightColor = lipgloss.Color("#F59E0B")

	promptStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Padding(0, 1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(highlightColor)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)
)

// session holds the live hierarchy a REPL run builds up.
type session struct {
	rt *kin.Runtime
}

func newSession() *session {
	return &session{rt: kin.MustNewRuntime(kin.Config{})}
}

func (s *session) classNames() []string {
	classes := s.rt.Classes()
	names := make([]string, len(classes))
	for i, cls := range classes {
		names[i] = cls.Name
	}
	return names
}

func (s *session) resolveClass(name string) (*kin.Class, error) {
	if cls, ok := s.rt.LookupClass(name); ok {
		return cls, nil
	}
	if name == "Base" {
		return kin.Base, nil
	}
	return nil, fmt.Errorf("unknown class %s", name)
}

// execute runs one command line and reports the output plus whether it
// failed.
func (s *session) execute(input string) (string, bool) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return "", false
	}

	switch fields[0] {
	case "class":
		return s.defineCommand(fields[1:])
	case "def":
		return s.memberCommand(fields[1:], false)
	case "override":
		return s.memberCommand(fields[1:], true)
	case "show":
		return s.showCommand(fields[1:])
	case "ls":
		names := s.classNames()
		if len(names) == 0 {
			return "no classes defined", false
		}
		return joinNames(names), false
	default:
		return fmt.Sprintf("unknown command: %s (try help)", fields[0]), true
	}
}

func (s *session) defineCommand(args []string) (string, bool) {
	if len(args) == 0 {
		return "usage: class NAME [BASE ...]", true
	}
	name := args[0]

	var bases []*kin.Class
	for _, baseName := range args[1:] {
		base, err := s.resolveClass(baseName)
		if err != nil {
			return err.Error(), true
		}
		bases = append(bases, base)
	}

	cls, err := kin.Define(name, bases, kin.NewBody())
	if err != nil {
		return err.Error(), true
	}
	if err := s.rt.Register(cls); err != nil {
		return err.Error(), true
	}

	if len(args) > 1 {
		return fmt.Sprintf("defined %s (%s)", name, joinNames(args[1:])), false
	}
	return fmt.Sprintf("defined %s (Base)", name), false
}

func (s *session) memberCommand(args []string, override bool) (string, bool) {
	verb := "def"
	if override {
		verb = "override"
	}
	if len(args) != 3 {
		return fmt.Sprintf("usage: %s CLASS NAME KIND", verb), true
	}
	clsName, name, kindName := args[0], args[1], args[2]

	cls, ok := s.rt.LookupClass(clsName)
	if !ok {
		return fmt.Sprintf("unknown class %s", clsName), true
	}
	kind, err := kin.ParseMemberKind(kindName)
	if err != nil {
		return err.Error(), true
	}
	member, err := kin.NewStubMember(kind, name)
	if err != nil {
		return err.Error(), true
	}
	if override {
		if member, err = kin.Override(member); err != nil {
			return err.Error(), true
		}
	}

	if err := s.rt.SetAttr(kin.NewClass(cls), name, member); err != nil {
		return err.Error(), true
	}
	if override {
		return fmt.Sprintf("%s.%s: override verified (%s)", clsName, name, kind), false
	}
	return fmt.Sprintf("%s.%s: %s installed", clsName, name, kind), false
}

func (s *session) showCommand(args []string) (string, bool) {
	if len(args) != 1 {
		return "usage: show CLASS", true
	}
	cls, err := s.resolveClass(args[0])
	if err != nil {
		return err.Error(), true
	}

	var b strings.Builder
	baseNames := make([]string, len(cls.Bases))
	for i, base := range cls.Bases {
		baseNames[i] = base.Name
	}
	fmt.Fprintf(&b, "class %s (%s)", cls.Name, joinNames(baseNames))
	for _, name := range cls.Names() {
		member, _ := cls.Own(name)
		fmt.Fprintf(&b, "\n  %s: %s", name, kin.Inspect(member))
	}
	return b.String(), false
}

type historyEntry struct {
	input  string
	output string
	isErr  bool
}

type replModel struct {
	textInput   textinput.Model
	session     *session
	history     []historyEntry
	cmdHistory  []string
	historyIdx  int
	width       int
	height      int
	showHelp    bool
	quitting    bool
	initialized bool
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	CtrlC key.Binding
	CtrlD key.Binding
	CtrlL key.Binding
	Tab   key.Binding
	CtrlH key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "previous command"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "next command"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "execute"),
	),
	CtrlC: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	CtrlD: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "quit"),
	),
	CtrlL: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "autocomplete"),
	),
	CtrlH: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "toggle help"),
	),
}

func newREPLModel() replModel {
	ti := textinput.New()
	ti.Placeholder = "class Dog Animal"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.Prompt = "kin> "

	return replModel{
		textInput:  ti,
		session:    newSession(),
		history:    make([]historyEntry, 0),
		cmdHistory: make([]string, 0),
		historyIdx: -1,
	}
}

func (m replModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.EnterAltScreen)
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 10
		m.initialized = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.CtrlC), key.Matches(msg, keys.CtrlD):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.CtrlL):
			m.history = make([]historyEntry, 0)
			return m, nil

		case key.Matches(msg, keys.CtrlH):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, keys.Up):
			if len(m.cmdHistory) > 0 {
				if m.historyIdx == -1 {
					m.historyIdx = len(m.cmdHistory) - 1
				} else if m.historyIdx > 0 {
					m.historyIdx--
				}
				m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.historyIdx != -1 {
				if m.historyIdx < len(m.cmdHistory)-1 {
					m.historyIdx++
					m.textInput.SetValue(m.cmdHistory[m.historyIdx])
				} else {
					m.historyIdx = -1
					m.textInput.SetValue("")
				}
				m.textInput.CursorEnd()
			}
			return m, nil

		case key.Matches(msg, keys.Tab):
			m = m.handleAutocomplete()
			return m, nil

		case key.Matches(msg, keys.Enter):
			input := strings.TrimSpace(m.textInput.Value())
			if input == "" {
				return m, nil
			}

			if strings.HasPrefix(input, ":") {
				var cmd tea.Cmd
				m, cmd = m.handleCommand(input)
				m.textInput.SetValue("")
				m.historyIdx = -1
				return m, cmd
			}

			output, isErr := m.session.execute(input)
			m.history = append(m.history, historyEntry{
				input:  input,
				output: output,
				isErr:  isErr,
			})
			m.cmdHistory = append(m.cmdHistory, input)
			m.textInput.SetValue("")
			m.historyIdx = -1
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m replModel) handleCommand(input string) (replModel, tea.Cmd) {
	parts := strings.Fields(input)
	cmd := parts[0]

	switch cmd {
	case ":help", ":h":
		m.showHelp = !m.showHelp
	case ":clear", ":c":
		m.history = make([]historyEntry, 0)
	case ":reset", ":r":
		m.session = newSession()
		m.history = append(m.history, historyEntry{
			input:  input,
			output: "Hierarchy reset",
		})
	case ":quit", ":q":
		m.quitting = true
		return m, tea.Quit
	default:
		m.history = append(m.history, historyEntry{
			input:  input,
			output: fmt.Sprintf("Unknown command: %s", cmd),
			isErr:  true,
		})
	}
	return m, nil
}

func (m replModel) handleAutocomplete() replModel {
	input := m.textInput.Value()
	if input == "" {
		return m
	}

	words := strings.Fields(input)
	if len(words) == 0 {
		return m
	}
	lastWord := words[len(words)-1]

	var completions []string

	verbs := []string{"class", "def", "override", "show", "ls"}
	for _, v := range verbs {
		if strings.HasPrefix(v, lastWord) {
			completions = append(completions, v)
		}
	}

	kinds := []string{"function", "staticmethod", "method", "classmethod", "property"}
	for _, k := range kinds {
		if strings.HasPrefix(k, lastWord) {
			completions = append(completions, k)
		}
	}

	for _, name := range m.session.classNames() {
		if strings.HasPrefix(name, lastWord) {
			completions = append(completions, name)
		}
	}
	sort.Strings(completions)

	if len(completions) == 1 {
		prefix := strings.TrimSuffix(input, lastWord)
		m.textInput.SetValue(prefix + completions[0])
		m.textInput.CursorEnd()
	} else if len(completions) > 1 {
		m.history = append(m.history, historyEntry{
			output: "Completions: " + joinNames(completions),
		})
	}

	return m
}

func (m replModel) View() string {
	if !m.initialized {
		return "Loading..."
	}

	if m.quitting {
		return mutedStyle.Render("Goodbye!\n")
	}

	var b strings.Builder

	header := headerStyle.Render("Kindred REPL")
	version := mutedStyle.Render("v0.1.0")
	b.WriteString(header + " " + version + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", min(m.width-2, 60))) + "\n\n")

	reservedLines := 8
	if m.showHelp {
		reservedLines += 12
	}
	availableHeight := m.height - reservedLines

	historyStart := 0
	if len(m.history) > availableHeight {
		historyStart = len(m.history) - availableHeight
	}

	for i := historyStart; i < len(m.history); i++ {
		entry := m.history[i]
		if entry.input != "" {
			b.WriteString(mutedStyle.Render("  › ") + entry.input + "\n")
		}
		for _, line := range strings.Split(entry.output, "\n") {
			if entry.isErr {
				b.WriteString("  " + errorStyle.Render("✗ "+line) + "\n")
			} else {
				b.WriteString("  " + resultStyle.Render("→ "+line) + "\n")
			}
		}
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(renderHelpPanel())
		b.WriteString("\n")
	}

	b.WriteString(m.textInput.View() + "\n\n")

	footer := helpKeyStyle.Render("ctrl+k") + helpDescStyle.Render(" help  ") +
		helpKeyStyle.Render("ctrl+l") + helpDescStyle.Render(" clear  ") +
		helpKeyStyle.Render("ctrl+c") + helpDescStyle.Render(" quit")
	b.WriteString(footer)

	return b.String()
}

func renderHelpPanel() string {
	help := []struct {
		key  string
		desc string
	}{
		{"class NAME [BASE ...]", "define a class"},
		{"def CLASS NAME KIND", "install a member"},
		{"override CLASS NAME KIND", "install a member asserting it overrides"},
		{"show CLASS", "list a class's members"},
		{"ls", "list classes"},
		{":reset", "drop the hierarchy"},
		{":clear", "clear history"},
		{":quit", "exit"},
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Help"))
	for _, h := range help {
		line := fmt.Sprintf("  %s  %s",
			helpKeyStyle.Render(fmt.Sprintf("%-26s", h.key)),
			helpDescStyle.Render(h.desc))
		lines = append(lines, line)
	}

	return borderStyle.Render(strings.Join(lines, "\n"))
}

func runREPL() error {
	p := tea.NewProgram(newREPLModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
