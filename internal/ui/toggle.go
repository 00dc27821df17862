// Package ui implements the interactive probe toggler: flip sentinel
// presence and watch the guard table resolve live.
package ui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"hdrguard/internal/guard"
	"hdrguard/internal/render"
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Kernel key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Kernel, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Toggle, k.Kernel, k.Quit}}
}

var defaultKeys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle sentinel")),
	Kernel: key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "kernel mode")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	presentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	absentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	tableStyle    = lipgloss.NewStyle().MarginLeft(2)
	kernelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
)

// Model is the bubbletea model for the toggler.
type Model struct {
	probes   []guard.ProbeID
	set      guard.ProbeSet
	kernel   bool
	cursor   int
	keys     keyMap
	help     help.Model
	quitting bool
}

// NewModel starts with the given probes already present.
func NewModel(initial guard.ProbeSet) Model {
	return Model{
		probes: guard.Probes(),
		set:    initial,
		keys:   defaultKeys,
		help:   help.New(),
	}
}

// FinalProbes returns the probe set as of quit time.
func (m Model) FinalProbes() guard.ProbeSet { return m.set }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.probes)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if !m.kernel {
				p := m.probes[m.cursor]
				if m.set.Has(p) {
					m.set &^= 1 << p
				} else {
					m.set = m.set.With(p)
				}
			}
		case key.Matches(msg, m.keys.Kernel):
			m.kernel = !m.kernel
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("hdrguard — sentinel toggler"))
	sb.WriteString("\n\n")

	if m.kernel {
		sb.WriteString(kernelStyle.Render("kernel mode: every flag emits, probes ignored"))
		sb.WriteString("\n\n")
	}

	width := 0
	for _, p := range m.probes {
		if n := runewidth.StringWidth(p.Sentinel()); n > width {
			width = n
		}
	}
	for i, p := range m.probes {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		mark := absentStyle.Render("[ ]")
		if m.set.Has(p) {
			mark = presentStyle.Render("[x]")
		}
		label := fmt.Sprintf("%s %s", p.Sentinel()+strings.Repeat(" ", width-runewidth.StringWidth(p.Sentinel())), p.Header())
		if m.kernel {
			label = disabledStyle.Render(label)
		}
		sb.WriteString(fmt.Sprintf("%s%s %s\n", cursor, mark, label))
	}
	sb.WriteString("\n")

	env := guard.Env{Mode: guard.ModeUserspace, Probes: m.set}
	if m.kernel {
		env = guard.Env{Mode: guard.ModeKernel}
	}
	var table bytes.Buffer
	_ = render.WriteTable(&table, guard.Explain(env), render.TableOpts{})
	sb.WriteString(tableStyle.Render(strings.TrimRight(table.String(), "\n")))
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}
