package cli

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/optistudy/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
)

type focusKeys struct {
	Pause  key.Binding
	Finish key.Binding
	Cancel key.Binding
}

func (k focusKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Finish, k.Cancel}
}

func (k focusKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultFocusKeys = focusKeys{
	Pause:  key.NewBinding(key.WithKeys("space", " ", "p"), key.WithHelp("space", "pause/resume")),
	Finish: key.NewBinding(key.WithKeys("enter", "q"), key.WithHelp("enter", "finish & log")),
	Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "discard")),
}

// focusModel is a stopwatch for one chapter study session.
type focusModel struct {
	subject   string
	chapter   string
	watch     stopwatch.Model
	keys      focusKeys
	help      help.Model
	done      bool
	cancelled bool
}

func newFocusModel(subject, chapter string) focusModel {
	return focusModel{
		subject: subject,
		chapter: chapter,
		watch:   stopwatch.NewWithInterval(time.Second),
		keys:    defaultFocusKeys,
		help:    help.New(),
	}
}

// Minutes rounds the elapsed time up so a partial minute still counts.
func (m focusModel) Minutes() int {
	return int(math.Ceil(m.watch.Elapsed().Minutes()))
}

func (m focusModel) Init() tea.Cmd {
	return m.watch.Init()
}

func (m focusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Finish):
			m.done = true
			return m, tea.Sequence(m.watch.Stop(), tea.Quit)
		case key.Matches(msg, m.keys.Pause):
			return m, m.watch.Toggle()
		}
	}

	var cmd tea.Cmd
	m.watch, cmd = m.watch.Update(msg)
	return m, cmd
}

func (m focusModel) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", formatter.StyleHeader.Render("FOCUS"), formatter.Bold(m.subject+" · "+m.chapter))

	state := formatter.StyleGreen.Render("● running")
	if !m.watch.Running() {
		state = formatter.StyleYellow.Render("‖ paused")
	}
	fmt.Fprintf(&b, "  %s  %s\n\n", formatter.StyleBold.Render(m.watch.View()), state)
	if !m.done {
		b.WriteString("  " + m.help.View(m.keys) + "\n")
	}
	return b.String()
}
