package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/optistudy/internal/advisor"
	"github.com/alexanderramin/optistudy/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var chatQuitKey = key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit"))

const chatWelcome = "Hi! Ask me about your priorities, weakest subject, daily hours, exam tips, your schedule or motivation. /quit to leave."

// chatModel is a scrollback of advisor exchanges above a single input line.
type chatModel struct {
	ctx      context.Context
	app      *App
	input    textinput.Model
	messages []string
}

func newChatModel(ctx context.Context, app *App) chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500
	ti.Placeholder = "What should I focus on?"

	return chatModel{
		ctx:      ctx,
		app:      app,
		input:    ti,
		messages: []string{strings.TrimRight(formatter.FormatAnswer(&advisor.Answer{Lines: []string{chatWelcome}}), "\n")},
	}
}

func runChat(ctx context.Context, app *App) error {
	_, err := tea.NewProgram(newChatModel(ctx, app)).Run()
	return err
}

func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, chatQuitKey) {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter {
			input := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if input == "" {
				return m, nil
			}
			return m.handleInput(input)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) handleInput(input string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(input) {
	case "/quit", "/exit", "/q", "quit", "exit":
		return m, tea.Quit
	case "/clear":
		m.messages = nil
		return m, nil
	}

	m.messages = append(m.messages, formatter.Dim("You: ")+input)
	answer, err := m.app.Advisor.Ask(m.ctx, input, m.app.now())
	if err != nil {
		m.messages = append(m.messages, formatter.StyleRed.Render("Error: "+err.Error()))
		return m, nil
	}
	m.messages = append(m.messages, strings.TrimRight(formatter.FormatAnswer(answer), "\n"))
	return m, nil
}

func (m chatModel) View() string {
	var b strings.Builder
	for _, msg := range m.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}
	b.WriteString(formatter.StylePurple.Render("ask") + formatter.Dim("> "))
	b.WriteString(m.input.View())
	b.WriteString("\n" + formatter.Dim("esc to quit"))
	return b.String()
}
