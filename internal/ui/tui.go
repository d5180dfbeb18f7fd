// Package ui renders a console session and forwards user input to it.
package ui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/conn-castle/console/internal/messages"
	"github.com/conn-castle/console/internal/terminal"
)

// Session is the engine surface the presentation layer drives.
type Session interface {
	Execute(ctx context.Context, commandLine string) string
	Content() string
	Prompt() string
}

type keyMap struct {
	Submit   key.Binding
	Quit     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit:   key.NewBinding(key.WithKeys("enter")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"), key.WithHelp("ctrl+c", messages.TUIHelpQuit)),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
	}
}

// executedMsg carries the result of an Execute call back to the update loop.
type executedMsg struct {
	output string
}

// model is the Bubble Tea model for the full-screen console.
// While busy is set the session is executing on a worker goroutine and the
// model does not touch it, which keeps calls into the session serialized.
type model struct {
	ctx     context.Context
	session Session
	input   textinput.Model
	view    viewport.Model
	keys    keyMap
	busy    bool
}

var terminalSize = func() (int, int, bool) { return terminal.Size(os.Stdout) }

func newModel(ctx context.Context, session Session) model {
	width, height := 80, 24
	if w, h, ok := terminalSize(); ok {
		width, height = w, h
	}
	input := textinput.New()
	input.Focus()
	m := model{
		ctx:     ctx,
		session: session,
		input:   input,
		view:    viewport.New(width, max(height-1, 1)),
		keys:    defaultKeyMap(),
	}
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.view.Width = msg.Width
		m.view.Height = max(msg.Height-1, 1)
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 1)
		m.refresh()
		return m, nil
	case executedMsg:
		m.busy = false
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			if m.busy {
				return m, nil
			}
			line := m.input.Value()
			m.input.Reset()
			m.busy = true
			return m, m.execute(line)
		case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
			var cmd tea.Cmd
			m.view, cmd = m.view.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execute runs the blocking session call off the update loop.
func (m model) execute(line string) tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return executedMsg{output: session.Execute(ctx, line)}
	}
}

// refresh copies the session transcript into the viewport and the prompt into the input.
func (m *model) refresh() {
	content := m.session.Content()
	prompt := m.session.Prompt()
	m.input.Prompt = prompt
	m.view.SetContent(strings.TrimSuffix(strings.TrimSuffix(content, prompt), "\n"))
	m.view.GotoBottom()
}

func (m model) View() string {
	if m.busy {
		return fmt.Sprintf("%s\n%s%s", m.view.View(), m.input.Prompt, messages.TUIBusy)
	}
	return m.view.View() + "\n" + m.input.View()
}

var runProgramFunc = func(p *tea.Program) (tea.Model, error) { return p.Run() }

// RunTUI drives session with a full-screen terminal UI until the user quits.
func RunTUI(ctx context.Context, session Session, opts ...tea.ProgramOption) error {
	options := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(newModel(ctx, session), options...)
	if _, err := runProgramFunc(p); err != nil {
		return fmt.Errorf(messages.TUIFailedFmt, err)
	}
	return nil
}
