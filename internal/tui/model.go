// Package tui implements the interactive chat client.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/vertexchat/internal/models"
	"github.com/diogo/vertexchat/internal/relay"
	"github.com/diogo/vertexchat/internal/render"
)

// ConnectionErrorText is the fixed assistant turn shown when the relay
// cannot be reached at all.
const ConnectionErrorText = "Could not connect to the chat service. Please try again."

// Sender delivers one message to the relay and returns the reply text.
// A returned error means the exchange itself failed; flattened provider
// failures come back as ordinary reply text.
type Sender interface {
	Send(ctx context.Context, message string) (string, error)
}

// Message types for the TUI
type (
	replyMsg struct {
		text string
	}
	sendFailedMsg struct {
		err error
	}
)

// Model is the chat client state machine. It is Idle when loading is
// false and Awaiting-Reply when true; the flag gates submission so at
// most one relay call is in flight.
type Model struct {
	sender     Sender
	modelName  string
	transcript *models.Transcript

	// UI components
	viewport viewport.Model
	textarea textarea.Model
	spinner  spinner.Model

	// State
	loading bool
	ready   bool

	// Dimensions
	width  int
	height int
}

// NewModel creates a chat model with a transcript seeded by greeting.
func NewModel(sender Sender, modelName, greeting string) Model {
	ta := textarea.New()
	ta.Placeholder = "Type your message here..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(colorText)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(colorTextDim)
	ta.BlurredStyle = ta.FocusedStyle

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	return Model{
		sender:     sender,
		modelName:  modelName,
		transcript: models.NewTranscript(greeting),
		textarea:   ta,
		spinner:    s,
	}
}

// Transcript exposes the transcript, mainly for tests.
func (m Model) Transcript() *models.Transcript {
	return m.transcript
}

// Loading reports whether a relay call is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2
		inputHeight := 5
		statusHeight := 1

		vpHeight := m.height - headerHeight - inputHeight - statusHeight
		if vpHeight < 5 {
			vpHeight = 5
		}
		contentWidth := m.width - 4

		if !m.ready {
			m.viewport = viewport.New(contentWidth, vpHeight)
			m.textarea.SetWidth(contentWidth - 4)
			m.ready = true
		} else {
			m.viewport.Width = contentWidth
			m.viewport.Height = vpHeight
			m.textarea.SetWidth(contentWidth - 4)
		}
		m.syncViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			input := strings.TrimSpace(m.textarea.Value())
			if input == "exit" || input == "quit" {
				return m, tea.Quit
			}
			return m.submit(input)
		}

	case replyMsg:
		// Success and flattened provider failures look the same here.
		m.loading = false
		m.transcript.Append(models.NewAssistantTurn(msg.text))
		m.syncViewport()

	case sendFailedMsg:
		m.loading = false
		m.transcript.Append(models.NewAssistantTurn(ConnectionErrorText))
		m.syncViewport()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// Only pass key events to the textarea, and never while a request
	// is in flight.
	if !m.loading {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// submit starts a relay call for input. Blank input and submission
// while Awaiting-Reply are no-ops.
func (m Model) submit(input string) (Model, tea.Cmd) {
	if input == "" || m.loading {
		return m, nil
	}

	m.transcript.Append(models.NewUserTurn(input))
	m.textarea.Reset()
	m.loading = true
	m.syncViewport()

	return m, tea.Batch(
		m.sendCmd(input),
		m.spinner.Tick,
	)
}

// sendCmd issues the relay call off the UI loop.
func (m Model) sendCmd(message string) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.sender.Send(context.Background(), message)
		if err != nil {
			return sendFailedMsg{err: err}
		}
		return replyMsg{text: reply}
	}
}

// syncViewport refreshes the rendered transcript and scrolls to the
// newest turn.
func (m *Model) syncViewport() {
	if !m.ready {
		return
	}

	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6

	for i, turn := range m.transcript.Turns() {
		if i > 0 {
			content.WriteString("\n")
		}

		if turn.Role == models.RoleUser {
			label := userLabelStyle.Render("⬤ You")
			bubble := userBubbleStyle.Width(bubbleWidth).Render(turn.Text)
			content.WriteString(label + "\n" + bubble)
		} else {
			label := assistantLabelStyle.Render("✦ Assistant")

			rendered := turn.Text
			if strings.HasPrefix(turn.Text, relay.ErrorPrefix) || turn.Text == ConnectionErrorText {
				rendered = errorStyle.Render(turn.Text)
			} else if md, err := render.MarkdownWithWidth(turn.Text, bubbleWidth-4); err == nil {
				rendered = strings.TrimRight(md, "\n")
			}

			bubble := assistantBubbleStyle.Width(bubbleWidth).Render(rendered)
			content.WriteString(label + "\n" + bubble)
		}
		content.WriteString("\n")
	}

	if m.loading {
		content.WriteString("\n" + loadingStyle.Render(m.spinner.View()+" thinking..."))
	}

	m.viewport.SetContent(content.String())
	m.viewport.GotoBottom()
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	contentWidth := m.width - 4
	var sections []string

	header := headerStyle.Width(contentWidth).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Center,
			titleStyle.Render("✦ Chat"),
			hintStyle.Render("  •  "),
			subtitleStyle.Render(m.modelName),
		),
	)
	sections = append(sections, header)

	sections = append(sections, messagesAreaStyle.
		Width(contentWidth).
		Height(m.viewport.Height).
		Render(m.viewport.View()))

	var inputContent string
	if m.loading {
		inputContent = loadingStyle.Render(m.spinner.View() + " waiting for reply...")
	} else {
		inputContent = lipgloss.JoinVertical(
			lipgloss.Left,
			inputLabelStyle.Render("You"),
			m.textarea.View(),
		)
	}
	sections = append(sections, inputPanelStyle.Width(contentWidth).Render(inputContent))

	sections = append(sections, m.renderStatusBar(contentWidth))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderStatusBar renders the bottom status bar with shortcuts
func (m Model) renderStatusBar(width int) string {
	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"Esc", "Quit"},
		{"↑↓", "Scroll"},
	}

	var items []string
	for _, s := range shortcuts {
		items = append(items, statusKeyStyle.Render(s.key)+statusDescStyle.Render(" "+s.desc))
	}

	return statusBarStyle.Width(width).Align(lipgloss.Center).
		Render(strings.Join(items, "  │  "))
}

// Run starts the chat TUI against sender.
func Run(sender Sender, modelName, greeting string) error {
	m := NewModel(sender, modelName, greeting)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
