package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	apierrors "github.com/diogo/vertexchat/internal/errors"
	"github.com/diogo/vertexchat/internal/models"
)

// fakeSender is a scriptable Sender for tests.
type fakeSender struct {
	reply string
	err   error
	calls int
	last  string
}

func (f *fakeSender) Send(_ context.Context, message string) (string, error) {
	f.calls++
	f.last = message
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

const testGreeting = "Hello! How can I help you today?"

func newReadyModel(s Sender) Model {
	m := NewModel(s, "gemini-2.0-flash", testGreeting)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func TestNewModel_SeedsGreeting(t *testing.T) {
	m := NewModel(&fakeSender{}, "m", testGreeting)

	turns := m.Transcript().Turns()
	if len(turns) != 1 {
		t.Fatalf("transcript starts with %d turns, want 1", len(turns))
	}
	if turns[0].Role != models.RoleAssistant || turns[0].Text != testGreeting {
		t.Errorf("seeded turn = {%s %q}", turns[0].Role, turns[0].Text)
	}
	if m.Loading() {
		t.Error("new model must start Idle")
	}
}

func TestSubmit_BlankIsNoOp(t *testing.T) {
	tests := []string{"", "   ", "\t\n"}

	for _, input := range tests {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			sender := &fakeSender{}
			m := newReadyModel(sender)
			m.textarea.SetValue(input)

			updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			got := updated.(Model)

			if got.Transcript().Len() != 1 {
				t.Errorf("transcript grew to %d turns on blank submit", got.Transcript().Len())
			}
			if got.Loading() {
				t.Error("blank submit must not enter Awaiting-Reply")
			}
			if sender.calls != 0 {
				t.Errorf("blank submit issued %d relay calls", sender.calls)
			}
		})
	}
}

func TestSubmit_WhileAwaitingReplyIsNoOp(t *testing.T) {
	sender := &fakeSender{reply: "first reply"}
	m := newReadyModel(sender)

	got, _ := m.submit("first")
	if !got.Loading() {
		t.Fatal("expected Awaiting-Reply after submit")
	}

	before := got.Transcript().Len()
	again, cmd := got.submit("second")
	if again.Transcript().Len() != before {
		t.Error("submit while Awaiting-Reply appended a turn")
	}
	if cmd != nil {
		t.Error("submit while Awaiting-Reply returned a command")
	}
	if sender.calls != 0 {
		// sender.calls counts executed commands; the first submit's
		// command has not been run yet.
		t.Errorf("unexpected relay calls: %d", sender.calls)
	}
}

func TestSubmit_AppendsUserTurnAndStartsCall(t *testing.T) {
	sender := &fakeSender{reply: "the reply"}
	m := newReadyModel(sender)

	got, cmd := m.submit("hello")
	if cmd == nil {
		t.Fatal("submit returned no command")
	}
	if !got.Loading() {
		t.Error("expected Awaiting-Reply")
	}

	last, _ := got.Transcript().Last()
	if last.Role != models.RoleUser || last.Text != "hello" {
		t.Errorf("last turn = {%s %q}, want user turn", last.Role, last.Text)
	}
	if got.textarea.Value() != "" {
		t.Errorf("input not cleared: %q", got.textarea.Value())
	}
}

func TestSendCmd_SuccessProducesReplyMsg(t *testing.T) {
	sender := &fakeSender{reply: "provider text"}
	m := newReadyModel(sender)

	msg := m.sendCmd("hello")()
	reply, ok := msg.(replyMsg)
	if !ok {
		t.Fatalf("sendCmd produced %T, want replyMsg", msg)
	}
	if reply.text != "provider text" {
		t.Errorf("reply text = %q", reply.text)
	}
	if sender.last != "hello" {
		t.Errorf("sender got %q", sender.last)
	}
}

func TestSendCmd_TransportFailureProducesSendFailedMsg(t *testing.T) {
	sender := &fakeSender{err: fmt.Errorf("POST: %w", apierrors.ErrRelayUnreachable)}
	m := newReadyModel(sender)

	msg := m.sendCmd("hello")()
	if _, ok := msg.(sendFailedMsg); !ok {
		t.Fatalf("sendCmd produced %T, want sendFailedMsg", msg)
	}
}

func TestUpdate_ReplyReturnsToIdle(t *testing.T) {
	m := newReadyModel(&fakeSender{})
	m.loading = true
	m.transcript.Append(models.NewUserTurn("hello"))

	updated, _ := m.Update(replyMsg{text: "the answer"})
	got := updated.(Model)

	if got.Loading() {
		t.Error("model must return to Idle after a reply")
	}
	last, _ := got.Transcript().Last()
	if last.Role != models.RoleAssistant || last.Text != "the answer" {
		t.Errorf("last turn = {%s %q}", last.Role, last.Text)
	}
}

func TestUpdate_SendFailureAppendsFixedMessage(t *testing.T) {
	m := newReadyModel(&fakeSender{})
	m.loading = true
	m.transcript.Append(models.NewUserTurn("hi"))

	updated, _ := m.Update(sendFailedMsg{err: errors.New("connection refused")})
	got := updated.(Model)

	if got.Loading() {
		t.Error("model must return to Idle after a transport failure")
	}
	last, _ := got.Transcript().Last()
	if last.Text != ConnectionErrorText {
		t.Errorf("last turn = %q, want fixed connection-error message", last.Text)
	}
}

func TestScenario_SuccessfulExchange(t *testing.T) {
	sender := &fakeSender{reply: "provider text"}
	m := newReadyModel(sender)

	got, _ := m.submit("hello")
	msg := got.sendCmd("hello")()
	updated, _ := got.Update(msg)
	final := updated.(Model)

	turns := final.Transcript().Turns()
	want := []models.Turn{
		{Role: models.RoleAssistant, Text: testGreeting},
		{Role: models.RoleUser, Text: "hello"},
		{Role: models.RoleAssistant, Text: "provider text"},
	}
	if len(turns) != len(want) {
		t.Fatalf("transcript has %d turns, want %d", len(turns), len(want))
	}
	for i := range want {
		if turns[i] != want[i] {
			t.Errorf("turn[%d] = %+v, want %+v", i, turns[i], want[i])
		}
	}
	if final.Loading() {
		t.Error("final state must be Idle")
	}
}

func TestScenario_ProviderFailureExchange(t *testing.T) {
	// Provider failures arrive as ordinary reply content.
	sender := &fakeSender{reply: "AI Error: quota exceeded"}
	m := newReadyModel(sender)

	got, _ := m.submit("hi")
	msg := got.sendCmd("hi")()
	updated, _ := got.Update(msg)
	final := updated.(Model)

	last, _ := final.Transcript().Last()
	if last.Role != models.RoleAssistant || last.Text != "AI Error: quota exceeded" {
		t.Errorf("last turn = {%s %q}", last.Role, last.Text)
	}
	if final.Loading() {
		t.Error("final state must be Idle")
	}
}

func TestScenario_RelayDown(t *testing.T) {
	sender := &fakeSender{err: apierrors.ErrRelayUnreachable}
	m := newReadyModel(sender)

	got, _ := m.submit("hi")
	msg := got.sendCmd("hi")()
	updated, _ := got.Update(msg)
	final := updated.(Model)

	last, _ := final.Transcript().Last()
	if last.Text != ConnectionErrorText {
		t.Errorf("last turn = %q, want %q", last.Text, ConnectionErrorText)
	}
	if final.Loading() {
		t.Error("final state must be Idle")
	}
}

func TestView_DoesNotPanicBeforeReady(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("View panicked: %v", r)
		}
	}()

	m := NewModel(&fakeSender{}, "m", testGreeting)
	_ = m.View()
}

func TestViewport_ScrollsToBottomOnAppend(t *testing.T) {
	m := newReadyModel(&fakeSender{})
	for i := 0; i < 50; i++ {
		m.transcript.Append(models.NewUserTurn(fmt.Sprintf("line %d", i)))
	}
	m.syncViewport()

	if !m.viewport.AtBottom() {
		t.Error("viewport should be scrolled to the newest turn")
	}
}
