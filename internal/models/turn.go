// Package models defines the chat data model shared by the relay and the TUI.
package models

// Role identifies the speaker of a Turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in a transcript. Turns are immutable once created
// and owned by the transcript that holds them.
type Turn struct {
	Role Role
	Text string
}

// NewUserTurn creates a user Turn.
func NewUserTurn(text string) Turn {
	return Turn{Role: RoleUser, Text: text}
}

// NewAssistantTurn creates an assistant Turn.
func NewAssistantTurn(text string) Turn {
	return Turn{Role: RoleAssistant, Text: text}
}
