package models

// Transcript is the ordered, append-only history of Turns for one
// session. It always starts with a seeded assistant greeting.
type Transcript struct {
	turns []Turn
}

// NewTranscript creates a transcript seeded with an assistant greeting.
func NewTranscript(greeting string) *Transcript {
	return &Transcript{
		turns: []Turn{NewAssistantTurn(greeting)},
	}
}

// Append adds a Turn to the end of the transcript.
func (t *Transcript) Append(turn Turn) {
	t.turns = append(t.turns, turn)
}

// Turns returns a copy of the transcript contents in insertion order.
func (t *Transcript) Turns() []Turn {
	out := make([]Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

// Len returns the number of Turns in the transcript.
func (t *Transcript) Len() int {
	return len(t.turns)
}

// Last returns the most recent Turn. The boolean is false only for a
// zero-value transcript with no seeded greeting.
func (t *Transcript) Last() (Turn, bool) {
	if len(t.turns) == 0 {
		return Turn{}, false
	}
	return t.turns[len(t.turns)-1], true
}
