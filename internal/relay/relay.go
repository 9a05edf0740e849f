// Package relay implements the stateless pass-through between the chat
// surface and the external text-generation provider.
package relay

import (
	"context"

	"github.com/rs/zerolog"

	apierrors "github.com/diogo/vertexchat/internal/errors"
	"github.com/diogo/vertexchat/internal/provider"
)

// ErrorPrefix marks a flattened provider failure in a reply string.
// Clients render it as ordinary assistant content.
const ErrorPrefix = "AI Error: "

// Reply is the tagged result of one relay call. Exactly one of Text or
// Err is meaningful: Err == nil means Text holds the provider's output
// verbatim.
type Reply struct {
	Text string
	Err  error
}

// OK reports whether the provider call succeeded.
func (r Reply) OK() bool {
	return r.Err == nil
}

// Flatten renders the reply as a single user-displayable string. On
// failure the detail is prefixed with ErrorPrefix, matching the wire
// contract where failures travel as ordinary content.
func (r Reply) Flatten() string {
	if r.Err != nil {
		return ErrorPrefix + r.Err.Error()
	}
	return r.Text
}

// Service answers chat messages by delegating to a Generator. It holds
// no per-request state and is safe for concurrent use.
type Service struct {
	gen provider.Generator
	log zerolog.Logger
}

// NewService creates a relay Service on top of gen.
func NewService(gen provider.Generator, log zerolog.Logger) *Service {
	return &Service{gen: gen, log: log}
}

// Answer forwards message to the provider and never propagates a
// failure to the caller: the returned Reply always flattens to
// something displayable. Blank messages are forwarded as-is; filtering
// them is the caller's job.
func (s *Service) Answer(ctx context.Context, message string) Reply {
	text, err := s.gen.Generate(ctx, message)
	if err != nil {
		s.log.Warn().
			Err(err).
			Str("kind", string(apierrors.ProviderKind(err))).
			Int("message_len", len(message)).
			Msg("provider call failed")
		return Reply{Err: err}
	}

	s.log.Debug().
		Int("message_len", len(message)).
		Int("reply_len", len(text)).
		Msg("provider call succeeded")
	return Reply{Text: text}
}
