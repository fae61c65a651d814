// README: Chat session: ordered transcript, full-history round trips.
package chat

import (
	"context"
	"errors"
	"strings"
	"sync"

	"tripwise/internal/ai"
)

var ErrEmptyMessage = errors.New("empty message")

// Session owns the ordered transcript of one assistant conversation.
// The transcript is append-only and lives for the process session; the
// whole history is resent to the model on every turn, so context grows
// with conversation length. That is accepted for a single-user tool.
type Session struct {
	mu         sync.Mutex
	provider   ai.Provider
	transcript []ai.Message
}

// NewSession creates an empty session backed by the given provider.
// One instance is created at server start and discarded at shutdown.
func NewSession(provider ai.Provider) *Session {
	return &Session{provider: provider}
}

// Send appends the user message, round-trips the full transcript through
// the model, appends the assistant reply, and returns it. On a provider
// error the user message is rolled back so a failed turn leaves the
// transcript exactly as it was.
func (s *Session) Send(ctx context.Context, userText string) (string, error) {
	if strings.TrimSpace(userText) == "" {
		return "", ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcript = append(s.transcript, ai.Message{Role: ai.RoleUser, Content: userText})

	reply, err := s.provider.Generate(ctx, s.transcript)
	if err != nil {
		s.transcript = s.transcript[:len(s.transcript)-1]
		return "", err
	}

	s.transcript = append(s.transcript, ai.Message{Role: ai.RoleAssistant, Content: reply})
	return reply, nil
}

// Transcript returns a copy of the conversation so far, in send/receive order.
func (s *Session) Transcript() []ai.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]ai.Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}
