package ai

import "context"

// Role tags a message in a conversation.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a conversation sent to the model.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Provider defines the contract for interacting with a text-generation model.
// This interface allows swapping providers (OpenAI, Gemini) without touching
// the trip or chat modules.
type Provider interface {
	// Generate sends the ordered messages to the model and returns the
	// assistant reply verbatim. A single-element slice is a one-shot prompt;
	// a longer slice is a chat transcript.
	Generate(ctx context.Context, messages []Message) (string, error)
}
