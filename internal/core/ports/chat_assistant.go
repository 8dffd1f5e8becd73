package ports

import "context"

// ChatRole identifies who produced a transcript entry.
type ChatRole string

const (
	// ChatRoleUser marks a customer message.
	ChatRoleUser ChatRole = "user"

	// ChatRoleModel marks an assistant reply.
	ChatRoleModel ChatRole = "model"
)

// ChatMessage is one entry of the visible chat transcript.
type ChatMessage struct {
	Role ChatRole
	Text string
}

// ChatAssistant defines the outbound contract for the nutrition assistant:
// a stateless pass-through to a text-completion service. The caller sends
// the prior transcript plus the new message and gets plain text back; any
// failure degrades to a static apology upstream, so consumers must work
// even if this call always fails.
type ChatAssistant interface {
	// Reply produces the assistant's answer to message given the prior
	// transcript.
	Reply(ctx context.Context, transcript []ChatMessage, message string) (string, error)
}
