package commands

import (
	"errors"
	"strings"

	"pratofit/internal/core/ports"
	"pratofit/internal/pkg/guard"
)

var (
	ErrAskAssistantCommandIsNotConstructed = errors.New(
		"AskAssistantCommand must be created via NewAskAssistantCommand constructor",
	)
	ErrMessageIsRequired = errors.New("message is required")
)

// AskAssistantCommand sends a customer message to the nutrition assistant
// together with the visible transcript so far. The transcript is owned by
// the caller; the server keeps no chat state.
type AskAssistantCommand struct { //nolint:recvcheck //using for validation
	transcript []ports.ChatMessage
	message    string

	guard guard.ConstructorGuard
}

// NewAskAssistantCommand creates a command to ask the nutrition assistant.
// Validates that the message is not blank; the transcript may be empty.
func NewAskAssistantCommand(
	transcript []ports.ChatMessage,
	message string,
) (AskAssistantCommand, error) {
	cmd := AskAssistantCommand{
		transcript: transcript,
		guard:      guard.NewConstructorGuard(),
	}

	if err := cmd.setMessage(message); err != nil {
		return AskAssistantCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAskAssistantCommandIsNotConstructed if validation fails.
func (c AskAssistantCommand) Validate() error {
	return c.guard.Validate(ErrAskAssistantCommandIsNotConstructed)
}

// Transcript returns the prior conversation in display order.
func (c AskAssistantCommand) Transcript() []ports.ChatMessage {
	return c.transcript
}

// Message returns the new customer message.
func (c AskAssistantCommand) Message() string {
	return c.message
}

func (c *AskAssistantCommand) setMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrMessageIsRequired
	}

	c.message = message
	return nil
}
