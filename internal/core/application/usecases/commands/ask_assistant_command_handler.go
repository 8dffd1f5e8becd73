package commands

import (
	"context"
	"log/slog"

	"pratofit/internal/core/ports"
)

// assistantApology is returned whenever the assistant backend cannot be
// reached; the chat keeps working with a degraded answer instead of an
// error.
const assistantApology = "Desculpe, estou tendo problemas para consultar o cardápio agora. Tente novamente em instantes."

// AskAssistantCommandHandler relays chat messages to the nutrition
// assistant. Backend failures never surface as errors: they are logged and
// replaced with a static apology so the chat UI stays functional.
type AskAssistantCommandHandler struct {
	assistant ports.ChatAssistant
	logger    *slog.Logger
}

// NewAskAssistantCommandHandler creates a handler for assistant chat. The
// assistant may be nil when no backend is configured; every question then
// gets the apology.
func NewAskAssistantCommandHandler(
	assistant ports.ChatAssistant,
	logger *slog.Logger,
) AskAssistantCommandHandler {
	return AskAssistantCommandHandler{assistant: assistant, logger: logger}
}

// Handle returns the assistant's reply, or the apology if the backend is
// unconfigured or failed.
func (h AskAssistantCommandHandler) Handle(
	ctx context.Context,
	cmd AskAssistantCommand,
) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	if h.assistant == nil {
		return assistantApology, nil
	}

	reply, err := h.assistant.Reply(ctx, cmd.Transcript(), cmd.Message())
	if err != nil {
		h.logger.WarnContext(ctx, "assistant backend failed", "error", err)
		return assistantApology, nil
	}

	return reply, nil
}
