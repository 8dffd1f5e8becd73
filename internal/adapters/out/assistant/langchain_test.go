package assistant_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"

	"pratofit/internal/adapters/out/assistant"
	"pratofit/internal/adapters/out/staticdata"
	"pratofit/internal/core/ports"
)

type fakeModel struct {
	received []llms.MessageContent
	reply    string
	err      error
}

func (f *fakeModel) GenerateContent(
	_ context.Context,
	messages []llms.MessageContent,
	_ ...llms.CallOption,
) (*llms.ContentResponse, error) {
	f.received = messages
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.reply}},
	}, nil
}

func (f *fakeModel) Call(_ context.Context, _ string, _ ...llms.CallOption) (string, error) {
	return "", errors.New("not implemented")
}

func TestLangChainAssistant_Reply(t *testing.T) {
	cat, err := staticdata.NewCatalog()
	require.NoError(t, err)

	model := &fakeModel{reply: "Experimente o Rubacão Fit! 🥗"}
	a, err := assistant.NewLangChainAssistant(model, cat)
	require.NoError(t, err)

	transcript := []ports.ChatMessage{
		{Role: ports.ChatRoleUser, Text: "oi"},
		{Role: ports.ChatRoleModel, Text: "Olá!"},
	}

	reply, err := a.Reply(t.Context(), transcript, "algo nordestino?")
	require.NoError(t, err)
	assert.Equal(t, "Experimente o Rubacão Fit! 🥗", reply)

	// system prompt + 2 transcript entries + new message
	require.Len(t, model.received, 4)
	assert.Equal(t, llms.ChatMessageTypeSystem, model.received[0].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, model.received[1].Role)
	assert.Equal(t, llms.ChatMessageTypeAI, model.received[2].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, model.received[3].Role)
}

func TestLangChainAssistant_Reply_ModelError(t *testing.T) {
	cat, err := staticdata.NewCatalog()
	require.NoError(t, err)

	model := &fakeModel{err: errors.New("rate limited")}
	a, err := assistant.NewLangChainAssistant(model, cat)
	require.NoError(t, err)

	_, err = a.Reply(t.Context(), nil, "oi")
	require.Error(t, err)
}

func TestLangChainAssistant_SystemPromptCarriesMenu(t *testing.T) {
	cat, err := staticdata.NewCatalog()
	require.NoError(t, err)

	model := &fakeModel{reply: "ok"}
	a, err := assistant.NewLangChainAssistant(model, cat)
	require.NoError(t, err)

	_, err = a.Reply(t.Context(), nil, "oi")
	require.NoError(t, err)

	system := model.received[0]
	require.Len(t, system.Parts, 1)
	text, ok := system.Parts[0].(llms.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "Nutri IA do PratoFit")
	assert.Contains(t, text.Text, "Bobó de Frango")
}
