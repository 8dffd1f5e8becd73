// Package assistant adapts a langchaingo chat model into the nutrition
// assistant port. The model gets the menu as context and answers customer
// questions in Brazilian Portuguese.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tmc/langchaingo/llms"

	"pratofit/internal/core/domain/model/catalog"
	"pratofit/internal/core/ports"
)

const promptPreamble = `Você é a Nutri IA do PratoFit, uma assistente virtual focada em alimentação saudável.
Você deve ser prestativa, amigável e especialista em nutrição.

Aqui está o cardápio do restaurante (Marmitas Congeladas):
%s

Seu objetivo é ajudar os clientes a escolherem suas refeições:
- Sugira pratos com base nas preferências (low carb, hipertrofia/proteico, sem glúten, comida caseira, etc.).
- Responda dúvidas sobre os ingredientes baseando-se nas descrições.
- Se o usuário pedir algo que não está no menu, sugira educadamente uma alternativa similar do cardápio.
- Seja breve, use emojis ocasionalmente e deixe a resposta apetitosa.
- Sempre cite valores em Reais (R$).
- Responda sempre em Português do Brasil.
`

// LangChainAssistant implements ports.ChatAssistant on top of any
// langchaingo chat model.
type LangChainAssistant struct {
	model        llms.Model
	systemPrompt string
}

// NewLangChainAssistant creates an assistant grounded on the given menu.
func NewLangChainAssistant(model llms.Model, cat *catalog.Catalog) (*LangChainAssistant, error) {
	prompt, err := systemPrompt(cat)
	if err != nil {
		return nil, err
	}

	return &LangChainAssistant{
		model:        model,
		systemPrompt: prompt,
	}, nil
}

// Reply sends the transcript and the new message to the model and returns
// its text answer.
func (a *LangChainAssistant) Reply(
	ctx context.Context,
	transcript []ports.ChatMessage,
	message string,
) (string, error) {
	content := make([]llms.MessageContent, 0, len(transcript)+2)
	content = append(content, llms.TextParts(llms.ChatMessageTypeSystem, a.systemPrompt))

	for _, entry := range transcript {
		role := llms.ChatMessageTypeHuman
		if entry.Role == ports.ChatRoleModel {
			role = llms.ChatMessageTypeAI
		}
		content = append(content, llms.TextParts(role, entry.Text))
	}

	content = append(content, llms.TextParts(llms.ChatMessageTypeHuman, message))

	response, err := a.model.GenerateContent(ctx, content, llms.WithTemperature(0.7))
	if err != nil {
		return "", err
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("model returned no choices")
	}

	return response.Choices[0].Content, nil
}

// menuEntry is the compact item shape embedded in the system prompt.
type menuEntry struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

func systemPrompt(cat *catalog.Catalog) (string, error) {
	entries := make([]menuEntry, 0, len(cat.Items()))
	for _, item := range cat.Items() {
		entries = append(entries, menuEntry{
			Name:        item.Title(),
			Description: item.Description(),
			Category:    item.Category(),
			Tags:        item.Tags(),
		})
	}

	menu, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(promptPreamble, menu), nil
}
