// Package translate wraps the OpenAI client used for TR/EN content
// translation in the admin panel.
package translate

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/clbasaran/backend-ozmevsim/types"
)

type Service struct {
	client *openai.Client
	model  string
}

func NewService(apiKey string) *Service {
	return &Service{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4oMini,
	}
}

var languageNames = map[string]string{
	"tr": "Turkish",
	"en": "English",
}

func (s *Service) Translate(ctx context.Context, request types.TranslateRequest) (types.TranslateResponse, error) {
	var response types.TranslateResponse

	source := languageNames[request.SourceLanguage]
	target := languageNames[request.TargetLanguage]

	systemPrompt := fmt.Sprintf(
		"You are a professional translator for a heating and cooling services company. "+
			"Translate the user's text from %s to %s. Preserve any HTML markup exactly. "+
			"Return only the translated text with no extra commentary.",
		source, target,
	)

	completion, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: request.Text},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return response, fmt.Errorf("translation request failed: %w", err)
	}

	if len(completion.Choices) == 0 {
		return response, fmt.Errorf("translation returned no choices")
	}

	return types.TranslateResponse{
		TranslatedText: strings.TrimSpace(completion.Choices[0].Message.Content),
		SourceLanguage: request.SourceLanguage,
		TargetLanguage: request.TargetLanguage,
	}, nil
}
