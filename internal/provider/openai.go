package provider

import (
	"context"
	"encoding/json"
	"net/http"

	"poi-api/internal/apperr"
	"poi-api/internal/config"
	"poi-api/internal/models"
	"poi-api/internal/prompt"

	"github.com/go-resty/resty/v2"
)

const (
	openAIName      = "openai"
	openAIMaxTokens = 4096
)

// OpenAI talks to the chat completions endpoint for both text and vision prompts.
type OpenAI struct {
	client      *resty.Client
	textModel   string
	visionModel string
}

// NewOpenAI creates an OpenAI adapter authenticated with the configured API key.
func NewOpenAI(cfg *config.Config) *OpenAI {
	client := newClient(cfg.OpenAIBaseURL, cfg.ProviderTimeout)
	client.SetAuthToken(cfg.OpenAIAPIKey)
	return &OpenAI{
		client:      client,
		textModel:   cfg.OpenAITextModel,
		visionModel: cfg.OpenAIVisionModel,
	}
}

func (o *OpenAI) Name() string {
	return openAIName
}

type openAIPayload struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
}

// openAIMessage content is either a plain string or a list of typed parts.
type openAIMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type openAIPart struct {
	Type     string          `json:"type"`
	Text     string          `json:"text,omitempty"`
	ImageURL *openAIImageURL `json:"image_url,omitempty"`
}

type openAIImageURL struct {
	URL string `json:"url"`
}

type openAICompletion struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string          `json:"role"`
			Content json.RawMessage `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// assistantText returns the plain-text content of the assistant turn.
func (c *openAICompletion) assistantText(op string) (string, error) {
	for _, choice := range c.Choices {
		if choice.Message.Role != "assistant" {
			continue
		}
		content := choice.Message.Content
		if len(content) == 0 || string(content) == "null" {
			return "", apperr.NoAssistantContent(op)
		}
		var text string
		if err := json.Unmarshal(content, &text); err != nil {
			// multi-part content is not usable as a completion
			return "", apperr.NoAssistantContent(op)
		}
		return text, nil
	}
	return "", apperr.NoAssistantContent(op)
}

// TextComplete sends p as the system message and message as the user turn.
func (o *OpenAI) TextComplete(ctx context.Context, p prompt.Prompt, message string) (string, error) {
	payload := openAIPayload{
		Model: o.textModel,
		Messages: []openAIMessage{
			{Role: "system", Content: p.Text()},
			{Role: "user", Content: message},
		},
		Temperature: 1,
		MaxTokens:   openAIMaxTokens,
	}
	return o.chat(ctx, "completion", payload)
}

// VisionComplete sends p and the image as one multi-part user turn.
func (o *OpenAI) VisionComplete(ctx context.Context, p prompt.Prompt, image models.ImagePayload) (string, error) {
	payload := openAIPayload{
		Model: o.visionModel,
		Messages: []openAIMessage{
			{Role: "user", Content: []openAIPart{
				{Type: "text", Text: p.Text()},
				{Type: "image_url", ImageURL: &openAIImageURL{URL: image.DataURL()}},
			}},
		},
		Temperature: 1,
		MaxTokens:   openAIMaxTokens,
	}
	return o.chat(ctx, "visual", payload)
}

func (o *OpenAI) chat(ctx context.Context, op string, payload openAIPayload) (string, error) {
	var completion openAICompletion
	req := o.client.R().SetBody(payload)
	if err := exchange(ctx, openAIName, op, req, http.MethodPost, "/chat/completions", &completion); err != nil {
		return "", err
	}
	return completion.assistantText(openAIName + "." + op)
}
