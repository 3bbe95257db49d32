package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"poi-api/internal/apperr"
	"poi-api/internal/config"
	"poi-api/internal/models"
	"poi-api/internal/prompt"

	"github.com/go-resty/resty/v2"
)

const geminiName = "gemini"

// Gemini talks to the Generative Language streamGenerateContent endpoint.
type Gemini struct {
	client      *resty.Client
	apiKey      string
	textModel   string
	visionModel string
}

// NewGemini creates a Gemini adapter; the API key travels as the key query parameter.
func NewGemini(cfg *config.Config) *Gemini {
	return &Gemini{
		client:      newClient(cfg.GeminiBaseURL, cfg.ProviderTimeout),
		apiKey:      cfg.GeminiAPIKey,
		textModel:   cfg.GeminiTextModel,
		visionModel: cfg.GeminiVisionModel,
	}
}

func (g *Gemini) Name() string {
	return geminiName
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Role  string `json:"role"`
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
}

// geminiStream accepts both the streamed array of chunks and a single object.
type geminiStream []geminiResponse

func (s *geminiStream) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var chunks []geminiResponse
		if err := json.Unmarshal(data, &chunks); err != nil {
			return err
		}
		*s = chunks
		return nil
	}
	var single geminiResponse
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*s = geminiStream{single}
	return nil
}

// text joins the text parts of every model candidate across all chunks.
func (s geminiStream) text() string {
	var chunks []string
	for _, resp := range s {
		var parts []string
		for _, c := range resp.Candidates {
			if c.Content.Role != "" && c.Content.Role != "model" {
				continue
			}
			for _, p := range c.Content.Parts {
				if p.Text != "" {
					parts = append(parts, p.Text)
				}
			}
		}
		if len(parts) > 0 {
			chunks = append(chunks, strings.Join(parts, " "))
		}
	}
	return strings.Join(chunks, " ")
}

// TextComplete prefixes message with the prompt in a single user turn.
func (g *Gemini) TextComplete(ctx context.Context, p prompt.Prompt, message string) (string, error) {
	req := geminiRequest{Contents: []geminiContent{{
		Role:  "user",
		Parts: []geminiPart{{Text: fmt.Sprintf("%s . \n %s", p.Text(), message)}},
	}}}
	return g.generate(ctx, "completion", g.textModel, req)
}

// VisionComplete sends the prompt and the inline image in a single user turn.
func (g *Gemini) VisionComplete(ctx context.Context, p prompt.Prompt, image models.ImagePayload) (string, error) {
	req := geminiRequest{Contents: []geminiContent{{
		Role: "user",
		Parts: []geminiPart{
			{Text: p.Text()},
			{InlineData: &geminiInlineData{MimeType: image.MimeType, Data: image.Base64}},
		},
	}}}
	return g.generate(ctx, "visual", g.visionModel, req)
}

// generate joins the text of every streamed chunk. A stream with no model text
// is NoAssistantContent, never an empty completion.
func (g *Gemini) generate(ctx context.Context, op, model string, body geminiRequest) (string, error) {
	var stream geminiStream
	req := g.client.R().
		SetQueryParam("key", g.apiKey).
		SetBody(body)
	url := fmt.Sprintf("/models/%s:streamGenerateContent", model)
	if err := exchange(ctx, geminiName, op, req, http.MethodPost, url, &stream); err != nil {
		return "", err
	}

	text := stream.text()
	if text == "" {
		return "", apperr.NoAssistantContent(geminiName + "." + op)
	}
	return text, nil
}
