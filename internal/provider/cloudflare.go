package provider

import (
	"context"
	"fmt"
	"net/http"

	"poi-api/internal/apperr"
	"poi-api/internal/config"
	"poi-api/internal/models"
	"poi-api/internal/prompt"

	"github.com/go-resty/resty/v2"
)

const cloudflareName = "cloudflare"

// Cloudflare runs Workers AI models: a chat model for text and a BGE model for embeddings.
type Cloudflare struct {
	client         *resty.Client
	account        string
	textModel      string
	embeddingModel string
}

// NewCloudflare creates a Workers AI adapter bound to the configured account.
func NewCloudflare(cfg *config.Config) *Cloudflare {
	client := newClient(cfg.CloudflareBaseURL, cfg.ProviderTimeout)
	client.SetAuthToken(cfg.CloudflareAPIKey)
	return &Cloudflare{
		client:         client,
		account:        cfg.CloudflareAccount,
		textModel:      cfg.CloudflareTextModel,
		embeddingModel: cfg.CloudflareEmbeddingModel,
	}
}

func (c *Cloudflare) Name() string {
	return cloudflareName
}

type cloudflareMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type cloudflareEnvelope[T any] struct {
	Result  T    `json:"result"`
	Success bool `json:"success"`
}

type cloudflareCompletion struct {
	Response *string `json:"response"`
}

type cloudflareEmbedding struct {
	Shape []int       `json:"shape"`
	Data  [][]float64 `json:"data"`
}

func (c *Cloudflare) modelURL(model string) string {
	return fmt.Sprintf("/accounts/%s/ai/run/@cf/%s", c.account, model)
}

// TextComplete sends p as the system message and message as the user turn.
func (c *Cloudflare) TextComplete(ctx context.Context, p prompt.Prompt, message string) (string, error) {
	body := map[string]any{
		"messages": []cloudflareMessage{
			{Role: "system", Content: p.Text()},
			{Role: "user", Content: message},
		},
	}

	var out cloudflareEnvelope[cloudflareCompletion]
	req := c.client.R().SetBody(body)
	if err := exchange(ctx, cloudflareName, "completion", req, http.MethodPost, c.modelURL(c.textModel), &out); err != nil {
		return "", err
	}
	if out.Result.Response == nil {
		return "", apperr.NoAssistantContent(cloudflareName + ".completion")
	}
	return *out.Result.Response, nil
}

// Embed returns one vector per text, in input order.
func (c *Cloudflare) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	var out cloudflareEnvelope[cloudflareEmbedding]
	req := c.client.R().SetBody(models.EmbeddingRequest{Text: texts})
	if err := exchange(ctx, cloudflareName, "embedding", req, http.MethodPost, c.modelURL(c.embeddingModel), &out); err != nil {
		return nil, err
	}
	return out.Result.Data, nil
}
