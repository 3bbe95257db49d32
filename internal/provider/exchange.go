package provider

import (
	"context"
	"encoding/json"
	"time"

	"poi-api/internal/apperr"
	"poi-api/internal/metrics"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// newClient builds the resty client an adapter keeps for its lifetime.
// Retries stay disabled: a non-successful answer is final for the call.
func newClient(baseURL string, timeout time.Duration) *resty.Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(timeout)
	client.SetRetryCount(0)
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")
	return client
}

// exchange issues req and decodes a successful body into out.
// Transport errors, non-2xx statuses and undecodable bodies are mapped onto the
// apperr kinds; the vendor error body is only logged.
func exchange(ctx context.Context, provider, op string, req *resty.Request, method, url string, out any) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveProviderCall(provider, op, start, err) }()

	resp, err := req.SetContext(ctx).Execute(method, url)
	if err != nil {
		return apperr.Transport(provider+"."+op, err)
	}

	if !resp.IsSuccess() {
		log.Error().
			Str("provider", provider).
			Str("op", op).
			Int("status", resp.StatusCode()).
			Str("body", resp.String()).
			Msg("provider returned a non-successful response")
		return apperr.NonSuccessStatus(provider+"."+op, resp.StatusCode())
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return apperr.Decode(provider+"."+op, err)
	}
	return nil
}
