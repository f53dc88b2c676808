// Package gemini adapts the Gemini generative-language API to the two
// collaborator ports the core consumes: best-effort market price lookup and
// narrative advice generation.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"

	"github.com/smartfin/smartfinance_backend/internal/apperrors"
	"github.com/smartfin/smartfinance_backend/internal/core/domain"
)

// Client wraps a genai client for one configured model.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates the Gemini adapter. The API key and model name come from
// configuration.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// LookupPrice asks the model, grounded with Google search, for the latest
// price of one symbol. The prompt demands a raw JSON object; markdown fences
// are stripped defensively before decoding.
// Note: response schemas are not supported together with the googleSearch
// tool, hence the prompt-level JSON contract.
func (c *Client) LookupPrice(ctx context.Context, symbol string) (*domain.PriceQuote, error) {
	prompt := fmt.Sprintf(
		`Find the latest real-time stock price for %s. Return ONLY a valid JSON object with keys "price" (number) and "currency" (string). Do not use markdown code blocks.`,
		symbol,
	)

	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		return nil, fmt.Errorf("price lookup for %s: %w: %v", symbol, apperrors.ErrUnavailable, err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("price lookup for %s: empty model response: %w", symbol, apperrors.ErrUnavailable)
	}

	quote, err := parsePriceQuote(text)
	if err != nil {
		return nil, fmt.Errorf("price lookup for %s: %w", symbol, err)
	}
	return quote, nil
}

// GenerateText runs a plain text generation for the advice service.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate text: %w: %v", apperrors.ErrUnavailable, err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("generate text: empty model response: %w", apperrors.ErrUnavailable)
	}
	return text, nil
}

// parsePriceQuote decodes the model's JSON answer after cleaning markdown
// wrappers the model may emit despite instructions.
func parsePriceQuote(raw string) (*domain.PriceQuote, error) {
	clean := cleanModelJSON(raw)

	var payload struct {
		Price    decimal.Decimal `json:"price"`
		Currency string          `json:"currency"`
	}
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		return nil, fmt.Errorf("unmarshal price quote: %w", err)
	}
	if payload.Price.IsNegative() {
		return nil, fmt.Errorf("negative price in model response")
	}
	return &domain.PriceQuote{Price: payload.Price, Currency: payload.Currency}, nil
}

// cleanModelJSON strips ``` / ```json fences and any junk around the first
// JSON object.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}
	return s
}
