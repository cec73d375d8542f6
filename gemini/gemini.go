// Package gemini describes companies by asking Google Gemini.
//
// The client reads its credentials from the environment (GEMINI_API_KEY or
// GOOGLE_API_KEY), see google.golang.org/genai.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/congress"
	"google.golang.org/genai"
)

// DefaultModel is the model used when Client.Model is empty.
const DefaultModel = "gemini-2.5-flash"

// Client asks a model for a short company description.
type Client struct {
	Model  string
	client *genai.Client
}

// New creates a Client from environment credentials.
func New(ctx context.Context) (*Client, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize Gemini's client: %w", err)
	}
	return &Client{Model: DefaultModel, client: client}, nil
}

// prompt returns the question asked about a company.
func prompt(name string) string {
	return fmt.Sprintf("In at most two sentences and without any markdown, describe the publicly traded company %q: what it does and where it is based.", name)
}

// Summary returns a two sentence description of name.
//
// Every error matches congress.ErrSummaryUnavailable.
func (c *Client) Summary(ctx context.Context, name string) (string, error) {
	model := c.Model
	if model == "" {
		model = DefaultModel
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a financial analyst writing for a report on stock purchases.
			Stay factual. If you do not know the company, answer exactly "unknown".
		`}}},
	}
	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt(name)), config)
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %w", congress.ErrSummaryUnavailable, err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" || strings.EqualFold(strings.Trim(text, "."), "unknown") {
		return "", fmt.Errorf("%w: gemini does not know %q", congress.ErrSummaryUnavailable, name)
	}
	return text, nil
}
