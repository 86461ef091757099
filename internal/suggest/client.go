// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mark Karev

// Package suggest is a minimal client for a generateContent-style
// generative-AI endpoint. It powers the cosmetic idea-generation and
// title-suggestion features; it never sees vault data beyond the single
// URL or topic string it is asked about, and it degrades to a disabled
// feature when no API key is configured.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrDisabled is returned by every operation when no API key is
// configured. Callers present the feature as unavailable instead of
// failing.
var ErrDisabled = errors.New("ai features disabled: no api key configured")

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-flash-lite-latest"
)

// Config carries the endpoint settings for the suggest client.
type Config struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

// Client calls the generateContent endpoint of a Gemini-compatible API.
type Client struct {
	client *resty.Client
	model  string
	apiKey string
}

// NewClient builds a Client from cfg, applying defaults for every empty
// field. A client without an API key is valid but permanently disabled.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &Client{client: cli, model: cfg.Model, apiKey: cfg.APIKey}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// GenerateIdeas asks the model for enhancement ideas around the user's
// topic and returns the free-text completion.
func (c *Client) GenerateIdeas(ctx context.Context, topic string) (string, error) {
	prompt := fmt.Sprintf(`You are an expert UX designer and product manager brainstorming for a secure, offline-first digital vault application.
The app currently allows users to store passwords, credit cards, bookmarks, and notes.
The core concept is privacy and user control, with data stored locally and portable via an export/import system that requires a unique user-generated ID.

Based on the user's topic of interest, generate creative, actionable ideas to enhance the application.
Format your response clearly with headings and bullet points. Be concise but inspiring.

User's Topic: %q

Brainstorm now:`, topic)

	return c.generate(ctx, prompt)
}

// SuggestTitle asks the model for a short user-friendly title for the
// given URL. The response is trimmed to a plain string.
func (c *Client) SuggestTitle(ctx context.Context, url string) (string, error) {
	prompt := fmt.Sprintf(`Based on the URL %q, suggest a short, user-friendly title for this website. For example, for "https://app.google.com/mail", you should suggest "Google Mail". Only return the title as a plain string, without any markdown or extra text.`, url)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

type generateRequest struct {
	Contents []requestContent `json:"contents"`
}

type requestContent struct {
	Parts []contentPart `json:"parts"`
}

type contentPart struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []contentPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}

	var out generateResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", c.apiKey).
		SetBody(generateRequest{
			Contents: []requestContent{{Parts: []contentPart{{Text: prompt}}}},
		}).
		SetResult(&out).
		SetError(&out).
		Post("/v1beta/models/" + c.model + ":generateContent")
	if err != nil {
		return "", fmt.Errorf("generate content request: %w", err)
	}

	if resp.IsError() {
		if out.Error != nil {
			return "", fmt.Errorf("generate content: %s (%s)", out.Error.Message, out.Error.Status)
		}
		return "", fmt.Errorf("generate content: unexpected status %s", resp.Status())
	}

	if len(out.Candidates) == 0 {
		return "", errors.New("generate content: empty completion")
	}

	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}
