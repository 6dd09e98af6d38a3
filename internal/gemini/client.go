package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"jokepatra/internal/config"

	"go.uber.org/zap"
)

var (
	ErrGenerationFailed = errors.New("failed to generate satirical news")
	ErrNotConfigured    = errors.New("generation API key is not configured (GEMINI_API_KEY)")
)

const (
	temperature     = 0.9
	maxOutputTokens = 2048
	maxErrorBody    = 4096
)

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient uses a client without a timeout: a slow generation is bounded only
// by the caller's context.
func NewClient(cfg config.Gemini, logger *zap.Logger) *Client {
	return &Client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Source is the provenance label stored with generated articles.
func (c *Client) Source() string {
	return "Gemini " + c.model
}

// Generate sends one request and returns the coerced article. Transport and
// upstream failures all collapse to ErrGenerationFailed; the cause is logged.
func (c *Client) Generate(ctx context.Context, custom string) (*GeneratedArticle, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: BuildPrompt(custom)}}}},
		GenerationConfig: generationConfig{
			Temperature:     temperature,
			MaxOutputTokens: maxOutputTokens,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.baseURL, url.PathEscape(c.model), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("building generation request", zap.Error(err))
		return nil, ErrGenerationFailed
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// the error text carries the URL, which carries the key
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		c.logger.Error("gemini request failed", zap.Error(err))
		return nil, ErrGenerationFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Error("gemini API error",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", detail),
		)
		return nil, ErrGenerationFailed
	}

	var envelope generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		c.logger.Error("decoding gemini response", zap.Error(err))
		return nil, ErrGenerationFailed
	}

	text := "{}"
	if len(envelope.Candidates) > 0 && len(envelope.Candidates[0].Content.Parts) > 0 {
		if t := envelope.Candidates[0].Content.Parts[0].Text; t != "" {
			text = t
		}
	}

	article := ParseGenerated(text)
	c.logger.Info("article generated",
		zap.String("model", c.model),
		zap.String("slug", article.Slug),
	)

	return article, nil
}
