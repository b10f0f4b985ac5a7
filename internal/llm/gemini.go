package llm

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/billysysco04-bit/BHdesignsbyBILLY/internal/menu"
	logx "github.com/billysysco04-bit/BHdesignsbyBILLY/pkg/logger"
)

type GeminiClient struct {
	apiKey string
	model  string
	http   *http.Client
}

func NewGeminiClient(apiKey, model string) *GeminiClient {
	return &GeminiClient{
		apiKey: apiKey,
		model:  model,
		http:   &http.Client{Timeout: 60 * time.Second},
	}
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// generate runs one request against the Gemini REST API and returns
// the first candidate's text.
func (g *GeminiClient) generate(ctx context.Context, parts []geminiPart) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("missing GEMINI_API_KEY")
	}
	if g.model == "" {
		return "", errors.New("missing GEMINI_MODEL")
	}

	url := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		g.model,
		g.apiKey,
	)

	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": parts},
		},
		"generationConfig": map[string]any{
			"temperature":     0.2,
			"maxOutputTokens": 8192,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		url,
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		logx.Warn().Int("status", resp.StatusCode).Msg("gemini api error")
		return "", fmt.Errorf("gemini api error: %s", string(raw))
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if len(result.Candidates) == 0 ||
		len(result.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty gemini response")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

func (g *GeminiClient) ParseMenu(ctx context.Context, data []byte, mimeType string) ([]menu.ExtractedItem, error) {
	if len(data) == 0 {
		return nil, errors.New("empty menu file")
	}

	parts := []geminiPart{
		{Text: BuildMenuParsePrompt()},
		{InlineData: &geminiInlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(data),
		}},
	}

	out, err := g.generate(ctx, parts)
	if err != nil {
		return nil, err
	}
	return parseExtractedItems(out)
}

func (g *GeminiClient) GenerateDescription(ctx context.Context, itemName, cuisine, style string) (string, error) {
	if itemName == "" {
		return "", errors.New("empty item name")
	}

	out, err := g.generate(ctx, []geminiPart{
		{Text: BuildDescriptionPrompt(itemName, cuisine, style)},
	})
	if err != nil {
		return "", err
	}
	return cleanDescription(out), nil
}

func (g *GeminiClient) EstimateCompetitors(
	ctx context.Context,
	location string,
	items []menu.MenuItem,
) (map[string][]menu.CompetitorPrice, error) {
	if location == "" {
		return nil, errors.New("empty location")
	}
	if len(items) == 0 {
		return nil, errors.New("no items to compare")
	}

	out, err := g.generate(ctx, []geminiPart{
		{Text: BuildCompetitorPrompt(location, items)},
	})
	if err != nil {
		return nil, err
	}
	return parseCompetitors(out)
}
