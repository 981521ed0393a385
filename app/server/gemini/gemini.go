package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const defaultAPIURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash-preview-05-20:generateContent"

// Client calls the Gemini generateContent endpoint. It holds no state beyond
// the API key; a request is a single templated outbound call.
type Client struct {
	apiKey string
	apiURL string
	http   *http.Client
}

func New(apiKey string) *Client {
	return &Client{
		apiKey: apiKey,
		apiURL: defaultAPIURL,
		http:   &http.Client{Timeout: 30 * time.Second},
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents          []content `json:"contents"`
	SystemInstruction content   `json:"systemInstruction"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends the assembled prompts and returns the produced comment text.
func (c *Client) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("gemini api key is not configured")
	}

	reqBody, err := json.Marshal(&generateRequest{
		Contents:          []content{{Parts: []part{{Text: userPrompt}}}},
		SystemInstruction: content{Parts: []part{{Text: systemPrompt}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s?key=%s", c.apiURL, c.apiKey), bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call gemini api: %w", err)
	}
	defer resp.Body.Close()

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if result.Error.Message != "" {
			return "", fmt.Errorf("gemini api error: %s", result.Error.Message)
		}
		return "", fmt.Errorf("gemini api error: %s", resp.Status)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 || result.Candidates[0].Content.Parts[0].Text == "" {
		return "", errors.New("no valid candidate in response")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
