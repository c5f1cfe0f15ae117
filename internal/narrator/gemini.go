package narrator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/driftlog/backend/internal/models"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Gemini narrates entries with the Google Generative Language API.
type Gemini struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGemini creates a Gemini narrator. The timeout bounds the whole remote
// call; a timeout surfaces as ErrUnavailable, not as a hung request.
func NewGemini(apiKey, model string, timeout time.Duration) *Gemini {
	return &Gemini{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (g *Gemini) Narrate(ctx context.Context, entries []models.Entry) (string, error) {
	prompt, err := buildCorrelationPrompt(entries)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	reqBody, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("%w: gemini returned status %d", ErrUnavailable, resp.StatusCode)
	}

	var gr generateResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty model response", ErrUnavailable)
	}

	insight, err := parseInsight(gr.Candidates[0].Content.Parts[0].Text)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return insight, nil
}

func buildCorrelationPrompt(entries []models.Entry) (string, error) {
	data, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`Analyze the following sleep and well-being journal entries to find a correlation.
Entries: %s
Provide the analysis as a JSON object with a single key "insight" containing a concise, one-sentence analysis of the correlation between sleep duration and day rating.
For example: {"insight": "There appears to be a positive correlation between sleep duration and day rating, as longer sleep durations generally coincide with higher day ratings."}`, data), nil
}

// parseInsight extracts the insight string from the model's answer. The model
// frequently wraps its JSON in a markdown code fence, which must be stripped
// before unmarshaling.
func parseInsight(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.Trim(cleaned, "'")
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var parsed struct {
		Insight string `json:"insight"`
	}
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return "", fmt.Errorf("malformed insight payload: %v", err)
	}
	if parsed.Insight == "" {
		return "", fmt.Errorf("insight payload is empty")
	}

	return parsed.Insight, nil
}
