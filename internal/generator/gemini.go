package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com"

var (
	upstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "viralgenix_upstream_requests_total",
			Help: "Number of requests sent to the generative-language API.",
		},
		[]string{"status"},
	)
	upstreamRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "viralgenix_upstream_request_duration_seconds",
			Help:    "Duration of generative-language API calls.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// GeminiClient implements Generator against the Google Generative
// Language REST API.
type GeminiClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewGeminiClient(apiKey, model string) *GeminiClient {
	return &GeminiClient{
		httpClient: &http.Client{},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		model:      model,
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	text, err := c.generate(ctx, prompt)
	upstreamRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		upstreamRequestsTotal.WithLabelValues("error").Inc()
		return "", err
	}
	upstreamRequestsTotal.WithLabelValues("ok").Inc()
	return text, nil
}

func (c *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	payload := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrUpstream, err)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("%w: malformed response: %v", ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := resp.Status
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return "", fmt.Errorf("%w: %s", ErrUpstream, msg)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: response contained no candidates", ErrUpstream)
	}

	var text string
	for _, part := range parsed.Candidates[0].Content.Parts {
		text += part.Text
	}

	return text, nil
}
