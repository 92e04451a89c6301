package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"fallapp-api/internal/metrics"
)

// Score is one candidate label returned by the classifier
type Score struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"score"`
}

// Classifier translates a text into a set of candidate sentiment labels.
// An empty result with a nil error means the endpoint answered but
// produced nothing usable; a non-nil error means the call itself failed.
type Classifier interface {
	Classify(ctx context.Context, text string) ([]Score, error)
}

// Client calls an external inference endpoint for text classification.
// The endpoint responds with label/score pairs, sometimes nested under
// one or two levels of array or object wrapping depending on the model.
type Client struct {
	apiURL     string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewClient creates a new classifier client
func NewClient(apiURL, token string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) *Client {
	return &Client{
		apiURL: apiURL,
		token:  token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:  logger,
		metrics: m,
	}
}

// Classify sends the text to the inference endpoint and extracts all
// label/score pairs from the response, whatever the wrapping shape.
func (c *Client) Classify(ctx context.Context, text string) ([]Score, error) {
	body, err := json.Marshal(map[string]interface{}{"inputs": text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(startTime)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}
	if c.metrics != nil {
		c.metrics.RecordExternalAPICall(c.apiURL, http.MethodPost, statusCode, duration, err)
	}

	if err != nil {
		return nil, fmt.Errorf("classifier request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Warn("Classifier returned non-success status",
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("body", payload),
			zap.Duration("duration", duration),
		)
		return nil, fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}

	var root interface{}
	if err := json.NewDecoder(resp.Body).Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to decode classifier response: %w", err)
	}

	// Error payloads ({"error": "..."}) carry no label/score pairs and
	// fall out of the extraction as an empty set, same as any other
	// unusable response.
	return extractScores(root), nil
}

// extractScores walks a decoded JSON tree and collects every object
// that looks like a {label, score} pair. Arrays and object wrappers
// ("result", "data", nested lists) are unwrapped recursively, so the
// flat, singly-nested and doubly-nested response shapes all work.
func extractScores(node interface{}) []Score {
	var scores []Score

	switch v := node.(type) {
	case []interface{}:
		for _, item := range v {
			scores = append(scores, extractScores(item)...)
		}
	case map[string]interface{}:
		label, hasLabel := v["label"].(string)
		confidence, hasScore := v["score"].(float64)
		if hasLabel && hasScore {
			scores = append(scores, Score{Label: label, Confidence: confidence})
			return scores
		}
		for _, value := range v {
			scores = append(scores, extractScores(value)...)
		}
	}

	return scores
}
