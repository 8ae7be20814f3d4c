package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/machinehub/discovery-pipeline/internal/common"
	"github.com/machinehub/discovery-pipeline/internal/entity"
)

// Classifier is the pipeline's view of the external URL classifier.
type Classifier interface {
	Classify(ctx context.Context, url string, hint *string) (entity.Classification, error)
}

// Client talks to the external classifier service.
type Client struct {
	endpoint string
	http     *http.Client
}

var _ Classifier = (*Client)(nil)

func NewClient(cfg common.ClassifierConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		endpoint: strings.TrimRight(cfg.BaseURL, "/"),
		http:     &http.Client{Timeout: timeout},
	}
}

// Classify sends one URL for labeling.
func (c *Client) Classify(ctx context.Context, url string, hint *string) (entity.Classification, error) {
	payload := map[string]any{"url": url}
	if hint != nil {
		payload["category_hint"] = *hint
	}

	var result entity.Classification
	if err := c.post(ctx, "/classify", payload, &result); err != nil {
		return entity.Classification{}, err
	}
	return result, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, v any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
