package scrape

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/machinehub/discovery-pipeline/internal/common"
)

// Extractor is the pipeline's view of the external extraction service.
type Extractor interface {
	// Extract fetches structured product fields for one URL.
	Extract(ctx context.Context, url string, category *string) (map[string]any, error)
	// Ping reports whether the service is reachable at all. A failed ping
	// rejects batch submission before any URL is charged.
	Ping(ctx context.Context) error
}

// ResultSchema constrains what the extraction service may hand back. A
// payload that does not carry at least a product name is treated as a failed
// extraction, not as a scraped product.
const ResultSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name"],
  "properties": {
    "name":         {"type": "string", "minLength": 1},
    "machine_type": {"type": "string"},
    "category":     {"type": "string"},
    "description":  {"type": "string"},
    "specs":        {"type": "object"},
    "images":       {"type": "array", "items": {"type": "string"}},
    "price":        {"type": ["string", "number", "null"]}
  }
}`

// Client talks to the extraction service over its JSON job API.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
	schema  *jsonschema.Schema
	log     *slog.Logger
}

func NewClient(cfg common.ExtractionConfig, log *slog.Logger) (*Client, error) {
	if log == nil {
		log = slog.Default()
	}
	schema, err := jsonschema.CompileString("extract-result.schema.json", ResultSchema)
	if err != nil {
		return nil, fmt.Errorf("compile result schema: %w", err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		schema:  schema,
		log:     log,
	}, nil
}

func (c *Client) Extract(ctx context.Context, url string, category *string) (map[string]any, error) {
	body := map[string]any{"url": url}
	if category != nil {
		body["category"] = *category
	}

	raw, status, err := c.post(ctx, c.baseURL+"/v1/extract", body)
	if err != nil {
		return nil, err
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("extraction payload is not JSON (status %d): %w", status, err)
	}
	if err := c.schema.Validate(decoded); err != nil {
		return nil, fmt.Errorf("extraction payload failed validation: %w", err)
	}
	fields, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("extraction payload is not an object")
	}
	return fields, nil
}

func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("build ping request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("extraction service unreachable: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("extraction service unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

// post sends a JSON request and returns the raw response body.
func (c *Client) post(ctx context.Context, url string, body any) ([]byte, int, error) {
	reqID := uuid.New().String()
	start := time.Now()

	bs, err := json.Marshal(body)
	if err != nil {
		c.log.Error("extract.http.encode_error", "req_id", reqID, "error", err)
		return nil, 0, fmt.Errorf("encode json: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bs))
	if err != nil {
		c.log.Error("extract.http.build_request_error", "req_id", reqID, "error", err)
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	c.log.Info("extract.http.request", "req_id", reqID, "url", url, "content_length", len(bs))

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("extract.http.send_error", "req_id", reqID, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return nil, 0, err
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.log.Warn("extract.http.response_body_close_error", "req_id", reqID, "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	c.log.Info("extract.http.response",
		"req_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return raw, resp.StatusCode, fmt.Errorf("non-2xx status: %d", resp.StatusCode)
	}
	return raw, resp.StatusCode, nil
}
