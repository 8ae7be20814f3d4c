package scrape

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/machinehub/discovery-pipeline/internal/common"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(common.ExtractionConfig{BaseURL: srv.URL, APIKey: "test-key"}, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func TestClientExtract(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody map[string]any

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"name":         "VF-2SS",
			"machine_type": "vertical_mill",
			"specs":        map[string]any{"travel_x": "762mm"},
		})
	}))

	category := "cnc"
	fields, err := c.Extract(context.Background(), "https://haas.example/vf-2ss", &category)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if gotPath != "/v1/extract" {
		t.Errorf("path = %q, want /v1/extract", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if gotBody["url"] != "https://haas.example/vf-2ss" || gotBody["category"] != "cnc" {
		t.Errorf("request body = %v", gotBody)
	}
	if fields["name"] != "VF-2SS" {
		t.Errorf("fields = %v", fields)
	}
}

func TestClientExtractRejectsPayloadWithoutName(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"description": "a page with no product"})
	}))

	_, err := c.Extract(context.Background(), "https://haas.example/about", nil)
	if err == nil || !strings.Contains(err.Error(), "validation") {
		t.Fatalf("err = %v, want schema validation failure", err)
	}
}

func TestClientExtractRejectsEmptyName(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"name": ""})
	}))

	_, err := c.Extract(context.Background(), "https://haas.example/vf-2ss", nil)
	if err == nil {
		t.Fatal("empty name accepted")
	}
}

func TestClientExtractNon2xx(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream overloaded", http.StatusBadGateway)
	}))

	_, err := c.Extract(context.Background(), "https://haas.example/vf-2ss", nil)
	if err == nil || !strings.Contains(err.Error(), "502") {
		t.Fatalf("err = %v, want non-2xx failure", err)
	}
}

func TestClientPing(t *testing.T) {
	healthy := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/healthz" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	if err := healthy.Ping(context.Background()); err != nil {
		t.Errorf("ping healthy service: %v", err)
	}

	unhealthy := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	if err := unhealthy.Ping(context.Background()); err == nil {
		t.Error("ping unhealthy service succeeded")
	}
}
