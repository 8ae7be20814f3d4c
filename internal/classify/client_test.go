package classify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/machinehub/discovery-pipeline/internal/common"
)

func TestClientClassify(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/classify" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"classification": "MACHINE",
			"confidence":     0.93,
			"reason":         "product page with technical specs",
			"machine_type":   "vertical_mill",
		})
	}))
	defer srv.Close()

	c := NewClient(common.ClassifierConfig{BaseURL: srv.URL})
	hint := "cnc"
	got, err := c.Classify(context.Background(), "https://haas.example/vf-2ss", &hint)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}

	if gotBody["url"] != "https://haas.example/vf-2ss" || gotBody["category_hint"] != "cnc" {
		t.Errorf("request body = %v", gotBody)
	}
	if got.Label != "MACHINE" || got.Confidence != 0.93 || got.MachineType != "vertical_mill" {
		t.Errorf("verdict = %+v", got)
	}
}

func TestClientClassifyNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(common.ClassifierConfig{BaseURL: srv.URL})
	if _, err := c.Classify(context.Background(), "https://haas.example/vf-2ss", nil); err == nil {
		t.Fatal("non-200 response accepted")
	}
}
