// Package classify pre-filters discovered URLs before they consume scrape
// budget. The gate consumes an external classifier's label and confidence and
// flags likely non-machine URLs; the flag is advisory and a human action is
// still required to actually skip a URL.
package classify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/machinehub/discovery-pipeline/constants"
	"github.com/machinehub/discovery-pipeline/internal/common"
	"github.com/machinehub/discovery-pipeline/internal/entity"
	"github.com/machinehub/discovery-pipeline/internal/ledger"
	"github.com/machinehub/discovery-pipeline/internal/repository"
)

type Gate struct {
	ledger     *ledger.Service
	classifier Classifier
	urls       repository.DiscoveredURLRepository
	threshold  float64
	log        *slog.Logger
}

// GateStats summarizes a classification pass.
type GateStats struct {
	Classified  int `json:"classified"`
	AutoSkipped int `json:"auto_skipped"`
	Failed      int `json:"failed"`
}

func NewGate(lg *ledger.Service, classifier Classifier, urls repository.DiscoveredURLRepository, threshold float64, log *slog.Logger) *Gate {
	if threshold <= 0 {
		threshold = 0.75
	}
	if log == nil {
		log = slog.Default()
	}
	return &Gate{ledger: lg, classifier: classifier, urls: urls, threshold: threshold, log: log}
}

// ShouldAutoSkip applies the gate rule: confident non-machine labels are
// flagged. MACHINE labels are never flagged regardless of confidence.
func (g *Gate) ShouldAutoSkip(cls constants.Classification, confidence float64) bool {
	return cls != constants.ClassMachine && confidence >= g.threshold
}

// ApplyClassification records one classifier verdict for one URL. Labels
// outside the taxonomy are rejected. The scrape status is never touched: a
// classifier false-positive must not silently discard a real product URL.
func (g *Gate) ApplyClassification(ctx context.Context, id uuid.UUID, c entity.Classification) (*entity.DiscoveredURL, error) {
	cls, ok := constants.NormalizeClassification(c.Label)
	if !ok {
		return nil, fmt.Errorf("classification %q: %w", c.Label, common.ErrInvalidInput)
	}
	if c.Confidence < 0 || c.Confidence > 1 {
		return nil, fmt.Errorf("confidence %v out of range: %w", c.Confidence, common.ErrInvalidInput)
	}

	autoSkip := g.ShouldAutoSkip(cls, c.Confidence)
	return g.ledger.ApplyClassification(ctx, id, cls, c.Confidence, c.Reason, c.MachineType, autoSkip)
}

// ClassifyPending runs the external classifier over every pending URL that
// has no label yet, optionally scoped to one manufacturer. Per-URL failures
// are logged and counted, never fatal to the pass.
func (g *Gate) ClassifyPending(ctx context.Context, manufacturerID *uuid.UUID) (GateStats, error) {
	var stats GateStats

	pending, err := g.urls.ListUnclassified(ctx, manufacturerID)
	if err != nil {
		return stats, err
	}
	g.log.Info("classify.run_started", "candidates", len(pending))

	for _, u := range pending {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		verdict, err := g.classifier.Classify(ctx, u.URL, u.Category)
		if err != nil {
			g.log.Warn("classify.url_failed", "url_id", u.ID, "err", err)
			stats.Failed++
			continue
		}
		updated, err := g.ApplyClassification(ctx, u.ID, verdict)
		if err != nil {
			g.log.Warn("classify.apply_failed", "url_id", u.ID, "err", err)
			stats.Failed++
			continue
		}
		stats.Classified++
		if updated.ShouldAutoSkip {
			stats.AutoSkipped++
		}
	}

	g.log.Info("classify.run_finished",
		"classified", stats.Classified, "auto_skipped", stats.AutoSkipped, "failed", stats.Failed)
	return stats, nil
}
