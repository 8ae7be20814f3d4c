// Package dedup decides whether a freshly scraped product already exists in
// the catalog. It queries the catalog index for candidates, classifies the
// top score against configurable thresholds, and records the verdict through
// the ledger.
package dedup

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/machinehub/discovery-pipeline/constants"
	"github.com/machinehub/discovery-pipeline/internal/catalog"
	"github.com/machinehub/discovery-pipeline/internal/common"
	"github.com/machinehub/discovery-pipeline/internal/entity"
	"github.com/machinehub/discovery-pipeline/internal/ledger"
	"github.com/machinehub/discovery-pipeline/internal/repository"
)

type Resolver struct {
	ledger *ledger.Service
	index  catalog.Index
	urls   repository.DiscoveredURLRepository
	cfg    common.DedupConfig
	log    *slog.Logger
}

func NewResolver(lg *ledger.Service, index catalog.Index, urls repository.DiscoveredURLRepository, cfg common.DedupConfig, log *slog.Logger) *Resolver {
	if cfg.DuplicateThreshold == 0 {
		cfg.DuplicateThreshold = 0.90
	}
	if cfg.ReviewThreshold == 0 {
		cfg.ReviewThreshold = 0.60
	}
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{ledger: lg, index: index, urls: urls, cfg: cfg, log: log}
}

// Classify maps a top similarity score onto a duplicate status.
// Thresholds are inclusive at the lower bound of each band.
func (r *Resolver) Classify(score float64) constants.DuplicateStatus {
	switch {
	case score >= r.cfg.DuplicateThreshold:
		return constants.DuplicateConfirmed
	case score >= r.cfg.ReviewThreshold:
		return constants.DuplicateManualReview
	default:
		return constants.DuplicateUnique
	}
}

// CheckURL runs one duplicate check for one scraped URL and applies the
// verdict. A verdict that lost to a newer check or a manual decision is
// discarded silently; the caller sees it as checked.
func (r *Resolver) CheckURL(ctx context.Context, u *entity.DiscoveredURL) (*entity.DiscoveredURL, error) {
	checkedAt, err := r.ledger.BeginDuplicateCheck(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	fp := FingerprintFor(u)
	candidates, err := r.index.FindCandidates(ctx, fp)
	if err != nil {
		return nil, err
	}

	var top *entity.CandidateMatch
	if len(candidates) > 0 {
		top = &candidates[0]
	}

	updated, err := r.ledger.ApplyDuplicateResult(ctx, r.decisionFor(u.ID, top, checkedAt))
	if errors.Is(err, common.ErrStaleResult) {
		r.log.Info("dedup.stale_discarded", "url_id", u.ID)
		return r.ledger.Get(ctx, u.ID)
	}
	return updated, err
}

func (r *Resolver) decisionFor(urlID uuid.UUID, top *entity.CandidateMatch, checkedAt time.Time) ledger.Decision {
	if top == nil {
		return ledger.Decision{
			URLID:     urlID,
			Status:    constants.DuplicateUnique,
			CheckedAt: checkedAt,
		}
	}

	d := ledger.Decision{
		URLID:     urlID,
		Status:    r.Classify(top.SimilarityScore),
		CheckedAt: checkedAt,
	}
	switch d.Status {
	case constants.DuplicateConfirmed:
		id := top.CatalogID
		score := top.SimilarityScore
		d.MachineID = &id
		d.SimilarityScore = &score
		d.Reason = constants.ReasonSimilarityMatch
	case constants.DuplicateManualReview:
		score := top.SimilarityScore
		d.SimilarityScore = &score
		d.Reason = constants.ReasonSimilarityMatch
	}
	return d
}

// RunDuplicateCheck iterates every scraped-but-unchecked URL, optionally
// scoped to one manufacturer, and applies the algorithm to each. Re-runnable:
// on an unchanged catalog and unchanged scraped data a second pass finds
// nothing left to check and changes nothing. Per-URL failures are logged and
// skipped, never fatal to the pass.
func (r *Resolver) RunDuplicateCheck(ctx context.Context, manufacturerID *uuid.UUID) (entity.DuplicateCheckStats, error) {
	var stats entity.DuplicateCheckStats

	pending, err := r.urls.ListUnchecked(ctx, manufacturerID)
	if err != nil {
		return stats, err
	}
	r.log.Info("dedup.run_started", "candidates", len(pending))

	for _, u := range pending {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		updated, err := r.CheckURL(ctx, u)
		if err != nil {
			r.log.Error("dedup.check_failed", "url_id", u.ID, "err", err)
			continue
		}
		stats.Checked++
		if updated.DuplicateStatus == constants.DuplicateConfirmed {
			stats.DuplicatesFound++
		}
	}

	r.log.Info("dedup.run_finished", "checked", stats.Checked, "duplicates_found", stats.DuplicatesFound)
	return stats, nil
}

// RecheckURL is the explicit per-URL re-run. It clears any prior decision,
// including a manual one, before running detection again. This is the only
// path on which an automatic verdict replaces a human decision.
func (r *Resolver) RecheckURL(ctx context.Context, id uuid.UUID) (*entity.DiscoveredURL, error) {
	u, err := r.ledger.ResetDuplicateStatus(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.CheckURL(ctx, u)
}
