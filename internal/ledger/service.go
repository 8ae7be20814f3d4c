// Package ledger owns the per-URL record and its state machines. Every
// mutation of a discovered URL goes through this service; batch jobs, the
// duplicate resolver, the classification gate and human review are all
// clients of it.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/machinehub/discovery-pipeline/constants"
	"github.com/machinehub/discovery-pipeline/internal/common"
	"github.com/machinehub/discovery-pipeline/internal/entity"
	"github.com/machinehub/discovery-pipeline/internal/repository"
)

// Outcome is the per-URL result of one extraction attempt.
type Outcome struct {
	Success bool
	Fields  map[string]any
	Message string
}

func Success(fields map[string]any) Outcome {
	return Outcome{Success: true, Fields: fields}
}

func Failure(message string) Outcome {
	return Outcome{Message: message}
}

// Decision is a duplicate-check verdict for one URL, produced by the resolver
// or by a manual link. CheckedAt orders competing verdicts: a decision that is
// not strictly newer than the stored one is discarded.
type Decision struct {
	URLID           uuid.UUID
	Status          constants.DuplicateStatus
	MachineID       *uuid.UUID
	SimilarityScore *float64
	Reason          string
	CheckedAt       time.Time
}

// Service enforces the scrape and duplicate state machines. It is the
// serialization point between concurrent callers: transitions are checked and
// written under one lock, so a late or duplicate result cannot clobber a
// newer record.
type Service struct {
	urls     repository.DiscoveredURLRepository
	machines repository.CatalogMachineRepository
	log      *slog.Logger

	mu sync.Mutex
}

func NewService(urls repository.DiscoveredURLRepository, machines repository.CatalogMachineRepository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{urls: urls, machines: machines, log: log}
}

// Register records a newly discovered URL in pending/pending state.
func (s *Service) Register(ctx context.Context, manufacturerID uuid.UUID, url string, category *string) (*entity.DiscoveredURL, error) {
	u := &entity.DiscoveredURL{
		ManufacturerID:  manufacturerID,
		URL:             url,
		Category:        category,
		Status:          constants.ScrapePending,
		DuplicateStatus: constants.DuplicatePending,
		DiscoveredAt:    time.Now(),
	}
	created, err := s.urls.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	s.log.Info("ledger.url_registered", "url_id", created.ID, "manufacturer_id", manufacturerID, "url", url)
	return created, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*entity.DiscoveredURL, error) {
	return s.urls.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f repository.URLFilter) ([]*entity.DiscoveredURL, error) {
	return s.urls.List(ctx, f)
}

// ApplyScrapeResult folds one extraction outcome into the record. The URL must
// currently be pending: a second outcome for an already-terminal URL is
// rejected with ErrInvalidTransition so a late duplicate job result cannot
// clobber the first one.
func (s *Service) ApplyScrapeResult(ctx context.Context, id uuid.UUID, outcome Outcome) (*entity.DiscoveredURL, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.urls.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Status != constants.ScrapePending {
		s.log.Warn("ledger.scrape_result_rejected", "url_id", id, "status", u.Status)
		return nil, fmt.Errorf("apply scrape result: url %s is %s: %w", id, u.Status, common.ErrInvalidTransition)
	}

	now := time.Now()
	if outcome.Success {
		u.Status = constants.ScrapeScraped
		u.ScrapedAt = &now
		u.ErrorMessage = nil
		u.ScrapedFields = outcome.Fields
	} else {
		u.Status = constants.ScrapeFailed
		u.ScrapedAt = nil
		msg := outcome.Message
		u.ErrorMessage = &msg
	}

	updated, err := s.urls.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	s.log.Info("ledger.scrape_result_applied", "url_id", id, "status", updated.Status)
	return updated, nil
}

// Requeue is the explicit path back into pending from a terminal scrape
// status. A blind retry is not enough to re-enter the scrape queue.
func (s *Service) Requeue(ctx context.Context, id uuid.UUID) (*entity.DiscoveredURL, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.urls.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !u.Status.Terminal() {
		return nil, fmt.Errorf("requeue: url %s is %s: %w", id, u.Status, common.ErrInvalidTransition)
	}

	u.Status = constants.ScrapePending
	u.ScrapedAt = nil
	u.ErrorMessage = nil

	updated, err := s.urls.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	s.log.Info("ledger.url_requeued", "url_id", id)
	return updated, nil
}

// Skip is the explicit human skip action. The auto-skip flag never calls
// this; it only hides the URL from the default selection.
func (s *Service) Skip(ctx context.Context, id uuid.UUID) (*entity.DiscoveredURL, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.urls.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Status != constants.ScrapePending {
		return nil, fmt.Errorf("skip: url %s is %s: %w", id, u.Status, common.ErrInvalidTransition)
	}

	u.Status = constants.ScrapeSkipped
	updated, err := s.urls.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	s.log.Info("ledger.url_skipped", "url_id", id)
	return updated, nil
}

// BeginDuplicateCheck stamps the start of a check so its eventual result can
// be ordered against competing results. Returns the stamp the resolver must
// carry into its Decision.
func (s *Service) BeginDuplicateCheck(ctx context.Context, id uuid.UUID) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.urls.GetByID(ctx, id)
	if err != nil {
		return time.Time{}, err
	}
	if u.Status != constants.ScrapeScraped {
		return time.Time{}, fmt.Errorf("duplicate check: url %s is %s, not scraped: %w", id, u.Status, common.ErrInvalidTransition)
	}

	now := time.Now()
	u.CheckStartedAt = &now
	if _, err := s.urls.Update(ctx, u); err != nil {
		return time.Time{}, err
	}
	return now, nil
}

// ApplyDuplicateResult folds one duplicate-check verdict into the record.
// Two guards apply, in order:
//   - a manual decision already on the record wins over any automatic verdict;
//   - a verdict whose CheckedAt is not newer than the stored one is stale.
// Both cases return ErrStaleResult and leave the record untouched.
func (s *Service) ApplyDuplicateResult(ctx context.Context, d Decision) (*entity.DiscoveredURL, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.urls.GetByID(ctx, d.URLID)
	if err != nil {
		return nil, err
	}
	if u.ManuallyResolved() && !constants.ManualReason(d.Reason) {
		s.log.Info("ledger.duplicate_result_stale", "url_id", d.URLID, "cause", "manual_decision_present")
		return nil, fmt.Errorf("duplicate result for %s: manual decision present: %w", d.URLID, common.ErrStaleResult)
	}
	if u.CheckedAt != nil && !d.CheckedAt.After(*u.CheckedAt) {
		s.log.Info("ledger.duplicate_result_stale", "url_id", d.URLID,
			"stored_checked_at", u.CheckedAt, "result_checked_at", d.CheckedAt)
		return nil, fmt.Errorf("duplicate result for %s: older than stored check: %w", d.URLID, common.ErrStaleResult)
	}

	return s.applyDecision(ctx, u, d)
}

// applyDecision writes a verdict without the staleness guards. Caller holds s.mu.
func (s *Service) applyDecision(ctx context.Context, u *entity.DiscoveredURL, d Decision) (*entity.DiscoveredURL, error) {
	u.DuplicateStatus = d.Status
	checked := d.CheckedAt
	u.CheckedAt = &checked

	switch d.Status {
	case constants.DuplicateConfirmed:
		u.ExistingMachineID = d.MachineID
		u.SimilarityScore = d.SimilarityScore
	case constants.DuplicateUnique:
		// unique clears the match evidence
		u.ExistingMachineID = nil
		u.SimilarityScore = nil
	case constants.DuplicateManualReview:
		u.ExistingMachineID = nil
		u.SimilarityScore = d.SimilarityScore
	default:
		return nil, fmt.Errorf("duplicate result for %s: status %q: %w", u.ID, d.Status, common.ErrInvalidInput)
	}
	if d.Reason != "" {
		reason := d.Reason
		u.DuplicateReason = &reason
	} else {
		u.DuplicateReason = nil
	}

	updated, err := s.urls.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	s.log.Info("ledger.duplicate_result_applied", "url_id", u.ID, "duplicate_status", d.Status, "reason", d.Reason)
	return updated, nil
}

// ConfirmDuplicate records the operator agreeing with a proposed match.
func (s *Service) ConfirmDuplicate(ctx context.Context, id uuid.UUID) (*entity.DiscoveredURL, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.urls.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.ExistingMachineID == nil {
		return nil, fmt.Errorf("confirm duplicate: url %s has no linked machine: %w", id, common.ErrInvalidTransition)
	}
	return s.applyDecision(ctx, u, Decision{
		URLID:           id,
		Status:          constants.DuplicateConfirmed,
		MachineID:       u.ExistingMachineID,
		SimilarityScore: u.SimilarityScore,
		Reason:          constants.ReasonManualConfirm,
		CheckedAt:       time.Now(),
	})
}

// MarkAsUnique records the operator rejecting a proposed match.
func (s *Service) MarkAsUnique(ctx context.Context, id uuid.UUID) (*entity.DiscoveredURL, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.urls.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.applyDecision(ctx, u, Decision{
		URLID:     id,
		Status:    constants.DuplicateUnique,
		Reason:    constants.ReasonManualUnique,
		CheckedAt: time.Now(),
	})
}

// MarkForReview parks the URL for human adjudication.
func (s *Service) MarkForReview(ctx context.Context, id uuid.UUID) (*entity.DiscoveredURL, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.urls.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.applyDecision(ctx, u, Decision{
		URLID:           id,
		Status:          constants.DuplicateManualReview,
		SimilarityScore: u.SimilarityScore,
		Reason:          constants.ReasonManualReview,
		CheckedAt:       time.Now(),
	})
}

// LinkToMachine manually links a URL to a catalog machine. Re-linking to the
// same machine is a no-op; linking to a different machine overwrites the link
// with similarity 1.0.
func (s *Service) LinkToMachine(ctx context.Context, id, machineID uuid.UUID) (*entity.DiscoveredURL, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.urls.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.ExistingMachineID != nil && *u.ExistingMachineID == machineID &&
		u.DuplicateStatus == constants.DuplicateConfirmed {
		return u, nil
	}
	if s.machines != nil {
		exists, err := s.machines.Exists(ctx, machineID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("link url %s: machine %s: %w", id, machineID, common.ErrNotFound)
		}
	}

	score := 1.0
	return s.applyDecision(ctx, u, Decision{
		URLID:           id,
		Status:          constants.DuplicateConfirmed,
		MachineID:       &machineID,
		SimilarityScore: &score,
		Reason:          constants.ReasonManualLink,
		CheckedAt:       time.Now(),
	})
}

// ResetDuplicateStatus returns the URL to an unchecked state, clearing any
// manual decision. The explicit per-URL re-run path calls this before
// re-running detection; nothing else removes a manual decision.
func (s *Service) ResetDuplicateStatus(ctx context.Context, id uuid.UUID) (*entity.DiscoveredURL, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.urls.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.DuplicateStatus = constants.DuplicatePending
	u.ExistingMachineID = nil
	u.SimilarityScore = nil
	u.DuplicateReason = nil
	u.CheckedAt = nil
	u.CheckStartedAt = nil

	updated, err := s.urls.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	s.log.Info("ledger.duplicate_status_reset", "url_id", id)
	return updated, nil
}

// ApplyClassification persists the external classifier's verdict. The
// auto-skip flag is advisory: it never transitions the scrape status.
func (s *Service) ApplyClassification(ctx context.Context, id uuid.UUID, cls constants.Classification, confidence float64, reason, machineType string, autoSkip bool) (*entity.DiscoveredURL, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.urls.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.MLClassification = &cls
	u.MLConfidence = &confidence
	if reason != "" {
		r := reason
		u.MLReason = &r
	}
	if machineType != "" {
		mt := machineType
		u.MachineType = &mt
	}
	u.ShouldAutoSkip = autoSkip

	updated, err := s.urls.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	s.log.Info("ledger.classification_applied",
		"url_id", id, "classification", cls, "confidence", confidence, "auto_skip", autoSkip)
	return updated, nil
}
