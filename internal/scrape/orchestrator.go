// Package scrape dispatches batches of discovered URLs to the external
// extraction service under a concurrency cap and folds every outcome back
// into the ledger.
package scrape

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/machinehub/discovery-pipeline/constants"
	"github.com/machinehub/discovery-pipeline/internal/common"
	"github.com/machinehub/discovery-pipeline/internal/entity"
	"github.com/machinehub/discovery-pipeline/internal/ledger"
)

// BatchHandle tracks one dispatched batch. Per-URL outcomes land both here
// and in the ledger; callers poll the ledger or wait on Done.
type BatchHandle struct {
	ID             uuid.UUID
	ManufacturerID uuid.UUID
	SubmittedAt    time.Time
	Total          int

	mu       sync.Mutex
	outcomes []entity.ScrapeOutcome
	done     chan struct{}
}

func (h *BatchHandle) Done() <-chan struct{} { return h.done }

func (h *BatchHandle) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-h.done:
		return nil
	}
}

// Snapshot returns a copy of the outcomes recorded so far.
func (h *BatchHandle) Snapshot() []entity.ScrapeOutcome {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]entity.ScrapeOutcome(nil), h.outcomes...)
}

func (h *BatchHandle) Status() constants.BatchStatus {
	select {
	case <-h.done:
		return constants.BatchCompleted
	default:
		return constants.BatchRunning
	}
}

func (h *BatchHandle) record(o entity.ScrapeOutcome) {
	h.mu.Lock()
	h.outcomes = append(h.outcomes, o)
	h.mu.Unlock()
}

type Option func(*Orchestrator)

func WithWorkers(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.defaultWorkers = n
		}
	}
}

func WithPerURLTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d > 0 {
			o.perURLTimeout = d
		}
	}
}

// Orchestrator submits batches to the extraction service. The worker cap is a
// backpressure control against a shared, rate-limited external resource:
// URLs beyond the cap queue on the work channel rather than spawning work.
type Orchestrator struct {
	ledger    *ledger.Service
	extractor Extractor
	log       *slog.Logger

	defaultWorkers int
	perURLTimeout  time.Duration

	mu      sync.Mutex
	batches map[uuid.UUID]*BatchHandle
}

func NewOrchestrator(lg *ledger.Service, extractor Extractor, log *slog.Logger, opts ...Option) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	o := &Orchestrator{
		ledger:         lg,
		extractor:      extractor,
		log:            log,
		defaultWorkers: 3,
		perURLTimeout:  2 * time.Minute,
		batches:        map[uuid.UUID]*BatchHandle{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Batch returns a previously dispatched handle, if still tracked.
func (o *Orchestrator) Batch(id uuid.UUID) (*BatchHandle, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	h, ok := o.batches[id]
	return h, ok
}

// Dispatch submits the given URLs as one batch. Each URL is submitted at most
// once; every dispatched URL ends in exactly one terminal scrape status. The
// call returns as soon as workers are running; extraction is long-running
// relative to a request cycle, so completion is observed via the handle or by
// polling the ledger.
//
// If the extraction service cannot be reached at all the batch is rejected
// and no URL leaves pending.
func (o *Orchestrator) Dispatch(ctx context.Context, urls []*entity.DiscoveredURL, manufacturerID uuid.UUID, maxWorkers int) (*BatchHandle, error) {
	if len(urls) == 0 {
		return nil, common.WrapError(common.ErrInvalidInput, "dispatch: empty batch")
	}
	if maxWorkers <= 0 {
		maxWorkers = o.defaultWorkers
	}
	if maxWorkers > len(urls) {
		maxWorkers = len(urls)
	}

	if err := o.extractor.Ping(ctx); err != nil {
		o.log.Error("scrape.dispatch_rejected", "manufacturer_id", manufacturerID, "err", err)
		return nil, err
	}

	// Deduplicate within the batch so no URL is submitted twice per dispatch.
	seen := make(map[uuid.UUID]struct{}, len(urls))
	work := make([]*entity.DiscoveredURL, 0, len(urls))
	for _, u := range urls {
		if _, dup := seen[u.ID]; dup {
			continue
		}
		seen[u.ID] = struct{}{}
		work = append(work, u)
	}

	h := &BatchHandle{
		ID:             uuid.New(),
		ManufacturerID: manufacturerID,
		SubmittedAt:    time.Now(),
		Total:          len(work),
		done:           make(chan struct{}),
	}
	o.mu.Lock()
	o.batches[h.ID] = h
	o.mu.Unlock()

	ch := make(chan *entity.DiscoveredURL, len(work))
	for _, u := range work {
		ch <- u
	}
	close(ch)

	o.log.Info("scrape.dispatch",
		"batch_id", h.ID, "manufacturer_id", manufacturerID, "urls", len(work), "max_workers", maxWorkers)

	var wg sync.WaitGroup
	for i := 0; i < maxWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for u := range ch {
				o.scrapeOne(h, u, workerID)
			}
		}(i + 1)
	}
	go func() {
		wg.Wait()
		close(h.done)
		o.log.Info("scrape.batch_completed", "batch_id", h.ID, "urls", h.Total)
	}()

	return h, nil
}

func (o *Orchestrator) scrapeOne(h *BatchHandle, u *entity.DiscoveredURL, workerID int) {
	ctx, cancel := context.WithTimeout(context.Background(), o.perURLTimeout)
	defer cancel()

	fields, err := o.extractor.Extract(ctx, u.URL, u.Category)

	var outcome ledger.Outcome
	if err != nil {
		outcome = ledger.Failure(err.Error())
		o.log.Warn("scrape.url_failed", "batch_id", h.ID, "worker_id", workerID, "url_id", u.ID, "err", err)
	} else {
		outcome = ledger.Success(fields)
		o.log.Info("scrape.url_scraped", "batch_id", h.ID, "worker_id", workerID, "url_id", u.ID)
	}

	updated, applyErr := o.ledger.ApplyScrapeResult(ctx, u.ID, outcome)
	if applyErr != nil {
		// An already-terminal URL keeps its first outcome; log and move on,
		// a per-URL rejection never aborts the batch.
		if errors.Is(applyErr, common.ErrInvalidTransition) {
			o.log.Warn("scrape.result_dropped", "batch_id", h.ID, "url_id", u.ID, "err", applyErr)
		} else {
			o.log.Error("scrape.apply_failed", "batch_id", h.ID, "url_id", u.ID, "err", applyErr)
		}
		h.record(entity.ScrapeOutcome{
			URLID:        u.ID,
			URL:          u.URL,
			Success:      false,
			ErrorMessage: applyErr.Error(),
			FinishedAt:   time.Now(),
		})
		return
	}

	h.record(entity.ScrapeOutcome{
		URLID:        u.ID,
		URL:          u.URL,
		Success:      updated.Status == constants.ScrapeScraped,
		Fields:       updated.ScrapedFields,
		ErrorMessage: deref(updated.ErrorMessage),
		FinishedAt:   time.Now(),
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
