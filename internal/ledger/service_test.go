package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/machinehub/discovery-pipeline/constants"
	"github.com/machinehub/discovery-pipeline/internal/common"
	"github.com/machinehub/discovery-pipeline/internal/entity"
	"github.com/machinehub/discovery-pipeline/internal/repository"
)

func newTestService(t *testing.T) (*Service, *repository.MemoryStore, uuid.UUID) {
	t.Helper()
	store := repository.NewMemoryStore()
	svc := NewService(store.URLs(), store.Machines(), nil)

	mf := store.AddManufacturer(&entity.Manufacturer{Name: "Haas"})
	u, err := svc.Register(context.Background(), mf.ID, "https://haas.example/vf-2ss", nil)
	if err != nil {
		t.Fatalf("register url: %v", err)
	}
	return svc, store, u.ID
}

func TestApplyScrapeResultSuccess(t *testing.T) {
	svc, _, id := newTestService(t)
	ctx := context.Background()

	fields := map[string]any{"name": "VF-2SS"}
	u, err := svc.ApplyScrapeResult(ctx, id, Success(fields))
	if err != nil {
		t.Fatalf("apply scrape result: %v", err)
	}
	if u.Status != constants.ScrapeScraped {
		t.Errorf("status = %q, want scraped", u.Status)
	}
	if u.ScrapedAt == nil {
		t.Error("scraped_at not set")
	}
	if u.DuplicateStatus != constants.DuplicatePending {
		t.Errorf("duplicate_status = %q, want pending (unchanged)", u.DuplicateStatus)
	}
	if u.ScrapedFields["name"] != "VF-2SS" {
		t.Errorf("scraped fields not stored: %v", u.ScrapedFields)
	}
}

func TestApplyScrapeResultFailure(t *testing.T) {
	svc, _, id := newTestService(t)
	ctx := context.Background()

	u, err := svc.ApplyScrapeResult(ctx, id, Failure("timeout after 90s"))
	if err != nil {
		t.Fatalf("apply scrape result: %v", err)
	}
	if u.Status != constants.ScrapeFailed {
		t.Errorf("status = %q, want failed", u.Status)
	}
	if u.ScrapedAt != nil {
		t.Error("scraped_at must stay unset on failure")
	}
	if u.ErrorMessage == nil || *u.ErrorMessage != "timeout after 90s" {
		t.Errorf("error_message = %v, want timeout message", u.ErrorMessage)
	}
}

func TestApplyScrapeResultRejectsSecondOutcome(t *testing.T) {
	svc, _, id := newTestService(t)
	ctx := context.Background()

	first, err := svc.ApplyScrapeResult(ctx, id, Success(map[string]any{"name": "VF-2SS"}))
	if err != nil {
		t.Fatalf("first apply: %v", err)
	}

	_, err = svc.ApplyScrapeResult(ctx, id, Failure("late duplicate job"))
	if !errors.Is(err, common.ErrInvalidTransition) {
		t.Fatalf("second apply err = %v, want ErrInvalidTransition", err)
	}

	u, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.Status != constants.ScrapeScraped {
		t.Errorf("status = %q, first outcome clobbered", u.Status)
	}
	if u.ScrapedAt == nil || !u.ScrapedAt.Equal(*first.ScrapedAt) {
		t.Errorf("scraped_at changed by rejected second apply")
	}
}

func TestApplyScrapeResultUnknownURL(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ApplyScrapeResult(context.Background(), uuid.New(), Success(nil))
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRequeueAllowsNewOutcome(t *testing.T) {
	svc, _, id := newTestService(t)
	ctx := context.Background()

	if _, err := svc.ApplyScrapeResult(ctx, id, Failure("boom")); err != nil {
		t.Fatalf("apply: %v", err)
	}

	u, err := svc.Requeue(ctx, id)
	if err != nil {
		t.Fatalf("requeue: %v", err)
	}
	if u.Status != constants.ScrapePending {
		t.Errorf("status = %q, want pending", u.Status)
	}
	if u.ErrorMessage != nil {
		t.Error("error_message not cleared on requeue")
	}

	if _, err := svc.ApplyScrapeResult(ctx, id, Success(map[string]any{"name": "x"})); err != nil {
		t.Fatalf("apply after requeue: %v", err)
	}
}

func TestRequeueRejectsPendingURL(t *testing.T) {
	svc, _, id := newTestService(t)

	_, err := svc.Requeue(context.Background(), id)
	if !errors.Is(err, common.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestSkipTransitions(t *testing.T) {
	svc, _, id := newTestService(t)
	ctx := context.Background()

	u, err := svc.Skip(ctx, id)
	if err != nil {
		t.Fatalf("skip: %v", err)
	}
	if u.Status != constants.ScrapeSkipped {
		t.Errorf("status = %q, want skipped", u.Status)
	}

	// skipped is terminal; a scrape outcome must not land
	if _, err := svc.ApplyScrapeResult(ctx, id, Success(nil)); !errors.Is(err, common.ErrInvalidTransition) {
		t.Fatalf("apply on skipped err = %v, want ErrInvalidTransition", err)
	}
}

func scrapeURL(t *testing.T, svc *Service, id uuid.UUID) {
	t.Helper()
	if _, err := svc.ApplyScrapeResult(context.Background(), id, Success(map[string]any{"name": "VF-2SS"})); err != nil {
		t.Fatalf("scrape url: %v", err)
	}
}

func TestApplyDuplicateResultStaleDiscarded(t *testing.T) {
	svc, _, id := newTestService(t)
	ctx := context.Background()
	scrapeURL(t, svc, id)

	t1 := time.Now()
	t2 := t1.Add(time.Second)
	score1 := 0.95
	score2 := 0.70
	machineID := uuid.New()

	r1 := Decision{URLID: id, Status: constants.DuplicateConfirmed, MachineID: &machineID,
		SimilarityScore: &score1, Reason: constants.ReasonSimilarityMatch, CheckedAt: t1}
	r2 := Decision{URLID: id, Status: constants.DuplicateManualReview,
		SimilarityScore: &score2, Reason: constants.ReasonSimilarityMatch, CheckedAt: t2}

	// newer result lands first
	if _, err := svc.ApplyDuplicateResult(ctx, r2); err != nil {
		t.Fatalf("apply r2: %v", err)
	}
	// older result arrives late and must be discarded
	if _, err := svc.ApplyDuplicateResult(ctx, r1); !errors.Is(err, common.ErrStaleResult) {
		t.Fatalf("apply r1 err = %v, want ErrStaleResult", err)
	}

	u, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.DuplicateStatus != constants.DuplicateManualReview {
		t.Errorf("duplicate_status = %q, want manual_review from r2", u.DuplicateStatus)
	}
	if u.SimilarityScore == nil || *u.SimilarityScore != score2 {
		t.Errorf("similarity_score = %v, want %v from r2", u.SimilarityScore, score2)
	}
	if u.CheckedAt == nil || !u.CheckedAt.Equal(t2) {
		t.Errorf("checked_at = %v, want t2", u.CheckedAt)
	}
}

func TestApplyDuplicateResultEqualTimestampDiscarded(t *testing.T) {
	svc, _, id := newTestService(t)
	ctx := context.Background()
	scrapeURL(t, svc, id)

	at := time.Now()
	d := Decision{URLID: id, Status: constants.DuplicateUnique, CheckedAt: at}
	if _, err := svc.ApplyDuplicateResult(ctx, d); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if _, err := svc.ApplyDuplicateResult(ctx, d); !errors.Is(err, common.ErrStaleResult) {
		t.Fatalf("equal checked_at err = %v, want ErrStaleResult", err)
	}
}

func TestManualDecisionBeatsLaterAutomaticResult(t *testing.T) {
	svc, _, id := newTestService(t)
	ctx := context.Background()
	scrapeURL(t, svc, id)

	if _, err := svc.MarkAsUnique(ctx, id); err != nil {
		t.Fatalf("mark unique: %v", err)
	}

	score := 0.99
	machineID := uuid.New()
	late := Decision{URLID: id, Status: constants.DuplicateConfirmed, MachineID: &machineID,
		SimilarityScore: &score, Reason: constants.ReasonSimilarityMatch,
		CheckedAt: time.Now().Add(time.Hour)}

	if _, err := svc.ApplyDuplicateResult(ctx, late); !errors.Is(err, common.ErrStaleResult) {
		t.Fatalf("automatic result over manual err = %v, want ErrStaleResult", err)
	}

	u, _ := svc.Get(ctx, id)
	if u.DuplicateStatus != constants.DuplicateUnique {
		t.Errorf("duplicate_status = %q, manual decision lost", u.DuplicateStatus)
	}
}

func TestMarkAsUniqueClearsMatchEvidence(t *testing.T) {
	svc, store, id := newTestService(t)
	ctx := context.Background()
	scrapeURL(t, svc, id)

	machine := store.AddMachine(&entity.CatalogMachine{Name: "VF-2SS"})
	if _, err := svc.LinkToMachine(ctx, id, machine.ID); err != nil {
		t.Fatalf("link: %v", err)
	}

	u, err := svc.MarkAsUnique(ctx, id)
	if err != nil {
		t.Fatalf("mark unique: %v", err)
	}
	if u.DuplicateStatus != constants.DuplicateUnique {
		t.Errorf("duplicate_status = %q, want unique", u.DuplicateStatus)
	}
	if u.ExistingMachineID != nil {
		t.Error("existing_machine_id not cleared")
	}
	if u.SimilarityScore != nil {
		t.Error("similarity_score not cleared")
	}
}

func TestLinkToMachineIdempotent(t *testing.T) {
	svc, store, id := newTestService(t)
	ctx := context.Background()
	scrapeURL(t, svc, id)

	machine := store.AddMachine(&entity.CatalogMachine{Name: "VF-2SS"})

	first, err := svc.LinkToMachine(ctx, id, machine.ID)
	if err != nil {
		t.Fatalf("first link: %v", err)
	}
	second, err := svc.LinkToMachine(ctx, id, machine.ID)
	if err != nil {
		t.Fatalf("second link: %v", err)
	}

	if second.DuplicateStatus != constants.DuplicateConfirmed ||
		*second.ExistingMachineID != machine.ID ||
		*second.SimilarityScore != 1.0 ||
		*second.DuplicateReason != constants.ReasonManualLink {
		t.Errorf("state changed by repeated link: %+v", second)
	}
	if !second.CheckedAt.Equal(*first.CheckedAt) {
		t.Error("checked_at changed by repeated link; second call must be a no-op")
	}
}

func TestLinkToMachineOverwritesDifferentMachine(t *testing.T) {
	svc, store, id := newTestService(t)
	ctx := context.Background()
	scrapeURL(t, svc, id)

	first := store.AddMachine(&entity.CatalogMachine{Name: "VF-2SS"})
	second := store.AddMachine(&entity.CatalogMachine{Name: "VF-4"})

	if _, err := svc.LinkToMachine(ctx, id, first.ID); err != nil {
		t.Fatalf("link first: %v", err)
	}
	u, err := svc.LinkToMachine(ctx, id, second.ID)
	if err != nil {
		t.Fatalf("link second: %v", err)
	}
	if *u.ExistingMachineID != second.ID {
		t.Errorf("existing_machine_id = %v, want %v", u.ExistingMachineID, second.ID)
	}
	if *u.SimilarityScore != 1.0 {
		t.Errorf("similarity_score = %v, want 1.0", *u.SimilarityScore)
	}
	if *u.DuplicateReason != constants.ReasonManualLink {
		t.Errorf("duplicate_reason = %q, want manual_link", *u.DuplicateReason)
	}
}

func TestLinkToMachineUnknownMachine(t *testing.T) {
	svc, _, id := newTestService(t)
	scrapeURL(t, svc, id)

	_, err := svc.LinkToMachine(context.Background(), id, uuid.New())
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestConfirmDuplicateRequiresLinkedMachine(t *testing.T) {
	svc, _, id := newTestService(t)

	_, err := svc.ConfirmDuplicate(context.Background(), id)
	if !errors.Is(err, common.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestResetDuplicateStatusClearsManualDecision(t *testing.T) {
	svc, _, id := newTestService(t)
	ctx := context.Background()
	scrapeURL(t, svc, id)

	if _, err := svc.MarkAsUnique(ctx, id); err != nil {
		t.Fatalf("mark unique: %v", err)
	}
	u, err := svc.ResetDuplicateStatus(ctx, id)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if u.DuplicateStatus != constants.DuplicatePending {
		t.Errorf("duplicate_status = %q, want pending", u.DuplicateStatus)
	}
	if u.DuplicateReason != nil || u.CheckedAt != nil {
		t.Error("reason/checked_at not cleared by reset")
	}

	// a fresh automatic result can now land
	d := Decision{URLID: id, Status: constants.DuplicateUnique, CheckedAt: time.Now()}
	if _, err := svc.ApplyDuplicateResult(ctx, d); err != nil {
		t.Fatalf("apply after reset: %v", err)
	}
}

func TestApplyClassificationNeverTouchesStatus(t *testing.T) {
	svc, _, id := newTestService(t)
	ctx := context.Background()

	u, err := svc.ApplyClassification(ctx, id, constants.ClassMaterial, 0.98, "filament spool", "", true)
	if err != nil {
		t.Fatalf("apply classification: %v", err)
	}
	if !u.ShouldAutoSkip {
		t.Error("should_auto_skip not set")
	}
	if u.Status != constants.ScrapePending {
		t.Errorf("status = %q, auto-skip must stay advisory", u.Status)
	}
	if u.MLClassification == nil || *u.MLClassification != constants.ClassMaterial {
		t.Errorf("ml_classification = %v, want MATERIAL", u.MLClassification)
	}
	if u.MLConfidence == nil || *u.MLConfidence != 0.98 {
		t.Errorf("ml_confidence = %v, want 0.98", u.MLConfidence)
	}
}

func TestBeginDuplicateCheckRequiresScraped(t *testing.T) {
	svc, _, id := newTestService(t)

	_, err := svc.BeginDuplicateCheck(context.Background(), id)
	if !errors.Is(err, common.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}
