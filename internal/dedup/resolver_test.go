package dedup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/machinehub/discovery-pipeline/constants"
	"github.com/machinehub/discovery-pipeline/internal/catalog"
	"github.com/machinehub/discovery-pipeline/internal/common"
	"github.com/machinehub/discovery-pipeline/internal/entity"
	"github.com/machinehub/discovery-pipeline/internal/ledger"
	"github.com/machinehub/discovery-pipeline/internal/repository"
)

// stubIndex returns canned candidates regardless of fingerprint.
type stubIndex struct {
	matches []entity.CandidateMatch
}

func (s *stubIndex) FindCandidates(context.Context, entity.Fingerprint) ([]entity.CandidateMatch, error) {
	return s.matches, nil
}

type fixture struct {
	store    *repository.MemoryStore
	ledger   *ledger.Service
	resolver *Resolver
	mf       *entity.Manufacturer
}

func newFixture(t *testing.T, index catalog.Index) *fixture {
	t.Helper()
	store := repository.NewMemoryStore()
	lg := ledger.NewService(store.URLs(), store.Machines(), nil)
	mf := store.AddManufacturer(&entity.Manufacturer{Name: "Prusa"})
	if index == nil {
		index = catalog.NewIndex(store.Machines(), 10, nil)
	}
	r := NewResolver(lg, index, store.URLs(), common.DedupConfig{
		DuplicateThreshold: 0.90,
		ReviewThreshold:    0.60,
	}, nil)
	return &fixture{store: store, ledger: lg, resolver: r, mf: mf}
}

// scrapedURL registers a URL and lands a successful scrape on it.
func (f *fixture) scrapedURL(t *testing.T, url string, fields map[string]any) *entity.DiscoveredURL {
	t.Helper()
	ctx := context.Background()
	u, err := f.ledger.Register(ctx, f.mf.ID, url, nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	u, err = f.ledger.ApplyScrapeResult(ctx, u.ID, ledger.Success(fields))
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	return u
}

func TestClassifyThresholdBoundaries(t *testing.T) {
	f := newFixture(t, nil)

	tests := []struct {
		score float64
		want  constants.DuplicateStatus
	}{
		{1.0, constants.DuplicateConfirmed},
		{0.90, constants.DuplicateConfirmed},
		{0.899999, constants.DuplicateManualReview},
		{0.75, constants.DuplicateManualReview},
		{0.60, constants.DuplicateManualReview},
		{0.599999, constants.DuplicateUnique},
		{0.0, constants.DuplicateUnique},
	}
	for _, tt := range tests {
		if got := f.resolver.Classify(tt.score); got != tt.want {
			t.Errorf("Classify(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestCheckURLExactNameMatch(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	machine := f.store.AddMachine(&entity.CatalogMachine{
		ManufacturerID: f.mf.ID,
		Name:           "MK4S",
	})
	u := f.scrapedURL(t, "https://prusa.example/mk4s", map[string]any{"name": "MK4S"})

	got, err := f.resolver.CheckURL(ctx, u)
	if err != nil {
		t.Fatalf("check url: %v", err)
	}
	if got.DuplicateStatus != constants.DuplicateConfirmed {
		t.Fatalf("duplicate_status = %q, want duplicate", got.DuplicateStatus)
	}
	if got.ExistingMachineID == nil || *got.ExistingMachineID != machine.ID {
		t.Errorf("existing_machine_id = %v, want %v", got.ExistingMachineID, machine.ID)
	}
	if got.SimilarityScore == nil || *got.SimilarityScore < 0.90 {
		t.Errorf("similarity_score = %v, want >= 0.90", got.SimilarityScore)
	}
	if got.DuplicateReason == nil || *got.DuplicateReason != constants.ReasonSimilarityMatch {
		t.Errorf("duplicate_reason = %v, want similarity_match", got.DuplicateReason)
	}
}

func TestCheckURLNoCandidates(t *testing.T) {
	f := newFixture(t, nil)
	u := f.scrapedURL(t, "https://prusa.example/core-one", map[string]any{"name": "CORE One"})

	got, err := f.resolver.CheckURL(context.Background(), u)
	if err != nil {
		t.Fatalf("check url: %v", err)
	}
	if got.DuplicateStatus != constants.DuplicateUnique {
		t.Errorf("duplicate_status = %q, want unique", got.DuplicateStatus)
	}
	if got.ExistingMachineID != nil || got.SimilarityScore != nil {
		t.Error("unique verdict must carry no match evidence")
	}
}

func TestCheckURLAmbiguousScoreGoesToReview(t *testing.T) {
	index := &stubIndex{matches: []entity.CandidateMatch{
		{CatalogID: uuid.New(), Name: "MK3S+", SimilarityScore: 0.72, UpdatedAt: time.Now()},
	}}
	f := newFixture(t, index)
	u := f.scrapedURL(t, "https://prusa.example/mk4", map[string]any{"name": "MK4"})

	got, err := f.resolver.CheckURL(context.Background(), u)
	if err != nil {
		t.Fatalf("check url: %v", err)
	}
	if got.DuplicateStatus != constants.DuplicateManualReview {
		t.Fatalf("duplicate_status = %q, want manual_review", got.DuplicateStatus)
	}
	if got.ExistingMachineID != nil {
		t.Error("review verdict must not link a machine")
	}
	if got.SimilarityScore == nil || *got.SimilarityScore != 0.72 {
		t.Errorf("similarity_score = %v, want 0.72 retained for the reviewer", got.SimilarityScore)
	}
}

func TestRunDuplicateCheckIsRerunnable(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	f.store.AddMachine(&entity.CatalogMachine{ManufacturerID: f.mf.ID, Name: "MK4S"})
	dup := f.scrapedURL(t, "https://prusa.example/mk4s", map[string]any{"name": "MK4S"})
	f.scrapedURL(t, "https://prusa.example/ht90", map[string]any{"name": "HT90"})

	first, err := f.resolver.RunDuplicateCheck(ctx, nil)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.Checked != 2 {
		t.Errorf("first run checked = %d, want 2", first.Checked)
	}
	if first.DuplicatesFound != 1 {
		t.Errorf("first run duplicates_found = %d, want 1", first.DuplicatesFound)
	}

	before, _ := f.ledger.Get(ctx, dup.ID)

	// same catalog, same scraped data: second pass finds nothing to do
	second, err := f.resolver.RunDuplicateCheck(ctx, nil)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.Checked != 0 {
		t.Errorf("second run checked = %d, want 0", second.Checked)
	}

	after, _ := f.ledger.Get(ctx, dup.ID)
	if after.DuplicateStatus != before.DuplicateStatus ||
		!after.CheckedAt.Equal(*before.CheckedAt) {
		t.Error("second run changed an already-checked record")
	}
}

func TestRunDuplicateCheckScopedToManufacturer(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	other := f.store.AddManufacturer(&entity.Manufacturer{Name: "Bambu"})
	u, err := f.ledger.Register(ctx, other.ID, "https://bambu.example/x1c", nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := f.ledger.ApplyScrapeResult(ctx, u.ID, ledger.Success(map[string]any{"name": "X1C"})); err != nil {
		t.Fatalf("scrape: %v", err)
	}
	f.scrapedURL(t, "https://prusa.example/mk4s", map[string]any{"name": "MK4S"})

	stats, err := f.resolver.RunDuplicateCheck(ctx, &f.mf.ID)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if stats.Checked != 1 {
		t.Errorf("checked = %d, want 1 (other manufacturer excluded)", stats.Checked)
	}

	got, _ := f.ledger.Get(ctx, u.ID)
	if got.DuplicateStatus != constants.DuplicatePending {
		t.Errorf("out-of-scope url duplicate_status = %q, want pending", got.DuplicateStatus)
	}
}

func TestRunDuplicateCheckSkipsManualDecisions(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	f.store.AddMachine(&entity.CatalogMachine{ManufacturerID: f.mf.ID, Name: "MK4S"})
	u := f.scrapedURL(t, "https://prusa.example/mk4s", map[string]any{"name": "MK4S"})
	if _, err := f.ledger.MarkAsUnique(ctx, u.ID); err != nil {
		t.Fatalf("mark unique: %v", err)
	}

	stats, err := f.resolver.RunDuplicateCheck(ctx, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if stats.Checked != 0 {
		t.Errorf("checked = %d, want 0 (manually resolved url excluded)", stats.Checked)
	}
	got, _ := f.ledger.Get(ctx, u.ID)
	if got.DuplicateStatus != constants.DuplicateUnique {
		t.Errorf("manual decision overwritten: %q", got.DuplicateStatus)
	}
}

func TestRecheckURLReplacesManualDecision(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	machine := f.store.AddMachine(&entity.CatalogMachine{ManufacturerID: f.mf.ID, Name: "MK4S"})
	u := f.scrapedURL(t, "https://prusa.example/mk4s", map[string]any{"name": "MK4S"})
	if _, err := f.ledger.MarkAsUnique(ctx, u.ID); err != nil {
		t.Fatalf("mark unique: %v", err)
	}

	got, err := f.resolver.RecheckURL(ctx, u.ID)
	if err != nil {
		t.Fatalf("recheck: %v", err)
	}
	if got.DuplicateStatus != constants.DuplicateConfirmed {
		t.Errorf("duplicate_status = %q, want duplicate after explicit recheck", got.DuplicateStatus)
	}
	if got.ExistingMachineID == nil || *got.ExistingMachineID != machine.ID {
		t.Errorf("existing_machine_id = %v, want %v", got.ExistingMachineID, machine.ID)
	}
}

func TestFingerprintForFallsBackToURLSegment(t *testing.T) {
	u := &entity.DiscoveredURL{
		ManufacturerID: uuid.New(),
		URL:            "https://example.com/machines/ultimaker-s7/",
	}
	fp := FingerprintFor(u)
	if fp.Name != "ultimaker s7" {
		t.Errorf("fallback name = %q, want %q", fp.Name, "ultimaker s7")
	}
}

func TestFingerprintForSpecTokensSorted(t *testing.T) {
	u := &entity.DiscoveredURL{
		ManufacturerID: uuid.New(),
		URL:            "https://example.com/x",
		ScrapedFields: map[string]any{
			"name": "X1",
			"specs": map[string]any{
				"nozzle":       "0.4mm",
				"build_volume": "256mm",
			},
		},
	}
	fp := FingerprintFor(u)
	want := []string{"build_volume 256mm", "nozzle 0.4mm"}
	if len(fp.SpecTokens) != len(want) {
		t.Fatalf("spec tokens = %v, want %v", fp.SpecTokens, want)
	}
	for i := range want {
		if fp.SpecTokens[i] != want[i] {
			t.Errorf("spec token[%d] = %q, want %q", i, fp.SpecTokens[i], want[i])
		}
	}
}
