package classify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/machinehub/discovery-pipeline/constants"
	"github.com/machinehub/discovery-pipeline/internal/common"
	"github.com/machinehub/discovery-pipeline/internal/entity"
	"github.com/machinehub/discovery-pipeline/internal/ledger"
	"github.com/machinehub/discovery-pipeline/internal/repository"
)

// fakeClassifier labels URLs by substring; URLs containing failSubstr error.
type fakeClassifier struct {
	verdicts   map[string]entity.Classification
	failSubstr string
}

func (f *fakeClassifier) Classify(_ context.Context, url string, _ *string) (entity.Classification, error) {
	if f.failSubstr != "" && strings.Contains(url, f.failSubstr) {
		return entity.Classification{}, errors.New("classifier unavailable")
	}
	for substr, v := range f.verdicts {
		if strings.Contains(url, substr) {
			return v, nil
		}
	}
	return entity.Classification{Label: "MACHINE", Confidence: 0.5}, nil
}

func newGateFixture(t *testing.T, cls Classifier) (*Gate, *ledger.Service, *entity.Manufacturer) {
	t.Helper()
	store := repository.NewMemoryStore()
	lg := ledger.NewService(store.URLs(), store.Machines(), nil)
	mf := store.AddManufacturer(&entity.Manufacturer{Name: "Trumpf"})
	return NewGate(lg, cls, store.URLs(), 0.75, nil), lg, mf
}

func TestShouldAutoSkip(t *testing.T) {
	g, _, _ := newGateFixture(t, nil)

	tests := []struct {
		cls        constants.Classification
		confidence float64
		want       bool
	}{
		{constants.ClassMaterial, 0.99, true},
		{constants.ClassMaterial, 0.75, true},  // threshold is inclusive
		{constants.ClassMaterial, 0.74, false}, // not confident enough
		{constants.ClassAccessory, 0.80, true},
		{constants.ClassService, 1.0, true},
		{constants.ClassMachine, 1.0, false}, // machines are never auto-skipped
		{constants.ClassMachine, 0.10, false},
	}
	for _, tt := range tests {
		if got := g.ShouldAutoSkip(tt.cls, tt.confidence); got != tt.want {
			t.Errorf("ShouldAutoSkip(%s, %v) = %v, want %v", tt.cls, tt.confidence, got, tt.want)
		}
	}
}

func TestApplyClassificationFlagIsAdvisory(t *testing.T) {
	g, lg, mf := newGateFixture(t, nil)
	ctx := context.Background()

	u, err := lg.Register(ctx, mf.ID, "https://trumpf.example/laser-consumables", nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := g.ApplyClassification(ctx, u.ID, entity.Classification{
		Label: "material", Confidence: 0.92, Reason: "consumables listing",
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !got.ShouldAutoSkip {
		t.Error("confident MATERIAL label not flagged")
	}
	if got.Status != constants.ScrapePending {
		t.Errorf("status = %q; the flag must not transition the scrape status", got.Status)
	}
	if got.MLClassification == nil || *got.MLClassification != constants.ClassMaterial {
		t.Errorf("ml_classification = %v, want MATERIAL (label normalized)", got.MLClassification)
	}
}

func TestApplyClassificationRejectsUnknownLabel(t *testing.T) {
	g, lg, mf := newGateFixture(t, nil)
	ctx := context.Background()

	u, err := lg.Register(ctx, mf.ID, "https://trumpf.example/x", nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err = g.ApplyClassification(ctx, u.ID, entity.Classification{Label: "GADGET", Confidence: 0.9})
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestApplyClassificationRejectsConfidenceOutOfRange(t *testing.T) {
	g, lg, mf := newGateFixture(t, nil)
	ctx := context.Background()

	u, err := lg.Register(ctx, mf.ID, "https://trumpf.example/x", nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	for _, confidence := range []float64{-0.1, 1.1} {
		_, err = g.ApplyClassification(ctx, u.ID, entity.Classification{Label: "MACHINE", Confidence: confidence})
		if !errors.Is(err, common.ErrInvalidInput) {
			t.Errorf("confidence %v: err = %v, want ErrInvalidInput", confidence, err)
		}
	}
}

func TestClassifyPending(t *testing.T) {
	cls := &fakeClassifier{
		verdicts: map[string]entity.Classification{
			"trulaser":  {Label: "MACHINE", Confidence: 0.97, MachineType: "laser_cutter"},
			"nozzles":   {Label: "ACCESSORY", Confidence: 0.91},
			"financing": {Label: "SERVICE", Confidence: 0.55},
		},
		failSubstr: "flaky",
	}
	g, lg, mf := newGateFixture(t, cls)
	ctx := context.Background()

	urls := []string{
		"https://trumpf.example/trulaser-3030",
		"https://trumpf.example/nozzles",
		"https://trumpf.example/financing",
		"https://trumpf.example/flaky-page",
	}
	ids := make(map[string]*entity.DiscoveredURL, len(urls))
	for _, raw := range urls {
		u, err := lg.Register(ctx, mf.ID, raw, nil)
		if err != nil {
			t.Fatalf("register: %v", err)
		}
		ids[raw] = u
	}

	stats, err := g.ClassifyPending(ctx, nil)
	if err != nil {
		t.Fatalf("classify pending: %v", err)
	}
	if stats.Classified != 3 {
		t.Errorf("classified = %d, want 3", stats.Classified)
	}
	if stats.AutoSkipped != 1 {
		t.Errorf("auto_skipped = %d, want 1 (only the confident accessory)", stats.AutoSkipped)
	}
	if stats.Failed != 1 {
		t.Errorf("failed = %d, want 1", stats.Failed)
	}

	machine, _ := lg.Get(ctx, ids["https://trumpf.example/trulaser-3030"].ID)
	if machine.ShouldAutoSkip {
		t.Error("MACHINE url flagged for auto-skip")
	}
	if machine.MachineType == nil || *machine.MachineType != "laser_cutter" {
		t.Errorf("machine_type = %v, want laser_cutter", machine.MachineType)
	}

	// low-confidence SERVICE stays unflagged
	service, _ := lg.Get(ctx, ids["https://trumpf.example/financing"].ID)
	if service.ShouldAutoSkip {
		t.Error("low-confidence SERVICE url flagged for auto-skip")
	}

	// a second pass only picks up the previously failed URL
	second, err := g.ClassifyPending(ctx, nil)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if second.Classified != 0 || second.Failed != 1 {
		t.Errorf("second pass = %+v, want only the flaky url retried", second)
	}
}
