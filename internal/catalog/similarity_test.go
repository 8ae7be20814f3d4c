package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/machinehub/discovery-pipeline/internal/entity"
	"github.com/machinehub/discovery-pipeline/internal/repository"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"HAAS VF-2SS", "haas vf 2ss"},
		{"  haas   vf 2ss  ", "haas vf 2ss"},
		{"MK4S", "mk4s"},
		{"Ultimaker S7 (2023)", "ultimaker s7 2023"},
		{"---", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScoreIdenticalNames(t *testing.T) {
	fp := entity.Fingerprint{Name: "VF-2SS"}
	m := &entity.CatalogMachine{Name: "vf 2ss"}
	if got := Score(fp, m); got != 1.0 {
		t.Errorf("Score = %v, want 1.0 for names equal after normalization", got)
	}
}

func TestScoreCloserNameScoresHigher(t *testing.T) {
	fp := entity.Fingerprint{Name: "MK4S"}
	near := &entity.CatalogMachine{Name: "MK4"}
	far := &entity.CatalogMachine{Name: "HT90 Tool Changer"}

	if Score(fp, near) <= Score(fp, far) {
		t.Errorf("Score(near)=%v must exceed Score(far)=%v", Score(fp, near), Score(fp, far))
	}
}

func TestScoreTokenOverlapSeparatesTrimLevels(t *testing.T) {
	fp := entity.Fingerprint{
		Name:       "VF-2",
		SpecTokens: []string{"travel x 762mm", "spindle 8100rpm"},
	}
	same := &entity.CatalogMachine{
		Name:       "VF-2",
		SpecTokens: []string{"travel x 762mm", "spindle 8100rpm"},
	}
	other := &entity.CatalogMachine{
		Name:       "VF-2",
		SpecTokens: []string{"travel x 762mm", "spindle 12000rpm"},
	}

	sSame, sOther := Score(fp, same), Score(fp, other)
	if sSame != 1.0 {
		t.Errorf("identical name and tokens: Score = %v, want 1.0", sSame)
	}
	if sOther >= sSame {
		t.Errorf("partial token overlap must score below full overlap: %v >= %v", sOther, sSame)
	}
}

func TestScoreWithoutTokensUsesNameAlone(t *testing.T) {
	fp := entity.Fingerprint{Name: "MK4S"}
	m := &entity.CatalogMachine{Name: "MK4S"}
	if got := Score(fp, m); got != 1.0 {
		t.Errorf("Score = %v, want 1.0 (empty overlap must not dilute an exact name)", got)
	}
}

func TestFindCandidatesOrderAndTieBreak(t *testing.T) {
	store := repository.NewMemoryStore()
	mfID := uuid.New()
	now := time.Now()

	older := store.AddMachine(&entity.CatalogMachine{
		ManufacturerID: mfID, Name: "MK4S", UpdatedAt: now.Add(-time.Hour),
	})
	newer := store.AddMachine(&entity.CatalogMachine{
		ManufacturerID: mfID, Name: "MK4S", UpdatedAt: now,
	})
	store.AddMachine(&entity.CatalogMachine{
		ManufacturerID: mfID, Name: "HT90", UpdatedAt: now,
	})

	ix := NewIndex(store.Machines(), 10, nil)
	got, err := ix.FindCandidates(context.Background(), entity.Fingerprint{
		ManufacturerID: mfID, Name: "MK4S",
	})
	if err != nil {
		t.Fatalf("find candidates: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("no candidates returned")
	}
	if got[0].CatalogID != newer.ID {
		t.Errorf("top candidate = %v, want most recently updated %v on a tie", got[0].CatalogID, newer.ID)
	}
	if len(got) > 1 && got[1].CatalogID != older.ID {
		t.Errorf("second candidate = %v, want %v", got[1].CatalogID, older.ID)
	}
	for i := 1; i < len(got); i++ {
		if got[i].SimilarityScore > got[i-1].SimilarityScore {
			t.Errorf("candidates out of order at %d: %v > %v", i, got[i].SimilarityScore, got[i-1].SimilarityScore)
		}
	}
}

func TestFindCandidatesCapped(t *testing.T) {
	store := repository.NewMemoryStore()
	mfID := uuid.New()
	for i := 0; i < 5; i++ {
		store.AddMachine(&entity.CatalogMachine{ManufacturerID: mfID, Name: "MK4S"})
	}

	ix := NewIndex(store.Machines(), 3, nil)
	got, err := ix.FindCandidates(context.Background(), entity.Fingerprint{
		ManufacturerID: mfID, Name: "MK4S",
	})
	if err != nil {
		t.Fatalf("find candidates: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("len(candidates) = %d, want 3 (capped)", len(got))
	}
}

func TestFindCandidatesScopedToManufacturer(t *testing.T) {
	store := repository.NewMemoryStore()
	mine := uuid.New()
	store.AddMachine(&entity.CatalogMachine{ManufacturerID: uuid.New(), Name: "MK4S"})

	ix := NewIndex(store.Machines(), 10, nil)
	got, err := ix.FindCandidates(context.Background(), entity.Fingerprint{
		ManufacturerID: mine, Name: "MK4S",
	})
	if err != nil {
		t.Fatalf("find candidates: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len(candidates) = %d, want 0 (other manufacturers never match)", len(got))
	}
}
