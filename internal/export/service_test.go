package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/machinehub/discovery-pipeline/constants"
	"github.com/machinehub/discovery-pipeline/internal/entity"
	"github.com/machinehub/discovery-pipeline/internal/ledger"
	"github.com/machinehub/discovery-pipeline/internal/repository"
)

func TestExportReviewXLSX(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	lg := ledger.NewService(store.URLs(), store.Machines(), nil)
	mf := store.AddManufacturer(&entity.Manufacturer{Name: "Haas"})
	machine := store.AddMachine(&entity.CatalogMachine{ManufacturerID: mf.ID, Name: "VF-2SS"})

	dup, err := lg.Register(ctx, mf.ID, "https://haas.example/vf-2ss", nil)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := lg.ApplyScrapeResult(ctx, dup.ID, ledger.Success(map[string]any{"name": "VF-2SS"})); err != nil {
		t.Fatalf("scrape: %v", err)
	}
	if _, err := lg.LinkToMachine(ctx, dup.ID, machine.ID); err != nil {
		t.Fatalf("link: %v", err)
	}
	if _, err := lg.Register(ctx, mf.ID, "https://haas.example/vf-4", nil); err != nil {
		t.Fatalf("register: %v", err)
	}

	svc := NewService(store.URLs(), store.Machines(), nil)
	data, err := svc.ExportReviewXLSX(ctx, repository.URLFilter{ManufacturerID: &mf.ID})
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open exported workbook: %v", err)
	}
	defer wb.Close()

	rows, err := wb.GetRows("Discovered URLs")
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2 urls", len(rows))
	}
	if rows[0][0] != "URL" || rows[0][6] != "Duplicate Status" {
		t.Errorf("unexpected header row: %v", rows[0])
	}

	// rows come out in discovery order; the linked url was registered first
	linked := rows[1]
	if linked[0] != "https://haas.example/vf-2ss" {
		t.Errorf("row url = %q", linked[0])
	}
	if linked[6] != string(constants.DuplicateConfirmed) {
		t.Errorf("duplicate status column = %q, want %q", linked[6], constants.DuplicateConfirmed)
	}
	if linked[8] != "VF-2SS" {
		t.Errorf("matched machine column = %q, want VF-2SS", linked[8])
	}
}

func TestExportReviewXLSXEmptyFilter(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewService(store.URLs(), store.Machines(), nil)

	data, err := svc.ExportReviewXLSX(context.Background(), repository.URLFilter{})
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open exported workbook: %v", err)
	}
	defer wb.Close()

	rows, err := wb.GetRows("Discovered URLs")
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("rows = %d, want header only", len(rows))
	}
}
