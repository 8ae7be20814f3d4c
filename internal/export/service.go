package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/machinehub/discovery-pipeline/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// offline operator review.
type Service struct {
	urls     repository.DiscoveredURLRepository
	machines repository.CatalogMachineRepository
	logger   *slog.Logger
}

func NewService(urls repository.DiscoveredURLRepository, machines repository.CatalogMachineRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{urls: urls, machines: machines, logger: logger}
}

// ExportReviewXLSX returns a workbook of discovered URLs with their scrape,
// duplicate and classification state, plus the linked catalog machine name
// where one exists.
func (s *Service) ExportReviewXLSX(ctx context.Context, f repository.URLFilter) ([]byte, error) {
	start := time.Now()

	urls, err := s.urls.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("query discovered urls: %w", err)
	}

	wb := excelize.NewFile()
	const sheet = "Discovered URLs"
	if index, _ := wb.GetSheetIndex(sheet); index == -1 {
		if _, err := wb.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := wb.GetSheetIndex(sheet)
	wb.SetActiveSheet(activeIndex)
	// drop the default sheet excelize creates
	if index, _ := wb.GetSheetIndex("Sheet1"); index != -1 {
		_ = wb.DeleteSheet("Sheet1")
	}

	headers := []string{
		"URL",
		"Category",
		"Status",
		"Discovered At",
		"Scraped At",
		"Error",
		"Duplicate Status",
		"Similarity",
		"Matched Machine",
		"Classification",
		"Confidence",
		"Auto-Skip",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = wb.SetCellValue(sheet, cell, h)
	}

	// machine names are looked up once per distinct id
	names := map[uuid.UUID]string{}
	machineName := func(id *uuid.UUID) string {
		if id == nil {
			return ""
		}
		if name, ok := names[*id]; ok {
			return name
		}
		name := ""
		if m, err := s.machines.GetByID(ctx, *id); err == nil {
			name = m.Name
		}
		names[*id] = name
		return name
	}

	row := 2
	for _, u := range urls {
		classification := ""
		if u.MLClassification != nil {
			classification = string(*u.MLClassification)
		}
		values := []any{
			u.URL,
			strOrEmpty(u.Category),
			string(u.Status),
			u.DiscoveredAt.UTC().Format(time.RFC3339),
			timeOrEmpty(u.ScrapedAt),
			strOrEmpty(u.ErrorMessage),
			string(u.DuplicateStatus),
			floatOrEmpty(u.SimilarityScore),
			machineName(u.ExistingMachineID),
			classification,
			floatOrEmpty(u.MLConfidence),
			u.ShouldAutoSkip,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = wb.SetCellValue(sheet, cell, v)
		}
		row++
	}

	buf, err := wb.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.review_xlsx",
		"rows", len(urls), "bytes", buf.Len(), "elapsed_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func timeOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func floatOrEmpty(f *float64) any {
	if f == nil {
		return ""
	}
	return *f
}
