// Package catalog answers one question for the pipeline: which already
// imported machines look like this fingerprint? The catalog itself is owned
// by the import path; this package only reads it.
package catalog

import (
	"context"
	"log/slog"
	"sort"

	"github.com/machinehub/discovery-pipeline/internal/entity"
	"github.com/machinehub/discovery-pipeline/internal/repository"
)

// Index is the pipeline's read-only view of the existing catalog.
type Index interface {
	FindCandidates(ctx context.Context, fp entity.Fingerprint) ([]entity.CandidateMatch, error)
}

type machineIndex struct {
	machines      repository.CatalogMachineRepository
	maxCandidates int
	log           *slog.Logger
}

func NewIndex(machines repository.CatalogMachineRepository, maxCandidates int, log *slog.Logger) Index {
	if maxCandidates <= 0 {
		maxCandidates = 10
	}
	if log == nil {
		log = slog.Default()
	}
	return &machineIndex{machines: machines, maxCandidates: maxCandidates, log: log}
}

// FindCandidates scores every catalog machine of the fingerprint's
// manufacturer and returns the strongest matches, highest score first. Ties
// rank the most recently updated machine first.
func (ix *machineIndex) FindCandidates(ctx context.Context, fp entity.Fingerprint) ([]entity.CandidateMatch, error) {
	rows, err := ix.machines.ListByManufacturer(ctx, fp.ManufacturerID)
	if err != nil {
		return nil, err
	}

	matches := make([]entity.CandidateMatch, 0, len(rows))
	for _, m := range rows {
		score := Score(fp, m)
		if score <= 0 {
			continue
		}
		matches = append(matches, entity.CandidateMatch{
			CatalogID:       m.ID,
			Name:            m.Name,
			SimilarityScore: score,
			UpdatedAt:       m.UpdatedAt,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].SimilarityScore == matches[j].SimilarityScore {
			return matches[i].UpdatedAt.After(matches[j].UpdatedAt)
		}
		return matches[i].SimilarityScore > matches[j].SimilarityScore
	})
	if len(matches) > ix.maxCandidates {
		matches = matches[:ix.maxCandidates]
	}

	ix.log.Debug("catalog.candidates",
		"manufacturer_id", fp.ManufacturerID, "name", fp.Name, "count", len(matches))
	return matches, nil
}
