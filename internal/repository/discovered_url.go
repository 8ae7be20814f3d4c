package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/machinehub/discovery-pipeline/constants"
	"github.com/machinehub/discovery-pipeline/gen/ent"
	"github.com/machinehub/discovery-pipeline/gen/ent/discoveredurl"
	"github.com/machinehub/discovery-pipeline/internal/common"
	"github.com/machinehub/discovery-pipeline/internal/entity"
)

// URLFilter narrows List queries; nil fields match everything.
type URLFilter struct {
	ManufacturerID  *uuid.UUID
	Status          *constants.ScrapeStatus
	DuplicateStatus *constants.DuplicateStatus
	// ExcludeAutoSkip drops rows flagged by the classification gate. Used by
	// the operator's default "select all pending" view; the flag is advisory,
	// flagged rows stay reachable without it.
	ExcludeAutoSkip bool
}

type DiscoveredURLRepository interface {
	Create(ctx context.Context, u *entity.DiscoveredURL) (*entity.DiscoveredURL, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DiscoveredURL, error)
	// Update persists the full mutable state of the row.
	Update(ctx context.Context, u *entity.DiscoveredURL) (*entity.DiscoveredURL, error)
	List(ctx context.Context, f URLFilter) ([]*entity.DiscoveredURL, error)
	// ListUnchecked returns scraped rows still awaiting a duplicate check,
	// optionally scoped to one manufacturer.
	ListUnchecked(ctx context.Context, manufacturerID *uuid.UUID) ([]*entity.DiscoveredURL, error)
	// ListUnclassified returns pending rows the classifier has not labeled yet.
	ListUnclassified(ctx context.Context, manufacturerID *uuid.UUID) ([]*entity.DiscoveredURL, error)
}

type discoveredURLRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDiscoveredURLRepository(entc *ent.Client, log *slog.Logger) DiscoveredURLRepository {
	if log == nil {
		log = slog.Default()
	}
	return &discoveredURLRepo{ent: entc, log: log}
}

func (r *discoveredURLRepo) Create(ctx context.Context, u *entity.DiscoveredURL) (*entity.DiscoveredURL, error) {
	create := r.ent.DiscoveredURL.
		Create().
		SetManufacturerID(u.ManufacturerID).
		SetURL(u.URL).
		SetNillableCategory(u.Category)
	if u.Status != "" {
		create.SetStatus(string(u.Status))
	}
	if u.DuplicateStatus != "" {
		create.SetDuplicateStatus(string(u.DuplicateStatus))
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.log.Error("discovered_url create failed", "url", u.URL, "err", err)
		return nil, common.WrapError(err, "create discovered url")
	}
	return urlToEntity(row), nil
}

func (r *discoveredURLRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.DiscoveredURL, error) {
	row, err := r.ent.DiscoveredURL.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.log.Error("discovered_url get failed", "id", id, "err", err)
		return nil, common.WrapError(err, "get discovered url")
	}
	return urlToEntity(row), nil
}

func (r *discoveredURLRepo) Update(ctx context.Context, u *entity.DiscoveredURL) (*entity.DiscoveredURL, error) {
	up := r.ent.DiscoveredURL.
		UpdateOneID(u.ID).
		SetStatus(string(u.Status)).
		SetDuplicateStatus(string(u.DuplicateStatus)).
		SetShouldAutoSkip(u.ShouldAutoSkip)

	if u.ScrapedAt != nil {
		up.SetScrapedAt(*u.ScrapedAt)
	} else {
		up.ClearScrapedAt()
	}
	if u.ErrorMessage != nil {
		up.SetErrorMessage(*u.ErrorMessage)
	} else {
		up.ClearErrorMessage()
	}
	if u.ScrapedFields != nil {
		up.SetScrapedFields(u.ScrapedFields)
	} else {
		up.ClearScrapedFields()
	}
	if u.ExistingMachineID != nil {
		up.SetExistingMachineID(*u.ExistingMachineID)
	} else {
		up.ClearExistingMachineID()
	}
	if u.SimilarityScore != nil {
		up.SetSimilarityScore(*u.SimilarityScore)
	} else {
		up.ClearSimilarityScore()
	}
	if u.DuplicateReason != nil {
		up.SetDuplicateReason(*u.DuplicateReason)
	} else {
		up.ClearDuplicateReason()
	}
	if u.CheckedAt != nil {
		up.SetCheckedAt(*u.CheckedAt)
	} else {
		up.ClearCheckedAt()
	}
	if u.CheckStartedAt != nil {
		up.SetCheckStartedAt(*u.CheckStartedAt)
	} else {
		up.ClearCheckStartedAt()
	}
	if u.MLClassification != nil {
		up.SetMlClassification(string(*u.MLClassification))
	} else {
		up.ClearMlClassification()
	}
	if u.MLConfidence != nil {
		up.SetMlConfidence(*u.MLConfidence)
	} else {
		up.ClearMlConfidence()
	}
	if u.MLReason != nil {
		up.SetMlReason(*u.MLReason)
	} else {
		up.ClearMlReason()
	}
	if u.MachineType != nil {
		up.SetMachineType(*u.MachineType)
	} else {
		up.ClearMachineType()
	}

	row, err := up.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.log.Error("discovered_url update failed", "id", u.ID, "err", err)
		return nil, common.WrapError(err, "update discovered url")
	}
	return urlToEntity(row), nil
}

func (r *discoveredURLRepo) List(ctx context.Context, f URLFilter) ([]*entity.DiscoveredURL, error) {
	q := r.ent.DiscoveredURL.Query()
	if f.ManufacturerID != nil {
		q = q.Where(discoveredurl.ManufacturerIDEQ(*f.ManufacturerID))
	}
	if f.Status != nil {
		q = q.Where(discoveredurl.StatusEQ(string(*f.Status)))
	}
	if f.DuplicateStatus != nil {
		q = q.Where(discoveredurl.DuplicateStatusEQ(string(*f.DuplicateStatus)))
	}
	if f.ExcludeAutoSkip {
		q = q.Where(discoveredurl.ShouldAutoSkip(false))
	}
	rows, err := q.Order(ent.Asc(discoveredurl.FieldDiscoveredAt)).All(ctx)
	if err != nil {
		r.log.Error("discovered_url list failed", "err", err)
		return nil, common.WrapError(err, "list discovered urls")
	}
	return urlsToEntities(rows), nil
}

func (r *discoveredURLRepo) ListUnchecked(ctx context.Context, manufacturerID *uuid.UUID) ([]*entity.DiscoveredURL, error) {
	q := r.ent.DiscoveredURL.Query().
		Where(
			discoveredurl.StatusEQ(string(constants.ScrapeScraped)),
			discoveredurl.DuplicateStatusEQ(string(constants.DuplicatePending)),
		)
	if manufacturerID != nil {
		q = q.Where(discoveredurl.ManufacturerIDEQ(*manufacturerID))
	}
	rows, err := q.Order(ent.Asc(discoveredurl.FieldDiscoveredAt)).All(ctx)
	if err != nil {
		r.log.Error("discovered_url list unchecked failed", "err", err)
		return nil, common.WrapError(err, "list unchecked urls")
	}
	return urlsToEntities(rows), nil
}

func (r *discoveredURLRepo) ListUnclassified(ctx context.Context, manufacturerID *uuid.UUID) ([]*entity.DiscoveredURL, error) {
	q := r.ent.DiscoveredURL.Query().
		Where(
			discoveredurl.StatusEQ(string(constants.ScrapePending)),
			discoveredurl.MlClassificationIsNil(),
		)
	if manufacturerID != nil {
		q = q.Where(discoveredurl.ManufacturerIDEQ(*manufacturerID))
	}
	rows, err := q.Order(ent.Asc(discoveredurl.FieldDiscoveredAt)).All(ctx)
	if err != nil {
		r.log.Error("discovered_url list unclassified failed", "err", err)
		return nil, common.WrapError(err, "list unclassified urls")
	}
	return urlsToEntities(rows), nil
}

func urlToEntity(row *ent.DiscoveredURL) *entity.DiscoveredURL {
	u := &entity.DiscoveredURL{
		ID:                row.ID,
		ManufacturerID:    row.ManufacturerID,
		URL:               row.URL,
		Category:          row.Category,
		Status:            constants.ScrapeStatus(row.Status),
		DiscoveredAt:      row.DiscoveredAt,
		ScrapedAt:         row.ScrapedAt,
		ErrorMessage:      row.ErrorMessage,
		ScrapedFields:     row.ScrapedFields,
		DuplicateStatus:   constants.DuplicateStatus(row.DuplicateStatus),
		ExistingMachineID: row.ExistingMachineID,
		SimilarityScore:   row.SimilarityScore,
		DuplicateReason:   row.DuplicateReason,
		CheckedAt:         row.CheckedAt,
		CheckStartedAt:    row.CheckStartedAt,
		MLConfidence:      row.MlConfidence,
		MLReason:          row.MlReason,
		MachineType:       row.MachineType,
		ShouldAutoSkip:    row.ShouldAutoSkip,
		UpdatedAt:         row.UpdatedAt,
	}
	if row.MlClassification != nil {
		c := constants.Classification(*row.MlClassification)
		u.MLClassification = &c
	}
	return u
}

func urlsToEntities(rows []*ent.DiscoveredURL) []*entity.DiscoveredURL {
	out := make([]*entity.DiscoveredURL, 0, len(rows))
	for _, row := range rows {
		out = append(out, urlToEntity(row))
	}
	return out
}
