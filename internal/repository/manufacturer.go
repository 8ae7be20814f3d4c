package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/machinehub/discovery-pipeline/gen/ent"
	"github.com/machinehub/discovery-pipeline/gen/ent/manufacturer"
	"github.com/machinehub/discovery-pipeline/internal/common"
	"github.com/machinehub/discovery-pipeline/internal/entity"
)

type ManufacturerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Manufacturer, error)
	GetOrCreateByName(ctx context.Context, name string) (*entity.Manufacturer, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type manufacturerRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewManufacturerRepository(entc *ent.Client, log *slog.Logger) ManufacturerRepository {
	if log == nil {
		log = slog.Default()
	}
	return &manufacturerRepo{ent: entc, log: log}
}

func (r *manufacturerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Manufacturer, error) {
	row, err := r.ent.Manufacturer.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.log.Error("manufacturer get failed", "id", id, "err", err)
		return nil, common.WrapError(err, "get manufacturer")
	}
	return manufacturerToEntity(row), nil
}

func (r *manufacturerRepo) GetOrCreateByName(ctx context.Context, name string) (*entity.Manufacturer, error) {
	row, err := r.ent.Manufacturer.Query().
		Where(manufacturer.NameEQ(name)).
		Only(ctx)
	if err == nil {
		return manufacturerToEntity(row), nil
	}
	if !ent.IsNotFound(err) {
		r.log.Error("manufacturer lookup failed", "name", name, "err", err)
		return nil, common.WrapError(err, "lookup manufacturer")
	}

	row, err = r.ent.Manufacturer.Create().SetName(name).Save(ctx)
	if err != nil {
		r.log.Error("manufacturer create failed", "name", name, "err", err)
		return nil, common.WrapError(err, "create manufacturer")
	}
	r.log.Info("manufacturer created", "id", row.ID, "name", name)
	return manufacturerToEntity(row), nil
}

func (r *manufacturerRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.ent.Manufacturer.Query().Where(manufacturer.IDEQ(id)).Exist(ctx)
}

func manufacturerToEntity(row *ent.Manufacturer) *entity.Manufacturer {
	return &entity.Manufacturer{
		ID:        row.ID,
		Name:      row.Name,
		Website:   row.Website,
		CreatedAt: row.CreatedAt,
	}
}
