package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/machinehub/discovery-pipeline/gen/ent"
	"github.com/machinehub/discovery-pipeline/gen/ent/catalogmachine"
	"github.com/machinehub/discovery-pipeline/internal/common"
	"github.com/machinehub/discovery-pipeline/internal/entity"
)

// CatalogMachineRepository is the read path into the existing catalog. The
// pipeline never writes catalog rows.
type CatalogMachineRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CatalogMachine, error)
	ListByManufacturer(ctx context.Context, manufacturerID uuid.UUID) ([]*entity.CatalogMachine, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type catalogMachineRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewCatalogMachineRepository(entc *ent.Client, log *slog.Logger) CatalogMachineRepository {
	if log == nil {
		log = slog.Default()
	}
	return &catalogMachineRepo{ent: entc, log: log}
}

func (r *catalogMachineRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.CatalogMachine, error) {
	row, err := r.ent.CatalogMachine.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.log.Error("catalog_machine get failed", "id", id, "err", err)
		return nil, common.WrapError(err, "get catalog machine")
	}
	return machineToEntity(row), nil
}

func (r *catalogMachineRepo) ListByManufacturer(ctx context.Context, manufacturerID uuid.UUID) ([]*entity.CatalogMachine, error) {
	rows, err := r.ent.CatalogMachine.Query().
		Where(catalogmachine.ManufacturerIDEQ(manufacturerID)).
		Order(ent.Desc(catalogmachine.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		r.log.Error("catalog_machine list failed", "manufacturer_id", manufacturerID, "err", err)
		return nil, common.WrapError(err, "list catalog machines")
	}
	out := make([]*entity.CatalogMachine, 0, len(rows))
	for _, row := range rows {
		out = append(out, machineToEntity(row))
	}
	return out, nil
}

func (r *catalogMachineRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.ent.CatalogMachine.Query().Where(catalogmachine.IDEQ(id)).Exist(ctx)
}

func machineToEntity(row *ent.CatalogMachine) *entity.CatalogMachine {
	return &entity.CatalogMachine{
		ID:             row.ID,
		ManufacturerID: row.ManufacturerID,
		Name:           row.Name,
		MachineType:    row.MachineType,
		SpecTokens:     row.SpecTokens,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
