package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/machinehub/discovery-pipeline/constants"
	"github.com/machinehub/discovery-pipeline/internal/common"
	"github.com/machinehub/discovery-pipeline/internal/entity"
)

// MemoryStore is a map-backed store exposing the repository interfaces through
// the URLs/Manufacturers/Machines views. It backs package tests and gives rows
// database-like value semantics: everything going in or out is deep-copied, so
// callers never alias stored state.
type MemoryStore struct {
	mu            sync.RWMutex
	urls          map[uuid.UUID]*entity.DiscoveredURL
	manufacturers map[uuid.UUID]*entity.Manufacturer
	machines      map[uuid.UUID]*entity.CatalogMachine
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		urls:          map[uuid.UUID]*entity.DiscoveredURL{},
		manufacturers: map[uuid.UUID]*entity.Manufacturer{},
		machines:      map[uuid.UUID]*entity.CatalogMachine{},
	}
}

func (m *MemoryStore) URLs() DiscoveredURLRepository         { return &memURLRepo{m} }
func (m *MemoryStore) Manufacturers() ManufacturerRepository { return &memManufacturerRepo{m} }
func (m *MemoryStore) Machines() CatalogMachineRepository    { return &memMachineRepo{m} }

// AddMachine seeds a catalog machine row.
func (m *MemoryStore) AddMachine(machine *entity.CatalogMachine) *entity.CatalogMachine {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := cloneMachine(machine)
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = time.Now()
	}
	m.machines[c.ID] = c
	return cloneMachine(c)
}

// AddManufacturer seeds a manufacturer row.
func (m *MemoryStore) AddManufacturer(mf *entity.Manufacturer) *entity.Manufacturer {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := *mf
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	m.manufacturers[c.ID] = &c
	out := c
	return &out
}

type memURLRepo struct{ s *MemoryStore }

var _ DiscoveredURLRepository = (*memURLRepo)(nil)

func (r *memURLRepo) Create(_ context.Context, u *entity.DiscoveredURL) (*entity.DiscoveredURL, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c := cloneURL(u)
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Status == "" {
		c.Status = constants.ScrapePending
	}
	if c.DuplicateStatus == "" {
		c.DuplicateStatus = constants.DuplicatePending
	}
	if c.DiscoveredAt.IsZero() {
		c.DiscoveredAt = time.Now()
	}
	c.UpdatedAt = time.Now()
	r.s.urls[c.ID] = c
	return cloneURL(c), nil
}

func (r *memURLRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.DiscoveredURL, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.urls[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return cloneURL(u), nil
}

func (r *memURLRepo) Update(_ context.Context, u *entity.DiscoveredURL) (*entity.DiscoveredURL, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.urls[u.ID]; !ok {
		return nil, common.ErrNotFound
	}
	c := cloneURL(u)
	c.UpdatedAt = time.Now()
	r.s.urls[c.ID] = c
	return cloneURL(c), nil
}

func (r *memURLRepo) List(_ context.Context, f URLFilter) ([]*entity.DiscoveredURL, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.DiscoveredURL
	for _, u := range r.s.urls {
		if f.ManufacturerID != nil && u.ManufacturerID != *f.ManufacturerID {
			continue
		}
		if f.Status != nil && u.Status != *f.Status {
			continue
		}
		if f.DuplicateStatus != nil && u.DuplicateStatus != *f.DuplicateStatus {
			continue
		}
		if f.ExcludeAutoSkip && u.ShouldAutoSkip {
			continue
		}
		out = append(out, cloneURL(u))
	}
	sortURLs(out)
	return out, nil
}

func (r *memURLRepo) ListUnchecked(_ context.Context, manufacturerID *uuid.UUID) ([]*entity.DiscoveredURL, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.DiscoveredURL
	for _, u := range r.s.urls {
		if u.Status != constants.ScrapeScraped || u.DuplicateStatus != constants.DuplicatePending {
			continue
		}
		if manufacturerID != nil && u.ManufacturerID != *manufacturerID {
			continue
		}
		out = append(out, cloneURL(u))
	}
	sortURLs(out)
	return out, nil
}

func (r *memURLRepo) ListUnclassified(_ context.Context, manufacturerID *uuid.UUID) ([]*entity.DiscoveredURL, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.DiscoveredURL
	for _, u := range r.s.urls {
		if u.Status != constants.ScrapePending || u.MLClassification != nil {
			continue
		}
		if manufacturerID != nil && u.ManufacturerID != *manufacturerID {
			continue
		}
		out = append(out, cloneURL(u))
	}
	sortURLs(out)
	return out, nil
}

type memManufacturerRepo struct{ s *MemoryStore }

var _ ManufacturerRepository = (*memManufacturerRepo)(nil)

func (r *memManufacturerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Manufacturer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	mf, ok := r.s.manufacturers[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	c := *mf
	return &c, nil
}

func (r *memManufacturerRepo) GetOrCreateByName(_ context.Context, name string) (*entity.Manufacturer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, mf := range r.s.manufacturers {
		if mf.Name == name {
			c := *mf
			return &c, nil
		}
	}
	mf := &entity.Manufacturer{ID: uuid.New(), Name: name, CreatedAt: time.Now()}
	r.s.manufacturers[mf.ID] = mf
	c := *mf
	return &c, nil
}

func (r *memManufacturerRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.manufacturers[id]
	return ok, nil
}

type memMachineRepo struct{ s *MemoryStore }

var _ CatalogMachineRepository = (*memMachineRepo)(nil)

func (r *memMachineRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.CatalogMachine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	mc, ok := r.s.machines[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return cloneMachine(mc), nil
}

func (r *memMachineRepo) ListByManufacturer(_ context.Context, manufacturerID uuid.UUID) ([]*entity.CatalogMachine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.CatalogMachine
	for _, mc := range r.s.machines {
		if mc.ManufacturerID == manufacturerID {
			out = append(out, cloneMachine(mc))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

func (r *memMachineRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.machines[id]
	return ok, nil
}

func sortURLs(urls []*entity.DiscoveredURL) {
	sort.Slice(urls, func(i, j int) bool {
		if urls[i].DiscoveredAt.Equal(urls[j].DiscoveredAt) {
			return urls[i].URL < urls[j].URL
		}
		return urls[i].DiscoveredAt.Before(urls[j].DiscoveredAt)
	})
}

func cloneURL(u *entity.DiscoveredURL) *entity.DiscoveredURL {
	c := *u
	c.Category = clonePtr(u.Category)
	c.ScrapedAt = clonePtr(u.ScrapedAt)
	c.ErrorMessage = clonePtr(u.ErrorMessage)
	c.ExistingMachineID = clonePtr(u.ExistingMachineID)
	c.SimilarityScore = clonePtr(u.SimilarityScore)
	c.DuplicateReason = clonePtr(u.DuplicateReason)
	c.CheckedAt = clonePtr(u.CheckedAt)
	c.CheckStartedAt = clonePtr(u.CheckStartedAt)
	c.MLClassification = clonePtr(u.MLClassification)
	c.MLConfidence = clonePtr(u.MLConfidence)
	c.MLReason = clonePtr(u.MLReason)
	c.MachineType = clonePtr(u.MachineType)
	if u.ScrapedFields != nil {
		c.ScrapedFields = make(map[string]any, len(u.ScrapedFields))
		for k, v := range u.ScrapedFields {
			c.ScrapedFields[k] = v
		}
	}
	return &c
}

func cloneMachine(mc *entity.CatalogMachine) *entity.CatalogMachine {
	c := *mc
	c.MachineType = clonePtr(mc.MachineType)
	c.SpecTokens = append([]string(nil), mc.SpecTokens...)
	return &c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
