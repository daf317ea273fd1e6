package pedagogy

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/Ok1nam/demo-edp-final/core"
)

type Service struct {
	mu    sync.Mutex // guards read-modify-write cycles
	store core.Store
}

func NewService(store core.Store) *Service {
	return &Service{store: store}
}

func sectorID(s Sector) string { return s.ID }

func (svc *Service) Get(ctx context.Context) (CostData, error) {
	data := DefaultCostData()
	if _, err := svc.store.Load(ctx, core.KeyPedagogicalCosts, &data); err != nil {
		return data, errors.Wrap(err, "loading pedagogical costs")
	}
	if data.Sectors == nil {
		data.Sectors = []Sector{}
	}
	return data, nil
}

func (svc *Service) Report(ctx context.Context) (Report, error) {
	data, err := svc.Get(ctx)
	if err != nil {
		return Report{}, err
	}
	return BuildReport(data), nil
}

func (svc *Service) save(ctx context.Context, data CostData) error {
	return errors.Wrap(svc.store.Save(ctx, core.KeyPedagogicalCosts, data), "saving pedagogical costs")
}

// SaveSettings replaces the overhead rate and admin costs, keeping the sectors.
func (svc *Service) SaveSettings(ctx context.Context, s Settings) (CostData, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	data, err := svc.Get(ctx)
	if err != nil {
		return data, err
	}
	s.Clean()
	data.Settings = s
	return data, svc.save(ctx, data)
}

func (svc *Service) CreateSector(ctx context.Context, s Sector) (Sector, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	data, err := svc.Get(ctx)
	if err != nil {
		return s, err
	}
	s.ID = core.NewID()
	data.Sectors = append(data.Sectors, s)
	return s, svc.save(ctx, data)
}

func (svc *Service) UpdateSector(ctx context.Context, id string, s Sector) (Sector, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	data, err := svc.Get(ctx)
	if err != nil {
		return s, err
	}
	i := core.IndexByID(data.Sectors, id, sectorID)
	if i < 0 {
		return s, core.ErrNotFound
	}
	s.ID = id
	data.Sectors[i] = s
	return s, svc.save(ctx, data)
}

func (svc *Service) DeleteSector(ctx context.Context, id string) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	data, err := svc.Get(ctx)
	if err != nil {
		return err
	}
	i := core.IndexByID(data.Sectors, id, sectorID)
	if i < 0 {
		return core.ErrNotFound
	}
	data.Sectors = append(data.Sectors[:i], data.Sectors[i+1:]...)
	return svc.save(ctx, data)
}
