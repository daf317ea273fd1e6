package training

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/Ok1nam/demo-edp-final/core"
)

// Service edits the training plan, stored as one record.
type Service struct {
	mu    sync.Mutex // guards read-modify-write cycles
	store core.Store
}

func NewService(store core.Store) *Service {
	return &Service{store: store}
}

func moduleID(m Module) string { return m.ID }

func (svc *Service) Get(ctx context.Context) (Plan, error) {
	p := DefaultPlan()
	if _, err := svc.store.Load(ctx, core.KeyTrainingPlan, &p); err != nil {
		return p, errors.Wrap(err, "loading training plan")
	}
	if p.Modules == nil {
		p.Modules = []Module{}
	}
	if p.AcademicYear == "" {
		p.AcademicYear = DefaultAcademicYear
	}
	return p, nil
}

func (svc *Service) save(ctx context.Context, p Plan) error {
	return errors.Wrap(svc.store.Save(ctx, core.KeyTrainingPlan, p), "saving training plan")
}

// SetAcademicYear changes the plan's year and keeps its modules.
func (svc *Service) SetAcademicYear(ctx context.Context, year string) (Plan, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	p, err := svc.Get(ctx)
	if err != nil {
		return p, err
	}
	if year = core.CleanString(year); year != "" {
		p.AcademicYear = year
	}
	return p, svc.save(ctx, p)
}

func (svc *Service) CreateModule(ctx context.Context, m Module) (Module, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	p, err := svc.Get(ctx)
	if err != nil {
		return m, err
	}
	m.ID = core.NewID()
	p.Modules = append(p.Modules, m)
	return m, svc.save(ctx, p)
}

func (svc *Service) UpdateModule(ctx context.Context, id string, m Module) (Module, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	p, err := svc.Get(ctx)
	if err != nil {
		return m, err
	}
	i := core.IndexByID(p.Modules, id, moduleID)
	if i < 0 {
		return m, core.ErrNotFound
	}
	m.ID = id
	p.Modules[i] = m
	return m, svc.save(ctx, p)
}

func (svc *Service) DeleteModule(ctx context.Context, id string) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	p, err := svc.Get(ctx)
	if err != nil {
		return err
	}
	i := core.IndexByID(p.Modules, id, moduleID)
	if i < 0 {
		return core.ErrNotFound
	}
	p.Modules = append(p.Modules[:i], p.Modules[i+1:]...)
	return svc.save(ctx, p)
}

func (svc *Service) Stats(ctx context.Context) (Stats, error) {
	p, err := svc.Get(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(p.Modules), nil
}

func (svc *Service) Calendar(ctx context.Context) ([]MonthGroup, error) {
	p, err := svc.Get(ctx)
	if err != nil {
		return nil, err
	}
	return Calendar(p.Modules), nil
}
