package subsidy

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Ok1nam/demo-edp-final/core"
)

type Service struct {
	applications *core.Collection[Application]
}

func NewService(store core.Store) *Service {
	return &Service{
		applications: core.NewCollection(store, core.KeySubsidies,
			func(a Application) string { return a.ID },
			func(a *Application, id string) { a.ID = id },
		),
	}
}

func (svc *Service) List(ctx context.Context) ([]Application, error) {
	return svc.applications.List(ctx)
}

func (svc *Service) Get(ctx context.Context, id string) (Application, error) {
	return svc.applications.Get(ctx, id)
}

func (svc *Service) Create(ctx context.Context, a Application) (Application, error) {
	a, err := svc.applications.Create(ctx, a)
	return a, errors.Wrap(err, "creating subsidy application")
}

func (svc *Service) Update(ctx context.Context, id string, a Application) (Application, error) {
	a, err := svc.applications.Update(ctx, id, a)
	if err == core.ErrNotFound {
		return a, err
	}
	return a, errors.Wrap(err, "updating subsidy application")
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	err := svc.applications.Delete(ctx, id)
	if err == core.ErrNotFound {
		return err
	}
	return errors.Wrap(err, "deleting subsidy application")
}

func (svc *Service) Stats(ctx context.Context) (Stats, error) {
	apps, err := svc.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(apps), nil
}
