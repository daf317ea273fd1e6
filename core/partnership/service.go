package partnership

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Ok1nam/demo-edp-final/core"
)

type Service struct {
	partnerships *core.Collection[Partnership]
}

func NewService(store core.Store) *Service {
	return &Service{
		partnerships: core.NewCollection(store, core.KeyPartnerships,
			func(p Partnership) string { return p.ID },
			func(p *Partnership, id string) { p.ID = id },
		),
	}
}

func (svc *Service) List(ctx context.Context) ([]Partnership, error) {
	return svc.partnerships.List(ctx)
}

func (svc *Service) Get(ctx context.Context, id string) (Partnership, error) {
	return svc.partnerships.Get(ctx, id)
}

func (svc *Service) Create(ctx context.Context, p Partnership) (Partnership, error) {
	p, err := svc.partnerships.Create(ctx, p)
	return p, errors.Wrap(err, "creating partnership")
}

func (svc *Service) Update(ctx context.Context, id string, p Partnership) (Partnership, error) {
	p, err := svc.partnerships.Update(ctx, id, p)
	if err == core.ErrNotFound {
		return p, err
	}
	return p, errors.Wrap(err, "updating partnership")
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	err := svc.partnerships.Delete(ctx, id)
	if err == core.ErrNotFound {
		return err
	}
	return errors.Wrap(err, "deleting partnership")
}

func (svc *Service) Stats(ctx context.Context) (Stats, error) {
	partnerships, err := svc.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(partnerships), nil
}
