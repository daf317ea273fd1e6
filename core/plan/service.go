package plan

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Ok1nam/demo-edp-final/core"
)

type Service struct {
	store core.Store
}

func NewService(store core.Store) *Service {
	return &Service{store: store}
}

// Get returns the saved plan, or the default one.
func (svc *Service) Get(ctx context.Context) (BusinessPlan, error) {
	bp := DefaultBusinessPlan()
	if _, err := svc.store.Load(ctx, core.KeyBusinessPlan, &bp); err != nil {
		return BusinessPlan{}, errors.Wrap(err, "loading business plan")
	}
	return bp, nil
}

func (svc *Service) Save(ctx context.Context, bp BusinessPlan) (BusinessPlan, error) {
	bp.Clean()
	if err := svc.store.Save(ctx, core.KeyBusinessPlan, bp); err != nil {
		return BusinessPlan{}, errors.Wrap(err, "saving business plan")
	}
	return bp, nil
}
