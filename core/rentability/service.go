package rentability

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

// Get returns the saved inputs, or the defaults.
func (svc *Service) Get(ctx context.Context) (Inputs, error) {
	in := DefaultInputs()
	if _, err := svc.store.Load(ctx, core.KeyRentability, &in); err != nil {
		return Inputs{}, errors.Wrap(err, "loading rentability inputs")
	}
	in.Scenario = ParseScenario(string(in.Scenario))
	return in, nil
}

func (svc *Service) Save(ctx context.Context, in Inputs) (Inputs, error) {
	if err := svc.store.Save(ctx, core.KeyRentability, in); err != nil {
		return Inputs{}, errors.Wrap(err, "saving rentability inputs")
	}
	return in, nil
}
