package dashboard

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/Ok1nam/demo-edp-final/core"
)

var nowFunc = time.Now // mockable

// Service reads the raw records: a tool never saved counts as empty, not as its defaults.
type Service struct {
	store core.Store
}

func NewService(store core.Store) *Service {
	return &Service{store: store}
}

func (svc *Service) LoadInputs(ctx context.Context) (Inputs, error) {
	var in Inputs
	targets := []struct {
		key string
		dst interface{}
	}{
		{core.KeyBusinessPlan, &in.BusinessPlan},
		{core.KeyRentability, &in.Rentability},
		{core.KeyPartnerships, &in.Partnerships},
		{core.KeySubsidies, &in.Subsidies},
		{core.KeyTrainingPlan, &in.Training},
		{core.KeyPedagogicalCosts, &in.Pedagogy},
		{core.KeyQuestionnaire, &in.Questionnaire},
	}
	for _, t := range targets {
		if _, err := svc.store.Load(ctx, t.key, t.dst); err != nil {
			return in, errors.Wrapf(err, "loading %s", t.key)
		}
	}
	return in, nil
}

func (svc *Service) Get(ctx context.Context) (Dashboard, error) {
	in, err := svc.LoadInputs(ctx)
	if err != nil {
		return Dashboard{}, err
	}
	return Compute(in, nowFunc().Format(core.DateLayout)), nil
}
