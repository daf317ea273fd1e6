package location

import (
	"context"

	"github.com/pkg/errors"

	"github.com/Ok1nam/demo-edp-final/core"
	"github.com/Ok1nam/demo-edp-final/core/refdata"
)

type Service struct {
	analyses *core.Collection[Analysis]
}

func NewService(store core.Store) *Service {
	return &Service{
		analyses: core.NewCollection(store, core.KeyLocations,
			func(a Analysis) string { return a.ID },
			func(a *Analysis, id string) { a.ID = id },
		),
	}
}

// List returns the analyses with their scores recomputed from the stored criteria.
func (svc *Service) List(ctx context.Context) ([]Analysis, error) {
	analyses, err := svc.analyses.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range analyses {
		analyses[i].refresh()
	}
	return analyses, nil
}

func (svc *Service) Get(ctx context.Context, id string) (Analysis, error) {
	a, err := svc.analyses.Get(ctx, id)
	if err != nil {
		return Analysis{}, err
	}
	a.refresh()
	return a, nil
}

// Create stores a validated analysis, stamping today's date.
func (svc *Service) Create(ctx context.Context, a Analysis) (Analysis, error) {
	a.refresh()
	a.AnalyzedDate = today()
	a, err := svc.analyses.Create(ctx, a)
	return a, errors.Wrap(err, "creating location analysis")
}

func (svc *Service) Update(ctx context.Context, id string, a Analysis) (Analysis, error) {
	a.refresh()
	a.AnalyzedDate = today()
	a, err := svc.analyses.Update(ctx, id, a)
	if err == core.ErrNotFound {
		return a, err
	}
	return a, errors.Wrap(err, "updating location analysis")
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	err := svc.analyses.Delete(ctx, id)
	if err == core.ErrNotFound {
		return err
	}
	return errors.Wrap(err, "deleting location analysis")
}

// Reference is the static data the analysis form needs.
type Reference struct {
	Sectors         []string            `json:"sectors"`
	Criteria        []refdata.Criterion `json:"criteria"`
	DefaultCriteria Criteria            `json:"defaultCriteria"`
}

func GetReference() Reference {
	return Reference{
		Sectors:         refdata.LocationSectors(),
		Criteria:        refdata.LocationCriteria(),
		DefaultCriteria: DefaultCriteria(),
	}
}
