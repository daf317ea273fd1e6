package location

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ok1nam/demo-edp-final/core"
	"github.com/Ok1nam/demo-edp-final/storage/kv"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     int
		wantTier string
	}{
		{
			name:     "worked example",
			criteria: Criteria{80, 90, 50, 70, 60, 40, 30, 50},
			want:     70,
			wantTier: TierGood,
		},
		{
			name:     "defaults",
			criteria: DefaultCriteria(),
			want:     50,
			wantTier: TierAverage,
		},
		{
			name:     "best case",
			criteria: Criteria{100, 100, 100, 100, 100, 100, 0, 100},
			want:     100,
			wantTier: TierExcellent,
		},
		{
			name:     "worst case",
			criteria: Criteria{0, 0, 0, 0, 0, 0, 100, 0},
			want:     0,
			wantTier: TierWeak,
		},
		{
			name:     "out of range criteria are clamped",
			criteria: Criteria{500, 500, 500, 500, 500, 500, -50, 500},
			want:     100,
			wantTier: TierExcellent,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.criteria)
			assert.Equal(t, tt.want, got.Score)
			assert.Equal(t, tt.wantTier, got.Tier)
			assert.Equal(t, Recommendation(tt.want), got.Recommendation)
		})
	}
}

func TestScore_Bounds(t *testing.T) {
	for v := 0; v <= 100; v += 5 {
		c := Criteria{
			core.Number(v), core.Number(100 - v), core.Number(v), core.Number(v / 2),
			core.Number(v), core.Number(100 - v), core.Number(v), core.Number(v / 3),
		}
		s := Score(c)
		assert.GreaterOrEqual(t, s, 0)
		assert.LessOrEqual(t, s, 100)
	}
}

func TestTier(t *testing.T) {
	assert.Equal(t, TierExcellent, Tier(80))
	assert.Equal(t, TierGood, Tier(79))
	assert.Equal(t, TierGood, Tier(60))
	assert.Equal(t, TierAverage, Tier(59))
	assert.Equal(t, TierAverage, Tier(40))
	assert.Equal(t, TierWeak, Tier(39))
}

func setup(t *testing.T) (*Service, *validator.Validate) {
	nowFunc = func() time.Time { return time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { nowFunc = time.Now })
	validate, _ := core.NewValidator()
	return NewService(kv.NewMemory()), validate
}

func TestAnalysis_Validate(t *testing.T) {
	_, validate := setup(t)

	a := NewAnalysis()
	a.CityName = "  "
	a.Region = "Auvergne-Rhône-Alpes"
	err := a.Validate(validate)
	require.Error(t, err)
	vErrs, ok := err.(validator.ValidationErrors)
	require.True(t, ok)
	require.Len(t, vErrs, 1)
	assert.Equal(t, "cityName", vErrs[0].Field())

	a.CityName = " Lyon "
	a.Strengths = []string{"Tissu industriel", " "}
	require.NoError(t, a.Validate(validate))
	assert.Equal(t, "Lyon", a.CityName)
	assert.Equal(t, []string{"Tissu industriel"}, a.Strengths)
}

func TestService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)

	lyon := NewAnalysis()
	lyon.CityName, lyon.Region = "Lyon", "Auvergne-Rhône-Alpes"
	lyon.OverallScore = 99 // never trusted
	lyon, err := svc.Create(ctx, lyon)
	require.NoError(t, err)
	assert.Equal(t, 50, lyon.OverallScore)
	assert.Equal(t, "2025-03-14", lyon.AnalyzedDate)

	lille := NewAnalysis()
	lille.CityName, lille.Region = "Lille", "Hauts-de-France"
	lille.Criteria = Criteria{80, 90, 50, 70, 60, 40, 30, 50}
	lille, err = svc.Create(ctx, lille)
	require.NoError(t, err)
	assert.Equal(t, 70, lille.OverallScore)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	lyon.Criteria.LocalSupport = 100
	updated, err := svc.Update(ctx, lyon.ID, lyon)
	require.NoError(t, err)
	assert.Equal(t, 53, updated.OverallScore)

	all, _ = svc.List(ctx)
	assert.Len(t, all, 2)
	assert.Equal(t, lyon.ID, all[0].ID)
	assert.Equal(t, lille, all[1])

	require.NoError(t, svc.Delete(ctx, lyon.ID))
	all, _ = svc.List(ctx)
	assert.Equal(t, []Analysis{lille}, all)

	_, err = svc.Get(ctx, lyon.ID)
	assert.Equal(t, core.ErrNotFound, err)
	assert.Equal(t, core.ErrNotFound, svc.Delete(ctx, lyon.ID))
}

func TestGetReference(t *testing.T) {
	ref := GetReference()
	assert.Len(t, ref.Sectors, 10)
	require.Len(t, ref.Criteria, 8)
	assert.Equal(t, "Bassin de population", ref.Criteria[0].Label)
	assert.Equal(t, DefaultCriteria(), ref.DefaultCriteria)
}
