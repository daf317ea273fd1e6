package pedagogy

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ok1nam/demo-edp-final/core"
	"github.com/Ok1nam/demo-edp-final/storage/kv"
)

func TestComputeSectorCost(t *testing.T) {
	s := Sector{ID: "s1", Name: "Maçonnerie", Students: 10, Hours: 1400, Trainers: 2, TrainerSalary: 35000, Equipment: 8000, Materials: 2000, Certifications: 1000}

	want := SectorCost{
		SectorID:       "s1",
		TrainerCosts:   70000,
		DirectCosts:    81000,
		OverheadCosts:  20250,
		TotalCost:      101250,
		CostPerStudent: 10125,
		CostPerHour:    101250.0 / 1400,
	}
	if diff := cmp.Diff(want, ComputeSectorCost(s, 25)); diff != "" {
		t.Errorf("ComputeSectorCost() mismatch (-want +got):\n%s", diff)
	}

	s.Students, s.Hours = 0, 0
	got := ComputeSectorCost(s, 0)
	assert.Equal(t, 81000.0, got.TotalCost)
	assert.Zero(t, got.CostPerStudent)
	assert.Zero(t, got.CostPerHour)
}

func TestComputeGlobal(t *testing.T) {
	data := CostData{
		Sectors: []Sector{
			{Students: 10, Hours: 1000, Trainers: 1, TrainerSalary: 30000},
			{Students: 5, Hours: 500, Trainers: 1, TrainerSalary: 20000, Equipment: 10000},
		},
		Settings: Settings{OverheadRate: 10, AdminCosts: 15000},
	}
	g := ComputeGlobal(data)
	assert.Equal(t, 15, g.TotalStudents)
	assert.Equal(t, 1500.0, g.TotalHours)
	assert.InDelta(t, 66000, g.TotalCosts, 1e-9)
	assert.InDelta(t, 81000.0/15, g.AvgCostPerStudent, 1e-9)
	assert.InDelta(t, 54, g.AvgCostPerHour, 1e-9)

	assert.Equal(t, GlobalMetrics{}, ComputeGlobal(CostData{}))
}

func TestSector_Validate(t *testing.T) {
	validate, _ := core.NewValidator()

	s := Sector{Name: "  "}
	assert.Error(t, s.Validate(validate))

	s = Sector{Name: "Électricité", Students: 0}
	assert.Error(t, s.Validate(validate))

	s = Sector{Name: " Électricité ", Students: 12}
	require.NoError(t, s.Validate(validate))
	assert.Equal(t, "Électricité", s.Name)
	assert.Equal(t, core.Number(DefaultTrainers), s.Trainers)
	assert.Equal(t, core.Number(DefaultTrainerSalary), s.TrainerSalary)
}

func TestCostData_JSONShape(t *testing.T) {
	data := DefaultCostData()
	require.NoError(t, json.Unmarshal([]byte(`{"sectors":[{"name":"Restauration","students":"8"}],"overheadRate":"30"}`), &data))
	assert.Equal(t, core.Number(30), data.OverheadRate)
	assert.Equal(t, core.Number(DefaultAdminCosts), data.AdminCosts)
	require.Len(t, data.Sectors, 1)
	assert.Equal(t, core.Int(8), data.Sectors[0].Students)
}

func TestMatchTemplate(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		want   string
		wantOk bool
	}{
		{name: "exact", query: "Restauration", want: "Restauration", wantOk: true},
		{name: "case insensitive", query: "ÉLECTRICITÉ", want: "Électricité", wantOk: true},
		{name: "close", query: "Bâtiment maçonnerie", want: "Bâtiment - Maçonnerie", wantOk: true},
		{name: "unrelated", query: "zzz", wantOk: false},
		{name: "blank", query: "  ", wantOk: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchTemplate(tt.query)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.want, got.Name)
			}
		})
	}
}

func TestService(t *testing.T) {
	ctx := context.Background()
	svc := NewService(kv.NewMemory())

	data, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, DefaultCostData(), data)

	tpl, ok := MatchTemplate("Restauration")
	require.True(t, ok)
	s := Sector{Name: "Restauration", Students: 10, Trainers: 1, TrainerSalary: 35000}
	s.Apply(tpl.SectorTemplate)
	s, err = svc.CreateSector(ctx, s)
	require.NoError(t, err)
	other, err := svc.CreateSector(ctx, Sector{Name: "Commerce", Students: 5, Trainers: 1, TrainerSalary: 30000})
	require.NoError(t, err)

	_, err = svc.SaveSettings(ctx, Settings{OverheadRate: -5, AdminCosts: 10000})
	require.NoError(t, err)

	report, err := svc.Report(ctx)
	require.NoError(t, err)
	assert.Equal(t, core.Number(0), report.OverheadRate)
	require.Len(t, report.SectorCosts, 2)
	assert.Equal(t, 51000.0, report.SectorCosts[0].TotalCost)
	assert.Equal(t, 15, report.Global.TotalStudents)

	s.Students = 20
	_, err = svc.UpdateSector(ctx, s.ID, s)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteSector(ctx, other.ID))

	data, err = svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Sector{s}, data.Sectors)
	assert.Equal(t, core.ErrNotFound, svc.DeleteSector(ctx, other.ID))
}

func TestService_ConcurrentCreateSector(t *testing.T) {
	ctx := context.Background()
	svc := NewService(kv.NewMemory())

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateSector(ctx, Sector{Name: "Mécanique", Students: 10})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	data, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, data.Sectors, 30)
}
