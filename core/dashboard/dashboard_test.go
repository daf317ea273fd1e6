package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ok1nam/demo-edp-final/core"
	"github.com/Ok1nam/demo-edp-final/core/partnership"
	"github.com/Ok1nam/demo-edp-final/core/pedagogy"
	"github.com/Ok1nam/demo-edp-final/core/plan"
	"github.com/Ok1nam/demo-edp-final/core/questionnaire"
	"github.com/Ok1nam/demo-edp-final/core/rentability"
	"github.com/Ok1nam/demo-edp-final/core/subsidy"
	"github.com/Ok1nam/demo-edp-final/core/training"
	"github.com/Ok1nam/demo-edp-final/storage/kv"
)

const today = "2025-06-01"

func sampleInputs() Inputs {
	return Inputs{
		BusinessPlan: plan.BusinessPlan{
			InitialInvestment: 150000,
			FinancialProjections: plan.Projections{
				Year1: plan.YearProjection{Revenue: 100000, Expenses: 80000},
			},
		},
		Rentability: rentability.Inputs{Students: 12, TuitionFee: 1000},
		Partnerships: []partnership.Partnership{
			{ID: "p1", CompanyName: "Renault", Status: partnership.StatusActive, PartnershipType: partnership.TypeInternship, Students: 3, LastContact: "2025-03-01"},
			{ID: "p2", CompanyName: "Airbus", Status: partnership.StatusProspect, PartnershipType: partnership.TypeFunding, LastContact: "2025-05-10"},
			{ID: "p3", CompanyName: "Bouygues", Status: partnership.StatusActive, PartnershipType: partnership.TypeEquipment},
		},
		Subsidies: []subsidy.Application{
			{ID: "s1", FundingBody: "Région", Amount: 20000, Status: subsidy.StatusSubmitted, SubmissionDate: "2025-01-15"},
			{ID: "s2", FundingBody: "État", Amount: 50000, Status: subsidy.StatusApproved, SubmissionDate: "2024-12-01"},
		},
		Training: training.Plan{Modules: []training.Module{
			{ID: "m1", Title: "Soudure", Sector: "Industrie", Students: 6, Status: training.StatusCompleted, StartDate: "2024-09-02"},
			{ID: "m2", Title: "Tournage", Sector: "Industrie", Students: 4, Status: training.StatusInProgress, StartDate: "2025-02-03"},
			{ID: "m3", Title: "Fraisage", Sector: "Industrie", Students: 5, Status: training.StatusPlanned, StartDate: "2025-04-07"},
			{ID: "m4", Title: "Usinage", Sector: "Industrie", Students: 0, Status: training.StatusCompleted},
		}},
		Pedagogy: pedagogy.CostData{
			Sectors: []pedagogy.Sector{
				{Name: "Mécanique", Students: 10, Trainers: 2, TrainerSalary: 30000},
			},
			Settings: pedagogy.Settings{OverheadRate: 0, AdminCosts: 15000},
		},
		Questionnaire: questionnaire.State{Started: true, CurrentIndex: 3, Responses: []string{"OUI", "NON", "OUI"}},
	}
}

func TestComputeMetrics(t *testing.T) {
	m := ComputeMetrics(sampleInputs())

	assert.Equal(t, 15, m.TotalStudents)
	assert.Equal(t, 1, m.ActiveModules)
	assert.Equal(t, 2, m.CompletedModules)
	assert.Equal(t, 150000.0, m.TotalBudget)
	assert.Equal(t, 100000.0, m.TotalRevenue)
	assert.Equal(t, 2, m.ActivePartnerships)
	assert.Equal(t, 1, m.PendingApplications)
	assert.Equal(t, 60000.0, m.TotalCosts)
	assert.Equal(t, 4000.0, m.AverageCostPerStudent)
	assert.Equal(t, 40.0, m.ProfitMargin)
	assert.Equal(t, 60.0, m.MarginGauge)
	assert.Equal(t, 50.0, m.CertificationRate)
	assert.Equal(t, 7.5, m.StudentsPerTrainer)
}

func TestComputeMetrics_Fallbacks(t *testing.T) {
	in := Inputs{Rentability: rentability.Inputs{Students: 10, TuitionFee: 1000, Subsidies: 5000}}
	m := ComputeMetrics(in)
	assert.Equal(t, 10, m.TotalStudents)
	assert.Equal(t, 15000.0, m.TotalRevenue)
	assert.Equal(t, 100.0, m.ProfitMargin)
	assert.Equal(t, 100.0, m.MarginGauge)

	m = ComputeMetrics(Inputs{})
	assert.Equal(t, Metrics{MarginGauge: 20}, m)
}

func TestActivities(t *testing.T) {
	acts := Activities(sampleInputs(), today)
	require.Len(t, acts, MaxActivities)

	ids := make([]string, len(acts))
	for i, a := range acts {
		ids[i] = a.ID
	}
	// m4 and p3 have no date and sort as today
	assert.Equal(t, []string{"module-m4", "partnership-p3", "partnership-p2", "module-m3", "module-m2"}, ids)

	assert.Equal(t, today, acts[0].Date)
	assert.Equal(t, ActivitySuccess, acts[0].Status)
	assert.Equal(t, "Module Usinage", acts[0].Title)
	assert.Equal(t, "Industrie - 0 étudiants", acts[0].Description)
	assert.Equal(t, "Équipements - 0 places", acts[1].Description)
	assert.Equal(t, ActivityWarning, acts[2].Status)
}

func TestActivities_Subsidies(t *testing.T) {
	in := Inputs{Subsidies: sampleInputs().Subsidies}
	acts := Activities(in, today)
	require.Len(t, acts, 2)
	assert.Equal(t, "subsidy-s1", acts[0].ID)
	assert.Equal(t, "Subvention Région", acts[0].Title)
	assert.Equal(t, "20 000 € - Soumis", acts[0].Description)
	assert.Equal(t, ActivityInfo, acts[0].Status)
	assert.Equal(t, ActivitySuccess, acts[1].Status)

	assert.Equal(t, []Activity{}, Activities(Inputs{}, today))
}

func TestActivities_TiesAndBadDates(t *testing.T) {
	in := Inputs{
		Training: training.Plan{Modules: []training.Module{
			{ID: "m1", Title: "Soudure"},
			{ID: "m2", Title: "Tournage", StartDate: "bientôt"},
			{ID: "m3", Title: "Fraisage"},
		}},
		Partnerships: []partnership.Partnership{
			{ID: "p1", CompanyName: "Renault", LastContact: today},
		},
	}
	acts := Activities(in, today)

	ids := make([]string, len(acts))
	for i, a := range acts {
		ids[i] = a.ID
	}
	assert.Equal(t, []string{"module-m1", "module-m3", "partnership-p1", "module-m2"}, ids)
	assert.Equal(t, "bientôt", acts[3].Date)
}

func TestService_Get(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemory()
	in := sampleInputs()

	require.NoError(t, store.Save(ctx, core.KeyBusinessPlan, in.BusinessPlan))
	require.NoError(t, store.Save(ctx, core.KeyTrainingPlan, in.Training))
	require.NoError(t, store.Save(ctx, core.KeyQuestionnaire, questionnaire.State{Started: true, Completed: true, Responses: []string{"NON"}}))

	orig := nowFunc
	nowFunc = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	defer func() { nowFunc = orig }()

	d, err := NewService(store).Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 15, d.Metrics.TotalStudents)
	assert.Equal(t, 150000.0, d.Metrics.TotalBudget)
	assert.Zero(t, d.Metrics.ActivePartnerships)
	assert.Equal(t, today, d.Activities[0].Date)

	assert.True(t, d.Questionnaire.Completed)
	assert.Equal(t, 1, d.Questionnaire.Answered)
	require.NotNil(t, d.Questionnaire.Score)
	assert.Equal(t, 95.0, *d.Questionnaire.Score)
}
