// Package dashboard aggregates the records of every tool into the steering view.
package dashboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/Ok1nam/demo-edp-final/core"
	"github.com/Ok1nam/demo-edp-final/core/partnership"
	"github.com/Ok1nam/demo-edp-final/core/pedagogy"
	"github.com/Ok1nam/demo-edp-final/core/plan"
	"github.com/Ok1nam/demo-edp-final/core/questionnaire"
	"github.com/Ok1nam/demo-edp-final/core/rentability"
	"github.com/Ok1nam/demo-edp-final/core/subsidy"
	"github.com/Ok1nam/demo-edp-final/core/training"
)

// MaxActivities caps the activity feed.
const MaxActivities = 5

// marginGaugeOffset shifts the margin so a small deficit still shows on the gauge.
const marginGaugeOffset = 20

type ActivityType string

const (
	ActivityModule      ActivityType = "module"
	ActivityPartnership ActivityType = "partnership"
	ActivitySubsidy     ActivityType = "subsidy"
)

type ActivityStatus string

const (
	ActivitySuccess ActivityStatus = "success"
	ActivityInfo    ActivityStatus = "info"
	ActivityWarning ActivityStatus = "warning"
)

type (
	// Inputs are the stored records; absent ones are zero values.
	Inputs struct {
		BusinessPlan  plan.BusinessPlan
		Rentability   rentability.Inputs
		Partnerships  []partnership.Partnership
		Subsidies     []subsidy.Application
		Training      training.Plan
		Pedagogy      pedagogy.CostData
		Questionnaire questionnaire.State
	}

	Metrics struct {
		TotalStudents         int     `json:"totalStudents"`
		ActiveModules         int     `json:"activeModules"`
		CompletedModules      int     `json:"completedModules"`
		TotalBudget           float64 `json:"totalBudget"`
		TotalRevenue          float64 `json:"totalRevenue"`
		ActivePartnerships    int     `json:"activePartnerships"`
		PendingApplications   int     `json:"pendingApplications"`
		TotalCosts            float64 `json:"totalCosts"`
		AverageCostPerStudent float64 `json:"averageCostPerStudent"`
		ProfitMargin          float64 `json:"profitMargin"`
		MarginGauge           float64 `json:"marginGauge"`
		CertificationRate     float64 `json:"certificationRate"`
		StudentsPerTrainer    float64 `json:"studentsPerTrainer"`
	}

	QuestionnaireProgress struct {
		Started   bool     `json:"started"`
		Completed bool     `json:"completed"`
		Answered  int      `json:"answered"`
		Total     int      `json:"total"`
		Score     *float64 `json:"score,omitempty"`
	}

	Activity struct {
		ID          string         `json:"id"`
		Type        ActivityType   `json:"type"`
		Title       string         `json:"title"`
		Description string         `json:"description"`
		Date        string         `json:"date"`
		Status      ActivityStatus `json:"status"`
	}

	Dashboard struct {
		Metrics       Metrics               `json:"metrics"`
		Questionnaire QuestionnaireProgress `json:"questionnaire"`
		Activities    []Activity            `json:"activities"`
	}
)

// Compute builds the dashboard; today stands in for missing activity dates.
func Compute(in Inputs, today string) Dashboard {
	return Dashboard{
		Metrics:       ComputeMetrics(in),
		Questionnaire: computeQuestionnaire(in.Questionnaire),
		Activities:    Activities(in, today),
	}
}

func ComputeMetrics(in Inputs) Metrics {
	var m Metrics
	modules := in.Training.Modules

	// no single source of truth for the head count
	trainingStudents := training.ComputeStats(modules).TotalStudents
	global := pedagogy.ComputeGlobal(in.Pedagogy)
	m.TotalStudents = max(trainingStudents, global.TotalStudents, int(in.Rentability.Students))

	for _, mod := range modules {
		switch mod.Status {
		case training.StatusInProgress:
			m.ActiveModules++
		case training.StatusCompleted:
			m.CompletedModules++
		}
	}

	m.TotalBudget = in.BusinessPlan.InitialInvestment.Float()
	m.TotalRevenue = in.BusinessPlan.FinancialProjections.Year1.Revenue.Float()
	if m.TotalRevenue == 0 {
		m.TotalRevenue = in.Rentability.BaseRevenue()
	}

	m.ActivePartnerships = partnership.ComputeStats(in.Partnerships).Active
	for _, app := range in.Subsidies {
		if app.Status == subsidy.StatusSubmitted {
			m.PendingApplications++
		}
	}

	var trainers float64
	for _, s := range in.Pedagogy.Sectors {
		trainers += s.Trainers.Float()
	}
	m.TotalCosts = global.TotalCosts
	m.AverageCostPerStudent = core.SafeDiv(m.TotalCosts, float64(m.TotalStudents))
	m.ProfitMargin = core.SafeDiv(m.TotalRevenue-m.TotalCosts, m.TotalRevenue) * 100
	m.MarginGauge = core.ClampPercent(m.ProfitMargin + marginGaugeOffset)
	m.CertificationRate = core.SafeDiv(float64(m.CompletedModules), float64(len(modules))) * 100
	m.StudentsPerTrainer = core.SafeDiv(float64(m.TotalStudents), trainers)
	return m
}

func computeQuestionnaire(s questionnaire.State) QuestionnaireProgress {
	total := len(questionnaire.Questions())
	p := QuestionnaireProgress{Started: s.Started, Completed: s.Completed, Answered: s.Answered(), Total: total}
	if s.Completed {
		score := questionnaire.Score(s.Responses, total)
		p.Score = &score
	}
	return p
}

// Activities merges the latest modules, partnerships and subsidy applications,
// newest first.
func Activities(in Inputs, today string) []Activity {
	var acts []Activity
	dateOr := func(d string) string {
		if d = core.CleanString(d); d == "" {
			return today
		}
		return d
	}

	for _, mod := range core.LastN(in.Training.Modules, 3) {
		status := ActivityInfo
		if mod.Status == training.StatusCompleted {
			status = ActivitySuccess
		}
		acts = append(acts, Activity{
			ID:          "module-" + mod.ID,
			Type:        ActivityModule,
			Title:       "Module " + mod.Title,
			Description: fmt.Sprintf("%s - %d étudiants", mod.Sector, mod.Students),
			Date:        dateOr(mod.StartDate),
			Status:      status,
		})
	}

	for _, p := range core.LastN(in.Partnerships, 2) {
		status := ActivityWarning
		if p.Status == partnership.StatusActive {
			status = ActivitySuccess
		}
		acts = append(acts, Activity{
			ID:          "partnership-" + p.ID,
			Type:        ActivityPartnership,
			Title:       "Partenariat " + p.CompanyName,
			Description: fmt.Sprintf("%s - %d places", p.PartnershipType.Label(), p.Students),
			Date:        dateOr(p.LastContact),
			Status:      status,
		})
	}

	for _, app := range core.LastN(in.Subsidies, 2) {
		status := ActivityInfo
		switch app.Status {
		case subsidy.StatusApproved:
			status = ActivitySuccess
		case subsidy.StatusRejected:
			status = ActivityWarning
		}
		acts = append(acts, Activity{
			ID:          "subsidy-" + app.ID,
			Type:        ActivitySubsidy,
			Title:       "Subvention " + app.FundingBody,
			Description: fmt.Sprintf("%s - %s", core.FormatEuros(app.Amount.Float()), app.Status.Label()),
			Date:        dateOr(app.SubmissionDate),
			Status:      status,
		})
	}

	// unparsable dates sort last; ties keep insertion order
	sort.SliceStable(acts, func(i, j int) bool { return activityTime(acts[i]).After(activityTime(acts[j])) })
	if len(acts) > MaxActivities {
		acts = acts[:MaxActivities]
	}
	if acts == nil {
		acts = []Activity{}
	}
	return acts
}

func activityTime(a Activity) time.Time {
	t, err := time.Parse(core.DateLayout, a.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
