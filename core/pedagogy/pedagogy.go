// Package pedagogy computes the training cost of each sector of a school.
package pedagogy

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/Ok1nam/demo-edp-final/core"
	"github.com/Ok1nam/demo-edp-final/core/refdata"
)

const (
	DefaultTrainers      = 1
	DefaultTrainerSalary = 35000
	DefaultOverheadRate  = 25
	DefaultAdminCosts    = 15000
)

// minTemplateRatio is the similarity below which no template is suggested.
const minTemplateRatio = .5

type (
	Sector struct {
		ID             string      `json:"id"`
		Name           string      `json:"name" validate:"required,notblank"`
		Students       core.Int    `json:"students" validate:"gt=0"`
		Hours          core.Number `json:"hours"`
		Trainers       core.Number `json:"trainers"`
		TrainerSalary  core.Number `json:"trainerSalary"`
		Equipment      core.Number `json:"equipment"`
		Materials      core.Number `json:"materials"`
		Certifications core.Number `json:"certifications"`
	}

	// Settings are the school-wide cost parameters.
	Settings struct {
		OverheadRate core.Number `json:"overheadRate"` // percent of direct costs
		AdminCosts   core.Number `json:"adminCosts"`
	}

	CostData struct {
		Sectors []Sector `json:"sectors"`
		Settings
	}

	SectorCost struct {
		SectorID       string  `json:"sectorId"`
		TrainerCosts   float64 `json:"trainerCosts"`
		DirectCosts    float64 `json:"directCosts"`
		OverheadCosts  float64 `json:"overheadCosts"`
		TotalCost      float64 `json:"totalCost"`
		CostPerStudent float64 `json:"costPerStudent"`
		CostPerHour    float64 `json:"costPerHour"`
	}

	GlobalMetrics struct {
		TotalStudents     int     `json:"totalStudents"`
		TotalCosts        float64 `json:"totalCosts"`
		TotalHours        float64 `json:"totalHours"`
		AvgCostPerStudent float64 `json:"avgCostPerStudent"`
		AvgCostPerHour    float64 `json:"avgCostPerHour"`
	}

	// Report is the cost data with every derived figure.
	Report struct {
		CostData
		SectorCosts []SectorCost  `json:"sectorCosts"`
		Global      GlobalMetrics `json:"global"`
	}

	// TemplateMatch is a sector template and how close its name is to a query.
	TemplateMatch struct {
		refdata.SectorTemplate
		Ratio float64 `json:"ratio"`
	}
)

func DefaultSettings() Settings {
	return Settings{OverheadRate: DefaultOverheadRate, AdminCosts: DefaultAdminCosts}
}

func DefaultCostData() CostData {
	return CostData{Sectors: []Sector{}, Settings: DefaultSettings()}
}

// Validate cleans the sector, checks it and fills the trainer defaults.
func (s *Sector) Validate(validate *validator.Validate) error {
	s.Name = core.CleanString(s.Name)
	if err := validate.Struct(s); err != nil {
		return err
	}
	if s.Trainers <= 0 {
		s.Trainers = DefaultTrainers
	}
	if s.TrainerSalary <= 0 {
		s.TrainerSalary = DefaultTrainerSalary
	}
	return nil
}

// Clean drops negative settings; a zero overhead rate is allowed.
func (s *Settings) Clean() {
	if s.OverheadRate < 0 {
		s.OverheadRate = 0
	}
	if s.AdminCosts < 0 {
		s.AdminCosts = 0
	}
}

func ComputeSectorCost(s Sector, overheadRate float64) SectorCost {
	trainer := s.Trainers.Float() * s.TrainerSalary.Float()
	direct := trainer + s.Equipment.Float() + s.Materials.Float() + s.Certifications.Float()
	overhead := direct * overheadRate / 100
	total := direct + overhead
	return SectorCost{
		SectorID:       s.ID,
		TrainerCosts:   trainer,
		DirectCosts:    direct,
		OverheadCosts:  overhead,
		TotalCost:      total,
		CostPerStudent: core.SafeDiv(total, s.Students.Float()),
		CostPerHour:    core.SafeDiv(total, s.Hours.Float()),
	}
}

// ComputeGlobal sums the sectors; the averages include the admin costs.
func ComputeGlobal(data CostData) GlobalMetrics {
	var g GlobalMetrics
	for _, s := range data.Sectors {
		g.TotalStudents += int(s.Students)
		g.TotalHours += s.Hours.Float()
		g.TotalCosts += ComputeSectorCost(s, data.OverheadRate.Float()).TotalCost
	}
	withAdmin := g.TotalCosts + data.AdminCosts.Float()
	g.AvgCostPerStudent = core.SafeDiv(withAdmin, float64(g.TotalStudents))
	g.AvgCostPerHour = core.SafeDiv(withAdmin, g.TotalHours)
	return g
}

func BuildReport(data CostData) Report {
	costs := make([]SectorCost, len(data.Sectors))
	for i, s := range data.Sectors {
		costs[i] = ComputeSectorCost(s, data.OverheadRate.Float())
	}
	return Report{CostData: data, SectorCosts: costs, Global: ComputeGlobal(data)}
}

func Templates() []refdata.SectorTemplate {
	return refdata.SectorTemplates()
}

// MatchTemplate finds the template whose name is the most similar to name.
// ok is false when nothing is close enough.
func MatchTemplate(name string) (match TemplateMatch, ok bool) {
	query := strings.Split(strings.ToLower(core.CleanString(name)), "")
	if len(query) == 0 {
		return match, false
	}
	for _, tpl := range Templates() {
		candidate := strings.Split(strings.ToLower(tpl.Name), "")
		ratio := difflib.NewMatcher(query, candidate).Ratio()
		if ratio > match.Ratio {
			match = TemplateMatch{SectorTemplate: tpl, Ratio: ratio}
		}
	}
	return match, match.Ratio >= minTemplateRatio
}

// Apply fills the sector's hours, equipment and materials from tpl.
func (s *Sector) Apply(tpl refdata.SectorTemplate) {
	s.Hours = core.Number(tpl.Hours)
	s.Equipment = core.Number(tpl.Equipment)
	s.Materials = core.Number(tpl.Materials)
}
