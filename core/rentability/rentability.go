// Package rentability projects the yearly operating result of a school.
package rentability

import (
	"github.com/go-playground/validator/v10"

	"github.com/Ok1nam/demo-edp-final/core"
)

type Scenario string

const (
	Optimistic  Scenario = "optimistic"
	Realistic   Scenario = "realistic"
	Pessimistic Scenario = "pessimistic"
)

// Scenarios in display order.
var Scenarios = []Scenario{Optimistic, Realistic, Pessimistic}

// Margin statuses
const (
	StatusExcellent = "Excellente rentabilité"
	StatusGood      = "Bonne rentabilité"
	StatusFragile   = "Rentabilité fragile"
	StatusDeficit   = "Déficit"
)

type (
	Inputs struct {
		Students      core.Int    `json:"students"`
		TuitionFee    core.Number `json:"tuitionFee"`
		Subsidies     core.Number `json:"subsidies"`
		OtherRevenue  core.Number `json:"otherRevenue"`
		Salaries      core.Number `json:"salaries"`
		FacilityRent  core.Number `json:"facilityRent"`
		Equipment     core.Number `json:"equipment"`
		Utilities     core.Number `json:"utilities"`
		Insurance     core.Number `json:"insurance"`
		OtherExpenses core.Number `json:"otherExpenses"`
		Scenario      Scenario    `json:"scenario,omitempty" validate:"omitempty,oneof=optimistic realistic pessimistic"`
	}

	Multiplier struct {
		Revenue  float64 `json:"revenue"`
		Expenses float64 `json:"expenses"`
	}

	Metrics struct {
		Scenario          Scenario `json:"scenario"`
		Revenue           float64  `json:"revenue"`
		Expenses          float64  `json:"expenses"`
		Profit            float64  `json:"profit"`
		Margin            float64  `json:"margin"`
		CostPerStudent    float64  `json:"costPerStudent"`
		RevenuePerStudent float64  `json:"revenuePerStudent"`
		Status            string   `json:"status"`
	}
)

func DefaultInputs() Inputs {
	return Inputs{
		Students:      20,
		TuitionFee:    3000,
		Subsidies:     25000,
		OtherRevenue:  10000,
		Salaries:      120000,
		FacilityRent:  18000,
		Equipment:     8000,
		Utilities:     6000,
		Insurance:     3000,
		OtherExpenses: 5000,
		Scenario:      Realistic,
	}
}

// ParseScenario returns the matching scenario, Realistic when unknown.
func ParseScenario(s string) Scenario {
	switch sc := Scenario(core.CleanString(s, true)); sc {
	case Optimistic, Pessimistic:
		return sc
	default:
		return Realistic
	}
}

func (s Scenario) Multiplier() Multiplier {
	switch s {
	case Optimistic:
		return Multiplier{Revenue: 1.2, Expenses: 0.9}
	case Pessimistic:
		return Multiplier{Revenue: 0.8, Expenses: 1.1}
	default:
		return Multiplier{Revenue: 1, Expenses: 1}
	}
}

func (s Scenario) Label() string {
	switch s {
	case Optimistic:
		return "Optimiste"
	case Pessimistic:
		return "Pessimiste"
	default:
		return "Réaliste"
	}
}

// BaseRevenue is the unscaled yearly revenue.
func (in Inputs) BaseRevenue() float64 {
	return in.Students.Float()*in.TuitionFee.Float() + in.Subsidies.Float() + in.OtherRevenue.Float()
}

// BaseExpenses is the unscaled yearly expenses.
func (in Inputs) BaseExpenses() float64 {
	return in.Salaries.Float() + in.FacilityRent.Float() + in.Equipment.Float() +
		in.Utilities.Float() + in.Insurance.Float() + in.OtherExpenses.Float()
}

func Status(margin float64) string {
	switch {
	case margin >= 10:
		return StatusExcellent
	case margin >= 5:
		return StatusGood
	case margin >= 0:
		return StatusFragile
	default:
		return StatusDeficit
	}
}

// Compute applies the scenario multipliers and derives the operating result.
func Compute(in Inputs, scenario Scenario) Metrics {
	m := scenario.Multiplier()
	revenue := in.BaseRevenue() * m.Revenue
	expenses := in.BaseExpenses() * m.Expenses
	profit := revenue - expenses

	// without revenue every expense is lost: the margin bottoms out at -100
	var margin float64
	switch {
	case revenue > 0:
		margin = profit / revenue * 100
	case profit < 0:
		margin = -100
	}
	var costPerStudent, revenuePerStudent float64
	if in.Students > 0 {
		costPerStudent = expenses / in.Students.Float()
		revenuePerStudent = revenue / in.Students.Float()
	}

	return Metrics{
		Scenario:          scenario,
		Revenue:           revenue,
		Expenses:          expenses,
		Profit:            profit,
		Margin:            margin,
		CostPerStudent:    costPerStudent,
		RevenuePerStudent: revenuePerStudent,
		Status:            Status(margin),
	}
}

// CompareScenarios computes every scenario, in display order.
func CompareScenarios(in Inputs) []Metrics {
	all := make([]Metrics, 0, len(Scenarios))
	for _, s := range Scenarios {
		all = append(all, Compute(in, s))
	}
	return all
}

func (in *Inputs) Validate(validate *validator.Validate) error {
	in.Scenario = Scenario(core.CleanString(string(in.Scenario), true))
	if err := validate.Struct(in); err != nil {
		return err
	}
	if in.Scenario == "" {
		in.Scenario = Realistic
	}
	return nil
}
