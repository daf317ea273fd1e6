// Package plan holds the business plan and the initial budget calculator.
package plan

import (
	"fmt"

	"github.com/Ok1nam/demo-edp-final/core"
)

// NotProfitable is the breakeven label when the average profit is not positive.
const NotProfitable = "Non rentable"

type (
	YearProjection struct {
		Revenue  core.Number `json:"revenue"`
		Expenses core.Number `json:"expenses"`
	}

	Projections struct {
		Year1 YearProjection `json:"year1"`
		Year2 YearProjection `json:"year2"`
		Year3 YearProjection `json:"year3"`
	}

	BusinessPlan struct {
		ProjectName          string      `json:"projectName"`
		PromoterName         string      `json:"promoterName"`
		Location             string      `json:"location"`
		TargetSectors        string      `json:"targetSectors"`
		StudentCapacity      core.Int    `json:"studentCapacity"`
		InitialInvestment    core.Number `json:"initialInvestment"`
		OperatingCosts       core.Number `json:"operatingCosts"`
		ExpectedRevenue      core.Number `json:"expectedRevenue"`
		Partnerships         string      `json:"partnerships"`
		CompetitionAnalysis  string      `json:"competitionAnalysis"`
		MarketingStrategy    string      `json:"marketingStrategy"`
		FinancialProjections Projections `json:"financialProjections"`
	}

	Breakeven struct {
		Profitable bool    `json:"profitable"`
		Years      float64 `json:"years"`
		Label      string  `json:"label"`
	}

	Metrics struct {
		ROI           float64   `json:"roi"`
		Breakeven     Breakeven `json:"breakeven"`
		AverageProfit float64   `json:"averageProfit"`
		Profits       []float64 `json:"profits"`
	}
)

// DefaultBusinessPlan is the plan shown before anything was saved.
func DefaultBusinessPlan() BusinessPlan {
	return BusinessPlan{
		StudentCapacity:   20,
		InitialInvestment: 100000,
		OperatingCosts:    80000,
		ExpectedRevenue:   90000,
		FinancialProjections: Projections{
			Year1: YearProjection{Revenue: 90000, Expenses: 80000},
			Year2: YearProjection{Revenue: 110000, Expenses: 85000},
			Year3: YearProjection{Revenue: 130000, Expenses: 90000},
		},
	}
}

func (y YearProjection) Profit() float64 {
	return y.Revenue.Float() - y.Expenses.Float()
}

func (p Projections) Years() []YearProjection {
	return []YearProjection{p.Year1, p.Year2, p.Year3}
}

func (p Projections) AverageProfit() float64 {
	return (p.Year1.Profit() + p.Year2.Profit() + p.Year3.Profit()) / 3
}

// ROI is the year-3 profit as a percentage of the initial investment; 0 without investment.
func ROI(bp BusinessPlan) float64 {
	return core.SafeDiv(bp.FinancialProjections.Year3.Profit(), bp.InitialInvestment.Float()) * 100
}

// ComputeBreakeven is the number of years of average profit needed to repay the investment.
func ComputeBreakeven(bp BusinessPlan) Breakeven {
	avg := bp.FinancialProjections.AverageProfit()
	if avg <= 0 {
		return Breakeven{Label: NotProfitable}
	}
	years := bp.InitialInvestment.Float() / avg
	return Breakeven{Profitable: true, Years: years, Label: fmt.Sprintf("%.1f ans", years)}
}

func ComputeMetrics(bp BusinessPlan) Metrics {
	profits := make([]float64, 0, 3)
	for _, y := range bp.FinancialProjections.Years() {
		profits = append(profits, y.Profit())
	}
	return Metrics{
		ROI:           ROI(bp),
		Breakeven:     ComputeBreakeven(bp),
		AverageProfit: bp.FinancialProjections.AverageProfit(),
		Profits:       profits,
	}
}

// Clean trims the free-text fields.
func (bp *BusinessPlan) Clean() {
	bp.ProjectName = core.CleanString(bp.ProjectName)
	bp.PromoterName = core.CleanString(bp.PromoterName)
	bp.Location = core.CleanString(bp.Location)
	bp.TargetSectors = core.CleanString(bp.TargetSectors)
	bp.Partnerships = core.CleanString(bp.Partnerships)
	bp.CompetitionAnalysis = core.CleanString(bp.CompetitionAnalysis)
	bp.MarketingStrategy = core.CleanString(bp.MarketingStrategy)
}
