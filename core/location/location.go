// Package location scores candidate territories for a new school.
package location

import (
	"math"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Ok1nam/demo-edp-final/core"
)

// Tiers
const (
	TierExcellent = "Excellent"
	TierGood      = "Bon"
	TierAverage   = "Moyen"
	TierWeak      = "Faible"
)

// DefaultCriterion is the value of a criterion the user has not set.
const DefaultCriterion = 50

type (
	// Criteria are the eight territorial indicators, each in [0, 100].
	Criteria struct {
		Population         core.Number `json:"population"`
		UnemploymentRate   core.Number `json:"unemploymentRate"`
		AverageIncome      core.Number `json:"averageIncome"`
		IndustrialPresence core.Number `json:"industrialPresence"`
		TransportAccess    core.Number `json:"transportAccess"`
		EducationLevel     core.Number `json:"educationLevel"`
		CompetitionLevel   core.Number `json:"competitionLevel"`
		LocalSupport       core.Number `json:"localSupport"`
	}

	Analysis struct {
		ID             string   `json:"id"`
		CityName       string   `json:"cityName" validate:"required,notblank"`
		Region         string   `json:"region" validate:"required,notblank"`
		PostalCode     string   `json:"postalCode"`
		TargetSectors  []string `json:"targetSectors"`
		Criteria       Criteria `json:"criteria"`
		Strengths      []string `json:"strengths"`
		Weaknesses     []string `json:"weaknesses"`
		Opportunities  []string `json:"opportunities"`
		Threats        []string `json:"threats"`
		OverallScore   int      `json:"overallScore"`
		Recommendation string   `json:"recommendation"`
		Notes          string   `json:"notes"`
		AnalyzedDate   string   `json:"analyzedDate"`
	}

	// Result is a score with its tier and recommendation.
	Result struct {
		Score          int    `json:"score"`
		Tier           string `json:"tier"`
		Recommendation string `json:"recommendation"`
	}
)

// DefaultCriteria sets every criterion to DefaultCriterion.
func DefaultCriteria() Criteria {
	return Criteria{
		Population:         DefaultCriterion,
		UnemploymentRate:   DefaultCriterion,
		AverageIncome:      DefaultCriterion,
		IndustrialPresence: DefaultCriterion,
		TransportAccess:    DefaultCriterion,
		EducationLevel:     DefaultCriterion,
		CompetitionLevel:   DefaultCriterion,
		LocalSupport:       DefaultCriterion,
	}
}

// NewAnalysis returns an empty analysis with default criteria, ready to be decoded into.
func NewAnalysis() Analysis {
	return Analysis{Criteria: DefaultCriteria()}
}

func (c Criteria) clamped() Criteria {
	cl := func(n core.Number) core.Number { return core.Number(core.ClampPercent(n.Float())) }
	return Criteria{
		Population:         cl(c.Population),
		UnemploymentRate:   cl(c.UnemploymentRate),
		AverageIncome:      cl(c.AverageIncome),
		IndustrialPresence: cl(c.IndustrialPresence),
		TransportAccess:    cl(c.TransportAccess),
		EducationLevel:     cl(c.EducationLevel),
		CompetitionLevel:   cl(c.CompetitionLevel),
		LocalSupport:       cl(c.LocalSupport),
	}
}

// Score is the weighted sum of the criteria, rounded half away from zero.
// High youth unemployment means more need and scores higher; competition is inverted.
func Score(c Criteria) int {
	c = c.clamped()
	sum := c.Population.Float()*0.15 +
		c.UnemploymentRate.Float()*0.20 +
		c.AverageIncome.Float()*0.10 +
		c.IndustrialPresence.Float()*0.20 +
		c.TransportAccess.Float()*0.15 +
		c.EducationLevel.Float()*0.05 +
		(100-c.CompetitionLevel.Float())*0.10 +
		c.LocalSupport.Float()*0.05
	// absorb float noise: 69.99999999 must round like 70
	return int(math.Round(math.Round(sum*1e6) / 1e6))
}

func Tier(score int) string {
	switch {
	case score >= 80:
		return TierExcellent
	case score >= 60:
		return TierGood
	case score >= 40:
		return TierAverage
	default:
		return TierWeak
	}
}

func Recommendation(score int) string {
	switch {
	case score >= 80:
		return "Localisation très favorable. Conditions optimales pour l'implantation d'une école de production."
	case score >= 60:
		return "Localisation favorable. Quelques points d'attention à surveiller mais contexte propice."
	case score >= 40:
		return "Localisation moyenne. Nécessite des actions spécifiques pour compenser les faiblesses identifiées."
	default:
		return "Localisation peu favorable. Recommandation d'étudier d'autres territoires ou de revoir le projet."
	}
}

func Evaluate(c Criteria) Result {
	score := Score(c)
	return Result{Score: score, Tier: Tier(score), Recommendation: Recommendation(score)}
}

// Validate cleans the analysis and checks its required fields.
func (a *Analysis) Validate(validate *validator.Validate) error {
	a.CityName = core.CleanString(a.CityName)
	a.Region = core.CleanString(a.Region)
	a.PostalCode = core.CleanString(a.PostalCode)
	a.Notes = core.CleanString(a.Notes)
	a.TargetSectors = core.CleanStrings(a.TargetSectors)
	a.Strengths = core.CleanStrings(a.Strengths)
	a.Weaknesses = core.CleanStrings(a.Weaknesses)
	a.Opportunities = core.CleanStrings(a.Opportunities)
	a.Threats = core.CleanStrings(a.Threats)
	return validate.Struct(a)
}

// refresh recomputes the derived fields; stored scores are never trusted.
func (a *Analysis) refresh() {
	a.Criteria = a.Criteria.clamped()
	res := Evaluate(a.Criteria)
	a.OverallScore = res.Score
	a.Recommendation = res.Recommendation
}

func (a Analysis) Tier() string {
	return Tier(a.OverallScore)
}

var nowFunc = time.Now // mockable

func today() string {
	return nowFunc().Format(core.DateLayout)
}
