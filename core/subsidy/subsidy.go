// Package subsidy prepares and tracks funding applications.
package subsidy

import (
	"github.com/go-playground/validator/v10"

	"github.com/Ok1nam/demo-edp-final/core"
	"github.com/Ok1nam/demo-edp-final/core/refdata"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

// DefaultDuration is the project duration in months when none is given.
const DefaultDuration = 12

type (
	Budget struct {
		Personnel  core.Number `json:"personnel"`
		Equipment  core.Number `json:"equipment"`
		Operations core.Number `json:"operations"`
		Other      core.Number `json:"other"`
	}

	Application struct {
		ID                   string      `json:"id"`
		FundingBody          string      `json:"fundingBody" validate:"required,notblank"`
		ProgramName          string      `json:"programName"`
		Amount               core.Number `json:"amount" validate:"gt=0"`
		ProjectTitle         string      `json:"projectTitle" validate:"required,notblank"`
		ProjectDescription   string      `json:"projectDescription"`
		OrganizationName     string      `json:"organizationName"`
		SiretNumber          string      `json:"siretNumber"`
		ContactPerson        string      `json:"contactPerson"`
		Email                string      `json:"email" validate:"omitempty,email"`
		Phone                string      `json:"phone"`
		Address              string      `json:"address"`
		TargetAudience       string      `json:"targetAudience"`
		ExpectedStudents     core.Int    `json:"expectedStudents"`
		Sectors              []string    `json:"sectors"`
		ProjectDuration      core.Int    `json:"projectDuration"`
		StartDate            string      `json:"startDate" validate:"isodate"`
		Objectives           string      `json:"objectives"`
		Methodology          string      `json:"methodology"`
		PartnerOrganizations string      `json:"partnerOrganizations"`
		Budget               Budget      `json:"budget"`
		ExpectedOutcomes     string      `json:"expectedOutcomes"`
		EvaluationCriteria   string      `json:"evaluationCriteria"`
		Sustainability       string      `json:"sustainability"`
		Innovation           string      `json:"innovation"`
		SocialImpact         string      `json:"socialImpact"`
		Status               Status      `json:"status" validate:"omitempty,oneof=draft submitted approved rejected"`
		SubmissionDate       string      `json:"submissionDate" validate:"isodate"`
		ResponseDate         string      `json:"responseDate" validate:"isodate"`
	}
)

func (b Budget) Total() float64 {
	return b.Personnel.Float() + b.Equipment.Float() + b.Operations.Float() + b.Other.Float()
}

func (s Status) Label() string {
	switch s {
	case StatusDraft:
		return "Brouillon"
	case StatusSubmitted:
		return "Soumis"
	case StatusApproved:
		return "Approuvé"
	case StatusRejected:
		return "Rejeté"
	}
	return string(s)
}

// Validate cleans a, checks it and fills the defaults (draft, 12 months).
func (a *Application) Validate(validate *validator.Validate) error {
	a.FundingBody = core.CleanString(a.FundingBody)
	a.ProgramName = core.CleanString(a.ProgramName)
	a.ProjectTitle = core.CleanString(a.ProjectTitle)
	a.ProjectDescription = core.CleanString(a.ProjectDescription)
	a.OrganizationName = core.CleanString(a.OrganizationName)
	a.SiretNumber = core.CleanString(a.SiretNumber)
	a.ContactPerson = core.CleanString(a.ContactPerson)
	a.Email = core.CleanString(a.Email, true)
	a.Phone = core.CleanString(a.Phone)
	a.Address = core.CleanString(a.Address)
	a.Sectors = core.CleanStrings(a.Sectors)
	a.StartDate = core.CleanString(a.StartDate)
	a.SubmissionDate = core.CleanString(a.SubmissionDate)
	a.ResponseDate = core.CleanString(a.ResponseDate)
	a.Status = Status(core.CleanString(string(a.Status), true))

	if err := validate.Struct(a); err != nil {
		return err
	}
	if a.Status == "" {
		a.Status = StatusDraft
	}
	if a.ProjectDuration <= 0 {
		a.ProjectDuration = DefaultDuration
	}
	return nil
}

type Stats struct {
	Total       int     `json:"total"`
	Submitted   int     `json:"submitted"`
	Approved    int     `json:"approved"`
	TotalAmount float64 `json:"totalAmount"`
}

func ComputeStats(apps []Application) Stats {
	s := Stats{Total: len(apps)}
	for _, a := range apps {
		switch a.Status {
		case StatusSubmitted:
			s.Submitted++
		case StatusApproved:
			s.Approved++
		}
		s.TotalAmount += a.Amount.Float()
	}
	return s
}

// FundingBodies is the catalog of funders and their programs.
func FundingBodies() []refdata.FundingBody {
	return refdata.FundingBodies()
}
