// Package partnership tracks the companies working with the school.
package partnership

import (
	"github.com/go-playground/validator/v10"

	"github.com/Ok1nam/demo-edp-final/core"
)

type (
	Type   string
	Status string
)

const (
	TypeInternship     Type = "stage"
	TypeApprenticeship Type = "apprentissage"
	TypeEquipment      Type = "equipement"
	TypeFunding        Type = "financement"
	TypeOther          Type = "autre"

	StatusProspect    Status = "prospect"
	StatusContact     Status = "contact"
	StatusNegotiation Status = "negociation"
	StatusActive      Status = "actif"
	StatusSuspended   Status = "suspendu"
)

type Partnership struct {
	ID              string   `json:"id"`
	CompanyName     string   `json:"companyName" validate:"required,notblank"`
	ContactPerson   string   `json:"contactPerson" validate:"required,notblank"`
	Email           string   `json:"email" validate:"omitempty,email"`
	Phone           string   `json:"phone"`
	Sector          string   `json:"sector"`
	Location        string   `json:"location"`
	PartnershipType Type     `json:"partnershipType" validate:"omitempty,oneof=stage apprentissage equipement financement autre"`
	Status          Status   `json:"status" validate:"omitempty,oneof=prospect contact negociation actif suspendu"`
	Students        core.Int `json:"students"`
	Notes           string   `json:"notes"`
	LastContact     string   `json:"lastContact" validate:"isodate"`
	NextAction      string   `json:"nextAction"`
}

func (t Type) Label() string {
	switch t {
	case TypeInternship:
		return "Stages"
	case TypeApprenticeship:
		return "Apprentissage"
	case TypeEquipment:
		return "Équipements"
	case TypeFunding:
		return "Financement"
	case TypeOther:
		return "Autre"
	}
	return string(t)
}

func (s Status) Label() string {
	switch s {
	case StatusProspect:
		return "Prospect"
	case StatusContact:
		return "Premier contact"
	case StatusNegotiation:
		return "En négociation"
	case StatusActive:
		return "Partenariat actif"
	case StatusSuspended:
		return "Suspendu"
	}
	return string(s)
}

// Validate cleans p, checks it and fills the defaults (stage, prospect).
func (p *Partnership) Validate(validate *validator.Validate) error {
	p.CompanyName = core.CleanString(p.CompanyName)
	p.ContactPerson = core.CleanString(p.ContactPerson)
	p.Email = core.CleanString(p.Email, true)
	p.Phone = core.CleanString(p.Phone)
	p.Sector = core.CleanString(p.Sector)
	p.Location = core.CleanString(p.Location)
	p.Notes = core.CleanString(p.Notes)
	p.LastContact = core.CleanString(p.LastContact)
	p.NextAction = core.CleanString(p.NextAction)
	p.PartnershipType = Type(core.CleanString(string(p.PartnershipType), true))
	p.Status = Status(core.CleanString(string(p.Status), true))

	if err := validate.Struct(p); err != nil {
		return err
	}
	if p.PartnershipType == "" {
		p.PartnershipType = TypeInternship
	}
	if p.Status == "" {
		p.Status = StatusProspect
	}
	return nil
}

type Stats struct {
	Total         int `json:"total"`
	Active        int `json:"active"`
	Prospects     int `json:"prospects"`
	TotalStudents int `json:"totalStudents"`
}

func ComputeStats(partnerships []Partnership) Stats {
	s := Stats{Total: len(partnerships)}
	for _, p := range partnerships {
		switch p.Status {
		case StatusActive:
			s.Active++
		case StatusProspect:
			s.Prospects++
		}
		s.TotalStudents += int(p.Students)
	}
	return s
}
