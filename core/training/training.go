// Package training plans the yearly training modules of a school.
package training

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Ok1nam/demo-edp-final/core"
	"github.com/Ok1nam/demo-edp-final/core/refdata"
)

type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

const DefaultAcademicYear = "2024-2025"

type (
	Module struct {
		ID            string   `json:"id"`
		Title         string   `json:"title" validate:"required,notblank"`
		Sector        string   `json:"sector" validate:"required,notblank"`
		Duration      core.Int `json:"duration"`
		StartDate     string   `json:"startDate" validate:"required,isodate"`
		EndDate       string   `json:"endDate" validate:"isodate"`
		Instructor    string   `json:"instructor"`
		Students      core.Int `json:"students"`
		Objectives    string   `json:"objectives"`
		Skills        []string `json:"skills"`
		Certification string   `json:"certification"`
		Status        Status   `json:"status" validate:"omitempty,oneof=planned in-progress completed cancelled"`
		Prerequisites string   `json:"prerequisites"`
		Resources     string   `json:"resources"`
	}

	Plan struct {
		Modules      []Module `json:"modules"`
		AcademicYear string   `json:"academicYear"`
	}

	Stats struct {
		Total         int `json:"total"`
		Completed     int `json:"completed"`
		InProgress    int `json:"inProgress"`
		TotalHours    int `json:"totalHours"`
		TotalStudents int `json:"totalStudents"`
	}

	// MonthGroup holds the modules starting in one calendar month.
	MonthGroup struct {
		Label   string   `json:"label"`
		Modules []Module `json:"modules"`
	}
)

func DefaultPlan() Plan {
	return Plan{Modules: []Module{}, AcademicYear: DefaultAcademicYear}
}

func (s Status) Label() string {
	switch s {
	case StatusPlanned:
		return "Planifié"
	case StatusInProgress:
		return "En cours"
	case StatusCompleted:
		return "Terminé"
	case StatusCancelled:
		return "Annulé"
	}
	return string(s)
}

func (m *Module) Validate(validate *validator.Validate) error {
	m.Title = core.CleanString(m.Title)
	m.Sector = core.CleanString(m.Sector)
	m.StartDate = core.CleanString(m.StartDate)
	m.EndDate = core.CleanString(m.EndDate)
	m.Instructor = core.CleanString(m.Instructor)
	m.Objectives = core.CleanString(m.Objectives)
	m.Skills = core.CleanStrings(m.Skills)
	m.Certification = core.CleanString(m.Certification)
	m.Prerequisites = core.CleanString(m.Prerequisites)
	m.Resources = core.CleanString(m.Resources)
	m.Status = Status(core.CleanString(string(m.Status), true))

	if err := validate.Struct(m); err != nil {
		return err
	}
	if m.Status == "" {
		m.Status = StatusPlanned
	}
	return nil
}

func ComputeStats(modules []Module) Stats {
	s := Stats{Total: len(modules)}
	for _, m := range modules {
		switch m.Status {
		case StatusCompleted:
			s.Completed++
		case StatusInProgress:
			s.InProgress++
		}
		s.TotalHours += int(m.Duration)
		s.TotalStudents += int(m.Students)
	}
	return s
}

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// MonthLabel formats t the way French calendars title a month: "janvier 2025".
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", frenchMonths[t.Month()-1], t.Year())
}

// Calendar groups the modules by start month, oldest month first.
// Modules without a parsable start date are left out.
func Calendar(modules []Module) []MonthGroup {
	type bucket struct {
		month time.Time
		group MonthGroup
	}
	var buckets []*bucket
	byLabel := map[string]*bucket{}

	for _, m := range modules {
		start, err := time.Parse(core.DateLayout, m.StartDate)
		if err != nil {
			continue
		}
		label := MonthLabel(start)
		b, ok := byLabel[label]
		if !ok {
			b = &bucket{
				month: time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC),
				group: MonthGroup{Label: label},
			}
			byLabel[label] = b
			buckets = append(buckets, b)
		}
		b.group.Modules = append(b.group.Modules, m)
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].month.Before(buckets[j].month)
	})
	groups := make([]MonthGroup, len(buckets))
	for i, b := range buckets {
		groups[i] = b.group
	}
	return groups
}

// Reference lists the choices offered by the module form.
type Reference struct {
	Sectors        []string `json:"sectors"`
	Certifications []string `json:"certifications"`
}

func GetReference() Reference {
	return Reference{Sectors: refdata.TrainingSectors(), Certifications: refdata.CertificationTypes()}
}
