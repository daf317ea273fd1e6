// Package questionnaire runs the 20-question readiness assessment of a school project.
package questionnaire

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Ok1nam/demo-edp-final/core"
	"github.com/Ok1nam/demo-edp-final/core/refdata"
)

// Answers
const (
	Yes = "OUI"
	No  = "NON"
)

// Assessments
const (
	AssessmentExcellent    = "Excellent - Projet très mature"
	AssessmentGood         = "Bon - Quelques ajustements nécessaires"
	AssessmentAverage      = "Moyen - Préparation à renforcer"
	AssessmentInsufficient = "Insuffisant - Projet à retravailler"
)

// secondSectionStart is the index of the first project-maturity question.
const secondSectionStart = 10

type (
	State struct {
		CurrentIndex int      `json:"currentIndex"`
		Responses    []string `json:"responses"`
		Started      bool     `json:"isStarted"`
		Completed    bool     `json:"isCompleted"`
	}

	Report struct {
		Score      float64 `json:"score"`
		Assessment string  `json:"assessment"`
		NoCount    int     `json:"noCount"`
	}

	// View is what a client needs to render the questionnaire.
	View struct {
		State
		Total          int               `json:"total"`
		Progress       float64           `json:"progress"`
		Section        string            `json:"section,omitempty"`
		Question       *refdata.Question `json:"question,omitempty"`
		Advice         string            `json:"advice,omitempty"`
		AdvancePending bool              `json:"advancePending"`
		Report         *Report           `json:"report,omitempty"`
	}

	AnswerInput struct {
		Answer string `json:"answer" validate:"required,oneof=OUI NON"`
	}
)

func (in *AnswerInput) Validate(validate *validator.Validate) error {
	in.Answer = strings.ToUpper(core.CleanString(in.Answer))
	return validate.Struct(in)
}

func Questions() []refdata.Question {
	return refdata.Questions()
}

// Score is the share of questions not answered NON, in percent.
// Unanswered questions count as positive.
func Score(responses []string, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(total-countNo(responses)) / float64(total) * 100
}

func countNo(responses []string) int {
	n := 0
	for _, r := range responses {
		if r == No {
			n++
		}
	}
	return n
}

func Assessment(score float64) string {
	switch {
	case score >= 90:
		return AssessmentExcellent
	case score >= 75:
		return AssessmentGood
	case score >= 60:
		return AssessmentAverage
	default:
		return AssessmentInsufficient
	}
}

func NewReport(responses []string, total int) Report {
	score := Score(responses, total)
	return Report{Score: score, Assessment: Assessment(score), NoCount: countNo(responses)}
}

// Section is the heading shown above the first question of each part.
func Section(index int) string {
	switch index {
	case 0:
		return "Volet 1 – Capacités personnelles du porteur de projet"
	case secondSectionStart:
		return "Volet 2 – Maturité du projet d'École de Production"
	}
	return ""
}

// Answered is the number of recorded responses.
func (s State) Answered() int {
	n := 0
	for _, r := range s.Responses {
		if r != "" {
			n++
		}
	}
	return n
}

func (s State) record(answer string) State {
	responses := make([]string, len(s.Responses))
	copy(responses, s.Responses)
	for len(responses) <= s.CurrentIndex {
		responses = append(responses, "")
	}
	responses[s.CurrentIndex] = answer
	s.Responses = responses
	return s
}

// next moves to the following question or completes on the last one.
func (s State) next(total int) State {
	if s.CurrentIndex+1 >= total {
		s.Completed = true
		return s
	}
	s.CurrentIndex++
	return s
}

func (s State) previous() State {
	if s.CurrentIndex > 0 {
		s.CurrentIndex--
	}
	return s
}

// NewView derives the display data of state.
func NewView(state State) View {
	questions := Questions()
	total := len(questions)
	v := View{State: state, Total: total}
	if state.Responses == nil {
		v.Responses = []string{}
	}
	switch {
	case state.Completed:
		v.Progress = 100
		r := NewReport(state.Responses, total)
		v.Report = &r
	case state.Started:
		v.Progress = float64(state.CurrentIndex) / float64(total) * 100
		if state.CurrentIndex < total {
			q := questions[state.CurrentIndex]
			v.Question = &q
			v.Section = Section(state.CurrentIndex)
		}
	}
	return v
}
