// Package refdata holds the static catalogs shared by the planning tools:
// questionnaire items, funding bodies, sectors and cost templates.
package refdata

import (
	_ "embed"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	//go:embed questions.yaml
	questionsYAML []byte

	//go:embed catalog.yaml
	catalogYAML []byte

	loadOnce sync.Once
	data     Data
	loadErr  error
)

type (
	Question struct {
		Question string `yaml:"question" json:"question"`
		Advice   string `yaml:"advice" json:"advice"`
	}

	Criterion struct {
		Key   string `yaml:"key" json:"key"`
		Label string `yaml:"label" json:"label"`
	}

	FundingBody struct {
		Name     string   `yaml:"name" json:"name"`
		Programs []string `yaml:"programs" json:"programs"`
	}

	SectorTemplate struct {
		Name      string  `yaml:"name" json:"name"`
		Hours     float64 `yaml:"hours" json:"hours"`
		Equipment float64 `yaml:"equipment" json:"equipment"`
		Materials float64 `yaml:"materials" json:"materials"`
	}

	Data struct {
		Questions          []Question       `yaml:"questions"`
		LocationSectors    []string         `yaml:"locationSectors"`
		LocationCriteria   []Criterion      `yaml:"locationCriteria"`
		FundingBodies      []FundingBody    `yaml:"fundingBodies"`
		TrainingSectors    []string         `yaml:"trainingSectors"`
		CertificationTypes []string         `yaml:"certificationTypes"`
		SectorTemplates    []SectorTemplate `yaml:"sectorTemplates"`
	}
)

// Load parses the embedded catalogs once.
func Load() (Data, error) {
	loadOnce.Do(func() {
		if err := yaml.Unmarshal(questionsYAML, &data); err != nil {
			loadErr = errors.Wrap(err, "parsing questions.yaml")
			return
		}
		if err := yaml.Unmarshal(catalogYAML, &data); err != nil {
			loadErr = errors.Wrap(err, "parsing catalog.yaml")
		}
	})
	return data, loadErr
}

// MustLoad is Load for package initialisation; the catalogs are compiled in.
func MustLoad() Data {
	d, err := Load()
	if err != nil {
		panic(err)
	}
	return d
}

func Questions() []Question {
	return MustLoad().Questions
}

func LocationSectors() []string {
	return MustLoad().LocationSectors
}

func LocationCriteria() []Criterion {
	return MustLoad().LocationCriteria
}

func FundingBodies() []FundingBody {
	return MustLoad().FundingBodies
}

// Programs returns the programs of the named funding body, nil if unknown.
func Programs(fundingBody string) []string {
	for _, fb := range FundingBodies() {
		if fb.Name == fundingBody {
			return fb.Programs
		}
	}
	return nil
}

func TrainingSectors() []string {
	return MustLoad().TrainingSectors
}

func CertificationTypes() []string {
	return MustLoad().CertificationTypes
}

func SectorTemplates() []SectorTemplate {
	return MustLoad().SectorTemplates
}
