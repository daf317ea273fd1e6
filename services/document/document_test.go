package docsvc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Ok1nam/demo-edp-final/core/dashboard"
	"github.com/Ok1nam/demo-edp-final/core/partnership"
	"github.com/Ok1nam/demo-edp-final/core/plan"
	"github.com/Ok1nam/demo-edp-final/core/questionnaire"
	"github.com/Ok1nam/demo-edp-final/core/rentability"
	"github.com/Ok1nam/demo-edp-final/core/statuts"
	"github.com/Ok1nam/demo-edp-final/core/training"
)

const appName = "Demo EDP"

func pdfText(t *testing.T, data []byte) string {
	t.Helper()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		require.NoError(t, err)
		sb.WriteString(text)
		sb.WriteString(" ")
	}
	return sb.String()
}

func sampleStatuts() statuts.Document {
	return statuts.Generate(statuts.Input{
		AssociationName: "EDP Lyon",
		PresidentName:   "Marie Dupont",
		SecretaireName:  "Paul Martin",
		SiegeSocial:     "Lyon, 12 rue de la Republique",
	})
}

func TestStatutsPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, StatutsPDF(&buf, appName, sampleStatuts()))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))

	text := pdfText(t, buf.Bytes())
	assert.Contains(t, text, "EDP Lyon")
	assert.Contains(t, text, "ARTICLE 16")
	assert.Contains(t, text, "Marie Dupont")
	assert.Contains(t, text, "Signature")
}

func TestQuestionnairePDF(t *testing.T) {
	responses := make([]string, 20)
	for i := range responses {
		responses[i] = questionnaire.Yes
	}
	responses[3] = questionnaire.No
	v := questionnaire.NewView(questionnaire.State{Started: true, Completed: true, CurrentIndex: 19, Responses: responses})

	var buf bytes.Buffer
	require.NoError(t, QuestionnairePDF(&buf, appName, v))

	text := pdfText(t, buf.Bytes())
	assert.Contains(t, text, "95%")
	assert.Contains(t, text, "Conseil")
	assert.Contains(t, text, "NON")
}

func TestBusinessPlanPDF(t *testing.T) {
	bp := plan.DefaultBusinessPlan()
	bp.ProjectName = "EDP Lyon"
	bp.MarketingStrategy = "Portes ouvertes et salons"

	var buf bytes.Buffer
	require.NoError(t, BusinessPlanPDF(&buf, appName, bp))

	text := pdfText(t, buf.Bytes())
	assert.Contains(t, text, "EDP Lyon")
	assert.Contains(t, text, "40.0%")
	assert.Contains(t, text, "4.0 ans")
	assert.Contains(t, text, "Portes ouvertes")
}

func TestTemplate(t *testing.T) {
	f, err := Template()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, f))

	wb, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{SheetPlanComptable, SheetTVA, SheetResultat}, wb.GetSheetList())

	v, err := wb.GetCellValue(SheetPlanComptable, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Classe 1 - Comptes de capitaux", v)

	formula, err := wb.GetCellFormula(SheetTVA, "B7")
	require.NoError(t, err)
	assert.Equal(t, "B4*B5*B6", formula)

	formula, err = wb.GetCellFormula(SheetResultat, "B5")
	require.NoError(t, err)
	assert.Equal(t, "B2+B3-B4", formula)
}

func TestExport(t *testing.T) {
	in := dashboard.Inputs{
		BusinessPlan: plan.DefaultBusinessPlan(),
		Rentability:  rentability.DefaultInputs(),
		Partnerships: []partnership.Partnership{{CompanyName: "Renault", Status: partnership.StatusActive, PartnershipType: partnership.TypeInternship}},
		Training:     training.Plan{Modules: []training.Module{{Title: "Soudure", Skills: []string{"TIG", "MIG"}, Status: training.StatusPlanned}}},
	}
	f, err := Export(in)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, f))
	wb, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer wb.Close()

	assert.Len(t, wb.GetSheetList(), 7)

	rows, err := wb.GetRows(SheetRentability)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Réaliste", rows[2][0])

	rows, err = wb.GetRows(SheetPartnerships)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Renault", "", "", "", "Stages", "Partenariat actif", "0"}, rows[1])

	rows, err = wb.GetRows(SheetTraining)
	require.NoError(t, err)
	assert.Equal(t, "TIG, MIG", rows[1][9])

	rows, err = wb.GetRows(SheetQuestions)
	require.NoError(t, err)
	assert.Len(t, rows, 21)
}

func TestStatutsHTML(t *testing.T) {
	html, err := StatutsHTML(sampleStatuts())
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>STATUTS DE L'ASSOCIATION</h1>")
	assert.Contains(t, html, "<h2>ARTICLE 1 - DÉNOMINATION</h2>")
	assert.Contains(t, html, "<li>Membres d'honneur</li>")
	assert.Contains(t, html, "<table>")

	out, err := RenderMarkdown("<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
}
