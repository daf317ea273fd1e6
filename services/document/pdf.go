// Package docsvc renders the downloadable documents: PDF reports, workbooks and HTML previews.
package docsvc

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"

	"github.com/Ok1nam/demo-edp-final/core"
	"github.com/Ok1nam/demo-edp-final/core/plan"
	"github.com/Ok1nam/demo-edp-final/core/questionnaire"
	"github.com/Ok1nam/demo-edp-final/core/statuts"
)

const (
	marginL  = 18.0
	marginR  = 18.0
	pageW    = 210.0
	contentW = pageW - marginL - marginR
	lineH    = 5.5
)

var (
	colorPrimary = [3]int{30, 64, 175}
	colorText    = [3]int{31, 41, 55}
	colorMuted   = [3]int{107, 114, 128}
	colorYes     = [3]int{22, 163, 74}
	colorNo      = [3]int{220, 38, 38}
)

// report wraps a page setup shared by every PDF; tr converts UTF-8 to the core fonts' cp1252.
type report struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func newReport(appName, title string) *report {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginL, 18, marginR)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetTitle(title, true)
	pdf.SetCreator(appName, true)

	r := &report{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetFooterFunc(func() {
		pdf.SetY(-14)
		setText(pdf, colorMuted)
		pdf.SetFont("Helvetica", "", 7.5)
		pdf.CellFormat(contentW/2, 8, r.tr(appName), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW/2, 8, fmt.Sprintf("%d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})
	pdf.AddPage()
	return r
}

func setText(pdf *gofpdf.Fpdf, c [3]int) { pdf.SetTextColor(c[0], c[1], c[2]) }
func setDraw(pdf *gofpdf.Fpdf, c [3]int) { pdf.SetDrawColor(c[0], c[1], c[2]) }

func (r *report) title(text string) {
	setText(r.pdf, colorPrimary)
	r.pdf.SetFont("Helvetica", "B", 16)
	r.pdf.MultiCell(contentW, 8, r.tr(text), "", "L", false)
	setDraw(r.pdf, colorPrimary)
	r.pdf.SetLineWidth(0.5)
	y := r.pdf.GetY() + 1
	r.pdf.Line(marginL, y, pageW-marginR, y)
	r.pdf.Ln(5)
}

func (r *report) heading(text string) {
	r.pdf.Ln(2)
	setText(r.pdf, colorPrimary)
	r.pdf.SetFont("Helvetica", "B", 11)
	r.pdf.MultiCell(contentW, 6.5, r.tr(text), "", "L", false)
}

func (r *report) paragraph(text string) {
	setText(r.pdf, colorText)
	r.pdf.SetFont("Helvetica", "", 10)
	r.pdf.MultiCell(contentW, lineH, r.tr(text), "", "L", false)
}

// row prints a label and its value on one line.
func (r *report) row(label, value string) {
	setText(r.pdf, colorMuted)
	r.pdf.SetFont("Helvetica", "", 10)
	r.pdf.CellFormat(contentW*0.55, lineH+1, r.tr(label), "", 0, "L", false, 0, "")
	setText(r.pdf, colorText)
	r.pdf.SetFont("Helvetica", "B", 10)
	r.pdf.CellFormat(contentW*0.45, lineH+1, r.tr(value), "", 1, "R", false, 0, "")
}

func (r *report) output(w io.Writer) error {
	if err := r.pdf.Output(w); err != nil {
		return errors.Wrap(err, "writing pdf")
	}
	return nil
}

// StatutsPDF writes the statutes of an association.
func StatutsPDF(w io.Writer, appName string, doc statuts.Document) error {
	r := newReport(appName, doc.Title)
	r.title(doc.Title)
	setText(r.pdf, colorText)
	r.pdf.SetFont("Helvetica", "B", 13)
	r.pdf.MultiCell(contentW, 7, r.tr(doc.Name), "", "C", false)
	r.pdf.Ln(3)

	for _, a := range doc.Articles {
		r.heading(a.Heading)
		r.paragraph(a.Body)
	}

	r.pdf.Ln(6)
	r.paragraph(doc.Signature())
	r.pdf.Ln(4)
	r.pdf.SetFont("Helvetica", "B", 10)
	r.pdf.CellFormat(contentW/2, lineH, r.tr("Le Président,"), "", 0, "L", false, 0, "")
	r.pdf.CellFormat(contentW/2, lineH, r.tr("Le Secrétaire,"), "", 1, "L", false, 0, "")
	r.pdf.SetFont("Helvetica", "", 10)
	r.pdf.CellFormat(contentW/2, lineH, r.tr(doc.President), "", 0, "L", false, 0, "")
	r.pdf.CellFormat(contentW/2, lineH, r.tr(doc.Secretary), "", 1, "L", false, 0, "")
	r.pdf.Ln(3)
	r.pdf.CellFormat(contentW/2, lineH, "Signature :", "", 0, "L", false, 0, "")
	r.pdf.CellFormat(contentW/2, lineH, "Signature :", "", 1, "L", false, 0, "")
	return r.output(w)
}

// QuestionnairePDF writes the answers of the readiness questionnaire and, once
// completed, its score. Advice is printed under every NON.
func QuestionnairePDF(w io.Writer, appName string, v questionnaire.View) error {
	r := newReport(appName, "Arbre de décision")
	r.title("Arbre de décision - Rapport d'évaluation")

	if v.Report != nil {
		r.row("Score", fmt.Sprintf("%.0f%%", v.Report.Score))
		r.row("Évaluation", v.Report.Assessment)
		r.row("Réponses NON", fmt.Sprintf("%d / %d", v.Report.NoCount, v.Total))
	} else {
		r.row("Progression", fmt.Sprintf("%d / %d questions", v.Answered(), v.Total))
	}

	for i, q := range questionnaire.Questions() {
		if section := questionnaire.Section(i); section != "" {
			r.heading(section)
		}
		answer := ""
		if i < len(v.Responses) {
			answer = v.Responses[i]
		}

		setText(r.pdf, colorText)
		r.pdf.SetFont("Helvetica", "", 10)
		r.pdf.MultiCell(contentW-18, lineH, r.tr(fmt.Sprintf("%d. %s", i+1, q.Question)), "", "L", false)
		switch answer {
		case questionnaire.Yes:
			setText(r.pdf, colorYes)
		case questionnaire.No:
			setText(r.pdf, colorNo)
		default:
			setText(r.pdf, colorMuted)
			answer = "-"
		}
		r.pdf.SetFont("Helvetica", "B", 10)
		r.pdf.CellFormat(contentW, lineH, answer, "", 1, "R", false, 0, "")
		if answer == questionnaire.No {
			setText(r.pdf, colorMuted)
			r.pdf.SetFont("Helvetica", "I", 9)
			r.pdf.MultiCell(contentW, lineH-0.5, r.tr("Conseil : "+q.Advice), "", "L", false)
		}
		r.pdf.Ln(1.5)
	}
	return r.output(w)
}

// BusinessPlanPDF writes the business plan with its financial indicators.
func BusinessPlanPDF(w io.Writer, appName string, bp plan.BusinessPlan) error {
	m := plan.ComputeMetrics(bp)
	title := "Business Plan"
	if bp.ProjectName != "" {
		title += " - " + bp.ProjectName
	}
	r := newReport(appName, title)
	r.title(title)

	r.heading("Présentation du projet")
	r.row("Porteur de projet", orDash(bp.PromoterName))
	r.row("Localisation", orDash(bp.Location))
	r.row("Secteurs ciblés", orDash(bp.TargetSectors))
	r.row("Capacité d'accueil", fmt.Sprintf("%d élèves", bp.StudentCapacity))

	r.heading("Données financières")
	r.row("Investissement initial", core.FormatEuros(bp.InitialInvestment.Float()))
	r.row("Coûts de fonctionnement annuels", core.FormatEuros(bp.OperatingCosts.Float()))
	r.row("Revenus attendus", core.FormatEuros(bp.ExpectedRevenue.Float()))

	r.heading("Projections sur 3 ans")
	for i, y := range bp.FinancialProjections.Years() {
		r.row(fmt.Sprintf("Année %d - revenus / dépenses", i+1),
			core.FormatEuros(y.Revenue.Float())+" / "+core.FormatEuros(y.Expenses.Float()))
		r.row(fmt.Sprintf("Année %d - résultat", i+1), core.FormatEuros(y.Profit()))
	}

	r.heading("Indicateurs")
	r.row("ROI (année 3)", fmt.Sprintf("%.1f%%", m.ROI))
	r.row("Seuil de rentabilité", m.Breakeven.Label)
	r.row("Résultat moyen", core.FormatEuros(m.AverageProfit))

	for _, s := range []struct{ heading, text string }{
		{"Partenariats", bp.Partnerships},
		{"Analyse concurrentielle", bp.CompetitionAnalysis},
		{"Stratégie marketing", bp.MarketingStrategy},
	} {
		if strings.TrimSpace(s.text) != "" {
			r.heading(s.heading)
			r.paragraph(s.text)
		}
	}
	return r.output(w)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
