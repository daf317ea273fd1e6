package docsvc

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/Ok1nam/demo-edp-final/core/dashboard"
	"github.com/Ok1nam/demo-edp-final/core/pedagogy"
	"github.com/Ok1nam/demo-edp-final/core/plan"
	"github.com/Ok1nam/demo-edp-final/core/questionnaire"
	"github.com/Ok1nam/demo-edp-final/core/rentability"
)

// Workbook sheets
const (
	SheetPlanComptable = "Plan comptable"
	SheetTVA           = "Coefficient TVA"
	SheetResultat      = "Résultat fiscal"

	SheetBusinessPlan = "Business plan"
	SheetRentability  = "Rentabilité"
	SheetPartnerships = "Partenariats"
	SheetSubsidies    = "Subventions"
	SheetTraining     = "Formations"
	SheetPedagogy     = "Coûts pédagogiques"
	SheetQuestions    = "Questionnaire"
)

// ContentTypeXLSX is the MIME type of the workbooks.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type account struct {
	number, label string
}

var chartOfAccounts = []struct {
	class    string
	accounts []account
}{
	{"Classe 1 - Comptes de capitaux", []account{
		{"102", "Fonds associatifs sans droit de reprise"},
		{"110", "Report à nouveau"},
		{"120", "Résultat de l'exercice"},
		{"131", "Subventions d'équipement"},
		{"164", "Emprunts auprès des établissements de crédit"},
	}},
	{"Classe 2 - Comptes d'immobilisations", []account{
		{"213", "Constructions"},
		{"2154", "Matériel industriel"},
		{"2183", "Matériel de bureau et informatique"},
		{"281", "Amortissements des immobilisations corporelles"},
	}},
	{"Classe 3 - Comptes de stocks", []account{
		{"31", "Matières premières"},
		{"355", "Produits finis"},
	}},
	{"Classe 4 - Comptes de tiers", []account{
		{"401", "Fournisseurs"},
		{"411", "Clients"},
		{"421", "Personnel - rémunérations dues"},
		{"431", "Sécurité sociale"},
		{"44566", "TVA déductible sur autres biens et services"},
		{"44571", "TVA collectée"},
		{"441", "État - subventions à recevoir"},
	}},
	{"Classe 5 - Comptes financiers", []account{
		{"512", "Banque"},
		{"530", "Caisse"},
	}},
	{"Classe 6 - Comptes de charges", []account{
		{"601", "Achats de matières premières"},
		{"606", "Achats non stockés"},
		{"613", "Locations"},
		{"616", "Primes d'assurance"},
		{"622", "Rémunérations d'intermédiaires et honoraires"},
		{"641", "Rémunérations du personnel"},
		{"645", "Charges de sécurité sociale"},
		{"681", "Dotations aux amortissements"},
	}},
	{"Classe 7 - Comptes de produits", []account{
		{"701", "Ventes de produits finis"},
		{"706", "Prestations de services"},
		{"74", "Subventions d'exploitation"},
		{"7475", "Taxe d'apprentissage"},
		{"756", "Cotisations"},
		{"777", "Quote-part des subventions d'investissement virée au résultat"},
	}},
}

// Template builds the workbook shared by the chart of accounts, VAT
// coefficient and taxable income tools. Input cells are left empty.
func Template() (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetPlanComptable); err != nil {
		return nil, errors.Wrap(err, "renaming sheet")
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, errors.Wrap(err, "creating style")
	}

	// chart of accounts
	row := 1
	setRow(f, SheetPlanComptable, row, "Compte", "Intitulé")
	_ = f.SetRowStyle(SheetPlanComptable, row, row, bold)
	for _, c := range chartOfAccounts {
		row++
		setRow(f, SheetPlanComptable, row, c.class)
		_ = f.SetRowStyle(SheetPlanComptable, row, row, bold)
		for _, a := range c.accounts {
			row++
			setRow(f, SheetPlanComptable, row, a.number, a.label)
		}
	}
	_ = f.SetColWidth(SheetPlanComptable, "A", "A", 14)
	_ = f.SetColWidth(SheetPlanComptable, "B", "B", 60)

	// VAT deduction coefficient: product of the three sub-coefficients
	if _, err = f.NewSheet(SheetTVA); err != nil {
		return nil, errors.Wrap(err, "creating sheet")
	}
	setRow(f, SheetTVA, 1, "Élément", "Valeur", "Commentaire")
	_ = f.SetRowStyle(SheetTVA, 1, 1, bold)
	setRow(f, SheetTVA, 2, "Chiffre d'affaires soumis à TVA", nil, "Ventes de la production")
	setRow(f, SheetTVA, 3, "Recettes totales", nil, "Y compris subventions et taxe d'apprentissage")
	setRow(f, SheetTVA, 4, "Coefficient d'assujettissement", nil, "Part de l'activité dans le champ de la TVA")
	setRow(f, SheetTVA, 5, "Coefficient de taxation", nil, "CA taxable / recettes totales")
	setRow(f, SheetTVA, 6, "Coefficient d'admission", 1, "1 sauf exclusion légale")
	setRow(f, SheetTVA, 7, "Coefficient de déduction", nil, "Assujettissement x taxation x admission")
	_ = f.SetCellFormula(SheetTVA, "B5", "IF(B3=0,0,B2/B3)")
	_ = f.SetCellFormula(SheetTVA, "B7", "B4*B5*B6")
	_ = f.SetColWidth(SheetTVA, "A", "A", 36)
	_ = f.SetColWidth(SheetTVA, "C", "C", 48)

	// taxable income
	if _, err = f.NewSheet(SheetResultat); err != nil {
		return nil, errors.Wrap(err, "creating sheet")
	}
	setRow(f, SheetResultat, 1, "Élément", "Montant")
	_ = f.SetRowStyle(SheetResultat, 1, 1, bold)
	setRow(f, SheetResultat, 2, "Résultat comptable")
	setRow(f, SheetResultat, 3, "Réintégrations (charges non déductibles)")
	setRow(f, SheetResultat, 4, "Déductions (produits non imposables)")
	setRow(f, SheetResultat, 5, "Résultat fiscal")
	_ = f.SetCellFormula(SheetResultat, "B5", "B2+B3-B4")
	_ = f.SetColWidth(SheetResultat, "A", "A", 44)

	f.SetActiveSheet(0)
	return f, nil
}

// Export writes every tool's saved record into its own sheet.
func Export(in dashboard.Inputs) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetBusinessPlan); err != nil {
		return nil, errors.Wrap(err, "renaming sheet")
	}
	for _, name := range []string{SheetRentability, SheetPartnerships, SheetSubsidies, SheetTraining, SheetPedagogy, SheetQuestions} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, errors.Wrapf(err, "creating sheet %s", name)
		}
	}

	bp := in.BusinessPlan
	m := plan.ComputeMetrics(bp)
	rows := [][]interface{}{
		{"Projet", bp.ProjectName},
		{"Porteur", bp.PromoterName},
		{"Localisation", bp.Location},
		{"Capacité", int(bp.StudentCapacity)},
		{"Investissement initial", bp.InitialInvestment.Float()},
		{"Coûts de fonctionnement", bp.OperatingCosts.Float()},
		{"Revenus attendus", bp.ExpectedRevenue.Float()},
	}
	for i, y := range bp.FinancialProjections.Years() {
		rows = append(rows, []interface{}{fmt.Sprintf("Année %d", i+1), y.Revenue.Float(), y.Expenses.Float(), y.Profit()})
	}
	rows = append(rows,
		[]interface{}{"ROI (%)", m.ROI},
		[]interface{}{"Seuil de rentabilité", m.Breakeven.Label},
	)
	setRows(f, SheetBusinessPlan, rows)

	rent := in.Rentability
	rows = [][]interface{}{{"Scénario", "Revenus", "Dépenses", "Résultat", "Marge (%)", "Statut"}}
	for _, sm := range rentability.CompareScenarios(rent) {
		rows = append(rows, []interface{}{sm.Scenario.Label(), sm.Revenue, sm.Expenses, sm.Profit, sm.Margin, sm.Status})
	}
	setRows(f, SheetRentability, rows)

	rows = [][]interface{}{{"Entreprise", "Contact", "Email", "Secteur", "Type", "Statut", "Places", "Dernier contact"}}
	for _, p := range in.Partnerships {
		rows = append(rows, []interface{}{p.CompanyName, p.ContactPerson, p.Email, p.Sector, p.PartnershipType.Label(), p.Status.Label(), int(p.Students), p.LastContact})
	}
	setRows(f, SheetPartnerships, rows)

	rows = [][]interface{}{{"Projet", "Financeur", "Programme", "Montant", "Budget total", "Statut", "Soumis le"}}
	for _, a := range in.Subsidies {
		rows = append(rows, []interface{}{a.ProjectTitle, a.FundingBody, a.ProgramName, a.Amount.Float(), a.Budget.Total(), a.Status.Label(), a.SubmissionDate})
	}
	setRows(f, SheetSubsidies, rows)

	rows = [][]interface{}{{"Module", "Filière", "Heures", "Début", "Fin", "Formateur", "Élèves", "Certification", "Statut", "Compétences"}}
	for _, mod := range in.Training.Modules {
		rows = append(rows, []interface{}{mod.Title, mod.Sector, int(mod.Duration), mod.StartDate, mod.EndDate, mod.Instructor, int(mod.Students), mod.Certification, mod.Status.Label(), strings.Join(mod.Skills, ", ")})
	}
	setRows(f, SheetTraining, rows)

	report := pedagogy.BuildReport(in.Pedagogy)
	rows = [][]interface{}{{"Filière", "Élèves", "Heures", "Coûts directs", "Charges indirectes", "Coût total", "Coût / élève", "Coût / heure"}}
	for i, s := range report.Sectors {
		c := report.SectorCosts[i]
		rows = append(rows, []interface{}{s.Name, int(s.Students), s.Hours.Float(), c.DirectCosts, c.OverheadCosts, c.TotalCost, c.CostPerStudent, c.CostPerHour})
	}
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Frais administratifs", in.Pedagogy.AdminCosts.Float()},
		[]interface{}{"Coût moyen / élève", report.Global.AvgCostPerStudent},
	)
	setRows(f, SheetPedagogy, rows)

	rows = [][]interface{}{{"#", "Question", "Réponse"}}
	for i, q := range questionnaire.Questions() {
		answer := ""
		if i < len(in.Questionnaire.Responses) {
			answer = in.Questionnaire.Responses[i]
		}
		rows = append(rows, []interface{}{i + 1, q.Question, answer})
	}
	setRows(f, SheetQuestions, rows)

	f.SetActiveSheet(0)
	return f, nil
}

// WriteXLSX writes f to w and closes it.
func WriteXLSX(w io.Writer, f *excelize.File) error {
	defer f.Close()
	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "writing workbook")
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values ...interface{}) {
	cell, _ := excelize.CoordinatesToCellName(1, row)
	_ = f.SetSheetRow(sheet, cell, &values)
}

func setRows(f *excelize.File, sheet string, rows [][]interface{}) {
	for i, values := range rows {
		setRow(f, sheet, i+1, values...)
	}
}
