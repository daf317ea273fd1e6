// Package navigation lists the pages of the toolkit.
package navigation

import "github.com/Ok1nam/demo-edp-final/core"

type Page string

const (
	Home              Page = "accueil"
	Tools             Page = "outils"
	Questionnaire     Page = "arbre"
	Calculators       Page = "calculateurs"
	BusinessPlan      Page = "business-plan"
	Partnerships      Page = "partenariats"
	PedagogicalCosts  Page = "couts-pedagogiques"
	TrainingPlanner   Page = "planification"
	Subsidies         Page = "subventions"
	Statuts           Page = "statuts"
	Dashboard         Page = "tableau-bord"
	LocationAnalysis  Page = "cartographie"
	Guides            Page = "guides"
	Methodology       Page = "methodo"
	Annexes           Page = "annexes"
	Accountant        Page = "expert-comptable"
	TaxResult         Page = "resultat-fiscal"
	ChartOfAccounts   Page = "plan-comptable"
	VATCoefficient    Page = "tva-coefficient"
	Contact           Page = "edp"
	CreationBudget    Page = "budget-creation"
	LabelCriteria     Page = "criteres-label"
	SubordinatedLoan  Page = "pret-subordonne"
	ApprenticeshipTax Page = "habilitation-taxe"
	SalePrice         Page = "prix-vente"
	AdaptedReport     Page = "rapport-adapte"
	SubsidyTracking   Page = "suivi-subventions"
	LoanTracking      Page = "suivi-prets"
	OrgChart          Page = "organigramme"
	Interviews        Page = "entretiens"
	VATGuide          Page = "guide-tva"
	MarketStudy       Page = "etude-marche"
)

// Info describes a page as served to clients.
type Info struct {
	ID               Page   `json:"id"`
	Title            string `json:"title"`
	UnderDevelopment bool   `json:"underDevelopment"`
}

// Pages is the navigation order.
var Pages = []Page{
	Home, Tools, Questionnaire, Calculators, CreationBudget, BusinessPlan, Partnerships,
	PedagogicalCosts, TrainingPlanner, Subsidies, Statuts, Dashboard, LocationAnalysis,
	Guides, Methodology, Annexes, Accountant, TaxResult, ChartOfAccounts, VATCoefficient,
	Contact, LabelCriteria, SubordinatedLoan, ApprenticeshipTax, SalePrice, AdaptedReport,
	SubsidyTracking, LoanTracking, OrgChart, Interviews, VATGuide, MarketStudy,
}

// ParsePage returns the page matching id, Home when it is unknown.
func ParsePage(id string) Page {
	p := Page(core.CleanString(id, true))
	if p.valid() {
		return p
	}
	return Home
}

func (p Page) valid() bool {
	switch p {
	case Home, Tools, Questionnaire, Calculators, BusinessPlan, Partnerships, PedagogicalCosts,
		TrainingPlanner, Subsidies, Statuts, Dashboard, LocationAnalysis, Guides, Methodology,
		Annexes, Accountant, TaxResult, ChartOfAccounts, VATCoefficient, Contact, CreationBudget,
		LabelCriteria, SubordinatedLoan, ApprenticeshipTax, SalePrice, AdaptedReport,
		SubsidyTracking, LoanTracking, OrgChart, Interviews, VATGuide, MarketStudy:
		return true
	}
	return false
}

// Canonical resolves aliases: several ids render the same screen.
func (p Page) Canonical() Page {
	switch p {
	case Accountant:
		return TaxResult
	case CreationBudget:
		return Calculators
	default:
		return p
	}
}

func (p Page) UnderDevelopment() bool {
	switch p {
	case LabelCriteria, SubordinatedLoan, ApprenticeshipTax, SalePrice, AdaptedReport,
		SubsidyTracking, LoanTracking, OrgChart, Interviews, VATGuide, MarketStudy:
		return true
	}
	return false
}

func (p Page) Title() string {
	switch p {
	case Home:
		return "Accueil"
	case Tools:
		return "Outils"
	case Questionnaire:
		return "Arbre de décision"
	case Calculators, CreationBudget:
		return "Calculateurs"
	case BusinessPlan:
		return "Business plan"
	case Partnerships:
		return "Suivi des partenariats"
	case PedagogicalCosts:
		return "Coûts pédagogiques"
	case TrainingPlanner:
		return "Planification des formations"
	case Subsidies:
		return "Demandes de subventions"
	case Statuts:
		return "Générateur de statuts"
	case Dashboard:
		return "Tableau de bord"
	case LocationAnalysis:
		return "Cartographie des implantations"
	case Guides:
		return "Guides"
	case Methodology:
		return "Méthodologie"
	case Annexes:
		return "Annexes"
	case Accountant, TaxResult:
		return "Résultat fiscal"
	case ChartOfAccounts:
		return "Plan comptable"
	case VATCoefficient:
		return "Coefficient de déduction TVA"
	case Contact:
		return "Contact"
	case LabelCriteria:
		return "Critères pour obtenir le label"
	case SubordinatedLoan:
		return "Contrat de prêt subordonné"
	case ApprenticeshipTax:
		return "Habilitation taxe apprentissage"
	case SalePrice:
		return "Prix de vente des produits"
	case AdaptedReport:
		return "Modèle de rapport adapté"
	case SubsidyTracking:
		return "Suivi des subventions"
	case LoanTracking:
		return "Suivi des prêts"
	case OrgChart:
		return "Exemple d'organigramme"
	case Interviews:
		return "Entretiens porteurs de projet"
	case VATGuide:
		return "Guide d'application de la TVA"
	case MarketStudy:
		return "Étude de marché"
	}
	return "Page en cours de développement"
}

func (p Page) Info() Info {
	return Info{ID: p, Title: p.Title(), UnderDevelopment: p.UnderDevelopment()}
}

// All returns the info of every page, in navigation order.
func All() []Info {
	infos := make([]Info, 0, len(Pages))
	for _, p := range Pages {
		infos = append(infos, p.Info())
	}
	return infos
}
