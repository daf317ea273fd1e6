// Package statuts drafts the "loi 1901" statutes of the association carrying a school.
package statuts

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Ok1nam/demo-edp-final/core"
)

// DefaultDuration is the association's lifetime in years when none is given.
const DefaultDuration = "99"

// Placeholders left in the text for missing fields.
const (
	PlaceholderName      = "[NOM DE L'ASSOCIATION]"
	PlaceholderObject    = "[OBJET DE L'ASSOCIATION]"
	PlaceholderOffice    = "[ADRESSE DU SIÈGE SOCIAL]"
	PlaceholderPresident = "[NOM DU PRÉSIDENT]"
	PlaceholderSecretary = "[NOM DU SECRÉTAIRE]"
	PlaceholderCity      = "[VILLE]"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

type (
	Input struct {
		AssociationName   string `json:"associationName" validate:"required,notblank"`
		PresidentName     string `json:"presidentName" validate:"required,notblank"`
		SecretaireName    string `json:"secretaireName" validate:"required,notblank"`
		SiegeSocial       string `json:"siegeSocial" validate:"required,notblank"`
		Objet             string `json:"objet"`
		Duree             string `json:"duree"`
		MontantCotisation string `json:"montantCotisation"`
	}

	Article struct {
		Heading string `json:"heading"`
		Body    string `json:"body"`
	}

	// Document is the statutes split into the parts every renderer needs.
	Document struct {
		Title     string    `json:"title"`
		Name      string    `json:"name"`
		Articles  []Article `json:"articles"`
		City      string    `json:"city"`
		President string    `json:"president"`
		Secretary string    `json:"secretary"`
		Filename  string    `json:"filename"`
	}
)

func (in *Input) Validate(validate *validator.Validate) error {
	in.AssociationName = core.CleanString(in.AssociationName)
	in.PresidentName = core.CleanString(in.PresidentName)
	in.SecretaireName = core.CleanString(in.SecretaireName)
	in.SiegeSocial = core.CleanString(in.SiegeSocial)
	in.Objet = core.CleanString(in.Objet)
	in.Duree = core.CleanString(in.Duree)
	in.MontantCotisation = core.CleanString(in.MontantCotisation)
	return validate.Struct(in)
}

// Filename is the download name of the statutes of the named association.
func Filename(associationName string) string {
	return "Statuts_" + unsafeFilenameChars.ReplaceAllString(associationName, "_") + ".txt"
}

// SigningCity is the first comma-separated part of the registered office.
func SigningCity(siegeSocial string) string {
	if city := strings.TrimSpace(strings.Split(siegeSocial, ",")[0]); city != "" {
		return city
	}
	return PlaceholderCity
}

func or(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// Generate drafts the statutes; missing optional fields become placeholders.
func Generate(in Input) Document {
	name := or(in.AssociationName, PlaceholderName)
	president := or(in.PresidentName, PlaceholderPresident)
	secretary := or(in.SecretaireName, PlaceholderSecretary)

	fee := "Le montant des cotisations est fixé annuellement par l'assemblée générale."
	if in.MontantCotisation != "" {
		fee = fmt.Sprintf("La cotisation annuelle est fixée à %s euros.", in.MontantCotisation)
	}

	articles := []Article{
		{"DÉNOMINATION", "Il est fondé entre les adhérents aux présents statuts une association régie par la loi du 1er juillet 1901 et le décret du 16 août 1901, ayant pour titre :\n" + name},
		{"OBJET", "Cette association a pour objet :\n" + or(in.Objet, PlaceholderObject)},
		{"SIÈGE SOCIAL", "Le siège social est fixé à :\n" + or(in.SiegeSocial, PlaceholderOffice) + "\n\nIl pourra être transféré par simple décision du conseil d'administration."},
		{"DURÉE", fmt.Sprintf("La durée de l'association est de %s années à compter de sa déclaration en préfecture.", or(in.Duree, DefaultDuration))},
		{"COMPOSITION", "L'association se compose de :\n- Membres d'honneur\n- Membres actifs ou adhérents\n- Membres bienfaiteurs"},
		{"ADMISSION", "Pour faire partie de l'association, il faut être agréé par le bureau qui statue lors de chacune de ses réunions sur les demandes d'admission présentées."},
		{"MEMBRES - COTISATIONS", fee},
		{"RADIATIONS", "La qualité de membre se perd par :\n- La démission\n- Le décès\n- La radiation prononcée par le conseil d'administration pour non-paiement des cotisations ou pour motif grave"},
		{"RESSOURCES", "Les ressources de l'association comprennent :\n- Le montant des cotisations\n- Les subventions qui pourraient lui être accordées\n- Les dons et legs\n- Toutes autres ressources autorisées par la loi"},
		{"CONSEIL D'ADMINISTRATION", "L'association est dirigée par un conseil d'administration de 3 membres minimum élus pour 3 années par l'assemblée générale."},
		{"BUREAU", "Le conseil d'administration élit parmi ses membres un bureau composé de :\n- Un(e) président(e) : " + president + "\n- Un(e) secrétaire : " + secretary + "\n- Un(e) trésorier(ère)"},
		{"RÉUNIONS DU CONSEIL D'ADMINISTRATION", "Le conseil d'administration se réunit au moins une fois tous les six mois, sur convocation du président, ou sur la demande du quart de ses membres."},
		{"ASSEMBLÉE GÉNÉRALE ORDINAIRE", "L'assemblée générale ordinaire comprend tous les membres de l'association à jour de leurs cotisations.\nElle se réunit chaque année au mois de [MOIS]."},
		{"ASSEMBLÉE GÉNÉRALE EXTRAORDINAIRE", "Si besoin est, ou sur la demande de la moitié plus un des membres inscrits, le président peut convoquer une assemblée générale extraordinaire."},
		{"RÈGLEMENT INTÉRIEUR", "Un règlement intérieur peut être établi par le conseil d'administration, qui le fait alors approuver par l'assemblée générale."},
		{"DISSOLUTION", "En cas de dissolution prononcée selon les modalités prévues à l'article 14, un ou plusieurs liquidateurs sont nommés, et l'actif net, s'il y a lieu, est dévolu à un organisme ayant un but non lucratif conformément aux décisions de l'assemblée générale extraordinaire."},
	}
	for i := range articles {
		articles[i].Heading = fmt.Sprintf("ARTICLE %d - %s", i+1, articles[i].Heading)
	}

	return Document{
		Title:     "STATUTS DE L'ASSOCIATION",
		Name:      name,
		Articles:  articles,
		City:      SigningCity(in.SiegeSocial),
		President: president,
		Secretary: secretary,
		Filename:  Filename(in.AssociationName),
	}
}

// Signature is the closing line, dated at signing.
func (d Document) Signature() string {
	return fmt.Sprintf("Fait à %s, le [DATE]", d.City)
}

// Text renders the statutes as plain text.
func (d Document) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", d.Title, d.Name)
	for _, a := range d.Articles {
		fmt.Fprintf(&b, "\n%s\n%s\n", a.Heading, a.Body)
	}
	fmt.Fprintf(&b, "\n%s\n\n", d.Signature())
	fmt.Fprintf(&b, "%-39s%s\n", "Le Président,", "Le Secrétaire,")
	fmt.Fprintf(&b, "%-39s%s\n\n", d.President, d.Secretary)
	fmt.Fprintf(&b, "%-38s%s\n", "Signature :", "Signature :")
	return b.String()
}

// Markdown renders the statutes for the HTML preview.
func (d Document) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n**%s**\n", d.Title, d.Name)
	for _, a := range d.Articles {
		fmt.Fprintf(&b, "\n## %s\n\n%s\n", a.Heading, markdownBody(a.Body))
	}
	fmt.Fprintf(&b, "\n---\n\n%s\n\n", d.Signature())
	fmt.Fprintf(&b, "| Le Président | Le Secrétaire |\n|---|---|\n| %s | %s |\n", d.President, d.Secretary)
	return b.String()
}

// markdownBody keeps the line breaks of an article and turns "- " lines into a list.
func markdownBody(body string) string {
	lines := strings.Split(body, "\n")
	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			item, prevItem := strings.HasPrefix(l, "- "), strings.HasPrefix(lines[i-1], "- ")
			switch {
			case item && !prevItem:
				b.WriteString("\n\n")
			case item || l == "" || lines[i-1] == "":
				b.WriteString("\n")
			default:
				b.WriteString("  \n")
			}
		}
		b.WriteString(l)
	}
	return b.String()
}
