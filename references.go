package abnt

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/beatrizcardc/ABNT-formatter/internal/dateutil"
)

// AccessDate formats a time for the AccessDate field of WebsiteReference:
// "30 ago. 2026".
func AccessDate(t time.Time) string {
	return dateutil.FormatAccessDate(t)
}

var surnameCaser = cases.Upper(language.BrazilianPortuguese)

// initialsDot normalizes initials to end in exactly one period, whether or
// not the caller already wrote one ("J. A." and "J. A" both come out as
// "J. A.").
func initialsDot(initials string) string {
	return strings.TrimSuffix(initials, ".") + "."
}

// BookReference builds an NBR 6023 book entry:
// SOBRENOME, Iniciais. Título. ed. Local: Editora, ano.
type BookReference struct {
	Surname   string
	Initials  string
	Title     string
	Edition   string // e.g. "2. ed.", empty for first editions
	City      string
	Publisher string
	Year      string
}

func (r BookReference) String() string {
	edition := ""
	if r.Edition != "" {
		edition = fmt.Sprintf(" %s.", r.Edition)
	}
	return fmt.Sprintf("%s, %s %s.%s %s: %s, %s.",
		surnameCaser.String(r.Surname), initialsDot(r.Initials), r.Title, edition, r.City, r.Publisher, r.Year)
}

// ArticleReference builds an NBR 6023 journal article entry:
// SOBRENOME, Iniciais. Título. Periódico, v. 1 (2), p. 10-20, ano.
type ArticleReference struct {
	Surname  string
	Initials string
	Title    string
	Journal  string
	Volume   string
	Number   string // empty when the journal has no issue numbering
	Pages    string
	Year     string
}

func (r ArticleReference) String() string {
	volume := fmt.Sprintf("v. %s", r.Volume)
	if r.Number != "" {
		volume += fmt.Sprintf(" (%s)", r.Number)
	}
	return fmt.Sprintf("%s, %s %s. %s, %s, p. %s, %s.",
		surnameCaser.String(r.Surname), initialsDot(r.Initials), r.Title, r.Journal, volume, r.Pages, r.Year)
}

// WebsiteReference builds an NBR 6023 online resource entry:
// SOBRENOME, Iniciais. Título. Site. Disponível em: <url>. Acesso em: data.
// Author and year are optional.
type WebsiteReference struct {
	Surname    string
	Initials   string
	Title      string
	Site       string
	URL        string
	AccessDate string
	Year       string
}

func (r WebsiteReference) String() string {
	author := ""
	if r.Surname != "" && r.Initials != "" {
		author = fmt.Sprintf("%s, %s ", surnameCaser.String(r.Surname), initialsDot(r.Initials))
	}
	year := ""
	if r.Year != "" {
		year = fmt.Sprintf(" %s.", r.Year)
	}
	return fmt.Sprintf("%s%s. %s. Disponível em: <%s>. Acesso em: %s.%s",
		author, r.Title, r.Site, r.URL, r.AccessDate, year)
}
