// Package report renders a session summary as markdown, optionally styled
// for the terminal. The markdown string is also the export format.
package report

import (
	"sort"
	"strings"
	"text/template"

	"github.com/charmbracelet/glamour"

	"github.com/denikks/huntbook/internal/calc"
	"github.com/denikks/huntbook/internal/model"
	"github.com/denikks/huntbook/internal/money"
)

// Row is one rendered entry line.
type Row struct {
	Date     string
	Label    string
	Category string
	Amount   string
}

// CategoryRow is one rendered per-category subtotal.
type CategoryRow struct {
	Category string
	Subtotal string
}

// View is everything the report template needs, pre-formatted.
type View struct {
	Session    string
	Entries    []Row
	Categories []CategoryRow
	Total      string
	EMFLevel   int
}

const reportTemplate = `# Session report: {{.Session}}

{{if .Entries}}| Date | Label | Category | Amount |
| --- | --- | --- | ---: |
{{range .Entries}}| {{.Date}} | {{.Label}} | {{.Category}} | {{.Amount}} |
{{end}}
## By category

| Category | Subtotal |
| --- | ---: |
{{range .Categories}}| {{.Category}} | {{.Subtotal}} |
{{end}}
{{else}}No entries recorded.
{{end}}
**Total: {{.Total}}** (EMF {{.EMFLevel}})
`

var tmpl = template.Must(template.New("report").Parse(reportTemplate))

// Build assembles the View for a session in the given display currency.
func Build(s model.Session, currency string, thresholds calc.EMFThresholds) View {
	agg := calc.Aggregates(s)

	v := View{
		Session:  s.Name,
		Total:    money.Format(agg.Total, currency),
		EMFLevel: calc.EMFLevel(agg.Total, thresholds),
	}

	for _, e := range s.Entries {
		v.Entries = append(v.Entries, Row{
			Date:     e.Timestamp.Format("2006-01-02"),
			Label:    e.Label,
			Category: string(e.Category),
			Amount:   money.Format(e.Amount, currency),
		})
	}

	cats := make([]string, 0, len(agg.ByCategory))
	for c := range agg.ByCategory {
		cats = append(cats, string(c))
	}
	sort.Strings(cats)
	for _, c := range cats {
		v.Categories = append(v.Categories, CategoryRow{
			Category: c,
			Subtotal: money.Format(agg.ByCategory[model.Category(c)], currency),
		})
	}

	return v
}

// Markdown renders the View to a markdown string.
func Markdown(v View) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Terminal renders markdown styled for the terminal.
func Terminal(md string) (string, error) {
	return glamour.Render(md, "auto")
}
