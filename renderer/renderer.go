// Package renderer turns reports into markdown.
//
// Each report is first converted into a view struct holding display ready
// values, then rendered with text/template partials embedded from templates/.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// RenderFilers renders the list of filers.
func RenderFilers(f *Filers) string {
	return renderTemplate("filers", "filers.md", nil, f)
}

// RenderPurchases renders the disclosed purchases of a filer.
func RenderPurchases(p *Purchases) string {
	return renderTemplate("purchases", "purchases.md", nil, p)
}

// RenderReport renders a reconciliation report.
func RenderReport(r *Report) string {
	partials := map[string]string{
		"report_title":    "report_title.md",
		"report_purchase": "report_purchase.md",
	}
	// A single selected purchase needs no totals.
	if len(r.Purchases) > 1 {
		partials["report_totals"] = "report_totals.md"
	} else {
		partials["report_totals"] = ""
	}
	return renderTemplate("report", "report.md", partials, r)
}

// RenderPrices renders the price history summary of a ticker.
func RenderPrices(p *Prices) string {
	return renderTemplate("prices", "prices.md", nil, p)
}

// renderTemplate renders mainFile after parsing every partial under its alias.
//
// Errors are rendered in place of the report.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, "templates/"+file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
