// Package renderer renders computation results into the human-readable run
// report. Templates live in the embedded templates/ folder so the report
// layout can evolve without touching code.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"realincome"
)

//go:embed templates/*.md
var templates embed.FS

// Mode labels for a Report.
const (
	ModeRatio = "SDMX"
	ModeChain = "DataMapper"
)

// Report is the data behind a rendered run, whatever the mode.
type Report struct {
	Mode      string // ModeRatio or ModeChain
	Country   string
	Source    string
	Indicator string
	Start     string // resolved start period label
	Latest    string // latest available period label

	Nominal realincome.Money
	Real    realincome.Money
	Loss    realincome.Money
	LossPct realincome.Percent

	// ratio mode only
	IndexStart  float64
	IndexLatest float64

	// chain mode only
	Rates []realincome.YearlyRate

	Quip string
}

// Factor returns the inflation factor between the two index levels.
func (r *Report) Factor() float64 { return r.IndexLatest / r.IndexStart }

// Render returns the full report as text.
func Render(r *Report) string {
	partials := map[string]string{
		"report_header":  "report_header.md",
		"report_amounts": "report_amounts.md",
	}
	switch r.Mode {
	case ModeChain:
		partials["report_detail"] = "report_chain.md"
	default:
		partials["report_detail"] = "report_ratio.md"
	}
	return renderTemplate("report", "report.md", partials, r)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
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
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
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
