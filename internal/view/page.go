package view

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/guttosm/savings-service/internal/domain/dto"
	"github.com/guttosm/savings-service/internal/service"
)

// PageTemplate is the name gin renders the calculator under.
const PageTemplate = "calculator.html"

// AdvisoryText is shown while fewer than the minimum number of tools are active.
const AdvisoryText = "Select at least 3 tools for an accurate estimate."

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var printer = message.NewPrinter(language.English)

// Page is the data the calculator template renders.
type Page struct {
	Session  dto.SessionView
	Marks    []service.SliderMark
	Min      int
	Max      int
	Savings  string
	Advisory string
	// Rail is the digit column every strip scrolls over.
	Rail []int
}

// NewPage builds the template data for a session view.
func NewPage(v dto.SessionView) Page {
	p := Page{
		Session: v,
		Marks:   service.SliderMarks,
		Min:     service.MinHeadcount,
		Max:     service.MaxHeadcount,
		Savings: FormatAmount(v.AnnualSavings),
	}
	if v.BelowFloor {
		p.Advisory = AdvisoryText
	}
	for i := 0; i <= 9; i++ {
		p.Rail = append(p.Rail, i)
	}
	return p
}

// FormatAmount renders a whole currency amount with thousands separators.
func FormatAmount(d decimal.Decimal) string {
	return printer.Sprintf("%d", d.IntPart())
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"markPercent": func(value, min, max int) string {
			if max <= min {
				return "0%"
			}
			return fmt.Sprintf("%.2f%%", float64(value-min)*100/float64(max-min))
		},
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	return tmpl, nil
}

// StaticFS serves the embedded stylesheet and tool icons.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
