package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"pct":   FormatPercentage,
	"kcal":  FormatCalories,
	"mult":  FormatMultiplier,
	"whole": wholeNumber,
}).Parse(htmlTemplateSource))

func wholeNumber(d decimal.Decimal) string {
	return d.Round(0).String()
}

func (h HTMLFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	r := report.Rounded()
	data := struct {
		*Report
		Assumptions []string
	}{r, r.Assumptions}
	if len(data.Assumptions) == 0 {
		data.Assumptions = DefaultAssumptions
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
