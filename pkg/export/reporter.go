package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/myluxcars/fleetcast/pkg/models/domain"
)

// Reporter renders a projection to the console as fixed-width tables.
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a console reporter. A nil writer defaults to stdout.
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (r *Reporter) Handle(projection *domain.Projection) error {
	funcMap := template.FuncMap{
		"usd": func(v float64) string {
			return fmt.Sprintf("%14.2f", v)
		},
	}

	tmpl := `
P&L (per year)
{{range .PnL}}
Year {{.Year}}
  Gross Revenue  {{usd .GrossRevenue}}   Upsell      {{usd .Upsell}}
  Deductions     {{usd .Deductions}}   Net Revenue {{usd .NetRevenue}}
  Fleet Cost     {{usd .FleetCost}}   Gross Profit{{usd .GrossProfit}}
  EBITDA         {{usd .EBITDA}}   Interest    {{usd .Interest}}
  EBT            {{usd .EBT}}   Tax         {{usd .Tax}}
  Net Income     {{usd .NetIncome}}
{{end}}
Cash Flow (per year)
{{range .Cash}}
Year {{.Year}}
  Net Income     {{usd .NetIncome}}   Depreciation{{usd .Depreciation}}
  Principal      {{usd .Principal}}   Fleet Sale  {{usd .FleetSale}}
  Net Cash       {{usd .NetCash}}
{{end}}
`

	t, err := template.New("projection").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(r.writer, projection)
}
