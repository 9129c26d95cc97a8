package xlsx

import (
	"bytes"
	"sort"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/JoakoBallesteros/workforce-staffing/internal/staffing"
)

// summaryRow is one date's aggregated coverage across every interval.
type summaryRow struct {
	date     time.Time
	required int
	count    int
}

// WriteSummaryPDF renders a landscape coverage-summary table: one row per
// calendar date, aggregating every report's simulated assignment rows into
// a required/covered/coverage-percentage triple.
func WriteSummaryPDF(title string, reports []Report) ([]byte, error) {
	if len(reports) == 0 {
		return nil, &staffing.ValidationError{Field: "reports", Msg: "no services to summarize"}
	}

	byDate := make(map[time.Time]*summaryRow)
	for _, r := range reports {
		for _, row := range r.Simulated {
			day := row.Date
			s, ok := byDate[day]
			if !ok {
				s = &summaryRow{date: day}
				byDate[day] = s
			}
			s.required += row.Required
			s.count += row.Count
		}
	}

	days := make([]time.Time, 0, len(byDate))
	for d := range byDate {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(5)

	headers := []string{"Fecha", "Requerido", "Cubierto", "Cobertura %"}
	colWidth := 277.0 / float64(len(headers))

	pdf.SetFont("Helvetica", "B", 10)
	for _, h := range headers {
		pdf.CellFormat(colWidth, 8, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	hundred := decimal.NewFromInt(100)
	for _, d := range days {
		s := byDate[d]
		coverage := decimal.Zero
		if s.required > 0 {
			coverage = decimal.NewFromInt(int64(s.count)).
				Div(decimal.NewFromInt(int64(s.required))).
				Mul(hundred)
		}

		pdf.CellFormat(colWidth, 7, d.Format("2006-01-02"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidth, 7, decimal.NewFromInt(int64(s.required)).String(), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidth, 7, decimal.NewFromInt(int64(s.count)).String(), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colWidth, 7, coverage.StringFixed(1)+"%", "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &staffing.ResourceError{Op: "render summary pdf", Err: err}
	}
	return buf.Bytes(), nil
}
