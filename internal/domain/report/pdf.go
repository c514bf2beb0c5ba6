package report

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// WriteDailyPDF renders a day's closing report as a one-page PDF.
func WriteDailyPDF(w io.Writer, r DailyReport, names map[string]string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Daily Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Date: %s", r.Date.Format("2006-01-02")))
	pdf.Ln(7)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Total Sales: %s", FormatYen(r.TotalSales))))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Customers: %d", r.CustomerCount))
	pdf.Ln(7)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Average Spend: %s", FormatYen(r.AverageSpend))))
	pdf.Ln(7)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Total Wages: %s", FormatYen(r.TotalWages))))
	pdf.Ln(7)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Profit: %s", FormatYen(r.Profit))))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	widths := []float64{40, 18, 30, 18, 18, 28, 30}
	headers := []string{"Cast", "Hours", "Sales", "Shimei", "Douhan", "Douhan Back", "Wage"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 11)
	for _, perf := range r.CastPerformance {
		name, ok := names[perf.CastID]
		if !ok {
			name = "unknown"
		}
		cells := []string{
			name,
			fmt.Sprintf("%.1f", perf.WorkHours),
			FormatYen(perf.Sales),
			fmt.Sprintf("%d", perf.ShimeiCount),
			fmt.Sprintf("%d", perf.DouhanCount),
			FormatYen(perf.DouhanBackIncome),
			FormatYen(perf.CalculatedWage),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 8, tr(c), "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
