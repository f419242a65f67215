/*
Package export - Schedule Export (XLSX/PDF)

==============================================================================
FILE: internal/export/pdf.go
==============================================================================

DESCRIPTION:
    Renders a ScheduleResponse into a one-page-summary PDF report,
    in the same shape a financial report service would use:
    landscape A4, colored header band, bordered
    summary table built with CellFormat.

USER PERSPECTIVE:
    - A quick printable per-employee summary: worked/paid-off/total vs.
      target, plus the solver outcome and any understaffed days

==============================================================================
*/
package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"shiftsched/internal/models"
)

const (
	headerR, headerG, headerB = 30, 58, 138
)

// ScheduleToPDF renders resp into a landscape-A4 summary report.
func ScheduleToPDF(resp *models.ScheduleResponse, year, month int) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFillColor(headerR, headerG, headerB)
	pdf.Rect(0, 0, 297, 25, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 16)
	pdf.SetXY(10, 6)
	pdf.Cell(200, 10, "MONTHLY SHIFT SCHEDULE")
	pdf.SetFont("Arial", "", 10)
	pdf.SetXY(10, 16)
	pdf.Cell(200, 6, fmt.Sprintf("%04d-%02d  |  status: %s  |  objective: %.1f", year, month, resp.Status, resp.ObjectiveValue))

	pdf.SetTextColor(0, 0, 0)

	y := 32.0
	pdf.SetXY(10, y)
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(60, 7, "Employee", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 7, "Worked", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Paid Off", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Total", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Target", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Diff", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Opens", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Closes", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, stat := range resp.Employees {
		pdf.SetXY(10, pdf.GetY())
		pdf.CellFormat(60, 6, stat.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.1f", stat.Worked), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.1f", stat.PaidOff), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.1f", stat.Total), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.1f", stat.Target), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.1f", stat.Diff), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", stat.Opens), "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", stat.Closes), "1", 1, "C", false, 0, "")
	}

	if len(resp.Understaffed) > 0 {
		pdf.Ln(4)
		pdf.SetXY(10, pdf.GetY())
		pdf.SetFont("Arial", "B", 10)
		pdf.Cell(100, 7, "UNDERSTAFFED DAYS")
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 9)
		for _, shortfall := range resp.Understaffed {
			pdf.SetXY(10, pdf.GetY())
			pdf.Cell(200, 6, fmt.Sprintf("Day %d: needed %d, available %d, deficit %d",
				shortfall.Day, shortfall.Needed, shortfall.Available, shortfall.Deficit))
			pdf.Ln(6)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("export: failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
