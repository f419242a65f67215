/*
Package export - Schedule Export (XLSX/PDF)

==============================================================================
FILE: internal/export/excel.go
==============================================================================

DESCRIPTION:
    Renders a ScheduleResponse into a downloadable Excel workbook,
    one sheet per day plus a summary sheet of per-employee totals.

USER PERSPECTIVE:
    - One row per employee per day worked; a summary sheet totals hours
      against target for every employee

DEVELOPER GUIDELINES:
    OK to modify: column order, additional summary columns
    CAUTION: sheet names must stay under Excel's 31-character limit

==============================================================================
*/
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"shiftsched/internal/models"
)

// ScheduleToXLSX renders resp into an .xlsx workbook: one "Day N" sheet per
// scheduled day plus a "Summary" sheet of per-employee totals.
func ScheduleToXLSX(resp *models.ScheduleResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeDaySheets(f, resp); err != nil {
		return nil, err
	}
	if err := writeSummarySheet(f, resp); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx >= 0 {
		f.DeleteSheet("Sheet1")
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export: failed to write workbook to buffer: %w", err)
	}
	return buffer.Bytes(), nil
}

func writeDaySheets(f *excelize.File, resp *models.ScheduleResponse) error {
	headers := []string{"Employee", "Start", "End", "Type", "Duration"}

	days := make([]int, 0, len(resp.Schedule))
	for day := range resp.Schedule {
		days = append(days, day)
	}
	sortInts(days)

	for _, day := range days {
		sheet := fmt.Sprintf("Day %d", day)
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("export: failed to create sheet %s: %w", sheet, err)
		}
		for i, header := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, header)
		}

		row := 2
		for name, rec := range resp.Schedule[day] {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), name)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), rec.Start)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), rec.End)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), rec.Type)
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), fmt.Sprintf("%.1f", rec.Duration))
			row++
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, resp *models.ScheduleResponse) error {
	sheet := "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("export: failed to create summary sheet: %w", err)
	}

	headers := []string{"Employee", "Worked", "PaidOff", "Total", "Target", "Diff", "Opens", "Closes", "Middle"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for i, stat := range resp.Employees {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), stat.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("%.1f", stat.Worked))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), fmt.Sprintf("%.1f", stat.PaidOff))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), fmt.Sprintf("%.1f", stat.Total))
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), fmt.Sprintf("%.1f", stat.Target))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), fmt.Sprintf("%.1f", stat.Diff))
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), stat.Opens)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), stat.Closes)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), stat.Middle)
	}
	return nil
}

func sortInts(v []int) {
	for i := 1; i < len(v); i++ {
		for j := i; j > 0 && v[j-1] > v[j]; j-- {
			v[j-1], v[j] = v[j], v[j-1]
		}
	}
}
