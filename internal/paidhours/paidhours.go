/*
Package paidhours - Paid-Hours Calculator

==============================================================================
FILE: internal/paidhours/paidhours.go
==============================================================================

DESCRIPTION:
    Component 2 of the scheduling pipeline: for each
    employee, computes credited ("paid-off") hours and the set of credited
    days from closed holidays, short-paid holidays, and vacation days.

USER PERSPECTIVE:
    - Feeds both the hour-deviation objective term (target_hours - paid_hours)
      and the output record's paid_off field

DEVELOPER GUIDELINES:
    OK to modify: nothing routine; this is a small, closed calculation
    CAUTION: credited-day union priority order (closed > short_paid >
        vacation) matters - each day contributes its credit exactly once
        regardless of how many of those sets it falls into
    DO NOT modify: the per-contract credit thresholds (1.0 / 0.75) - the
        boundary case pins contract_type = 0.3 to credit 4.0

==============================================================================
*/
package paidhours

import (
	"shiftsched/internal/models"
	"shiftsched/internal/models/enums"
	"shiftsched/internal/timeutil"
)

// Credit returns the per-day paid-off credit for an employee with contract
// fraction c.
func Credit(contractFraction float64) float64 {
	switch {
	case contractFraction >= 1.0:
		return 8.0
	case contractFraction >= 0.75:
		return 6.0
	default:
		return 4.0
	}
}

// Calculate computes (paid_hours, credited_days, credit) for one employee
// over the normalized month.
func Calculate(input *models.NormalizedInput, emp models.NormalizedEmployee) (paidHours float64, creditedDays []int, credit float64) {
	credit = Credit(emp.ContractType)

	var closed, shortPaid []int
	for day, info := range input.Days {
		switch info.Class {
		case enums.DayClosed:
			closed = append(closed, day)
		case enums.DayShortPaid:
			shortPaid = append(shortPaid, day)
		}
	}

	creditedDays = timeutil.UnionDays(closed, shortPaid, emp.VacationDays)
	paidHours = float64(len(creditedDays)) * credit
	return paidHours, creditedDays, credit
}

// CalculateAll runs Calculate for every normalized employee, keyed by name.
func CalculateAll(input *models.NormalizedInput) map[string]float64 {
	result := make(map[string]float64, len(input.Employees))
	for _, emp := range input.Employees {
		paidHours, _, _ := Calculate(input, emp)
		result[emp.Name] = paidHours
	}
	return result
}
