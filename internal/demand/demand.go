/*
Package demand - Staffing Demand Estimator

==============================================================================
FILE: internal/demand/demand.go
==============================================================================

DESCRIPTION:
    Component 3 of the scheduling pipeline: computes
    required staff per day from the total hours fund, month length, weekend
    policy, special-day overrides, and heavy-day bumps; caps demand by
    available headcount and records shortfalls.

USER PERSPECTIVE:
    - Capacity shortfalls are not errors: they are clamped
      in place and surfaced in the output record's understaffed[] list

DEVELOPER GUIDELINES:
    OK to modify: add new demand-shaping rules
    CAUTION: estimated average shift length (9.5h) and the busy-weekend
        multiplier (1.2) / off-day floor (0.9, min 2) are fixed policy constants
    DO NOT modify: override precedence - heavy-day addition happens before
        special-day staff override, which replaces (not adds to) req

==============================================================================
*/
package demand

import (
	"math"

	"shiftsched/internal/models"
	"shiftsched/internal/timeutil"
)

// estimatedAverageShiftLength is the assumed average shift length in hours.
const estimatedAverageShiftLength = 9.5

// Day is the estimated demand for a single day of the month.
type Day struct {
	Day       int
	Required  int // clamped required staff (S_d)
	Available int // employees not unavailable/on vacation on this day
}

// Result is the per-day demand estimate plus any recorded shortfalls.
type Result struct {
	Days       map[int]Day
	Shortfalls []models.Shortfall
}

// Estimate computes per-day required staff and shortfalls.
func Estimate(input *models.NormalizedInput, busyWeekends bool) *Result {
	var totalTargetHours float64
	for _, e := range input.Employees {
		totalTargetHours += e.TargetHours
	}

	avg := 0.0
	if input.DaysInMonth > 0 {
		avg = totalTargetHours / (estimatedAverageShiftLength * float64(input.DaysInMonth))
	}

	result := &Result{Days: make(map[int]Day, input.DaysInMonth)}

	for day := 1; day <= input.DaysInMonth; day++ {
		info, ok := input.Days[day]
		if !ok || !info.Class.IsOpen() {
			continue
		}

		var req int
		switch {
		case !busyWeekends:
			req = roundHalfAwayFromZero(avg)
		case timeutil.IsBusyWeekendDay(info.Weekday):
			req = int(math.Ceil(avg * 1.2))
		default:
			req = int(math.Max(2, math.Floor(avg*0.9)))
		}

		req += info.ExtraStaff

		if info.StaffOverride != nil {
			req = *info.StaffOverride
		}

		available := 0
		for _, e := range input.Employees {
			if !e.IsAbsent(day) {
				available++
			}
		}

		if req > available {
			result.Shortfalls = append(result.Shortfalls, models.Shortfall{
				Day:       day,
				Needed:    req,
				Available: available,
				Deficit:   req - available,
			})
			req = available
		}

		result.Days[day] = Day{Day: day, Required: req, Available: available}
	}

	return result
}

func roundHalfAwayFromZero(v float64) int {
	if v >= 0 {
		return int(math.Floor(v + 0.5))
	}
	return int(math.Ceil(v - 0.5))
}
