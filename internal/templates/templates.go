/*
Package templates - Shift-Template Generator

==============================================================================
FILE: internal/templates/templates.go
==============================================================================

DESCRIPTION:
    Component 4 of the scheduling pipeline: produces
    per-day candidate shift templates (OPEN/CLOSE/FLEX/FIXED) with costs
    reflecting duration and time-of-day preferences.

USER PERSPECTIVE:
    - The Model Builder instantiates one indicator variable per
      (employee, day, template) triple; this package is the sole source of
      the "template" axis

DEVELOPER GUIDELINES:
    OK to modify: Cost constants
    CAUTION: OPEN/CLOSE durations step by 0.5h (half-hour granularity);
        FLEX start and duration iterate whole hours only
    DO NOT modify: FLEX's strict "< close_time" end constraint, or OPEN's
        start = open_time / CLOSE's end = close_time pinning - the
        schedule invariants and their tests depend on these exactly

==============================================================================
*/
package templates

import (
	"math"

	"shiftsched/internal/models"
	"shiftsched/internal/models/enums"
)

const (
	fixedDayThreshold = 6.0
	minOpenDuration   = 6.0
	maxOpenDuration   = 10.5
	minCloseDuration  = 6.0
	maxCloseDuration  = 11.0
	flexMinDuration   = 6.0
	flexMaxDuration   = 11.0
	durationStep      = 0.5
)

// Generate produces the candidate template set for one day with the given
// open_time/close_time.
func Generate(openTime, closeTime float64) []models.Template {
	length := closeTime - openTime
	if length <= 0 {
		return nil
	}
	if length <= fixedDayThreshold {
		return []models.Template{
			{Kind: enums.KindFixed, Start: openTime, End: closeTime, Duration: length, Cost: 0},
		}
	}

	var out []models.Template
	out = append(out, openTemplates(openTime, closeTime)...)
	out = append(out, closeTemplates(openTime, closeTime)...)
	out = append(out, flexTemplates(openTime, closeTime)...)
	return out
}

func openTemplates(openTime, closeTime float64) []models.Template {
	var out []models.Template
	for d := minOpenDuration; d <= maxOpenDuration+1e-9; d += durationStep {
		end := openTime + d
		if end > closeTime+1e-9 {
			continue
		}
		cost := 100
		switch {
		case d >= 9.5:
			cost = 0
		case d >= 8.0:
			cost = 20
		}
		out = append(out, models.Template{Kind: enums.KindOpen, Start: openTime, End: end, Duration: d, Cost: cost})
	}
	return out
}

func closeTemplates(openTime, closeTime float64) []models.Template {
	var out []models.Template
	for d := minCloseDuration; d <= maxCloseDuration+1e-9; d += durationStep {
		start := closeTime - d
		if start < openTime-1e-9 {
			continue
		}
		cost := 100
		switch {
		case d >= 9.5:
			cost = 0
		case d >= 8.5:
			cost = 10
		case d >= 8.0:
			cost = 50
		}
		if !isWholeHour(start) {
			cost += 2
		}
		out = append(out, models.Template{Kind: enums.KindClose, Start: start, End: closeTime, Duration: d, Cost: cost})
	}
	return out
}

func flexTemplates(openTime, closeTime float64) []models.Template {
	var out []models.Template
	startLo := int(math.Ceil(openTime + 1))
	startHi := int(math.Floor(closeTime - 6))
	for s := startLo; s <= startHi; s++ {
		start := float64(s)
		for d := flexMinDuration; d <= flexMaxDuration+1e-9; d++ {
			end := start + d
			if end >= closeTime-1e-9 {
				continue
			}
			cost := 20
			if d >= 8 {
				cost = 0
			}
			cost += int(5 * (math.Abs(start-10) + math.Abs(end-19)))
			out = append(out, models.Template{Kind: enums.KindFlex, Start: start, End: end, Duration: d, Cost: cost})
		}
	}
	return out
}

func isWholeHour(v float64) bool {
	return math.Abs(v-math.Round(v)) < 1e-9
}
