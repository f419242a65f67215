/*
Package projector - Solution Projector

==============================================================================
FILE: internal/projector/projector.go
==============================================================================

DESCRIPTION:
    Component 7 of the scheduling pipeline: maps variable
    assignments back into a per-day, per-employee shift record and
    per-employee aggregate statistics.

USER PERSPECTIVE:
    - This is the last stage before the output record is handed
      back to the caller

DEVELOPER GUIDELINES:
    OK to modify: add new aggregate statistics
    CAUTION: failure semantics - INFEASIBLE/UNKNOWN/MODEL_INVALID return an
        empty schedule but shortfalls are still surfaced
    DO NOT modify: FIXED templates count as both opener and closer but never
        as a middle

==============================================================================
*/
package projector

import (
	"shiftsched/internal/demand"
	"shiftsched/internal/modelbuilder"
	"shiftsched/internal/models"
	"shiftsched/internal/solver"
	"shiftsched/internal/timeutil"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
)

// Project builds the output record from a solved model.
func Project(input *models.NormalizedInput, built *modelbuilder.Built, solved *solver.Result, dem *demand.Result) *models.ScheduleResponse {
	resp := &models.ScheduleResponse{
		Status:           solved.Status.String(),
		SolveTimeSeconds: solved.WallTimeSeconds,
		ObjectiveValue:   solved.ObjectiveValue,
		BestBound:        solved.BestBound,
		Schedule:         map[int]map[string]models.ShiftRecord{},
		Understaffed:     dem.Shortfalls,
	}

	if !solved.Status.IsSolved() {
		resp.Employees = projectEmployeeStatsWithoutSchedule(input, built)
		return resp
	}

	stats := make(map[string]*models.EmployeeStat, len(input.Employees))
	for _, emp := range input.Employees {
		stats[emp.Name] = &models.EmployeeStat{Name: emp.Name, Target: emp.TargetHours}
	}

	for _, day := range built.OpenDays {
		templates := built.DayTemplates[day]
		for _, emp := range input.Employees {
			for t, tpl := range templates {
				key := modelbuilder.XKey{Employee: emp.Name, Day: day, TemplateIndex: t}
				v, ok := built.X[key]
				if !ok || !cpmodel.SolutionBooleanValue(solved.Response, v) {
					continue
				}

				if resp.Schedule[day] == nil {
					resp.Schedule[day] = map[string]models.ShiftRecord{}
				}
				resp.Schedule[day][emp.Name] = models.ShiftRecord{
					Start:    timeutil.FormatClock(tpl.Start),
					End:      timeutil.FormatClock(tpl.End),
					Type:     tpl.Kind.String(),
					Duration: tpl.Duration,
				}

				st := stats[emp.Name]
				st.Worked += tpl.Duration
				if tpl.Kind.IsOpener() {
					st.Opens++
				}
				if tpl.Kind.IsCloser() {
					st.Closes++
				}
				if tpl.Kind.IsMiddle() {
					st.Middle++
				}
			}
		}
	}

	paidHours := built.PaidHours
	for _, emp := range input.Employees {
		st := stats[emp.Name]
		st.PaidOff = paidHours[emp.Name]
		st.Total = st.Worked + st.PaidOff
		st.Diff = st.Total - st.Target
	}

	resp.Employees = orderedStats(input.Employees, stats)
	return resp
}

// projectEmployeeStatsWithoutSchedule returns per-employee stats with zero
// worked hours when the solver found no schedule to
// project; shortfalls and paid-off credit still surface.
func projectEmployeeStatsWithoutSchedule(input *models.NormalizedInput, built *modelbuilder.Built) []models.EmployeeStat {
	out := make([]models.EmployeeStat, 0, len(input.Employees))
	for _, emp := range input.Employees {
		paidOff := built.PaidHours[emp.Name]
		out = append(out, models.EmployeeStat{
			Name:    emp.Name,
			PaidOff: paidOff,
			Total:   paidOff,
			Target:  emp.TargetHours,
			Diff:    paidOff - emp.TargetHours,
		})
	}
	return out
}

func orderedStats(employees []models.NormalizedEmployee, stats map[string]*models.EmployeeStat) []models.EmployeeStat {
	out := make([]models.EmployeeStat, 0, len(employees))
	for _, emp := range employees {
		out = append(out, *stats[emp.Name])
	}
	return out
}
