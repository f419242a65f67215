/*
Package modelbuilder - Integer-Programming Model Builder

==============================================================================
FILE: internal/modelbuilder/modelbuilder.go
==============================================================================

DESCRIPTION:
    Component 5 of the scheduling pipeline: instantiates
    per-(employee, day, template) indicator variables and the linear
    constraints over them (per-employee-per-day at-most-one, exact daily
    coverage, day shape, manager-on-Mondays, consecutive-day cap, clopen,
    fairness, hour deviation), and constructs the weighted objective.

USER PERSPECTIVE:
    - This is the heart of the scheduler: everything the Solver Driver and
      Solution Projector touch is a variable or constraint defined here

DEVELOPER GUIDELINES:
    OK to modify: split constraint groups into additional files as they grow
    CAUTION: variable creation order must stay deterministic (day-ascending,
        employee input order, template emission order) so the solver's
        branch-heuristic tie-breaks stay reproducible
    DO NOT modify: the x[i,d,t] existence rule (only when day open AND
        employee available AND template belongs to that day) - absent
        triples are implicitly 0

==============================================================================
*/
package modelbuilder

import (
	"fmt"
	"sort"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"shiftsched/internal/demand"
	"shiftsched/internal/models"
	"shiftsched/internal/models/enums"
	"shiftsched/internal/timeutil"
)

// XKey identifies one (employee, day, template-index) indicator variable.
type XKey struct {
	Employee      string
	Day           int
	TemplateIndex int
}

// Built holds the instantiated CP-SAT model and the indexing needed by the
// Solver Driver and Solution Projector.
type Built struct {
	CPModel      *cpmodel.CpModelBuilder
	X            map[XKey]cpmodel.BoolVar
	Employees    []models.NormalizedEmployee
	OpenDays     []int
	DayTemplates map[int][]models.Template
	PaidHours    map[string]float64

	// Penalty-term variables folded into the weighted objective; kept on
	// Built so the objective assembly step can weight and sum them after
	// every constraint group has contributed.
	DayShapeDevs []cpmodel.IntVar
	ClopenVars   []cpmodel.BoolVar
	FairnessVars []cpmodel.IntVar
	HourDevVars  []cpmodel.IntVar
}

// Build instantiates the full constraint model for one normalized month.
func Build(input *models.NormalizedInput, dem *demand.Result, dayTemplates map[int][]models.Template, paidHours map[string]float64) (*Built, error) {
	model := cpmodel.NewCpModelBuilder()

	openDays := make([]int, 0, len(input.Days))
	for day, info := range input.Days {
		if info.Class.IsOpen() {
			openDays = append(openDays, day)
		}
	}
	sort.Ints(openDays)

	b := &Built{
		CPModel:      model,
		X:            make(map[XKey]cpmodel.BoolVar),
		Employees:    input.Employees,
		OpenDays:     openDays,
		DayTemplates: dayTemplates,
		PaidHours:    paidHours,
	}

	for _, day := range openDays {
		templates := dayTemplates[day]
		for _, emp := range input.Employees {
			if emp.IsAbsent(day) {
				continue
			}
			var dayVars []cpmodel.BoolVar
			for t := range templates {
				name := fmt.Sprintf("x_%s_d%d_t%d", emp.Name, day, t)
				v := model.NewBoolVar().WithName(name)
				b.X[XKey{Employee: emp.Name, Day: day, TemplateIndex: t}] = v
				dayVars = append(dayVars, v)
			}
			if len(dayVars) > 0 {
				model.AddAtMostOne(dayVars...)
			}
		}

		required := 0
		if d, ok := dem.Days[day]; ok {
			required = d.Required
		}
		coverage := cpmodel.NewLinearExpr()
		for _, emp := range input.Employees {
			for t := range templates {
				if v, ok := b.X[XKey{Employee: emp.Name, Day: day, TemplateIndex: t}]; ok {
					coverage.Add(v)
				}
			}
		}
		model.AddEquality(coverage, cpmodel.NewConstant(int64(required)))
	}

	addDayShapeConstraints(b, input, dem)
	addManagerOnMondayConstraints(b, input)
	addConsecutiveDayConstraints(b, input)
	addClopenConstraints(b, input)
	addFairnessAndHourDeviation(b, input)
	setObjective(b, input)

	return b, nil
}

// openerVars returns the x vars for emp on day that count as openers
// (OPEN|FIXED templates).
func openerVars(b *Built, emp string, day int) []cpmodel.BoolVar {
	return kindVars(b, emp, day, func(k enums.TemplateKind) bool { return k.IsOpener() })
}

// closerVars returns the x vars for emp on day that count as closers
// (CLOSE|FIXED templates).
func closerVars(b *Built, emp string, day int) []cpmodel.BoolVar {
	return kindVars(b, emp, day, func(k enums.TemplateKind) bool { return k.IsCloser() })
}

// middleVars returns the x vars for emp on day that count as middles
// (FLEX templates only, to avoid double-counting FIXED).
func middleVars(b *Built, emp string, day int) []cpmodel.BoolVar {
	return kindVars(b, emp, day, func(k enums.TemplateKind) bool { return k.IsMiddle() })
}

func kindVars(b *Built, emp string, day int, match func(enums.TemplateKind) bool) []cpmodel.BoolVar {
	var out []cpmodel.BoolVar
	for t, tpl := range b.DayTemplates[day] {
		if !match(tpl.Kind) {
			continue
		}
		if v, ok := b.X[XKey{Employee: emp, Day: day, TemplateIndex: t}]; ok {
			out = append(out, v)
		}
	}
	return out
}

// sumExpr builds a fresh linear expression summing vars with coefficient 1.
func sumExpr(vars []cpmodel.BoolVar) *cpmodel.LinearExpr {
	expr := cpmodel.NewLinearExpr()
	for _, v := range vars {
		expr.Add(v)
	}
	return expr
}

// durationTenths returns round(duration*10) for a template, matching the
// model's integer scaling.
func durationTenths(tpl models.Template) int64 {
	return timeutil.Tenths(tpl.Duration)
}
