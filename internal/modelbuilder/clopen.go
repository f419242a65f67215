/*
Package modelbuilder - clopen penalty, fairness, hour deviation, objective

==============================================================================
FILE: internal/modelbuilder/clopen.go
==============================================================================

DESCRIPTION:
    Clopen penalty, open/close fairness, hour deviation, and the weighted
    objective assembly.

DEVELOPER GUIDELINES:
    CAUTION: clopen is linearized with three inequalities (not
        AddBoolAnd/OnlyEnforceIf) - this keeps the constraint
        portable across solver backends
    DO NOT modify: objective weight wiring - every penalty term must be
        reachable here or it silently drops out of the minimized sum

==============================================================================
*/
package modelbuilder

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"shiftsched/internal/models"
	"shiftsched/internal/timeutil"
)

// addClopenConstraints introduces clopen[i,d] for every employee and every
// pair of consecutive open days, and records it for the objective.
func addClopenConstraints(b *Built, input *models.NormalizedInput) {
	if !input.Config.ClopenBanEnabled() {
		return
	}
	model := b.CPModel
	openSet := make(map[int]bool, len(b.OpenDays))
	for _, d := range b.OpenDays {
		openSet[d] = true
	}

	for _, emp := range input.Employees {
		for _, day := range b.OpenDays {
			next := day + 1
			if !openSet[next] {
				continue
			}
			hasClose := closerVars(b, emp.Name, day)
			hasOpen := openerVars(b, emp.Name, next)
			if len(hasClose) == 0 || len(hasOpen) == 0 {
				continue
			}

			clopen := model.NewBoolVar().WithName(fmt.Sprintf("clopen_%s_d%d", emp.Name, day))

			// clopen >= has_close + has_open - 1
			lower := sumExpr(hasClose)
			for _, v := range hasOpen {
				lower.Add(v)
			}
			lower.AddTerm(clopen, -1)
			model.AddLessOrEqual(lower, cpmodel.NewConstant(1))

			// clopen <= has_close
			upperClose := sumExpr(hasClose)
			upperClose.AddTerm(clopen, -1)
			model.AddGreaterOrEqual(upperClose, cpmodel.NewConstant(0))

			// clopen <= has_open
			upperOpen := sumExpr(hasOpen)
			upperOpen.AddTerm(clopen, -1)
			model.AddGreaterOrEqual(upperOpen, cpmodel.NewConstant(0))

			b.ClopenVars = append(b.ClopenVars, clopen)
		}
	}
}

// addFairnessAndHourDeviation introduces, per employee: the |O_i-C_i|,
// |O_i-T_i|, |C_i-T_i| fairness deviations and the worked/target hour
// deviation.
func addFairnessAndHourDeviation(b *Built, input *models.NormalizedInput) {
	model := b.CPModel

	for _, emp := range input.Employees {
		var openVars, closeVars []cpmodel.BoolVar
		type weightedVar struct {
			v     cpmodel.BoolVar
			coeff int64
		}
		var workedTerms []weightedVar
		maxTenths := int64(0)

		for _, day := range b.OpenDays {
			openVars = append(openVars, openerVars(b, emp.Name, day)...)
			closeVars = append(closeVars, closerVars(b, emp.Name, day)...)

			for t, tpl := range b.DayTemplates[day] {
				v, ok := b.X[XKey{Employee: emp.Name, Day: day, TemplateIndex: t}]
				if !ok {
					continue
				}
				coeff := durationTenths(tpl)
				workedTerms = append(workedTerms, weightedVar{v, coeff})
				maxTenths += coeff
			}
		}

		openCount := len(openVars)
		closeCount := len(closeVars)
		targetHalfShifts := roundHalfAwayFromZero((emp.TargetHours / 9.5) / 2)

		openMinusClose := addAbsDeviationMixed(model, openVars, closeVars, fmt.Sprintf("oc_fair_%s", emp.Name))
		openMinusTarget := addAbsDeviation(model, openVars, targetHalfShifts, openCount+targetHalfShifts, fmt.Sprintf("ot_fair_%s", emp.Name))
		closeMinusTarget := addAbsDeviation(model, closeVars, targetHalfShifts, closeCount+targetHalfShifts, fmt.Sprintf("ct_fair_%s", emp.Name))
		b.FairnessVars = append(b.FairnessVars, openMinusClose, openMinusTarget, closeMinusTarget)

		paidHours := b.PaidHours[emp.Name]
		targetTenths := timeutil.Tenths(emp.TargetHours - paidHours)

		hourDev := model.NewIntVar(0, maxTenths+absInt64(targetTenths)).WithName(fmt.Sprintf("hour_dev_%s", emp.Name))

		lower := cpmodel.NewLinearExpr()
		for _, term := range workedTerms {
			lower.AddTerm(term.v, term.coeff)
		}
		lower.AddTerm(hourDev, -1)
		model.AddLessOrEqual(lower, cpmodel.NewConstant(targetTenths))

		upper := cpmodel.NewLinearExpr()
		for _, term := range workedTerms {
			upper.AddTerm(term.v, term.coeff)
		}
		upper.AddTerm(hourDev, 1)
		model.AddGreaterOrEqual(upper, cpmodel.NewConstant(targetTenths))

		b.HourDevVars = append(b.HourDevVars, hourDev)
	}
}

// addAbsDeviationMixed is addAbsDeviation specialized for |sum(a) - sum(b)|
// between two independent variable sets (used for the O_i - C_i fairness
// term, which has no single external target constant).
func addAbsDeviationMixed(model *cpmodel.CpModelBuilder, a, bVars []cpmodel.BoolVar, name string) cpmodel.IntVar {
	ub := int64(len(a) + len(bVars))
	dev := model.NewIntVar(0, ub).WithName(name)

	lower := sumExpr(a)
	for _, v := range bVars {
		lower.AddTerm(v, -1)
	}
	lower.AddTerm(dev, -1)
	model.AddLessOrEqual(lower, cpmodel.NewConstant(0))

	upper := sumExpr(a)
	for _, v := range bVars {
		upper.AddTerm(v, -1)
	}
	upper.AddTerm(dev, 1)
	model.AddGreaterOrEqual(upper, cpmodel.NewConstant(0))

	return dev
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// setObjective assembles the weighted minimization over all penalty terms
// of the model: hour deviation, shift cost, day shape, fairness, clopen.
func setObjective(b *Built, input *models.NormalizedInput) {
	// The normalizer guarantees every weight is filled in (WithDefaults).
	weights := input.Weights.WithDefaults()
	objective := cpmodel.NewLinearExpr()

	for _, dev := range b.HourDevVars {
		objective.AddTerm(dev, int64(*weights.WorkHours))
	}

	for _, day := range b.OpenDays {
		for t, tpl := range b.DayTemplates[day] {
			for _, emp := range input.Employees {
				v, ok := b.X[XKey{Employee: emp.Name, Day: day, TemplateIndex: t}]
				if !ok {
					continue
				}
				objective.AddTerm(v, int64(*weights.ShiftCost)*int64(tpl.Cost))
			}
		}
	}

	for _, dev := range b.DayShapeDevs {
		objective.AddTerm(dev, int64(*weights.DayShape))
	}

	for _, dev := range b.FairnessVars {
		objective.AddTerm(dev, int64(*weights.OpenCloseFairness))
	}

	for _, v := range b.ClopenVars {
		objective.AddTerm(v, int64(*weights.Clopen))
	}

	b.CPModel.Minimize(objective)
}
