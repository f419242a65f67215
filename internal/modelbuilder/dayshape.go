/*
Package modelbuilder - day shape, manager-on-Mondays, consecutive-day cap

==============================================================================
FILE: internal/modelbuilder/dayshape.go
==============================================================================

DESCRIPTION:
    Day-shape targets and deviations, manager-on-Mondays, and the
    consecutive-day cap.

DEVELOPER GUIDELINES:
    DO NOT modify: the target-reduction order (reduce Tc then To toward
        their minima before clamping Tm to 0)
    DO NOT modify: the five-day sliding window bound of 4

==============================================================================
*/
package modelbuilder

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"shiftsched/internal/demand"
	"shiftsched/internal/models"
)

// dayShapeTargets computes (To, Tc, Tm) for one day.
func dayShapeTargets(required int, cfg models.Config) (openers, closers, middles int) {
	minOpeners := cfg.MinOpenersCount()
	minClosers := cfg.MinClosersCount()
	openers = maxInt(minOpeners, roundHalfAwayFromZero(float64(required)*cfg.OpenRatioValue()))
	closers = maxInt(minClosers, roundHalfAwayFromZero(float64(required)*cfg.CloseRatioValue()))
	middles = required - openers - closers

	for middles < 0 && closers > minClosers {
		closers--
		middles = required - openers - closers
	}
	for middles < 0 && openers > minOpeners {
		openers--
		middles = required - openers - closers
	}
	if middles < 0 {
		middles = 0
	}
	return openers, closers, middles
}

func addDayShapeConstraints(b *Built, input *models.NormalizedInput, dem *demand.Result) {
	model := b.CPModel
	for _, day := range b.OpenDays {
		required := 0
		if d, ok := dem.Days[day]; ok {
			required = d.Required
		}
		targetOpen, targetClose, targetMiddle := dayShapeTargets(required, input.Config)

		var openVars, closeVars, flexVars []cpmodel.BoolVar
		for _, emp := range input.Employees {
			openVars = append(openVars, openerVars(b, emp.Name, day)...)
			closeVars = append(closeVars, closerVars(b, emp.Name, day)...)
			flexVars = append(flexVars, middleVars(b, emp.Name, day)...)
		}

		openExpr := sumExpr(openVars)
		closeExpr := sumExpr(closeVars)

		model.AddGreaterOrEqual(openExpr, cpmodel.NewConstant(int64(input.Config.MinOpenersCount())))
		model.AddGreaterOrEqual(closeExpr, cpmodel.NewConstant(int64(input.Config.MinClosersCount())))

		oDev := addAbsDeviation(model, openVars, targetOpen, required, fmt.Sprintf("o_dev_d%d", day))
		cDev := addAbsDeviation(model, closeVars, targetClose, required, fmt.Sprintf("c_dev_d%d", day))
		mDev := addAbsDeviation(model, flexVars, targetMiddle, required, fmt.Sprintf("m_dev_d%d", day))
		b.DayShapeDevs = append(b.DayShapeDevs, oDev, cDev, mDev)
	}
}

// addAbsDeviation introduces a non-negative deviation variable dev with
// dev >= |sum(vars) - target|, via the two-inequality linearization of
// two inequalities, and returns it so callers may fold it into the objective.
func addAbsDeviation(model *cpmodel.CpModelBuilder, vars []cpmodel.BoolVar, target int, upperBound int, name string) cpmodel.IntVar {
	ub := int64(upperBound)
	if ub < int64(target) {
		ub = int64(target)
	}
	dev := model.NewIntVar(0, ub).WithName(name)

	// dev >= sum(vars) - target  <=>  sum(vars) - dev <= target
	minus := cpmodel.NewLinearExpr()
	for _, v := range vars {
		minus.Add(v)
	}
	minus.AddTerm(dev, -1)
	model.AddLessOrEqual(minus, cpmodel.NewConstant(int64(target)))

	// dev >= target - sum(vars)  <=>  sum(vars) + dev >= target
	plus := cpmodel.NewLinearExpr()
	for _, v := range vars {
		plus.Add(v)
	}
	plus.AddTerm(dev, 1)
	model.AddGreaterOrEqual(plus, cpmodel.NewConstant(int64(target)))

	return dev
}

func addManagerOnMondayConstraints(b *Built, input *models.NormalizedInput) {
	if len(input.Config.ManagerRoles) == 0 {
		return
	}
	model := b.CPModel
	for _, day := range b.OpenDays {
		info := input.Days[day]
		if !infoIsMonday(info.Weekday) {
			continue
		}
		var managerVars []cpmodel.BoolVar
		for _, emp := range input.Employees {
			if !emp.IsManager(input.Config.ManagerRoles) {
				continue
			}
			for t := range b.DayTemplates[day] {
				if v, ok := b.X[XKey{Employee: emp.Name, Day: day, TemplateIndex: t}]; ok {
					managerVars = append(managerVars, v)
				}
			}
		}
		if len(managerVars) == 0 {
			continue
		}
		model.AddGreaterOrEqual(sumExpr(managerVars), cpmodel.NewConstant(1))
	}
}

func infoIsMonday(weekday int) bool { return weekday == 0 }

// addConsecutiveDayConstraints enforces the five-day sliding window rule of
// the roster: in every window [d, d+4] an employee works at most four days.
func addConsecutiveDayConstraints(b *Built, input *models.NormalizedInput) {
	model := b.CPModel
	openSet := make(map[int]bool, len(b.OpenDays))
	for _, d := range b.OpenDays {
		openSet[d] = true
	}

	for _, emp := range input.Employees {
		for start := 1; start+4 <= input.DaysInMonth; start++ {
			var windowVars []cpmodel.BoolVar
			for offset := 0; offset <= 4; offset++ {
				day := start + offset
				if !openSet[day] {
					continue
				}
				for t := range b.DayTemplates[day] {
					if v, ok := b.X[XKey{Employee: emp.Name, Day: day, TemplateIndex: t}]; ok {
						windowVars = append(windowVars, v)
					}
				}
			}
			if len(windowVars) == 0 {
				continue
			}
			model.AddLessOrEqual(sumExpr(windowVars), cpmodel.NewConstant(4))
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func roundHalfAwayFromZero(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return -int(-v + 0.5)
}
