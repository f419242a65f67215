package projector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftsched/internal/demand"
	"shiftsched/internal/modelbuilder"
	"shiftsched/internal/models"
	"shiftsched/internal/models/enums"
	"shiftsched/internal/solver"
)

func TestProject_UnsolvedStatusYieldsEmptySchedule(t *testing.T) {
	input := &models.NormalizedInput{
		Employees: []models.NormalizedEmployee{
			{Employee: models.Employee{Name: "Ana"}, TargetHours: 184},
		},
	}
	built := &modelbuilder.Built{
		Employees:    input.Employees,
		DayTemplates: map[int][]models.Template{},
		PaidHours:    map[string]float64{"Ana": 8},
	}
	solved := &solver.Result{Status: enums.StatusInfeasible}
	dem := &demand.Result{Shortfalls: []models.Shortfall{{Day: 5, Needed: 3, Available: 1, Deficit: 2}}}

	resp := Project(input, built, solved, dem)

	assert.Equal(t, "INFEASIBLE", resp.Status)
	assert.Empty(t, resp.Schedule)
	require.Len(t, resp.Employees, 1)
	assert.Equal(t, 8.0, resp.Employees[0].PaidOff)
	assert.Equal(t, 8.0, resp.Employees[0].Total)
	assert.Equal(t, 8.0-184, resp.Employees[0].Diff)
	require.Len(t, resp.Understaffed, 1)
	assert.Equal(t, 5, resp.Understaffed[0].Day)
}

func TestOrderedStats_PreservesEmployeeInputOrder(t *testing.T) {
	employees := []models.NormalizedEmployee{
		{Employee: models.Employee{Name: "Zed"}},
		{Employee: models.Employee{Name: "Ana"}},
	}
	stats := map[string]*models.EmployeeStat{
		"Zed": {Name: "Zed"},
		"Ana": {Name: "Ana"},
	}

	ordered := orderedStats(employees, stats)
	require.Len(t, ordered, 2)
	assert.Equal(t, "Zed", ordered[0].Name)
	assert.Equal(t, "Ana", ordered[1].Name)
}
