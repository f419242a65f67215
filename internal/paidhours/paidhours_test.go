package paidhours

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shiftsched/internal/models"
	"shiftsched/internal/models/enums"
)

func TestCredit(t *testing.T) {
	assert.Equal(t, 8.0, Credit(1.0))
	assert.Equal(t, 6.0, Credit(0.75))
	assert.Equal(t, 6.0, Credit(0.9))
	assert.Equal(t, 4.0, Credit(0.3))
	assert.Equal(t, 4.0, Credit(0.5))
}

func daysWithClass(classes map[int]enums.DayClass) map[int]models.DayInfo {
	days := make(map[int]models.DayInfo, len(classes))
	for day, class := range classes {
		days[day] = models.DayInfo{Day: day, Class: class}
	}
	return days
}

func TestCalculate_ClosedHolidayCredit(t *testing.T) {
	input := &models.NormalizedInput{
		Days: daysWithClass(map[int]enums.DayClass{
			25: enums.DayClosed,
			26: enums.DayClosed,
		}),
	}
	emp := models.NormalizedEmployee{Employee: models.Employee{Name: "Ana", ContractType: 1.0}}

	paidHours, creditedDays, credit := Calculate(input, emp)
	assert.Equal(t, 8.0, credit)
	assert.Equal(t, 16.0, paidHours)
	assert.ElementsMatch(t, []int{25, 26}, creditedDays)
}

func TestCalculate_ShortPaidHolidayCreditsFullDay(t *testing.T) {
	input := &models.NormalizedInput{
		Days: daysWithClass(map[int]enums.DayClass{24: enums.DayShortPaid}),
	}
	emp := models.NormalizedEmployee{Employee: models.Employee{Name: "Ana", ContractType: 1.0}}

	paidHours, creditedDays, _ := Calculate(input, emp)
	assert.Equal(t, 8.0, paidHours)
	assert.Equal(t, []int{24}, creditedDays)
}

func TestCalculate_VacationDayOverlapWithClosedCountsOnce(t *testing.T) {
	input := &models.NormalizedInput{
		Days: daysWithClass(map[int]enums.DayClass{25: enums.DayClosed}),
	}
	emp := models.NormalizedEmployee{
		Employee:    models.Employee{Name: "Ana", ContractType: 1.0, VacationDays: []int{25, 26}},
		TargetHours: 0,
	}

	paidHours, creditedDays, _ := Calculate(input, emp)
	assert.ElementsMatch(t, []int{25, 26}, creditedDays)
	assert.Equal(t, 16.0, paidHours)
}

func TestCalculate_LowContractFractionUsesLowestCredit(t *testing.T) {
	input := &models.NormalizedInput{
		Days: daysWithClass(map[int]enums.DayClass{10: enums.DayNormal}),
	}
	emp := models.NormalizedEmployee{
		Employee: models.Employee{Name: "Ana", ContractType: 0.3, VacationDays: []int{10}},
	}

	paidHours, _, credit := Calculate(input, emp)
	assert.Equal(t, 4.0, credit)
	assert.Equal(t, 4.0, paidHours)
}

func TestCalculate_ShortUnpaidHolidayNotCredited(t *testing.T) {
	input := &models.NormalizedInput{
		Days: daysWithClass(map[int]enums.DayClass{24: enums.DayShortUnpaid}),
	}
	emp := models.NormalizedEmployee{Employee: models.Employee{Name: "Ana", ContractType: 1.0}}

	paidHours, creditedDays, _ := Calculate(input, emp)
	assert.Equal(t, 0.0, paidHours)
	assert.Empty(t, creditedDays)
}

func TestCalculateAll_KeyedByName(t *testing.T) {
	input := &models.NormalizedInput{
		Days: daysWithClass(map[int]enums.DayClass{25: enums.DayClosed}),
		Employees: []models.NormalizedEmployee{
			{Employee: models.Employee{Name: "Ana", ContractType: 1.0}},
			{Employee: models.Employee{Name: "Bo", ContractType: 0.5}},
		},
	}

	result := CalculateAll(input)
	assert.Equal(t, 8.0, result["Ana"])
	assert.Equal(t, 4.0, result["Bo"])
}
