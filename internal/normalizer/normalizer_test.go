package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftsched/internal/models"
	"shiftsched/internal/models/enums"
)

func baseRequest() *models.ScheduleRequest {
	return &models.ScheduleRequest{
		Year:          2025,
		Month:         1,
		FullTimeHours: 184,
		Employees: []models.Employee{
			{Name: "Ana", Role: "assistant", ContractType: 1.0},
		},
		Config: models.Config{},
	}
}

func TestNormalize_FillsTargetHoursFromContract(t *testing.T) {
	req := baseRequest()
	norm, err := Normalize(req)
	require.NoError(t, err)
	require.Len(t, norm.Employees, 1)
	assert.Equal(t, 184.0, norm.Employees[0].TargetHours)
}

func TestNormalize_RespectsExplicitHoursFund(t *testing.T) {
	req := baseRequest()
	req.Employees[0].HoursFund = 120
	norm, err := Normalize(req)
	require.NoError(t, err)
	assert.Equal(t, 120.0, norm.Employees[0].TargetHours)
}

func TestNormalize_DefaultsOpenCloseHours(t *testing.T) {
	req := baseRequest()
	norm, err := Normalize(req)
	require.NoError(t, err)
	day := norm.Days[1]
	assert.Equal(t, 8.5, day.OpenTime)
	assert.Equal(t, 21.0, day.CloseTime)
	assert.Equal(t, enums.DayNormal, day.Class)
}

func TestNormalize_ClosedHolidayTakesPriority(t *testing.T) {
	req := baseRequest()
	req.ClosedHolidays = []int{1}
	req.HeavyDays = map[int]models.HeavyDay{1: {ExtraStaff: 2}}
	norm, err := Normalize(req)
	require.NoError(t, err)
	day := norm.Days[1]
	assert.Equal(t, enums.DayClosed, day.Class)
	// ExtraStaff is still recorded independent of classification.
	assert.Equal(t, 2, day.ExtraStaff)
}

func TestNormalize_ShortPaidHolidayCustomHours(t *testing.T) {
	req := baseRequest()
	req.SpecialDays = map[int]models.SpecialDay{
		24: {Type: models.SpecialHolidayShortPaid, Open: "08:30", Close: "14:00"},
	}
	norm, err := Normalize(req)
	require.NoError(t, err)
	day := norm.Days[24]
	assert.Equal(t, enums.DayShortPaid, day.Class)
	assert.Equal(t, 8.5, day.OpenTime)
	assert.Equal(t, 14.0, day.CloseTime)
	assert.Equal(t, 5.5, day.Length())
}

func TestNormalize_RejectsInvalidContractFraction(t *testing.T) {
	req := baseRequest()
	req.Employees[0].ContractType = 0
	_, err := Normalize(req)
	assert.Error(t, err)
}

func TestNormalize_RejectsOutOfRangeDay(t *testing.T) {
	req := baseRequest()
	req.Employees[0].UnavailableDays = []int{99}
	_, err := Normalize(req)
	assert.Error(t, err)
}

func TestNormalize_RejectsNegativeExtraStaff(t *testing.T) {
	req := baseRequest()
	req.HeavyDays = map[int]models.HeavyDay{5: {ExtraStaff: -1}}
	_, err := Normalize(req)
	assert.Error(t, err)
}

func TestNormalize_FillsDefaultWeightsWhenUnset(t *testing.T) {
	req := baseRequest()
	norm, err := Normalize(req)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultWeights(), norm.Weights)
}

func TestNormalize_DefaultsShapeKnobsAndManagerRoles(t *testing.T) {
	req := baseRequest()
	norm, err := Normalize(req)
	require.NoError(t, err)
	assert.Equal(t, 0.4, norm.Config.OpenRatioValue())
	assert.Equal(t, 0.4, norm.Config.CloseRatioValue())
	assert.Equal(t, 1, norm.Config.MinOpenersCount())
	assert.Equal(t, 1, norm.Config.MinClosersCount())
	assert.Equal(t, []string{"manager", "deputy", "supervisor"}, norm.Config.ManagerRoles)
}

func TestNormalize_ExplicitZeroConfigKnobsSurvive(t *testing.T) {
	req := baseRequest()
	zeroRatio := 0.0
	zeroFloor := 0
	req.Config.OpenRatio = &zeroRatio
	req.Config.MinClosers = &zeroFloor
	norm, err := Normalize(req)
	require.NoError(t, err)
	assert.Equal(t, 0.0, norm.Config.OpenRatioValue())
	assert.Equal(t, 0.4, norm.Config.CloseRatioValue())
	assert.Equal(t, 1, norm.Config.MinOpenersCount())
	assert.Equal(t, 0, norm.Config.MinClosersCount())
}

func TestNormalize_ExplicitZeroWeightSurvives(t *testing.T) {
	req := baseRequest()
	zero := 0.0
	req.Weights.Clopen = &zero
	norm, err := Normalize(req)
	require.NoError(t, err)
	require.NotNil(t, norm.Weights.Clopen)
	assert.Equal(t, 0.0, *norm.Weights.Clopen)
	require.NotNil(t, norm.Weights.WorkHours)
	assert.Equal(t, 1000.0, *norm.Weights.WorkHours)
}

func TestNormalize_ExplicitEmptyManagerRolesDisablesDefault(t *testing.T) {
	req := baseRequest()
	req.Config.ManagerRoles = []string{}
	norm, err := Normalize(req)
	require.NoError(t, err)
	assert.Empty(t, norm.Config.ManagerRoles)
}

func TestNormalize_DaysInMonthJanuary2025(t *testing.T) {
	req := baseRequest()
	norm, err := Normalize(req)
	require.NoError(t, err)
	assert.Equal(t, 31, norm.DaysInMonth)
	assert.Len(t, norm.Days, 31)
}
