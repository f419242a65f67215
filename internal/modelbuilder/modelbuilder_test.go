package modelbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiftsched/internal/demand"
	"shiftsched/internal/models"
	"shiftsched/internal/models/enums"
)

func ratioOf(v float64) *float64 { return &v }

func TestDayShapeTargets(t *testing.T) {
	// Opener/closer floors are left unset and resolve to their default of 1.
	cfg := models.Config{OpenRatio: ratioOf(0.5), CloseRatio: ratioOf(0.25)}

	openers, closers, middles := dayShapeTargets(4, cfg)
	assert.Equal(t, 2, openers)
	assert.Equal(t, 1, closers)
	assert.Equal(t, 1, middles)
}

func TestDayShapeTargets_ReducesClosersBeforeOpeners(t *testing.T) {
	cfg := models.Config{OpenRatio: ratioOf(1.0), CloseRatio: ratioOf(1.0)}

	// To = Tc = 3 for three required staff leaves Tm = -3; closers shrink
	// to their minimum first, then openers, until the middle target is
	// legal. Ending at (2, 1) rather than (1, 2) proves the order.
	openers, closers, middles := dayShapeTargets(3, cfg)
	assert.Equal(t, 2, openers)
	assert.Equal(t, 1, closers)
	assert.Equal(t, 0, middles)
}

func TestDayShapeTargets_ClampsMiddleAtMinima(t *testing.T) {
	openers, closers, middles := dayShapeTargets(1, models.Config{})
	assert.Equal(t, 1, openers)
	assert.Equal(t, 1, closers)
	assert.Equal(t, 0, middles)
}

func TestDayShapeTargets_ExplicitZeroFloorDisablesMinimum(t *testing.T) {
	zero := 0
	cfg := models.Config{MinClosers: &zero, OpenRatio: ratioOf(1.0), CloseRatio: ratioOf(0)}

	openers, closers, middles := dayShapeTargets(1, cfg)
	assert.Equal(t, 1, openers)
	assert.Equal(t, 0, closers)
	assert.Equal(t, 0, middles)
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 2, roundHalfAwayFromZero(1.5))
	assert.Equal(t, 1, roundHalfAwayFromZero(1.4))
	assert.Equal(t, -2, roundHalfAwayFromZero(-1.5))
	assert.Equal(t, 0, roundHalfAwayFromZero(0.4))
}

func twoDayInput() *models.NormalizedInput {
	return &models.NormalizedInput{
		Year:        2025,
		Month:       1,
		DaysInMonth: 2,
		Employees: []models.NormalizedEmployee{
			{Employee: models.Employee{Name: "Ana", Role: "assistant", ContractType: 1.0}, TargetHours: 19},
			{Employee: models.Employee{Name: "Bo", Role: "assistant", ContractType: 1.0, UnavailableDays: []int{2}}, TargetHours: 19},
		},
		Days: map[int]models.DayInfo{
			1: {Day: 1, Weekday: 2, Class: enums.DayNormal, OpenTime: 8.5, CloseTime: 21},
			2: {Day: 2, Weekday: 3, Class: enums.DayNormal, OpenTime: 8.5, CloseTime: 21},
		},
		Config:  models.Config{},
		Weights: models.DefaultWeights(),
	}
}

func twoDayTemplates() map[int][]models.Template {
	day := []models.Template{
		{Kind: enums.KindOpen, Start: 8.5, End: 18, Duration: 9.5, Cost: 0},
		{Kind: enums.KindClose, Start: 11.5, End: 21, Duration: 9.5, Cost: 2},
		{Kind: enums.KindFlex, Start: 10, End: 19, Duration: 9, Cost: 0},
	}
	return map[int][]models.Template{1: day, 2: day}
}

func twoDayDemand() *demand.Result {
	return &demand.Result{Days: map[int]demand.Day{
		1: {Day: 1, Required: 2, Available: 2},
		2: {Day: 2, Required: 1, Available: 1},
	}}
}

func TestBuild_CreatesVariablesOnlyForAvailableEmployees(t *testing.T) {
	input := twoDayInput()
	built, err := Build(input, twoDayDemand(), twoDayTemplates(), map[string]float64{})
	require.NoError(t, err)

	for tpl := 0; tpl < 3; tpl++ {
		_, ok := built.X[XKey{Employee: "Ana", Day: 1, TemplateIndex: tpl}]
		assert.True(t, ok)
		_, ok = built.X[XKey{Employee: "Ana", Day: 2, TemplateIndex: tpl}]
		assert.True(t, ok)
		_, ok = built.X[XKey{Employee: "Bo", Day: 1, TemplateIndex: tpl}]
		assert.True(t, ok)

		// Bo is unavailable on day 2: the triple must not exist at all.
		_, ok = built.X[XKey{Employee: "Bo", Day: 2, TemplateIndex: tpl}]
		assert.False(t, ok)
	}
	assert.Len(t, built.X, 9)
}

func TestBuild_SkipsClosedDays(t *testing.T) {
	input := twoDayInput()
	info := input.Days[2]
	info.Class = enums.DayClosed
	input.Days[2] = info

	dayTemplates := twoDayTemplates()
	delete(dayTemplates, 2)
	dem := twoDayDemand()
	delete(dem.Days, 2)

	built, err := Build(input, dem, dayTemplates, map[string]float64{})
	require.NoError(t, err)

	assert.Equal(t, []int{1}, built.OpenDays)
	for key := range built.X {
		assert.Equal(t, 1, key.Day)
	}
}

func TestBuild_KindFilters(t *testing.T) {
	input := twoDayInput()
	built, err := Build(input, twoDayDemand(), twoDayTemplates(), map[string]float64{})
	require.NoError(t, err)

	assert.Len(t, openerVars(built, "Ana", 1), 1)
	assert.Len(t, closerVars(built, "Ana", 1), 1)
	assert.Len(t, middleVars(built, "Ana", 1), 1)
	assert.Empty(t, openerVars(built, "Bo", 2))
}

func TestBuild_FixedCountsAsOpenerAndCloserButNotMiddle(t *testing.T) {
	input := twoDayInput()
	dayTemplates := map[int][]models.Template{
		1: {{Kind: enums.KindFixed, Start: 8.5, End: 14, Duration: 5.5, Cost: 0}},
		2: {{Kind: enums.KindFixed, Start: 8.5, End: 14, Duration: 5.5, Cost: 0}},
	}

	built, err := Build(input, twoDayDemand(), dayTemplates, map[string]float64{})
	require.NoError(t, err)

	assert.Len(t, openerVars(built, "Ana", 1), 1)
	assert.Len(t, closerVars(built, "Ana", 1), 1)
	assert.Empty(t, middleVars(built, "Ana", 1))
}

func TestBuild_CollectsPenaltyVariables(t *testing.T) {
	input := twoDayInput()
	built, err := Build(input, twoDayDemand(), twoDayTemplates(), map[string]float64{"Ana": 0, "Bo": 0})
	require.NoError(t, err)

	// o_dev, c_dev, m_dev per open day.
	assert.Len(t, built.DayShapeDevs, 6)
	// |O-C|, |O-T|, |C-T| per employee.
	assert.Len(t, built.FairnessVars, 6)
	// One hour-deviation variable per employee.
	assert.Len(t, built.HourDevVars, 2)
	// Days 1 and 2 are consecutive and open, both employees have closer
	// vars on day 1; only Ana has opener vars on day 2.
	assert.Len(t, built.ClopenVars, 1)
}

func TestBuild_ClopenDisabledByConfig(t *testing.T) {
	input := twoDayInput()
	off := false
	input.Config.EnableClopenBan = &off

	built, err := Build(input, twoDayDemand(), twoDayTemplates(), map[string]float64{})
	require.NoError(t, err)
	assert.Empty(t, built.ClopenVars)
}
