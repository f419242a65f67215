/*
Package normalizer - Input Normalizer

==============================================================================
FILE: internal/normalizer/normalizer.go
==============================================================================

DESCRIPTION:
    Component 1 of the scheduling pipeline: fills missing
    per-employee target hours from full-time hours times contract fraction,
    parses "HH:MM" times to a common numeric form, validates day indices
    against the month length, and classifies every day of the month.

USER PERSPECTIVE:
    - Callers hand in a loosely-filled request; this is where it gets
      validated and defaulted before anything touches the solver
    - A malformed request fails here, fast, before any model is built

DEVELOPER GUIDELINES:
    OK to modify: Add new default-filling rules
    CAUTION: Day classification priority order (closed > short_paid >
        short_unpaid > open_special > heavy > normal) is load-bearing and
        must stay in that order
    DO NOT modify: Validation to become lenient about malformed times or
        out-of-range days - validation must fail fast, before any model is built

==============================================================================
*/
package normalizer

import (
	"shiftsched/internal/errors"
	"shiftsched/internal/models"
	"shiftsched/internal/models/enums"
	"shiftsched/internal/timeutil"
)

const (
	defaultOpenTime  = "08:30"
	defaultCloseTime = "21:00"
)

// defaultManagerRoles applies when the caller omits manager_roles entirely;
// an explicitly empty list disables the Monday manager requirement instead.
var defaultManagerRoles = []string{"manager", "deputy", "supervisor"}

// Normalize validates req and produces the materialized input every later
// pipeline stage operates on.
func Normalize(req *models.ScheduleRequest) (*models.NormalizedInput, error) {
	if req.Year <= 0 || req.Month < 1 || req.Month > 12 {
		return nil, errors.Wrap(errors.New("year/month out of range"), errors.ErrInvalidInput)
	}

	daysInMonth := timeutil.DaysInMonth(req.Year, req.Month)

	if err := validateDayList(req.ClosedHolidays, daysInMonth); err != nil {
		return nil, err
	}
	if err := validateDayList(req.OpenHolidays, daysInMonth); err != nil {
		return nil, err
	}
	for day, hd := range req.HeavyDays {
		if day < 1 || day > daysInMonth {
			return nil, errors.Wrap(errors.New("heavy_days day out of range"), errors.ErrDayOutOfRange)
		}
		if hd.ExtraStaff < 0 {
			return nil, errors.Wrap(errors.New("heavy_days extra_staff negative"), errors.ErrNegativeExtraStaff)
		}
	}
	for day := range req.SpecialDays {
		if day < 1 || day > daysInMonth {
			return nil, errors.Wrap(errors.New("special_days day out of range"), errors.ErrDayOutOfRange)
		}
	}

	employees := make([]models.NormalizedEmployee, 0, len(req.Employees))
	for _, e := range req.Employees {
		if e.ContractType <= 0 {
			return nil, errors.Wrap(errors.New("contract_type must be > 0 for "+e.Name), errors.ErrInvalidContractFraction)
		}
		if err := validateDayList(e.UnavailableDays, daysInMonth); err != nil {
			return nil, err
		}
		if err := validateDayList(e.VacationDays, daysInMonth); err != nil {
			return nil, err
		}

		target := e.HoursFund
		if target <= 0 {
			target = req.FullTimeHours * e.ContractType
		}
		employees = append(employees, models.NormalizedEmployee{
			Employee:    e,
			TargetHours: target,
		})
	}

	cfg := configWithDefaults(req.Config)

	defaultOpen, defaultClose, err := resolveDefaultHours(cfg)
	if err != nil {
		return nil, err
	}

	days, err := classifyDays(req, daysInMonth, defaultOpen, defaultClose)
	if err != nil {
		return nil, err
	}

	return &models.NormalizedInput{
		Year:          req.Year,
		Month:         req.Month,
		DaysInMonth:   daysInMonth,
		FullTimeHours: req.FullTimeHours,
		Employees:     employees,
		Days:          days,
		Config:        cfg,
		Weights:       req.Weights.WithDefaults(),
	}, nil
}

// configWithDefaults fills the roster-level defaults the accessor methods
// on models.Config cannot cover. The optional numeric knobs (min openers/
// closers, open/close ratios, clopen ban) resolve lazily through those
// accessors, which lets an explicit zero survive where it is meaningful.
func configWithDefaults(cfg models.Config) models.Config {
	if cfg.ManagerRoles == nil {
		cfg.ManagerRoles = defaultManagerRoles
	}
	return cfg
}

func validateDayList(days []int, daysInMonth int) error {
	for _, d := range days {
		if d < 1 || d > daysInMonth {
			return errors.Wrap(errors.New("day index out of range"), errors.ErrDayOutOfRange)
		}
	}
	return nil
}

func resolveDefaultHours(cfg models.Config) (open, close float64, err error) {
	openStr := cfg.DefaultOpenTime
	if openStr == "" {
		openStr = defaultOpenTime
	}
	closeStr := cfg.DefaultCloseTime
	if closeStr == "" {
		closeStr = defaultCloseTime
	}
	open, err = timeutil.ParseClock(openStr)
	if err != nil {
		return 0, 0, errors.Wrap(err, errors.ErrInvalidTime)
	}
	close, err = timeutil.ParseClock(closeStr)
	if err != nil {
		return 0, 0, errors.Wrap(err, errors.ErrInvalidTime)
	}
	return open, close, nil
}

// classifyDays builds the per-day classification table for the month, in the
// priority order: closed > short_paid > short_unpaid > open_special >
// heavy > normal.
func classifyDays(req *models.ScheduleRequest, daysInMonth int, defaultOpen, defaultClose float64) (map[int]models.DayInfo, error) {
	days := make(map[int]models.DayInfo, daysInMonth)

	for day := 1; day <= daysInMonth; day++ {
		weekday := timeutil.Weekday(req.Year, req.Month, day)
		special, hasSpecial := req.SpecialDays[day]
		heavy, hasHeavy := req.HeavyDays[day]

		info := models.DayInfo{
			Day:       day,
			Weekday:   weekday,
			OpenTime:  defaultOpen,
			CloseTime: defaultClose,
		}
		if hasHeavy {
			info.ExtraStaff = heavy.ExtraStaff
		}
		if hasSpecial && special.Staff != nil {
			staff := *special.Staff
			info.StaffOverride = &staff
		}

		switch {
		case timeutil.ContainsDay(req.ClosedHolidays, day) || (hasSpecial && special.Type == models.SpecialHolidayClosed):
			info.Class = enums.DayClosed

		case hasSpecial && special.Type == models.SpecialHolidayShortPaid:
			info.Class = enums.DayShortPaid
			open, close, err := resolveCustomHours(special, defaultOpen, defaultClose)
			if err != nil {
				return nil, err
			}
			info.OpenTime, info.CloseTime = open, close

		case hasSpecial && special.Type == models.SpecialHolidayShortUnpaid:
			info.Class = enums.DayShortUnpaid
			open, close, err := resolveCustomHours(special, defaultOpen, defaultClose)
			if err != nil {
				return nil, err
			}
			info.OpenTime, info.CloseTime = open, close

		case hasSpecial && (special.Open != "" || special.Close != "" || special.Staff != nil):
			info.Class = enums.DayOpenSpecial
			open, close, err := resolveCustomHours(special, defaultOpen, defaultClose)
			if err != nil {
				return nil, err
			}
			info.OpenTime, info.CloseTime = open, close

		case hasHeavy:
			info.Class = enums.DayHeavy

		default:
			info.Class = enums.DayNormal
		}

		days[day] = info
	}

	return days, nil
}

func resolveCustomHours(special models.SpecialDay, defaultOpen, defaultClose float64) (open, close float64, err error) {
	open = defaultOpen
	close = defaultClose
	if special.Open != "" {
		open, err = timeutil.ParseClock(special.Open)
		if err != nil {
			return 0, 0, errors.Wrap(err, errors.ErrInvalidTime)
		}
	}
	if special.Close != "" {
		close, err = timeutil.ParseClock(special.Close)
		if err != nil {
			return 0, 0, errors.Wrap(err, errors.ErrInvalidTime)
		}
	}
	return open, close, nil
}
