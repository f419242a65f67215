/*
Package models - Shift Scheduler Domain Types

==============================================================================
FILE: internal/models/request.go
==============================================================================

DESCRIPTION:
    The input record: one structured object describing a month to
    schedule, the employee roster, calendar overrides, and tunable
    configuration/weights. This is what the HTTP transport / request
    validation layer is expected to hand the
    scheduler after its own decoding and validation.

==============================================================================
*/
package models

// Config holds the tunable scheduling policy. The optional numeric fields
// are pointers so that "field omitted" and "field explicitly zero" stay
// distinguishable after JSON decoding: an omitted min_closers falls back to
// its default, while an explicit 0 disables the closer floor outright.
type Config struct {
	AutoStaffing     bool     `json:"auto_staffing"`
	BusyWeekends     bool     `json:"busy_weekends"`
	MinOpeners       *int     `json:"min_openers,omitempty"`
	MinClosers       *int     `json:"min_closers,omitempty"`
	OpenRatio        *float64 `json:"open_ratio,omitempty"`
	CloseRatio       *float64 `json:"close_ratio,omitempty"`
	ManagerRoles     []string `json:"manager_roles"`
	DefaultOpenTime  string   `json:"default_open_time"`
	DefaultCloseTime string   `json:"default_close_time"`
	EnableClopenBan  *bool    `json:"enable_clopen_ban,omitempty"`
}

// Defaults applied when the corresponding optional config field is omitted.
const (
	defaultMinOpeners = 1
	defaultMinClosers = 1
	defaultOpenRatio  = 0.4
	defaultCloseRatio = 0.4
)

// ClopenBanEnabled reports whether the clopen soft-penalty is active,
// defaulting to true when the caller leaves it unset.
func (c Config) ClopenBanEnabled() bool {
	return c.EnableClopenBan == nil || *c.EnableClopenBan
}

// MinOpenersCount returns the per-day hard opener floor, 1 when the caller
// omits it. An explicit 0 disables the floor.
func (c Config) MinOpenersCount() int {
	if c.MinOpeners == nil {
		return defaultMinOpeners
	}
	return *c.MinOpeners
}

// MinClosersCount returns the per-day hard closer floor, 1 when the caller
// omits it. An explicit 0 disables the floor.
func (c Config) MinClosersCount() int {
	if c.MinClosers == nil {
		return defaultMinClosers
	}
	return *c.MinClosers
}

// OpenRatioValue returns the opener share of a day's staff, 0.4 when the
// caller omits it.
func (c Config) OpenRatioValue() float64 {
	if c.OpenRatio == nil {
		return defaultOpenRatio
	}
	return *c.OpenRatio
}

// CloseRatioValue returns the closer share of a day's staff, 0.4 when the
// caller omits it.
func (c Config) CloseRatioValue() float64 {
	if c.CloseRatio == nil {
		return defaultCloseRatio
	}
	return *c.CloseRatio
}

// Weights holds the objective's term weights. Caller-overridable; the
// fields are pointers so that an explicit 0 (disable the term) survives
// JSON decoding - only omitted fields fall back to DefaultWeights.
type Weights struct {
	WorkHours         *float64 `json:"work_hours,omitempty"`
	DayShape          *float64 `json:"day_shape,omitempty"`
	ShiftCost         *float64 `json:"shift_cost,omitempty"`
	OpenCloseFairness *float64 `json:"open_close_fairness,omitempty"`
	Clopen            *float64 `json:"clopen,omitempty"`
}

// DefaultWeights returns the stock objective weights.
func DefaultWeights() Weights {
	return Weights{
		WorkHours:         weightOf(1000),
		DayShape:          weightOf(80),
		ShiftCost:         weightOf(5),
		OpenCloseFairness: weightOf(3),
		Clopen:            weightOf(15),
	}
}

func weightOf(v float64) *float64 { return &v }

// WithDefaults returns a copy of w with every omitted weight filled in from
// DefaultWeights, so a caller may override only the weights it cares about.
// Every field of the returned Weights is non-nil.
func (w Weights) WithDefaults() Weights {
	d := DefaultWeights()
	if w.WorkHours == nil {
		w.WorkHours = d.WorkHours
	}
	if w.DayShape == nil {
		w.DayShape = d.DayShape
	}
	if w.ShiftCost == nil {
		w.ShiftCost = d.ShiftCost
	}
	if w.OpenCloseFairness == nil {
		w.OpenCloseFairness = d.OpenCloseFairness
	}
	if w.Clopen == nil {
		w.Clopen = d.Clopen
	}
	return w
}

// ScheduleRequest is the full input record for one month to schedule.
type ScheduleRequest struct {
	Year           int                `json:"year"`
	Month          int                `json:"month"`
	FullTimeHours  float64            `json:"full_time_hours"`
	Employees      []Employee         `json:"employees"`
	HeavyDays      map[int]HeavyDay   `json:"heavy_days"`
	SpecialDays    map[int]SpecialDay `json:"special_days"`
	ClosedHolidays []int              `json:"closed_holidays"`
	OpenHolidays   []int              `json:"open_holidays"`
	Config         Config             `json:"config"`
	Weights        Weights            `json:"weights"`
}
