/*
Package models - Shift Scheduler Domain Types

==============================================================================
FILE: internal/models/calendar.go
==============================================================================

DESCRIPTION:
    Calendar inputs (special days, heavy days) and the normalized per-day
    classification the Input Normalizer produces for every day of the
    scheduled month.

==============================================================================
*/
package models

import "shiftsched/internal/models/enums"

// SpecialDayType is the caller-supplied override kind for a day (the input
// record's special_days[d].type).
type SpecialDayType string

const (
	SpecialNormal             SpecialDayType = "normal"
	SpecialHolidayShortPaid   SpecialDayType = "holiday_short_paid"
	SpecialHolidayShortUnpaid SpecialDayType = "holiday_short_unpaid"
	SpecialHolidayClosed      SpecialDayType = "holiday_closed"
)

// SpecialDay is one entry of the input record's special_days map.
type SpecialDay struct {
	Type  SpecialDayType `json:"type,omitempty"`
	Open  string         `json:"open,omitempty"`
	Close string         `json:"close,omitempty"`
	Staff *int           `json:"staff,omitempty"`
}

// HeavyDay is one entry of the input record's heavy_days map.
type HeavyDay struct {
	ExtraStaff int `json:"extra_staff"`
}

// DayInfo is the normalized classification and resolved open/close hours
// for one day of the month.
type DayInfo struct {
	Day           int
	Weekday       int // Monday=0 ... Sunday=6
	Class         enums.DayClass
	OpenTime      float64
	CloseTime     float64
	ExtraStaff    int  // from heavy_days[d], independent of Class
	StaffOverride *int // from special_days[d].staff, independent of Class
}

// Length returns the open duration of the day in hours.
func (d DayInfo) Length() float64 {
	if !d.Class.IsOpen() {
		return 0
	}
	return d.CloseTime - d.OpenTime
}
