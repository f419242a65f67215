/*
Package models - Shift Scheduler Domain Types

==============================================================================
FILE: internal/models/template.go
==============================================================================

DESCRIPTION:
    The candidate shift template produced per day by the Shift-Template
    Generator.

==============================================================================
*/
package models

import "shiftsched/internal/models/enums"

// Template is one legal (start, end, kind, cost) candidate shift for a day.
type Template struct {
	Kind     enums.TemplateKind `json:"kind"`
	Start    float64            `json:"start"`
	End      float64            `json:"end"`
	Duration float64            `json:"duration"`
	Cost     int                `json:"cost"`
}
