/*
Package errors - Custom Error Types for the Shift Scheduler

==============================================================================
FILE: internal/errors/errors.go
==============================================================================

DESCRIPTION:
    Provides typed error definitions for the scheduler pipeline, following
    the pipeline error kinds: input validation, model infeasibility,
    solver timeout without a feasible solution, and internal failures.
    Capacity shortfalls are deliberately NOT one of these - the demand estimator
    records them as data (see models.Shortfall), not an error.

USAGE:
    // In a pipeline stage:
    return nil, errors.Wrap(err, errors.ErrInvalidInput)

    // In a caller:
    if errors.Is(err, errors.ErrDayOutOfRange) {
        ...
    }

DEVELOPER GUIDELINES:
    OK to modify: Add new error kinds if the pipeline grows new stages
    CAUTION: Changing error codes may affect callers matching on them
    DO NOT modify: Error interface implementation

==============================================================================
*/
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
)

// AppError represents a scheduler-level error with an HTTP-status hint.
// The scheduler itself never starts an HTTP server; the hint is carried so
// that whatever external collaborator exposes this pipeline over HTTP can
// map errors to status codes without re-deriving the mapping.
type AppError struct {
	Code       string // Machine-readable error code
	Message    string // Human-readable message
	HTTPStatus int    // HTTP status hint for an eventual transport layer
	Err        error  // Underlying error (optional)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is().
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewAppError creates a new application error.
func NewAppError(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

// Wrap wraps an underlying error with an AppError.
func Wrap(err error, appErr *AppError) *AppError {
	return &AppError{
		Code:       appErr.Code,
		Message:    appErr.Message,
		HTTPStatus: appErr.HTTPStatus,
		Err:        err,
	}
}

// WithMessage creates a copy of the error with a custom message.
func (e *AppError) WithMessage(msg string) *AppError {
	return &AppError{
		Code:       e.Code,
		Message:    msg,
		HTTPStatus: e.HTTPStatus,
		Err:        e.Err,
	}
}

// ============================================================================
// Input Validation Errors
// ============================================================================

var (
	ErrInvalidInput = NewAppError(
		"SCHED_INVALID_INPUT",
		"input record failed validation",
		http.StatusBadRequest,
	)

	ErrInvalidTime = NewAppError(
		"SCHED_INVALID_TIME",
		"unparseable HH:MM time string",
		http.StatusBadRequest,
	)

	ErrDayOutOfRange = NewAppError(
		"SCHED_DAY_OUT_OF_RANGE",
		"day index outside 1..days_in_month",
		http.StatusBadRequest,
	)

	ErrInvalidContractFraction = NewAppError(
		"SCHED_INVALID_CONTRACT_FRACTION",
		"contract fraction must be greater than 0",
		http.StatusBadRequest,
	)

	ErrNegativeExtraStaff = NewAppError(
		"SCHED_NEGATIVE_EXTRA_STAFF",
		"heavy day extra_staff must not be negative",
		http.StatusBadRequest,
	)
)

// ============================================================================
// Solver Outcome Errors
// ============================================================================

var (
	// ErrModelInfeasible describes an INFEASIBLE outcome. The pipeline
	// reports INFEASIBLE as a plain status in the response and does not
	// return this error; infeasibility is never retried automatically.
	ErrModelInfeasible = NewAppError(
		"SCHED_MODEL_INFEASIBLE",
		"no feasible schedule satisfies the hard constraints",
		http.StatusUnprocessableEntity,
	)

	// ErrSolverTimeout describes an UNKNOWN outcome (time limit expired
	// before any feasible solution was found). The pipeline reports UNKNOWN
	// as a plain status in the response and does not return this error.
	ErrSolverTimeout = NewAppError(
		"SCHED_SOLVER_TIMEOUT",
		"solver exceeded its time limit without a feasible solution",
		http.StatusRequestTimeout,
	)

	// ErrModelInvalid is returned when the model cannot be built into a
	// solver proto at all; a MODEL_INVALID solve response is reported as a
	// plain status instead.
	ErrModelInvalid = NewAppError(
		"SCHED_MODEL_INVALID",
		"the constructed model was rejected by the solver",
		http.StatusInternalServerError,
	)
)

// ============================================================================
// Internal Errors
// ============================================================================

var (
	ErrInternal = NewAppError(
		"SCHED_INTERNAL_ERROR",
		"an internal scheduler error occurred",
		http.StatusInternalServerError,
	)
)

// ============================================================================
// Helper Functions
// ============================================================================

// HTTPStatus returns the HTTP status hint for an error, or 500 if err is not
// an *AppError.
func HTTPStatus(err error) int {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// Code returns the machine-readable error code for an error.
func Code(err error) string {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}
