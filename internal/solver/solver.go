/*
Package solver - Solver Driver

==============================================================================
FILE: internal/solver/solver.go
==============================================================================

DESCRIPTION:
    Component 6 of the scheduling pipeline: invokes the
    CP-SAT back-end with a wall-clock time limit and a relative-gap early
    stop, collects status, objective, and bound.

USER PERSPECTIVE:
    - The only blocking point of a solve; bounded by the
      configured time limit, no mid-solve cancellation contract required

DEVELOPER GUIDELINES:
    OK to modify: add new SatParameters tuning knobs
    CAUTION: errors.ErrModelInvalid is reserved for a model that fails to
        build at all; a MODEL_INVALID solve response is a plain status
    DO NOT modify: INFEASIBLE/UNKNOWN/MODEL_INVALID with no feasible
        solution map to an empty schedule via the projector, not to an
        error; shortfalls still surface

==============================================================================
*/
package solver

import (
	"context"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	sppb "github.com/google/or-tools/ortools/sat/proto/satparameters"

	"shiftsched/internal/errors"
	"shiftsched/internal/models/enums"
)

// Config tunes the solver call.
type Config struct {
	TimeLimitSeconds float64
	RelativeGap      float64
}

// Result is the outcome of one solve.
type Result struct {
	Status          enums.SolverStatus
	WallTimeSeconds float64
	ObjectiveValue  float64
	BestBound       float64
	Response        *cpmodel.CpSolverResponse
}

// Solve invokes CP-SAT over model with the given configuration.
// ctx is accepted for symmetry with the rest of the pipeline's blocking
// calls; the underlying solver call itself is not context-cancellable.
func Solve(ctx context.Context, model *cpmodel.CpModelBuilder, cfg Config) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), errors.ErrInternal)
	default:
	}

	proto, err := model.Model()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrModelInvalid)
	}

	params := &sppb.SatParameters{}
	if cfg.TimeLimitSeconds > 0 {
		params.MaxTimeInSeconds = &cfg.TimeLimitSeconds
	}
	if cfg.RelativeGap > 0 {
		params.RelativeGapLimit = &cfg.RelativeGap
	}

	response, err := cpmodel.SolveCpModelWithParameters(proto, params)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal)
	}

	// INFEASIBLE, UNKNOWN, and MODEL_INVALID are all surfaced as plain
	// statuses, never raised as errors; the projector maps any unsolved
	// status to an empty schedule.
	status := mapStatus(response.GetStatus().String())

	return &Result{
		Status:          status,
		WallTimeSeconds: response.GetWallTime(),
		ObjectiveValue:  response.GetObjectiveValue(),
		BestBound:       response.GetBestObjectiveBound(),
		Response:        response,
	}, nil
}

// mapStatus translates the solver's status name into a models/enums
// SolverStatus. Takes the already-stringified status so the
// mapping is testable without constructing the solver's native enum type.
func mapStatus(status string) enums.SolverStatus {
	switch status {
	case "OPTIMAL":
		return enums.StatusOptimal
	case "FEASIBLE":
		return enums.StatusFeasible
	case "INFEASIBLE":
		return enums.StatusInfeasible
	case "MODEL_INVALID":
		return enums.StatusModelInvalid
	default:
		return enums.StatusUnknown
	}
}
