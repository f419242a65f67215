/*
Package scheduler - Pipeline Orchestrator

==============================================================================
FILE: internal/scheduler/scheduler.go
==============================================================================

DESCRIPTION:
    Ties the seven pipeline stages into the single entrypoint an external
    caller (CLI, or a future HTTP transport) invokes once per month to
    schedule: Normalizer -> Paid-Hours -> Demand -> Templates ->
    Model Builder -> Solver -> Projector.

USER PERSPECTIVE:
    - One call, one correlation ID, one log trail per solve (each
      request is self-contained and owns its model instance)

DEVELOPER GUIDELINES:
    OK to modify: add new pipeline stages before the solver call
    CAUTION: stage order is meaningful - templates must be generated after
        normalization (day open/close hours) and before the model builder
       
    DO NOT modify: solver timeout/model-invalid handling - both are
        returned, not treated as orchestration failures; only
        normalization and internal errors abort the pipeline

==============================================================================
*/
package scheduler

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"shiftsched/internal/config"
	"shiftsched/internal/demand"
	"shiftsched/internal/errors"
	"shiftsched/internal/logger"
	"shiftsched/internal/modelbuilder"
	"shiftsched/internal/models"
	"shiftsched/internal/normalizer"
	"shiftsched/internal/paidhours"
	"shiftsched/internal/projector"
	"shiftsched/internal/solver"
	"shiftsched/internal/templates"
)

// Scheduler runs the full scheduling pipeline for one month at a time.
type Scheduler struct {
	log *logrus.Logger
	cfg *config.AppConfig
}

// New constructs a Scheduler from application configuration.
func New(log *logrus.Logger, cfg *config.AppConfig) *Scheduler {
	return &Scheduler{log: log, cfg: cfg}
}

// Solve runs the full scheduling pipeline over req and returns the output
// record.
func (s *Scheduler) Solve(ctx context.Context, req *models.ScheduleRequest) (*models.ScheduleResponse, error) {
	runID := uuid.NewString()
	entry := logger.ForRun(s.log, runID)
	entry.Info("solve started")

	input, err := normalizeAndLog(entry, req)
	if err != nil {
		entry.WithError(err).Error("normalization failed")
		return nil, err
	}

	paidByEmployee := paidhours.CalculateAll(input)

	demandResult := demand.Estimate(input, input.Config.BusyWeekends)
	if len(demandResult.Shortfalls) > 0 {
		entry.WithField("shortfalls", len(demandResult.Shortfalls)).Warn("capacity shortfalls recorded")
	}

	dayTemplates := make(map[int][]models.Template, len(input.Days))
	for day, info := range input.Days {
		if !info.Class.IsOpen() {
			continue
		}
		dayTemplates[day] = templates.Generate(info.OpenTime, info.CloseTime)
	}

	built, err := modelbuilder.Build(input, demandResult, dayTemplates, paidByEmployee)
	if err != nil {
		entry.WithError(err).Error("model build failed")
		return nil, errors.Wrap(err, errors.ErrInternal)
	}

	solveCfg := solver.Config{
		TimeLimitSeconds: float64(s.cfg.SolverTimeLimitSeconds),
		RelativeGap:      s.cfg.SolverRelativeGap,
	}
	solved, err := solver.Solve(ctx, built.CPModel, solveCfg)
	if err != nil {
		entry.WithError(err).Error("solve failed")
		return nil, err
	}
	entry.WithField("status", solved.Status.String()).Info("solve finished")

	resp := projector.Project(input, built, solved, demandResult)
	resp.RunID = runID
	return resp, nil
}

func normalizeAndLog(entry *logrus.Entry, req *models.ScheduleRequest) (*models.NormalizedInput, error) {
	input, err := normalizer.Normalize(req)
	if err != nil {
		return nil, err
	}
	entry.WithFields(logrus.Fields{
		"year":      input.Year,
		"month":     input.Month,
		"days":      input.DaysInMonth,
		"employees": len(input.Employees),
	}).Info("input normalized")
	return input, nil
}
