package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/JoakoBallesteros/workforce-staffing/internal/model"
	"github.com/JoakoBallesteros/workforce-staffing/internal/repository"
)

// SimulationRunService records one audit-trail entry per engine invocation.
// It never persists per-row results (those stay a download-only artifact)
// — only the run's shape and outcome.
type SimulationRunService struct {
	repo *repository.SimulationRunRepository
}

// NewSimulationRunService creates a new simulation run service.
func NewSimulationRunService(repo *repository.SimulationRunRepository) *SimulationRunService {
	return &SimulationRunService{repo: repo}
}

// RunOutcome describes one completed (or failed) engine invocation to be
// recorded.
type RunOutcome struct {
	ServiceKey    model.ServiceKey
	Period        model.Period
	Seed          int64
	RequestedBy   *uuid.UUID
	RowCount      int
	MovementCount int
	ShortageCount int
	Duration      time.Duration
	Err           error
	Metadata      any
}

// RecordRun writes one SimulationRun row and returns its id. Errors are
// intentionally swallowed so audit logging never blocks the response to the
// caller; a swallowed failure returns uuid.Nil.
func (s *SimulationRunService) RecordRun(ctx context.Context, out RunOutcome) uuid.UUID {
	run := &model.SimulationRun{
		ServiceKey:     string(out.ServiceKey),
		Period:         string(out.Period),
		Seed:           out.Seed,
		Status:         model.RunStatusSucceeded,
		RequestedBy:    out.RequestedBy,
		RowCount:       out.RowCount,
		MovementCount:  out.MovementCount,
		ShortageCount:  out.ShortageCount,
		DurationMillis: int(out.Duration.Milliseconds()),
		FinishedAt:     time.Now(),
	}

	if out.Err != nil {
		run.Status = model.RunStatusFailed
		msg := out.Err.Error()
		run.ErrorMessage = &msg
	}

	if out.Metadata != nil {
		if data, err := json.Marshal(out.Metadata); err == nil {
			run.Metadata = data
		}
	}

	if err := s.repo.Create(ctx, run); err != nil {
		return uuid.Nil
	}
	return run.ID
}

// List retrieves simulation runs with filtering.
func (s *SimulationRunService) List(ctx context.Context, filter repository.SimulationRunFilter) ([]model.SimulationRun, int64, error) {
	return s.repo.List(ctx, filter)
}

// GetByID retrieves a single simulation run by ID.
func (s *SimulationRunService) GetByID(ctx context.Context, id uuid.UUID) (*model.SimulationRun, error) {
	return s.repo.GetByID(ctx, id)
}
