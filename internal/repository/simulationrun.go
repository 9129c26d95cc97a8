package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JoakoBallesteros/workforce-staffing/internal/model"
)

var ErrSimulationRunNotFound = errors.New("simulation run not found")

// SimulationRunFilter defines filter criteria for listing simulation runs.
type SimulationRunFilter struct {
	ServiceKey *string
	Status     *model.RunStatus
	From       *time.Time
	To         *time.Time
	Limit      int
	Cursor     *uuid.UUID
}

// SimulationRunRepository handles simulation run audit-trail data access.
type SimulationRunRepository struct {
	db *DB
}

// NewSimulationRunRepository creates a new simulation run repository.
func NewSimulationRunRepository(db *DB) *SimulationRunRepository {
	return &SimulationRunRepository{db: db}
}

// Create persists a new simulation run record.
func (r *SimulationRunRepository) Create(ctx context.Context, run *model.SimulationRun) error {
	return r.db.GORM.WithContext(ctx).Create(run).Error
}

// GetByID retrieves a simulation run by ID.
func (r *SimulationRunRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.SimulationRun, error) {
	var run model.SimulationRun
	err := r.db.GORM.WithContext(ctx).First(&run, "id = ?", id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSimulationRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get simulation run: %w", err)
	}
	return &run, nil
}

// List retrieves simulation runs with filtering and pagination, newest first.
func (r *SimulationRunRepository) List(ctx context.Context, filter SimulationRunFilter) ([]model.SimulationRun, int64, error) {
	var runs []model.SimulationRun
	var total int64

	query := r.db.GORM.WithContext(ctx).Model(&model.SimulationRun{})

	if filter.ServiceKey != nil {
		query = query.Where("service_key = ?", *filter.ServiceKey)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.From != nil {
		query = query.Where("finished_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("finished_at <= ?", *filter.To)
	}
	if filter.Cursor != nil {
		query = query.Where("id > ?", *filter.Cursor)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count simulation runs: %w", err)
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	err := query.Order("finished_at DESC").Find(&runs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list simulation runs: %w", err)
	}
	return runs, total, nil
}
