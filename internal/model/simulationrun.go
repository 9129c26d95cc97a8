package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RunStatus is the lifecycle state of a simulation run.
type RunStatus string

const (
	RunStatusSucceeded RunStatus = "succeeded"
	RunStatusFailed    RunStatus = "failed"
)

// SimulationRun is an audit trail entry for one engine invocation.
//
// It records only metadata about a run (who, which service/period/seed, how
// many rows, how long it took, whether it succeeded) — never the per-row
// assignment or movement data the run produced. Persisting those results
// across runs is an explicit Non-goal; the run log exists purely so
// operators can see what was run and when.
type SimulationRun struct {
	BaseModel

	ServiceKey string    `gorm:"type:varchar(40);not null;index" json:"service_key"`
	Period     string    `gorm:"type:varchar(10);not null" json:"period"`
	Seed       int64     `gorm:"not null" json:"seed"`
	Status     RunStatus `gorm:"type:varchar(20);not null" json:"status"`

	RequestedBy *uuid.UUID `gorm:"type:uuid" json:"requested_by,omitempty"`

	RowCount       int `gorm:"not null;default:0" json:"row_count"`
	MovementCount  int `gorm:"not null;default:0" json:"movement_count"`
	ShortageCount  int `gorm:"not null;default:0" json:"shortage_count"`
	DurationMillis int `gorm:"not null;default:0" json:"duration_millis"`

	ErrorMessage *string        `gorm:"type:text" json:"error_message,omitempty"`
	Metadata     datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`

	FinishedAt time.Time `gorm:"type:timestamptz;not null;default:now()" json:"finished_at"`
}

func (SimulationRun) TableName() string {
	return "simulation_runs"
}
