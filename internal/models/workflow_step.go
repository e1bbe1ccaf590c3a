package models

import (
	"time"

	"gorm.io/gorm"
)

// Workflow step statuses. Lowercase by convention: these surface verbatim
// in the denormalized workflowState cache consumed by the portal UI.
const (
	StepStatusPending    = "pending"
	StepStatusInProgress = "in_progress"
	StepStatusCompleted  = "completed"
)

// WorkflowStep is one ordered unit of work within an application's
// processing pipeline. StepOrder is unique per application and a step may
// not complete while a lower-order sibling is incomplete.
type WorkflowStep struct {
	gorm.Model
	ApplicationID uint       `gorm:"index:idx_app_step,unique;not null" json:"applicationId"`
	StepOrder     int        `gorm:"index:idx_app_step,unique;not null" json:"stepOrder"`
	Name          string     `gorm:"not null" json:"name"`
	Status        string     `gorm:"type:varchar(20);default:'pending'" json:"status"`
	AssignedTo    *uint      `json:"assignedTo,omitempty"`
	StartedAt     *time.Time `json:"startedAt,omitempty"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}
