package models

import "gorm.io/gorm"

// Audit actions recorded against an application.
const (
	AuditActionStatusChange  = "STATUS_CHANGE"
	AuditActionStepCompleted = "STEP_COMPLETED"
)

// AuditEntry records who moved an application, from where to where. Entries
// are append-only and written in the same transaction as the state change
// they describe.
type AuditEntry struct {
	gorm.Model
	ApplicationID uint   `gorm:"index;not null" json:"applicationId"`
	ActorID       uint   `gorm:"not null" json:"actorId"`
	Action        string `gorm:"type:varchar(30);not null" json:"action"`
	FromStatus    string `json:"fromStatus,omitempty"`
	ToStatus      string `json:"toStatus,omitempty"`
	Detail        JSON   `gorm:"type:jsonb" json:"detail,omitempty"`
}
