package models

import (
	"time"

	"gorm.io/gorm"
)

// ApplicationType enumerates the credentialing services offered.
type ApplicationType string

const (
	ApplicationTypeDataflow    ApplicationType = "DATAFLOW"
	ApplicationTypeLicensing   ApplicationType = "LICENSING"
	ApplicationTypeExamBooking ApplicationType = "EXAM_BOOKING"
	ApplicationTypePSV         ApplicationType = "PSV"
)

// Valid reports whether the type is a member of the enumeration.
func (t ApplicationType) Valid() bool {
	switch t {
	case ApplicationTypeDataflow, ApplicationTypeLicensing,
		ApplicationTypeExamBooking, ApplicationTypePSV:
		return true
	}
	return false
}

// ApplicationStatus is the lifecycle status of an application. Transitions
// are owned by the workflow service; nothing else writes this field.
type ApplicationStatus string

const (
	ApplicationStatusDraft                ApplicationStatus = "DRAFT"
	ApplicationStatusSubmitted            ApplicationStatus = "SUBMITTED"
	ApplicationStatusInReview             ApplicationStatus = "IN_REVIEW"
	ApplicationStatusApproved             ApplicationStatus = "APPROVED"
	ApplicationStatusRejected             ApplicationStatus = "REJECTED"
	ApplicationStatusRequiresResubmission ApplicationStatus = "REQUIRES_RESUBMISSION"
)

// Valid reports whether the status is a member of the enumeration.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusDraft, ApplicationStatusSubmitted,
		ApplicationStatusInReview, ApplicationStatusApproved,
		ApplicationStatusRejected, ApplicationStatusRequiresResubmission:
		return true
	}
	return false
}

// Terminal reports whether no further transitions may leave this status.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected
}

// Application priorities.
const (
	PriorityLow    = "LOW"
	PriorityMedium = "MEDIUM"
	PriorityHigh   = "HIGH"
)

// ValidPriority reports whether p is a member of the priority enumeration.
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Application is one customer request for a credentialing service. It is
// never deleted; terminal statuses archive it.
type Application struct {
	gorm.Model
	ReferenceNumber  string            `gorm:"uniqueIndex;not null" json:"referenceNumber"`
	UserID           uint              `gorm:"index;not null" json:"userId"`
	Type             ApplicationType   `gorm:"type:varchar(20);not null" json:"type"`
	Status           ApplicationStatus `gorm:"type:varchar(30);default:'DRAFT'" json:"status"`
	Priority         string            `gorm:"type:varchar(10);default:'MEDIUM'" json:"priority"`
	TargetCountry    string            `gorm:"not null" json:"targetCountry"`
	TargetProfession string            `gorm:"not null" json:"targetProfession"`
	PersonalInfo     JSON              `gorm:"type:jsonb" json:"personalInfo"`
	AdditionalData   JSON              `gorm:"type:jsonb" json:"additionalData,omitempty"`
	WorkflowState    JSON              `gorm:"type:jsonb" json:"workflowState,omitempty"`
	SubmittedAt      *time.Time        `json:"submittedAt,omitempty"`
	DecidedAt        *time.Time        `json:"decidedAt,omitempty"`

	WorkflowSteps []WorkflowStep `gorm:"foreignKey:ApplicationID" json:"workflowSteps,omitempty"`
	Documents     []Document     `gorm:"foreignKey:ApplicationID" json:"documents,omitempty"`
	Payments      []Payment      `gorm:"foreignKey:ApplicationID" json:"payments,omitempty"`
}
