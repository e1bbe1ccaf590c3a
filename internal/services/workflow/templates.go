package workflow

import (
	"time"

	"credvia/internal/models"
)

// stepTemplates fixes the processing pipeline per application type. Steps
// are instantiated alongside the application and never reshaped afterwards.
var stepTemplates = map[models.ApplicationType][]string{
	models.ApplicationTypeDataflow: {
		"Document collection",
		"Primary source verification",
		"Report dispatch",
	},
	models.ApplicationTypeLicensing: {
		"Document collection",
		"Primary source verification",
		"Authority submission",
		"License issuance",
	},
	models.ApplicationTypeExamBooking: {
		"Eligibility check",
		"Exam booking",
	},
	models.ApplicationTypePSV: {
		"Primary source verification",
	},
}

// InstantiateSteps builds the workflow steps for a new application of the
// given type. When a consultant is pre-assigned, every step carries the
// assignment and the first step starts in_progress immediately.
func InstantiateSteps(t models.ApplicationType, assignee *uint) []models.WorkflowStep {
	names := stepTemplates[t]
	steps := make([]models.WorkflowStep, len(names))
	for i, name := range names {
		steps[i] = models.WorkflowStep{
			StepOrder:  i + 1,
			Name:       name,
			Status:     models.StepStatusPending,
			AssignedTo: assignee,
		}
	}
	if assignee != nil && len(steps) > 0 {
		now := time.Now()
		steps[0].Status = models.StepStatusInProgress
		steps[0].StartedAt = &now
	}
	return steps
}

// StateSnapshot derives the denormalized workflowState cache from the
// authoritative step rows. It is recomputed inside every transaction that
// touches either side, so the two can never drift.
func StateSnapshot(steps []models.WorkflowStep) models.JSON {
	completed := 0
	current := ""
	currentOrder := 0
	for _, s := range steps {
		switch s.Status {
		case models.StepStatusCompleted:
			completed++
		case models.StepStatusInProgress:
			if current == "" {
				current = s.Name
				currentOrder = s.StepOrder
			}
		}
	}
	if current == "" {
		for _, s := range steps {
			if s.Status == models.StepStatusPending {
				current = s.Name
				currentOrder = s.StepOrder
				break
			}
		}
	}
	return models.JSON{
		"totalSteps":     len(steps),
		"completedSteps": completed,
		"currentStep":    current,
		"currentOrder":   currentOrder,
	}
}
