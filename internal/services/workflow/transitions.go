package workflow

import "credvia/internal/models"

// transitions is the single source of truth for the application state
// machine. Any move not listed here fails closed.
//
//	DRAFT -> SUBMITTED -> IN_REVIEW -> {APPROVED, REJECTED, REQUIRES_RESUBMISSION}
//	REQUIRES_RESUBMISSION -> SUBMITTED
var transitions = map[models.ApplicationStatus][]models.ApplicationStatus{
	models.ApplicationStatusDraft: {
		models.ApplicationStatusSubmitted,
	},
	models.ApplicationStatusSubmitted: {
		models.ApplicationStatusInReview,
	},
	models.ApplicationStatusInReview: {
		models.ApplicationStatusApproved,
		models.ApplicationStatusRejected,
		models.ApplicationStatusRequiresResubmission,
	},
	models.ApplicationStatusRequiresResubmission: {
		models.ApplicationStatusSubmitted,
	},
}

// CanTransition reports whether the state machine allows moving from one
// status to another. Terminal statuses have no outgoing edges.
func CanTransition(from, to models.ApplicationStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// editable reports whether the applicant may still change application
// fields in this status.
func editable(status models.ApplicationStatus) bool {
	return status == models.ApplicationStatusDraft ||
		status == models.ApplicationStatusRequiresResubmission
}
