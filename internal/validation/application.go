package validation

import "credvia/internal/models"

// Application validates an application creation request.
func (v *Validator) Application(input *models.CreateApplicationInput) {
	v.Check(input.Type.Valid(), "type", "must be a valid application type")
	if input.Priority != "" {
		v.Check(models.ValidPriority(input.Priority), "priority", "must be LOW, MEDIUM or HIGH")
	}
	v.Required("targetCountry", input.TargetCountry)
	v.Required("targetProfession", input.TargetProfession)
	v.Check(input.PersonalInfo != nil, "personalInfo", "must not be empty")
}

// ApplicationUpdate validates a partial application update.
func (v *Validator) ApplicationUpdate(input *models.UpdateApplicationInput) {
	if input.Priority != nil {
		v.Check(models.ValidPriority(*input.Priority), "priority", "must be LOW, MEDIUM or HIGH")
	}
	if input.TargetCountry != nil {
		v.Required("targetCountry", *input.TargetCountry)
	}
	if input.TargetProfession != nil {
		v.Required("targetProfession", *input.TargetProfession)
	}
}

// ApplicationStatus validates a status-transition request body. Transition
// legality is the workflow service's concern; only enum membership is
// checked here.
func (v *Validator) ApplicationStatus(status models.ApplicationStatus) {
	v.Check(status.Valid(), "status", "must be a valid application status")
}
