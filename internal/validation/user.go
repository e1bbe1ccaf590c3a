package validation

import "credvia/internal/models"

// UserRegistration validates a registration request.
func (v *Validator) UserRegistration(input *models.CreateUserInput) {
	v.Required("email", input.Email)
	v.Email("email", input.Email)
	v.Required("firstName", input.FirstName)
	v.Required("lastName", input.LastName)
	v.Phone("phone", input.Phone)
	v.Required("password", input.Password)
	v.MinLength("password", input.Password, 8)
	v.Check(input.ConsentGiven, "consentGiven", "consent is required to register")
}

// UserStatus validates an admin account-status change.
func (v *Validator) UserStatus(status string) {
	v.OneOf("status", status,
		models.UserStatusActive,
		models.UserStatusSuspended,
		models.UserStatusDeactivated,
	)
}
