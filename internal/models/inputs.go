package models

// CreateUserInput is the registration request body.
type CreateUserInput struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	ConsentGiven bool   `json:"consentGiven"`
}

// LoginInput is the login request body.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateApplicationInput is the application creation request body.
type CreateApplicationInput struct {
	Type             ApplicationType `json:"type"`
	Priority         string          `json:"priority"`
	TargetCountry    string          `json:"targetCountry"`
	TargetProfession string          `json:"targetProfession"`
	PersonalInfo     JSON            `json:"personalInfo"`
	AdditionalData   JSON            `json:"additionalData"`
}

// UpdateApplicationInput is the partial-update request body. Nil fields are
// left untouched.
type UpdateApplicationInput struct {
	Priority         *string `json:"priority"`
	TargetCountry    *string `json:"targetCountry"`
	TargetProfession *string `json:"targetProfession"`
	PersonalInfo     JSON    `json:"personalInfo"`
	AdditionalData   JSON    `json:"additionalData"`
}

// UpdateStatusInput is the status-transition request body.
type UpdateStatusInput struct {
	Status ApplicationStatus `json:"status"`
}

// AttachDocumentInput carries upload metadata; the binary itself lives in
// the external object store.
type AttachDocumentInput struct {
	ApplicationID *uint        `json:"applicationId"`
	Type          DocumentType `json:"type"`
	FileName      string       `json:"fileName"`
	FileSize      int64        `json:"fileSize"`
	MimeType      string       `json:"mimeType"`
}

// ReviewDocumentInput is the document review request body.
type ReviewDocumentInput struct {
	Status string `json:"status"`
}

// UpdateUserStatusInput is the admin account-status request body.
type UpdateUserStatusInput struct {
	Status string `json:"status"`
}

// UpdatePaymentInput records a gateway outcome against a payment.
type UpdatePaymentInput struct {
	Status      string `json:"status"`
	GatewayID   string `json:"gatewayId"`
	GatewayData JSON   `json:"gatewayData"`
}
