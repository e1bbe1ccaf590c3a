package validation

import "credvia/internal/models"

// Document validates document upload metadata. Size and mime limits are
// enforced per-type by the document service configuration.
func (v *Validator) Document(input *models.AttachDocumentInput) {
	v.Check(input.Type.Valid(), "type", "must be a valid document type")
	v.Required("fileName", input.FileName)
	v.Required("mimeType", input.MimeType)
	v.Check(input.FileSize > 0, "fileSize", "must be greater than zero")
}

// DocumentReview validates a review decision.
func (v *Validator) DocumentReview(status string) {
	v.OneOf("status", status,
		models.VerificationVerified,
		models.VerificationRejected,
	)
}
