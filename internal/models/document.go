package models

import (
	"time"

	"gorm.io/gorm"
)

// DocumentType enumerates the document kinds accepted at intake.
type DocumentType string

const (
	DocumentTypePassport          DocumentType = "PASSPORT"
	DocumentTypeDegreeCertificate DocumentType = "DEGREE_CERTIFICATE"
	DocumentTypeLicense           DocumentType = "LICENSE"
	DocumentTypeTranscript        DocumentType = "TRANSCRIPT"
	DocumentTypeExperienceLetter  DocumentType = "EXPERIENCE_LETTER"
	DocumentTypePhoto             DocumentType = "PHOTO"
)

// Valid reports whether the type is a member of the enumeration.
func (t DocumentType) Valid() bool {
	switch t {
	case DocumentTypePassport, DocumentTypeDegreeCertificate,
		DocumentTypeLicense, DocumentTypeTranscript,
		DocumentTypeExperienceLetter, DocumentTypePhoto:
		return true
	}
	return false
}

// Document verification statuses, independent of the owning application's
// own lifecycle status.
const (
	VerificationPending  = "PENDING"
	VerificationVerified = "VERIFIED"
	VerificationRejected = "REJECTED"
)

// Document is a file reference scoped to a user and optionally an
// application. VerifiedBy and VerifiedAt are only ever written together
// with VerificationStatus.
type Document struct {
	gorm.Model
	UserID             uint         `gorm:"index;not null" json:"userId"`
	ApplicationID      *uint        `gorm:"index" json:"applicationId,omitempty"`
	Type               DocumentType `gorm:"type:varchar(30);not null" json:"type"`
	FileName           string       `gorm:"not null" json:"fileName"`
	FileSize           int64        `gorm:"not null" json:"fileSize"`
	MimeType           string       `gorm:"not null" json:"mimeType"`
	StorageKey         string       `gorm:"uniqueIndex;not null" json:"storageKey"`
	VerificationStatus string       `gorm:"type:varchar(10);default:'PENDING'" json:"verificationStatus"`
	VerifiedBy         *uint        `json:"verifiedBy,omitempty"`
	VerifiedAt         *time.Time   `json:"verifiedAt,omitempty"`
}
