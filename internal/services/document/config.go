package document

import (
	domainerrors "credvia/internal/errors"
	"credvia/internal/models"
)

const defaultMaxFileSize = 10 << 20 // 10 MiB

var pdfAndImages = []string{"application/pdf", "image/jpeg", "image/png"}

// TypeLimit bounds what intake accepts for one document type.
type TypeLimit struct {
	MaxSize      int64
	AllowedMimes []string
}

// Config is the intake policy: per-type size and mime limits.
type Config struct {
	Limits map[models.DocumentType]TypeLimit
}

func (c *Config) applyDefaults() {
	if c.Limits == nil {
		c.Limits = map[models.DocumentType]TypeLimit{
			models.DocumentTypePassport:          {MaxSize: defaultMaxFileSize, AllowedMimes: pdfAndImages},
			models.DocumentTypeDegreeCertificate: {MaxSize: defaultMaxFileSize, AllowedMimes: pdfAndImages},
			models.DocumentTypeLicense:           {MaxSize: defaultMaxFileSize, AllowedMimes: pdfAndImages},
			models.DocumentTypeTranscript:        {MaxSize: defaultMaxFileSize, AllowedMimes: pdfAndImages},
			models.DocumentTypeExperienceLetter:  {MaxSize: defaultMaxFileSize, AllowedMimes: []string{"application/pdf"}},
			models.DocumentTypePhoto:             {MaxSize: 2 << 20, AllowedMimes: []string{"image/jpeg", "image/png"}},
		}
	}
}

// CheckFile validates an upload against the type's limit.
func (c *Config) CheckFile(t models.DocumentType, size int64, mimeType string) error {
	limit, ok := c.Limits[t]
	if !ok {
		return domainerrors.ErrValidation.WithMessage("type: no intake policy for %s", t)
	}
	if size > limit.MaxSize {
		return domainerrors.ErrValidation.WithMessage(
			"fileSize: exceeds the %d byte limit for %s", limit.MaxSize, t)
	}
	for _, m := range limit.AllowedMimes {
		if m == mimeType {
			return nil
		}
	}
	return domainerrors.ErrValidation.WithMessage("mimeType: %s is not accepted for %s", mimeType, t)
}
