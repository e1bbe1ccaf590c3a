// Package errors defines the domain error taxonomy. Every error that can
// reach the REST boundary carries a stable machine code and the HTTP status
// it maps to; handlers fold anything else into a generic 500.
package errors

import (
	"errors"
	"fmt"
)

// DomainError is a business-rule failure with a stable wire code.
type DomainError struct {
	Code    string
	Message string
	Status  int
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithMessage returns a copy of the error with a more specific message,
// keeping the code and status.
func (e *DomainError) WithMessage(format string, args ...interface{}) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: fmt.Sprintf(format, args...),
		Status:  e.Status,
	}
}

// AsDomain extracts a DomainError from err's chain, if any.
func AsDomain(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
