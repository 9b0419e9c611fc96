// Package businessflow contains the core business logic and use cases for page configuration and click analytics
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Page-related errors
	ErrPageNotFound      = errors.New("page not found")
	ErrPageAccessDenied  = errors.New("page access denied")
	ErrSlugAlreadyExists = errors.New("slug already exists")
	ErrSlugRequired      = errors.New("slug is required")

	// Page link errors
	ErrPageLinkNotFound  = errors.New("page link not found")
	ErrInvalidPresetURL  = errors.New("url does not match the link preset")
	ErrUnknownLinkPreset = errors.New("unknown link preset")

	// Click analytics errors
	ErrItemIDRequired    = errors.New("item id is required")
	ErrInvalidClickRange = errors.New("from must not be after to")
	ErrInvalidLimit      = errors.New("limit must be between 1 and 1000")
	ErrTooManyItems      = errors.New("too many item ids requested")
	ErrClickStoreFailed  = errors.New("click store operation failed")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewBusinessErrorf(code, message string, err error, args ...any) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: fmt.Sprintf(message, args...),
		Err:     err,
	}
}

func IsPageNotFound(err error) bool {
	return errors.Is(err, ErrPageNotFound)
}

func IsPageAccessDenied(err error) bool {
	return errors.Is(err, ErrPageAccessDenied)
}

func IsSlugAlreadyExists(err error) bool {
	return errors.Is(err, ErrSlugAlreadyExists)
}

func IsPageLinkNotFound(err error) bool {
	return errors.Is(err, ErrPageLinkNotFound)
}

func IsInvalidPresetURL(err error) bool {
	return errors.Is(err, ErrInvalidPresetURL)
}

func IsUnknownLinkPreset(err error) bool {
	return errors.Is(err, ErrUnknownLinkPreset)
}

func IsClickStoreFailed(err error) bool {
	return errors.Is(err, ErrClickStoreFailed)
}

// IsValidationError reports whether err was caused by caller input rather than infrastructure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrSlugRequired) ||
		errors.Is(err, ErrItemIDRequired) ||
		errors.Is(err, ErrInvalidClickRange) ||
		errors.Is(err, ErrInvalidLimit) ||
		errors.Is(err, ErrTooManyItems) ||
		errors.Is(err, ErrInvalidPresetURL) ||
		errors.Is(err, ErrUnknownLinkPreset)
}
