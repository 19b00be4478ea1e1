package errors

import "errors"

// Sentinel errors for handlers to map to HTTP status. Messages are part of
// the API contract and are returned verbatim in the error envelope.
var (
	// Validation (400)
	ErrNameCodeRequired  = errors.New("name and code are required")
	ErrProjectIDRequired = errors.New("projectId is required")
	ErrFullNameRequired  = errors.New("fullName is required")
	ErrAmountNotPositive = errors.New("amount must be > 0")
	ErrTitleRequired     = errors.New("title is required")

	// Not found (404)
	ErrProjectNotFound            = errors.New("Project not found")
	ErrProjectOrCaregiverNotFound = errors.New("Project or Caregiver not found")

	// Forbidden (403)
	ErrProjectInactive = errors.New("Project is inactive")

	// Conflict (409)
	ErrProjectCodeExists = errors.New("Project code already exists")
)

// IsValidation reports whether err is one of the missing/malformed-field errors.
func IsValidation(err error) bool {
	return errors.Is(err, ErrNameCodeRequired) ||
		errors.Is(err, ErrProjectIDRequired) ||
		errors.Is(err, ErrFullNameRequired) ||
		errors.Is(err, ErrAmountNotPositive) ||
		errors.Is(err, ErrTitleRequired)
}

// IsNotFound reports whether err is a missing-reference error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProjectNotFound) || errors.Is(err, ErrProjectOrCaregiverNotFound)
}
