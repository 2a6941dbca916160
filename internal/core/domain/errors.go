package domain

import "errors"

// Access-control errors. ErrUserNotFound must never leak through an
// authentication path: the access layer surfaces it as ErrInvalidCredential
// so responses cannot be used for account enumeration.
var (
	ErrInvalidCredential = errors.New("invalid credential")
	ErrInactiveUser      = errors.New("user account disabled")
	ErrForbidden         = errors.New("access forbidden")
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserExists          = errors.New("user already exists")
	ErrProfileNotFound     = errors.New("profile not found")
	ErrCompanyNotFound     = errors.New("company not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrCVNotFound          = errors.New("cv document not found")
	ErrMessageNotFound     = errors.New("message not found")
	ErrNotifyNotFound      = errors.New("notification not found")
	ErrAssessmentNotFound  = errors.New("match assessment not found")
)

var (
	ErrDuplicateApplication = errors.New("application already exists")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrJobNotOpen           = errors.New("job is not open for applications")
)
