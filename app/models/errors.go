package models

import "errors"

// Domain errors shared by services and repositories. Controllers map these
// onto HTTP status codes.
var (
	ErrUnauthenticated   = errors.New("not authenticated")
	ErrForbidden         = errors.New("insufficient privileges")
	ErrNotFound          = errors.New("record not found")
	ErrInvalidStep       = errors.New("unknown onboarding step")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrDuplicateCode     = errors.New("coupon code already exists")
)
