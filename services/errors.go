package services

import "errors"

// Sentinel errors shared by the service layer. Controllers map these onto
// HTTP statuses; see utils.RespondWithError call sites.
var (
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = errors.New("already exists")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation failed")
)
