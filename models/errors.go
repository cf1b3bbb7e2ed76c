// File: /models/errors.go
package models

import "errors"

// Sentinel errors returned by services and repositories. Controllers map
// them onto the HTTP status contract: 400, 401, 404, 409. Anything else
// coming out of the store is a storage failure and surfaces as a 500.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)
