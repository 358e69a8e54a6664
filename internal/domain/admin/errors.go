package admin

import "errors"

// Admin domain errors
var (
	ErrAdminNotFound = errors.New("admin not found")
)
