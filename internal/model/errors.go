package model

import "errors"

// Error kinds shared by the store, the services and the API.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrStorage    = errors.New("storage failure")
)
