package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for the vendor domain. Collection key errors live here so
// callers can match them without depending on a store implementation.
var (
	ErrValidation      = goerr.New("validation failed")
	ErrEmptyCollection = goerr.New("empty vendor collection")

	ErrNotFound    = goerr.New("record not found")
	ErrDuplicateID = goerr.New("duplicate record ID")
	ErrIDMismatch  = goerr.New("record ID does not match update key")
)

// Context keys for error values
const (
	VendorIDKey = "vendor_id"
	FieldKey    = "field"
	ValueKey    = "value"
)
