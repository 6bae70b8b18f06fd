package usecase

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for use case layer
var (
	ErrInvalidTransition    = goerr.New("invalid status transition")
	ErrAssessmentInProgress = goerr.New("assessment already in progress for vendor")
	ErrAssessorNotAvailable = goerr.New("assessment provider is not configured")
)

// Context keys for error values
const (
	VendorIDKey = "vendor_id"
	StatusKey   = "status"
)
