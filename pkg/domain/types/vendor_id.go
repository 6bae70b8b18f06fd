package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// VendorID represents a unique identifier for a vendor record. It is opaque
// and never reassigned after creation.
type VendorID string

// Validate checks if the VendorID is valid
func (v VendorID) Validate() error {
	if v == "" {
		return goerr.New("vendor ID cannot be empty")
	}
	return nil
}

// String returns the string representation of VendorID
func (v VendorID) String() string {
	return string(v)
}
