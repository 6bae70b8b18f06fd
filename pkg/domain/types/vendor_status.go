package types

import "fmt"

// VendorStatus represents the QA approval status of a vendor
type VendorStatus string

const (
	VendorStatusPending  VendorStatus = "PENDING"
	VendorStatusApproved VendorStatus = "APPROVED"
	VendorStatusRejected VendorStatus = "REJECTED"
	VendorStatusOnHold   VendorStatus = "ON_HOLD"
)

// AllVendorStatuses returns all valid vendor statuses
func AllVendorStatuses() []VendorStatus {
	return []VendorStatus{
		VendorStatusPending,
		VendorStatusApproved,
		VendorStatusRejected,
		VendorStatusOnHold,
	}
}

// IsValid checks if the vendor status is valid
func (s VendorStatus) IsValid() bool {
	switch s {
	case VendorStatusPending,
		VendorStatusApproved,
		VendorStatusRejected,
		VendorStatusOnHold:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed from the status.
// Approved and Rejected are terminal; reinstatement is not supported.
func (s VendorStatus) IsTerminal() bool {
	return s == VendorStatusApproved || s == VendorStatusRejected
}

// CanTransitionTo reports whether an explicit approval action may move the
// status from s to next. Pending may move to any decision state, OnHold may
// only be resolved to Approved or Rejected.
func (s VendorStatus) CanTransitionTo(next VendorStatus) bool {
	if !next.IsValid() {
		return false
	}

	switch s {
	case VendorStatusPending:
		return next == VendorStatusApproved || next == VendorStatusRejected || next == VendorStatusOnHold
	case VendorStatusOnHold:
		return next == VendorStatusApproved || next == VendorStatusRejected
	default:
		return false
	}
}

// String returns the string representation of the vendor status
func (s VendorStatus) String() string {
	return string(s)
}

// ParseVendorStatus parses a string into a VendorStatus
func ParseVendorStatus(s string) (VendorStatus, error) {
	status := VendorStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid vendor status: %s", s)
	}
	return status, nil
}
