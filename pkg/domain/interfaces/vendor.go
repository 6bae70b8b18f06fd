package interfaces

import (
	"context"

	"github.com/qa-lab/vendorscope/pkg/domain/model"
	"github.com/qa-lab/vendorscope/pkg/domain/types"
)

type VendorRepository interface {
	// Create appends a new vendor record. Fails if the ID is already present.
	Create(ctx context.Context, vendor *model.Vendor) (*model.Vendor, error)

	// GetByID retrieves a vendor record by ID
	GetByID(ctx context.Context, id types.VendorID) (*model.Vendor, error)

	// List retrieves all vendor records in insertion order
	List(ctx context.Context) ([]*model.Vendor, error)

	// ListByStatus retrieves vendor records matching the status, in insertion order
	ListByStatus(ctx context.Context, status types.VendorStatus) ([]*model.Vendor, error)

	// ListByTier retrieves vendor records matching the risk tier, in insertion order
	ListByTier(ctx context.Context, tier types.RiskTier) ([]*model.Vendor, error)

	// UpdateByID replaces the record whose ID matches. The record's ID must
	// equal id; changing identity through an update is a programmer error.
	UpdateByID(ctx context.Context, id types.VendorID, vendor *model.Vendor) (*model.Vendor, error)

	// Delete removes a vendor record by ID
	Delete(ctx context.Context, id types.VendorID) error
}
