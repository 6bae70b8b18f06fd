package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/qa-lab/vendorscope/pkg/domain/model"
	"github.com/qa-lab/vendorscope/pkg/domain/types"
	"github.com/qa-lab/vendorscope/pkg/utils/logging"
)

// Approve moves a vendor to Approved
func (uc *VendorUseCase) Approve(ctx context.Context, id types.VendorID) (*model.Vendor, error) {
	return uc.transition(ctx, id, types.VendorStatusApproved)
}

// Reject moves a vendor to Rejected
func (uc *VendorUseCase) Reject(ctx context.Context, id types.VendorID) (*model.Vendor, error) {
	return uc.transition(ctx, id, types.VendorStatusRejected)
}

// Hold moves a vendor to OnHold pending further review
func (uc *VendorUseCase) Hold(ctx context.Context, id types.VendorID) (*model.Vendor, error) {
	return uc.transition(ctx, id, types.VendorStatusOnHold)
}

// transition applies an explicit approval action. Status moves only through
// here; the assessment flow never changes status even when a new assessment
// lowers the risk tier.
func (uc *VendorUseCase) transition(ctx context.Context, id types.VendorID, next types.VendorStatus) (*model.Vendor, error) {
	vendor, err := uc.repo.Vendor().GetByID(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get vendor", goerr.V(VendorIDKey, id))
	}

	if !vendor.Status.CanTransitionTo(next) {
		return nil, goerr.Wrap(ErrInvalidTransition, "status transition not allowed",
			goerr.V(VendorIDKey, id),
			goerr.V("from", vendor.Status),
			goerr.V("to", next),
		)
	}

	updated := vendor.Clone()
	updated.Status = next

	saved, err := uc.repo.Vendor().UpdateByID(ctx, id, updated)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update vendor status", goerr.V(VendorIDKey, id))
	}

	logging.From(ctx).Info("vendor status changed",
		"vendor_id", id,
		"from", vendor.Status,
		"to", next,
	)

	return saved, nil
}
