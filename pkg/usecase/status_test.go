package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/qa-lab/vendorscope/pkg/domain/model"
	"github.com/qa-lab/vendorscope/pkg/domain/types"
	"github.com/qa-lab/vendorscope/pkg/repository/memory"
	"github.com/qa-lab/vendorscope/pkg/usecase"
)

func TestStatusTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("approve pending vendor", func(t *testing.T) {
		uc := usecase.New(memory.New())
		_, err := uc.Vendor.CreateVendor(ctx, createInput("V-1", 74))
		gt.NoError(t, err).Required()

		vendor, err := uc.Vendor.Approve(ctx, "V-1")
		gt.NoError(t, err).Required()
		gt.Value(t, vendor.Status).Equal(types.VendorStatusApproved)
	})

	t.Run("hold then reject", func(t *testing.T) {
		uc := usecase.New(memory.New())
		_, err := uc.Vendor.CreateVendor(ctx, createInput("V-1", 74))
		gt.NoError(t, err).Required()

		vendor, err := uc.Vendor.Hold(ctx, "V-1")
		gt.NoError(t, err).Required()
		gt.Value(t, vendor.Status).Equal(types.VendorStatusOnHold)

		vendor, err = uc.Vendor.Reject(ctx, "V-1")
		gt.NoError(t, err).Required()
		gt.Value(t, vendor.Status).Equal(types.VendorStatusRejected)
	})

	t.Run("approved is terminal", func(t *testing.T) {
		uc := usecase.New(memory.New())
		_, err := uc.Vendor.CreateVendor(ctx, createInput("V-1", 74))
		gt.NoError(t, err).Required()

		_, err = uc.Vendor.Approve(ctx, "V-1")
		gt.NoError(t, err).Required()

		_, err = uc.Vendor.Hold(ctx, "V-1")
		gt.Error(t, err).Is(usecase.ErrInvalidTransition)

		_, err = uc.Vendor.Reject(ctx, "V-1")
		gt.Error(t, err).Is(usecase.ErrInvalidTransition)

		// Record stays Approved after the rejected transitions
		vendor, err := uc.Vendor.GetVendor(ctx, "V-1")
		gt.NoError(t, err).Required()
		gt.Value(t, vendor.Status).Equal(types.VendorStatusApproved)
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		uc := usecase.New(memory.New())
		_, err := uc.Vendor.CreateVendor(ctx, createInput("V-1", 74))
		gt.NoError(t, err).Required()

		_, err = uc.Vendor.Reject(ctx, "V-1")
		gt.NoError(t, err).Required()

		_, err = uc.Vendor.Approve(ctx, "V-1")
		gt.Error(t, err).Is(usecase.ErrInvalidTransition)
	})

	t.Run("unknown vendor", func(t *testing.T) {
		uc := usecase.New(memory.New())
		_, err := uc.Vendor.Approve(ctx, "V-404")
		gt.Error(t, err).Is(model.ErrNotFound)
	})
}
