package memory_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/qa-lab/vendorscope/pkg/domain/model"
	"github.com/qa-lab/vendorscope/pkg/domain/types"
	"github.com/qa-lab/vendorscope/pkg/repository/memory"
)

func newVendor(t *testing.T, id types.VendorID, score int) *model.Vendor {
	t.Helper()
	vendor, err := model.NewVendor(id, "Vendor "+string(id), "General", "test vendor", score, model.ScorecardMetrics{
		FinancialHealth:    score,
		SafetyRecord:       score,
		ProjectPerformance: score,
		Compliance:         score,
	}, "2024-01-01")
	gt.NoError(t, err).Required()
	return vendor
}

func TestVendorRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	vendor := newVendor(t, "V-1001", 92)
	created, err := repo.Vendor().Create(ctx, vendor)
	gt.NoError(t, err).Required()
	gt.Bool(t, created.CreatedAt.IsZero()).False()
	gt.Value(t, created.CreatedAt).Equal(created.UpdatedAt)

	found, err := repo.Vendor().GetByID(ctx, "V-1001")
	gt.NoError(t, err).Required()
	gt.Value(t, found.Name).Equal("Vendor V-1001")
	gt.Value(t, found.OverallScore).Equal(92)
}

func TestVendorRepository_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	_, err := repo.Vendor().Create(ctx, newVendor(t, "V-1001", 92))
	gt.NoError(t, err).Required()

	_, err = repo.Vendor().Create(ctx, newVendor(t, "V-1001", 30))
	gt.Error(t, err).Is(model.ErrDuplicateID)

	// The stored record must be untouched by the rejected insert
	found, err := repo.Vendor().GetByID(ctx, "V-1001")
	gt.NoError(t, err).Required()
	gt.Value(t, found.OverallScore).Equal(92)

	vendors, err := repo.Vendor().List(ctx)
	gt.NoError(t, err)
	gt.Array(t, vendors).Length(1)
}

func TestVendorRepository_GetNotFound(t *testing.T) {
	repo := memory.New()
	_, err := repo.Vendor().GetByID(context.Background(), "V-9999")
	gt.Error(t, err).Is(model.ErrNotFound)
}

func TestVendorRepository_ListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	ids := []types.VendorID{"V-3", "V-1", "V-2"}
	for _, id := range ids {
		_, err := repo.Vendor().Create(ctx, newVendor(t, id, 50))
		gt.NoError(t, err).Required()
	}

	vendors, err := repo.Vendor().List(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, vendors).Length(3)
	for i, id := range ids {
		gt.Value(t, vendors[i].ID).Equal(id)
	}
}

func TestVendorRepository_UpdateByID(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	for _, id := range []types.VendorID{"V-1", "V-2", "V-3"} {
		_, err := repo.Vendor().Create(ctx, newVendor(t, id, 50))
		gt.NoError(t, err).Required()
	}

	target, err := repo.Vendor().GetByID(ctx, "V-2")
	gt.NoError(t, err).Required()
	target.OverallScore = 95
	target.RiskTier = types.RiskTierLow

	updated, err := repo.Vendor().UpdateByID(ctx, "V-2", target)
	gt.NoError(t, err).Required()
	gt.Value(t, updated.OverallScore).Equal(95)
	gt.Value(t, updated.CreatedAt).Equal(target.CreatedAt)
	gt.Bool(t, updated.UpdatedAt.After(target.UpdatedAt) || updated.UpdatedAt.Equal(target.UpdatedAt)).True()

	// Collection size and the other records must be unchanged
	vendors, err := repo.Vendor().List(ctx)
	gt.NoError(t, err).Required()
	gt.Array(t, vendors).Length(3)
	gt.Value(t, vendors[0].ID).Equal(types.VendorID("V-1"))
	gt.Value(t, vendors[0].OverallScore).Equal(50)
	gt.Value(t, vendors[1].OverallScore).Equal(95)
	gt.Value(t, vendors[2].OverallScore).Equal(50)
}

func TestVendorRepository_UpdateByID_IDMismatch(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	_, err := repo.Vendor().Create(ctx, newVendor(t, "V-1", 50))
	gt.NoError(t, err).Required()

	imposter := newVendor(t, "V-2", 50)
	_, err = repo.Vendor().UpdateByID(ctx, "V-1", imposter)
	gt.Error(t, err).Is(model.ErrIDMismatch)
}

func TestVendorRepository_UpdateByID_NotFound(t *testing.T) {
	repo := memory.New()
	vendor := newVendor(t, "V-1", 50)
	_, err := repo.Vendor().UpdateByID(context.Background(), "V-1", vendor)
	gt.Error(t, err).Is(model.ErrNotFound)
}

func TestVendorRepository_Filters(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	specs := []struct {
		id     types.VendorID
		score  int
		status types.VendorStatus
	}{
		{"V-1", 92, types.VendorStatusApproved},
		{"V-2", 74, types.VendorStatusPending},
		{"V-3", 58, types.VendorStatusOnHold},
		{"V-4", 88, types.VendorStatusApproved},
	}
	for _, s := range specs {
		vendor := newVendor(t, s.id, s.score)
		vendor.Status = s.status
		_, err := repo.Vendor().Create(ctx, vendor)
		gt.NoError(t, err).Required()
	}

	approved, err := repo.Vendor().ListByStatus(ctx, types.VendorStatusApproved)
	gt.NoError(t, err).Required()
	gt.Array(t, approved).Length(2)
	gt.Value(t, approved[0].ID).Equal(types.VendorID("V-1"))
	gt.Value(t, approved[1].ID).Equal(types.VendorID("V-4"))

	lowTier, err := repo.Vendor().ListByTier(ctx, types.RiskTierLow)
	gt.NoError(t, err).Required()
	gt.Array(t, lowTier).Length(2)

	rejected, err := repo.Vendor().ListByStatus(ctx, types.VendorStatusRejected)
	gt.NoError(t, err)
	gt.Array(t, rejected).Length(0)
}

func TestVendorRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	for _, id := range []types.VendorID{"V-1", "V-2"} {
		_, err := repo.Vendor().Create(ctx, newVendor(t, id, 50))
		gt.NoError(t, err).Required()
	}

	gt.NoError(t, repo.Vendor().Delete(ctx, "V-1"))

	_, err := repo.Vendor().GetByID(ctx, "V-1")
	gt.Error(t, err).Is(model.ErrNotFound)

	vendors, err := repo.Vendor().List(ctx)
	gt.NoError(t, err)
	gt.Array(t, vendors).Length(1)

	gt.Error(t, repo.Vendor().Delete(ctx, "V-1")).Is(model.ErrNotFound)
}

func TestVendorRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()

	_, err := repo.Vendor().Create(ctx, newVendor(t, "V-1", 50))
	gt.NoError(t, err).Required()

	found, err := repo.Vendor().GetByID(ctx, "V-1")
	gt.NoError(t, err).Required()
	found.OverallScore = 1
	found.Metrics.Compliance = 1

	again, err := repo.Vendor().GetByID(ctx, "V-1")
	gt.NoError(t, err).Required()
	gt.Value(t, again.OverallScore).Equal(50)
	gt.Value(t, again.Metrics.Compliance).Equal(50)
}
