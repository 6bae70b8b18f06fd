package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/qa-lab/vendorscope/pkg/domain/model"
	"github.com/qa-lab/vendorscope/pkg/domain/types"
)

// vendorRepository keeps vendor records in a mutex-guarded map plus an
// insertion-order slice. The mutex serializes UpdateByID so concurrent
// writers resolve to deterministic last-writer-wins.
type vendorRepository struct {
	mu      sync.RWMutex
	vendors map[types.VendorID]*model.Vendor
	order   []types.VendorID
}

func newVendorRepository() *vendorRepository {
	return &vendorRepository{
		vendors: make(map[types.VendorID]*model.Vendor),
	}
}

func (r *vendorRepository) Create(ctx context.Context, vendor *model.Vendor) (*model.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.vendors[vendor.ID]; exists {
		return nil, goerr.Wrap(model.ErrDuplicateID, "vendor already exists", goerr.V("id", vendor.ID))
	}

	now := time.Now().UTC()
	created := vendor.Clone()
	created.CreatedAt = now
	created.UpdatedAt = now

	r.vendors[created.ID] = created
	r.order = append(r.order, created.ID)
	return created.Clone(), nil
}

func (r *vendorRepository) GetByID(ctx context.Context, id types.VendorID) (*model.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vendor, exists := r.vendors[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "vendor not found", goerr.V("id", id))
	}

	// Return a copy to prevent external modification
	return vendor.Clone(), nil
}

func (r *vendorRepository) List(ctx context.Context) ([]*model.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vendors := make([]*model.Vendor, 0, len(r.order))
	for _, id := range r.order {
		vendors = append(vendors, r.vendors[id].Clone())
	}
	return vendors, nil
}

func (r *vendorRepository) ListByStatus(ctx context.Context, status types.VendorStatus) ([]*model.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vendors := make([]*model.Vendor, 0, len(r.order))
	for _, id := range r.order {
		if v := r.vendors[id]; v.Status == status {
			vendors = append(vendors, v.Clone())
		}
	}
	return vendors, nil
}

func (r *vendorRepository) ListByTier(ctx context.Context, tier types.RiskTier) ([]*model.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vendors := make([]*model.Vendor, 0, len(r.order))
	for _, id := range r.order {
		if v := r.vendors[id]; v.RiskTier == tier {
			vendors = append(vendors, v.Clone())
		}
	}
	return vendors, nil
}

func (r *vendorRepository) UpdateByID(ctx context.Context, id types.VendorID, vendor *model.Vendor) (*model.Vendor, error) {
	if vendor.ID != id {
		return nil, goerr.Wrap(model.ErrIDMismatch, "update must not change vendor identity",
			goerr.V("id", id),
			goerr.V("record_id", vendor.ID),
		)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.vendors[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "vendor not found", goerr.V("id", id))
	}

	updated := vendor.Clone()
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now().UTC()

	r.vendors[id] = updated
	return updated.Clone(), nil
}

func (r *vendorRepository) Delete(ctx context.Context, id types.VendorID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.vendors[id]; !exists {
		return goerr.Wrap(model.ErrNotFound, "vendor not found", goerr.V("id", id))
	}

	delete(r.vendors, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
