package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/qa-lab/vendorscope/pkg/domain/interfaces"
	"github.com/qa-lab/vendorscope/pkg/domain/model"
	"github.com/qa-lab/vendorscope/pkg/domain/types"
)

type VendorUseCase struct {
	repo interfaces.Repository
}

func NewVendorUseCase(repo interfaces.Repository) *VendorUseCase {
	return &VendorUseCase{
		repo: repo,
	}
}

// CreateVendorInput carries the fields of the vendor creation form. ID is
// optional; a UUIDv7 is assigned when absent.
type CreateVendorInput struct {
	ID            string
	Name          string
	Category      string
	Description   string
	OverallScore  int
	Metrics       model.ScorecardMetrics
	LastAuditDate string
}

// CreateVendor validates the input and appends a new vendor record in
// Pending status.
func (uc *VendorUseCase) CreateVendor(ctx context.Context, input CreateVendorInput) (*model.Vendor, error) {
	id := types.VendorID(input.ID)
	if id == "" {
		id = types.VendorID(uuid.Must(uuid.NewV7()).String())
	}

	vendor, err := model.NewVendor(id, input.Name, input.Category, input.Description,
		input.OverallScore, input.Metrics, input.LastAuditDate)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid vendor input")
	}

	created, err := uc.repo.Vendor().Create(ctx, vendor)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create vendor")
	}

	return created, nil
}

// GetVendor retrieves a vendor record by ID
func (uc *VendorUseCase) GetVendor(ctx context.Context, id types.VendorID) (*model.Vendor, error) {
	vendor, err := uc.repo.Vendor().GetByID(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get vendor", goerr.V(VendorIDKey, id))
	}
	return vendor, nil
}

// ListVendors retrieves all vendor records in insertion order
func (uc *VendorUseCase) ListVendors(ctx context.Context) ([]*model.Vendor, error) {
	vendors, err := uc.repo.Vendor().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list vendors")
	}
	return vendors, nil
}

// ListByStatus retrieves vendor records filtered by approval status
func (uc *VendorUseCase) ListByStatus(ctx context.Context, status types.VendorStatus) ([]*model.Vendor, error) {
	if !status.IsValid() {
		return nil, goerr.New("invalid vendor status", goerr.V(StatusKey, status))
	}
	vendors, err := uc.repo.Vendor().ListByStatus(ctx, status)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list vendors by status")
	}
	return vendors, nil
}

// ListByTier retrieves vendor records filtered by risk tier
func (uc *VendorUseCase) ListByTier(ctx context.Context, tier types.RiskTier) ([]*model.Vendor, error) {
	if !tier.IsValid() {
		return nil, goerr.New("invalid risk tier", goerr.V("tier", tier))
	}
	vendors, err := uc.repo.Vendor().ListByTier(ctx, tier)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list vendors by tier")
	}
	return vendors, nil
}

// PortfolioStats holds fleet-level aggregates for the dashboard cards
type PortfolioStats struct {
	VendorCount       int
	AverageScore      float64
	ElevatedRiskCount int
	StatusCounts      map[string]int
}

// Portfolio computes fleet-level aggregates. An empty portfolio yields zero
// counts and a zero average rather than an error; the underlying scoring
// functions keep their stricter contracts.
func (uc *VendorUseCase) Portfolio(ctx context.Context) (*PortfolioStats, error) {
	vendors, err := uc.repo.Vendor().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list vendors")
	}

	stats := &PortfolioStats{
		VendorCount:       len(vendors),
		ElevatedRiskCount: model.CountElevatedRisk(vendors),
		StatusCounts:      model.CountByStatus(vendors),
	}

	avg, err := model.AverageScore(vendors)
	if err != nil && !errors.Is(err, model.ErrEmptyCollection) {
		return nil, goerr.Wrap(err, "failed to compute average score")
	}
	stats.AverageScore = avg

	return stats, nil
}

// RecordAudit sets the vendor's last audit date from an explicit audit
// event. Scoring never touches this field.
func (uc *VendorUseCase) RecordAudit(ctx context.Context, id types.VendorID, date string) (*model.Vendor, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, goerr.Wrap(model.ErrValidation, "audit date must be YYYY-MM-DD",
			goerr.V("date", date),
		)
	}

	vendor, err := uc.repo.Vendor().GetByID(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get vendor", goerr.V(VendorIDKey, id))
	}

	updated := vendor.Clone()
	updated.LastAuditDate = date

	saved, err := uc.repo.Vendor().UpdateByID(ctx, id, updated)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update vendor", goerr.V(VendorIDKey, id))
	}
	return saved, nil
}
