package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/qa-lab/vendorscope/pkg/domain/interfaces"
	"github.com/qa-lab/vendorscope/pkg/domain/model"
	"github.com/qa-lab/vendorscope/pkg/domain/types"
	"github.com/qa-lab/vendorscope/pkg/service/assessor"
	"github.com/qa-lab/vendorscope/pkg/utils/logging"
)

// defaultAssessmentTimeout bounds the provider call; expiry is handled the
// same as a provider failure.
const defaultAssessmentTimeout = 30 * time.Second

// AssessmentUseCase runs the external AI assessment and merges the result
// back into the vendor record.
type AssessmentUseCase struct {
	repo        interfaces.Repository
	assessorSvc assessor.Service
	timeout     time.Duration

	mu       sync.Mutex
	inFlight map[types.VendorID]struct{}
}

func NewAssessmentUseCase(repo interfaces.Repository, svc assessor.Service, timeout time.Duration) *AssessmentUseCase {
	if timeout <= 0 {
		timeout = defaultAssessmentTimeout
	}
	return &AssessmentUseCase{
		repo:        repo,
		assessorSvc: svc,
		timeout:     timeout,
		inFlight:    make(map[types.VendorID]struct{}),
	}
}

// AssessmentResult pairs the merged vendor record with the assessment that
// was applied. Fallback results are indistinguishable from real ones except
// by their summary text.
type AssessmentResult struct {
	Vendor     *model.Vendor
	Assessment *model.Assessment
}

// RequestAssessment runs the merge protocol for one vendor: call the
// provider, fall back to the documented medium-risk default on any failure,
// re-validate the merge target by ID and replace its scoring fields as one
// atomic update. Status is never modified here. A second concurrent request
// for the same vendor is rejected while the first is in flight.
func (uc *AssessmentUseCase) RequestAssessment(ctx context.Context, id types.VendorID) (*AssessmentResult, error) {
	if uc.assessorSvc == nil {
		return nil, goerr.Wrap(ErrAssessorNotAvailable, "cannot assess vendor", goerr.V(VendorIDKey, id))
	}

	if err := uc.acquire(id); err != nil {
		return nil, err
	}
	defer uc.release(id)

	vendor, err := uc.repo.Vendor().GetByID(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get vendor for assessment", goerr.V(VendorIDKey, id))
	}

	assessment := uc.assess(ctx, vendor)

	// Re-validate the merge target: the vendor may have been removed while
	// the provider call was in flight. A missing target discards the result.
	current, err := uc.repo.Vendor().GetByID(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "assessment target vanished, discarding result", goerr.V(VendorIDKey, id))
	}

	merged := current.ApplyAssessment(assessment, time.Now())

	saved, err := uc.repo.Vendor().UpdateByID(ctx, id, merged)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge assessment", goerr.V(VendorIDKey, id))
	}

	logging.From(ctx).Info("assessment merged",
		"vendor_id", id,
		"risk_tier", assessment.RiskTier,
		"overall_score", assessment.OverallScore,
	)

	return &AssessmentResult{
		Vendor:     saved,
		Assessment: assessment,
	}, nil
}

// InProgress reports whether an assessment is currently running for the
// vendor. The HTTP layer uses it to render the in-progress state.
func (uc *AssessmentUseCase) InProgress(id types.VendorID) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	_, ok := uc.inFlight[id]
	return ok
}

// assess calls the provider with a bounded context. Any error, including
// timeout and schema validation failure, resolves to the fallback
// assessment; the caller never sees a raw provider error.
func (uc *AssessmentUseCase) assess(ctx context.Context, vendor *model.Vendor) *model.Assessment {
	callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	assessment, err := uc.assessorSvc.Assess(callCtx, assessor.Input{
		VendorName:   vendor.Name,
		Description:  vendor.Description,
		HistoryNotes: buildHistoryNotes(vendor),
	})
	if err != nil {
		logging.From(ctx).Warn("assessment provider failed, using fallback",
			"vendor_id", vendor.ID,
			"error", err.Error(),
		)
		return model.FallbackAssessment()
	}

	return assessment
}

// acquire registers an in-flight assessment for the vendor, rejecting
// re-entrant requests. The guard is keyed per vendor, not global.
func (uc *AssessmentUseCase) acquire(id types.VendorID) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.inFlight[id]; ok {
		return goerr.Wrap(ErrAssessmentInProgress, "rejecting concurrent assessment request",
			goerr.V(VendorIDKey, id),
		)
	}
	uc.inFlight[id] = struct{}{}
	return nil
}

func (uc *AssessmentUseCase) release(id types.VendorID) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.inFlight, id)
}

// buildHistoryNotes summarizes the operational history we hold on the
// vendor for the provider prompt.
func buildHistoryNotes(vendor *model.Vendor) string {
	notes := "Last audit: " + vendor.LastAuditDate + ". Current status: " + vendor.Status.String() + "."
	if vendor.Assessed() {
		notes += " Previous assessment summary: " + *vendor.AINarrative
	}
	return notes
}
