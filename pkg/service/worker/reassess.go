package worker

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/qa-lab/vendorscope/pkg/domain/model"
	"github.com/qa-lab/vendorscope/pkg/domain/types"
	"github.com/qa-lab/vendorscope/pkg/usecase"
	"github.com/qa-lab/vendorscope/pkg/utils/async"
	"github.com/qa-lab/vendorscope/pkg/utils/errutil"
	"github.com/qa-lab/vendorscope/pkg/utils/logging"
)

// ReassessWorker manages background re-assessment of vendors whose AI
// assessment is missing or older than the configured maximum age. Rejected
// vendors are left alone; they are out of the review pipeline.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
// - The per-vendor in-flight guard in the assessment flow makes overlap
//   with interactive requests harmless
type ReassessWorker struct {
	uc       *usecase.UseCases
	interval time.Duration
	maxAge   time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewReassessWorker creates a worker that refreshes stale assessments every
// interval. An assessment is stale when it is older than maxAge or absent.
func NewReassessWorker(uc *usecase.UseCases, interval, maxAge time.Duration) *ReassessWorker {
	return &ReassessWorker{
		uc:       uc,
		interval: interval,
		maxAge:   maxAge,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background refresh loop
// - Initial cycle and periodic refresh both run without blocking startup
func (w *ReassessWorker) Start(ctx context.Context) error {
	logging.Default().Info("Re-assessment worker starting",
		"interval", w.interval.String(),
		"max_age", w.maxAge.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for the loop to exit
func (w *ReassessWorker) Stop() {
	logging.Default().Info("Re-assessment worker stopping")
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("Re-assessment worker stopped")
}

// run is the main worker loop (runs in goroutine)
func (w *ReassessWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	// Initial cycle runs detached so the first ticker tick is not delayed
	// by slow provider calls
	async.Dispatch(ctx, w.Refresh)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.Refresh(ctx); err != nil {
				// Report but continue worker; next interval retries
				_ = errutil.Handle(ctx, err, "re-assessment cycle failed")
			}

		case <-w.stopCh:
			logging.Default().Info("Re-assessment worker received stop signal")
			return

		case <-ctx.Done():
			logging.Default().Info("Re-assessment worker context cancelled")
			return
		}
	}
}

// Refresh performs a single re-assessment cycle over the whole portfolio
func (w *ReassessWorker) Refresh(ctx context.Context) error {
	startTime := time.Now()

	vendors, err := w.uc.Vendor.ListVendors(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to list vendors for re-assessment")
	}

	assessed := 0
	for _, vendor := range vendors {
		if !w.needsAssessment(vendor, startTime) {
			continue
		}

		if _, err := w.uc.Assessment.RequestAssessment(ctx, vendor.ID); err != nil {
			// An interactive request already holds the guard; skip quietly
			if errors.Is(err, usecase.ErrAssessmentInProgress) {
				continue
			}
			logging.Default().Warn("Re-assessment of vendor failed",
				"vendor_id", vendor.ID,
				"error", err.Error())
			continue
		}
		assessed++
	}

	logging.Default().Info("Re-assessment cycle completed",
		"scanned", len(vendors),
		"assessed", assessed,
		"duration", time.Since(startTime).String())

	return nil
}

func (w *ReassessWorker) needsAssessment(vendor *model.Vendor, now time.Time) bool {
	if vendor.Status == types.VendorStatusRejected {
		return false
	}
	if vendor.AssessedAt == nil {
		return true
	}
	return now.Sub(*vendor.AssessedAt) > w.maxAge
}
