package usecase

import (
	"time"

	"github.com/qa-lab/vendorscope/pkg/domain/interfaces"
	"github.com/qa-lab/vendorscope/pkg/service/assessor"
)

type UseCases struct {
	repo              interfaces.Repository
	assessorSvc       assessor.Service
	assessmentTimeout time.Duration

	Vendor     *VendorUseCase
	Assessment *AssessmentUseCase
}

type Option func(*UseCases)

// WithAssessor wires the external AI assessment provider. Without it the
// assessment flow is rejected up front.
func WithAssessor(svc assessor.Service) Option {
	return func(uc *UseCases) {
		uc.assessorSvc = svc
	}
}

// WithAssessmentTimeout overrides the provider call timeout
func WithAssessmentTimeout(d time.Duration) Option {
	return func(uc *UseCases) {
		uc.assessmentTimeout = d
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:              repo,
		assessmentTimeout: defaultAssessmentTimeout,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Vendor = NewVendorUseCase(repo)
	uc.Assessment = NewAssessmentUseCase(repo, uc.assessorSvc, uc.assessmentTimeout)

	return uc
}
