package assessor

import (
	"context"

	"github.com/qa-lab/vendorscope/pkg/domain/model"
)

// Service defines the interface for the external AI risk assessment
// provider. Implementations return raw errors for transport, parse and
// schema failures; the fallback policy lives in the caller.
type Service interface {
	Assess(ctx context.Context, input Input) (*model.Assessment, error)
}

// Input carries the vendor context sent to the provider
type Input struct {
	VendorName   string
	Description  string
	HistoryNotes string
}

// wireResponse is the provider's JSON response shape. Numeric fields are
// declared as int so a non-integer score fails parsing and routes to the
// fallback path.
type wireResponse struct {
	RiskLevel          string `json:"riskLevel"`
	OverallScore       int    `json:"overallScore"`
	FinancialHealth    int    `json:"financialHealth"`
	SafetyRecord       int    `json:"safetyRecord"`
	ProjectPerformance int    `json:"projectPerformance"`
	Compliance         int    `json:"compliance"`
	Summary            string `json:"summary"`
}
