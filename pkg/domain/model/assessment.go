package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/qa-lab/vendorscope/pkg/domain/types"
)

// Assessment is the structured result of an external AI risk assessment.
// Score, tier, metrics and summary always travel together so a merge can
// never leave a vendor with mutually inconsistent scoring fields.
type Assessment struct {
	RiskTier     types.RiskTier
	OverallScore int
	Metrics      ScorecardMetrics
	Summary      string
}

// Fallback assessment constants, substituted whenever the provider is
// unreachable or returns data that fails schema validation.
const (
	fallbackOverallScore       = 75
	fallbackFinancialHealth    = 70
	fallbackSafetyRecord       = 80
	fallbackProjectPerformance = 75
	fallbackCompliance         = 75

	fallbackSummary = "AI service unavailable. Defaulting to medium risk assessment based on generic fallback."
)

// FallbackAssessment returns the documented medium-risk default used when
// the assessment provider fails. Callers receive this instead of a raw
// error; the only way to tell it apart from a real result is the summary
// text.
func FallbackAssessment() *Assessment {
	return &Assessment{
		RiskTier:     types.RiskTierMedium,
		OverallScore: fallbackOverallScore,
		Metrics: ScorecardMetrics{
			FinancialHealth:    fallbackFinancialHealth,
			SafetyRecord:       fallbackSafetyRecord,
			ProjectPerformance: fallbackProjectPerformance,
			Compliance:         fallbackCompliance,
		},
		Summary: fallbackSummary,
	}
}

// Validate checks the assessment against the strict boundary schema: tier
// must be one of the known set, all numeric fields within [0,100] and the
// summary non-empty. Any violation is treated by callers the same as a
// transport failure.
func (a *Assessment) Validate() error {
	if !a.RiskTier.IsValid() {
		return goerr.Wrap(ErrValidation, "unknown risk tier",
			goerr.V(FieldKey, "riskLevel"),
			goerr.V(ValueKey, a.RiskTier.String()),
		)
	}
	if a.OverallScore < 0 || a.OverallScore > 100 {
		return goerr.Wrap(ErrValidation, "overall score out of range",
			goerr.V(FieldKey, "overallScore"),
			goerr.V(ValueKey, a.OverallScore),
		)
	}
	if err := a.Metrics.Validate(); err != nil {
		return err
	}
	if a.Summary == "" {
		return goerr.Wrap(ErrValidation, "assessment summary is empty",
			goerr.V(FieldKey, "summary"),
		)
	}
	return nil
}
