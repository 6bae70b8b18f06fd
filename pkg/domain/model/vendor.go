package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/qa-lab/vendorscope/pkg/domain/types"
)

// ScorecardMetrics holds the four category sub-scores of a vendor scorecard.
// Every value is an integer in [0,100].
type ScorecardMetrics struct {
	FinancialHealth    int `json:"financialHealth" toml:"financial_health"`
	SafetyRecord       int `json:"safetyRecord" toml:"safety_record"`
	ProjectPerformance int `json:"projectPerformance" toml:"project_performance"`
	Compliance         int `json:"compliance" toml:"compliance"`
}

// Validate checks that every metric value is within [0,100]
func (m ScorecardMetrics) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"financialHealth", m.FinancialHealth},
		{"safetyRecord", m.SafetyRecord},
		{"projectPerformance", m.ProjectPerformance},
		{"compliance", m.Compliance},
	}

	for _, f := range fields {
		if f.value < 0 || f.value > 100 {
			return goerr.Wrap(ErrValidation, "metric value out of range",
				goerr.V(FieldKey, f.name),
				goerr.V(ValueKey, f.value),
			)
		}
	}
	return nil
}

// Vendor represents a subcontractor record with its compliance status and
// risk scorecard. Records are immutable values; all mutation happens by
// producing a new record and replacing it in the collection store by ID.
type Vendor struct {
	ID           types.VendorID
	Name         string
	Category     string
	Description  string
	Status       types.VendorStatus
	RiskTier     types.RiskTier
	OverallScore int
	Metrics      ScorecardMetrics

	// LastAuditDate is informational only (YYYY-MM-DD). Set at creation or
	// by an explicit audit event, never by scoring.
	LastAuditDate string

	// AINarrative holds the summary of the most recent external assessment.
	// nil means the vendor has never been assessed.
	AINarrative *string
	AssessedAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewVendor constructs a validated vendor record. All fields are required;
// metrics and the overall score must be within [0,100]. The record starts
// in Pending status awaiting QA review.
func NewVendor(id types.VendorID, name, category, description string, overallScore int, metrics ScorecardMetrics, lastAuditDate string) (*Vendor, error) {
	if err := id.Validate(); err != nil {
		return nil, goerr.Wrap(ErrValidation, "invalid vendor ID", goerr.V(VendorIDKey, id))
	}
	if name == "" {
		return nil, goerr.Wrap(ErrValidation, "vendor name is required", goerr.V(VendorIDKey, id))
	}
	if category == "" {
		return nil, goerr.Wrap(ErrValidation, "vendor category is required", goerr.V(VendorIDKey, id))
	}
	if description == "" {
		return nil, goerr.Wrap(ErrValidation, "vendor description is required", goerr.V(VendorIDKey, id))
	}
	if overallScore < 0 || overallScore > 100 {
		return nil, goerr.Wrap(ErrValidation, "overall score out of range",
			goerr.V(VendorIDKey, id),
			goerr.V(ValueKey, overallScore),
		)
	}
	if err := metrics.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid metrics", goerr.V(VendorIDKey, id))
	}
	if lastAuditDate == "" {
		return nil, goerr.Wrap(ErrValidation, "last audit date is required", goerr.V(VendorIDKey, id))
	}

	return &Vendor{
		ID:            id,
		Name:          name,
		Category:      category,
		Description:   description,
		Status:        types.VendorStatusPending,
		RiskTier:      types.RiskTierForScore(overallScore),
		OverallScore:  overallScore,
		Metrics:       metrics,
		LastAuditDate: lastAuditDate,
	}, nil
}

// Clone returns a deep copy of the vendor record
func (v *Vendor) Clone() *Vendor {
	copied := *v
	if v.AINarrative != nil {
		narrative := *v.AINarrative
		copied.AINarrative = &narrative
	}
	if v.AssessedAt != nil {
		at := *v.AssessedAt
		copied.AssessedAt = &at
	}
	return &copied
}

// ApplyAssessment returns a new vendor record with the assessment's metrics,
// overall score, risk tier and narrative merged in as one atomic
// replacement. The provider's aggregate score and tier are taken as-is
// without re-deriving the tier from the new metrics. Status, audit date and
// identity are untouched; moving status requires a separate explicit action.
func (v *Vendor) ApplyAssessment(a *Assessment, at time.Time) *Vendor {
	merged := v.Clone()
	merged.Metrics = a.Metrics
	merged.OverallScore = a.OverallScore
	merged.RiskTier = a.RiskTier
	narrative := a.Summary
	merged.AINarrative = &narrative
	assessedAt := at.UTC()
	merged.AssessedAt = &assessedAt
	return merged
}

// Assessed reports whether the vendor has received at least one external
// assessment.
func (v *Vendor) Assessed() bool {
	return v.AINarrative != nil
}
