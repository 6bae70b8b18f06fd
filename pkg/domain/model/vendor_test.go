package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/qa-lab/vendorscope/pkg/domain/model"
	"github.com/qa-lab/vendorscope/pkg/domain/types"
)

func validMetrics() model.ScorecardMetrics {
	return model.ScorecardMetrics{
		FinancialHealth:    65,
		SafetyRecord:       75,
		ProjectPerformance: 85,
		Compliance:         70,
	}
}

func TestNewVendor(t *testing.T) {
	vendor, err := model.NewVendor("V-1042", "Rapid Electrical Systems", "Electrical", "Mid-sized electrical contractor.", 74, validMetrics(), "2024-01-10")
	gt.NoError(t, err).Required()

	gt.Value(t, vendor.ID).Equal(types.VendorID("V-1042"))
	gt.Value(t, vendor.Status).Equal(types.VendorStatusPending)
	gt.Value(t, vendor.RiskTier).Equal(types.RiskTierMedium)
	gt.Value(t, vendor.OverallScore).Equal(74)
	gt.Value(t, vendor.Metrics).Equal(validMetrics())
	gt.Bool(t, vendor.Assessed()).False()
	gt.Value(t, vendor.AINarrative).Nil()
	gt.Value(t, vendor.AssessedAt).Nil()
}

func TestNewVendor_Validation(t *testing.T) {
	tests := []struct {
		name string
		fn   func() (*model.Vendor, error)
	}{
		{
			name: "empty ID",
			fn: func() (*model.Vendor, error) {
				return model.NewVendor("", "Acme", "Concrete", "desc", 50, validMetrics(), "2024-01-10")
			},
		},
		{
			name: "empty name",
			fn: func() (*model.Vendor, error) {
				return model.NewVendor("V-1", "", "Concrete", "desc", 50, validMetrics(), "2024-01-10")
			},
		},
		{
			name: "empty category",
			fn: func() (*model.Vendor, error) {
				return model.NewVendor("V-1", "Acme", "", "desc", 50, validMetrics(), "2024-01-10")
			},
		},
		{
			name: "empty description",
			fn: func() (*model.Vendor, error) {
				return model.NewVendor("V-1", "Acme", "Concrete", "", 50, validMetrics(), "2024-01-10")
			},
		},
		{
			name: "score above range",
			fn: func() (*model.Vendor, error) {
				return model.NewVendor("V-1", "Acme", "Concrete", "desc", 101, validMetrics(), "2024-01-10")
			},
		},
		{
			name: "negative score",
			fn: func() (*model.Vendor, error) {
				return model.NewVendor("V-1", "Acme", "Concrete", "desc", -1, validMetrics(), "2024-01-10")
			},
		},
		{
			name: "metric out of range",
			fn: func() (*model.Vendor, error) {
				m := validMetrics()
				m.SafetyRecord = 150
				return model.NewVendor("V-1", "Acme", "Concrete", "desc", 50, m, "2024-01-10")
			},
		},
		{
			name: "empty audit date",
			fn: func() (*model.Vendor, error) {
				return model.NewVendor("V-1", "Acme", "Concrete", "desc", 50, validMetrics(), "")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn()
			gt.Error(t, err).Is(model.ErrValidation)
		})
	}
}

func TestVendor_Clone(t *testing.T) {
	vendor, err := model.NewVendor("V-1001", "Apex Structural Steel", "Structural Steel", "High-rise steel framing.", 92, validMetrics(), "2023-11-15")
	gt.NoError(t, err).Required()

	narrative := "Strong vendor."
	at := time.Now().UTC()
	vendor.AINarrative = &narrative
	vendor.AssessedAt = &at

	clone := vendor.Clone()
	gt.Value(t, clone).Equal(vendor)

	// Mutating the clone must not leak into the original
	*clone.AINarrative = "changed"
	clone.Metrics.Compliance = 1
	gt.Value(t, *vendor.AINarrative).Equal("Strong vendor.")
	gt.Value(t, vendor.Metrics.Compliance).Equal(validMetrics().Compliance)
}

func TestVendor_ApplyAssessment(t *testing.T) {
	vendor, err := model.NewVendor("V-1089", "Concrete Foundations Ltd", "Concrete", "Large concrete pour specialist.", 58, validMetrics(), "2023-12-05")
	gt.NoError(t, err).Required()
	vendor.Status = types.VendorStatusOnHold

	assessment := &model.Assessment{
		RiskTier:     types.RiskTierHigh,
		OverallScore: 52,
		Metrics: model.ScorecardMetrics{
			FinancialHealth:    35,
			SafetyRecord:       60,
			ProjectPerformance: 78,
			Compliance:         45,
		},
		Summary: "Litigation reserves are eroding liquidity.",
	}
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	merged := vendor.ApplyAssessment(assessment, at)

	// Scoring fields are replaced as one unit
	gt.Value(t, merged.RiskTier).Equal(types.RiskTierHigh)
	gt.Value(t, merged.OverallScore).Equal(52)
	gt.Value(t, merged.Metrics).Equal(assessment.Metrics)
	gt.Value(t, *merged.AINarrative).Equal(assessment.Summary)
	gt.Value(t, *merged.AssessedAt).Equal(at)
	gt.Bool(t, merged.Assessed()).True()

	// Identity, status and audit trail never move with an assessment
	gt.Value(t, merged.ID).Equal(vendor.ID)
	gt.Value(t, merged.Name).Equal(vendor.Name)
	gt.Value(t, merged.Status).Equal(types.VendorStatusOnHold)
	gt.Value(t, merged.LastAuditDate).Equal("2023-12-05")

	// The source record is untouched
	gt.Value(t, vendor.OverallScore).Equal(58)
	gt.Value(t, vendor.AINarrative).Nil()
}

func TestVendor_ApplyAssessment_TierNotRederived(t *testing.T) {
	vendor, err := model.NewVendor("V-1102", "Green HVAC Solutions", "Mechanical", "LEED certified HVAC installations.", 88, validMetrics(), "2024-02-01")
	gt.NoError(t, err).Required()

	// Provider aggregate is authoritative even when score and tier disagree
	// with the local thresholds
	assessment := &model.Assessment{
		RiskTier:     types.RiskTierHigh,
		OverallScore: 85,
		Metrics:      validMetrics(),
		Summary:      "Open compliance investigation outweighs the raw scores.",
	}

	merged := vendor.ApplyAssessment(assessment, time.Now())
	gt.Value(t, merged.RiskTier).Equal(types.RiskTierHigh)
	gt.Value(t, merged.OverallScore).Equal(85)
}
