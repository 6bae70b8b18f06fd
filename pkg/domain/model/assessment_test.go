package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/qa-lab/vendorscope/pkg/domain/model"
	"github.com/qa-lab/vendorscope/pkg/domain/types"
)

func TestFallbackAssessment(t *testing.T) {
	fallback := model.FallbackAssessment()

	gt.Value(t, fallback.RiskTier).Equal(types.RiskTierMedium)
	gt.Value(t, fallback.OverallScore).Equal(75)
	gt.Value(t, fallback.Metrics).Equal(model.ScorecardMetrics{
		FinancialHealth:    70,
		SafetyRecord:       80,
		ProjectPerformance: 75,
		Compliance:         75,
	})
	gt.Value(t, fallback.Summary).Equal("AI service unavailable. Defaulting to medium risk assessment based on generic fallback.")

	gt.NoError(t, fallback.Validate())
}

func TestAssessment_Validate(t *testing.T) {
	valid := func() *model.Assessment {
		return &model.Assessment{
			RiskTier:     types.RiskTierLow,
			OverallScore: 90,
			Metrics: model.ScorecardMetrics{
				FinancialHealth:    95,
				SafetyRecord:       88,
				ProjectPerformance: 98,
				Compliance:         100,
			},
			Summary: "Consistently strong performance.",
		}
	}

	gt.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(a *model.Assessment)
	}{
		{name: "unknown tier", mutate: func(a *model.Assessment) { a.RiskTier = "Severe" }},
		{name: "score too high", mutate: func(a *model.Assessment) { a.OverallScore = 101 }},
		{name: "negative score", mutate: func(a *model.Assessment) { a.OverallScore = -5 }},
		{name: "metric too high", mutate: func(a *model.Assessment) { a.Metrics.FinancialHealth = 200 }},
		{name: "negative metric", mutate: func(a *model.Assessment) { a.Metrics.Compliance = -1 }},
		{name: "empty summary", mutate: func(a *model.Assessment) { a.Summary = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid()
			tt.mutate(a)
			gt.Error(t, a.Validate()).Is(model.ErrValidation)
		})
	}
}
