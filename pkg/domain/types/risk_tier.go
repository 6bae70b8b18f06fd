package types

import "fmt"

// RiskTier represents the ordered severity classification of a vendor.
// The string values match the enum used on the assessment provider wire
// format, so Parse doubles as boundary validation for provider responses.
type RiskTier string

const (
	RiskTierLow      RiskTier = "Low"
	RiskTierMedium   RiskTier = "Medium"
	RiskTierHigh     RiskTier = "High"
	RiskTierCritical RiskTier = "Critical"
)

// Score thresholds for tier derivation. A score at or above a threshold
// falls into the corresponding tier; anything below ScoreThresholdHigh is
// Critical.
const (
	ScoreThresholdLow    = 80
	ScoreThresholdMedium = 60
	ScoreThresholdHigh   = 40
)

// AllRiskTiers returns all valid risk tiers in ascending severity order
func AllRiskTiers() []RiskTier {
	return []RiskTier{
		RiskTierLow,
		RiskTierMedium,
		RiskTierHigh,
		RiskTierCritical,
	}
}

// IsValid checks if the risk tier is valid
func (t RiskTier) IsValid() bool {
	switch t {
	case RiskTierLow,
		RiskTierMedium,
		RiskTierHigh,
		RiskTierCritical:
		return true
	default:
		return false
	}
}

// Severity returns the numeric severity of the tier. Higher is more severe.
// Unknown tiers return 0.
func (t RiskTier) Severity() int {
	switch t {
	case RiskTierLow:
		return 1
	case RiskTierMedium:
		return 2
	case RiskTierHigh:
		return 3
	case RiskTierCritical:
		return 4
	default:
		return 0
	}
}

// IsElevated reports whether the tier counts as high risk for portfolio
// aggregation (High or Critical).
func (t RiskTier) IsElevated() bool {
	return t == RiskTierHigh || t == RiskTierCritical
}

// String returns the string representation of the risk tier
func (t RiskTier) String() string {
	return string(t)
}

// ParseRiskTier parses a string into a RiskTier. The match is exact; the
// assessment boundary relies on this to reject free-text tiers from the
// provider.
func ParseRiskTier(s string) (RiskTier, error) {
	tier := RiskTier(s)
	if !tier.IsValid() {
		return "", fmt.Errorf("invalid risk tier: %s", s)
	}
	return tier, nil
}

// RiskTierForScore derives the risk tier for an overall score in [0,100].
// The mapping is total and monotonic: a higher score never yields a more
// severe tier.
func RiskTierForScore(score int) RiskTier {
	switch {
	case score >= ScoreThresholdLow:
		return RiskTierLow
	case score >= ScoreThresholdMedium:
		return RiskTierMedium
	case score >= ScoreThresholdHigh:
		return RiskTierHigh
	default:
		return RiskTierCritical
	}
}
