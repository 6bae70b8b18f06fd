package model

// CountElevatedRisk counts vendors whose risk tier is High or Critical.
// An empty collection yields 0, not an error; the dashboard renders the
// count directly.
func CountElevatedRisk(vendors []*Vendor) int {
	count := 0
	for _, v := range vendors {
		if v.RiskTier.IsElevated() {
			count++
		}
	}
	return count
}

// AverageScore returns the arithmetic mean of overall scores across the
// collection. An empty collection returns ErrEmptyCollection; callers must
// decide what to render, the engine never fabricates a number.
func AverageScore(vendors []*Vendor) (float64, error) {
	if len(vendors) == 0 {
		return 0, ErrEmptyCollection
	}

	total := 0
	for _, v := range vendors {
		total += v.OverallScore
	}
	return float64(total) / float64(len(vendors)), nil
}

// CountByStatus returns the number of vendors per status
func CountByStatus(vendors []*Vendor) map[string]int {
	counts := make(map[string]int, len(vendors))
	for _, v := range vendors {
		counts[v.Status.String()]++
	}
	return counts
}
