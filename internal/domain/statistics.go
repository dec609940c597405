package domain

// ComputeCohortStatistics aggregates the score projections of one cohort.
// It returns nil for an empty cohort so callers can tell "no data" apart from
// a statistics object.
func ComputeCohortStatistics(cohort string, points []DistributionPoint) *CohortStatistics {
	if len(points) == 0 {
		return nil
	}

	var sumTotal, sumD1, sumD2, sumD3, sumD4, sumD5 int
	minTotal, maxTotal := points[0].Total, points[0].Total
	for _, p := range points {
		sumTotal += p.Total
		sumD1 += p.Scores.D1
		sumD2 += p.Scores.D2
		sumD3 += p.Scores.D3
		sumD4 += p.Scores.D4
		sumD5 += p.Scores.D5
		if p.Total < minTotal {
			minTotal = p.Total
		}
		if p.Total > maxTotal {
			maxTotal = p.Total
		}
	}

	n := float64(len(points))
	return &CohortStatistics{
		Cohort:     cohort,
		TotalCount: len(points),
		AvgTotal:   float64(sumTotal) / n,
		AvgD1:      float64(sumD1) / n,
		AvgD2:      float64(sumD2) / n,
		AvgD3:      float64(sumD3) / n,
		AvgD4:      float64(sumD4) / n,
		AvgD5:      float64(sumD5) / n,
		MinTotal:   minTotal,
		MaxTotal:   maxTotal,
	}
}
