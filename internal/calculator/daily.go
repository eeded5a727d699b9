package calculator

import "InsiderScope/internal/calendar"

// DailyReturns computes simple day-over-day percentage returns for the
// contiguous index window [start, end] of a price series. The first entry is
// a synthetic 0.0 because the day before the window has no baseline, so the
// result has end-start+1 entries aligned with the window's trading days.
// Indices must be a valid range within the resolver; a zero previous close
// contributes 0.0 rather than an infinity.
func DailyReturns(res *calendar.Resolver, start, end int) []float64 {
	returns := make([]float64, 0, end-start+1)
	returns = append(returns, 0.0)
	for i := start + 1; i <= end; i++ {
		prev := res.Close(i - 1)
		if prev == 0 {
			returns = append(returns, 0.0)
			continue
		}
		returns = append(returns, (res.Close(i)-prev)/prev*100)
	}
	return returns
}

// CumulativeSum converts daily percentage returns into the additive running
// cumulative series. Summing rather than compounding is the deliberate
// convention for the CAR curve; it matches the historical output.
func CumulativeSum(daily []float64) []float64 {
	cum := make([]float64, len(daily))
	running := 0.0
	for i, r := range daily {
		running += r
		cum[i] = running
	}
	return cum
}
