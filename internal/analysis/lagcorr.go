package analysis

import (
	"time"

	"InsiderScope/internal/calendar"
	"InsiderScope/internal/model"
	"InsiderScope/internal/stats"
)

// minLagPairs is the fewest paired points a lag needs before its correlation
// is considered determined.
const minLagPairs = 3

// AlignedPoint pairs one trading day's signal value (e.g. average news
// sentiment) with that day's simple return. Either side may be missing.
type AlignedPoint struct {
	Date      time.Time
	Signal    float64
	HasSignal bool
	Return    float64
	HasReturn bool
}

// BuildAligned joins a date-keyed signal map onto the trading days of a price
// series. The first trading day has no return (no prior close); days without
// a signal observation keep HasSignal false and are dropped pairwise later.
// Signal keys must be normalized to midnight UTC, as the loader produces.
func BuildAligned(res *calendar.Resolver, signal map[time.Time]float64) []AlignedPoint {
	points := make([]AlignedPoint, res.Len())
	for i := 0; i < res.Len(); i++ {
		p := AlignedPoint{Date: res.Date(i)}
		if v, ok := signal[res.Date(i)]; ok {
			p.Signal = v
			p.HasSignal = true
		}
		if i > 0 && res.Close(i-1) != 0 {
			p.Return = (res.Close(i) - res.Close(i-1)) / res.Close(i-1) * 100
			p.HasReturn = true
		}
		points[i] = p
	}
	return points
}

// LagCorrelations computes the Pearson correlation between signal[t-L] and
// return[t] for every lag L in 0..maxLag. Rows missing either side of a
// shifted pair are dropped pairwise. A lag with fewer than minLagPairs pairs,
// or with an all-identical series, reports correlation 0 with Insufficient
// set — "undetermined" is kept distinct from a genuine zero correlation.
func LagCorrelations(points []AlignedPoint, maxLag int) []model.LagCorrelation {
	results := make([]model.LagCorrelation, 0, maxLag+1)
	for lag := 0; lag <= maxLag; lag++ {
		var sig, ret []float64
		for t := lag; t < len(points); t++ {
			if !points[t].HasReturn || !points[t-lag].HasSignal {
				continue
			}
			sig = append(sig, points[t-lag].Signal)
			ret = append(ret, points[t].Return)
		}

		lc := model.LagCorrelation{LagDays: lag, PairCount: len(sig)}
		if len(sig) < minLagPairs {
			lc.Insufficient = true
		} else if r, ok := stats.Pearson(sig, ret); ok {
			lc.Correlation = r
		} else {
			lc.Insufficient = true
		}
		results = append(results, lc)
	}
	return results
}

// BestLag selects the determined lag with the largest absolute correlation,
// ties going to the smallest lag. ok is false when every lag was
// insufficient.
func BestLag(results []model.LagCorrelation) (model.LagCorrelation, bool) {
	var best model.LagCorrelation
	found := false
	for _, lc := range results {
		if lc.Insufficient {
			continue
		}
		if !found || abs(lc.Correlation) > abs(best.Correlation) {
			best = lc
			found = true
		}
	}
	return best, found
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
