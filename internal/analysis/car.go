package analysis

import (
	"math"

	"InsiderScope/internal/calculator"
	"InsiderScope/internal/calendar"
	"InsiderScope/internal/model"
	"InsiderScope/internal/observer"
	"InsiderScope/internal/stats"
)

// BuildCAR averages the cumulative daily-return paths around every event of
// one category. An event qualifies only if its anchor day has daysBefore
// prior and daysAfter following trading days in the series; others are
// filtered out, not errors. Daily returns start with a synthetic 0.0 and are
// summed, not compounded — the additive convention the historical output
// uses. Returns nil unless at least minEvents events qualify. The standard
// error per offset is the population stddev over sqrt(n); consumers draw the
// band at mean ± 1.96 × standard error.
func BuildCAR(table *model.EventTable, res *calendar.Resolver, category string, daysBefore, daysAfter, minEvents int, obs observer.Observer) *model.CARCurve {
	width := daysBefore + daysAfter + 1
	var paths [][]float64

	for i, ev := range table.Events {
		if ev.Category != category {
			continue
		}
		anchorIdx, ok := res.OnOrAfter(ev.Timestamp)
		if !ok {
			obs.EventSkipped(i, "no trading day on or after event date")
			continue
		}
		if anchorIdx < daysBefore || anchorIdx+daysAfter >= res.Len() {
			obs.EventSkipped(i, "incomplete trading window around anchor")
			continue
		}
		daily := calculator.DailyReturns(res, anchorIdx-daysBefore, anchorIdx+daysAfter)
		paths = append(paths, calculator.CumulativeSum(daily))
	}

	obs.Progress("CAR %q: %d qualifying events", category, len(paths))
	if len(paths) < minEvents {
		return nil
	}

	curve := &model.CARCurve{
		Category:   category,
		EventCount: len(paths),
		Points:     make([]model.CARPoint, width),
	}
	n := float64(len(paths))
	offsetVals := make([]float64, len(paths))
	for j := 0; j < width; j++ {
		for k, path := range paths {
			offsetVals[k] = path[j]
		}
		curve.Points[j] = model.CARPoint{
			OffsetDay:     j - daysBefore,
			MeanCumReturn: stats.Mean(offsetVals),
			StdError:      stats.PopStdDev(offsetVals) / math.Sqrt(n),
		}
	}
	return curve
}
