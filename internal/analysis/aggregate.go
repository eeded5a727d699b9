// Package analysis turns per-event horizon returns into the reportable
// results: group summaries, class significance tests, lag correlations, and
// the cumulative-return curve around events.
package analysis

import (
	"fmt"
	"sort"

	"InsiderScope/internal/model"
	"InsiderScope/internal/stats"
)

// collectValid buckets the valid returns at one horizon by an event-derived
// key. Invalid records are dropped here and never reach a statistic.
func collectValid(table *model.EventTable, records []model.ReturnRecord, horizon int, key func(model.Event) string) map[string][]float64 {
	groups := make(map[string][]float64)
	for _, rec := range records {
		if !rec.Valid || rec.Horizon != horizon {
			continue
		}
		k := key(table.Events[rec.EventIndex])
		groups[k] = append(groups[k], rec.Pct)
	}
	return groups
}

// summarizeGroups emits a GroupSummary per group and horizon, suppressing
// groups with fewer than minGroup valid returns.
func summarizeGroups(table *model.EventTable, records []model.ReturnRecord, horizons []int, minGroup int, key func(model.Event) string) []model.GroupSummary {
	var summaries []model.GroupSummary
	for _, h := range horizons {
		groups := collectValid(table, records, h, key)
		keys := make([]string, 0, len(groups))
		for k := range groups {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			vals := groups[k]
			if len(vals) < minGroup {
				continue
			}
			summaries = append(summaries, model.GroupSummary{
				GroupKey: k,
				Horizon:  h,
				Mean:     stats.Mean(vals),
				Median:   stats.Median(vals),
				Count:    len(vals),
			})
		}
	}
	return summaries
}

// SummarizeByCategory groups valid returns by event category (transaction
// type) per horizon.
func SummarizeByCategory(table *model.EventTable, records []model.ReturnRecord, horizons []int, minGroup int) []model.GroupSummary {
	return summarizeGroups(table, records, horizons, minGroup, func(ev model.Event) string {
		return ev.Category
	})
}

// SummarizeByClass groups valid returns by the actor classification per
// horizon.
func SummarizeByClass(table *model.EventTable, records []model.ReturnRecord, classes model.ActorClassification, horizons []int, minGroup int) []model.GroupSummary {
	return summarizeGroups(table, records, horizons, minGroup, func(ev model.Event) string {
		return string(classes.Class(ev.ActorID))
	})
}

// SummarizeByQuarter buckets valid returns by the event's calendar quarter
// ("2024Q1") per horizon, for drift-over-time reporting. Quarters are not
// suppressed by sample size; Count lets the consumer judge thinness.
func SummarizeByQuarter(table *model.EventTable, records []model.ReturnRecord, horizons []int) []model.GroupSummary {
	return summarizeGroups(table, records, horizons, 1, func(ev model.Event) string {
		q := (int(ev.Timestamp.Month())-1)/3 + 1
		return fmt.Sprintf("%dQ%d", ev.Timestamp.Year(), q)
	})
}

// CompareClasses runs Welch's unequal-variance t-test between the Primary and
// Other actor classes at one horizon. It returns nil when either class has
// fewer than minGroup valid returns, or when the test is numerically
// undefined (zero combined variance).
func CompareClasses(table *model.EventTable, records []model.ReturnRecord, classes model.ActorClassification, horizon, minGroup int, alpha float64) *model.SignificanceResult {
	groups := collectValid(table, records, horizon, func(ev model.Event) string {
		return string(classes.Class(ev.ActorID))
	})
	primary := groups[string(model.ActorPrimary)]
	other := groups[string(model.ActorOther)]
	if len(primary) < minGroup || len(other) < minGroup {
		return nil
	}

	t, _, p, ok := stats.WelchTTest(primary, other)
	if !ok {
		return nil
	}
	return &model.SignificanceResult{
		Horizon:       horizon,
		PrimaryMean:   stats.Mean(primary),
		PrimaryMedian: stats.Median(primary),
		PrimaryCount:  len(primary),
		OtherMean:     stats.Mean(other),
		OtherMedian:   stats.Median(other),
		OtherCount:    len(other),
		TStatistic:    t,
		PValue:        p,
		Significant:   p < alpha,
	}
}
