package calculator

import (
	"InsiderScope/internal/calendar"
	"InsiderScope/internal/model"
	"InsiderScope/internal/observer"
)

// ComputeReturns computes the percentage return of each event over each
// horizon. Per event: the anchor is the earliest tradable day on or after the
// event timestamp; per horizon h, the target is the earliest tradable day on
// or after anchor+h calendar days, and the return is
// (target close - anchor close) / anchor close * 100.
//
// Unresolvable anchors or targets and a zero anchor price produce invalid
// records. Horizons are independent: a missing target for one horizon never
// blocks the others. Records are emitted for every event × horizon pair, so
// len(result) == len(events) × len(horizons).
func ComputeReturns(table *model.EventTable, res *calendar.Resolver, horizons []int, obs observer.Observer) []model.ReturnRecord {
	records := make([]model.ReturnRecord, 0, len(table.Events)*len(horizons))
	resolved := 0

	for i, ev := range table.Events {
		anchorIdx, ok := res.OnOrAfter(ev.Timestamp)
		if !ok {
			obs.EventSkipped(i, "no trading day on or after event date")
			for _, h := range horizons {
				records = append(records, model.ReturnRecord{EventIndex: i, Horizon: h})
			}
			continue
		}

		base := res.Close(anchorIdx)
		if base == 0 {
			obs.EventSkipped(i, "zero base price on anchor day")
			for _, h := range horizons {
				records = append(records, model.ReturnRecord{EventIndex: i, Horizon: h})
			}
			continue
		}

		for _, h := range horizons {
			rec := model.ReturnRecord{EventIndex: i, Horizon: h}
			if targetIdx, ok := res.OnOrAfterOffset(anchorIdx, h); ok {
				rec.Pct = (res.Close(targetIdx) - base) / base * 100
				rec.Valid = true
				resolved++
			}
			records = append(records, rec)
		}
	}

	obs.Progress("computed %d of %d horizon returns for %d events",
		resolved, len(table.Events)*len(horizons), len(table.Events))
	return records
}
