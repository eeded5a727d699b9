package calendar

import (
	"sort"
	"time"

	"InsiderScope/internal/model"
)

// Resolver maps arbitrary calendar dates onto the tradable days of one price
// series. Built once per series; all lookups are binary searches instead of
// re-scanning the series for every event and horizon.
type Resolver struct {
	dates  []time.Time
	closes []float64
}

// NewResolver builds the lookup index for a price series.
func NewResolver(series *model.PriceSeries) *Resolver {
	r := &Resolver{
		dates:  make([]time.Time, len(series.Points)),
		closes: make([]float64, len(series.Points)),
	}
	for i, p := range series.Points {
		r.dates[i] = p.Date
		r.closes[i] = p.Close
	}
	return r
}

// Len returns the number of tradable days in the index.
func (r *Resolver) Len() int { return len(r.dates) }

// Date returns the date at a resolved index.
func (r *Resolver) Date(idx int) time.Time { return r.dates[idx] }

// Close returns the closing price at a resolved index.
func (r *Resolver) Close(idx int) float64 { return r.closes[idx] }

// OnOrAfter returns the index of the earliest tradable day >= d. The second
// return is false when every tradable day precedes d (event past the end of
// the data range) — an expected outcome, not a failure.
func (r *Resolver) OnOrAfter(d time.Time) (int, bool) {
	idx := sort.Search(len(r.dates), func(i int) bool {
		return !r.dates[i].Before(d)
	})
	if idx == len(r.dates) {
		return 0, false
	}
	return idx, true
}

// OnOrAfterOffset returns the index of the earliest tradable day >= the
// anchor day's date plus offsetDays calendar days.
func (r *Resolver) OnOrAfterOffset(anchorIdx, offsetDays int) (int, bool) {
	target := r.dates[anchorIdx].AddDate(0, 0, offsetDays)
	return r.OnOrAfter(target)
}
