package analysis

import (
	"sync"
	"time"

	"InsiderScope/internal/calculator"
	"InsiderScope/internal/calendar"
	"InsiderScope/internal/classifier"
	"InsiderScope/internal/model"
	"InsiderScope/internal/observer"
)

// Options holds the analysis configuration. Zero values are filled in by
// withDefaults so a partially-specified Options is usable.
type Options struct {
	Horizons          []int
	Keywords          []string
	MinGroupSize      int
	SignificanceLevel float64
	CARDaysBefore     int
	CARDaysAfter      int
	CARMinEvents      int
	CARCategory       string
	MaxLag            int
}

func (o Options) withDefaults() Options {
	if len(o.Horizons) == 0 {
		o.Horizons = []int{1, 5, 10, 30}
	}
	if len(o.Keywords) == 0 {
		o.Keywords = classifier.DefaultKeywords
	}
	if o.MinGroupSize == 0 {
		o.MinGroupSize = 5
	}
	if o.SignificanceLevel == 0 {
		o.SignificanceLevel = 0.05
	}
	if o.CARDaysBefore == 0 {
		o.CARDaysBefore = 5
	}
	if o.CARDaysAfter == 0 {
		o.CARDaysAfter = 15
	}
	if o.CARMinEvents == 0 {
		o.CARMinEvents = 3
	}
	if o.CARCategory == "" {
		o.CARCategory = "Sale"
	}
	if o.MaxLag == 0 {
		o.MaxLag = 3
	}
	return o
}

// Result carries every derived output of one analysis run. The caller owns
// it; the borrowed inputs are never mutated.
type Result struct {
	Ticker         string
	Classification model.ActorClassification
	Returns        []model.ReturnRecord

	CategorySummaries  []model.GroupSummary
	ClassSummaries     []model.GroupSummary
	QuarterlySummaries []model.GroupSummary
	Significance       []model.SignificanceResult

	LagCorrelations []model.LagCorrelation
	BestLag         *model.LagCorrelation

	CAR *model.CARCurve
}

// Run executes the full event-study pipeline: classify actors, compute
// windowed returns, then run the three independent consumers (aggregation
// with significance testing, lag correlation, CAR) concurrently. signal maps
// midnight-UTC dates to a signal value (e.g. daily average sentiment) and may
// be nil to skip the lag analysis. Run fails fast on malformed inputs and is
// referentially transparent otherwise: identical inputs give identical
// results.
func Run(table *model.EventTable, series *model.PriceSeries, signal map[time.Time]float64, opts Options, obs observer.Observer) (*Result, error) {
	if err := series.Validate(); err != nil {
		return nil, err
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	res := calendar.NewResolver(series)
	result := &Result{
		Ticker:         table.Ticker,
		Classification: classifier.Classify(table, opts.Keywords),
	}
	result.Returns = calculator.ComputeReturns(table, res, opts.Horizons, obs)

	// The consumers read the same returns and write disjoint Result fields,
	// so they run in parallel without coordination.
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		result.CategorySummaries = SummarizeByCategory(table, result.Returns, opts.Horizons, opts.MinGroupSize)
		result.ClassSummaries = SummarizeByClass(table, result.Returns, result.Classification, opts.Horizons, opts.MinGroupSize)
		result.QuarterlySummaries = SummarizeByQuarter(table, result.Returns, opts.Horizons)
		for _, h := range opts.Horizons {
			if sig := CompareClasses(table, result.Returns, result.Classification, h, opts.MinGroupSize, opts.SignificanceLevel); sig != nil {
				result.Significance = append(result.Significance, *sig)
			}
		}
	}()

	if signal != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			points := BuildAligned(res, signal)
			result.LagCorrelations = LagCorrelations(points, opts.MaxLag)
			if best, ok := BestLag(result.LagCorrelations); ok {
				result.BestLag = &best
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		result.CAR = BuildCAR(table, res, opts.CARCategory, opts.CARDaysBefore, opts.CARDaysAfter, opts.CARMinEvents, obs)
	}()

	wg.Wait()
	return result, nil
}
