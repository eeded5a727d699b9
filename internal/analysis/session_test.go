package analysis

import (
	"errors"
	"testing"
	"time"

	"InsiderScope/internal/model"
	"InsiderScope/internal/observer"
)

// sessionFixture builds a 60-day price series with mild drift and an event
// table mixing committee and regular actors.
func sessionFixture() (*model.EventTable, *model.PriceSeries) {
	series := &model.PriceSeries{Ticker: "TEST"}
	start := day(2024, 1, 1)
	close := 100.0
	for i := 0; i < 60; i++ {
		series.Points = append(series.Points, model.PricePoint{Date: start.AddDate(0, 0, i), Close: close})
		if i%2 == 0 {
			close *= 1.004
		} else {
			close *= 0.998
		}
	}

	table := &model.EventTable{Ticker: "TEST"}
	roles := []string{"Director", "CFO", "Audit Committee Member", "VP Engineering", "Board Chair", "Controller"}
	for i := 0; i < 12; i++ {
		table.Events = append(table.Events, model.Event{
			Timestamp: start.AddDate(0, 0, 6+i*2),
			Category:  "Sale",
			ActorID:   roles[i%len(roles)],
			RoleText:  roles[i%len(roles)],
		})
	}
	return table, series
}

func TestRun_FullPipeline(t *testing.T) {
	table, series := sessionFixture()
	signal := map[time.Time]float64{}
	for i, p := range series.Points {
		signal[p.Date] = float64(i%5) - 2
	}

	result, err := Run(table, series, signal, Options{
		Horizons:      []int{1, 5},
		MinGroupSize:  5,
		CARDaysBefore: 3,
		CARDaysAfter:  5,
	}, observer.NopObserver{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(result.Returns) != len(table.Events)*2 {
		t.Errorf("returns: %d records, want %d", len(result.Returns), len(table.Events)*2)
	}
	if len(result.Classification) != 6 {
		t.Errorf("classification: %d actors, want 6", len(result.Classification))
	}
	if len(result.CategorySummaries) == 0 {
		t.Error("expected Sale category summaries")
	}
	if len(result.QuarterlySummaries) == 0 {
		t.Error("expected quarterly summaries")
	}
	if len(result.LagCorrelations) != 4 {
		t.Errorf("lag correlations: %d, want 4 (lags 0..3)", len(result.LagCorrelations))
	}
	if result.CAR == nil {
		t.Error("expected a CAR curve with 12 interior Sale events")
	}
}

func TestRun_DeterministicAcrossCalls(t *testing.T) {
	table, series := sessionFixture()
	opts := Options{Horizons: []int{1, 5, 10}, CARDaysBefore: 3, CARDaysAfter: 5}

	a, err := Run(table, series, nil, opts, observer.NopObserver{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Run(table, series, nil, opts, observer.NopObserver{})
	if err != nil {
		t.Fatal(err)
	}

	if len(a.Returns) != len(b.Returns) {
		t.Fatal("record counts differ across identical runs")
	}
	for i := range a.Returns {
		if a.Returns[i] != b.Returns[i] {
			t.Fatalf("record %d differs across identical runs", i)
		}
	}
	if len(a.CategorySummaries) != len(b.CategorySummaries) {
		t.Error("summaries differ across identical runs")
	}
}

func TestRun_NilSignalSkipsLagAnalysis(t *testing.T) {
	table, series := sessionFixture()
	result, err := Run(table, series, nil, Options{CARDaysBefore: 3, CARDaysAfter: 5}, observer.NopObserver{})
	if err != nil {
		t.Fatal(err)
	}
	if result.LagCorrelations != nil || result.BestLag != nil {
		t.Error("lag analysis should be skipped without a signal series")
	}
}

func TestRun_InvalidInputsFailFast(t *testing.T) {
	table, series := sessionFixture()

	_, err := Run(&model.EventTable{Ticker: "TEST"}, series, nil, Options{}, observer.NopObserver{})
	if !errors.Is(err, model.ErrInvalidInput) {
		t.Errorf("empty event table: err = %v, want ErrInvalidInput", err)
	}

	bad := &model.PriceSeries{Ticker: "TEST", Points: []model.PricePoint{
		{Date: day(2024, 1, 2), Close: 100},
		{Date: day(2024, 1, 1), Close: 101},
	}}
	_, err = Run(table, bad, nil, Options{}, observer.NopObserver{})
	if !errors.Is(err, model.ErrInvalidInput) {
		t.Errorf("out-of-order prices: err = %v, want ErrInvalidInput", err)
	}
}

func TestOptions_Defaults(t *testing.T) {
	o := Options{}.withDefaults()
	if len(o.Horizons) != 4 || o.Horizons[3] != 30 {
		t.Errorf("horizons: %v", o.Horizons)
	}
	if o.MinGroupSize != 5 || o.SignificanceLevel != 0.05 {
		t.Errorf("min=%d alpha=%v", o.MinGroupSize, o.SignificanceLevel)
	}
	if o.CARDaysBefore != 5 || o.CARDaysAfter != 15 || o.CARMinEvents != 3 {
		t.Errorf("CAR window: %d/%d min %d", o.CARDaysBefore, o.CARDaysAfter, o.CARMinEvents)
	}
	if o.MaxLag != 3 || o.CARCategory != "Sale" {
		t.Errorf("maxLag=%d category=%q", o.MaxLag, o.CARCategory)
	}
}
