package model

// ReturnRecord is one event's percentage return over one horizon. Valid is
// false when the anchor or target trading day could not be resolved, or the
// base price was zero; that is a normal outcome, not an error.
type ReturnRecord struct {
	EventIndex int // index into the source EventTable
	Horizon    int // day offset from the anchor
	Pct        float64
	Valid      bool
}

// GroupSummary describes the valid returns of one group at one horizon.
type GroupSummary struct {
	GroupKey string
	Horizon  int
	Mean     float64
	Median   float64
	Count    int
}

// SignificanceResult is a Welch two-sample comparison of the Primary and
// Other actor classes at one horizon.
type SignificanceResult struct {
	Horizon       int
	PrimaryMean   float64
	PrimaryMedian float64
	PrimaryCount  int
	OtherMean     float64
	OtherMedian   float64
	OtherCount    int
	TStatistic    float64
	PValue        float64
	Significant   bool
}

// LagCorrelation is the Pearson correlation between a signal series shifted
// back by LagDays and the daily return series. Insufficient marks lags where
// fewer than the minimum paired points (or no variance) were available; the
// zero correlation is then "undetermined", not "no effect".
type LagCorrelation struct {
	LagDays      int
	Correlation  float64
	PairCount    int
	Insufficient bool
}

// CARPoint is one offset of the averaged cumulative-return curve.
type CARPoint struct {
	OffsetDay     int // relative to the event day (0)
	MeanCumReturn float64
	StdError      float64
}

// CARCurve spans a fixed window of trading days around the event day.
// Downstream confidence bands use MeanCumReturn ± 1.96 × StdError.
type CARCurve struct {
	Category   string
	EventCount int
	Points     []CARPoint
}
