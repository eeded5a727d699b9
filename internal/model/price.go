package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInput marks caller errors such as malformed price series or empty
// event tables. Expected absences (unresolved dates, thin samples) are never
// reported through it.
var ErrInvalidInput = errors.New("invalid input")

// PricePoint is one tradable day's closing price.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// PriceSeries holds the close-price history for one instrument, one entry per
// tradable day, dates strictly increasing. Read-only to the analysis engine.
type PriceSeries struct {
	Ticker string
	Points []PricePoint
}

// Validate checks the ordering and uniqueness invariant of the series.
func (s *PriceSeries) Validate() error {
	if len(s.Points) == 0 {
		return fmt.Errorf("%w: price series is empty", ErrInvalidInput)
	}
	for i := 1; i < len(s.Points); i++ {
		prev, cur := s.Points[i-1].Date, s.Points[i].Date
		if cur.Equal(prev) {
			return fmt.Errorf("%w: duplicate price date %s", ErrInvalidInput, cur.Format("2006-01-02"))
		}
		if cur.Before(prev) {
			return fmt.Errorf("%w: price dates out of order at %s", ErrInvalidInput, cur.Format("2006-01-02"))
		}
	}
	return nil
}
