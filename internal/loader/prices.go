// Package loader reads the engine's CSV inputs: one close-price history per
// ticker plus the per-insider transaction files the data gatherer writes.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"InsiderScope/internal/model"
)

// dateLayouts are tried in order when parsing CSV date cells.
var dateLayouts = []string{"2006-01-02", "2006-01-02 15:04:05", "01/02/2006"}

func parseDate(cell string) (time.Time, error) {
	cell = strings.TrimSpace(cell)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			// Normalize to midnight UTC so map keys line up across inputs.
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", cell)
}

// LoadPrices reads a stock_prices.csv with at least Date and Close columns.
// Close cells are parsed as decimals so values like "1,234.50" from the
// scraper round-trip exactly before conversion to float64. The series must
// have strictly increasing, unique dates; violations are invalid input.
func LoadPrices(path, ticker string) (*model.PriceSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open prices: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read prices header: %w", err)
	}
	dateCol, closeCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date":
			dateCol = i
		case "close":
			closeCol = i
		}
	}
	if dateCol < 0 || closeCol < 0 {
		return nil, fmt.Errorf("%w: prices file %s needs Date and Close columns", model.ErrInvalidInput, path)
	}

	series := &model.PriceSeries{Ticker: ticker}
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read prices row %d: %w", line, err)
		}
		line++

		date, err := parseDate(row[dateCol])
		if err != nil {
			return nil, fmt.Errorf("%w: prices row %d: %v", model.ErrInvalidInput, line, err)
		}
		cell := strings.ReplaceAll(strings.TrimSpace(row[closeCol]), ",", "")
		d, err := decimal.NewFromString(cell)
		if err != nil {
			return nil, fmt.Errorf("%w: prices row %d: bad close %q", model.ErrInvalidInput, line, row[closeCol])
		}
		series.Points = append(series.Points, model.PricePoint{
			Date:  date,
			Close: d.InexactFloat64(),
		})
	}

	if err := series.Validate(); err != nil {
		return nil, err
	}
	return series, nil
}
