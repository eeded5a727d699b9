package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"InsiderScope/internal/model"
)

// LoadSentiment reads a date,score CSV into the date-keyed signal map the
// lag analyzer consumes. Duplicate dates average their scores, matching how
// the upstream pipeline collapses multiple articles per day.
func LoadSentiment(path string) (map[time.Time]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sentiment: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read sentiment header: %w", err)
	}
	dateCol, scoreCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date":
			dateCol = i
		case "score", "sentiment", "average sentiment":
			scoreCol = i
		}
	}
	if dateCol < 0 || scoreCol < 0 {
		return nil, fmt.Errorf("%w: sentiment file %s needs date and score columns", model.ErrInvalidInput, path)
	}

	sums := make(map[time.Time]float64)
	counts := make(map[time.Time]int)
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read sentiment row %d: %w", line, err)
		}
		line++

		date, err := parseDate(row[dateCol])
		if err != nil {
			return nil, fmt.Errorf("%w: sentiment row %d: %v", model.ErrInvalidInput, line, err)
		}
		score, err := strconv.ParseFloat(strings.TrimSpace(row[scoreCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: sentiment row %d: bad score %q", model.ErrInvalidInput, line, row[scoreCol])
		}
		sums[date] += score
		counts[date]++
	}

	signal := make(map[time.Time]float64, len(sums))
	for d, sum := range sums {
		signal[d] = sum / float64(counts[d])
	}
	return signal, nil
}
