package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"InsiderScope/internal/model"
)

// LoadEvents walks an insider_holdings directory laid out as one
// subdirectory per insider containing a holdings.csv, the layout the data
// gatherer writes:
//
//	insider_holdings/<insider name>/holdings.csv
//
// Required columns are date and transaction_type; relationship is carried as
// the actor's role text when present, and every other column passes through
// opaquely in the event payload. The directory name is the actor identity.
// Insiders whose file is missing are skipped with a warning; a directory
// yielding zero events is invalid input.
func LoadEvents(dir, ticker string) (*model.EventTable, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read insider dir: %w", err)
	}

	table := &model.EventTable{Ticker: ticker}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		insider := entry.Name()
		path := filepath.Join(dir, insider, "holdings.csv")
		events, err := loadHoldings(path, insider)
		if err != nil {
			if os.IsNotExist(err) {
				log.Printf("[WARN] no holdings file for insider %q, skipping", insider)
				continue
			}
			return nil, fmt.Errorf("insider %q: %w", insider, err)
		}
		table.Events = append(table.Events, events...)
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

func loadHoldings(path, insider string) ([]model.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	dateCol, ok := cols["date"]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no date column", model.ErrInvalidInput, path)
	}
	typeCol, ok := cols["transaction_type"]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no transaction_type column", model.ErrInvalidInput, path)
	}
	relCol, hasRel := cols["relationship"]

	var events []model.Event
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		line++

		date, err := parseDate(row[dateCol])
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %d: %v", model.ErrInvalidInput, path, line, err)
		}

		ev := model.Event{
			Timestamp: date,
			Category:  strings.TrimSpace(row[typeCol]),
			ActorID:   insider,
		}
		if hasRel {
			ev.RoleText = strings.TrimSpace(row[relCol])
		}
		for name, idx := range cols {
			if idx == dateCol || idx == typeCol || (hasRel && idx == relCol) {
				continue
			}
			if idx < len(row) {
				if ev.Payload == nil {
					ev.Payload = make(map[string]string)
				}
				ev.Payload[name] = row[idx]
			}
		}
		events = append(events, ev)
	}
	return events, nil
}
