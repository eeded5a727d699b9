package loader

import (
	"math"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadSentiment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sentiment.csv")
	writeFile(t, path, "date,score\n2024-01-01,0.5\n2024-01-01,0.1\n2024-01-02,-0.4\n")

	signal, err := LoadSentiment(path)
	if err != nil {
		t.Fatalf("LoadSentiment: %v", err)
	}
	if len(signal) != 2 {
		t.Fatalf("got %d dates, want 2", len(signal))
	}
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if got := signal[d1]; math.Abs(got-0.3) > 1e-12 {
		t.Errorf("duplicate dates should average: got %v, want 0.3", got)
	}
	d2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	if got := signal[d2]; math.Abs(got-(-0.4)) > 1e-12 {
		t.Errorf("signal[1/2] = %v, want -0.4", got)
	}
}
