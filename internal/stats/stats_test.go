package stats

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestMeanMedian(t *testing.T) {
	tests := []struct {
		name   string
		xs     []float64
		mean   float64
		median float64
	}{
		{"empty", nil, 0, 0},
		{"single", []float64{3}, 3, 3},
		{"odd", []float64{5, 1, 3}, 3, 3},
		{"even", []float64{4, 1, 3, 2}, 2.5, 2.5},
		{"negative", []float64{-2, 2, -4, 4}, 0, 0},
	}
	for _, tt := range tests {
		if got := Mean(tt.xs); !almostEqual(got, tt.mean, 1e-12) {
			t.Errorf("%s: Mean = %v, want %v", tt.name, got, tt.mean)
		}
		if got := Median(tt.xs); !almostEqual(got, tt.median, 1e-12) {
			t.Errorf("%s: Median = %v, want %v", tt.name, got, tt.median)
		}
	}
}

func TestMedian_DoesNotModifyInput(t *testing.T) {
	xs := []float64{3, 1, 2}
	Median(xs)
	if xs[0] != 3 || xs[1] != 1 || xs[2] != 2 {
		t.Error("Median reordered its input")
	}
}

func TestVariance(t *testing.T) {
	// Sample variance of {2,4,4,4,5,5,7,9} is 32/7.
	got := Variance([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if !almostEqual(got, 32.0/7.0, 1e-12) {
		t.Errorf("Variance = %v, want %v", got, 32.0/7.0)
	}
	if Variance([]float64{1}) != 0 {
		t.Error("single-value variance should be 0")
	}
}

func TestPopStdDev(t *testing.T) {
	// Population stddev of {2,4,4,4,5,5,7,9} is exactly 2.
	got := PopStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if !almostEqual(got, 2.0, 1e-12) {
		t.Errorf("PopStdDev = %v, want 2", got)
	}
}

func TestPearson(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}

	if r, ok := Pearson(xs, []float64{2, 4, 6, 8, 10}); !ok || !almostEqual(r, 1, 1e-12) {
		t.Errorf("perfect positive: r=%v ok=%v", r, ok)
	}
	if r, ok := Pearson(xs, []float64{10, 8, 6, 4, 2}); !ok || !almostEqual(r, -1, 1e-12) {
		t.Errorf("perfect negative: r=%v ok=%v", r, ok)
	}
	if _, ok := Pearson(xs, []float64{3, 3, 3, 3, 3}); ok {
		t.Error("zero-variance series must be undefined, not a number")
	}
	if _, ok := Pearson([]float64{1}, []float64{2}); ok {
		t.Error("single pair must be undefined")
	}
	if _, ok := Pearson(xs, []float64{1, 2}); ok {
		t.Error("mismatched lengths must be undefined")
	}
}

func TestWelchTTest_KnownValue(t *testing.T) {
	// Unequal-variance example; reference values match
	// scipy.stats.ttest_ind(a, b, equal_var=False).
	a := []float64{27.5, 21.0, 19.0, 23.6, 17.0, 17.9, 16.9, 20.1, 21.9, 22.6, 23.1, 19.6, 19.0, 21.7, 21.4}
	b := []float64{27.1, 22.0, 20.8, 23.4, 23.4, 23.5, 25.8, 22.0, 24.8, 20.2, 21.9, 22.1, 22.9, 30.5, 25.2, 24.0, 21.5, 23.8, 20.7, 23.8}

	tstat, df, p, ok := WelchTTest(a, b)
	if !ok {
		t.Fatal("expected a defined result")
	}
	if !almostEqual(tstat, -2.9294, 1e-3) {
		t.Errorf("t = %v, want ≈ -2.9294", tstat)
	}
	if !almostEqual(df, 27.68, 0.05) {
		t.Errorf("df = %v, want ≈ 27.68", df)
	}
	if !almostEqual(p, 0.006729, 1e-4) {
		t.Errorf("p = %v, want ≈ 0.00673", p)
	}
}

func TestWelchTTest_SymmetricUnderSwap(t *testing.T) {
	a := []float64{1.2, 3.4, 2.2, 5.0, 4.1, 0.3}
	b := []float64{2.0, 2.5, 6.1, 4.4, 3.3, 5.8, 1.9}

	t1, _, p1, ok1 := WelchTTest(a, b)
	t2, _, p2, ok2 := WelchTTest(b, a)
	if !ok1 || !ok2 {
		t.Fatal("expected defined results")
	}
	if !almostEqual(t1, -t2, 1e-12) {
		t.Errorf("t(a,b)=%v, t(b,a)=%v: not antisymmetric", t1, t2)
	}
	if !almostEqual(p1, p2, 1e-12) {
		t.Errorf("p(a,b)=%v != p(b,a)=%v", p1, p2)
	}
}

func TestWelchTTest_IdenticalMeansHighP(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{1, 2, 3, 4, 5}
	tstat, _, p, ok := WelchTTest(a, b)
	if !ok {
		t.Fatal("expected a defined result")
	}
	if !almostEqual(tstat, 0, 1e-12) {
		t.Errorf("t = %v, want 0", tstat)
	}
	if !almostEqual(p, 1, 1e-9) {
		t.Errorf("p = %v, want 1", p)
	}
}

func TestWelchTTest_Degenerate(t *testing.T) {
	if _, _, _, ok := WelchTTest([]float64{1}, []float64{1, 2, 3}); ok {
		t.Error("sample of one must be undefined")
	}
	// Zero variance in both samples: no standard error to test against.
	if _, _, _, ok := WelchTTest([]float64{2, 2, 2}, []float64{5, 5, 5}); ok {
		t.Error("zero combined variance must be undefined, not Inf")
	}
}

func TestRegIncBeta_Bounds(t *testing.T) {
	if got := regIncBeta(2, 3, 0); got != 0 {
		t.Errorf("I_0 = %v, want 0", got)
	}
	if got := regIncBeta(2, 3, 1); got != 1 {
		t.Errorf("I_1 = %v, want 1", got)
	}
	// I_x(1,1) is the uniform CDF.
	if got := regIncBeta(1, 1, 0.42); !almostEqual(got, 0.42, 1e-12) {
		t.Errorf("I_0.42(1,1) = %v, want 0.42", got)
	}
}
