package ta

import (
	"math"
	"testing"
)

func TestSMA(t *testing.T) {
	vals := []float64{1, 2, 3, 4, 5}

	if got := SMA(vals, 5); got != 3 {
		t.Errorf("SMA(5): expected 3, got %f", got)
	}
	if got := SMA(vals, 2); got != 4.5 {
		t.Errorf("SMA(2): expected 4.5, got %f", got)
	}
	if got := SMA(vals, 6); !math.IsNaN(got) {
		t.Errorf("window larger than data: expected NaN, got %f", got)
	}
	if got := SMA(vals, 0); !math.IsNaN(got) {
		t.Errorf("zero window: expected NaN, got %f", got)
	}
}

func TestSMASeries(t *testing.T) {
	vals := []float64{1, 2, 3, 4, 5}

	got := SMASeries(vals, 3)
	want := []float64{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: expected %f, got %f", i, want[i], got[i])
		}
	}

	if got := SMASeries(vals, 6); got != nil {
		t.Errorf("window larger than data: expected nil, got %v", got)
	}
}

func TestPctReturns(t *testing.T) {
	got := PctReturns([]float64{100, 110, 99})
	if len(got) != 2 {
		t.Fatalf("expected 2 returns, got %d", len(got))
	}
	if math.Abs(got[0]-0.1) > 1e-12 {
		t.Errorf("first return: expected 0.1, got %f", got[0])
	}
	if math.Abs(got[1]-(-0.1)) > 1e-12 {
		t.Errorf("second return: expected -0.1, got %f", got[1])
	}

	// Zero-priced bars never divide.
	got = PctReturns([]float64{100, 0, 50})
	for _, r := range got {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			t.Errorf("returns must stay finite, got %v", got)
		}
	}
}

func TestSampleStdDev(t *testing.T) {
	if got := SampleStdDev([]float64{2, 2, 2, 2}); got != 0 {
		t.Errorf("constant values: expected 0, got %f", got)
	}
	// Known sample stddev of {2, 4, 4, 4, 5, 5, 7, 9} is ~2.138.
	got := SampleStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if math.Abs(got-2.1380899) > 1e-6 {
		t.Errorf("expected ~2.138, got %f", got)
	}
	if got := SampleStdDev([]float64{1}); got != 0 {
		t.Errorf("single value: expected 0, got %f", got)
	}
}

func TestAnnualizedVol(t *testing.T) {
	returns := []float64{0.01, -0.01, 0.01, -0.01}
	want := SampleStdDev(returns) * math.Sqrt(252)
	if got := AnnualizedVol(returns); got != want {
		t.Errorf("expected %f, got %f", want, got)
	}
}

func TestATR(t *testing.T) {
	highs := []float64{12, 12, 12, 12}
	lows := []float64{10, 10, 10, 10}
	closes := []float64{11, 11, 11, 11}

	if got := ATR(highs, lows, closes, 3); got != 2 {
		t.Errorf("expected ATR 2, got %f", got)
	}
	if got := ATR(highs, lows, closes, 4); !math.IsNaN(got) {
		t.Errorf("insufficient data: expected NaN, got %f", got)
	}
	if got := ATR(highs[:2], lows, closes, 1); !math.IsNaN(got) {
		t.Errorf("mismatched lengths: expected NaN, got %f", got)
	}
}
