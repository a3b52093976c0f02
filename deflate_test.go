package realincome

import (
	"errors"
	"math"
	"testing"
)

func almost(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestDeflateRatio(t *testing.T) {
	r := DeflateRatio(100000, 100.0, 125.0)
	if !almost(r.Real, 80000.00) {
		t.Errorf("Real = %v, want 80000.00", r.Real)
	}
	if !almost(r.Loss, 20000.00) {
		t.Errorf("Loss = %v, want 20000.00", r.Loss)
	}
	if !r.LossPct.Equal(Percent(20.00)) {
		t.Errorf("LossPct = %v, want 20.00%%", r.LossPct)
	}
}

func TestDeflateRatioNoChange(t *testing.T) {
	r := DeflateRatio(5000, 113.2, 113.2)
	if r.Real != r.Nominal {
		t.Errorf("Real = %v, want nominal %v", r.Real, r.Nominal)
	}
	if r.LossPct != 0.0 {
		t.Errorf("LossPct = %v, want exactly 0", r.LossPct)
	}
}

func TestDeflateRatioDeflation(t *testing.T) {
	// index went down: the real value exceeds the nominal one
	r := DeflateRatio(1000, 110.0, 100.0)
	if r.Real <= r.Nominal {
		t.Errorf("Real = %v, want > nominal %v", r.Real, r.Nominal)
	}
	if r.Loss >= 0 {
		t.Errorf("Loss = %v, want negative", r.Loss)
	}
}

func TestChain(t *testing.T) {
	rates := []YearlyRate{
		{Year: 2020, Pct: 10.0},
		{Year: 2021, Pct: -5.0},
	}
	deflator, latest, err := Chain(rates)
	if err != nil {
		t.Fatalf("Chain() unexpected error: %v", err)
	}
	if !almost(deflator, 1.10*0.95) {
		t.Errorf("deflator = %v, want %v", deflator, 1.10*0.95)
	}
	if latest != 2021 {
		t.Errorf("latest = %d, want 2021", latest)
	}

	r := DeflateChain(1000, deflator)
	if !almost(r.Real, 1000/1.045) {
		t.Errorf("Real = %v, want %v", r.Real, 1000/1.045)
	}
	if !almost(r.Loss, 1000-1000/1.045) {
		t.Errorf("Loss = %v, want %v", r.Loss, 1000-1000/1.045)
	}
}

func TestChainEmpty(t *testing.T) {
	_, _, err := Chain(nil)
	if !errors.Is(err, ErrNoRecords) {
		t.Errorf("Chain(nil) err = %v, want ErrNoRecords", err)
	}
}

func TestDeflateChainUnitDeflator(t *testing.T) {
	r := DeflateChain(42000, 1.0)
	if r.Real != 42000 || r.Loss != 0 || r.LossPct != 0 {
		t.Errorf("DeflateChain(42000, 1.0) = %+v, want identity", r)
	}
}
