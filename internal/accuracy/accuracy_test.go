package accuracy

import (
	"math"
	"testing"
)

func TestPredictions(t *testing.T) {
	logits := [][]float64{
		{0.1, 2.0, -1.0},
		{3.0, 0.0, 0.0},
		{-1.0, -2.0, -0.5},
	}
	want := []int{1, 0, 2}
	got := Predictions(logits)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("prediction %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestStreamCounter(t *testing.T) {
	var c StreamCounter
	c.Observe([]int{0, 1, 2, 3}, []int{0, 1, 0, 0})
	c.Observe([]int{1, 1}, []int{1, 1})

	if c.Total != 6 || c.Correct != 4 {
		t.Fatalf("got %d/%d, want 4/6", c.Correct, c.Total)
	}
	if math.Abs(c.Error()-(1.0-4.0/6.0)) > 1e-12 {
		t.Fatalf("error: got %v", c.Error())
	}
}

func TestStreamCounterEmpty(t *testing.T) {
	var c StreamCounter
	if c.Accuracy() != 0 {
		t.Fatalf("empty counter accuracy: got %v", c.Accuracy())
	}
}

func TestTrackerSeverity5Subset(t *testing.T) {
	tr := NewTracker()
	tr.RecordStream("gaussian_noise", 5, 0.4)
	tr.RecordStream("gaussian_noise", 3, 0.2)
	tr.RecordStream("none", 5, 0.1) // source domain, excluded from errs5
	tr.RecordStream("fog", 5, 0.6)

	if len(tr.Errors()) != 4 {
		t.Fatalf("total streams: got %d", len(tr.Errors()))
	}
	mean5, ok := tr.MeanErrorAtSeverity5()
	if !ok {
		t.Fatal("expected severity-5 errors")
	}
	if math.Abs(mean5-0.5) > 1e-12 {
		t.Fatalf("severity-5 mean: got %v, want 0.5", mean5)
	}
}

func TestTrackerNoSeverity5(t *testing.T) {
	tr := NewTracker()
	tr.RecordStream("fog", 3, 0.2)
	if _, ok := tr.MeanErrorAtSeverity5(); ok {
		t.Fatal("no severity-5 streams recorded, ok should be false")
	}
}

func TestDomainBreakdownOrderAndErrors(t *testing.T) {
	tr := NewTracker()
	// fog: 1/2 correct, snow: 2/2 correct.
	tr.ObserveSamples(
		[]string{"fog", "snow", "fog", "snow"},
		[]int{0, 1, 2, 3},
		[]int{0, 1, 1, 3},
	)

	bd := tr.DomainBreakdown([]string{"snow", "fog", "frost"})
	if len(bd) != 2 {
		t.Fatalf("breakdown length: got %d, want 2", len(bd))
	}
	if bd[0].Domain != "snow" || bd[1].Domain != "fog" {
		t.Fatalf("breakdown order: got %s, %s", bd[0].Domain, bd[1].Domain)
	}
	if bd[0].Err != 0 {
		t.Fatalf("snow error: got %v, want 0", bd[0].Err)
	}
	if math.Abs(bd[1].Err-0.5) > 1e-12 {
		t.Fatalf("fog error: got %v, want 0.5", bd[1].Err)
	}
	if bd[1].Samples != 2 {
		t.Fatalf("fog samples: got %d, want 2", bd[1].Samples)
	}
}

func TestDomainBreakdownSortsOffSequenceDomains(t *testing.T) {
	tr := NewTracker()
	tr.ObserveSamples(
		[]string{"sketch", "clipart", "painting", "fog"},
		[]int{0, 1, 2, 3},
		[]int{0, 1, 2, 3},
	)

	bd := tr.DomainBreakdown([]string{"fog"})
	want := []string{"fog", "clipart", "painting", "sketch"}
	if len(bd) != len(want) {
		t.Fatalf("breakdown length: got %d, want %d", len(bd), len(want))
	}
	for i := range want {
		if bd[i].Domain != want[i] {
			t.Fatalf("position %d: got %s, want %s", i, bd[i].Domain, want[i])
		}
	}
}

func TestObserveSamplesSkipsMissingDomains(t *testing.T) {
	tr := NewTracker()
	tr.ObserveSamples([]string{"fog"}, []int{0, 1}, []int{0, 1})
	bd := tr.DomainBreakdown([]string{"fog"})
	if len(bd) != 1 || bd[0].Samples != 1 {
		t.Fatalf("expected one fog sample, got %+v", bd)
	}
}
