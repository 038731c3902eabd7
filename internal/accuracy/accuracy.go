package accuracy

import (
	"sort"

	"github.com/driftbench/go-harness/internal/losses"
)

// #region predictions

// Predictions returns the argmax class per logit row.
func Predictions(logits [][]float64) []int {
	out := make([]int, len(logits))
	for i, row := range logits {
		out[i] = losses.Argmax(row)
	}
	return out
}

// #endregion predictions

// #region stream-counter

// StreamCounter accumulates correctness over one (domain, severity) stream.
type StreamCounter struct {
	Correct int
	Total   int
}

// Observe adds one batch of predictions.
func (c *StreamCounter) Observe(preds, labels []int) {
	for i := range preds {
		if preds[i] == labels[i] {
			c.Correct++
		}
	}
	c.Total += len(preds)
}

// Accuracy returns the running accuracy, 0 for an empty stream.
func (c *StreamCounter) Accuracy() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Correct) / float64(c.Total)
}

// Error returns 1 - accuracy.
func (c *StreamCounter) Error() float64 {
	return 1.0 - c.Accuracy()
}

// #endregion stream-counter

// #region tracker

// Tracker accumulates run-level error statistics: the flat error list, the
// severity-5 subset, and per-domain sample attribution for mixed streams.
type Tracker struct {
	errs          []float64
	errs5         []float64
	domainCorrect map[string]int
	domainTotal   map[string]int
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		domainCorrect: make(map[string]int),
		domainTotal:   make(map[string]int),
	}
}

// RecordStream registers the final error of one (domain, severity) stream.
// Severity-5 errors are tracked separately, excluding the "none" domain.
func (t *Tracker) RecordStream(domain string, severity int, err float64) {
	t.errs = append(t.errs, err)
	if severity == 5 && domain != "none" {
		t.errs5 = append(t.errs5, err)
	}
}

// ObserveSamples attributes per-sample correctness to source domains. Used
// in mixed-domain streams, where a batch spans several domains.
func (t *Tracker) ObserveSamples(domains []string, preds, labels []int) {
	for i := range preds {
		if i >= len(domains) || domains[i] == "" {
			continue
		}
		t.domainTotal[domains[i]]++
		if preds[i] == labels[i] {
			t.domainCorrect[domains[i]]++
		}
	}
}

// Errors returns the flat stream error list.
func (t *Tracker) Errors() []float64 { return t.errs }

// MeanError returns the mean over all recorded stream errors.
func (t *Tracker) MeanError() float64 { return losses.Mean(t.errs) }

// MeanErrorAtSeverity5 returns the mean severity-5 error and whether any
// severity-5 streams were recorded.
func (t *Tracker) MeanErrorAtSeverity5() (float64, bool) {
	if len(t.errs5) == 0 {
		return 0, false
	}
	return losses.Mean(t.errs5), true
}

// HasDomainSamples reports whether any per-domain sample attribution exists.
func (t *Tracker) HasDomainSamples() bool { return len(t.domainTotal) > 0 }

// #endregion tracker

// #region breakdown

// DomainError is the per-domain error summary for mixed streams.
type DomainError struct {
	Domain  string
	Err     float64
	Samples int
}

// DomainBreakdown reports per-domain errors in domain-sequence order,
// followed by any observed domains missing from the sequence, sorted by name.
func (t *Tracker) DomainBreakdown(domainSeq []string) []DomainError {
	var out []DomainError
	seen := make(map[string]bool)

	emit := func(d string) {
		total := t.domainTotal[d]
		if total == 0 {
			return
		}
		out = append(out, DomainError{
			Domain:  d,
			Err:     1.0 - float64(t.domainCorrect[d])/float64(total),
			Samples: total,
		})
		seen[d] = true
	}

	for _, d := range domainSeq {
		emit(d)
	}
	var extras []string
	for d := range t.domainTotal {
		if !seen[d] {
			extras = append(extras, d)
		}
	}
	sort.Strings(extras)
	for _, d := range extras {
		emit(d)
	}
	return out
}

// #endregion breakdown
