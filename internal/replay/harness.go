// Package replay re-runs recorded logit batches through the adaptation
// engine and checks the outcomes against expectations. It operates entirely
// in-memory: no backend, no gradient work, fully deterministic.
package replay

import (
	"fmt"
	"math"

	"github.com/driftbench/go-harness/internal/accuracy"
	"github.com/driftbench/go-harness/internal/adapt"
	"github.com/driftbench/go-harness/internal/results"
)

// #region types

// RecordedBatch is one recorded test batch: the labels and every logit view
// the backend produced for it.
type RecordedBatch struct {
	Labels []int
	Views  adapt.LogitViews
}

// BatchResult captures the engine outcome of replaying one batch.
type BatchResult struct {
	Index        int
	Action       string // "commit" | "skip"
	Reason       string
	CombinedLoss float64
	BatchErr     float64
}

// Summary aggregates a replay run.
type Summary struct {
	TotalBatches int
	Commits      int
	Skips        int
	FinalErr     float64
}

// #endregion types

// #region replay

// Replay feeds the recorded batches through a fresh engine and accumulates
// classification error over the student view.
func Replay(engineConfig adapt.EngineConfig, batches []RecordedBatch) ([]BatchResult, Summary) {
	engine := adapt.NewEngine(engineConfig)
	var counter accuracy.StreamCounter
	out := make([]BatchResult, 0, len(batches))

	for i, batch := range batches {
		step := engine.Step(batch.Views)

		var batchCounter accuracy.StreamCounter
		preds := accuracy.Predictions(batch.Views.Student)
		batchCounter.Observe(preds, batch.Labels)
		counter.Observe(preds, batch.Labels)

		out = append(out, BatchResult{
			Index:        i,
			Action:       step.Decision.Action,
			Reason:       step.Decision.Reason,
			CombinedLoss: step.Metrics.CombinedLoss,
			BatchErr:     batchCounter.Error(),
		})
	}

	s := Summary{TotalBatches: len(out), FinalErr: counter.Error()}
	for _, r := range out {
		switch r.Action {
		case "commit":
			s.Commits++
		case "skip":
			s.Skips++
		}
	}
	return out, s
}

// #endregion replay

// #region compare

// Comparison is one row of the replay comparison table.
type Comparison struct {
	Label string
	Want  string
	Got   string
	OK    bool
}

// Compare checks replay outcomes against the fixture expectations. The
// final-error check uses an absolute tolerance.
func Compare(batchResults []BatchResult, summary Summary, expected Expectations, tol float64) []Comparison {
	var out []Comparison

	for _, e := range expected.Decisions {
		row := Comparison{
			Label: fmt.Sprintf("batch %d decision", e.Index),
			Want:  e.Action,
		}
		if e.Index < 0 || e.Index >= len(batchResults) {
			row.Got = "missing"
		} else {
			row.Got = batchResults[e.Index].Action
			row.OK = row.Got == e.Action
		}
		out = append(out, row)
	}

	if expected.FinalErr != nil {
		out = append(out, Comparison{
			Label: "final error",
			Want:  fmt.Sprintf("%.4f", *expected.FinalErr),
			Got:   fmt.Sprintf("%.4f", summary.FinalErr),
			OK:    math.Abs(summary.FinalErr-*expected.FinalErr) <= tol,
		})
	}

	return out
}

// AllOK reports whether every comparison row matched.
func AllOK(rows []Comparison) bool {
	for _, r := range rows {
		if !r.OK {
			return false
		}
	}
	return true
}

// CompareMeasurements diffs the per-stream errors of two persisted runs,
// matched by (subgroup, cycle, domain, severity).
func CompareMeasurements(want, got []results.Measurement, tol float64) []Comparison {
	key := func(m results.Measurement) string {
		return fmt.Sprintf("g%d c%d %s%d", m.Subgroup, m.Cycle, m.Domain, m.Severity)
	}
	gotByKey := make(map[string]results.Measurement, len(got))
	for _, m := range got {
		gotByKey[key(m)] = m
	}

	var out []Comparison
	for _, w := range want {
		row := Comparison{
			Label: key(w),
			Want:  fmt.Sprintf("%.4f", w.Err),
		}
		g, ok := gotByKey[key(w)]
		if !ok {
			row.Got = "missing"
		} else {
			row.Got = fmt.Sprintf("%.4f", g.Err)
			row.OK = math.Abs(g.Err-w.Err) <= tol
		}
		out = append(out, row)
	}
	return out
}

// #endregion compare
