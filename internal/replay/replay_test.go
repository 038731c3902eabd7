package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/driftbench/go-harness/internal/adapt"
	"github.com/driftbench/go-harness/internal/results"
)

// confidentBatch builds a batch where the logits confidently predict the
// labels, cycling through classes.
func confidentBatch(samples, classes int, margin float64) FixtureBatch {
	labels := make([]int, samples)
	mk := func() [][]float64 {
		rows := make([][]float64, samples)
		for i := range rows {
			row := make([]float64, classes)
			row[i%classes] = margin
			rows[i] = row
		}
		return rows
	}
	for i := range labels {
		labels[i] = i % classes
	}
	return FixtureBatch{
		Labels:   labels,
		Student:  mk(),
		Teacher1: mk(),
		Teacher2: mk(),
	}
}

func TestReplayCommitsAndCountsError(t *testing.T) {
	batch := confidentBatch(8, 4, 6.0)
	// Flip one student prediction away from its label.
	batch.Student[0] = []float64{0, 6.0, 0, 0}

	rec := (&batch).ToRecordedBatch()
	batchResults, summary := Replay(adapt.DefaultEngineConfig(4), []RecordedBatch{rec})

	if summary.TotalBatches != 1 {
		t.Fatalf("total batches: got %d", summary.TotalBatches)
	}
	if batchResults[0].Action != "commit" {
		t.Fatalf("expected commit, got %s (%s)", batchResults[0].Action, batchResults[0].Reason)
	}
	if summary.FinalErr != 1.0/8.0 {
		t.Fatalf("final error: got %v, want 0.125", summary.FinalErr)
	}
}

func TestReplaySkipsUniformBatch(t *testing.T) {
	batch := confidentBatch(8, 4, 0.0)
	_, summary := Replay(adapt.DefaultEngineConfig(4), []RecordedBatch{(&batch).ToRecordedBatch()})
	if summary.Skips != 1 {
		t.Fatalf("uniform batch should be skipped, got %d skips", summary.Skips)
	}
}

func TestCompareAgainstExpectations(t *testing.T) {
	batch := confidentBatch(8, 4, 6.0)
	batchResults, summary := Replay(adapt.DefaultEngineConfig(4), []RecordedBatch{(&batch).ToRecordedBatch()})

	wantErr := 0.0
	rows := Compare(batchResults, summary, Expectations{
		Decisions: []ExpectedDecision{{Index: 0, Action: "commit"}},
		FinalErr:  &wantErr,
	}, 1e-9)

	if len(rows) != 2 {
		t.Fatalf("got %d comparison rows, want 2", len(rows))
	}
	if !AllOK(rows) {
		t.Fatalf("expected all rows OK: %+v", rows)
	}

	rows = Compare(batchResults, summary, Expectations{
		Decisions: []ExpectedDecision{{Index: 0, Action: "skip"}},
	}, 1e-9)
	if AllOK(rows) {
		t.Fatal("mismatched decision should fail the comparison")
	}
}

func TestCompareOutOfRangeIndex(t *testing.T) {
	rows := Compare(nil, Summary{}, Expectations{
		Decisions: []ExpectedDecision{{Index: 3, Action: "commit"}},
	}, 1e-9)
	if AllOK(rows) || rows[0].Got != "missing" {
		t.Fatalf("out-of-range expectation should report missing: %+v", rows)
	}
}

func TestFixtureRoundtrip(t *testing.T) {
	wantErr := 0.125
	f := Fixture{
		Description: "one confident batch",
		Config:      FixtureConfig{NumClasses: 4},
		Batches:     []FixtureBatch{confidentBatch(8, 4, 6.0)},
		Expected: Expectations{
			Decisions: []ExpectedDecision{{Index: 0, Action: "commit"}},
			FinalErr:  &wantErr,
		},
	}

	path := filepath.Join(t.TempDir(), "fixture.json")
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	loaded, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	if loaded.Config.NumClasses != 4 || len(loaded.Batches) != 1 {
		t.Fatalf("fixture content lost: %+v", loaded.Config)
	}
	ec := loaded.Config.ToEngineConfig()
	if ec.GuardConfig.MaxEntropyFrac == 0 {
		t.Fatal("zero guard config should fall back to defaults")
	}
}

func TestLoadFixtureRejectsMissingClasses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"description":"x"}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFixture(path); err == nil {
		t.Fatal("fixture without num_classes should be rejected")
	}
}

func TestCompareMeasurements(t *testing.T) {
	want := []results.Measurement{
		{Subgroup: 0, Cycle: 0, Domain: "fog", Severity: 5, Err: 0.30},
		{Subgroup: 0, Cycle: 0, Domain: "snow", Severity: 5, Err: 0.25},
	}
	got := []results.Measurement{
		{Subgroup: 0, Cycle: 0, Domain: "fog", Severity: 5, Err: 0.300001},
	}

	rows := CompareMeasurements(want, got, 1e-3)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if !rows[0].OK {
		t.Fatalf("fog within tolerance should match: %+v", rows[0])
	}
	if rows[1].OK || rows[1].Got != "missing" {
		t.Fatalf("snow should be reported missing: %+v", rows[1])
	}
}
