package results

import (
	"math"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedRun(t *testing.T, s *Store, runID string) {
	t.Helper()
	err := s.CreateRun(RunRecord{
		RunID:     runID,
		Name:      "adaptation-continual-cifar10_c-2026-08-23-10-00-00",
		Dataset:   "cifar10_c",
		Setting:   "continual",
		Method:    "ours",
		Preset:    "balanced",
		StartedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create run: %v", err)
	}
}

func TestRunLifecycle(t *testing.T) {
	s := newTestStore(t)
	seedRun(t, s, "run-1")

	rec, err := s.GetRun("run-1")
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if !rec.FinishedAt.IsZero() {
		t.Fatal("fresh run should not be finished")
	}
	if rec.HasErr5 {
		t.Fatal("fresh run should have no severity-5 mean")
	}

	if err := s.FinishRun("run-1", 0.32, 0.41, true); err != nil {
		t.Fatalf("finish run: %v", err)
	}
	rec, err = s.GetRun("run-1")
	if err != nil {
		t.Fatalf("get run after finish: %v", err)
	}
	if rec.FinishedAt.IsZero() {
		t.Fatal("finished run should carry a finish time")
	}
	if !rec.HasErr5 || math.Abs(rec.MeanErr5-0.41) > 1e-6 {
		t.Fatalf("severity-5 mean: got %v (has=%v)", rec.MeanErr5, rec.HasErr5)
	}
}

func TestFinishUnknownRun(t *testing.T) {
	s := newTestStore(t)
	if err := s.FinishRun("missing", 0.1, 0, false); err == nil {
		t.Fatal("finishing a missing run should fail")
	}
}

func TestMeasurementsRoundtrip(t *testing.T) {
	s := newTestStore(t)
	seedRun(t, s, "run-1")

	streams := []Measurement{
		{RunID: "run-1", Subgroup: 0, Cycle: 0, Domain: "gaussian_noise", Severity: 5, NumSamples: 10000, Err: 0.28, CreatedAt: time.Now().UTC()},
		{RunID: "run-1", Subgroup: 0, Cycle: 0, Domain: "shot_noise", Severity: 5, NumSamples: 10000, Err: 0.26, CreatedAt: time.Now().UTC()},
	}
	for _, m := range streams {
		if err := s.InsertMeasurement(m); err != nil {
			t.Fatalf("insert measurement: %v", err)
		}
	}

	got, err := s.ListMeasurements("run-1")
	if err != nil {
		t.Fatalf("list measurements: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d measurements, want 2", len(got))
	}
	if got[0].Domain != "gaussian_noise" || got[1].Domain != "shot_noise" {
		t.Fatalf("order broken: %s, %s", got[0].Domain, got[1].Domain)
	}
	if math.Abs(got[1].Err-0.26) > 1e-9 {
		t.Fatalf("err roundtrip: got %v", got[1].Err)
	}
}

func TestSnapshotRoundtrip(t *testing.T) {
	s := newTestStore(t)
	seedRun(t, s, "run-1")

	protos := [][]float64{
		{0.5, 0.25, 0.25},
		{0.25, 0.5, 0.25},
	}
	snap := ProtoSnapshot{
		VersionID: "v-2",
		ParentID:  "v-1",
		RunID:     "run-1",
		Protos:    protos,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.SaveSnapshot(snap); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	got, err := s.GetSnapshot("v-2")
	if err != nil {
		t.Fatalf("get snapshot: %v", err)
	}
	if got.ParentID != "v-1" {
		t.Fatalf("parent: got %s", got.ParentID)
	}
	for i := range protos {
		for j := range protos[i] {
			if got.Protos[i][j] != protos[i][j] {
				t.Fatalf("proto[%d][%d]: got %v, want %v", i, j, got.Protos[i][j], protos[i][j])
			}
		}
	}
}

func TestRunLogCounts(t *testing.T) {
	s := newTestStore(t)
	seedRun(t, s, "run-1")

	logs := []StepLog{
		{RunID: "run-1", Domain: "fog", Severity: 5, Decision: "commit", CreatedAt: time.Now().UTC()},
		{RunID: "run-1", Domain: "fog", Severity: 5, Decision: "commit", CreatedAt: time.Now().UTC()},
		{RunID: "run-1", Domain: "fog", Severity: 5, Decision: "skip", Reason: "entropy_spike", CreatedAt: time.Now().UTC()},
	}
	for _, l := range logs {
		if err := s.LogStep(l); err != nil {
			t.Fatalf("log step: %v", err)
		}
	}

	counts, err := s.CountDecisions("run-1")
	if err != nil {
		t.Fatalf("count decisions: %v", err)
	}
	if counts["commit"] != 2 || counts["skip"] != 1 {
		t.Fatalf("counts: got %v", counts)
	}
}

func TestPolicyOutcomes(t *testing.T) {
	s := newTestStore(t)
	seedRun(t, s, "run-1")

	outcomes := []PolicyOutcome{
		{RunID: "run-1", Preset: "balanced", DomainFamily: "noise", Err: 0.3, Samples: 10000, CreatedAt: time.Now().UTC()},
		{RunID: "run-1", Preset: "contrastive", DomainFamily: "noise", Err: 0.27, Samples: 10000, CreatedAt: time.Now().UTC()},
		{RunID: "run-1", Preset: "balanced", DomainFamily: "blur", Err: 0.4, Samples: 10000, CreatedAt: time.Now().UTC()},
	}
	for _, o := range outcomes {
		if err := s.RecordPolicyOutcome(o); err != nil {
			t.Fatalf("record outcome: %v", err)
		}
	}

	noise, err := s.ListPolicyOutcomes("noise")
	if err != nil {
		t.Fatalf("list outcomes: %v", err)
	}
	if len(noise) != 2 {
		t.Fatalf("noise outcomes: got %d, want 2", len(noise))
	}
	if noise[1].Preset != "contrastive" {
		t.Fatalf("outcome order: got %s", noise[1].Preset)
	}
}

func TestListRuns(t *testing.T) {
	s := newTestStore(t)
	seedRun(t, s, "run-1")
	seedRun(t, s, "run-2")

	runs, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
}
