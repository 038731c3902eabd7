package adapt

import (
	"math"
	"strings"
	"testing"

	"github.com/driftbench/go-harness/internal/losses"
)

// confidentViews builds a batch where every class is confidently predicted
// by all three views, cycling through the classes.
func confidentViews(samples, classes int, margin float64) LogitViews {
	mk := func() [][]float64 {
		rows := make([][]float64, samples)
		for i := range rows {
			row := make([]float64, classes)
			row[i%classes] = margin
			rows[i] = row
		}
		return rows
	}
	return LogitViews{Student: mk(), Teacher1: mk(), Teacher2: mk()}
}

func TestStepCommitsOnHealthyBatch(t *testing.T) {
	e := NewEngine(DefaultEngineConfig(4))
	before := e.Bank().VersionID

	result := e.Step(confidentViews(8, 4, 6.0))
	if result.Decision.Action != "commit" {
		t.Fatalf("expected commit, got %s (%s)", result.Decision.Action, result.Decision.Reason)
	}
	if e.Bank().VersionID == before {
		t.Fatal("commit should advance the prototype bank version")
	}
	if math.IsNaN(result.Metrics.CombinedLoss) || math.IsInf(result.Metrics.CombinedLoss, 0) {
		t.Fatalf("combined loss not finite: %v", result.Metrics.CombinedLoss)
	}
	if _, ok := result.Metrics.LossTerms[losses.KeyCeST1]; !ok {
		t.Fatal("default weights should produce a ce_s_t1 term")
	}
}

func TestStepSkipsOnUniformBatch(t *testing.T) {
	e := NewEngine(DefaultEngineConfig(4))
	before := e.Bank().VersionID

	// Zero logits: maximal entropy, the guard must refuse to adapt.
	result := e.Step(confidentViews(8, 4, 0.0))
	if result.Decision.Action != "skip" {
		t.Fatalf("expected skip on uniform predictions, got %s", result.Decision.Action)
	}
	if e.Bank().VersionID != before {
		t.Fatal("skipped step must not advance the bank")
	}
}

func TestStepSkipsOnNonFiniteLogits(t *testing.T) {
	e := NewEngine(DefaultEngineConfig(4))
	views := confidentViews(4, 4, 6.0)
	views.Student[0][0] = math.NaN()

	result := e.Step(views)
	if result.Decision.Action != "skip" {
		t.Fatalf("expected skip on NaN logits, got %s", result.Decision.Action)
	}
}

func TestStepAugTermRequiresAugView(t *testing.T) {
	cfg := DefaultEngineConfig(4)
	cfg.Weights = map[string]float64{losses.KeyCeSAugT1: 1.0, losses.KeyCeST1: 1.0}
	e := NewEngine(cfg)

	views := confidentViews(4, 4, 6.0)
	r := e.Step(views)
	if _, ok := r.Metrics.LossTerms[losses.KeyCeSAugT1]; ok {
		t.Fatal("aug term should be skipped without an aug view")
	}

	views.Aug = views.Student
	r = e.Step(views)
	if _, ok := r.Metrics.LossTerms[losses.KeyCeSAugT1]; !ok {
		t.Fatal("aug term should be computed with an aug view")
	}
}

func TestStepComputesAllWeightedTerms(t *testing.T) {
	cfg := DefaultEngineConfig(4)
	cfg.Weights = map[string]float64{
		losses.KeyCeST1:       1.0,
		losses.KeyCeST2:       1.0,
		losses.KeyContrT2Prot: 1.0,
		losses.KeyMseT2Proto:  1.0,
		losses.KeyInfoMax:     1.0,
		losses.KeyDiffer:      1.0,
		losses.KeyMMD:         1.0,
		losses.KeyKLDT2Proto:  1.0,
	}
	e := NewEngine(cfg)

	r := e.Step(confidentViews(8, 4, 6.0))
	for key := range cfg.Weights {
		v, ok := r.Metrics.LossTerms[key]
		if !ok {
			t.Fatalf("missing loss term %s", key)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("loss term %s is not finite: %v", key, v)
		}
	}
}

func TestResetRestoresFreshBank(t *testing.T) {
	e := NewEngine(DefaultEngineConfig(4))
	e.Step(confidentViews(8, 4, 6.0))
	adapted := e.Bank()

	e.Reset()
	fresh := e.Bank()
	if fresh.VersionID == adapted.VersionID {
		t.Fatal("reset should produce a new bank")
	}
	if fresh.ParentID != "" {
		t.Fatalf("fresh bank should have no parent, got %s", fresh.ParentID)
	}
}

func TestSetWeights(t *testing.T) {
	e := NewEngine(DefaultEngineConfig(4))
	w := map[string]float64{losses.KeyInfoMax: 1.5}
	e.SetWeights(w)
	r := e.Step(confidentViews(8, 4, 6.0))
	if _, ok := r.Metrics.LossTerms[losses.KeyCeST1]; ok {
		t.Fatal("swapped weights should drop the ce_s_t1 term")
	}
	if _, ok := r.Metrics.LossTerms[losses.KeyInfoMax]; !ok {
		t.Fatal("swapped weights should add the im_loss term")
	}
}

func TestDescriptionSplitsStudentAndTeacherLosses(t *testing.T) {
	e := NewEngine(DefaultEngineConfig(10))
	desc := e.Description("cifar10_c", "continual")

	if !strings.Contains(desc, "Dataset: cifar10_c") {
		t.Fatalf("description missing dataset: %s", desc)
	}
	if !strings.Contains(desc, "- S: Symmetric Cross Entropy (T1)") {
		t.Fatalf("description missing student losses: %s", desc)
	}
	if !strings.Contains(desc, "- T1: EMA using S weights") {
		t.Fatalf("description missing EMA note: %s", desc)
	}
	if !strings.Contains(desc, "Information Maximization Loss (T2)") {
		t.Fatalf("description missing teacher losses: %s", desc)
	}
}
