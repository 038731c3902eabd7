package guard

import (
	"math"
	"testing"
)

func healthySignals() StepSignals {
	return StepSignals{
		CombinedLoss:   0.8,
		LossTerms:      map[string]float64{"ce_s_t1": 0.5, "im_loss": 0.3},
		EntropyMean:    0.4,
		Diversity:      2.0,
		ProtoDeltaNorm: 0.1,
		NumClasses:     10,
	}
}

func TestEvaluateCommitsHealthyStep(t *testing.T) {
	g := NewGuard(DefaultGuardConfig())
	d := g.Evaluate(healthySignals())
	if d.Action != "commit" {
		t.Fatalf("expected commit, got %s (%s)", d.Action, d.Reason)
	}
	if d.Vetoed {
		t.Fatal("healthy step should not be vetoed")
	}
	if d.SoftScore <= 0 || d.SoftScore > 1 {
		t.Fatalf("soft score out of range: %v", d.SoftScore)
	}
}

func TestEvaluateVetoesNaNLoss(t *testing.T) {
	g := NewGuard(DefaultGuardConfig())
	sig := healthySignals()
	sig.CombinedLoss = math.NaN()
	d := g.Evaluate(sig)
	if d.Action != "skip" || !d.Vetoed {
		t.Fatalf("expected skip on NaN loss, got %s", d.Action)
	}
	if d.VetoSignals[0].Type != VetoNumeric {
		t.Fatalf("expected numeric veto, got %s", d.VetoSignals[0].Type)
	}
}

func TestEvaluateVetoesInfiniteTerm(t *testing.T) {
	g := NewGuard(DefaultGuardConfig())
	sig := healthySignals()
	sig.LossTerms["mem_loss"] = math.Inf(1)
	d := g.Evaluate(sig)
	if d.Action != "skip" {
		t.Fatalf("expected skip on infinite loss term, got %s", d.Action)
	}
}

func TestEvaluateVetoesEntropySpike(t *testing.T) {
	g := NewGuard(DefaultGuardConfig())
	sig := healthySignals()
	sig.EntropyMean = math.Log(10) // uniform over 10 classes
	d := g.Evaluate(sig)
	if d.Action != "skip" {
		t.Fatalf("expected skip on entropy spike, got %s", d.Action)
	}
	if d.VetoSignals[0].Type != VetoEntropySpike {
		t.Fatalf("expected entropy veto, got %s", d.VetoSignals[0].Type)
	}
}

func TestEvaluateVetoesCollapse(t *testing.T) {
	g := NewGuard(DefaultGuardConfig())
	sig := healthySignals()
	sig.Diversity = 0.0 // single predicted class
	d := g.Evaluate(sig)
	if d.Action != "skip" {
		t.Fatalf("expected skip on collapse, got %s", d.Action)
	}
}

func TestEvaluateVetoesDeltaCap(t *testing.T) {
	g := NewGuard(DefaultGuardConfig())
	sig := healthySignals()
	sig.ProtoDeltaNorm = 5.0
	d := g.Evaluate(sig)
	if d.Action != "skip" {
		t.Fatalf("expected skip on delta cap, got %s", d.Action)
	}
}

func TestSoftScoreRewardsImprovement(t *testing.T) {
	g := NewGuard(DefaultGuardConfig())

	improving := healthySignals()
	improving.PrevLoss = 1.0 // current 0.8 is better

	worsening := healthySignals()
	worsening.PrevLoss = 0.5 // current 0.8 is worse

	di := g.Evaluate(improving)
	dw := g.Evaluate(worsening)
	if di.SoftScore <= dw.SoftScore {
		t.Fatalf("improving loss should score higher: %v vs %v", di.SoftScore, dw.SoftScore)
	}
}

func TestEvaluateCollectsAllVetoes(t *testing.T) {
	g := NewGuard(DefaultGuardConfig())
	sig := healthySignals()
	sig.CombinedLoss = math.NaN()
	sig.ProtoDeltaNorm = 5.0
	d := g.Evaluate(sig)
	if len(d.VetoSignals) < 2 {
		t.Fatalf("expected multiple vetoes, got %d", len(d.VetoSignals))
	}
}
