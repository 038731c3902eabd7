package losses

import (
	"math"
	"testing"
)

const tol = 1e-9

func approx(t *testing.T, got, want float64, label string) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("%s: got %v, want %v", label, got, want)
	}
}

func TestSoftmaxUniform(t *testing.T) {
	p := Softmax([][]float64{{0, 0, 0, 0}})
	for j, v := range p[0] {
		if math.Abs(v-0.25) > tol {
			t.Fatalf("uniform softmax at %d: got %v", j, v)
		}
	}
}

func TestSoftmaxStableUnderShift(t *testing.T) {
	// Softmax is shift-invariant; large offsets must not overflow.
	a := Softmax([][]float64{{1, 2, 3}})
	b := Softmax([][]float64{{1001, 1002, 1003}})
	for j := range a[0] {
		if math.Abs(a[0][j]-b[0][j]) > tol {
			t.Fatalf("shift changed softmax at %d: %v vs %v", j, a[0][j], b[0][j])
		}
	}
}

func TestLogSoftmaxMatchesLogOfSoftmax(t *testing.T) {
	logits := [][]float64{{0.3, -1.2, 2.5, 0.0}}
	p := Softmax(logits)
	lp := LogSoftmax(logits)
	for j := range p[0] {
		if math.Abs(lp[0][j]-math.Log(p[0][j])) > 1e-9 {
			t.Fatalf("log softmax mismatch at %d", j)
		}
	}
}

func TestEntropyUniformIsLogN(t *testing.T) {
	h := Entropy([][]float64{{0, 0, 0, 0}})
	approx(t, h[0], math.Log(4), "entropy of uniform")
}

func TestEntropyPeakedIsSmall(t *testing.T) {
	h := Entropy([][]float64{{100, 0, 0, 0}})
	if h[0] > 1e-6 {
		t.Fatalf("expected near-zero entropy, got %v", h[0])
	}
}

func TestSymmetricCrossEntropySelfEqualsEntropy(t *testing.T) {
	// With x == xEMA and any alpha, both directions reduce to the entropy.
	logits := [][]float64{{0.5, -0.3, 1.1}, {2.0, 2.0, -4.0}}
	sce := NewSymmetricCrossEntropy()
	got := sce.Loss(logits, logits)
	want := Entropy(logits)
	for i := range got {
		approx(t, got[i], want[i], "self symmetric CE")
	}
}

func TestSymmetricCrossEntropyAlphaZero(t *testing.T) {
	// alpha=0 keeps only -sum(softmax(xEMA)*log_softmax(x)).
	x := [][]float64{{1.0, 0.0}}
	ema := [][]float64{{0.0, 1.0}}
	sce := SymmetricCrossEntropy{Alpha: 0}
	got := sce.Loss(x, ema)

	pe := Softmax(ema)[0]
	lpx := LogSoftmax(x)[0]
	want := -(pe[0]*lpx[0] + pe[1]*lpx[1])
	approx(t, got[0], want, "alpha=0 symmetric CE")
}

func TestAugCrossEntropySelfEqualsEntropy(t *testing.T) {
	logits := [][]float64{{0.7, -0.7, 0.1}}
	ace := NewAugCrossEntropy()
	got := ace.Loss(logits, logits, logits)
	want := Entropy(logits)
	approx(t, got[0], want[0], "self aug CE")
}

func TestSoftLikelihoodRatioUniformBinary(t *testing.T) {
	// p = [0.5, 0.5]: ratio p/(1-p) = 1, so loss = -log(1 + eps).
	slr := NewSoftLikelihoodRatio()
	got := slr.Loss([][]float64{{0, 0}})
	want := -math.Log(1 + slr.Eps)
	approx(t, got[0], want, "uniform binary SLR")
}

func TestSoftLikelihoodRatioClipsConfidentMass(t *testing.T) {
	// Without clipping, p→1 sends the ratio to +inf. The clip keeps it finite.
	slr := NewSoftLikelihoodRatio()
	got := slr.Loss([][]float64{{1000, 0}})
	if math.IsInf(got[0], 0) || math.IsNaN(got[0]) {
		t.Fatalf("expected finite SLR under saturation, got %v", got[0])
	}
}

func TestGeneralizedCrossEntropyKnownProbs(t *testing.T) {
	// log-probs chosen so softmax reproduces them exactly: [0.5 0.25 0.125 0.125].
	logits := [][]float64{{math.Log(0.5), math.Log(0.25), math.Log(0.125), math.Log(0.125)}}
	gce := NewGeneralizedCrossEntropy()

	got := gce.Loss(logits, []int{0})
	want := (1 - math.Pow(0.5, 0.8)) / 0.8
	approx(t, got[0], want, "GCE target 0")
}

func TestGeneralizedCrossEntropyNilTargetsUsesArgmax(t *testing.T) {
	logits := [][]float64{{math.Log(0.5), math.Log(0.25), math.Log(0.125), math.Log(0.125)}}
	gce := NewGeneralizedCrossEntropy()

	explicit := gce.Loss(logits, []int{0})
	implicit := gce.Loss(logits, nil)
	approx(t, implicit[0], explicit[0], "GCE argmax fallback")
}

func TestEntropyLossMean(t *testing.T) {
	probs := [][]float64{{0.5, 0.5}, {1.0, 0.0}}
	got := EntropyLoss(probs)
	want := math.Log(2) / 2 // second row contributes ~0
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("entropy loss: got %v, want %v", got, want)
	}
}

func TestDiversityLossSpreadBatch(t *testing.T) {
	// Two opposite one-hot rows: mean is uniform, so diversity = log(2).
	probs := [][]float64{{1, 0}, {0, 1}}
	approx(t, DiversityLoss(probs), math.Log(2), "diversity of spread batch")
}

func TestInfoMaxLossUniformSingleRow(t *testing.T) {
	// One uniform row: entropy = diversity, so the objective is zero.
	probs := [][]float64{{0.5, 0.5}}
	approx(t, InfoMaxLoss(probs), 0, "info max of uniform row")
}

func TestOrthogonalLoss(t *testing.T) {
	// Orthonormal rows: P P^T = I, squared sum = n, denominator n(n-1).
	ortho := [][]float64{{1, 0}, {0, 1}}
	approx(t, OrthogonalLoss(ortho), 1.0, "orthonormal prototypes")

	// Identical rows maximize overlap.
	same := [][]float64{{1, 0}, {1, 0}}
	approx(t, OrthogonalLoss(same), 2.0, "identical prototypes")

	if OrthogonalLoss([][]float64{{1, 0}}) != 0 {
		t.Fatal("single prototype should score zero")
	}
}

func TestArgmax(t *testing.T) {
	if got := Argmax([]float64{0.1, 3.0, -2.0, 3.0}); got != 1 {
		t.Fatalf("argmax: got %d, want 1 (first max wins)", got)
	}
}

func TestMean(t *testing.T) {
	approx(t, Mean([]float64{1, 2, 3}), 2, "mean")
	if Mean(nil) != 0 {
		t.Fatal("mean of empty slice should be 0")
	}
}
