package losses

import "math"

// #region softmax

// Softmax converts each row of logits into a probability distribution.
// Numerically stable: shifts by the row max before exponentiating.
func Softmax(logits [][]float64) [][]float64 {
	out := make([][]float64, len(logits))
	for i, row := range logits {
		out[i] = softmaxRow(row)
	}
	return out
}

// LogSoftmax computes log(softmax(row)) per row without underflow.
func LogSoftmax(logits [][]float64) [][]float64 {
	out := make([][]float64, len(logits))
	for i, row := range logits {
		out[i] = logSoftmaxRow(row)
	}
	return out
}

func softmaxRow(row []float64) []float64 {
	out := make([]float64, len(row))
	maxV := rowMax(row)
	var sum float64
	for j, v := range row {
		out[j] = math.Exp(v - maxV)
		sum += out[j]
	}
	for j := range out {
		out[j] /= sum
	}
	return out
}

func logSoftmaxRow(row []float64) []float64 {
	out := make([]float64, len(row))
	maxV := rowMax(row)
	var sum float64
	for _, v := range row {
		sum += math.Exp(v - maxV)
	}
	logSum := maxV + math.Log(sum)
	for j, v := range row {
		out[j] = v - logSum
	}
	return out
}

func rowMax(row []float64) float64 {
	maxV := math.Inf(-1)
	for _, v := range row {
		if v > maxV {
			maxV = v
		}
	}
	return maxV
}

// #endregion softmax

// #region entropy

// Entropy returns the per-sample Shannon entropy of the softmax distribution:
// -sum(softmax(x) * log_softmax(x)) per row.
func Entropy(logits [][]float64) []float64 {
	out := make([]float64, len(logits))
	for i, row := range logits {
		p := softmaxRow(row)
		lp := logSoftmaxRow(row)
		var h float64
		for j := range p {
			h -= p[j] * lp[j]
		}
		out[i] = h
	}
	return out
}

// #endregion entropy

// #region symmetric-ce

// SymmetricCrossEntropy blends cross entropy in both directions between a
// view and its EMA-teacher view, weighted by Alpha.
type SymmetricCrossEntropy struct {
	Alpha float64
}

// NewSymmetricCrossEntropy returns the standard alpha=0.5 configuration.
func NewSymmetricCrossEntropy() SymmetricCrossEntropy {
	return SymmetricCrossEntropy{Alpha: 0.5}
}

// Loss computes, per sample:
// -(1-alpha)*sum(softmax(xEMA)*log_softmax(x)) - alpha*sum(softmax(x)*log_softmax(xEMA)).
func (l SymmetricCrossEntropy) Loss(x, xEMA [][]float64) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		px := softmaxRow(x[i])
		lpx := logSoftmaxRow(x[i])
		pe := softmaxRow(xEMA[i])
		lpe := logSoftmaxRow(xEMA[i])

		var fwd, rev float64
		for j := range px {
			fwd += pe[j] * lpx[j]
			rev += px[j] * lpe[j]
		}
		out[i] = -(1-l.Alpha)*fwd - l.Alpha*rev
	}
	return out
}

// #endregion symmetric-ce

// #region aug-ce

// AugCrossEntropy scores a sample and its augmented view against the
// EMA-teacher distribution.
type AugCrossEntropy struct {
	Alpha float64
}

// NewAugCrossEntropy returns the standard alpha=0.5 configuration.
func NewAugCrossEntropy() AugCrossEntropy {
	return AugCrossEntropy{Alpha: 0.5}
}

// Loss computes, per sample:
// -(1-alpha)*sum(softmax(x)*log_softmax(xEMA)) - alpha*sum(softmax(xAug)*log_softmax(xEMA)).
func (l AugCrossEntropy) Loss(x, xAug, xEMA [][]float64) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		px := softmaxRow(x[i])
		pa := softmaxRow(xAug[i])
		lpe := logSoftmaxRow(xEMA[i])

		var plain, aug float64
		for j := range px {
			plain += px[j] * lpe[j]
			aug += pa[j] * lpe[j]
		}
		out[i] = -(1-l.Alpha)*plain - l.Alpha*aug
	}
	return out
}

// #endregion aug-ce

// #region slr

// SoftLikelihoodRatio penalizes confident mass via the likelihood ratio
// p/(1-p), with probabilities clamped to [0, Clip].
type SoftLikelihoodRatio struct {
	Clip float64
	Eps  float64
}

// NewSoftLikelihoodRatio returns the standard clip=0.99, eps=1e-5 configuration.
func NewSoftLikelihoodRatio() SoftLikelihoodRatio {
	return SoftLikelihoodRatio{Clip: 0.99, Eps: 1e-5}
}

// Loss computes, per sample: -sum(p * log(p/(1-p) + eps)) with p clamped.
func (l SoftLikelihoodRatio) Loss(logits [][]float64) []float64 {
	out := make([]float64, len(logits))
	for i, row := range logits {
		p := softmaxRow(row)
		var s float64
		for _, v := range p {
			if v > l.Clip {
				v = l.Clip
			}
			if v < 0 {
				v = 0
			}
			s += v * math.Log(v/(1-v)+l.Eps)
		}
		out[i] = -s
	}
	return out
}

// #endregion slr

// #region gce

// GeneralizedCrossEntropy interpolates between cross entropy (q→0) and MAE
// (q=1). See https://arxiv.org/abs/1805.07836.
type GeneralizedCrossEntropy struct {
	Q float64
}

// NewGeneralizedCrossEntropy returns the standard q=0.8 configuration.
func NewGeneralizedCrossEntropy() GeneralizedCrossEntropy {
	return GeneralizedCrossEntropy{Q: 0.8}
}

// Loss computes (1 - p_target^q)/q per sample. A nil targets slice uses the
// argmax prediction as its own target.
func (l GeneralizedCrossEntropy) Loss(logits [][]float64, targets []int) []float64 {
	out := make([]float64, len(logits))
	for i, row := range logits {
		p := softmaxRow(row)
		t := 0
		if targets != nil {
			t = targets[i]
		} else {
			t = Argmax(row)
		}
		out[i] = (1.0 - math.Pow(p[t], l.Q)) / l.Q
	}
	return out
}

// #endregion gce

// #region batch-losses

const probEps = 1e-16

// EntropyLoss returns the mean per-sample entropy of a probability matrix.
func EntropyLoss(probs [][]float64) float64 {
	if len(probs) == 0 {
		return 0
	}
	var total float64
	for _, row := range probs {
		var h float64
		for _, v := range row {
			h -= v * math.Log(v+probEps)
		}
		total += h
	}
	return total / float64(len(probs))
}

// DiversityLoss returns the negative entropy of the batch-mean distribution.
// Lower values indicate more diverse (less collapsed) predictions.
func DiversityLoss(probs [][]float64) float64 {
	if len(probs) == 0 {
		return 0
	}
	mean := MeanDistribution(probs)
	var div float64
	for _, v := range mean {
		div -= v * math.Log(v+probEps)
	}
	return div
}

// InfoMaxLoss combines per-sample confidence with batch diversity:
// EntropyLoss - DiversityLoss. Minimizing it sharpens individual predictions
// while keeping the batch marginal spread out.
func InfoMaxLoss(probs [][]float64) float64 {
	return EntropyLoss(probs) - DiversityLoss(probs)
}

// OrthogonalLoss penalizes pairwise overlap between prototype vectors:
// sum((P P^T)^2) / (n*(n-1)). Includes the diagonal self-similarity terms.
func OrthogonalLoss(prototypes [][]float64) float64 {
	n := len(prototypes)
	if n < 2 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var dot float64
			for k := range prototypes[i] {
				dot += prototypes[i][k] * prototypes[j][k]
			}
			sum += dot * dot
		}
	}
	return sum / float64(n*(n-1))
}

// #endregion batch-losses

// #region helpers

// Argmax returns the index of the largest element in row.
func Argmax(row []float64) int {
	best := 0
	for j := 1; j < len(row); j++ {
		if row[j] > row[best] {
			best = j
		}
	}
	return best
}

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, v := range xs {
		sum += v
	}
	return sum / float64(len(xs))
}

// MeanDistribution averages probability rows into a single distribution.
func MeanDistribution(probs [][]float64) []float64 {
	if len(probs) == 0 {
		return nil
	}
	mean := make([]float64, len(probs[0]))
	for _, row := range probs {
		for j, v := range row {
			mean[j] += v
		}
	}
	for j := range mean {
		mean[j] /= float64(len(probs))
	}
	return mean
}

// #endregion helpers
