package guard

import (
	"fmt"
	"math"
	"sort"
)

// #region guard

// Guard decides whether an adaptation step should be committed or skipped.
// A skipped step leaves the model, the EMA teachers, and the prototype bank
// untouched for that batch.
type Guard struct {
	config GuardConfig
}

// NewGuard creates a guard with the given configuration.
func NewGuard(config GuardConfig) *Guard {
	return &Guard{config: config}
}

// Evaluate checks hard vetoes first, then scores soft signals.
func (g *Guard) Evaluate(sig StepSignals) Decision {
	var vetoes []VetoSignal

	// --- Hard veto pass ---

	// 1. Numeric health: the combined loss and every term must be finite.
	if !isFinite(sig.CombinedLoss) {
		vetoes = append(vetoes, VetoSignal{
			Type:   VetoNumeric,
			Reason: fmt.Sprintf("combined loss is %v", sig.CombinedLoss),
		})
	}
	for _, key := range sortedKeys(sig.LossTerms) {
		if !isFinite(sig.LossTerms[key]) {
			vetoes = append(vetoes, VetoSignal{
				Type:   VetoNumeric,
				Reason: fmt.Sprintf("loss term %s is %v", key, sig.LossTerms[key]),
			})
		}
	}

	logN := math.Log(float64(max(sig.NumClasses, 2)))

	// 2. Entropy spike: adapting on near-uniform predictions is noise.
	maxEntropy := g.config.MaxEntropyFrac * logN
	if sig.EntropyMean > maxEntropy {
		vetoes = append(vetoes, VetoSignal{
			Type:   VetoEntropySpike,
			Reason: fmt.Sprintf("batch entropy %.4f exceeds %.4f", sig.EntropyMean, maxEntropy),
		})
	}

	// 3. Collapse: everything predicted as one class.
	minDiversity := g.config.MinDiversityFrac * logN
	if sig.Diversity < minDiversity {
		vetoes = append(vetoes, VetoSignal{
			Type:   VetoCollapse,
			Reason: fmt.Sprintf("batch diversity %.4f below %.4f", sig.Diversity, minDiversity),
		})
	}

	// 4. Prototype step cap.
	if sig.ProtoDeltaNorm > g.config.MaxProtoDeltaNorm {
		vetoes = append(vetoes, VetoSignal{
			Type:   VetoDeltaCap,
			Reason: fmt.Sprintf("prototype delta %.4f exceeds cap %.4f", sig.ProtoDeltaNorm, g.config.MaxProtoDeltaNorm),
		})
	}

	if len(vetoes) > 0 {
		return Decision{
			Action:      "skip",
			Reason:      fmt.Sprintf("hard veto: %s", vetoes[0].Reason),
			Vetoed:      true,
			VetoSignals: vetoes,
		}
	}

	// --- Soft scoring ---
	softScore := g.softScore(sig, logN)

	return Decision{
		Action:    "commit",
		Reason:    fmt.Sprintf("passed guard: soft_score=%.4f", softScore),
		SoftScore: softScore,
	}
}

// #endregion guard

// #region soft-score

// softScore produces a 0-1 composite from entropy headroom, step stability,
// and loss trend. Logged but never blocks.
func (g *Guard) softScore(sig StepSignals, logN float64) float64 {
	var score float64

	// Entropy headroom: confident batches are safer to adapt on (weight 0.4).
	if logN > 0 {
		headroom := 1.0 - sig.EntropyMean/logN
		if headroom < 0 {
			headroom = 0
		}
		score += 0.4 * headroom
	}

	// Step stability: smaller prototype steps are safer (weight 0.3).
	if g.config.MaxProtoDeltaNorm > 0 {
		stability := 1.0 - sig.ProtoDeltaNorm/g.config.MaxProtoDeltaNorm
		if stability < 0 {
			stability = 0
		}
		score += 0.3 * stability
	}

	// Loss trend: reward improvement over the previous committed step
	// (weight 0.3); neutral credit when there is no history.
	switch {
	case sig.PrevLoss == 0:
		score += 0.15
	case sig.CombinedLoss <= sig.PrevLoss:
		score += 0.3
	}

	return score
}

// #endregion soft-score

// #region helpers

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// #endregion helpers
