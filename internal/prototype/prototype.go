package prototype

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// #region new-bank

// NewBank creates an initial bank of smoothed one-hot anchors: prototype c
// assigns 1-s to class c and spreads s across the rest.
func NewBank(numClasses int, smoothing float64) Bank {
	protos := make([][]float64, numClasses)
	for c := range protos {
		protos[c] = anchorRow(numClasses, c, smoothing)
	}
	return Bank{
		VersionID: uuid.New().String(),
		Protos:    protos,
		CreatedAt: time.Now().UTC(),
	}
}

func anchorRow(n, c int, smoothing float64) []float64 {
	row := make([]float64, n)
	off := smoothing / float64(n)
	for j := range row {
		row[j] = off
	}
	row[c] += 1 - smoothing
	return row
}

// #endregion new-bank

// #region update

// Update is a pure function that computes the next bank from the current one
// and a batch of teacher probability rows with their predicted classes.
// Hit prototypes step toward the class batch mean with a per-class L2 clamp;
// unhit prototypes decay back toward their smoothed one-hot anchor.
func Update(old Bank, probs [][]float64, preds []int, config UpdateConfig) UpdateResult {
	start := time.Now()
	n := old.NumClasses()

	newProtos := make([][]float64, n)
	for c := range newProtos {
		newProtos[c] = append([]float64(nil), old.Protos[c]...)
	}

	// Per-class batch means.
	sums := make([][]float64, n)
	counts := make([]int, n)
	for i, p := range preds {
		if p < 0 || p >= n {
			continue
		}
		if sums[p] == nil {
			sums[p] = make([]float64, n)
		}
		for j, v := range probs[i] {
			sums[p][j] += v
		}
		counts[p]++
	}

	classMetrics := make([]ClassMetric, 0, n)
	var classesHit []int

	for c := 0; c < n; c++ {
		var deltaNorm, decayNorm float64

		if counts[c] > 0 && config.LearningRate > 0 {
			delta := make([]float64, n)
			var sumSq float64
			for j := range delta {
				mean := sums[c][j] / float64(counts[c])
				delta[j] = config.LearningRate * (mean - newProtos[c][j])
				sumSq += delta[j] * delta[j]
			}
			norm := math.Sqrt(sumSq)
			if norm > config.MaxDeltaNormPerClass && norm > 0 {
				scale := config.MaxDeltaNormPerClass / norm
				for j := range delta {
					delta[j] *= scale
				}
				norm = config.MaxDeltaNormPerClass
			}
			for j := range delta {
				newProtos[c][j] += delta[j]
			}
			deltaNorm = norm
			classesHit = append(classesHit, c)
		} else if config.DecayRate > 0 {
			anchor := anchorRow(n, c, config.Smoothing)
			var sumSq float64
			for j := range newProtos[c] {
				d := config.DecayRate * (anchor[j] - newProtos[c][j])
				newProtos[c][j] += d
				sumSq += d * d
			}
			decayNorm = math.Sqrt(sumSq)
		}

		if deltaNorm > 0 || decayNorm > 0 || counts[c] > 0 {
			classMetrics = append(classMetrics, ClassMetric{
				Class:     c,
				Count:     counts[c],
				DeltaNorm: deltaNorm,
				DecayNorm: decayNorm,
			})
		}
	}

	var totalSumSq float64
	for c := 0; c < n; c++ {
		for j := 0; j < n; j++ {
			d := newProtos[c][j] - old.Protos[c][j]
			totalSumSq += d * d
		}
	}
	totalDeltaNorm := math.Sqrt(totalSumSq)

	newBank := Bank{
		VersionID: uuid.New().String(),
		ParentID:  old.VersionID,
		Protos:    newProtos,
		CreatedAt: time.Now().UTC(),
	}

	decision := Decision{Action: "no_op", Reason: "no prototype change"}
	if totalDeltaNorm > 0 {
		decision = Decision{
			Action: "commit",
			Reason: fmt.Sprintf("classes hit: %v, delta norm: %.6f", classesHit, totalDeltaNorm),
		}
	}

	return UpdateResult{
		NewBank:  newBank,
		Decision: decision,
		Metrics: Metrics{
			DeltaNorm:    totalDeltaNorm,
			ClassesHit:   classesHit,
			ClassMetrics: classMetrics,
			UpdateTimeMs: time.Since(start).Milliseconds(),
		},
	}
}

// #endregion update
