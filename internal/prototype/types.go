package prototype

import "time"

// #region bank

// Bank is a versioned set of per-class prototype distributions. Prototypes
// live in probability space (one row per class, each row a distribution over
// classes) and act as stable class anchors for the prototype-based losses.
type Bank struct {
	VersionID string
	ParentID  string
	Protos    [][]float64
	CreatedAt time.Time
}

// NumClasses returns the number of prototype rows.
func (b Bank) NumClasses() int { return len(b.Protos) }

// #endregion bank

// #region update-config

// UpdateConfig holds learning and decay parameters for prototype updates.
type UpdateConfig struct {
	LearningRate         float64 // step toward the batch class mean
	DecayRate            float64 // pull of unhit prototypes back toward their anchor
	MaxDeltaNormPerClass float64 // L2 clamp on a single prototype's step
	Smoothing            float64 // label smoothing of the one-hot anchors
}

// DefaultUpdateConfig returns the standard prototype update parameters.
func DefaultUpdateConfig() UpdateConfig {
	return UpdateConfig{
		LearningRate:         0.05,
		DecayRate:            0.005,
		MaxDeltaNormPerClass: 0.2,
		Smoothing:            0.1,
	}
}

// #endregion update-config

// #region metrics

// ClassMetric captures per-class telemetry from one update.
type ClassMetric struct {
	Class     int
	Count     int // samples assigned to the class this batch
	DeltaNorm float64
	DecayNorm float64
}

// Metrics captures telemetry from a prototype update.
type Metrics struct {
	DeltaNorm    float64 // L2 norm of the full bank delta
	ClassesHit   []int
	ClassMetrics []ClassMetric
	UpdateTimeMs int64
}

// Decision records what the update decided.
type Decision struct {
	Action string // "commit" | "no_op"
	Reason string
}

// UpdateResult bundles everything returned by Update.
type UpdateResult struct {
	NewBank  Bank
	Decision Decision
	Metrics  Metrics
}

// #endregion metrics
