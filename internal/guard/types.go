package guard

// #region veto-type

// VetoType enumerates hard veto categories for an adaptation step.
type VetoType string

const (
	VetoNumeric      VetoType = "non_finite_loss"
	VetoEntropySpike VetoType = "entropy_spike"
	VetoCollapse     VetoType = "prediction_collapse"
	VetoDeltaCap     VetoType = "prototype_delta_cap"
)

// #endregion veto-type

// #region veto-signal

// VetoSignal represents a detected hard veto condition.
type VetoSignal struct {
	Type   VetoType
	Reason string
}

// #endregion veto-signal

// #region guard-config

// GuardConfig holds thresholds for step decisions. Entropy and diversity
// bounds are fractions of log(numClasses), so one config works across
// datasets with different class counts.
type GuardConfig struct {
	MaxEntropyFrac    float64 // veto if batch mean entropy exceeds this fraction of log(n)
	MinDiversityFrac  float64 // veto if batch diversity falls below this fraction of log(n)
	MaxProtoDeltaNorm float64 // hard cap on the prototype bank step
}

// DefaultGuardConfig returns the standard step-guard thresholds.
func DefaultGuardConfig() GuardConfig {
	return GuardConfig{
		MaxEntropyFrac:    0.9,
		MinDiversityFrac:  0.05,
		MaxProtoDeltaNorm: 1.0,
	}
}

// #endregion guard-config

// #region step-signals

// StepSignals carries everything the guard inspects for one batch.
type StepSignals struct {
	CombinedLoss   float64
	LossTerms      map[string]float64
	EntropyMean    float64 // mean per-sample entropy of the student view
	Diversity      float64 // entropy of the batch-mean distribution
	ProtoDeltaNorm float64
	PrevLoss       float64 // previous committed combined loss, 0 if none
	NumClasses     int
}

// #endregion step-signals

// #region decision

// Decision is the output of the guard evaluation.
type Decision struct {
	Action      string // "commit" | "skip"
	Reason      string
	Vetoed      bool
	VetoSignals []VetoSignal
	SoftScore   float64 // 0-1 composite, for logging only
}

// #endregion decision
