package results

import "time"

// #region records

// RunRecord is one evaluation run: a full pass over the benchmark plan.
type RunRecord struct {
	RunID      string
	Name       string
	Dataset    string
	Setting    string
	Method     string
	Preset     string
	StartedAt  time.Time
	FinishedAt time.Time // zero until the run completes
	MeanErr    float64
	MeanErr5   float64
	HasErr5    bool
	ConfigJSON string
}

// Measurement is the final error of one (domain, severity) stream.
type Measurement struct {
	RunID      string
	Subgroup   int
	Cycle      int
	Domain     string
	Severity   int
	NumSamples int
	Err        float64
	CreatedAt  time.Time
}

// ProtoSnapshot is a persisted prototype bank version.
type ProtoSnapshot struct {
	VersionID   string
	ParentID    string
	RunID       string
	Protos      [][]float64
	CreatedAt   time.Time
	MetricsJSON string
}

// StepLog is one guarded adaptation decision within a stream.
type StepLog struct {
	RunID       string
	Domain      string
	Severity    int
	Decision    string
	Reason      string
	SignalsJSON string
	CreatedAt   time.Time
}

// PolicyOutcome records how a loss preset performed on a domain family,
// feeding the decay-weighted preset selection of later runs.
type PolicyOutcome struct {
	RunID        string
	Preset       string
	DomainFamily string
	Err          float64
	Samples      int
	CreatedAt    time.Time
}

// #endregion records
