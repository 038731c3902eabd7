package harness

import (
	"github.com/driftbench/go-harness/internal/accuracy"
)

// #region stream-result

// StreamResult is the outcome of evaluating one (domain, severity) stream.
type StreamResult struct {
	Subgroup   int     `json:"subgroup"`
	Cycle      int     `json:"cycle"`
	Domain     string  `json:"domain"`
	Severity   int     `json:"severity"`
	NumSamples int     `json:"num_samples"`
	Err        float64 `json:"err"`
	Commits    int     `json:"commits"`
	Skips      int     `json:"skips"`
}

// #endregion stream-result

// #region summary

// Summary aggregates a completed evaluation run.
type Summary struct {
	RunID   string         `json:"run_id"`
	Name    string         `json:"name"`
	Dataset string         `json:"dataset"`
	Setting string         `json:"setting"`
	Streams []StreamResult `json:"streams"`

	MeanErr  float64 `json:"mean_err"`
	MeanErr5 float64 `json:"mean_err_5,omitempty"`
	HasErr5  bool    `json:"has_err_5"`

	// Subgroup-phase aggregates: per (subgroup, cycle), per subgroup across
	// cycles, per cycle across subgroups, and the mean of subgroup means.
	// The extra mixed pass is excluded.
	SubgroupCycleMeans [][]float64 `json:"subgroup_cycle_means,omitempty"`
	SubgroupMeans      []float64   `json:"subgroup_means,omitempty"`
	CycleMeans         []float64   `json:"cycle_means,omitempty"`
	MeanOverSubgroups  float64     `json:"mean_over_subgroups,omitempty"`

	// DomainBreakdown attributes mixed-stream errors back to source domains.
	DomainBreakdown []accuracy.DomainError `json:"domain_breakdown,omitempty"`

	Commits int `json:"commits"`
	Skips   int `json:"skips"`
}

// #endregion summary
