package plan

import (
	"fmt"
	"strings"

	"github.com/driftbench/go-harness/internal/config"
)

// #region types

// Subgroup is a half-open index range [Lo, Hi) into the loop sequence.
// Subgroups are evaluated independently, with a model reset between them.
type Subgroup struct {
	Index int
	Lo    int
	Hi    int
}

// Plan is the fully resolved iteration plan for one evaluation run.
type Plan struct {
	// DomainSequence is the full ordered list of domains for the dataset.
	DomainSequence []string
	// LoopSequence is what the driver actually iterates: collapses to a
	// single "mixed" pseudo-domain for mixed-domain settings.
	LoopSequence []string
	// Severities per domain, possibly expanded into a gradual ramp.
	Severities []int
	Subgroups  []Subgroup
	Cycles     int
	// ExtraMixedPass adds a final mixed-domain sweep over all severities
	// (continual_mixed_domain setting).
	ExtraMixedPass bool
}

// #endregion types

// #region subgroup-layout

// Base subgroup layout over the standard 15-corruption sequence.
var baseSubgroups = [][2]int{
	{0, 3},
	{3, 7},
	{7, 10},
	{10, 12},
	{12, 15},
}

// gradualRamp is the severity schedule used per domain in gradual settings.
var gradualRamp = []int{1, 2, 3, 4, 5, 4, 3, 2, 1}

// #endregion subgroup-layout

// #region build

// Build resolves the domain sequence, severity schedule, and subgroup layout
// for the given configuration.
func Build(cfg config.Config) (Plan, error) {
	domains, err := resolveDomains(cfg)
	if err != nil {
		return Plan{}, err
	}

	// Mixed-domain settings would otherwise iterate the same data once per
	// domain; collapse to a single pseudo-domain instead.
	loop := domains
	if strings.Contains(cfg.Setting, "mixed_domains") {
		loop = []string{"mixed"}
	}

	severities := cfg.Severities
	if strings.Contains(cfg.Setting, "gradual") && hasCorruptionSeverities(cfg.Dataset) && len(cfg.Severities) == 1 {
		severities = append([]int(nil), gradualRamp...)
	}

	return Plan{
		DomainSequence: domains,
		LoopSequence:   loop,
		Severities:     severities,
		Subgroups:      clipSubgroups(len(loop)),
		Cycles:         cfg.Cycles,
		ExtraMixedPass: cfg.Setting == "continual_mixed_domain",
	}, nil
}

func resolveDomains(cfg config.Config) ([]string, error) {
	switch {
	case cfg.Dataset == "domainnet126":
		return config.CkptPathToDomainSeq(cfg.CkptPath)
	case (cfg.Dataset == "imagenet_d" || cfg.Dataset == "imagenet_d109") && noExplicitTypes(cfg):
		return config.DefaultDomainSequence(cfg.Dataset), nil
	case len(cfg.CorruptionTypes) > 0 && cfg.CorruptionTypes[0] != "":
		return cfg.CorruptionTypes, nil
	default:
		seq := config.DefaultDomainSequence(cfg.Dataset)
		if len(seq) == 0 {
			return nil, fmt.Errorf("no domain sequence for dataset %q", cfg.Dataset)
		}
		return seq, nil
	}
}

func noExplicitTypes(cfg config.Config) bool {
	return len(cfg.CorruptionTypes) == 0 || cfg.CorruptionTypes[0] == ""
}

func hasCorruptionSeverities(dataset string) bool {
	switch dataset {
	case "cifar10_c", "cifar100_c", "imagenet_c":
		return true
	}
	return false
}

// clipSubgroups clamps the base layout to the loop-sequence length, dropping
// empty ranges. A single-domain loop (mixed settings) yields one subgroup.
func clipSubgroups(n int) []Subgroup {
	var out []Subgroup
	for _, r := range baseSubgroups {
		lo, hi := r[0], r[1]
		if lo >= n {
			break
		}
		if hi > n {
			hi = n
		}
		out = append(out, Subgroup{Index: len(out), Lo: lo, Hi: hi})
	}
	return out
}

// #endregion build

// #region accessors

// NumStreams returns the total number of (domain, severity) evaluations in
// the subgroup phase, across all cycles.
func (p Plan) NumStreams() int {
	total := 0
	for _, g := range p.Subgroups {
		total += (g.Hi - g.Lo) * len(p.Severities) * p.Cycles
	}
	return total
}

// #endregion accessors
