package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/driftbench/go-harness/internal/adapt"
	"github.com/driftbench/go-harness/internal/guard"
	"github.com/driftbench/go-harness/internal/prototype"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string         `json:"description"`
	Config      FixtureConfig  `json:"config"`
	Batches     []FixtureBatch `json:"batches"`
	Expected    Expectations   `json:"expected"`
}

// FixtureConfig mirrors adapt.EngineConfig with JSON tags.
type FixtureConfig struct {
	NumClasses  int                `json:"num_classes"`
	Weights     map[string]float64 `json:"weights"`
	Temperature float64            `json:"temperature"`

	Guard FixtureGuardConfig `json:"guard"`
	Proto FixtureProtoConfig `json:"proto"`
}

// FixtureGuardConfig mirrors guard.GuardConfig with JSON tags.
type FixtureGuardConfig struct {
	MaxEntropyFrac    float64 `json:"max_entropy_frac"`
	MinDiversityFrac  float64 `json:"min_diversity_frac"`
	MaxProtoDeltaNorm float64 `json:"max_proto_delta_norm"`
}

// FixtureProtoConfig mirrors prototype.UpdateConfig with JSON tags.
type FixtureProtoConfig struct {
	LearningRate         float64 `json:"learning_rate"`
	DecayRate            float64 `json:"decay_rate"`
	MaxDeltaNormPerClass float64 `json:"max_delta_norm_per_class"`
	Smoothing            float64 `json:"smoothing"`
}

// FixtureBatch mirrors RecordedBatch with JSON tags.
type FixtureBatch struct {
	Labels   []int       `json:"labels"`
	Student  [][]float64 `json:"student"`
	Teacher1 [][]float64 `json:"teacher1"`
	Teacher2 [][]float64 `json:"teacher2"`
	Aug      [][]float64 `json:"aug,omitempty"`
}

// ExpectedDecision is the expected guard action for one batch.
type ExpectedDecision struct {
	Index  int    `json:"index"`
	Action string `json:"action"`
}

// Expectations captures what the fixture asserts about the replay.
type Expectations struct {
	Decisions []ExpectedDecision `json:"decisions"`
	FinalErr  *float64           `json:"final_err,omitempty"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if f.Config.NumClasses <= 0 {
		return nil, fmt.Errorf("fixture %s: num_classes must be positive", path)
	}
	return &f, nil
}

// ToEngineConfig converts the fixture config to a domain adapt.EngineConfig.
// Zero-valued knobs fall back to the defaults.
func (fc *FixtureConfig) ToEngineConfig() adapt.EngineConfig {
	ec := adapt.DefaultEngineConfig(fc.NumClasses)
	if len(fc.Weights) > 0 {
		ec.Weights = fc.Weights
	}
	if fc.Temperature != 0 {
		ec.Temperature = fc.Temperature
	}
	if fc.Guard != (FixtureGuardConfig{}) {
		ec.GuardConfig = guard.GuardConfig{
			MaxEntropyFrac:    fc.Guard.MaxEntropyFrac,
			MinDiversityFrac:  fc.Guard.MinDiversityFrac,
			MaxProtoDeltaNorm: fc.Guard.MaxProtoDeltaNorm,
		}
	}
	if fc.Proto != (FixtureProtoConfig{}) {
		ec.ProtoConfig = prototype.UpdateConfig{
			LearningRate:         fc.Proto.LearningRate,
			DecayRate:            fc.Proto.DecayRate,
			MaxDeltaNormPerClass: fc.Proto.MaxDeltaNormPerClass,
			Smoothing:            fc.Proto.Smoothing,
		}
	}
	return ec
}

// ToRecordedBatch converts a FixtureBatch to a domain RecordedBatch.
func (fb *FixtureBatch) ToRecordedBatch() RecordedBatch {
	return RecordedBatch{
		Labels: fb.Labels,
		Views: adapt.LogitViews{
			Student:  fb.Student,
			Teacher1: fb.Teacher1,
			Teacher2: fb.Teacher2,
			Aug:      fb.Aug,
		},
	}
}

// RecordedBatches converts all fixture batches.
func (f *Fixture) RecordedBatches() []RecordedBatch {
	out := make([]RecordedBatch, len(f.Batches))
	for i := range f.Batches {
		out[i] = f.Batches[i].ToRecordedBatch()
	}
	return out
}

// #endregion fixture-loader
