// Package harness drives a full evaluation run: it resolves the iteration
// plan, opens one test stream per (domain, severity), steps the adaptation
// engine batch by batch, and aggregates classification error.
package harness

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/driftbench/go-harness/internal/accuracy"
	"github.com/driftbench/go-harness/internal/adapt"
	"github.com/driftbench/go-harness/internal/config"
	"github.com/driftbench/go-harness/internal/plan"
	"github.com/driftbench/go-harness/internal/policy"
	"github.com/driftbench/go-harness/internal/results"
)

// #region driver

// Driver runs evaluations against a backend. Store and selector are
// optional: without a store nothing is persisted, without a selector the
// configured preset is used for every stream.
type Driver struct {
	cfg      config.Config
	backend  adapt.Backend
	store    *results.Store
	selector *policy.Selector
	logger   *log.Logger
}

// Option configures a Driver.
type Option func(*Driver)

// WithStore enables persistence of measurements, snapshots, and decisions.
func WithStore(s *results.Store) Option {
	return func(d *Driver) { d.store = s }
}

// WithSelector enables per-domain-family preset selection from history.
func WithSelector(sel *policy.Selector) Option {
	return func(d *Driver) { d.selector = sel }
}

// WithLogger overrides the default logger.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) { d.logger = l }
}

// New validates the configuration and builds a driver.
func New(cfg config.Config, backend adapt.Backend, opts ...Option) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := &Driver{
		cfg:     cfg,
		backend: backend,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// #endregion driver

// #region run

// Run executes the full evaluation: subgroup loop, cycles, domains,
// severities, plus the extra mixed pass when the setting asks for one.
func (d *Driver) Run(ctx context.Context) (Summary, error) {
	p, err := plan.Build(d.cfg)
	if err != nil {
		return Summary{}, err
	}
	numClasses, err := config.NumClasses(d.cfg.Dataset)
	if err != nil {
		return Summary{}, err
	}

	engine, err := d.buildEngine(numClasses)
	if err != nil {
		return Summary{}, err
	}

	now := time.Now().UTC()
	summary := Summary{
		RunID:   uuid.New().String(),
		Name:    d.cfg.RunName(now),
		Dataset: d.cfg.Dataset,
		Setting: d.cfg.Setting,
	}

	if d.store != nil {
		configJSON, err := json.Marshal(d.cfg)
		if err != nil {
			return Summary{}, fmt.Errorf("marshal config: %w", err)
		}
		err = d.store.CreateRun(results.RunRecord{
			RunID:      summary.RunID,
			Name:       summary.Name,
			Dataset:    d.cfg.Dataset,
			Setting:    d.cfg.Setting,
			Method:     d.cfg.Adaptation,
			Preset:     d.cfg.LossPreset,
			StartedAt:  now,
			ConfigJSON: string(configJSON),
		})
		if err != nil {
			return Summary{}, err
		}
	}

	d.logger.Printf("[RUN] %s", summary.Name)
	d.logger.Print(engine.Description(d.cfg.Dataset, d.cfg.Setting))

	tracker := accuracy.NewTracker()

	for _, g := range p.Subgroups {
		d.resetModel(ctx, engine)
		for cycle := 0; cycle < p.Cycles; cycle++ {
			for i := g.Lo; i < g.Hi; i++ {
				domain := p.LoopSequence[i]
				for _, severity := range p.Severities {
					res, err := d.evalStream(ctx, engine, p, streamKey{
						setting: d.cfg.Setting,
						subgroup: g.Index, cycle: cycle, domain: domain, severity: severity,
					}, summary.RunID, tracker)
					if err != nil {
						return Summary{}, err
					}
					summary.Streams = append(summary.Streams, res)
					summary.Commits += res.Commits
					summary.Skips += res.Skips
				}
			}
		}
	}

	d.aggregate(&summary, p)

	// continual_mixed_domain ends with one mixed sweep over the severities,
	// carrying the adapted state from the subgroup phase into it.
	if p.ExtraMixedPass {
		for _, severity := range p.Severities {
			res, err := d.evalStream(ctx, engine, p, streamKey{
				setting:  "mixed_domains",
				subgroup: len(p.Subgroups), cycle: 0, domain: "mixed", severity: severity,
			}, summary.RunID, tracker)
			if err != nil {
				return Summary{}, err
			}
			summary.Streams = append(summary.Streams, res)
			summary.Commits += res.Commits
			summary.Skips += res.Skips
		}
	}

	summary.MeanErr = tracker.MeanError()
	summary.MeanErr5, summary.HasErr5 = tracker.MeanErrorAtSeverity5()
	if tracker.HasDomainSamples() {
		summary.DomainBreakdown = tracker.DomainBreakdown(p.DomainSequence)
	}

	d.logger.Printf("[RUN] mean error: %.2f%%", summary.MeanErr*100)
	if summary.HasErr5 {
		d.logger.Printf("[RUN] mean error at severity 5: %.2f%%", summary.MeanErr5*100)
	}
	for _, de := range summary.DomainBreakdown {
		d.logger.Printf("[RUN] mixed breakdown %s: %.2f%% (#samples=%d)", de.Domain, de.Err*100, de.Samples)
	}

	if d.store != nil {
		if err := d.store.FinishRun(summary.RunID, summary.MeanErr, summary.MeanErr5, summary.HasErr5); err != nil {
			return Summary{}, err
		}
		if err := d.snapshotBank(engine, summary.RunID); err != nil {
			return Summary{}, err
		}
	}

	return summary, nil
}

func (d *Driver) buildEngine(numClasses int) (*adapt.Engine, error) {
	ec := adapt.DefaultEngineConfig(numClasses)
	ec.ProtoConfig.LearningRate = d.cfg.ProtoLearning

	if len(d.cfg.LossWeights) > 0 {
		ec.Weights = d.cfg.LossWeights
	} else {
		w, err := policy.Weights(d.cfg.LossPreset)
		if err != nil {
			return nil, err
		}
		ec.Weights = w
	}
	return adapt.NewEngine(ec), nil
}

// resetModel restores pristine model weights between subgroups. Backends
// without reset support only cost a warning.
func (d *Driver) resetModel(ctx context.Context, engine *adapt.Engine) {
	if err := d.backend.Reset(ctx); err != nil {
		if errors.Is(err, adapt.ErrResetUnsupported) {
			d.logger.Printf("[RUN] warning: backend has no reset, continuing without")
		} else {
			d.logger.Printf("[RUN] warning: reset failed: %v", err)
		}
	}
	engine.Reset()
}

func (d *Driver) snapshotBank(engine *adapt.Engine, runID string) error {
	bank := engine.Bank()
	metricsJSON, err := json.Marshal(map[string]int{"num_classes": bank.NumClasses()})
	if err != nil {
		return fmt.Errorf("marshal bank metrics: %w", err)
	}
	return d.store.SaveSnapshot(results.ProtoSnapshot{
		VersionID:   bank.VersionID,
		ParentID:    bank.ParentID,
		RunID:       runID,
		Protos:      bank.Protos,
		CreatedAt:   time.Now().UTC(),
		MetricsJSON: string(metricsJSON),
	})
}

// #endregion run

// #region aggregates

// aggregate computes the subgroup-phase error averages: per subgroup and
// cycle, per subgroup across cycles, per cycle across subgroups, and the
// total average over subgroup averages.
func (d *Driver) aggregate(summary *Summary, p plan.Plan) {
	if len(summary.Streams) == 0 {
		return
	}

	sums := make([][]float64, len(p.Subgroups))
	counts := make([][]int, len(p.Subgroups))
	for g := range sums {
		sums[g] = make([]float64, p.Cycles)
		counts[g] = make([]int, p.Cycles)
	}
	for _, s := range summary.Streams {
		if s.Subgroup >= len(p.Subgroups) || s.Cycle >= p.Cycles {
			continue
		}
		sums[s.Subgroup][s.Cycle] += s.Err
		counts[s.Subgroup][s.Cycle]++
	}

	summary.SubgroupCycleMeans = make([][]float64, len(p.Subgroups))
	summary.SubgroupMeans = make([]float64, len(p.Subgroups))
	summary.CycleMeans = make([]float64, p.Cycles)

	for g := range sums {
		summary.SubgroupCycleMeans[g] = make([]float64, p.Cycles)
		var subgroupSum float64
		for c := 0; c < p.Cycles; c++ {
			mean := sums[g][c] / float64(max(counts[g][c], 1))
			summary.SubgroupCycleMeans[g][c] = mean
			subgroupSum += mean
			d.logger.Printf("[RUN] average error for subgroup %d - cycle %d: %.2f%%", g, c+1, mean*100)
		}
		summary.SubgroupMeans[g] = subgroupSum / float64(p.Cycles)
		d.logger.Printf("[RUN] averaged error for subgroup %d across cycles: %.2f%%", g, summary.SubgroupMeans[g]*100)
	}

	for c := 0; c < p.Cycles; c++ {
		var sum float64
		for g := range summary.SubgroupCycleMeans {
			sum += summary.SubgroupCycleMeans[g][c]
		}
		summary.CycleMeans[c] = sum / float64(len(p.Subgroups))
		d.logger.Printf("[RUN] average error across all subgroups - cycle %d: %.2f%%", c+1, summary.CycleMeans[c]*100)
	}

	var total float64
	for _, m := range summary.SubgroupMeans {
		total += m
	}
	summary.MeanOverSubgroups = total / float64(len(summary.SubgroupMeans))
	d.logger.Printf("[RUN] total average error across all subgroups: %.2f%%", summary.MeanOverSubgroups*100)
}

// #endregion aggregates

// #region eval-stream

type streamKey struct {
	setting  string
	subgroup int
	cycle    int
	domain   string
	severity int
}

// evalStream opens one test stream and walks it batch by batch: forward,
// engine step, guarded backend adaptation, accuracy accounting.
func (d *Driver) evalStream(ctx context.Context, engine *adapt.Engine, p plan.Plan, key streamKey, runID string, tracker *accuracy.Tracker) (StreamResult, error) {
	if d.selector != nil && d.cfg.AdaptivePolicy {
		preset, err := d.selector.BestPreset(policy.DomainFamily(key.domain))
		if err != nil {
			return StreamResult{}, err
		}
		w, err := policy.Weights(preset)
		if err != nil {
			return StreamResult{}, err
		}
		engine.SetWeights(w)
		d.logger.Printf("[POLICY] %s%d: preset %s", key.domain, key.severity, preset)
	}

	info, err := d.backend.OpenStream(ctx, adapt.StreamSpec{
		Setting:     key.setting,
		Dataset:     d.cfg.Dataset,
		Domain:      key.domain,
		DomainsAll:  p.DomainSequence,
		Severity:    key.severity,
		NumExamples: d.cfg.NumExamples,
		BatchSize:   d.cfg.BatchSize,
		NViews:      d.cfg.NViews,
		Seed:        d.cfg.RNGSeed,
	})
	if err != nil {
		return StreamResult{}, fmt.Errorf("open stream %s%d: %w", key.domain, key.severity, err)
	}

	result := StreamResult{
		Subgroup: key.subgroup,
		Cycle:    key.cycle,
		Domain:   key.domain,
		Severity: key.severity,
	}
	var counter accuracy.StreamCounter
	batchNum := 0

	for {
		if err := ctx.Err(); err != nil {
			return StreamResult{}, err
		}

		batch, err := d.backend.NextBatch(ctx, info.StreamID)
		if errors.Is(err, adapt.ErrStreamExhausted) {
			break
		}
		if err != nil {
			return StreamResult{}, fmt.Errorf("next batch: %w", err)
		}
		batchNum++

		views, err := d.backend.Forward(ctx, batch.BatchID)
		if err != nil {
			return StreamResult{}, fmt.Errorf("forward: %w", err)
		}

		step := engine.Step(views)
		if step.Decision.Action == "commit" {
			if _, err := d.backend.Adapt(ctx, batch.BatchID, step.Weights); err != nil {
				return StreamResult{}, fmt.Errorf("adapt: %w", err)
			}
			result.Commits++
		} else {
			result.Skips++
			if d.cfg.Debug {
				d.logger.Printf("[GUARD] skip %s%d batch %d: %s", key.domain, key.severity, batchNum, step.Decision.Reason)
			}
		}
		if err := d.logStep(runID, key, step); err != nil {
			return StreamResult{}, err
		}

		preds := accuracy.Predictions(views.Student)
		counter.Observe(preds, batch.Labels)
		if batch.Domains != nil {
			tracker.ObserveSamples(batch.Domains, preds, batch.Labels)
		}

		if d.cfg.PrintEvery > 0 && batchNum%d.cfg.PrintEvery == 0 {
			d.logger.Printf("[STREAM] %s%d batch %d: running error %.2f%%",
				key.domain, key.severity, batchNum, counter.Error()*100)
		}
	}

	result.NumSamples = counter.Total
	result.Err = counter.Error()

	d.logger.Printf("%s error %% [%s%d][#samples=%d]: %.2f%%",
		d.cfg.Dataset, key.domain, key.severity, result.NumSamples, result.Err*100)

	tracker.RecordStream(key.domain, key.severity, result.Err)

	if d.store != nil {
		err := d.store.InsertMeasurement(results.Measurement{
			RunID:      runID,
			Subgroup:   key.subgroup,
			Cycle:      key.cycle,
			Domain:     key.domain,
			Severity:   key.severity,
			NumSamples: result.NumSamples,
			Err:        result.Err,
			CreatedAt:  time.Now().UTC(),
		})
		if err != nil {
			return StreamResult{}, err
		}
		err = d.store.RecordPolicyOutcome(results.PolicyOutcome{
			RunID:        runID,
			Preset:       d.activePreset(),
			DomainFamily: policy.DomainFamily(key.domain),
			Err:          result.Err,
			Samples:      result.NumSamples,
			CreatedAt:    time.Now().UTC(),
		})
		if err != nil {
			return StreamResult{}, err
		}
	}

	return result, nil
}

func (d *Driver) activePreset() string {
	if len(d.cfg.LossWeights) > 0 {
		return "custom"
	}
	return d.cfg.LossPreset
}

func (d *Driver) logStep(runID string, key streamKey, step adapt.StepResult) error {
	if d.store == nil {
		return nil
	}
	signalsJSON, err := json.Marshal(step.Metrics.LossTerms)
	if err != nil {
		return fmt.Errorf("marshal loss terms: %w", err)
	}
	return d.store.LogStep(results.StepLog{
		RunID:       runID,
		Domain:      key.domain,
		Severity:    key.severity,
		Decision:    step.Decision.Action,
		Reason:      step.Decision.Reason,
		SignalsJSON: string(signalsJSON),
		CreatedAt:   time.Now().UTC(),
	})
}

// #endregion eval-stream
