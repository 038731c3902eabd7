// Package simbackend is an in-process adapt.Backend with synthetic
// class-conditional logits. It stands in for the inference service in
// tests and replay runs: no model, no data, fully deterministic per seed.
package simbackend

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/driftbench/go-harness/internal/adapt"
)

// #region config

// Config shapes the synthetic logit distribution.
type Config struct {
	NumClasses      int
	CleanMargin     float64 // logit margin of the true class on clean data
	SeverityPenalty float64 // margin lost per corruption severity level
	RecoveryGain    float64 // margin regained per applied adaptation step
	MaxRecovery     float64 // cap on the total regained margin
	NoiseScale      float64 // stddev of the per-logit gaussian noise
	ResetSupported  bool
}

// DefaultConfig returns parameters where severity 5 roughly halves
// accuracy before adaptation and steady adaptation restores most of it.
func DefaultConfig(numClasses int) Config {
	return Config{
		NumClasses:      numClasses,
		CleanMargin:     4.0,
		SeverityPenalty: 0.7,
		RecoveryGain:    0.05,
		MaxRecovery:     2.5,
		NoiseScale:      1.5,
		ResetSupported:  true,
	}
}

// #endregion config

// #region backend

type stream struct {
	spec   adapt.StreamSpec
	rng    *rand.Rand
	served int
}

type batchState struct {
	stream  *stream
	labels  []int
	domains []string
	seed    int64
}

// Backend implements adapt.Backend without a model service.
type Backend struct {
	mu         sync.Mutex
	config     Config
	adaptSteps int
	streams    map[string]*stream
	batches    map[string]*batchState
}

var _ adapt.Backend = (*Backend)(nil)

// New creates a synthetic backend.
func New(config Config) *Backend {
	return &Backend{
		config:  config,
		streams: make(map[string]*stream),
		batches: make(map[string]*batchState),
	}
}

// #endregion backend

// #region open-stream

// OpenStream registers a synthetic test stream. The stream's RNG is seeded
// from the spec seed plus the domain and severity, so identical specs
// reproduce identical streams.
func (b *Backend) OpenStream(ctx context.Context, spec adapt.StreamSpec) (adapt.StreamInfo, error) {
	if spec.NumExamples <= 0 || spec.BatchSize <= 0 {
		return adapt.StreamInfo{}, fmt.Errorf("open stream: need positive num_examples and batch_size, got %d/%d",
			spec.NumExamples, spec.BatchSize)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.New().String()
	b.streams[id] = &stream{
		spec: spec,
		rng:  rand.New(rand.NewSource(streamSeed(spec))),
	}
	return adapt.StreamInfo{StreamID: id, NumSamples: spec.NumExamples}, nil
}

func streamSeed(spec adapt.StreamSpec) int64 {
	h := spec.Seed
	for _, c := range spec.Domain {
		h = h*31 + int64(c)
	}
	return h*31 + int64(spec.Severity)
}

// #endregion open-stream

// #region next-batch

// NextBatch produces the next batch of labels, cycling classes uniformly.
// Mixed streams attribute samples round-robin across the full domain list.
func (b *Backend) NextBatch(ctx context.Context, streamID string) (adapt.Batch, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	s, ok := b.streams[streamID]
	if !ok {
		return adapt.Batch{}, fmt.Errorf("next batch: unknown stream %s", streamID)
	}
	remaining := s.spec.NumExamples - s.served
	if remaining <= 0 {
		return adapt.Batch{}, adapt.ErrStreamExhausted
	}
	n := s.spec.BatchSize
	if n > remaining {
		n = remaining
	}

	labels := make([]int, n)
	for i := range labels {
		labels[i] = s.rng.Intn(b.config.NumClasses)
	}

	var domains []string
	if s.spec.Domain == "mixed" && len(s.spec.DomainsAll) > 0 {
		domains = make([]string, n)
		for i := range domains {
			domains[i] = s.spec.DomainsAll[(s.served+i)%len(s.spec.DomainsAll)]
		}
	}

	id := uuid.New().String()
	b.batches[id] = &batchState{
		stream:  s,
		labels:  labels,
		domains: domains,
		seed:    s.rng.Int63(),
	}
	s.served += n

	return adapt.Batch{BatchID: id, Labels: labels, Domains: domains}, nil
}

// #endregion next-batch

// #region forward

// Forward emits class-conditional logits. The true class carries a margin
// that shrinks with severity and grows back with applied adaptation steps.
func (b *Backend) Forward(ctx context.Context, batchID string) (adapt.LogitViews, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	bs, ok := b.batches[batchID]
	if !ok {
		return adapt.LogitViews{}, fmt.Errorf("forward: unknown batch %s", batchID)
	}

	margin := b.margin(bs.stream.spec.Severity)
	rng := rand.New(rand.NewSource(bs.seed))

	gen := func(scale float64) [][]float64 {
		rows := make([][]float64, len(bs.labels))
		for i, label := range bs.labels {
			row := make([]float64, b.config.NumClasses)
			for j := range row {
				row[j] = rng.NormFloat64() * b.config.NoiseScale
			}
			row[label] += margin * scale
			rows[i] = row
		}
		return rows
	}

	views := adapt.LogitViews{
		Student:  gen(1.0),
		Teacher1: gen(1.05), // EMA teacher is marginally steadier
		Teacher2: gen(0.95),
	}
	if bs.stream.spec.NViews > 0 {
		views.Aug = gen(0.9)
	}
	return views, nil
}

func (b *Backend) margin(severity int) float64 {
	m := b.config.CleanMargin - b.config.SeverityPenalty*float64(severity)
	recovered := b.config.RecoveryGain * float64(b.adaptSteps)
	if recovered > b.config.MaxRecovery {
		recovered = b.config.MaxRecovery
	}
	m += recovered
	if m < 0 {
		m = 0
	}
	return m
}

// #endregion forward

// #region adapt

// Adapt records one adaptation step, nudging all later margins up.
func (b *Backend) Adapt(ctx context.Context, batchID string, weights map[string]float64) (adapt.StepStats, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.batches[batchID]; !ok {
		return adapt.StepStats{}, fmt.Errorf("adapt: unknown batch %s", batchID)
	}
	b.adaptSteps++

	var total float64
	for _, w := range weights {
		total += w
	}
	return adapt.StepStats{
		AppliedLoss:    total / float64(len(weights)+1),
		ParamDeltaNorm: b.config.RecoveryGain,
	}, nil
}

// #endregion adapt

// #region reset

// Reset discards accumulated adaptation.
func (b *Backend) Reset(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.config.ResetSupported {
		return adapt.ErrResetUnsupported
	}
	b.adaptSteps = 0
	return nil
}

// AdaptSteps reports the number of applied adaptation steps.
func (b *Backend) AdaptSteps() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.adaptSteps
}

// #endregion reset
