package adapt

import (
	"context"
	"errors"
)

// #region errors

// ErrStreamExhausted is returned by NextBatch when a stream has no more data.
var ErrStreamExhausted = errors.New("stream exhausted")

// ErrResetUnsupported is returned by Reset when the backend cannot restore
// pristine weights. The driver logs a warning and continues without the reset.
var ErrResetUnsupported = errors.New("model reset not supported")

// #endregion errors

// #region stream-types

// StreamSpec describes one (domain, severity) test stream to open.
type StreamSpec struct {
	Setting     string
	Dataset     string
	Domain      string
	DomainsAll  []string // full sequence, needed for mixed streams
	Severity    int
	NumExamples int
	BatchSize   int
	NViews      int // augmented views per sample, 0 disables the aug view
	Seed        int64
}

// StreamInfo is returned when a stream is opened.
type StreamInfo struct {
	StreamID   string
	NumSamples int
}

// Batch is one batch of test samples. The inputs stay on the backend side;
// the harness only sees labels and (for mixed streams) per-sample domains.
type Batch struct {
	BatchID string
	Labels  []int
	Domains []string // per-sample source domain, nil outside mixed streams
}

// #endregion stream-types

// #region logit-views

// LogitViews bundles the logit matrices the backend computes for a batch:
// the student network (S), the EMA teacher (T1), the second teacher (T2),
// and optionally an augmented view of the input.
type LogitViews struct {
	Student  [][]float64
	Teacher1 [][]float64
	Teacher2 [][]float64
	Aug      [][]float64 // nil when no augmented views were requested
}

// #endregion logit-views

// #region step-stats

// StepStats is the backend-side telemetry for one applied adaptation step.
type StepStats struct {
	AppliedLoss    float64
	ParamDeltaNorm float64
}

// #endregion step-stats

// #region backend

// Backend abstracts the inference service that owns the model, its EMA
// teachers, data loading, and all gradient computation. Implemented by the
// gRPC client and by the in-process synthetic backend used in tests.
type Backend interface {
	OpenStream(ctx context.Context, spec StreamSpec) (StreamInfo, error)
	NextBatch(ctx context.Context, streamID string) (Batch, error)
	Forward(ctx context.Context, batchID string) (LogitViews, error)
	Adapt(ctx context.Context, batchID string, weights map[string]float64) (StepStats, error)
	Reset(ctx context.Context) error
}

// #endregion backend
