// Package modelsvc wraps the gRPC connection to the Python inference
// service that owns the model, its EMA teachers, and all gradient work.
//
// The driftpb package is generated from proto/driftbench.proto:
//
//	protoc --go_out=. --go-grpc_out=. proto/driftbench.proto
package modelsvc

import (
	"context"
	"fmt"

	pb "github.com/driftbench/go-harness/gen/driftpb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/driftbench/go-harness/internal/adapt"
)

// #region client-struct
// Client implements adapt.Backend over gRPC.
type Client struct {
	conn   *grpc.ClientConn
	client pb.ModelServiceClient
}

var _ adapt.Backend = (*Client)(nil)

// #endregion client-struct

// #region constructor
// NewClient connects to the Python inference gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewModelServiceClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service implementation.
// Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.ModelServiceClient) *Client {
	return &Client{client: svc}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region open-stream
// OpenStream asks the service to prepare one (domain, severity) test stream.
func (c *Client) OpenStream(ctx context.Context, spec adapt.StreamSpec) (adapt.StreamInfo, error) {
	resp, err := c.client.OpenStream(ctx, &pb.OpenStreamRequest{
		Setting:     spec.Setting,
		Dataset:     spec.Dataset,
		Domain:      spec.Domain,
		DomainsAll:  spec.DomainsAll,
		Severity:    int32(spec.Severity),
		NumExamples: int32(spec.NumExamples),
		BatchSize:   int32(spec.BatchSize),
		NViews:      int32(spec.NViews),
		Seed:        spec.Seed,
	})
	if err != nil {
		return adapt.StreamInfo{}, fmt.Errorf("open stream rpc: %w", err)
	}
	return adapt.StreamInfo{
		StreamID:   resp.StreamId,
		NumSamples: int(resp.NumSamples),
	}, nil
}

// #endregion open-stream

// #region next-batch
// NextBatch fetches the next batch of the stream. Returns
// adapt.ErrStreamExhausted once the stream is drained.
func (c *Client) NextBatch(ctx context.Context, streamID string) (adapt.Batch, error) {
	resp, err := c.client.NextBatch(ctx, &pb.NextBatchRequest{
		StreamId: streamID,
	})
	if err != nil {
		return adapt.Batch{}, fmt.Errorf("next batch rpc: %w", err)
	}
	if resp.Exhausted {
		return adapt.Batch{}, adapt.ErrStreamExhausted
	}

	labels := make([]int, len(resp.Labels))
	for i, l := range resp.Labels {
		labels[i] = int(l)
	}
	return adapt.Batch{
		BatchID: resp.BatchId,
		Labels:  labels,
		Domains: resp.Domains,
	}, nil
}

// #endregion next-batch

// #region forward
// Forward computes the student, teacher, and augmented logits for a batch.
func (c *Client) Forward(ctx context.Context, batchID string) (adapt.LogitViews, error) {
	resp, err := c.client.Forward(ctx, &pb.ForwardRequest{
		BatchId: batchID,
	})
	if err != nil {
		return adapt.LogitViews{}, fmt.Errorf("forward rpc: %w", err)
	}
	return adapt.LogitViews{
		Student:  unflatten(resp.Student),
		Teacher1: unflatten(resp.Teacher1),
		Teacher2: unflatten(resp.Teacher2),
		Aug:      unflatten(resp.Aug),
	}, nil
}

// unflatten converts a row-major float32 matrix into [][]float64.
// A nil or empty matrix maps to nil.
func unflatten(m *pb.LogitMatrix) [][]float64 {
	if m == nil || m.NumClasses == 0 || len(m.Values) == 0 {
		return nil
	}
	cols := int(m.NumClasses)
	rows := len(m.Values) / cols
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		row := make([]float64, cols)
		for j := 0; j < cols; j++ {
			row[j] = float64(m.Values[i*cols+j])
		}
		out[i] = row
	}
	return out
}

// #endregion forward

// #region adapt
// Adapt applies one gradient step on the batch with the given loss weights.
func (c *Client) Adapt(ctx context.Context, batchID string, weights map[string]float64) (adapt.StepStats, error) {
	w := make(map[string]float32, len(weights))
	for k, v := range weights {
		w[k] = float32(v)
	}
	resp, err := c.client.Adapt(ctx, &pb.AdaptRequest{
		BatchId:     batchID,
		LossWeights: w,
	})
	if err != nil {
		return adapt.StepStats{}, fmt.Errorf("adapt rpc: %w", err)
	}
	return adapt.StepStats{
		AppliedLoss:    float64(resp.AppliedLoss),
		ParamDeltaNorm: float64(resp.ParamDeltaNorm),
	}, nil
}

// #endregion adapt

// #region reset
// Reset restores the pristine model weights. Services that cannot reset
// report it in-band; the driver warns and continues without the reset.
func (c *Client) Reset(ctx context.Context) error {
	resp, err := c.client.Reset(ctx, &pb.ResetRequest{})
	if err != nil {
		return fmt.Errorf("reset rpc: %w", err)
	}
	if !resp.Supported {
		return adapt.ErrResetUnsupported
	}
	return nil
}

// #endregion reset
