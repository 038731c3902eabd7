package simbackend

import (
	"context"
	"errors"
	"testing"

	"github.com/driftbench/go-harness/internal/accuracy"
	"github.com/driftbench/go-harness/internal/adapt"
)

func testSpec() adapt.StreamSpec {
	return adapt.StreamSpec{
		Setting:     "continual",
		Dataset:     "cifar10_c",
		Domain:      "gaussian_noise",
		Severity:    5,
		NumExamples: 100,
		BatchSize:   40,
		Seed:        7,
	}
}

func TestStreamExhaustsAfterNumExamples(t *testing.T) {
	b := New(DefaultConfig(10))
	ctx := context.Background()

	info, err := b.OpenStream(ctx, testSpec())
	if err != nil {
		t.Fatalf("open stream: %v", err)
	}
	if info.NumSamples != 100 {
		t.Fatalf("num samples: got %d", info.NumSamples)
	}

	var total int
	for {
		batch, err := b.NextBatch(ctx, info.StreamID)
		if errors.Is(err, adapt.ErrStreamExhausted) {
			break
		}
		if err != nil {
			t.Fatalf("next batch: %v", err)
		}
		total += len(batch.Labels)
	}
	if total != 100 {
		t.Fatalf("served %d samples, want 100", total)
	}
}

func TestDeterministicPerSeed(t *testing.T) {
	ctx := context.Background()
	run := func() []int {
		b := New(DefaultConfig(10))
		info, _ := b.OpenStream(ctx, testSpec())
		batch, err := b.NextBatch(ctx, info.StreamID)
		if err != nil {
			t.Fatalf("next batch: %v", err)
		}
		return batch.Labels
	}
	a, c := run(), run()
	for i := range a {
		if a[i] != c[i] {
			t.Fatalf("label %d differs across identical seeds: %d vs %d", i, a[i], c[i])
		}
	}
}

func TestSeverityDegradesAccuracy(t *testing.T) {
	ctx := context.Background()
	errAt := func(severity int) float64 {
		b := New(DefaultConfig(10))
		spec := testSpec()
		spec.Severity = severity
		spec.NumExamples = 400
		info, _ := b.OpenStream(ctx, spec)
		var c accuracy.StreamCounter
		for {
			batch, err := b.NextBatch(ctx, info.StreamID)
			if errors.Is(err, adapt.ErrStreamExhausted) {
				break
			}
			views, err := b.Forward(ctx, batch.BatchID)
			if err != nil {
				t.Fatalf("forward: %v", err)
			}
			c.Observe(accuracy.Predictions(views.Student), batch.Labels)
		}
		return c.Error()
	}

	clean, severe := errAt(0), errAt(5)
	if severe <= clean {
		t.Fatalf("severity 5 error (%.3f) should exceed clean error (%.3f)", severe, clean)
	}
}

func TestAdaptRecoversMargin(t *testing.T) {
	b := New(DefaultConfig(10))
	ctx := context.Background()
	info, _ := b.OpenStream(ctx, testSpec())
	batch, _ := b.NextBatch(ctx, info.StreamID)

	before := b.margin(5)
	for i := 0; i < 20; i++ {
		if _, err := b.Adapt(ctx, batch.BatchID, map[string]float64{"ce_s_t1": 1.0}); err != nil {
			t.Fatalf("adapt: %v", err)
		}
	}
	if after := b.margin(5); after <= before {
		t.Fatalf("margin should grow with adaptation: before %.3f, after %.3f", before, after)
	}

	if err := b.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if b.AdaptSteps() != 0 {
		t.Fatalf("reset should clear adapt steps, got %d", b.AdaptSteps())
	}
}

func TestResetUnsupported(t *testing.T) {
	cfg := DefaultConfig(10)
	cfg.ResetSupported = false
	b := New(cfg)
	if err := b.Reset(context.Background()); !errors.Is(err, adapt.ErrResetUnsupported) {
		t.Fatalf("expected ErrResetUnsupported, got %v", err)
	}
}

func TestMixedStreamAttributesDomains(t *testing.T) {
	b := New(DefaultConfig(10))
	spec := testSpec()
	spec.Domain = "mixed"
	spec.DomainsAll = []string{"fog", "snow", "frost"}
	info, _ := b.OpenStream(context.Background(), spec)

	batch, err := b.NextBatch(context.Background(), info.StreamID)
	if err != nil {
		t.Fatalf("next batch: %v", err)
	}
	if len(batch.Domains) != len(batch.Labels) {
		t.Fatalf("mixed batch needs per-sample domains: got %d for %d labels",
			len(batch.Domains), len(batch.Labels))
	}
	if batch.Domains[0] != "fog" || batch.Domains[1] != "snow" || batch.Domains[2] != "frost" {
		t.Fatalf("round-robin attribution broken: %v", batch.Domains[:3])
	}
}
