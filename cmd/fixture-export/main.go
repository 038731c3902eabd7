// fixture-export records batches from the synthetic backend and writes a
// replay fixture whose expectations match the current engine behavior.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/driftbench/go-harness/internal/adapt"
	"github.com/driftbench/go-harness/internal/config"
	"github.com/driftbench/go-harness/internal/replay"
	"github.com/driftbench/go-harness/internal/simbackend"
)

// #region main

func main() {
	dataset := flag.String("dataset", "cifar10_c", "dataset name")
	domain := flag.String("domain", "gaussian_noise", "corruption domain")
	severity := flag.Int("severity", 5, "corruption severity")
	batches := flag.Int("batches", 4, "number of batches to record")
	batchSize := flag.Int("batch-size", 64, "samples per batch")
	seed := flag.Int64("seed", 1, "stream RNG seed")
	outPath := flag.String("out", "", "output fixture JSON path")
	flag.Parse()

	if *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --out path/to/fixture.json [--dataset d] [--domain c] [--severity n] [--batches n] [--batch-size n] [--seed n]")
		os.Exit(2)
	}

	if err := run(*dataset, *domain, *severity, *batches, *batchSize, *seed, *outPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

func run(dataset, domain string, severity, numBatches, batchSize int, seed int64, outPath string) error {
	numClasses, err := config.NumClasses(dataset)
	if err != nil {
		return err
	}

	backend := simbackend.New(simbackend.DefaultConfig(numClasses))
	ctx := context.Background()

	info, err := backend.OpenStream(ctx, adapt.StreamSpec{
		Setting:     "continual",
		Dataset:     dataset,
		Domain:      domain,
		Severity:    severity,
		NumExamples: numBatches * batchSize,
		BatchSize:   batchSize,
		Seed:        seed,
	})
	if err != nil {
		return fmt.Errorf("open stream: %w", err)
	}

	fixtureBatches := make([]replay.FixtureBatch, 0, numBatches)
	for i := 0; i < numBatches; i++ {
		batch, err := backend.NextBatch(ctx, info.StreamID)
		if err != nil {
			return fmt.Errorf("next batch: %w", err)
		}
		views, err := backend.Forward(ctx, batch.BatchID)
		if err != nil {
			return fmt.Errorf("forward: %w", err)
		}
		fixtureBatches = append(fixtureBatches, replay.FixtureBatch{
			Labels:   batch.Labels,
			Student:  views.Student,
			Teacher1: views.Teacher1,
			Teacher2: views.Teacher2,
			Aug:      views.Aug,
		})
	}

	f := replay.Fixture{
		Description: fmt.Sprintf("%s %s%d, %d recorded batches (seed %d)",
			dataset, domain, severity, numBatches, seed),
		Config:  replay.FixtureConfig{NumClasses: numClasses},
		Batches: fixtureBatches,
	}

	// Replay once to bake the expected decisions and final error into the
	// fixture, so later divergences show up as DIFFs.
	batchResults, summary := replay.Replay(f.Config.ToEngineConfig(), f.RecordedBatches())
	decisions := make([]replay.ExpectedDecision, len(batchResults))
	for i, r := range batchResults {
		decisions[i] = replay.ExpectedDecision{Index: r.Index, Action: r.Action}
	}
	finalErr := summary.FinalErr
	f.Expected = replay.Expectations{Decisions: decisions, FinalErr: &finalErr}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write fixture: %w", err)
	}

	fmt.Printf("Wrote %s: %d batches, %d commits, %d skips, final error %.2f%%\n",
		outPath, summary.TotalBatches, summary.Commits, summary.Skips, summary.FinalErr*100)
	return nil
}

// #endregion export
