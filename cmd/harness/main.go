package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/driftbench/go-harness/internal/adapt"
	"github.com/driftbench/go-harness/internal/config"
	"github.com/driftbench/go-harness/internal/harness"
	"github.com/driftbench/go-harness/internal/modelsvc"
	"github.com/driftbench/go-harness/internal/policy"
	"github.com/driftbench/go-harness/internal/results"
	"github.com/driftbench/go-harness/internal/simbackend"
)

// #region main
func main() {
	configPath := flag.String("config", "", "path to YAML config (optional)")
	sim := flag.Bool("sim", false, "use the in-process synthetic backend instead of the gRPC service")
	noDB := flag.Bool("no-db", false, "disable result persistence")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, cleanup, err := buildBackend(cfg, *sim)
	if err != nil {
		log.Fatalf("backend: %v", err)
	}
	defer cleanup()

	var opts []harness.Option
	if !*noDB {
		store, err := results.NewStore(cfg.DBPath)
		if err != nil {
			log.Fatalf("open results db: %v", err)
		}
		defer store.Close()
		opts = append(opts, harness.WithStore(store))
		if cfg.AdaptivePolicy {
			opts = append(opts, harness.WithSelector(policy.NewSelector(store, cfg.LossPreset)))
		}
	}

	driver, err := harness.New(cfg, backend, opts...)
	if err != nil {
		log.Fatalf("driver: %v", err)
	}

	summary, err := driver.Run(ctx)
	if err != nil {
		log.Fatalf("run: %v", err)
	}

	fmt.Printf("\nRun %s complete: %d streams, mean error %.2f%%\n",
		summary.Name, len(summary.Streams), summary.MeanErr*100)
	if summary.HasErr5 {
		fmt.Printf("Mean error at severity 5: %.2f%%\n", summary.MeanErr5*100)
	}
	fmt.Printf("Adaptation steps: %d committed, %d skipped\n", summary.Commits, summary.Skips)
}

// #endregion main

// #region backend
func buildBackend(cfg config.Config, sim bool) (adapt.Backend, func(), error) {
	if sim {
		numClasses, err := config.NumClasses(cfg.Dataset)
		if err != nil {
			return nil, nil, err
		}
		return simbackend.New(simbackend.DefaultConfig(numClasses)), func() {}, nil
	}

	client, err := modelsvc.NewClient(cfg.ModelAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to model service at %s: %w", cfg.ModelAddr, err)
	}
	return client, func() { client.Close() }, nil
}

// #endregion backend
