package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/driftbench/go-harness/internal/replay"
	"github.com/driftbench/go-harness/internal/results"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	dbPath := flag.String("db", "", "path to driftbench.db (DB mode)")
	wantRun := flag.String("run", "", "reference run ID (DB mode)")
	gotRun := flag.String("against", "", "run ID to check against the reference (DB mode)")
	tol := flag.Float64("tol", 1e-4, "absolute tolerance on error comparisons")
	flag.Parse()

	fixtureMode := *fixturePath != ""
	dbMode := *dbPath != ""
	if fixtureMode == dbMode {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json")
		fmt.Fprintln(os.Stderr, "       replay --db path/to/driftbench.db --run ID --against ID")
		os.Exit(2)
	}

	var exitCode int
	if fixtureMode {
		exitCode = runFixtureMode(*fixturePath, *tol)
	} else {
		exitCode = runDBMode(*dbPath, *wantRun, *gotRun, *tol)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region fixture-mode

func runFixtureMode(path string, tol float64) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	batchResults, summary := replay.Replay(f.Config.ToEngineConfig(), f.RecordedBatches())

	fmt.Printf("Replayed %d batches: %d commits, %d skips, final error %.2f%%\n",
		summary.TotalBatches, summary.Commits, summary.Skips, summary.FinalErr*100)

	rows := replay.Compare(batchResults, summary, f.Expected, tol)
	return printComparison(rows)
}

// #endregion fixture-mode

// #region db-mode

func runDBMode(dbPath, wantRun, gotRun string, tol float64) int {
	if wantRun == "" || gotRun == "" {
		fmt.Fprintln(os.Stderr, "DB mode needs both --run and --against")
		return 2
	}

	store, err := results.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer store.Close()

	want, err := store.ListMeasurements(wantRun)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load run %s: %v\n", wantRun, err)
		return 2
	}
	if len(want) == 0 {
		fmt.Fprintf(os.Stderr, "run %s has no measurements\n", wantRun)
		return 2
	}
	got, err := store.ListMeasurements(gotRun)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load run %s: %v\n", gotRun, err)
		return 2
	}

	rows := replay.CompareMeasurements(want, got, tol)
	return printComparison(rows)
}

// #endregion db-mode

// #region output

func printComparison(rows []replay.Comparison) int {
	fmt.Printf("%-28s  %-10s  %-10s  %s\n", "Check", "Want", "Got", "Status")
	for _, r := range rows {
		status := "OK"
		if !r.OK {
			status = "DIFF"
		}
		fmt.Printf("%-28s  %-10s  %-10s  %s\n", r.Label, r.Want, r.Got, status)
	}

	if !replay.AllOK(rows) {
		fmt.Println("\nDIVERGED")
		return 1
	}
	fmt.Println("\nMATCH")
	return 0
}

// #endregion output
