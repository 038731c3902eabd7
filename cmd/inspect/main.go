package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/driftbench/go-harness/internal/results"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to driftbench.db")
	last := flag.Int("last", 20, "show N most recent runs")
	runID := flag.String("run", "", "show single run detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/driftbench.db [--last N] [--run id] [--json]")
		os.Exit(2)
	}

	store, err := results.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *runID != "" {
		err = runDetailMode(store, *runID, *jsonOut)
	} else {
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	RunID    string   `json:"run_id"`
	Name     string   `json:"name"`
	Dataset  string   `json:"dataset"`
	Setting  string   `json:"setting"`
	Preset   string   `json:"preset,omitempty"`
	MeanErr  *float64 `json:"mean_err,omitempty"`
	MeanErr5 *float64 `json:"mean_err_5,omitempty"`
	Finished bool     `json:"finished"`
}

func runListMode(store *results.Store, last int, jsonOut bool) error {
	runs, err := store.ListRuns(last)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stderr, "no runs found")
		return nil
	}

	rows := make([]listRow, len(runs))
	for i, r := range runs {
		lr := listRow{
			RunID:    r.RunID,
			Name:     r.Name,
			Dataset:  r.Dataset,
			Setting:  r.Setting,
			Preset:   r.Preset,
			Finished: !r.FinishedAt.IsZero(),
		}
		if lr.Finished {
			me := r.MeanErr
			lr.MeanErr = &me
		}
		if r.HasErr5 {
			me5 := r.MeanErr5
			lr.MeanErr5 = &me5
		}
		rows[i] = lr
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-36s  %-12s  %-24s  %8s  %8s\n", "Run", "Dataset", "Setting", "Err", "Err@5")
	for _, r := range rows {
		errStr, err5Str := "-", "-"
		if r.MeanErr != nil {
			errStr = fmt.Sprintf("%.2f%%", *r.MeanErr*100)
		}
		if r.MeanErr5 != nil {
			err5Str = fmt.Sprintf("%.2f%%", *r.MeanErr5*100)
		}
		fmt.Printf("%-36s  %-12s  %-24s  %8s  %8s\n", r.RunID, r.Dataset, r.Setting, errStr, err5Str)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type detailOut struct {
	Run          results.RunRecord     `json:"run"`
	Measurements []results.Measurement `json:"measurements"`
	Decisions    map[string]int        `json:"decisions"`
}

func runDetailMode(store *results.Store, runID string, jsonOut bool) error {
	run, err := store.GetRun(runID)
	if err != nil {
		return err
	}
	measurements, err := store.ListMeasurements(runID)
	if err != nil {
		return err
	}
	decisions, err := store.CountDecisions(runID)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(detailOut{Run: run, Measurements: measurements, Decisions: decisions})
	}

	fmt.Printf("Run:     %s\n", run.Name)
	fmt.Printf("Dataset: %s  Setting: %s  Method: %s  Preset: %s\n",
		run.Dataset, run.Setting, run.Method, run.Preset)
	if !run.FinishedAt.IsZero() {
		fmt.Printf("Mean error: %.2f%%", run.MeanErr*100)
		if run.HasErr5 {
			fmt.Printf("  (severity 5: %.2f%%)", run.MeanErr5*100)
		}
		fmt.Println()
	} else {
		fmt.Println("Status: unfinished")
	}
	fmt.Printf("Decisions: %d commits, %d skips\n\n", decisions["commit"], decisions["skip"])

	fmt.Printf("%3s  %5s  %-20s  %3s  %8s  %8s\n", "Grp", "Cycle", "Domain", "Sev", "Samples", "Err")
	for _, m := range measurements {
		fmt.Printf("%3d  %5d  %-20s  %3d  %8d  %7.2f%%\n",
			m.Subgroup, m.Cycle, m.Domain, m.Severity, m.NumSamples, m.Err*100)
	}
	return nil
}

// #endregion detail-mode

// #region output

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// #endregion output
