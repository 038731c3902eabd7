package policy

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/driftbench/go-harness/internal/losses"
	"github.com/driftbench/go-harness/internal/results"
)

func newTestStore(t *testing.T) *results.Store {
	t.Helper()
	s, err := results.NewStore(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	err = s.CreateRun(results.RunRecord{
		RunID:     "run-1",
		Name:      "adaptation-continual-cifar10_c-2026-08-23-10-00-00",
		Dataset:   "cifar10_c",
		Setting:   "continual",
		Method:    "ours",
		StartedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("create run: %v", err)
	}
	return s
}

func record(t *testing.T, s *results.Store, preset, family string, errVal float64, at time.Time) {
	t.Helper()
	err := s.RecordPolicyOutcome(results.PolicyOutcome{
		RunID:        "run-1",
		Preset:       preset,
		DomainFamily: family,
		Err:          errVal,
		Samples:      10000,
		CreatedAt:    at,
	})
	if err != nil {
		t.Fatalf("record outcome: %v", err)
	}
}

func TestWeightsKnownPresets(t *testing.T) {
	for name := range Presets {
		w, err := Weights(name)
		if err != nil {
			t.Fatalf("preset %s: %v", name, err)
		}
		if w[losses.KeyCeST1] == 0 {
			t.Fatalf("preset %s should weight ce_s_t1", name)
		}
		for key := range w {
			if !losses.KnownKey(key) {
				t.Fatalf("preset %s references unknown loss key %s", name, key)
			}
		}
	}
}

func TestWeightsUnknownPreset(t *testing.T) {
	if _, err := Weights("nope"); err == nil {
		t.Fatal("unknown preset should error")
	}
}

func TestWeightsReturnsCopy(t *testing.T) {
	w, _ := Weights("balanced")
	w[losses.KeyCeST1] = 99
	w2, _ := Weights("balanced")
	if w2[losses.KeyCeST1] == 99 {
		t.Fatal("Weights must return a copy, not the shared table")
	}
}

func TestDomainFamily(t *testing.T) {
	cases := map[string]string{
		"gaussian_noise":   "noise",
		"motion_blur":      "blur",
		"fog":              "weather",
		"jpeg_compression": "digital",
		"mixed":            "other",
		"clipart":          "other",
	}
	for domain, want := range cases {
		if got := DomainFamily(domain); got != want {
			t.Fatalf("family(%s): got %s, want %s", domain, got, want)
		}
	}
}

func TestBestPresetFallbackOnThinHistory(t *testing.T) {
	s := newTestStore(t)
	sel := NewSelector(s, "balanced")

	// Two samples are below the minimum, so the fallback wins.
	now := time.Now().UTC()
	record(t, s, "contrastive", "noise", 0.1, now)
	record(t, s, "contrastive", "noise", 0.1, now)

	got, err := sel.BestPreset("noise")
	if err != nil {
		t.Fatalf("best preset: %v", err)
	}
	if got != "balanced" {
		t.Fatalf("got %s, want fallback balanced", got)
	}
}

func TestBestPresetPicksLowestError(t *testing.T) {
	s := newTestStore(t)
	sel := NewSelector(s, "balanced")

	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		record(t, s, "contrastive", "noise", 0.2, now)
		record(t, s, "entropy_minimization", "noise", 0.35, now)
	}

	got, err := sel.BestPreset("noise")
	if err != nil {
		t.Fatalf("best preset: %v", err)
	}
	if got != "contrastive" {
		t.Fatalf("got %s, want contrastive", got)
	}
}

func TestBestPresetDecayFavorsRecent(t *testing.T) {
	s := newTestStore(t)
	sel := NewSelector(s, "balanced")

	now := time.Now().UTC()
	old := now.Add(-60 * 24 * time.Hour)
	// Contrastive was great two months ago but is bad now.
	for i := 0; i < 3; i++ {
		record(t, s, "contrastive", "blur", 0.1, old)
		record(t, s, "contrastive", "blur", 0.5, now)
		record(t, s, "diversity_heavy", "blur", 0.3, now)
	}

	got, err := sel.BestPreset("blur")
	if err != nil {
		t.Fatalf("best preset: %v", err)
	}
	if got != "diversity_heavy" {
		t.Fatalf("got %s, want diversity_heavy", got)
	}
}

func TestBestPresetHalvesWeightAtHalfLife(t *testing.T) {
	s := newTestStore(t)
	sel := NewSelector(s, "balanced")

	now := time.Now().UTC()
	weekOld := now.Add(-7 * 24 * time.Hour)

	// contrastive: two perfect outcomes exactly one half-life old (weight 0.5
	// each) and one bad outcome now. Decay-weighted mean: 0.4/(1+2*0.5) = 0.2.
	// With a slower 1/e-at-7-days decay it would be ~0.23 and lose.
	record(t, s, "contrastive", "digital", 0.0, weekOld)
	record(t, s, "contrastive", "digital", 0.0, weekOld)
	record(t, s, "contrastive", "digital", 0.4, now)
	for i := 0; i < 3; i++ {
		record(t, s, "entropy_minimization", "digital", 0.215, now)
	}

	got, err := sel.BestPreset("digital")
	if err != nil {
		t.Fatalf("best preset: %v", err)
	}
	if got != "contrastive" {
		t.Fatalf("got %s, want contrastive", got)
	}
}

func TestBestPresetIgnoresUnknownPresets(t *testing.T) {
	s := newTestStore(t)
	sel := NewSelector(s, "balanced")

	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		record(t, s, "retired_preset", "weather", 0.01, now)
	}
	got, err := sel.BestPreset("weather")
	if err != nil {
		t.Fatalf("best preset: %v", err)
	}
	if got != "balanced" {
		t.Fatalf("got %s, want balanced", got)
	}
}
