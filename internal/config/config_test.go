package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateRejectsUnknownSetting(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Setting = "episodic"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unknown setting")
	}
	if !strings.Contains(err.Error(), "episodic") {
		t.Fatalf("error should name the bad setting: %v", err)
	}
}

func TestValidateAcceptsAllKnownSettings(t *testing.T) {
	for _, s := range ValidSettings {
		cfg := DefaultConfig()
		cfg.Setting = s
		if err := cfg.Validate(); err != nil {
			t.Fatalf("setting %q should validate: %v", s, err)
		}
	}
}

func TestValidateRejectsBadSeverity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Severities = []int{6}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for severity 6")
	}
}

func TestNumClasses(t *testing.T) {
	cases := []struct {
		dataset string
		want    int
	}{
		{"cifar10_c", 10},
		{"cifar100_c", 100},
		{"imagenet_c", 1000},
		{"imagenet_d109", 109},
		{"domainnet126", 126},
	}
	for _, tc := range cases {
		got, err := NumClasses(tc.dataset)
		if err != nil {
			t.Fatalf("NumClasses(%s): %v", tc.dataset, err)
		}
		if got != tc.want {
			t.Fatalf("NumClasses(%s): got %d, want %d", tc.dataset, got, tc.want)
		}
	}

	if _, err := NumClasses("mnist"); err == nil {
		t.Fatal("expected error for unknown dataset")
	}
}

func TestCkptPathToDomainSeq(t *testing.T) {
	seq, err := CkptPathToDomainSeq("/ckpt/domainnet126/best_clipart_2020.pth")
	if err != nil {
		t.Fatalf("CkptPathToDomainSeq: %v", err)
	}
	want := []string{"sketch", "real", "painting"}
	if len(seq) != len(want) {
		t.Fatalf("got %v, want %v", seq, want)
	}
	for i := range want {
		if seq[i] != want[i] {
			t.Fatalf("got %v, want %v", seq, want)
		}
	}

	if _, err := CkptPathToDomainSeq("model.pth"); err == nil {
		t.Fatal("expected error for name without a source domain")
	}
}

func TestLoadYAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	doc := `
dataset: cifar100_c
setting: gradual
batch_size: 64
severities: [3]
loss_weights:
  ce_s_t1: 1.0
  im_loss: 0.5
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}

	t.Setenv("DRIFTBENCH_BATCH_SIZE", "32")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dataset != "cifar100_c" {
		t.Fatalf("dataset: got %s", cfg.Dataset)
	}
	if cfg.Setting != "gradual" {
		t.Fatalf("setting: got %s", cfg.Setting)
	}
	if cfg.BatchSize != 32 {
		t.Fatalf("env override should win: got batch size %d", cfg.BatchSize)
	}
	if cfg.LossWeights["im_loss"] != 0.5 {
		t.Fatalf("loss weights not parsed: %v", cfg.LossWeights)
	}
	// Defaults survive for fields the file omits.
	if cfg.PrintEvery != 50 {
		t.Fatalf("default print_every lost: got %d", cfg.PrintEvery)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/does/not/exist.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestRunName(t *testing.T) {
	cfg := DefaultConfig()
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	got := cfg.RunName(now)
	want := "ours-continual-cifar10_c-2026-03-14-09-30-00"
	if got != want {
		t.Fatalf("run name: got %s, want %s", got, want)
	}
}

func TestDefaultDomainSequence(t *testing.T) {
	seq := DefaultDomainSequence("cifar10_c")
	if len(seq) != 15 {
		t.Fatalf("expected 15 corruption types, got %d", len(seq))
	}
	if seq[0] != "gaussian_noise" || seq[14] != "jpeg_compression" {
		t.Fatalf("unexpected corruption order: %v", seq)
	}

	d := DefaultDomainSequence("imagenet_d109")
	if len(d) != 5 || d[0] != "clipart" {
		t.Fatalf("unexpected imagenet_d109 domains: %v", d)
	}
}
