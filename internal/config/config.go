package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// #region settings

// Valid evaluation settings. The setting controls how the test stream is
// ordered and when the model state is reset.
var ValidSettings = []string{
	"reset_each_shift",            // reset the model state after adapting to a domain
	"continual",                   // sequence of domain shifts without knowing when a shift occurs
	"gradual",                     // gradually increasing / decreasing severity per domain
	"mixed_domains",               // consecutive samples likely originate from different domains
	"correlated",                  // samples sorted by class label
	"mixed_domains_correlated",    // mixed domains + sorted by class label
	"gradual_correlated",          // gradual shifts + sorted by class label
	"reset_each_shift_correlated", // reset each shift + sorted by class label
	"continual_mixed_domain",      // continual pass followed by a mixed-domain pass
}

// #endregion settings

// #region config-struct

// Config holds the full run configuration for an evaluation.
type Config struct {
	Dataset    string `yaml:"dataset" env:"DRIFTBENCH_DATASET"`
	Adaptation string `yaml:"adaptation" env:"DRIFTBENCH_ADAPTATION"`
	Setting    string `yaml:"setting" env:"DRIFTBENCH_SETTING"`

	// CorruptionTypes is the ordered domain sequence. Empty means the
	// dataset default (imagenet_d/_d109) or checkpoint-derived (domainnet126).
	CorruptionTypes []string `yaml:"corruption_types" env:"DRIFTBENCH_CORRUPTIONS" envSeparator:","`
	Severities      []int    `yaml:"severities" env:"DRIFTBENCH_SEVERITIES" envSeparator:","`

	NumExamples int   `yaml:"num_examples" env:"DRIFTBENCH_NUM_EXAMPLES"`
	BatchSize   int   `yaml:"batch_size" env:"DRIFTBENCH_BATCH_SIZE"`
	RNGSeed     int64 `yaml:"rng_seed" env:"DRIFTBENCH_RNG_SEED"`
	NViews      int   `yaml:"n_views" env:"DRIFTBENCH_N_VIEWS"` // augmented views per sample, 0 disables aug losses

	CkptPath string `yaml:"ckpt_path" env:"DRIFTBENCH_CKPT_PATH"`
	DataDir  string `yaml:"data_dir" env:"DRIFTBENCH_DATA_DIR"`
	DBPath   string `yaml:"db_path" env:"DRIFTBENCH_DB"`

	// ModelAddr is the gRPC address of the inference service that owns the
	// model, its EMA teachers, and all gradient computation.
	ModelAddr string `yaml:"model_addr" env:"DRIFTBENCH_MODEL_ADDR"`

	PrintEvery int  `yaml:"print_every" env:"DRIFTBENCH_PRINT_EVERY"`
	Cycles     int  `yaml:"cycles" env:"DRIFTBENCH_CYCLES"`
	Debug      bool `yaml:"debug" env:"DRIFTBENCH_DEBUG"`

	// LossPreset names the loss-weight preset for the "ours" method.
	// AdaptivePolicy lets recorded outcomes override it per domain family.
	LossPreset     string             `yaml:"loss_preset" env:"DRIFTBENCH_LOSS_PRESET"`
	LossWeights    map[string]float64 `yaml:"loss_weights"`
	AdaptivePolicy bool               `yaml:"adaptive_policy" env:"DRIFTBENCH_ADAPTIVE_POLICY"`

	EMAMomentum   float64 `yaml:"ema_momentum" env:"DRIFTBENCH_EMA_MOMENTUM"`
	ProtoLearning float64 `yaml:"proto_learning_rate" env:"DRIFTBENCH_PROTO_LR"`
}

// #endregion config-struct

// #region defaults

// DefaultConfig returns the standard continual CIFAR10-C configuration.
func DefaultConfig() Config {
	return Config{
		Dataset:       "cifar10_c",
		Adaptation:    "ours",
		Setting:       "continual",
		Severities:    []int{5},
		NumExamples:   10000,
		BatchSize:     200,
		RNGSeed:       1,
		NViews:        0,
		DBPath:        "driftbench.db",
		ModelAddr:     "localhost:50051",
		PrintEvery:    50,
		Cycles:        2,
		LossPreset:    "balanced",
		EMAMomentum:   0.999,
		ProtoLearning: 0.05,
	}
}

// #endregion defaults

// #region load

// Load builds a Config from defaults, an optional YAML file, and environment
// overrides, in that order of precedence (env wins).
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("env overrides: %w", err)
	}

	return cfg, nil
}

// #endregion load

// #region validate

// Validate checks the configuration against the supported settings and
// datasets. Returns a descriptive error on the first violation.
func (c Config) Validate() error {
	valid := false
	for _, s := range ValidSettings {
		if c.Setting == s {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("the setting %q is not supported, choose from: %s",
			c.Setting, strings.Join(ValidSettings, ", "))
	}

	if _, err := NumClasses(c.Dataset); err != nil {
		return err
	}
	if c.Adaptation == "" {
		return fmt.Errorf("adaptation method must be set")
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", c.BatchSize)
	}
	if len(c.Severities) == 0 {
		return fmt.Errorf("at least one severity is required")
	}
	for _, s := range c.Severities {
		if s < 1 || s > 5 {
			return fmt.Errorf("severity %d out of range [1,5]", s)
		}
	}
	if c.Cycles < 1 {
		return fmt.Errorf("cycles must be at least 1, got %d", c.Cycles)
	}
	if c.EMAMomentum < 0 || c.EMAMomentum > 1 {
		return fmt.Errorf("ema momentum %f out of range [0,1]", c.EMAMomentum)
	}
	return nil
}

// #endregion validate

// #region datasets

var datasetNumClasses = map[string]int{
	"cifar10_c":     10,
	"cifar100_c":    100,
	"imagenet_c":    1000,
	"imagenet_d":    164,
	"imagenet_d109": 109,
	"domainnet126":  126,
}

// NumClasses returns the class count for a known dataset.
func NumClasses(dataset string) (int, error) {
	n, ok := datasetNumClasses[dataset]
	if !ok {
		return 0, fmt.Errorf("unknown dataset %q", dataset)
	}
	return n, nil
}

// DefaultDomainSequence returns the built-in domain order for datasets that
// define one when no corruption types are configured.
func DefaultDomainSequence(dataset string) []string {
	switch dataset {
	case "imagenet_d", "imagenet_d109":
		return []string{"clipart", "infograph", "painting", "real", "sketch"}
	case "cifar10_c", "cifar100_c", "imagenet_c":
		return []string{
			"gaussian_noise", "shot_noise", "impulse_noise",
			"defocus_blur", "glass_blur", "motion_blur", "zoom_blur",
			"snow", "frost", "fog", "brightness",
			"contrast", "elastic_transform", "pixelate", "jpeg_compression",
		}
	default:
		return nil
	}
}

// #endregion datasets

// #region domainnet-ckpt

// domainnetEvalOrder maps a domainnet126 source domain to the sequence of
// target domains it is evaluated on.
var domainnetEvalOrder = map[string][]string{
	"real":     {"clipart", "painting", "sketch"},
	"clipart":  {"sketch", "real", "painting"},
	"painting": {"real", "sketch", "clipart"},
	"sketch":   {"painting", "clipart", "real"},
}

// CkptPathToDomainSeq extracts the source domain from a domainnet126
// checkpoint filename (e.g. "best_clipart_2020.pth") and returns the
// evaluation sequence for it.
func CkptPathToDomainSeq(ckptPath string) ([]string, error) {
	base := filepath.Base(ckptPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	parts := strings.Split(base, "_")
	if len(parts) < 2 {
		return nil, fmt.Errorf("checkpoint name %q does not encode a source domain", base)
	}
	seq, ok := domainnetEvalOrder[parts[1]]
	if !ok {
		return nil, fmt.Errorf("unknown domainnet126 source domain %q", parts[1])
	}
	return seq, nil
}

// #endregion domainnet-ckpt

// #region run-name

// RunName builds the canonical run name: adaptation-setting-dataset-timestamp.
func (c Config) RunName(now time.Time) string {
	return fmt.Sprintf("%s-%s-%s-%s",
		c.Adaptation, c.Setting, c.Dataset, now.UTC().Format("2006-01-02-15-04-05"))
}

// #endregion run-name
