// Package policy picks the loss-weight preset for a run. Presets are fixed
// weight tables; the selector prefers the preset with the best decay-weighted
// historical error on the stream's domain family, falling back to the
// configured preset when history is thin.
package policy

import (
	"fmt"
	"math"
	"time"

	"github.com/driftbench/go-harness/internal/losses"
	"github.com/driftbench/go-harness/internal/results"
)

// #region presets

// Presets maps preset names to loss weight tables.
var Presets = map[string]map[string]float64{
	"balanced": {
		losses.KeyCeST1:       1.0,
		losses.KeyCeST2:       0.5,
		losses.KeyInfoMax:     0.2,
		losses.KeyContrT2Prot: 0.2,
	},
	"entropy_minimization": {
		losses.KeyCeST1:   1.0,
		losses.KeyInfoMax: 1.0,
	},
	"contrastive": {
		losses.KeyCeST1:       1.0,
		losses.KeyContrT2Prot: 0.7,
		losses.KeyContrT2:     0.3,
		losses.KeyMseT2Proto:  0.2,
	},
	"diversity_heavy": {
		losses.KeyCeST1:      1.0,
		losses.KeyInfoMax:    0.6,
		losses.KeyDiffer:     0.3,
		losses.KeyKLDT2Proto: 0.2,
	},
}

// Weights returns the weight table for a preset name.
func Weights(preset string) (map[string]float64, error) {
	w, ok := Presets[preset]
	if !ok {
		return nil, fmt.Errorf("unknown loss preset %q", preset)
	}
	out := make(map[string]float64, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out, nil
}

// #endregion presets

// #region domain-families

var domainFamilies = map[string]string{
	"gaussian_noise": "noise",
	"shot_noise":     "noise",
	"impulse_noise":  "noise",

	"defocus_blur": "blur",
	"glass_blur":   "blur",
	"motion_blur":  "blur",
	"zoom_blur":    "blur",

	"snow":       "weather",
	"frost":      "weather",
	"fog":        "weather",
	"brightness": "weather",

	"contrast":          "digital",
	"elastic_transform": "digital",
	"pixelate":          "digital",
	"jpeg_compression":  "digital",
}

// DomainFamily maps a corruption domain to its family. Unknown domains
// (mixed streams, DomainNet-style domains) fall under "other".
func DomainFamily(domain string) string {
	if f, ok := domainFamilies[domain]; ok {
		return f
	}
	return "other"
}

// #endregion domain-families

// #region selector

// Selector chooses presets from persisted outcomes.
type Selector struct {
	store    *results.Store
	fallback string
	halfLife float64 // hours; an outcome's weight halves every halfLife
	minCount int
}

// NewSelector builds a selector over the results store, falling back to
// the given preset whenever history cannot decide.
func NewSelector(store *results.Store, fallback string) *Selector {
	return &Selector{
		store:    store,
		fallback: fallback,
		halfLife: 7.0 * 24.0,
		minCount: 3,
	}
}

// BestPreset returns the preset with the lowest decay-weighted error for the
// domain family. Presets with fewer than 3 recorded outcomes are ignored;
// if none qualifies, the configured fallback is returned.
func (s *Selector) BestPreset(domainFamily string) (string, error) {
	outcomes, err := s.store.ListPolicyOutcomes(domainFamily)
	if err != nil {
		return "", fmt.Errorf("load policy outcomes: %w", err)
	}

	type presetAccum struct {
		weightedSum float64
		totalWeight float64
		count       int
	}

	now := time.Now()
	accum := make(map[string]*presetAccum)

	for _, o := range outcomes {
		if _, ok := Presets[o.Preset]; !ok {
			continue
		}
		ageHours := now.Sub(o.CreatedAt).Hours()
		weight := math.Exp(-math.Ln2 * ageHours / s.halfLife)

		if _, ok := accum[o.Preset]; !ok {
			accum[o.Preset] = &presetAccum{}
		}
		accum[o.Preset].weightedSum += o.Err * weight
		accum[o.Preset].totalWeight += weight
		accum[o.Preset].count++
	}

	best := s.fallback
	bestErr := math.Inf(1)
	for preset, a := range accum {
		if a.count < s.minCount || a.totalWeight == 0 {
			continue
		}
		avg := a.weightedSum / a.totalWeight
		if avg < bestErr {
			bestErr = avg
			best = preset
		}
	}
	return best, nil
}

// #endregion selector
