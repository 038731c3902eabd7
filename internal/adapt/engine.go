package adapt

import (
	"fmt"
	"math"
	"strings"

	"github.com/driftbench/go-harness/internal/guard"
	"github.com/driftbench/go-harness/internal/losses"
	"github.com/driftbench/go-harness/internal/prototype"
)

// #region engine-config

// EngineConfig parameterizes the "ours" adaptation engine.
type EngineConfig struct {
	NumClasses  int
	Weights     map[string]float64 // loss key → weight; zero/absent terms are skipped
	GuardConfig guard.GuardConfig
	ProtoConfig prototype.UpdateConfig
	Temperature float64 // contrastive softmax temperature
}

// DefaultEngineConfig returns a balanced configuration for n classes.
func DefaultEngineConfig(numClasses int) EngineConfig {
	return EngineConfig{
		NumClasses: numClasses,
		Weights: map[string]float64{
			losses.KeyCeST1:       1.0,
			losses.KeyCeST2:       0.5,
			losses.KeyInfoMax:     0.2,
			losses.KeyContrT2Prot: 0.2,
		},
		GuardConfig: guard.DefaultGuardConfig(),
		ProtoConfig: prototype.DefaultUpdateConfig(),
		Temperature: 0.1,
	}
}

// #endregion engine-config

// #region step-result

// StepMetrics is the per-batch telemetry of one engine step.
type StepMetrics struct {
	LossTerms      map[string]float64
	CombinedLoss   float64
	EntropyMean    float64
	Diversity      float64
	ProtoDeltaNorm float64
	BankVersion    string
}

// StepResult tells the driver whether to apply the backend adaptation step.
type StepResult struct {
	Decision guard.Decision
	Metrics  StepMetrics
	// Weights to forward to the backend Adapt call when committed.
	Weights map[string]float64
}

// #endregion step-result

// #region engine

// Engine implements the Go-side half of the "ours" adaptation method: it
// maintains the per-class prototype bank, computes the configured loss terms
// from the backend's logit views, and guards each step before the gradient
// update is applied backend-side.
type Engine struct {
	config   EngineConfig
	guard    *guard.Guard
	bank     prototype.Bank
	prevLoss float64
	sce      losses.SymmetricCrossEntropy
	ace      losses.AugCrossEntropy
}

// NewEngine creates an engine with a fresh prototype bank.
func NewEngine(config EngineConfig) *Engine {
	return &Engine{
		config: config,
		guard:  guard.NewGuard(config.GuardConfig),
		bank:   prototype.NewBank(config.NumClasses, config.ProtoConfig.Smoothing),
		sce:    losses.NewSymmetricCrossEntropy(),
		ace:    losses.NewAugCrossEntropy(),
	}
}

// Reset discards the prototype bank and loss history, returning the engine
// to its initial state. Called when the model weights are restored.
func (e *Engine) Reset() {
	e.bank = prototype.NewBank(e.config.NumClasses, e.config.ProtoConfig.Smoothing)
	e.prevLoss = 0
}

// Bank returns the current prototype bank.
func (e *Engine) Bank() prototype.Bank { return e.bank }

// SetWeights swaps the active loss weights (used by the policy selector
// between domains).
func (e *Engine) SetWeights(weights map[string]float64) {
	e.config.Weights = weights
}

// Weights returns the active loss weights.
func (e *Engine) Weights() map[string]float64 { return e.config.Weights }

// #endregion engine

// #region step

// Step computes all configured loss terms for the batch, proposes a prototype
// update, and runs the guard. On commit the prototype update is applied and
// the returned weights should be forwarded to the backend Adapt call.
func (e *Engine) Step(views LogitViews) StepResult {
	probsT2 := losses.Softmax(views.Teacher2)
	preds := make([]int, len(probsT2))
	for i, row := range probsT2 {
		preds[i] = losses.Argmax(row)
	}

	// Propose the prototype step against the current bank.
	candidate := prototype.Update(e.bank, probsT2, preds, e.config.ProtoConfig)

	terms := e.lossTerms(views, probsT2, preds)

	var combined float64
	for key, w := range e.config.Weights {
		if v, ok := terms[key]; ok {
			combined += w * v
		}
	}

	metrics := StepMetrics{
		LossTerms:      terms,
		CombinedLoss:   combined,
		EntropyMean:    losses.Mean(losses.Entropy(views.Student)),
		Diversity:      losses.DiversityLoss(probsT2),
		ProtoDeltaNorm: candidate.Metrics.DeltaNorm,
		BankVersion:    e.bank.VersionID,
	}

	decision := e.guard.Evaluate(guard.StepSignals{
		CombinedLoss:   combined,
		LossTerms:      terms,
		EntropyMean:    metrics.EntropyMean,
		Diversity:      metrics.Diversity,
		ProtoDeltaNorm: metrics.ProtoDeltaNorm,
		PrevLoss:       e.prevLoss,
		NumClasses:     e.config.NumClasses,
	})

	if decision.Action == "commit" {
		e.bank = candidate.NewBank
		e.prevLoss = combined
		metrics.BankVersion = e.bank.VersionID
	}

	return StepResult{
		Decision: decision,
		Metrics:  metrics,
		Weights:  e.config.Weights,
	}
}

// #endregion step

// #region loss-terms

// lossTerms evaluates every weighted loss key that is computable from the
// available views. Aug-dependent terms are skipped when no augmented view
// was produced.
func (e *Engine) lossTerms(views LogitViews, probsT2 [][]float64, preds []int) map[string]float64 {
	terms := make(map[string]float64)

	want := func(key string) bool { return e.config.Weights[key] != 0 }

	var sceT1, sceT2 []float64
	if want(losses.KeyCeST1) || want(losses.KeyDiffer) {
		sceT1 = e.sce.Loss(views.Student, views.Teacher1)
	}
	if want(losses.KeyCeST2) || want(losses.KeyDiffer) {
		sceT2 = e.sce.Loss(views.Student, views.Teacher2)
	}

	if want(losses.KeyCeST1) {
		terms[losses.KeyCeST1] = losses.Mean(sceT1)
	}
	if want(losses.KeyCeST2) {
		terms[losses.KeyCeST2] = losses.Mean(sceT2)
	}
	if want(losses.KeyCeSAugT1) && views.Aug != nil {
		terms[losses.KeyCeSAugT1] = losses.Mean(e.ace.Loss(views.Student, views.Aug, views.Teacher1))
	}
	if want(losses.KeyInfoMax) {
		terms[losses.KeyInfoMax] = losses.InfoMaxLoss(probsT2)
	}
	if want(losses.KeyContrT2Prot) {
		terms[losses.KeyContrT2Prot] = e.contrastiveProto(probsT2, preds)
	}
	if want(losses.KeyContrT2) {
		// Prefer the augmented view as positive; fall back to prototypes.
		if views.Aug != nil {
			terms[losses.KeyContrT2] = e.contrastiveAug(probsT2, losses.Softmax(views.Aug), preds)
		} else {
			terms[losses.KeyContrT2] = e.contrastiveProto(probsT2, preds)
		}
	}
	if want(losses.KeyMseT2Proto) {
		terms[losses.KeyMseT2Proto] = e.mseProto(probsT2, preds)
	}
	if want(losses.KeyDiffer) {
		var sum float64
		for i := range sceT1 {
			sum += math.Abs(sceT1[i] - sceT2[i])
		}
		terms[losses.KeyDiffer] = sum / float64(max(len(sceT1), 1))
	}
	if want(losses.KeyMMD) {
		terms[losses.KeyMMD] = e.mmdProto(probsT2)
	}
	if want(losses.KeyKLDT2Proto) {
		terms[losses.KeyKLDT2Proto] = e.kldProto(probsT2, preds)
	}

	return terms
}

// #endregion loss-terms

// #region prototype-losses

const protoEps = 1e-16

// contrastiveProto is an InfoNCE loss with the predicted-class prototype as
// the positive and the remaining prototypes as negatives.
func (e *Engine) contrastiveProto(probs [][]float64, preds []int) float64 {
	if len(probs) == 0 {
		return 0
	}
	var total float64
	for i, p := range probs {
		sims := make([]float64, len(e.bank.Protos))
		for c, proto := range e.bank.Protos {
			sims[c] = cosine(p, proto) / e.config.Temperature
		}
		total += nceLoss(sims, preds[i])
	}
	return total / float64(len(probs))
}

// contrastiveAug treats the augmented view of the same sample as the
// positive; prototypes of other classes act as negatives.
func (e *Engine) contrastiveAug(probs, augProbs [][]float64, preds []int) float64 {
	if len(probs) == 0 {
		return 0
	}
	var total float64
	for i, p := range probs {
		// Similarity 0 is the aug positive, the rest are prototypes.
		sims := make([]float64, 1+len(e.bank.Protos))
		sims[0] = cosine(p, augProbs[i]) / e.config.Temperature
		for c, proto := range e.bank.Protos {
			if c == preds[i] {
				sims[1+c] = math.Inf(-1) // own prototype excluded from negatives
				continue
			}
			sims[1+c] = cosine(p, proto) / e.config.Temperature
		}
		total += nceLoss(sims, 0)
	}
	return total / float64(len(probs))
}

// mseProto is the mean squared error between each sample and its
// predicted-class prototype.
func (e *Engine) mseProto(probs [][]float64, preds []int) float64 {
	if len(probs) == 0 {
		return 0
	}
	var total float64
	for i, p := range probs {
		proto := e.bank.Protos[preds[i]]
		var sum float64
		for j := range p {
			d := p[j] - proto[j]
			sum += d * d
		}
		total += sum / float64(len(p))
	}
	return total / float64(len(probs))
}

// mmdProto is a linear-kernel maximum mean discrepancy between the batch
// distribution and the prototype bank: squared distance of their means.
func (e *Engine) mmdProto(probs [][]float64) float64 {
	batchMean := losses.MeanDistribution(probs)
	protoMean := losses.MeanDistribution(e.bank.Protos)
	if batchMean == nil || protoMean == nil {
		return 0
	}
	var sum float64
	for j := range batchMean {
		d := batchMean[j] - protoMean[j]
		sum += d * d
	}
	return sum
}

// kldProto is the mean KL divergence from each sample to its predicted-class
// prototype.
func (e *Engine) kldProto(probs [][]float64, preds []int) float64 {
	if len(probs) == 0 {
		return 0
	}
	var total float64
	for i, p := range probs {
		proto := e.bank.Protos[preds[i]]
		var kl float64
		for j := range p {
			if p[j] <= 0 {
				continue
			}
			kl += p[j] * math.Log((p[j]+protoEps)/(proto[j]+protoEps))
		}
		total += kl
	}
	return total / float64(len(probs))
}

func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	denom := math.Sqrt(na) * math.Sqrt(nb)
	if denom == 0 {
		return 0
	}
	return dot / denom
}

// nceLoss is -log softmax(sims)[target], computed stably.
func nceLoss(sims []float64, target int) float64 {
	maxV := math.Inf(-1)
	for _, v := range sims {
		if v > maxV {
			maxV = v
		}
	}
	var sum float64
	for _, v := range sims {
		sum += math.Exp(v - maxV)
	}
	return -(sims[target] - maxV - math.Log(sum))
}

// #endregion prototype-losses

// #region description

// Description builds the run setup block logged at the start of an "ours"
// run: which loss terms train the student (S) and which train the second
// teacher (T2).
func (e *Engine) Description(dataset, setting string) string {
	var student, teacher []string
	for _, key := range losses.OrderedKeys {
		if e.config.Weights[key] == 0 {
			continue
		}
		name := losses.Names[key]
		if losses.IsStudentLoss(key) {
			student = append(student, name)
		} else if losses.IsTeacherLoss(key) {
			teacher = append(teacher, name)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n\nDataset: %s\nSetup: %s\n", dataset, setting)
	b.WriteString("Training Strategy: Batch Normalization (T1, T2), All Layers (S)\nLoss: \n")
	fmt.Fprintf(&b, "  - S: %s\n", strings.Join(student, ", "))
	b.WriteString("  - T1: EMA using S weights\n")
	fmt.Fprintf(&b, "  - T2: %s\n", strings.Join(teacher, ", "))
	return b.String()
}

// #endregion description
