package losses

// #region loss-keys

// Canonical keys for the loss terms the "ours" adaptation method combines.
const (
	KeyCeST1       = "ce_s_t1"
	KeyCeST2       = "ce_s_t2"
	KeyCeSAugT1    = "ce_s_aug_t1"
	KeyContrT2Prot = "contr_t2_proto"
	KeyMseT2Proto  = "mse_t2_proto"
	KeyContrT2     = "contr_t2"
	KeyInfoMax     = "im_loss"
	KeyDiffer      = "differ_loss"
	KeyMMD         = "mem_loss"
	KeyKLDT2Proto  = "kld_t2_proto"
)

// OrderedKeys lists all loss keys in canonical reporting order.
var OrderedKeys = []string{
	KeyCeST1, KeyCeST2, KeyCeSAugT1,
	KeyContrT2Prot, KeyMseT2Proto, KeyContrT2,
	KeyInfoMax, KeyDiffer, KeyMMD, KeyKLDT2Proto,
}

// Names maps loss keys to their human-readable descriptions, used when
// logging the run setup.
var Names = map[string]string{
	KeyCeST1:       "Symmetric Cross Entropy (T1)",
	KeyCeST2:       "Symmetric Cross Entropy (T2)",
	KeyCeSAugT1:    "Symmetric Cross Entropy (Aug X to T1)",
	KeyContrT2Prot: "Contrastive (T2 - Prototype)",
	KeyMseT2Proto:  "MSE (T2 - Prototype)",
	KeyContrT2:     "Contrastive (T2 - Aug and Prototype)",
	KeyInfoMax:     "Information Maximization Loss (T2)",
	KeyDiffer:      "Differential Loss (S - T1 - T2)",
	KeyMMD:         "Maximum Mean Discrepancy Loss (T2)",
	KeyKLDT2Proto:  "KL Divergence Loss (T2 - Prototype)",
}

// #endregion loss-keys

// #region key-groups

var studentKeys = map[string]bool{
	KeyCeST1:    true,
	KeyCeST2:    true,
	KeyCeSAugT1: true,
	KeyDiffer:   true,
}

var teacherKeys = map[string]bool{
	KeyContrT2Prot: true,
	KeyMseT2Proto:  true,
	KeyContrT2:     true,
	KeyInfoMax:     true,
	KeyMMD:         true,
	KeyKLDT2Proto:  true,
}

// IsStudentLoss reports whether key updates the student network (S).
func IsStudentLoss(key string) bool { return studentKeys[key] }

// IsTeacherLoss reports whether key updates the second teacher (T2).
func IsTeacherLoss(key string) bool { return teacherKeys[key] }

// KnownKey reports whether key is a recognized loss term.
func KnownKey(key string) bool {
	_, ok := Names[key]
	return ok
}

// #endregion key-groups
