package folio

import "fmt"

// TargetResult is the outcome of checking a node's amount against its target.
type TargetResult int

const (
	// ResultNone means the node has no target set.
	ResultNone TargetResult = iota
	// ResultStart means nothing is invested yet.
	ResultStart
	// ResultLow means the invested amount is below the target.
	ResultLow
	// ResultOK means the invested amount is within the target.
	ResultOK
	// ResultHigh means the invested amount is above the target.
	ResultHigh
)

func (r TargetResult) String() string {
	switch r {
	case ResultNone:
		return "none"
	case ResultStart:
		return "start"
	case ResultLow:
		return "low"
	case ResultOK:
		return "ok"
	case ResultHigh:
		return "high"
	default:
		return "none"
	}
}

// Target defines an investment objective attached to a node.
//
// A target reads its owning node's current amount to judge how far the
// node is from the objective, and computes the ideal amount the node
// should hold.
type Target interface {
	// Check compares the node's current amount against the objective.
	Check() TargetResult
	// GetIdeal returns the amount the node should ideally hold.
	GetIdeal() float64

	setNode(n Node)
	ratioValue() (ratio float64, ok bool)
	toDict() map[string]any
}

type targetBase struct {
	node Node
}

func (t *targetBase) setNode(n Node)              { t.node = n }
func (t *targetBase) ratioValue() (float64, bool) { return 0, false }

func (t *targetBase) amount() float64 {
	if t.node == nil {
		return 0
	}
	return t.node.GetAmount()
}

// reference is the amount a relative target applies to: the parent's own
// ideal when the parent carries a concrete target, its current amount
// otherwise. Falling back to the amount avoids the cycle where a parent
// without a target derives its ideal from this very child.
func (t *targetBase) reference() float64 {
	if t.node == nil {
		return 0
	}
	p := t.node.Parent()
	if p == nil {
		return t.node.GetAmount()
	}
	if p.Target().Check() != ResultNone {
		return p.Target().GetIdeal()
	}
	return p.GetAmount()
}

// NoTarget is the sentinel for nodes without an investment objective.
type NoTarget struct{ targetBase }

// NewNoTarget returns the no-objective sentinel target.
func NewNoTarget() *NoTarget { return &NoTarget{} }

func (t *NoTarget) Check() TargetResult { return ResultNone }
func (t *NoTarget) GetIdeal() float64   { return 0 }
func (t *NoTarget) toDict() map[string]any {
	return map[string]any{"type": "none"}
}

// TargetMin is satisfied above a minimal amount.
type TargetMin struct {
	targetBase
	Amount    float64
	Tolerance float64
}

// NewTargetMin creates a target requiring at least amount, with a tolerance margin.
func NewTargetMin(amount, tolerance float64) *TargetMin {
	return &TargetMin{Amount: amount, Tolerance: tolerance}
}

func (t *TargetMin) Check() TargetResult {
	a := t.amount()
	switch {
	case a == 0:
		return ResultStart
	case a < t.Amount-t.Tolerance:
		return ResultLow
	default:
		return ResultOK
	}
}

func (t *TargetMin) GetIdeal() float64 { return t.Amount }

func (t *TargetMin) toDict() map[string]any {
	return map[string]any{"type": "min", "amount": t.Amount, "tolerance": t.Tolerance}
}

// TargetMax is satisfied below a maximal amount.
type TargetMax struct {
	targetBase
	Amount    float64
	Tolerance float64
}

// NewTargetMax creates a target requiring at most amount, with a tolerance margin.
func NewTargetMax(amount, tolerance float64) *TargetMax {
	return &TargetMax{Amount: amount, Tolerance: tolerance}
}

func (t *TargetMax) Check() TargetResult {
	a := t.amount()
	switch {
	case a == 0:
		return ResultStart
	case a > t.Amount+t.Tolerance:
		return ResultHigh
	default:
		return ResultOK
	}
}

func (t *TargetMax) GetIdeal() float64 { return t.Amount }

func (t *TargetMax) toDict() map[string]any {
	return map[string]any{"type": "max", "amount": t.Amount, "tolerance": t.Tolerance}
}

// TargetRange is satisfied between a minimal and a maximal amount.
type TargetRange struct {
	targetBase
	Min       float64
	Max       float64
	Tolerance float64
}

// NewTargetRange creates a target requiring an amount between min and max.
func NewTargetRange(min, max, tolerance float64) *TargetRange {
	return &TargetRange{Min: min, Max: max, Tolerance: tolerance}
}

func (t *TargetRange) Check() TargetResult {
	a := t.amount()
	switch {
	case a == 0:
		return ResultStart
	case a < t.Min-t.Tolerance:
		return ResultLow
	case a > t.Max+t.Tolerance:
		return ResultHigh
	default:
		return ResultOK
	}
}

func (t *TargetRange) GetIdeal() float64 { return (t.Min + t.Max) / 2 }

func (t *TargetRange) toDict() map[string]any {
	return map[string]any{"type": "range", "min": t.Min, "max": t.Max, "tolerance": t.Tolerance}
}

// TargetRatio assigns the node a percentage of its parent's ideal amount.
//
// The ratios of sibling nodes are expected to sum to 100; the processing
// pass emits an advisory warning when they do not.
type TargetRatio struct {
	targetBase
	Ratio     float64
	Tolerance float64
}

// NewTargetRatio creates a target holding ratio percent of the parent's ideal.
func NewTargetRatio(ratio, tolerance float64) *TargetRatio {
	return &TargetRatio{Ratio: ratio, Tolerance: tolerance}
}

func (t *TargetRatio) Check() TargetResult {
	ref := t.reference()
	if ref == 0 {
		return ResultStart
	}
	current := 100 * t.amount() / ref
	switch {
	case current < t.Ratio-t.Tolerance:
		return ResultLow
	case current > t.Ratio+t.Tolerance:
		return ResultHigh
	default:
		return ResultOK
	}
}

func (t *TargetRatio) GetIdeal() float64 { return t.Ratio / 100 * t.reference() }

func (t *TargetRatio) ratioValue() (float64, bool) { return t.Ratio, true }

func (t *TargetRatio) toDict() map[string]any {
	return map[string]any{"type": "ratio", "ratio": t.Ratio, "tolerance": t.Tolerance}
}

// targetFromDict rebuilds a target from its plain map form.
// A nil map is the no-target sentinel.
func targetFromDict(m map[string]any) (Target, error) {
	if m == nil {
		return NewNoTarget(), nil
	}
	kind, err := jstring(m, "type")
	if err != nil {
		return nil, fmt.Errorf("invalid target: %w", err)
	}
	switch kind {
	case "none":
		return NewNoTarget(), nil
	case "min":
		amount, err := jfloat(m, "amount")
		if err != nil {
			return nil, fmt.Errorf("invalid min target: %w", err)
		}
		return NewTargetMin(amount, joptfloat(m, "tolerance")), nil
	case "max":
		amount, err := jfloat(m, "amount")
		if err != nil {
			return nil, fmt.Errorf("invalid max target: %w", err)
		}
		return NewTargetMax(amount, joptfloat(m, "tolerance")), nil
	case "range":
		min, err := jfloat(m, "min")
		if err != nil {
			return nil, fmt.Errorf("invalid range target: %w", err)
		}
		max, err := jfloat(m, "max")
		if err != nil {
			return nil, fmt.Errorf("invalid range target: %w", err)
		}
		return NewTargetRange(min, max, joptfloat(m, "tolerance")), nil
	case "ratio":
		ratio, err := jfloat(m, "ratio")
		if err != nil {
			return nil, fmt.Errorf("invalid ratio target: %w", err)
		}
		return NewTargetRatio(ratio, joptfloat(m, "tolerance")), nil
	default:
		return nil, fmt.Errorf("unknown target type: %q", kind)
	}
}
