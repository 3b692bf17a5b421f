package folio

// Perf holds the expected yearly performance of a node.
//
// Skip marks the node as excluded from weighted performance aggregation:
// a skipped node contributes nothing to its folder's expected performance,
// and a folder whose children are all skipped reports itself as skipped.
type Perf struct {
	Expected Percent
	Skip     bool
}

// NewPerf returns a performance descriptor with the given expected yearly return.
func NewPerf(expected Percent) *Perf {
	return &Perf{Expected: expected}
}

// SkipPerf returns a performance descriptor excluding the node from aggregation.
func SkipPerf() *Perf {
	return &Perf{Skip: true}
}

func (p Perf) String() string {
	if p.Skip {
		return "-"
	}
	return p.Expected.String()
}
