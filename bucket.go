package folio

import (
	"math"

	"github.com/shopspring/decimal"
)

// Bucket is a shared pool of lines that several shared folders compete for.
//
// A bucket is owned once and referenced by every SharedFolder drawing from
// it, never copied: allocation order across folders decides who is funded
// first. The amount already handed out is tracked with a decimal cursor so
// partial line splits stay exact.
type Bucket struct {
	name  string
	lines []*Line
	used  decimal.Decimal
}

// NewBucket creates a pool from an ordered list of lines.
func NewBucket(name string, lines ...*Line) *Bucket {
	return &Bucket{name: name, lines: lines}
}

// Name returns the bucket's registry name.
func (b *Bucket) Name() string { return b.name }

// Lines returns the bucket's full initial contents, in order.
func (b *Bucket) Lines() []*Line { return b.lines }

// Amount returns the total amount pooled in the bucket.
func (b *Bucket) Amount() float64 {
	sum := decimal.Zero
	for _, l := range b.lines {
		sum = sum.Add(decimal.NewFromFloat(l.GetAmount()))
	}
	return sum.InexactFloat64()
}

// UseAmount allocates up to target from what remains of the pool and
// returns the allocation as fresh lines, in pool order. The boundary line
// is split when the target falls inside it. Allocation is monotonic: each
// call consumes from where the previous one stopped, and the total handed
// out never exceeds the pool.
//
// Pass math.Inf(1) to take everything left.
func (b *Bucket) UseAmount(target float64) []*Line {
	unbounded := math.IsInf(target, 1)
	var remaining decimal.Decimal
	if !unbounded {
		remaining = decimal.NewFromFloat(target)
	}

	var out []*Line
	pos := decimal.Zero
	for _, l := range b.lines {
		if !unbounded && !remaining.IsPositive() {
			break
		}
		amount := decimal.NewFromFloat(l.GetAmount())
		start, end := pos, pos.Add(amount)
		pos = end
		if end.LessThanOrEqual(b.used) {
			continue // fully handed out already
		}
		avail := end.Sub(decimal.Max(start, b.used))
		take := avail
		if !unbounded && remaining.LessThan(take) {
			take = remaining
		}
		if !take.IsPositive() {
			continue
		}
		out = append(out, l.clone(take.InexactFloat64()))
		b.used = b.used.Add(take)
		if !unbounded {
			remaining = remaining.Sub(take)
		}
	}
	return out
}

// Refund gives an amount back to the pool, rewinding the allocation cursor.
// A shared folder refunds its previous draw before reprocessing, so that
// reallocating with an unchanged pool yields the same lines.
func (b *Bucket) Refund(amount float64) {
	b.used = b.used.Sub(decimal.NewFromFloat(amount))
	if b.used.IsNegative() {
		b.used = decimal.Zero
	}
}
