package aggregate

import (
	"sync"

	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/types"
	"github.com/ZanzyTHEbar/line-word-count/lwc/indexing"
	"github.com/ZanzyTHEbar/line-word-count/lwc/trees"

	"github.com/google/uuid"
)

// Outcome is what a run hands to the reporting layer: ordered per-item results
// (nil in totals-only mode) and the grand total.
type Outcome struct {
	RunID uuid.UUID
	Mode  types.RunMode
	Items []types.Result
	Total GrandTotal

	failed    *indexing.FailureSet
	indexOnce sync.Once
	index     *trees.PathIndex
}

// FailedIndices returns the origin indices of failed items in ascending
// order. It is available even when Items was discarded.
func (o *Outcome) FailedIndices() []uint64 {
	if o.failed == nil {
		return nil
	}
	return o.failed.Indices()
}

// ShowTotal reports whether a reporter should print the total line: always in
// totals-only mode, otherwise only when more than one item was counted.
func (o *Outcome) ShowTotal() bool {
	return o.Mode.TotalsOnly || o.Total.Items > 1
}

// Subtotal sums the items at or beneath prefix. It returns the zero total in
// totals-only mode, where no items are retained.
func (o *Outcome) Subtotal(prefix string) GrandTotal {
	o.indexOnce.Do(func() {
		o.index = trees.NewPathIndex()
		for i := range o.Items {
			o.index.Insert(&o.Items[i])
		}
	})

	sub := Zero(o.Total.Kind)
	o.index.Under(prefix, func(r *types.Result) bool {
		sub = sub.Combine(FromResult(*r))
		return true
	})
	return sub
}
