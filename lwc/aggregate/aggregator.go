// Package aggregate merges job results into a run-wide GrandTotal and restores
// the traversal order of per-item results after out-of-order completion.
package aggregate

import (
	"fmt"
	"slices"
	"sync"

	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/common"
	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/types"
	"github.com/ZanzyTHEbar/line-word-count/lwc/indexing"

	"github.com/google/uuid"
)

// Aggregator is the single synchronization point shared by all workers.
type Aggregator struct {
	mu         sync.Mutex
	mode       types.RunMode
	kind       types.ResultKind
	total      GrandTotal
	results    []types.Result
	failures   *indexing.FailureSet
	totalsOnly bool
}

// New creates an aggregator for the given run mode. In totals-only mode
// per-item results are never buffered.
func New(mode types.RunMode) *Aggregator {
	kind := mode.ResultKind()
	return &Aggregator{
		mode:       mode,
		kind:       kind,
		total:      Zero(kind),
		failures:   indexing.NewFailureSet(),
		totalsOnly: mode.TotalsOnly,
	}
}

// Merge folds r into the total and buffers it for ordered emission.
// A failed result adds only to the failure count.
func (a *Aggregator) Merge(r types.Result) error {
	if r.Kind != a.kind {
		return fmt.Errorf("%w: run is %s, got %s for %q", common.ErrMixedResults, a.kind, r.Kind, r.Path)
	}
	delta := FromResult(r)

	a.mu.Lock()
	defer a.mu.Unlock()

	a.total = a.total.Combine(delta)
	if r.Failed() {
		a.failures.Add(r.OriginIndex)
	}
	if !a.totalsOnly {
		a.results = append(a.results, r)
	}
	return nil
}

// OrderedResults returns the buffered results sorted by origin index.
func (a *Aggregator) OrderedResults() []types.Result {
	a.mu.Lock()
	out := slices.Clone(a.results)
	a.mu.Unlock()

	slices.SortFunc(out, func(x, y types.Result) int {
		switch {
		case x.OriginIndex < y.OriginIndex:
			return -1
		case x.OriginIndex > y.OriginIndex:
			return 1
		default:
			return 0
		}
	})
	return out
}

// Total returns the current grand total.
func (a *Aggregator) Total() GrandTotal {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.total
}

// Outcome snapshots the aggregator into the value handed to reporters.
func (a *Aggregator) Outcome(runID uuid.UUID) *Outcome {
	items := a.OrderedResults()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.totalsOnly {
		items = nil
	}
	return &Outcome{
		RunID:  runID,
		Mode:   a.mode,
		Items:  items,
		Total:  a.total,
		failed: a.failures.Union(nil),
	}
}
