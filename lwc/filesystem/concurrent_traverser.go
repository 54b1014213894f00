package filesystem

import (
	"context"
	"iter"
	"os"

	"github.com/ZanzyTHEbar/line-word-count/lwc/aggregate"
	"github.com/ZanzyTHEbar/line-word-count/lwc/counter"
	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/common"
	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/options"
	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/types"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/ZanzyTHEbar/line-word-count/lwc/filesystem"

// ConcurrentTraverser dispatches one job per eligible entry to a bounded
// worker pool built on conc. The Walker runs on its own goroutine and feeds a
// bounded queue, so enumeration and counting overlap.
type ConcurrentTraverser struct {
	maxWorkers int
	queueSize  int
	bufSize    int
	logger     zerolog.Logger
	tracer     trace.Tracer
	metrics    *common.RunMetrics
}

// NewConcurrentTraverser creates a traverser sized from opts.
func NewConcurrentTraverser(opts options.RunOptions, logger zerolog.Logger) *ConcurrentTraverser {
	return &ConcurrentTraverser{
		maxWorkers: opts.EffectiveWorkers(),
		queueSize:  opts.EffectiveQueueSize(),
		bufSize:    opts.EffectiveBufferSize(),
		logger:     logger,
		tracer:     otel.Tracer(tracerName),
		metrics:    common.NewRunMetrics(),
	}
}

// Workers returns the pool size.
func (ct *ConcurrentTraverser) Workers() int {
	return ct.maxWorkers
}

// Metrics returns the live counters for this traverser.
func (ct *ConcurrentTraverser) Metrics() *common.RunMetrics {
	return ct.metrics
}

// Traverse drains entries, runs every eligible job and merges each result into
// agg. Item failures are merged as failed results and never stop the run.
// The returned error is non-nil only when a merge is rejected.
func (ct *ConcurrentTraverser) Traverse(ctx context.Context, entries iter.Seq[types.Entry], mode types.RunMode, agg *aggregate.Aggregator) error {
	jobs := make(chan types.Entry, ct.queueSize)

	var producer conc.WaitGroup
	producer.Go(func() {
		defer close(jobs)
		for e := range entries {
			ct.metrics.EntriesWalked.Add(1)
			if !eligible(e, mode) {
				ct.logger.Debug().Str("path", e.Path).Stringer("kind", e.Kind).Msg("Skipping entry")
				continue
			}
			jobs <- e
		}
	})

	p := pool.New().WithMaxGoroutines(ct.maxWorkers).WithContext(ctx)
	for e := range jobs {
		ct.metrics.JobsDispatched.Add(1)
		p.Go(func(ctx context.Context) error {
			r := ct.process(ctx, e, mode)
			if r.Failed() {
				ct.metrics.JobsFailed.Add(1)
				ct.logger.Warn().Err(r.Err).Str("path", r.Path).Uint64("origin", r.OriginIndex).Msg("Item failed")
			} else {
				ct.metrics.JobsSucceeded.Add(1)
			}
			return agg.Merge(r)
		})
	}

	err := p.Wait()
	producer.Wait()
	return err
}

// eligible decides whether an entry becomes a job. Entries carrying an error
// always do, so the failure shows up in the output. Roots of the wrong kind
// become jobs that report NotRegular or NotDirectory.
func eligible(e types.Entry, mode types.RunMode) bool {
	if e.Err != nil {
		return true
	}
	if mode.DirectoryElements {
		if e.IsRoot() {
			return true
		}
		return mode.Recursive && e.Kind == types.KindDirectory
	}
	if e.Kind == types.KindRegularFile {
		return true
	}
	return e.IsRoot() && e.Kind != types.KindDirectory
}

func (ct *ConcurrentTraverser) process(ctx context.Context, e types.Entry, mode types.RunMode) types.Result {
	r := types.Result{
		OriginIndex: e.OriginIndex,
		Path:        e.Path,
		Kind:        mode.ResultKind(),
	}
	if err := ctx.Err(); err != nil {
		r.Err = common.NewIOError(e.Path, err)
		return r
	}
	if e.Err != nil {
		r.Err = e.Err
		return r
	}

	_, span := ct.tracer.Start(ctx, "lwc.job", trace.WithAttributes(
		attribute.String("lwc.path", e.Path),
		attribute.String("lwc.kind", e.Kind.String()),
		attribute.Int64("lwc.origin", int64(e.OriginIndex)),
	))
	defer func() {
		if r.Err != nil {
			span.RecordError(r.Err)
			span.SetStatus(codes.Error, "item failed")
		}
		span.End()
	}()

	if mode.DirectoryElements {
		if e.Kind != types.KindDirectory {
			r.Err = common.NewNotDirectoryError(e.Path)
			return r
		}
		dc := counter.CountDir(e.Path, e.Listing, mode.DepthMode())
		r.Dir = &dc
		return r
	}

	if e.Kind != types.KindRegularFile {
		r.Err = common.NewNotRegularError(e.Path)
		return r
	}
	cc, err := ct.countFile(e.Path)
	if err != nil {
		r.Err = err
		return r
	}
	span.SetAttributes(attribute.Int64("lwc.bytes", int64(cc.Bytes)))
	r.Content = &cc
	return r
}

func (ct *ConcurrentTraverser) countFile(path string) (types.ContentCount, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.ContentCount{}, common.NewAccessError(path, err)
	}
	defer f.Close()

	cc, err := counter.Count(f, path, ct.bufSize)
	if err != nil {
		return types.ContentCount{}, common.NewIOError(path, err)
	}
	ct.metrics.BytesRead.Add(int64(cc.Bytes))
	return cc, nil
}
