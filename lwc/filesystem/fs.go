package filesystem

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/ZanzyTHEbar/line-word-count/lwc/aggregate"
	"github.com/ZanzyTHEbar/line-word-count/lwc/counter"
	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/common"
	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/options"
	"github.com/ZanzyTHEbar/line-word-count/lwc/filesystem/types"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Counter is the entry point of the counting engine. It wires the Walker,
// the ConcurrentTraverser and the Aggregator for one run at a time; a Counter
// holds no per-run state and may be reused.
type Counter struct {
	opts options.RunOptions
}

// New validates opts and creates a Counter.
func New(opts options.RunOptions) (*Counter, error) {
	if opts.Workers < 0 {
		return nil, fmt.Errorf("%w: %d", common.ErrInvalidWorkers, opts.Workers)
	}
	return &Counter{opts: opts}, nil
}

// Run counts every root under mode. Per-item failures are part of the
// returned Outcome. The error is non-nil when the run could not start, when a
// result was rejected, or when ctx ended before all jobs ran; in the last case
// the partial Outcome is returned as well.
func (c *Counter) Run(ctx context.Context, roots []string, mode types.RunMode) (*aggregate.Outcome, error) {
	if len(roots) == 0 {
		return nil, common.ErrNoRoots
	}

	roots, err := c.resolveRoots(roots)
	if err != nil {
		return nil, err
	}

	runID := uuid.New()
	logger := c.opts.Logger.With().Str("run_id", runID.String()).Logger()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "lwc.run", trace.WithAttributes(
		attribute.String("lwc.run_id", runID.String()),
		attribute.Int("lwc.roots", len(roots)),
		attribute.Bool("lwc.recursive", mode.Recursive),
		attribute.Bool("lwc.directory_elements", mode.DirectoryElements),
	))
	defer span.End()

	walker := NewWalker(roots, mode, c.opts.Traversal, logger)
	entries, err := walker.Entries(ctx)
	if err != nil {
		return nil, err
	}

	agg := aggregate.New(mode)
	traverser := NewConcurrentTraverser(c.opts, logger)

	logger.Debug().
		Strs("roots", roots).
		Int("workers", traverser.Workers()).
		Bool("recursive", mode.Recursive).
		Bool("directory_elements", mode.DirectoryElements).
		Msg("Starting run")

	runErr := traverser.Traverse(ctx, entries, mode, agg)
	out := agg.Outcome(runID)
	traverser.Metrics().Snapshot().Log(logger, traverser.Workers())

	span.SetAttributes(
		attribute.Int64("lwc.items", int64(out.Total.Items)),
		attribute.Int64("lwc.failures", int64(out.Total.Failures)),
	)

	if runErr != nil {
		span.RecordError(runErr)
		return out, runErr
	}
	if err := ctx.Err(); err != nil {
		return out, err
	}
	return out, nil
}

// RunReader counts a single anonymous stream, such as piped standard input.
// The item has an empty path. Directory-element mode does not apply to a
// stream and is rejected.
func (c *Counter) RunReader(ctx context.Context, r io.Reader, mode types.RunMode) (*aggregate.Outcome, error) {
	if mode.DirectoryElements {
		return nil, fmt.Errorf("%w: standard input", common.ErrNotDirectory)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runID := uuid.New()
	logger := c.opts.Logger.With().Str("run_id", runID.String()).Logger()

	_, span := otel.Tracer(tracerName).Start(ctx, "lwc.stream", trace.WithAttributes(
		attribute.String("lwc.run_id", runID.String()),
	))
	defer span.End()

	res := types.Result{Kind: types.ResultContent}
	cc, err := counter.Count(r, "", c.opts.EffectiveBufferSize())
	if err != nil {
		res.Err = common.NewIOError("", err)
		span.RecordError(res.Err)
		logger.Warn().Err(err).Msg("Failed to read stream")
	} else {
		res.Content = &cc
	}

	agg := aggregate.New(mode)
	if err := agg.Merge(res); err != nil {
		return nil, err
	}
	return agg.Outcome(runID), nil
}

func (c *Counter) resolveRoots(roots []string) ([]string, error) {
	if !c.opts.AbsolutePaths {
		return roots, nil
	}
	abs := make([]string, len(roots))
	for i, root := range roots {
		p, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", root, err)
		}
		abs[i] = p
	}
	return abs, nil
}
