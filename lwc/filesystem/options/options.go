package options

import (
	"runtime"

	internal "github.com/ZanzyTHEbar/line-word-count/lwc"
	"github.com/ZanzyTHEbar/line-word-count/lwc/config"

	"github.com/rs/zerolog"
)

// MaxWorkers caps the pool regardless of configuration.
const MaxWorkers = 256

// TraversalOptions configures how the Walker enumerates roots.
type TraversalOptions struct {
	FollowRootSymlinks bool   // Resolve symlinks given as roots; children are never followed
	IgnoreFile         string // Gitignore-syntax file looked up in each root directory ("" disables)
}

// RunOptions configures a Counter.
type RunOptions struct {
	Traversal     TraversalOptions
	Workers       int  // Pool size; 0 means one worker per CPU
	QueueSize     int  // Pending-job queue between the Walker and the pool
	BufferSize    int  // Read buffer per content job
	AbsolutePaths bool // Report paths made absolute
	Logger        zerolog.Logger
}

// DefaultTraversalOptions returns sensible defaults for traversal operations
func DefaultTraversalOptions() TraversalOptions {
	return TraversalOptions{
		FollowRootSymlinks: true,
		IgnoreFile:         internal.DefaultIgnoreFileName,
	}
}

// DefaultRunOptions returns the defaults used when no configuration is loaded.
// The logger discards everything.
func DefaultRunOptions() RunOptions {
	return RunOptions{
		Traversal:  DefaultTraversalOptions(),
		Workers:    0,
		QueueSize:  internal.DefaultQueueSize,
		BufferSize: internal.DefaultBufferSize,
		Logger:     zerolog.Nop(),
	}
}

// FromConfig converts loaded configuration into run options.
func FromConfig(cfg *config.Config, logger zerolog.Logger) RunOptions {
	opts := DefaultRunOptions()
	if cfg == nil {
		opts.Logger = logger
		return opts
	}
	opts.Traversal = TraversalOptions{
		FollowRootSymlinks: cfg.Engine.FollowRootSymlinks,
		IgnoreFile:         cfg.Engine.IgnoreFile,
	}
	opts.Workers = cfg.Engine.Workers
	opts.QueueSize = cfg.Engine.QueueSize
	opts.BufferSize = cfg.Engine.BufferSize
	opts.Logger = logger
	return opts
}

// EffectiveWorkers resolves the pool size: 0 means runtime.NumCPU, and the
// result is clamped to [1, MaxWorkers].
func (o RunOptions) EffectiveWorkers() int {
	n := o.Workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return min(max(n, 1), MaxWorkers)
}

// EffectiveQueueSize returns the bounded queue capacity, never below one.
func (o RunOptions) EffectiveQueueSize() int {
	return max(o.QueueSize, 1)
}

// EffectiveBufferSize returns the read buffer size, falling back to the default.
func (o RunOptions) EffectiveBufferSize() int {
	if o.BufferSize <= 0 {
		return internal.DefaultBufferSize
	}
	return o.BufferSize
}
