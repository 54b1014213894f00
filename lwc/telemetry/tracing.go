// Package telemetry configures OpenTelemetry tracing for a run. When tracing
// is disabled the global no-op provider stays in place, so spans started by
// the engine cost nothing.
package telemetry

import (
	"context"
	"fmt"
	"io"

	internal "github.com/ZanzyTHEbar/line-word-count/lwc"
	"github.com/ZanzyTHEbar/line-word-count/lwc/version"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(context.Context) error

// Setup installs a global tracer provider exporting spans as JSON to w.
// With enabled false it installs nothing and returns a no-op shutdown.
func Setup(enabled bool, w io.Writer) (ShutdownFunc, error) {
	if !enabled {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := stdouttrace.New(
		stdouttrace.WithWriter(w),
		stdouttrace.WithPrettyPrint(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(internal.DefaultAppName),
		semconv.ServiceVersion(version.GetVersion()),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)

	return tp.Shutdown, nil
}
