package telemetry

import (
	"context"

	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/ports"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Setup registers a global TracerProvider that reports spans to logger.
// The returned function flushes and unregisters the provider.
func Setup(logger ports.Logger) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewBridge(logger)),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
