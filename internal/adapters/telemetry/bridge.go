package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/ports"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Bridge implements sdktrace.SpanProcessor and reports finished spans through a Logger.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{
		logger: logger,
	}
}

// OnStart does nothing; spans are reported once they end.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, duration and attributes.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	msg := FormatSpan(s.Name(), s.EndTime().Sub(s.StartTime()), spanAttributes(s))
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "span failed"
		}
		b.logger.Warn(msg + ": " + desc)
		return
	}
	b.logger.Info(msg)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// FormatSpan renders a span as "trace name 1.2ms key=value ...".
func FormatSpan(name string, d time.Duration, attrs []string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "trace %s %s", name, d.Round(time.Microsecond))
	for _, a := range attrs {
		sb.WriteByte(' ')
		sb.WriteString(a)
	}
	return sb.String()
}

func spanAttributes(s sdktrace.ReadOnlySpan) []string {
	attrs := s.Attributes()
	out := make([]string, 0, len(attrs))
	for _, kv := range attrs {
		out = append(out, fmt.Sprintf("%s=%s", kv.Key, kv.Value.Emit()))
	}
	return out
}
