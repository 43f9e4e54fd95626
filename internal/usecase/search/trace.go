package search

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/kailas-cloud/dirsearch/usecase/search"

// startSpan looks the tracer up on every call so a provider installed or
// replaced after init is honored. A no-op unless the host installs one.
func startSpan(ctx context.Context, op, catalogName string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "search."+op,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("dirsearch.catalog", catalogName)),
	)
}

func endSpan(span trace.Span, err error, results int) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetAttributes(attribute.Int("dirsearch.results", results))
	}
	span.End()
}
