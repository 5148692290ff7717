package searchmw

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/goto/pgsearch/pkg/searchmw"

const (
	compileDurnHistogram = "pgsearch.vector.compile.duration"
	writeDurnHistogram   = "pgsearch.document.write.duration"
)

const (
	attrOperation      = attribute.Key("operation")
	attrOpSuccess      = attribute.Key("operation.success")
	attrSearchableType = attribute.Key("searchable.type")
	attrVectorParts    = attribute.Key("vector.parts")
	attrLanguage       = attribute.Key("vector.language")
)

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(instrumentationName).Start(ctx, name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func sinceMillis(start time.Time) float64 {
	return (float64)(time.Since(start)) / (float64)(time.Millisecond)
}

func handleOtelErr(err error) {
	if err != nil {
		otel.Handle(err)
	}
}

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
