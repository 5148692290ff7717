package searchmw

import (
	"context"
	"time"

	"github.com/goto/pgsearch/core/searchable"
	"go.opentelemetry.io/otel/metric"
)

type CompilerInstrumentation struct {
	next        searchable.Compiler
	compileDurn metric.Float64Histogram
}

func WithCompilerInstrumentation() func(searchable.Compiler) searchable.Compiler {
	compileDurn, err := meter().Float64Histogram(compileDurnHistogram,
		metric.WithUnit("ms"),
		metric.WithDescription("Time taken to compile weighted text into a tsvector"),
	)
	handleOtelErr(err)

	return func(next searchable.Compiler) searchable.Compiler {
		return CompilerInstrumentation{
			next:        next,
			compileDurn: compileDurn,
		}
	}
}

func (mw CompilerInstrumentation) Compile(ctx context.Context, language string, parts []searchable.WeightedText) (v searchable.Vector, err error) {
	ctx, span := startSpan(ctx, "searchable.Compile",
		attrLanguage.String(language),
		attrVectorParts.Int(len(parts)),
	)
	defer func(start time.Time) {
		mw.compileDurn.Record(ctx, sinceMillis(start), metric.WithAttributes(
			attrOperation.String("compile"),
			attrVectorParts.Int(len(parts)),
			attrOpSuccess.Bool(err == nil),
		))
		endSpan(span, err)
	}(time.Now())

	return mw.next.Compile(ctx, language, parts)
}
