package searchmw

import (
	"context"
	"errors"
	"time"

	"github.com/goto/pgsearch/core/searchable"
	"go.opentelemetry.io/otel/metric"
)

type DocumentRepositoryInstrumentation struct {
	next      searchable.DocumentRepository
	writeDurn metric.Float64Histogram
}

func WithDocumentRepositoryInstrumentation() func(searchable.DocumentRepository) searchable.DocumentRepository {
	writeDurn, err := meter().Float64Histogram(writeDurnHistogram,
		metric.WithUnit("ms"),
		metric.WithDescription("Time taken to write satellite search documents"),
	)
	handleOtelErr(err)

	return func(next searchable.DocumentRepository) searchable.DocumentRepository {
		return DocumentRepositoryInstrumentation{
			next:      next,
			writeDurn: writeDurn,
		}
	}
}

func (mw DocumentRepositoryInstrumentation) Find(ctx context.Context, searchableType, searchableID string) (doc searchable.Document, err error) {
	ctx, span := startSpan(ctx, "searchable.FindDocument", attrSearchableType.String(searchableType))
	defer func() {
		// a missing document is an expected outcome, not a failure
		if errors.Is(err, searchable.ErrDocumentNotFound) {
			endSpan(span, nil)
			return
		}
		endSpan(span, err)
	}()

	return mw.next.Find(ctx, searchableType, searchableID)
}

func (mw DocumentRepositoryInstrumentation) Create(ctx context.Context, doc searchable.Document) (created searchable.Document, err error) {
	ctx, done := mw.instrument(ctx, "create", doc.SearchableType)
	defer func() { done(err) }()

	return mw.next.Create(ctx, doc)
}

func (mw DocumentRepositoryInstrumentation) Update(ctx context.Context, doc searchable.Document) (err error) {
	ctx, done := mw.instrument(ctx, "update", doc.SearchableType)
	defer func() { done(err) }()

	return mw.next.Update(ctx, doc)
}

func (mw DocumentRepositoryInstrumentation) Delete(ctx context.Context, searchableType, searchableID string) (err error) {
	ctx, done := mw.instrument(ctx, "delete", searchableType)
	defer func() { done(err) }()

	return mw.next.Delete(ctx, searchableType, searchableID)
}

func (mw DocumentRepositoryInstrumentation) DeleteByType(ctx context.Context, searchableType string) (n int64, err error) {
	ctx, done := mw.instrument(ctx, "delete_by_type", searchableType)
	defer func() { done(err) }()

	return mw.next.DeleteByType(ctx, searchableType)
}

func (mw DocumentRepositoryInstrumentation) instrument(ctx context.Context, op, searchableType string) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := startSpan(ctx, "searchable.Document."+op,
		attrOperation.String(op),
		attrSearchableType.String(searchableType),
	)

	return ctx, func(err error) {
		mw.writeDurn.Record(ctx, sinceMillis(start), metric.WithAttributes(
			attrOperation.String(op),
			attrSearchableType.String(searchableType),
			attrOpSuccess.Bool(err == nil),
		))
		endSpan(span, err)
	}
}
