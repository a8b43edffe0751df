package logs

import (
	"context"
	"crypto/rand"
	"fmt"
)

// Span identifies a unit of work, such as one job of a batch
type Span string

type spanKey struct{}

var SpanKey spanKey

// SpanOf returns the span carried by ctx, or ""
func SpanOf(ctx context.Context) Span {
	span, _ := ctx.Value(SpanKey).(Span)
	return span
}

// NewSpan starts a span under parent, or under the span of ctx if parent is empty
type NewSpan func(ctx context.Context, parent Span) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, parent Span) (context.Context, Span) {
		creator := SpanOf(ctx)
		if parent == "" {
			parent = creator
		}

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		var args []any
		if creator != "" && creator != parent {
			args = append(args, "creator", creator)
		}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.InfoContext(ctx, "new span", args...)

		return ctx, span
	}
}

// WrapSpan annotates err with the span of ctx
func WrapSpan(ctx context.Context, err error) error {
	span := SpanOf(ctx)
	if err == nil || span == "" {
		return err
	}
	return fmt.Errorf("%w (span %s)", err, span)
}
