package logs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func withLogs(t *testing.T, fn func(buf *bytes.Buffer, logger Logger, newSpan NewSpan)) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
		newSpan NewSpan,
	) {
		fn(buf, logger, newSpan)
	})
}

func TestLogger(t *testing.T) {
	withLogs(t, func(buf *bytes.Buffer, logger Logger, _ NewSpan) {
		logger.Info("run done", "steps", 202)
		if !strings.Contains(buf.String(), "msg=\"run done\" steps=202") {
			t.Fatalf("got %s", buf.String())
		}
		buf.Reset()
		logger.Debug("checkpoint saved")
		if buf.Len() != 0 {
			t.Fatalf("got %s", buf.String())
		}
	})
}

func TestNewSpan(t *testing.T) {
	withLogs(t, func(buf *bytes.Buffer, logger Logger, newSpan NewSpan) {
		ctx := context.Background()

		ctx1, batch := newSpan(ctx, "")
		ctx11, job := newSpan(ctx1, "")
		_, step := newSpan(ctx11, batch)

		lines := strings.Split(buf.String(), "\n")
		if !strings.Contains(lines[0], "logs.span="+string(batch)) {
			t.Fatalf("got %v", lines[0])
		}
		if strings.Contains(lines[0], "parent=") {
			t.Fatalf("got %v", lines[0])
		}
		if !strings.Contains(lines[1], "logs.span="+string(job)) ||
			!strings.Contains(lines[1], "parent="+string(batch)) {
			t.Fatalf("got %v", lines[1])
		}
		if !strings.Contains(lines[2], "logs.span="+string(step)) ||
			!strings.Contains(lines[2], "parent="+string(batch)) ||
			!strings.Contains(lines[2], "creator="+string(job)) {
			t.Fatalf("got %v", lines[2])
		}
		if SpanOf(ctx11) != job {
			t.Fatal()
		}
	})
}

func TestSpanWithAttrs(t *testing.T) {
	withLogs(t, func(buf *bytes.Buffer, logger Logger, newSpan NewSpan) {
		ctx, span := newSpan(context.Background(), "")
		buf.Reset()
		logger.With("program", "multiplication").WithGroup("run").InfoContext(ctx, "halted", "steps", 34)
		out := buf.String()
		if !strings.Contains(out, "program=multiplication") ||
			!strings.Contains(out, "run.steps=34") ||
			!strings.Contains(out, string(span)) {
			t.Fatalf("got %s", out)
		}
	})
}

func TestWrapSpan(t *testing.T) {
	ErrBudget := errors.New("budget exhausted")

	if err := WrapSpan(context.Background(), ErrBudget); err != ErrBudget {
		t.Fatalf("got %v", err)
	}

	withLogs(t, func(_ *bytes.Buffer, _ Logger, newSpan NewSpan) {
		ctx, span := newSpan(context.Background(), "")
		if err := WrapSpan(ctx, nil); err != nil {
			t.Fatalf("got %v", err)
		}
		err := WrapSpan(ctx, ErrBudget)
		if !errors.Is(err, ErrBudget) {
			t.Fatalf("got %v", err)
		}
		if err.Error() != "budget exhausted (span "+string(span)+")" {
			t.Fatalf("got %v", err)
		}
	})
}

func TestJournalKey(t *testing.T) {
	if got := toJournalKey("logs.span"); got != "LOGS_SPAN" {
		t.Fatalf("got %s", got)
	}
}
