package glug

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/five82/glug/internal/record"
)

// ProducerKey is the attribute key that names the producer of a record.
const ProducerKey = "producer"

type producerKey struct{}

// WithProducer returns a context that names the producer for records logged
// through a Handler with it.
func WithProducer(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, producerKey{}, name)
}

func producerFrom(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	name, ok := ctx.Value(producerKey{}).(string)
	return name, ok
}

// Handler is a slog.Handler that submits records to a Logger. Attributes are
// appended to the message as key=value pairs.
type Handler struct {
	l        *Logger
	pre      string
	prefix   string
	producer string
}

// Handler returns a slog.Handler backed by l.
func (l *Logger) Handler() slog.Handler {
	return &Handler{l: l}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.l.minLevel.Level()
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)
	b.WriteString(h.pre)

	name := h.producer
	if n, ok := producerFrom(ctx); ok {
		name = n
	}
	r.Attrs(func(a slog.Attr) bool {
		if h.prefix == "" && a.Key == ProducerKey {
			name = a.Value.Resolve().String()
			return true
		}
		appendAttr(&b, h.prefix, a)
		return true
	})

	h.l.send(record.New(h.l.features, b.String(), record.FromSlog(r.Level), name))
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	var b strings.Builder
	b.WriteString(h.pre)
	for _, a := range attrs {
		if h.prefix == "" && a.Key == ProducerKey {
			h2.producer = a.Value.Resolve().String()
			continue
		}
		appendAttr(&b, h.prefix, a)
	}
	h2.pre = b.String()
	return &h2
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(b, prefix, ga)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(quoteIfNeeded(a.Value.String()))
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
