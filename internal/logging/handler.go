package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Handler is a compact slog.Handler for terminal output:
//
//	3:04PM INFO  copied binary dest=/home/alice/.blue/bin/blue
//
// Levels and keys are coloured when the writer supports it.
type Handler struct {
	opts   slog.HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	attrs  []slog.Attr
	prefix string

	palette *palette
}

type palette struct {
	time  *color.Color
	trace *color.Color
	debug *color.Color
	info  *color.Color
	warn  *color.Color
	err   *color.Color
	key   *color.Color
}

// NewHandler creates a text handler writing to out.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	h := &Handler{
		opts: *opts,
		out:  out,
		mu:   &sync.Mutex{},
	}

	if SupportsColor(out) {
		h.palette = &palette{
			time:  color.New(color.FgHiBlack),
			trace: color.New(color.FgHiBlack),
			debug: color.New(color.FgMagenta),
			info:  color.New(color.FgGreen),
			warn:  color.New(color.FgYellow),
			err:   color.New(color.FgRed, color.Bold),
			key:   color.New(color.FgCyan),
		}
	}

	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

// Handle writes r as a single line.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder

	if !r.Time.IsZero() {
		sb.WriteString(h.paint(h.timeColor(), r.Time.Format(time.Kitchen)))
		sb.WriteByte(' ')
	}

	fmt.Fprintf(&sb, "%-5s ", h.paint(h.levelColor(r.Level), levelName(r.Level)))
	sb.WriteString(r.Message)

	for _, a := range h.attrs {
		h.writeAttr(&sb, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&sb, h.prefix, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) writeAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := prefix + a.Key

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			h.writeAttr(sb, key+".", ga)
		}
		return
	}

	value := fmt.Sprint(a.Value.Any())
	value = Redact(a.Key, value)

	fmt.Fprintf(sb, " %s=%s", h.paint(h.keyColor(), key), value)
}

// WithAttrs returns a new Handler with the given attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newH := *h
	newH.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	newH.attrs = append(newH.attrs, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		newH.attrs = append(newH.attrs, a)
	}
	return &newH
}

// WithGroup returns a new Handler that prefixes subsequent keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newH := *h
	newH.prefix = h.prefix + name + "."
	return &newH
}

func levelName(l slog.Level) string {
	if l < slog.LevelDebug {
		return "TRACE"
	}
	return l.String()
}

func (h *Handler) paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}

func (h *Handler) timeColor() *color.Color {
	if h.palette == nil {
		return nil
	}
	return h.palette.time
}

func (h *Handler) keyColor() *color.Color {
	if h.palette == nil {
		return nil
	}
	return h.palette.key
}

func (h *Handler) levelColor(l slog.Level) *color.Color {
	if h.palette == nil {
		return nil
	}
	switch {
	case l >= slog.LevelError:
		return h.palette.err
	case l >= slog.LevelWarn:
		return h.palette.warn
	case l >= slog.LevelInfo:
		return h.palette.info
	case l >= slog.LevelDebug:
		return h.palette.debug
	default:
		return h.palette.trace
	}
}
