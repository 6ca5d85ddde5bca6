// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record,
// coloring the level and message with [termenv] when the
// output supports it. Its level is always [UserLevel].
type Handler struct {
	out     io.Writer
	mu      *sync.Mutex
	profile termenv.Profile
	attrs   []slog.Attr
	group   string
}

// NewHandler returns a new [Handler] writing to the given writer.
// Colors are only used when the writer is a terminal.
func NewHandler(w io.Writer) *Handler {
	h := &Handler{out: w, mu: &sync.Mutex{}, profile: termenv.Ascii}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		h.profile = termenv.NewOutput(f).EnvColorProfile()
	}
	return h
}

// SetProfile sets the color profile of the handler, overriding
// the one detected from the output.
func (h *Handler) SetProfile(p termenv.Profile) *Handler {
	h.profile = p
	return h
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *Handler) levelColor(level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return h.profile.Color("#e0464b")
	case level >= slog.LevelWarn:
		return h.profile.Color("#e0a030")
	case level >= slog.LevelInfo:
		return h.profile.Color("#3f8fd8")
	default:
		return h.profile.Color("#8a8a8a")
	}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	sb := &strings.Builder{}
	lv := h.profile.String(r.Level.String()).Foreground(h.levelColor(r.Level)).Bold()
	sb.WriteString(lv.String())
	sb.WriteString(" ")
	sb.WriteString(h.profile.String(r.Message).Foreground(h.levelColor(r.Level)).String())
	for _, a := range h.attrs {
		fmt.Fprintf(sb, " %s=%v", a.Key, a.Value.Resolve())
	}
	r.Attrs(func(a slog.Attr) bool {
		if !a.Equal(slog.Attr{}) {
			fmt.Fprintf(sb, " %s=%v", h.key(a.Key), a.Value.Resolve())
		}
		return true
	})
	sb.WriteString("\n")
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) key(k string) string {
	if h.group == "" {
		return k
	}
	return h.group + "." + k
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		nh.attrs = append(nh.attrs, slog.Attr{Key: h.key(a.Key), Value: a.Value})
	}
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	if nh.group != "" {
		name = nh.group + "." + name
	}
	nh.group = name
	return &nh
}

// SetDefaultLogger sets the default logger to be a [Handler] writing
// to [os.Stderr], so that all [slog] calls respect [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
