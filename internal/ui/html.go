package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// HTML writes markup for hand-built components. After the first failed
// write every call is a no-op and Err reports the failure.
type HTML struct {
	w   io.Writer
	err error
}

func NewHTML(w io.Writer) *HTML {
	return &HTML{w: w}
}

// Raw writes trusted markup as-is.
func (h *HTML) Raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// Text writes s escaped.
func (h *HTML) Text(s string) {
	h.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with value escaped.
func (h *HTML) Attr(name, value string) {
	h.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// URL writes an href/action style attribute, dropping unsafe schemes.
func (h *HTML) URL(name, value string) {
	h.Attr(name, string(templ.URL(value)))
}

func (h *HTML) Component(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func (h *HTML) Err() error {
	return h.err
}
