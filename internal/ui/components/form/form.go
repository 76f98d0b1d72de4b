// Package form renders the few form controls the pages use.
package form

import (
	"context"
	"io"
	"strconv"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
	"github.com/templui/brightlog/internal/ui"
)

const (
	fieldBase  = "w-full rounded-md border border-gray-300 bg-white p-3"
	buttonBase = "rounded-md bg-amber-500 px-4 py-2 font-medium text-white hover:bg-amber-600"
)

type FieldProps struct {
	ID          string
	Name        string
	Label       string
	Value       string
	Placeholder string
	Rows        int
	Required    bool
	Class       string
}

// Textarea renders a labelled textarea. Rows defaults to 3.
func Textarea(p FieldProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		if p.Rows <= 0 {
			p.Rows = 3
		}
		h.Raw("<label")
		h.Attr("for", p.ID)
		h.Attr("class", "font-medium text-gray-700")
		h.Raw(">")
		h.Text(p.Label)
		h.Raw("</label><textarea")
		h.Attr("id", p.ID)
		h.Attr("name", p.Name)
		h.Attr("rows", strconv.Itoa(p.Rows))
		h.Attr("placeholder", p.Placeholder)
		h.Attr("class", twmerge.Merge(fieldBase, "mt-1", p.Class))
		if p.Required {
			h.Raw(" required")
		}
		h.Raw(">")
		h.Text(p.Value)
		h.Raw("</textarea>")
		return h.Err()
	})
}

// Input renders a labelled single-line text input.
func Input(p FieldProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw("<label")
		h.Attr("for", p.ID)
		h.Attr("class", "font-medium text-gray-700")
		h.Raw(">")
		h.Text(p.Label)
		h.Raw(`</label><input type="text"`)
		h.Attr("id", p.ID)
		h.Attr("name", p.Name)
		h.Attr("value", p.Value)
		h.Attr("placeholder", p.Placeholder)
		h.Attr("class", twmerge.Merge(fieldBase, "mt-1", p.Class))
		if p.Required {
			h.Raw(" required")
		}
		h.Raw(">")
		return h.Err()
	})
}

type ButtonProps struct {
	Label string
	Class string
}

func Submit(p ButtonProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw(`<button type="submit"`)
		h.Attr("class", twmerge.Merge(buttonBase, p.Class))
		h.Raw(">")
		h.Text(p.Label)
		h.Raw("</button>")
		return h.Err()
	})
}

// CSRF renders the hidden token field checked by the csrf middleware.
func CSRF(token string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw(`<input type="hidden" name="csrf_token"`)
		h.Attr("value", token)
		h.Raw(">")
		return h.Err()
	})
}
