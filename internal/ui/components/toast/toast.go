package toast

import (
	"context"
	"io"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
	"github.com/templui/brightlog/internal/ui"
)

type Variant string

const (
	VariantDefault Variant = "default"
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
)

type Props struct {
	ID          string
	Title       string
	Description string
	Variant     Variant
	Dismissible bool
	Class       string
}

var variantClasses = map[Variant]string{
	VariantDefault: "border-gray-200 bg-blue-50 text-blue-700",
	VariantSuccess: "border-green-300 bg-green-50 text-green-700",
	VariantError:   "border-red-300 bg-red-50 text-red-700",
}

// Classes returns the merged class list for p.
func Classes(p Props) string {
	v, ok := variantClasses[p.Variant]
	if !ok {
		v = variantClasses[VariantDefault]
	}
	return twmerge.Merge("rounded-lg border p-4 shadow-sm", v, p.Class)
}

func Toast(p Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := ui.NewHTML(w)
		h.Raw("<div")
		if p.ID != "" {
			h.Attr("id", p.ID)
		}
		h.Attr("class", Classes(p))
		h.Attr("role", "status")
		h.Raw(">")
		if p.Title != "" {
			h.Raw(`<p class="font-semibold">`)
			h.Text(p.Title)
			h.Raw("</p>")
		}
		if p.Description != "" {
			h.Raw(`<p class="text-sm">`)
			h.Text(p.Description)
			h.Raw("</p>")
		}
		if p.Dismissible {
			h.Raw(`<button type="button" class="text-sm underline" onclick="this.parentElement.remove()">×</button>`)
		}
		h.Raw("</div>")
		return h.Err()
	})
}
