package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/templui/brightlog/internal/ctxkeys"
	"github.com/templui/brightlog/internal/i18n"
	"github.com/templui/brightlog/internal/ui"
	"github.com/templui/brightlog/internal/ui/components/toast"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// ToastContainerID is the OOB target for toasts sent to htmx requests.
const ToastContainerID = "toast-container"

// Base wraps body in the document shell: head, language switch and the
// toast container.
func Base(toasts []toast.Props, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := ctxkeys.Printer(ctx)
		token := ctxkeys.CSRFToken(ctx)
		title := p.Sprintf(i18n.AppTitle)

		h := ui.NewHTML(w)
		h.Raw("<!doctype html><html")
		h.Attr("lang", i18n.Base(ctxkeys.Locale(ctx)).String())
		h.Raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.Text(title)
		h.Raw(`</title><link rel="stylesheet" href="/assets/css/output.css"><script defer`)
		h.Attr("src", htmxSrc)
		h.Raw(`></script></head><body class="min-h-screen bg-gray-50"`)
		if token != "" {
			h.Attr("hx-headers", `{"X-CSRF-Token": "`+token+`"}`)
		}
		h.Raw(">")

		h.Raw(`<div class="fixed top-4 right-4 z-50 space-y-2"`)
		h.Attr("id", ToastContainerID)
		h.Raw(">")
		for _, t := range toasts {
			h.Component(ctx, toast.Toast(t))
		}
		h.Raw("</div>")

		h.Raw(`<main class="mx-auto max-w-2xl px-4 py-8 space-y-4"><header class="flex items-center justify-between"><h1 class="text-2xl font-bold"><a href="/">`)
		h.Text(title)
		h.Raw(`</a></h1><nav class="flex gap-2 text-sm text-gray-500">`)
		path := ctxkeys.URLPath(ctx)
		if path == "" {
			path = "/"
		}
		langLink(h, path, "ja", "日本語")
		langLink(h, path, "en", "English")
		h.Raw("</nav></header>")

		h.Component(ctx, body)

		h.Raw("</main></body></html>")
		return h.Err()
	})
}

func langLink(h *ui.HTML, path, lang, label string) {
	h.Raw(`<a class="underline"`)
	h.URL("href", path+"?lang="+lang)
	h.Raw(">")
	h.Text(label)
	h.Raw("</a>")
}
