package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/templui/brightlog/internal/ctxkeys"
	"github.com/templui/brightlog/internal/i18n"
	"github.com/templui/brightlog/internal/ui"
	"github.com/templui/brightlog/internal/ui/layouts"
)

func NotFound() templ.Component {
	return layouts.Base(nil, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := ctxkeys.Printer(ctx)
		h := ui.NewHTML(w)
		h.Raw(`<section class="rounded-lg border border-gray-200 bg-white p-6"><h2 class="text-lg font-semibold">`)
		h.Text(p.Sprintf(i18n.NotFound))
		h.Raw(`</h2><p class="mt-2"><a class="underline" href="/">`)
		h.Text(p.Sprintf(i18n.NicknameSwitch))
		h.Raw("</a></p></section>")
		return h.Err()
	}))
}
