package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/templui/brightlog/internal/ctxkeys"
	"github.com/templui/brightlog/internal/i18n"
	"github.com/templui/brightlog/internal/ui"
	"github.com/templui/brightlog/internal/ui/components/form"
	"github.com/templui/brightlog/internal/ui/components/toast"
	"github.com/templui/brightlog/internal/ui/layouts"
)

type HomeProps struct {
	Nickname string
	Toasts   []toast.Props
}

// Home is the nickname gate. Nothing else is shown until a nickname is
// submitted.
func Home(props HomeProps) templ.Component {
	return layouts.Base(props.Toasts, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := ctxkeys.Printer(ctx)

		h := ui.NewHTML(w)
		h.Raw(`<form method="post" action="/session" class="flex flex-col gap-4 rounded-lg border border-gray-200 bg-white p-6">`)
		h.Component(ctx, form.CSRF(ctxkeys.CSRFToken(ctx)))
		h.Component(ctx, form.Input(form.FieldProps{
			ID:       "nickname",
			Name:     "nickname",
			Label:    p.Sprintf(i18n.NicknameLabel),
			Value:    props.Nickname,
			Required: true,
		}))
		h.Component(ctx, form.Submit(form.ButtonProps{Label: p.Sprintf(i18n.NicknameSubmit)}))
		h.Raw("</form>")
		return h.Err()
	}))
}
