package pages

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/templui/brightlog/internal/ctxkeys"
	"github.com/templui/brightlog/internal/i18n"
	"github.com/templui/brightlog/internal/model"
	"github.com/templui/brightlog/internal/ui"
	"github.com/templui/brightlog/internal/ui/components/form"
	"github.com/templui/brightlog/internal/ui/components/toast"
	"github.com/templui/brightlog/internal/ui/layouts"
	"golang.org/x/text/message"
)

const sectionClass = "rounded-lg border border-gray-200 bg-white p-6 space-y-4"

type JournalProps struct {
	Profile *model.UserProfile
	Goals   model.Goals
	View    model.View

	// Entry is echoed back into the entry form when it was rejected.
	Entry string

	// ReplyHTML is the rendered reply; ReplyFailed shows a notice instead.
	ReplyHTML   string
	ReplyFailed bool

	Recent []*model.LogEntry
	Toasts []toast.Props
}

// JournalPath is the page URL for a user identifier.
func JournalPath(userUUID string) string {
	return "/journal/" + userUUID
}

// Journal renders the goals form, the entry form and, depending on
// View, the reply or the history below them.
func Journal(props JournalProps) templ.Component {
	return layouts.Base(props.Toasts, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := ctxkeys.Printer(ctx)
		base := JournalPath(props.Profile.UserUUID)

		h := ui.NewHTML(w)
		h.Raw(`<p class="text-sm text-gray-500">`)
		h.Text(props.Profile.Nickname)
		h.Raw(` · <a class="underline" href="/">`)
		h.Text(p.Sprintf(i18n.NicknameSwitch))
		h.Raw("</a></p>")

		goalsForm(ctx, h, p, base, props)
		entryForm(ctx, h, p, base, props.Entry)

		switch props.View {
		case model.ViewReply:
			replySection(h, p, base, props)
		case model.ViewHistory:
			historySection(h, p, base, props)
		}
		return h.Err()
	}))
}

func goalsForm(ctx context.Context, h *ui.HTML, p *message.Printer, base string, props JournalProps) {
	h.Raw("<section")
	h.Attr("class", sectionClass)
	h.Raw(`><h2 class="text-lg font-semibold">`)
	h.Text(p.Sprintf(i18n.GoalsHeader))
	h.Raw(`</h2><p class="text-sm text-gray-500">`)
	h.Text(p.Sprintf(i18n.GoalsIntro))
	h.Raw(`</p><form method="post" class="grid gap-4" hx-swap="none"`)
	h.URL("action", base+"/goals")
	h.URL("hx-post", base+"/goals")
	h.Raw(">")
	h.Component(ctx, form.CSRF(ctxkeys.CSRFToken(ctx)))
	h.Raw(`<input type="hidden" name="view"`)
	h.Attr("value", string(props.View))
	h.Raw(">")
	for _, area := range model.GoalAreas {
		h.Raw("<div>")
		h.Component(ctx, form.Textarea(form.FieldProps{
			ID:          "goal-" + area,
			Name:        area,
			Label:       p.Sprintf(i18n.GoalTitle(area)),
			Value:       props.Goals.Field(area),
			Placeholder: p.Sprintf(i18n.GoalExample(area)),
		}))
		h.Raw("</div>")
	}
	h.Component(ctx, form.Submit(form.ButtonProps{Label: p.Sprintf(i18n.GoalsSave)}))
	h.Raw("</form></section>")
}

func entryForm(ctx context.Context, h *ui.HTML, p *message.Printer, base, entry string) {
	h.Raw("<section")
	h.Attr("class", sectionClass)
	h.Raw(`><h2 class="text-lg font-semibold">`)
	h.Text(p.Sprintf(i18n.EntryHeader))
	h.Raw(`</h2><form method="post" class="grid gap-4"`)
	h.URL("action", base+"/entries")
	h.Raw(">")
	h.Component(ctx, form.CSRF(ctxkeys.CSRFToken(ctx)))
	h.Raw("<div>")
	h.Component(ctx, form.Textarea(form.FieldProps{
		ID:          "entry",
		Name:        "entry",
		Label:       p.Sprintf(i18n.EntryPrompt),
		Value:       entry,
		Placeholder: p.Sprintf(i18n.EntryExample),
		Rows:        5,
	}))
	h.Raw("</div>")
	h.Component(ctx, form.Submit(form.ButtonProps{Label: p.Sprintf(i18n.EntrySubmit)}))
	h.Raw("</form></section>")
}

func replySection(h *ui.HTML, p *message.Printer, base string, props JournalProps) {
	h.Raw(`<section id="reply"`)
	h.Attr("class", sectionClass)
	h.Raw(`><h2 class="text-lg font-semibold">`)
	h.Text(p.Sprintf(i18n.ReplyHeader))
	h.Raw("</h2>")
	if props.ReplyFailed {
		h.Raw("<p")
		h.Attr("class", toast.Classes(toast.Props{Variant: toast.VariantError}))
		h.Raw(">")
		h.Text(p.Sprintf(i18n.ReplyFailed))
		h.Raw("</p>")
	} else {
		h.Raw(`<div class="prose">`)
		h.Raw(props.ReplyHTML)
		h.Raw("</div>")
	}
	h.Raw(`<p><a class="underline"`)
	h.URL("href", base+"?view="+string(model.ViewHistory))
	h.Raw(">")
	h.Text(p.Sprintf(i18n.ReplyShowRecords))
	h.Raw("</a></p></section>")
}

func historySection(h *ui.HTML, p *message.Printer, base string, props JournalProps) {
	h.Raw(`<section id="history"`)
	h.Attr("class", sectionClass)
	h.Raw(`><h2 class="text-lg font-semibold">`)
	h.Text(p.Sprintf(i18n.HistoryGoals))
	h.Raw(`</h2><ul class="space-y-2">`)
	for _, area := range model.GoalAreas {
		value := props.Goals.Field(area)
		if strings.TrimSpace(value) == "" {
			value = p.Sprintf(i18n.HistoryUnset)
		}
		h.Raw(`<li><span class="font-medium">`)
		h.Text(p.Sprintf(i18n.GoalShort(area)))
		h.Raw(`</span>: <span class="whitespace-pre-line">`)
		h.Text(value)
		h.Raw("</span></li>")
	}
	h.Raw(`</ul><h2 class="text-lg font-semibold">`)
	h.Text(p.Sprintf(i18n.HistoryHeader))
	h.Raw("</h2>")

	if len(props.Recent) == 0 {
		h.Raw(`<p class="text-gray-500">`)
		h.Text(p.Sprintf(i18n.HistoryEmpty))
		h.Raw("</p>")
	} else {
		h.Raw(`<ul class="space-y-4">`)
		for _, e := range props.Recent {
			h.Raw(`<li><p class="font-semibold">`)
			h.Text(e.Day())
			h.Raw(`</p><p class="whitespace-pre-line">`)
			h.Text(e.Entry)
			h.Raw("</p></li>")
		}
		h.Raw("</ul>")
	}

	h.Raw(`<p><a class="underline"`)
	h.URL("href", base)
	h.Raw(">")
	h.Text(p.Sprintf(i18n.HistoryHide))
	h.Raw("</a></p></section>")
}
