package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/templui/brightlog/internal/ctxkeys"
	"github.com/templui/brightlog/internal/i18n"
	"github.com/templui/brightlog/internal/markdown"
	"github.com/templui/brightlog/internal/model"
	"github.com/templui/brightlog/internal/repository"
	"github.com/templui/brightlog/internal/service"
	"github.com/templui/brightlog/internal/ui"
	"github.com/templui/brightlog/internal/ui/components/toast"
	"github.com/templui/brightlog/internal/ui/layouts"
	"github.com/templui/brightlog/internal/ui/pages"
)

type JournalHandler struct {
	identityService *service.IdentityService
	goalsService    *service.GoalsService
	journalService  *service.JournalService
	markdown        *markdown.Parser
}

func NewJournalHandler(
	identityService *service.IdentityService,
	goalsService *service.GoalsService,
	journalService *service.JournalService,
	markdown *markdown.Parser,
) *JournalHandler {
	return &JournalHandler{
		identityService: identityService,
		goalsService:    goalsService,
		journalService:  journalService,
		markdown:        markdown,
	}
}

// profile loads the user named in the path. Unknown identifiers go back
// to the nickname form.
func (h *JournalHandler) profile(w http.ResponseWriter, r *http.Request) (*model.UserProfile, bool) {
	userUUID := r.PathValue("user_uuid")

	profile, err := h.identityService.ByUUID(r.Context(), userUUID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return nil, false
	}
	if err != nil {
		slog.Error("failed to load profile", "error", err, "user_uuid", userUUID)
		http.Error(w, "Failed to load profile", http.StatusInternalServerError)
		return nil, false
	}
	return profile, true
}

// page fills in goals, and recent entries for the history view.
func (h *JournalHandler) page(r *http.Request, props pages.JournalProps) (pages.JournalProps, error) {
	goals, err := h.goalsService.Load(r.Context(), props.Profile.UserUUID)
	if err != nil {
		return props, err
	}
	props.Goals = goals

	if props.View == model.ViewHistory {
		recent, err := h.journalService.Recent(r.Context(), props.Profile.UserUUID, service.RecentLimit)
		if err != nil {
			return props, err
		}
		props.Recent = recent
	}
	return props, nil
}

func (h *JournalHandler) render(w http.ResponseWriter, r *http.Request, status int, props pages.JournalProps) {
	props, err := h.page(r, props)
	if err != nil {
		slog.Error("failed to load journal", "error", err, "user_uuid", props.Profile.UserUUID)
		status = http.StatusInternalServerError
		props.View = model.ViewHome
		props.Toasts = append(props.Toasts, errorToast(r.Context(), i18n.ErrorGeneric))
	}
	ui.RenderStatus(w, r, status, pages.Journal(props))
}

func (h *JournalHandler) JournalPage(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.profile(w, r)
	if !ok {
		return
	}

	// A reply only exists right after a submission.
	view := model.ParseView(r.URL.Query().Get("view"))
	if view == model.ViewReply {
		view = model.ViewHome
	}

	h.render(w, r, http.StatusOK, pages.JournalProps{
		Profile: profile,
		View:    view,
	})
}

func (h *JournalHandler) SaveGoals(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.profile(w, r)
	if !ok {
		return
	}

	goals := model.Goals{
		BodyMind:      r.FormValue(model.AreaBodyMind),
		Career:        r.FormValue(model.AreaCareer),
		Relationships: r.FormValue(model.AreaRelationships),
		Others:        r.FormValue(model.AreaOthers),
	}

	var t toast.Props
	status := http.StatusOK
	err := h.goalsService.Save(r.Context(), profile.UserUUID, profile.Nickname, goals)
	if err != nil {
		slog.Error("failed to save goals", "error", err, "user_uuid", profile.UserUUID)
		t = errorToast(r.Context(), i18n.ErrorGeneric)
		status = http.StatusInternalServerError
	} else {
		slog.Info("goals saved", "user_uuid", profile.UserUUID)
		t = successToast(r.Context(), i18n.GoalsSaved)
	}

	// The htmx form keeps its own values; only the toast is sent back.
	if r.Header.Get("HX-Request") == "true" {
		ui.RenderOOB(w, r, toast.Toast(t), "beforeend:#"+layouts.ToastContainerID)
		return
	}

	view := model.ParseView(r.FormValue("view"))
	if view == model.ViewReply {
		view = model.ViewHome
	}
	h.render(w, r, status, pages.JournalProps{
		Profile: profile,
		View:    view,
		Toasts:  []toast.Props{t},
	})
}

func (h *JournalHandler) SubmitEntry(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.profile(w, r)
	if !ok {
		return
	}

	text := r.FormValue("entry")
	lang := ctxkeys.Locale(r.Context())

	submission, err := h.journalService.Record(r.Context(), profile, lang, text)
	switch {
	case errors.Is(err, service.ErrEmptyEntry):
		h.render(w, r, http.StatusUnprocessableEntity, pages.JournalProps{
			Profile: profile,
			View:    model.ViewHome,
			Entry:   text,
			Toasts:  []toast.Props{errorToast(r.Context(), i18n.EntryRequired)},
		})

	case errors.Is(err, service.ErrReplyFailed):
		slog.Error("failed to generate reply", "error", err, "user_uuid", profile.UserUUID)
		h.render(w, r, http.StatusBadGateway, pages.JournalProps{
			Profile:     profile,
			View:        model.ViewReply,
			ReplyFailed: true,
			Toasts:      []toast.Props{successToast(r.Context(), i18n.EntrySaved)},
		})

	case err != nil && submission == nil:
		slog.Error("failed to save entry", "error", err, "user_uuid", profile.UserUUID)
		h.render(w, r, http.StatusInternalServerError, pages.JournalProps{
			Profile: profile,
			View:    model.ViewHome,
			Entry:   text,
			Toasts:  []toast.Props{errorToast(r.Context(), i18n.ErrorGeneric)},
		})

	case err != nil:
		slog.Error("failed to prepare reply", "error", err, "user_uuid", profile.UserUUID)
		h.render(w, r, http.StatusInternalServerError, pages.JournalProps{
			Profile:     profile,
			View:        model.ViewReply,
			ReplyFailed: true,
			Toasts:      []toast.Props{successToast(r.Context(), i18n.EntrySaved)},
		})

	default:
		slog.Info("entry recorded", "user_uuid", profile.UserUUID, "entry_id", submission.Entry.ID)
		h.render(w, r, http.StatusOK, pages.JournalProps{
			Profile:   profile,
			View:      model.ViewReply,
			ReplyHTML: h.markdown.HTML(submission.Reply),
			Toasts:    []toast.Props{successToast(r.Context(), i18n.EntrySaved)},
		})
	}
}
