package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/templui/brightlog/internal/i18n"
	"github.com/templui/brightlog/internal/service"
	"github.com/templui/brightlog/internal/ui"
	"github.com/templui/brightlog/internal/ui/components/toast"
	"github.com/templui/brightlog/internal/ui/pages"
	"github.com/templui/brightlog/internal/validation"
)

type SessionHandler struct {
	identityService *service.IdentityService
}

func NewSessionHandler(identityService *service.IdentityService) *SessionHandler {
	return &SessionHandler{
		identityService: identityService,
	}
}

// Start resolves the submitted nickname and sends the browser to that
// user's journal. The identifier in the URL is the only session state.
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	nickname := r.FormValue("nickname")

	profile, err := h.identityService.Resolve(r.Context(), nickname)
	if errors.Is(err, validation.ErrNicknameRequired) {
		ui.RenderStatus(w, r, http.StatusUnprocessableEntity, pages.Home(pages.HomeProps{
			Nickname: nickname,
			Toasts:   []toast.Props{errorToast(r.Context(), i18n.NicknameRequired)},
		}))
		return
	}
	if err != nil {
		slog.Error("failed to resolve nickname", "error", err)
		ui.RenderStatus(w, r, http.StatusInternalServerError, pages.Home(pages.HomeProps{
			Nickname: nickname,
			Toasts:   []toast.Props{errorToast(r.Context(), i18n.ErrorGeneric)},
		}))
		return
	}

	http.Redirect(w, r, pages.JournalPath(profile.UserUUID), http.StatusSeeOther)
}
