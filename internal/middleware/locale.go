package middleware

import (
	"net/http"

	"github.com/templui/brightlog/internal/ctxkeys"
	"github.com/templui/brightlog/internal/i18n"
)

const localeCookieName = "lang"

// Locale picks the request language from ?lang=, the lang cookie or
// Accept-Language, in that order, and stores it with its printer in the
// context. An explicit ?lang= is remembered in the cookie.
func Locale(loc *i18n.Localizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			override := r.URL.Query().Get("lang")
			if override != "" {
				http.SetCookie(w, &http.Cookie{
					Name:     localeCookieName,
					Value:    override,
					Path:     "/",
					SameSite: http.SameSiteLaxMode,
					MaxAge:   86400 * 365,
				})
			} else if c, err := r.Cookie(localeCookieName); err == nil {
				override = c.Value
			}

			tag := loc.Match(override, r.Header.Get("Accept-Language"))
			ctx := ctxkeys.WithLocale(r.Context(), tag)
			ctx = ctxkeys.WithPrinter(ctx, loc.Printer(tag))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
