package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const (
	themeCookie  = "theme"
	defaultTheme = "dark"
)

// Theme holds the colors the HTML template interpolates.
type Theme struct {
	Name       string
	Background string
	Foreground string
}

var themes = map[string]Theme{
	"dark":  {Name: "dark", Background: "#1a1a1a", Foreground: "#e0e0e0"},
	"light": {Name: "light", Background: "#fafafa", Foreground: "#222222"},
	"green": {Name: "green", Background: "#001100", Foreground: "#33ff33"},
}

// themeFor resolves the theme from the cookie, falling back to the
// configured default and then to dark.
func (h *Handler) themeFor(r *http.Request) Theme {
	if cookie, err := r.Cookie(themeCookie); err == nil {
		if theme, ok := themes[cookie.Value]; ok {
			return theme
		}
	}
	if theme, ok := themes[h.cfg.DefaultTheme]; ok {
		return theme
	}
	return themes[defaultTheme]
}

// SetTheme stores the chosen theme in a cookie and redirects home. Unknown
// theme names 404 rather than setting a junk cookie.
func (h *Handler) SetTheme(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "theme")
	if _, ok := themes[name]; !ok {
		writeError(w, r, http.StatusNotFound, "unknown theme", h.logger)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     themeCookie,
		Value:    name,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
